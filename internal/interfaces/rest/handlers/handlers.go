package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nhs-digital-gp-it-futures/order-form-sub000/internal/application"
	"github.com/nhs-digital-gp-it-futures/order-form-sub000/internal/application/services"
	"github.com/nhs-digital-gp-it-futures/order-form-sub000/internal/application/session"
	"github.com/nhs-digital-gp-it-futures/order-form-sub000/internal/interfaces/rest"
	"github.com/nhs-digital-gp-it-futures/order-form-sub000/internal/interfaces/rest/middleware"
)

// Handlers adapts the section services to HTTP: parse the form, call the
// step, write the outcome.
type Handlers struct {
	dashboard         *services.DashboardService
	orderingParty     *services.OrderingPartyService
	supplier          *services.SupplierService
	commencementDate  *services.CommencementDateService
	serviceRecipients *services.ServiceRecipientsService
	items             *services.CatalogueItemService

	renderer *rest.Renderer
	errors   *rest.ErrorHandler
}

type Services struct {
	Dashboard         *services.DashboardService
	OrderingParty     *services.OrderingPartyService
	Supplier          *services.SupplierService
	CommencementDate  *services.CommencementDateService
	ServiceRecipients *services.ServiceRecipientsService
	Items             *services.CatalogueItemService
}

func NewHandlers(svc Services, renderer *rest.Renderer, errs *rest.ErrorHandler) *Handlers {
	return &Handlers{
		dashboard:         svc.Dashboard,
		orderingParty:     svc.OrderingParty,
		supplier:          svc.Supplier,
		commencementDate:  svc.CommencementDate,
		serviceRecipients: svc.ServiceRecipients,
		items:             svc.Items,
		renderer:          renderer,
		errors:            errs,
	}
}

const orderRoute = "/organisation/{odsCode}/order/{orderId}"

// RegisterRoutes mounts every wizard page below the order route. Identity and
// session middleware must already be in the chain.
func (h *Handlers) RegisterRoutes(r chi.Router) {
	r.Route(orderRoute, func(r chi.Router) {
		r.Get("/", h.errors.Handle(h.getDashboard))

		r.Get("/ordering-party", h.errors.Handle(h.getOrderingParty))
		r.Post("/ordering-party", h.errors.Handle(h.postOrderingParty))

		r.Get("/supplier", h.errors.Handle(h.getSupplier))
		r.Post("/supplier", h.errors.Handle(h.postSupplier))
		r.Get("/supplier/search", h.errors.Handle(h.getSupplierSearch))
		r.Post("/supplier/search", h.errors.Handle(h.postSupplierSearch))
		r.Get("/supplier/search/select", h.errors.Handle(h.getSupplierSelect))
		r.Post("/supplier/search/select", h.errors.Handle(h.postSupplierSelect))

		r.Get("/commencement-date", h.errors.Handle(h.getCommencementDate))
		r.Post("/commencement-date", h.errors.Handle(h.postCommencementDate))

		r.Get("/service-recipients", h.errors.Handle(h.getServiceRecipients))
		r.Post("/service-recipients", h.errors.Handle(h.postServiceRecipients))

		for _, sec := range services.ItemSections() {
			r.Route("/"+sec.ID, func(r chi.Router) {
				h.registerItemRoutes(r, sec)
			})
		}
	})
}

func orderRef(r *http.Request) services.OrderRef {
	return services.OrderRef{
		OdsCode: chi.URLParam(r, "odsCode"),
		OrderID: chi.URLParam(r, "orderId"),
	}
}

func requestSession(r *http.Request) (*session.Session, error) {
	sess, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		return nil, application.NewInternalError(errNoSession)
	}
	return sess, nil
}

// step runs one service call with the request's session and order, then
// writes its outcome.
func step[P any](h *Handlers, w http.ResponseWriter, r *http.Request, page string,
	call func(sess *session.Session, order services.OrderRef) (services.Outcome[P], error),
) error {
	sess, err := requestSession(r)
	if err != nil {
		return err
	}
	out, err := call(sess, orderRef(r))
	if err != nil {
		return err
	}
	return rest.WriteOutcome(w, r, h.renderer, page, out)
}
