package handlers

import (
	"net/http"

	"github.com/nhs-digital-gp-it-futures/order-form-sub000/internal/application/services"
	"github.com/nhs-digital-gp-it-futures/order-form-sub000/internal/application/session"
	"github.com/nhs-digital-gp-it-futures/order-form-sub000/internal/application/validation"
	"github.com/nhs-digital-gp-it-futures/order-form-sub000/internal/interfaces/rest"
)

func (h *Handlers) getDashboard(w http.ResponseWriter, r *http.Request) error {
	return step(h, w, r, "dashboard", func(sess *session.Session, order services.OrderRef) (services.Outcome[services.DashboardPage], error) {
		return h.dashboard.Get(r.Context(), sess, order)
	})
}

func (h *Handlers) getOrderingParty(w http.ResponseWriter, r *http.Request) error {
	return step(h, w, r, "ordering_party", func(sess *session.Session, order services.OrderRef) (services.Outcome[services.OrderingPartyPage], error) {
		return h.orderingParty.Get(r.Context(), sess, order)
	})
}

func (h *Handlers) postOrderingParty(w http.ResponseWriter, r *http.Request) error {
	if err := rest.ParseForm(r); err != nil {
		return err
	}
	form := validation.ContactFormFrom(r.PostForm)
	return step(h, w, r, "ordering_party", func(sess *session.Session, order services.OrderRef) (services.Outcome[services.OrderingPartyPage], error) {
		return h.orderingParty.Post(r.Context(), sess, order, form)
	})
}

func (h *Handlers) getCommencementDate(w http.ResponseWriter, r *http.Request) error {
	return step(h, w, r, "commencement_date", func(sess *session.Session, order services.OrderRef) (services.Outcome[services.CommencementDatePage], error) {
		return h.commencementDate.Get(r.Context(), sess, order)
	})
}

func (h *Handlers) postCommencementDate(w http.ResponseWriter, r *http.Request) error {
	if err := rest.ParseForm(r); err != nil {
		return err
	}
	form := validation.DateFormFrom(r.PostForm, "commencementDate")
	return step(h, w, r, "commencement_date", func(sess *session.Session, order services.OrderRef) (services.Outcome[services.CommencementDatePage], error) {
		return h.commencementDate.Post(r.Context(), sess, order, form)
	})
}

func (h *Handlers) getServiceRecipients(w http.ResponseWriter, r *http.Request) error {
	selectStatus := r.URL.Query().Get("selectStatus")
	return step(h, w, r, "service_recipients", func(sess *session.Session, order services.OrderRef) (services.Outcome[services.ServiceRecipientsPage], error) {
		return h.serviceRecipients.Get(r.Context(), sess, order, selectStatus)
	})
}

func (h *Handlers) postServiceRecipients(w http.ResponseWriter, r *http.Request) error {
	if err := rest.ParseForm(r); err != nil {
		return err
	}
	odsCodes := r.PostForm["odsCode"]
	return step(h, w, r, "service_recipients", func(sess *session.Session, order services.OrderRef) (services.Outcome[services.ServiceRecipientsPage], error) {
		return h.serviceRecipients.Post(r.Context(), sess, order, odsCodes)
	})
}
