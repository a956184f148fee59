package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nhs-digital-gp-it-futures/order-form-sub000/internal/application/services"
	"github.com/nhs-digital-gp-it-futures/order-form-sub000/internal/application/session"
	"github.com/nhs-digital-gp-it-futures/order-form-sub000/internal/application/validation"
	"github.com/nhs-digital-gp-it-futures/order-form-sub000/internal/interfaces/rest"
)

// registerItemRoutes mounts the shared item flow for one section.
func (h *Handlers) registerItemRoutes(r chi.Router, sec services.ItemSection) {
	selectPath := "/select/" + sec.Noun

	r.Get("/", h.errors.Handle(func(w http.ResponseWriter, r *http.Request) error {
		return step(h, w, r, "item_list", func(sess *session.Session, order services.OrderRef) (services.Outcome[services.ItemListPage], error) {
			return h.items.GetItems(r.Context(), sess, order, sec)
		})
	}))

	r.Get(selectPath, h.errors.Handle(func(w http.ResponseWriter, r *http.Request) error {
		return step(h, w, r, "select", func(sess *session.Session, order services.OrderRef) (services.Outcome[services.SelectPage], error) {
			return h.items.GetSelectItem(r.Context(), sess, order, sec)
		})
	}))
	r.Post(selectPath, h.errors.Handle(func(w http.ResponseWriter, r *http.Request) error {
		if err := rest.ParseForm(r); err != nil {
			return err
		}
		form := validation.SelectionFormFrom(r.PostForm, sec.ItemField)
		return step(h, w, r, "select", func(sess *session.Session, order services.OrderRef) (services.Outcome[services.SelectPage], error) {
			return h.items.PostSelectItem(r.Context(), sess, order, sec, form)
		})
	}))

	r.Get(selectPath+"/price", h.errors.Handle(func(w http.ResponseWriter, r *http.Request) error {
		return step(h, w, r, "select", func(sess *session.Session, order services.OrderRef) (services.Outcome[services.SelectPage], error) {
			return h.items.GetSelectPrice(r.Context(), sess, order, sec)
		})
	}))
	r.Post(selectPath+"/price", h.errors.Handle(func(w http.ResponseWriter, r *http.Request) error {
		if err := rest.ParseForm(r); err != nil {
			return err
		}
		form := validation.SelectionFormFrom(r.PostForm, sec.PriceField)
		return step(h, w, r, "select", func(sess *session.Session, order services.OrderRef) (services.Outcome[services.SelectPage], error) {
			return h.items.PostSelectPrice(r.Context(), sess, order, sec, form)
		})
	}))

	r.Get(selectPath+"/price/recipient", h.errors.Handle(func(w http.ResponseWriter, r *http.Request) error {
		return step(h, w, r, "select", func(sess *session.Session, order services.OrderRef) (services.Outcome[services.SelectPage], error) {
			return h.items.GetSelectRecipient(r.Context(), sess, order, sec)
		})
	}))
	r.Post(selectPath+"/price/recipient", h.errors.Handle(func(w http.ResponseWriter, r *http.Request) error {
		if err := rest.ParseForm(r); err != nil {
			return err
		}
		form := validation.SelectionFormFrom(r.PostForm, sec.RecipientField)
		return step(h, w, r, "select", func(sess *session.Session, order services.OrderRef) (services.Outcome[services.SelectPage], error) {
			return h.items.PostSelectRecipient(r.Context(), sess, order, sec, form)
		})
	}))

	r.Get(selectPath+"/price/recipient/date", h.errors.Handle(func(w http.ResponseWriter, r *http.Request) error {
		return step(h, w, r, "delivery_date", func(sess *session.Session, order services.OrderRef) (services.Outcome[services.DeliveryDatePage], error) {
			return h.items.GetDeliveryDate(r.Context(), sess, order, sec)
		})
	}))
	r.Post(selectPath+"/price/recipient/date", h.errors.Handle(func(w http.ResponseWriter, r *http.Request) error {
		if err := rest.ParseForm(r); err != nil {
			return err
		}
		form := validation.DateFormFrom(r.PostForm, "deliveryDate")
		return step(h, w, r, "delivery_date", func(sess *session.Session, order services.OrderRef) (services.Outcome[services.DeliveryDatePage], error) {
			return h.items.PostDeliveryDate(r.Context(), sess, order, sec, form)
		})
	}))

	r.Get("/{orderItemId}", h.errors.Handle(func(w http.ResponseWriter, r *http.Request) error {
		orderItemID := chi.URLParam(r, "orderItemId")
		return step(h, w, r, "order_item", func(sess *session.Session, order services.OrderRef) (services.Outcome[services.OrderItemPage], error) {
			return h.items.GetOrderItem(r.Context(), sess, order, sec, orderItemID)
		})
	}))
	r.Post("/{orderItemId}", h.errors.Handle(func(w http.ResponseWriter, r *http.Request) error {
		if err := rest.ParseForm(r); err != nil {
			return err
		}
		orderItemID := chi.URLParam(r, "orderItemId")
		// The service decides whether an estimation period applies.
		form := validation.OrderItemFormFrom(r.PostForm, false)
		return step(h, w, r, "order_item", func(sess *session.Session, order services.OrderRef) (services.Outcome[services.OrderItemPage], error) {
			return h.items.PostOrderItem(r.Context(), sess, order, sec, orderItemID, form)
		})
	}))
}
