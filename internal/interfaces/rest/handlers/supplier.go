package handlers

import (
	"net/http"

	"github.com/nhs-digital-gp-it-futures/order-form-sub000/internal/application/services"
	"github.com/nhs-digital-gp-it-futures/order-form-sub000/internal/application/session"
	"github.com/nhs-digital-gp-it-futures/order-form-sub000/internal/application/validation"
	"github.com/nhs-digital-gp-it-futures/order-form-sub000/internal/interfaces/rest"
)

func (h *Handlers) getSupplierSearch(w http.ResponseWriter, r *http.Request) error {
	return step(h, w, r, "supplier_search", func(sess *session.Session, order services.OrderRef) (services.Outcome[services.SupplierSearchPage], error) {
		return h.supplier.GetSearch(r.Context(), sess, order)
	})
}

func (h *Handlers) postSupplierSearch(w http.ResponseWriter, r *http.Request) error {
	if err := rest.ParseForm(r); err != nil {
		return err
	}
	form := validation.SupplierSearchFormFrom(r.PostForm)
	return step(h, w, r, "supplier_search", func(sess *session.Session, order services.OrderRef) (services.Outcome[services.SupplierSearchPage], error) {
		return h.supplier.PostSearch(r.Context(), sess, order, form)
	})
}

func (h *Handlers) getSupplierSelect(w http.ResponseWriter, r *http.Request) error {
	return step(h, w, r, "supplier_select", func(sess *session.Session, order services.OrderRef) (services.Outcome[services.SupplierSelectPage], error) {
		return h.supplier.GetSelect(r.Context(), sess, order)
	})
}

func (h *Handlers) postSupplierSelect(w http.ResponseWriter, r *http.Request) error {
	if err := rest.ParseForm(r); err != nil {
		return err
	}
	form := validation.SelectSupplierFormFrom(r.PostForm)
	return step(h, w, r, "supplier_select", func(sess *session.Session, order services.OrderRef) (services.Outcome[services.SupplierSelectPage], error) {
		return h.supplier.PostSelect(r.Context(), sess, order, form)
	})
}

func (h *Handlers) getSupplier(w http.ResponseWriter, r *http.Request) error {
	return step(h, w, r, "supplier", func(sess *session.Session, order services.OrderRef) (services.Outcome[services.SupplierPage], error) {
		return h.supplier.Get(r.Context(), sess, order)
	})
}

func (h *Handlers) postSupplier(w http.ResponseWriter, r *http.Request) error {
	if err := rest.ParseForm(r); err != nil {
		return err
	}
	form := validation.ContactFormFrom(r.PostForm)
	return step(h, w, r, "supplier", func(sess *session.Session, order services.OrderRef) (services.Outcome[services.SupplierPage], error) {
		return h.supplier.Post(r.Context(), sess, order, form)
	})
}
