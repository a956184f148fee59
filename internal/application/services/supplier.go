package services

import (
	"context"

	"github.com/nhs-digital-gp-it-futures/order-form-sub000/internal/application"
	"github.com/nhs-digital-gp-it-futures/order-form-sub000/internal/application/session"
	"github.com/nhs-digital-gp-it-futures/order-form-sub000/internal/application/validation"
	"github.com/nhs-digital-gp-it-futures/order-form-sub000/internal/domain"
)

const (
	supplierPath       = domain.SectionSupplier
	supplierSearchPath = domain.SectionSupplier + "/search"
	supplierSelectPath = domain.SectionSupplier + "/search/select"
)

type SupplierService struct {
	orders    application.OrderAPI
	catalogue application.CatalogueAPI
}

func NewSupplierService(orders application.OrderAPI, catalogue application.CatalogueAPI) *SupplierService {
	return &SupplierService{orders: orders, catalogue: catalogue}
}

// GetSearch sends users who already saved a supplier straight to its details;
// the supplier cannot be changed once items have been added against it.
func (s *SupplierService) GetSearch(ctx context.Context, sess *session.Session, order OrderRef) (Outcome[SupplierSearchPage], error) {
	section, err := s.orders.GetSupplierSection(ctx, order.OrderID)
	if err != nil {
		return Outcome[SupplierSearchPage]{}, err
	}
	if section.SupplierID != "" {
		return redirectTo[SupplierSearchPage](order.Path(supplierPath)), nil
	}
	return render(s.searchPage(order, "", nil)), nil
}

func (s *SupplierService) PostSearch(ctx context.Context, sess *session.Session, order OrderRef, form validation.SupplierSearchForm) (Outcome[SupplierSearchPage], error) {
	if result := validation.ValidateSupplierSearchForm(form); !result.Success {
		return render(s.searchPage(order, form.SupplierName, result.Errors)), nil
	}

	suppliers, err := s.catalogue.SearchSuppliers(ctx, form.SupplierName)
	if err != nil {
		return Outcome[SupplierSearchPage]{}, err
	}
	if len(suppliers) == 0 {
		errs := []domain.ValidationError{{Field: "supplierName", ID: "SupplierNotFound"}}
		return render(s.searchPage(order, form.SupplierName, errs)), nil
	}

	if err := session.Set(ctx, sess, session.SupplierSearchResults, suppliers); err != nil {
		return Outcome[SupplierSearchPage]{}, err
	}
	return redirectTo[SupplierSearchPage](order.Path(supplierSelectPath)), nil
}

func (s *SupplierService) searchPage(order OrderRef, term string, errs []domain.ValidationError) *SupplierSearchPage {
	return &SupplierSearchPage{
		PageBase: PageBase{
			Order:    order,
			Title:    "Find supplier information",
			BackLink: order.Path(),
			Errors:   errs,
		},
		SupplierName: term,
	}
}

func (s *SupplierService) GetSelect(ctx context.Context, sess *session.Session, order OrderRef) (Outcome[SupplierSelectPage], error) {
	suppliers, found, err := session.Get(ctx, sess, session.SupplierSearchResults)
	if err != nil {
		return Outcome[SupplierSelectPage]{}, err
	}
	if !found {
		return redirectTo[SupplierSelectPage](order.Path(supplierSearchPath)), nil
	}

	selected, err := session.GetOrZero(ctx, sess, session.SelectedSupplierID)
	if err != nil {
		return Outcome[SupplierSelectPage]{}, err
	}
	return render(s.selectPage(order, suppliers, selected, nil)), nil
}

func (s *SupplierService) PostSelect(ctx context.Context, sess *session.Session, order OrderRef, form validation.SelectSupplierForm) (Outcome[SupplierSelectPage], error) {
	if result := validation.ValidateSelectSupplierForm(form); !result.Success {
		suppliers, err := session.GetOrZero(ctx, sess, session.SupplierSearchResults)
		if err != nil {
			return Outcome[SupplierSelectPage]{}, err
		}
		return render(s.selectPage(order, suppliers, "", result.Errors)), nil
	}

	supplier, err := session.FindSelectedItem(ctx, sess, session.SupplierSearchResults, form.SelectSupplier)
	if err != nil {
		return Outcome[SupplierSelectPage]{}, err
	}

	if err := sess.Clear(ctx, session.SelectedSupplier); err != nil {
		return Outcome[SupplierSelectPage]{}, err
	}
	if err := session.Set(ctx, sess, session.SelectedSupplierID, supplier.ID); err != nil {
		return Outcome[SupplierSelectPage]{}, err
	}
	return redirectTo[SupplierSelectPage](order.Path(supplierPath)), nil
}

func (s *SupplierService) selectPage(order OrderRef, suppliers []domain.Supplier, selected string, errs []domain.ValidationError) *SupplierSelectPage {
	return &SupplierSelectPage{
		PageBase: PageBase{
			Order:    order,
			Title:    "Suppliers found",
			BackLink: order.Path(supplierSearchPath),
			Errors:   errs,
		},
		Suppliers: suppliers,
		Selected:  selected,
	}
}

// supplierState is what the supplier page shows: a supplier freshly picked in
// this session wins over the one saved on the order.
type supplierState struct {
	section  domain.SupplierSection
	fromSave bool
}

func (s *SupplierService) current(ctx context.Context, sess *session.Session, order OrderRef) (*supplierState, error) {
	selectedID, err := session.GetOrZero(ctx, sess, session.SelectedSupplierID)
	if err != nil {
		return nil, err
	}

	saved, err := s.orders.GetSupplierSection(ctx, order.OrderID)
	if err != nil {
		return nil, err
	}

	if selectedID == "" || selectedID == saved.SupplierID {
		if saved.SupplierID == "" {
			return nil, nil
		}
		return &supplierState{section: *saved, fromSave: true}, nil
	}

	detail, err := session.GetFromSessionOrAPI(ctx, sess, session.SelectedSupplier, func(ctx context.Context) (domain.SupplierDetail, error) {
		d, err := s.catalogue.GetSupplier(ctx, selectedID)
		if err != nil {
			return domain.SupplierDetail{}, err
		}
		return *d, nil
	})
	if err != nil {
		return nil, err
	}
	return &supplierState{section: domain.SupplierSection{
		SupplierID:     detail.ID,
		Name:           detail.Name,
		Address:        detail.Address,
		PrimaryContact: detail.PrimaryContact,
	}}, nil
}

func (s *SupplierService) Get(ctx context.Context, sess *session.Session, order OrderRef) (Outcome[SupplierPage], error) {
	state, err := s.current(ctx, sess, order)
	if err != nil {
		return Outcome[SupplierPage]{}, err
	}
	if state == nil {
		return redirectTo[SupplierPage](order.Path(supplierSearchPath)), nil
	}
	return render(s.supplierPage(order, state, validation.ContactFormOf(state.section.PrimaryContact), nil)), nil
}

func (s *SupplierService) Post(ctx context.Context, sess *session.Session, order OrderRef, form validation.ContactForm) (Outcome[SupplierPage], error) {
	state, err := s.current(ctx, sess, order)
	if err != nil {
		return Outcome[SupplierPage]{}, err
	}
	if state == nil {
		return redirectTo[SupplierPage](order.Path(supplierSearchPath)), nil
	}

	if result := validation.ValidateContactForm(form); !result.Success {
		return render(s.supplierPage(order, state, form, result.Errors)), nil
	}

	section := state.section
	section.PrimaryContact = form.Contact()
	if err := s.orders.PutSupplierSection(ctx, order.OrderID, section); err != nil {
		errs, err := translateValidation(err)
		if err != nil {
			return Outcome[SupplierPage]{}, err
		}
		return render(s.supplierPage(order, state, form, errs)), nil
	}
	return redirectTo[SupplierPage](order.Path()), nil
}

func (s *SupplierService) supplierPage(order OrderRef, state *supplierState, form validation.ContactForm, errs []domain.ValidationError) *SupplierPage {
	page := &SupplierPage{
		PageBase: PageBase{
			Order:    order,
			Title:    "Supplier information for " + order.OrderID,
			BackLink: order.Path(),
			Errors:   errs,
		},
		SupplierID: state.section.SupplierID,
		Name:       state.section.Name,
		Address:    state.section.Address,
		Contact:    form,
	}
	if !state.fromSave {
		page.BackLink = order.Path(supplierSelectPath)
		page.SearchLink = order.Path(supplierSearchPath)
	}
	return page
}
