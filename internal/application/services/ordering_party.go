package services

import (
	"context"

	"github.com/nhs-digital-gp-it-futures/order-form-sub000/internal/application"
	"github.com/nhs-digital-gp-it-futures/order-form-sub000/internal/application/session"
	"github.com/nhs-digital-gp-it-futures/order-form-sub000/internal/application/validation"
	"github.com/nhs-digital-gp-it-futures/order-form-sub000/internal/domain"
)

type OrderingPartyService struct {
	orders        application.OrderAPI
	organisations application.OrganisationAPI
	resolver      *OrganisationResolver
}

func NewOrderingPartyService(orders application.OrderAPI, organisations application.OrganisationAPI, resolver *OrganisationResolver) *OrderingPartyService {
	return &OrderingPartyService{orders: orders, organisations: organisations, resolver: resolver}
}

func (s *OrderingPartyService) Get(ctx context.Context, sess *session.Session, order OrderRef) (Outcome[OrderingPartyPage], error) {
	section, err := s.current(ctx, sess, order)
	if err != nil {
		return Outcome[OrderingPartyPage]{}, err
	}
	return render(s.page(order, section, validation.ContactFormOf(section.PrimaryContact), nil)), nil
}

func (s *OrderingPartyService) Post(ctx context.Context, sess *session.Session, order OrderRef, form validation.ContactForm) (Outcome[OrderingPartyPage], error) {
	section, err := s.current(ctx, sess, order)
	if err != nil {
		return Outcome[OrderingPartyPage]{}, err
	}

	if result := validation.ValidateContactForm(form); !result.Success {
		return render(s.page(order, section, form, result.Errors)), nil
	}

	section.PrimaryContact = form.Contact()
	if err := s.orders.PutOrderingPartySection(ctx, order.OrderID, *section); err != nil {
		errs, err := translateValidation(err)
		if err != nil {
			return Outcome[OrderingPartyPage]{}, err
		}
		return render(s.page(order, section, form, errs)), nil
	}
	return redirectTo[OrderingPartyPage](order.Path()), nil
}

// current is the saved section, or one pre-filled from the organisation
// directory when nothing has been saved yet.
func (s *OrderingPartyService) current(ctx context.Context, sess *session.Session, order OrderRef) (*domain.OrderingPartySection, error) {
	section, err := s.orders.GetOrderingPartySection(ctx, order.OrderID)
	if err != nil {
		return nil, err
	}
	if section.Name != "" {
		return section, nil
	}

	orgID, err := s.resolver.Resolve(ctx, sess, order.OdsCode)
	if err != nil {
		return nil, err
	}
	org, err := s.organisations.GetOrganisation(ctx, orgID)
	if err != nil {
		return nil, err
	}
	section.Name = org.Name
	section.OdsCode = org.OdsCode
	section.Address = org.Address
	return section, nil
}

func (s *OrderingPartyService) page(order OrderRef, section *domain.OrderingPartySection, form validation.ContactForm, errs []domain.ValidationError) *OrderingPartyPage {
	return &OrderingPartyPage{
		PageBase: PageBase{
			Order:    order,
			Title:    "Call-off Ordering Party information for " + order.OrderID,
			BackLink: order.Path(),
			Errors:   errs,
		},
		Name:    section.Name,
		OdsCode: section.OdsCode,
		Address: section.Address,
		Contact: form,
	}
}
