package services

import (
	"context"

	"github.com/nhs-digital-gp-it-futures/order-form-sub000/internal/application"
	"github.com/nhs-digital-gp-it-futures/order-form-sub000/internal/application/session"
	"github.com/nhs-digital-gp-it-futures/order-form-sub000/internal/domain"
)

const (
	SelectStatusSelect   = "select"
	SelectStatusDeselect = "deselect"
)

type ServiceRecipientsService struct {
	orders        application.OrderAPI
	organisations application.OrganisationAPI
	resolver      *OrganisationResolver
}

func NewServiceRecipientsService(orders application.OrderAPI, organisations application.OrganisationAPI, resolver *OrganisationResolver) *ServiceRecipientsService {
	return &ServiceRecipientsService{orders: orders, organisations: organisations, resolver: resolver}
}

func (s *ServiceRecipientsService) available(ctx context.Context, sess *session.Session, order OrderRef) ([]domain.ServiceRecipient, error) {
	orgID, err := s.resolver.Resolve(ctx, sess, order.OdsCode)
	if err != nil {
		return nil, err
	}
	return session.GetFromSessionOrAPI(ctx, sess, session.OrganisationRecipients, func(ctx context.Context) ([]domain.ServiceRecipient, error) {
		return s.organisations.ListServiceRecipients(ctx, orgID)
	})
}

// Get lists every recipient of the organisation. selectStatus overrides the
// saved selection with all or none.
func (s *ServiceRecipientsService) Get(ctx context.Context, sess *session.Session, order OrderRef, selectStatus string) (Outcome[ServiceRecipientsPage], error) {
	recipients, err := s.available(ctx, sess, order)
	if err != nil {
		return Outcome[ServiceRecipientsPage]{}, err
	}

	selected := make(map[string]bool)
	switch selectStatus {
	case SelectStatusSelect:
		for _, r := range recipients {
			selected[r.OdsCode] = true
		}
	case SelectStatusDeselect:
	default:
		section, err := s.orders.GetServiceRecipientsSection(ctx, order.OrderID)
		if err != nil {
			return Outcome[ServiceRecipientsPage]{}, err
		}
		for _, r := range section.ServiceRecipients {
			selected[r.OdsCode] = true
		}
	}

	return render(s.page(order, recipients, selected, nil)), nil
}

func (s *ServiceRecipientsService) Post(ctx context.Context, sess *session.Session, order OrderRef, odsCodes []string) (Outcome[ServiceRecipientsPage], error) {
	recipients, err := s.available(ctx, sess, order)
	if err != nil {
		return Outcome[ServiceRecipientsPage]{}, err
	}

	chosen := make([]domain.ServiceRecipient, 0, len(odsCodes))
	selected := make(map[string]bool, len(odsCodes))
	for _, code := range odsCodes {
		if selected[code] {
			continue
		}
		recipient, err := session.FindSelectedItem(ctx, sess, session.OrganisationRecipients, code)
		if err != nil {
			return Outcome[ServiceRecipientsPage]{}, err
		}
		chosen = append(chosen, recipient)
		selected[code] = true
	}

	section := domain.ServiceRecipientsSection{ServiceRecipients: chosen}
	if err := s.orders.PutServiceRecipientsSection(ctx, order.OrderID, section); err != nil {
		errs, err := translateValidation(err)
		if err != nil {
			return Outcome[ServiceRecipientsPage]{}, err
		}
		return render(s.page(order, recipients, selected, errs)), nil
	}
	return redirectTo[ServiceRecipientsPage](order.Path()), nil
}

func (s *ServiceRecipientsService) page(order OrderRef, recipients []domain.ServiceRecipient, selected map[string]bool, errs []domain.ValidationError) *ServiceRecipientsPage {
	page := &ServiceRecipientsPage{
		PageBase: PageBase{
			Order:    order,
			Title:    "Service Recipients for " + order.OrderID,
			BackLink: order.Path(),
			Errors:   errs,
		},
		SelectAll:   order.Path(domain.SectionServiceRecipients) + "?selectStatus=" + SelectStatusSelect,
		DeselectAll: order.Path(domain.SectionServiceRecipients) + "?selectStatus=" + SelectStatusDeselect,
		AllSelected: len(recipients) > 0,
	}
	for _, r := range recipients {
		option := RecipientOption{ServiceRecipient: r, Selected: selected[r.OdsCode]}
		if !option.Selected {
			page.AllSelected = false
		}
		page.Recipients = append(page.Recipients, option)
	}
	return page
}
