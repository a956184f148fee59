package services

import (
	"context"

	"github.com/nhs-digital-gp-it-futures/order-form-sub000/internal/application"
	"github.com/nhs-digital-gp-it-futures/order-form-sub000/internal/application/session"
	"github.com/nhs-digital-gp-it-futures/order-form-sub000/internal/domain"
)

var dashboardSections = []struct {
	id    string
	title string
}{
	{domain.SectionOrderingParty, "Call-off Ordering Party information"},
	{domain.SectionSupplier, "Supplier information"},
	{domain.SectionCommencementDate, "Commencement date"},
	{domain.SectionServiceRecipients, "Service Recipients"},
	{domain.SectionCatalogueItems, "Catalogue Solutions"},
	{domain.SectionAdditional, "Additional Services"},
	{domain.SectionAssociated, "Associated Services"},
}

type DashboardService struct {
	orders        application.OrderAPI
	organisations application.OrganisationAPI
	resolver      *OrganisationResolver
}

func NewDashboardService(orders application.OrderAPI, organisations application.OrganisationAPI, resolver *OrganisationResolver) *DashboardService {
	return &DashboardService{orders: orders, organisations: organisations, resolver: resolver}
}

// Get resets every in-progress selection and renders the section list.
func (s *DashboardService) Get(ctx context.Context, sess *session.Session, order OrderRef) (Outcome[DashboardPage], error) {
	orgID, err := s.resolver.Resolve(ctx, sess, order.OdsCode)
	if err != nil {
		return Outcome[DashboardPage]{}, err
	}

	if err := sess.Clear(ctx, session.WizardKeys()...); err != nil {
		return Outcome[DashboardPage]{}, err
	}

	summary, err := s.orders.GetOrderSummary(ctx, order.OrderID)
	if err != nil {
		return Outcome[DashboardPage]{}, err
	}
	org, err := s.organisations.GetOrganisation(ctx, orgID)
	if err != nil {
		return Outcome[DashboardPage]{}, err
	}

	page := &DashboardPage{
		PageBase: PageBase{
			Order: order,
			Title: "Order " + order.OrderID,
		},
		OrganisationName: org.Name,
		Description:      summary.Description,
	}
	for _, sec := range dashboardSections {
		status := summary.Section(sec.id)
		page.Sections = append(page.Sections, DashboardSection{
			ID:     sec.id,
			Title:  sec.title,
			Href:   order.Path(sec.id),
			Status: status.Status,
			Count:  status.Count,
		})
	}
	return render(page), nil
}
