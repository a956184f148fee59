package services

import (
	"context"

	"github.com/nhs-digital-gp-it-futures/order-form-sub000/internal/application"
	"github.com/nhs-digital-gp-it-futures/order-form-sub000/internal/application/session"
	"github.com/nhs-digital-gp-it-futures/order-form-sub000/internal/domain"
)

// OrganisationResolver maps the ODS code in the URL to the organisation id
// the upstream services are keyed by. The table covers the user's own
// organisation and the ones related to it, and is cached in session.
type OrganisationResolver struct {
	organisations application.OrganisationAPI
}

func NewOrganisationResolver(organisations application.OrganisationAPI) *OrganisationResolver {
	return &OrganisationResolver{organisations: organisations}
}

func (r *OrganisationResolver) Resolve(ctx context.Context, sess *session.Session, odsCode string) (string, error) {
	table, err := session.GetFromSessionOrAPI(ctx, sess, session.OrgIDsByOdsCode, r.fetchTable)
	if err != nil {
		return "", err
	}

	orgID, ok := table[odsCode]
	if !ok {
		return "", domain.NewUnknownOrganisationError(odsCode)
	}
	return orgID, nil
}

func (r *OrganisationResolver) fetchTable(ctx context.Context) (map[string]string, error) {
	identity, ok := application.IdentityFromContext(ctx)
	if !ok || identity.OrganisationID == "" {
		return nil, application.NewUnauthenticatedError("no primary organisation")
	}

	primary, err := r.organisations.GetOrganisation(ctx, identity.OrganisationID)
	if err != nil {
		return nil, err
	}
	related, err := r.organisations.ListRelatedOrganisations(ctx, identity.OrganisationID)
	if err != nil {
		return nil, err
	}

	table := make(map[string]string, len(related)+1)
	for _, org := range related {
		table[org.OdsCode] = org.ID
	}
	table[primary.OdsCode] = primary.ID
	return table, nil
}
