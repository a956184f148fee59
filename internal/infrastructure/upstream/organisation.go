package upstream

import (
	"context"

	"github.com/nhs-digital-gp-it-futures/order-form-sub000/internal/application"
	"github.com/nhs-digital-gp-it-futures/order-form-sub000/internal/domain"
)

var _ application.OrganisationAPI = (*OrganisationClient)(nil)

// OrganisationClient implements application.OrganisationAPI against OAPI.
type OrganisationClient struct {
	client *Client
}

func NewOrganisationClient(client *Client) *OrganisationClient {
	return &OrganisationClient{client: client}
}

func (c *OrganisationClient) GetOrganisation(ctx context.Context, orgID string) (*domain.Organisation, error) {
	org, err := getData[domain.Organisation](ctx, c.client, "/Organisations/"+pathID(orgID), nil)
	if err != nil {
		return nil, err
	}
	return &org, nil
}

func (c *OrganisationClient) ListRelatedOrganisations(ctx context.Context, orgID string) ([]domain.Organisation, error) {
	return nonNil(getData[[]domain.Organisation](ctx, c.client, "/Organisations/"+pathID(orgID)+"/related-organisations", nil))
}

func (c *OrganisationClient) ListServiceRecipients(ctx context.Context, orgID string) ([]domain.ServiceRecipient, error) {
	return nonNil(getData[[]domain.ServiceRecipient](ctx, c.client, "/Organisations/"+pathID(orgID)+"/service-recipients", nil))
}

// nonNil turns a JSON null list into an empty one so that it caches as a hit.
func nonNil[T any](items []T, err error) ([]T, error) {
	if err != nil {
		return nil, err
	}
	if items == nil {
		return []T{}, nil
	}
	return items, nil
}
