package upstream

import (
	"context"
	"net/url"
	"sort"
	"strings"

	"github.com/nhs-digital-gp-it-futures/order-form-sub000/internal/application"
	"github.com/nhs-digital-gp-it-futures/order-form-sub000/internal/domain"
)

var _ application.CatalogueAPI = (*CatalogueClient)(nil)

// CatalogueClient implements application.CatalogueAPI against BAPI.
type CatalogueClient struct {
	client *Client
}

func NewCatalogueClient(client *Client) *CatalogueClient {
	return &CatalogueClient{client: client}
}

type pricesResponse struct {
	Prices []domain.Price `json:"prices"`
}

func (c *CatalogueClient) SearchSuppliers(ctx context.Context, name string) ([]domain.Supplier, error) {
	return nonNil(getData[[]domain.Supplier](ctx, c.client, "/suppliers", url.Values{
		"name":                      {name},
		"solutionPublicationStatus": {"Published"},
	}))
}

func (c *CatalogueClient) GetSupplier(ctx context.Context, supplierID string) (*domain.SupplierDetail, error) {
	supplier, err := getData[domain.SupplierDetail](ctx, c.client, "/suppliers/"+pathID(supplierID), nil)
	if err != nil {
		return nil, err
	}
	return &supplier, nil
}

// ListCatalogueItems returns the supplier's items of one type ordered by name.
func (c *CatalogueClient) ListCatalogueItems(ctx context.Context, supplierID string, itemType domain.CatalogueItemType) ([]domain.CatalogueItem, error) {
	items, err := nonNil(getData[[]domain.CatalogueItem](ctx, c.client, "/catalogue-items", url.Values{
		"supplierId":        {supplierID},
		"catalogueItemType": {string(itemType)},
	}))
	if err != nil {
		return nil, err
	}

	sort.SliceStable(items, func(i, j int) bool {
		return strings.ToLower(items[i].Name) < strings.ToLower(items[j].Name)
	})
	return items, nil
}

func (c *CatalogueClient) GetCatalogueItem(ctx context.Context, catalogueItemID string) (*domain.CatalogueItem, error) {
	item, err := getData[domain.CatalogueItem](ctx, c.client, "/catalogue-items/"+pathID(catalogueItemID), nil)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *CatalogueClient) ListPrices(ctx context.Context, catalogueItemID string) ([]domain.Price, error) {
	resp, err := getData[pricesResponse](ctx, c.client, "/prices", url.Values{
		"catalogueItemId": {catalogueItemID},
	})
	if err != nil {
		return nil, err
	}
	return nonNil(resp.Prices, nil)
}
