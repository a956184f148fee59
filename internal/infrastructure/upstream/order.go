package upstream

import (
	"context"
	"net/url"

	"github.com/nhs-digital-gp-it-futures/order-form-sub000/internal/application"
	"github.com/nhs-digital-gp-it-futures/order-form-sub000/internal/domain"
)

var _ application.OrderAPI = (*OrderClient)(nil)

// OrderClient implements application.OrderAPI against ORDAPI.
type OrderClient struct {
	client *Client
}

func NewOrderClient(client *Client) *OrderClient {
	return &OrderClient{client: client}
}

type createOrderItemResponse struct {
	OrderItemID string `json:"orderItemId"`
}

func orderPath(orderID string) string {
	return "/orders/" + pathID(orderID)
}

func sectionPath(orderID, section string) string {
	return orderPath(orderID) + "/sections/" + section
}

func (c *OrderClient) GetOrderSummary(ctx context.Context, orderID string) (*domain.OrderSummary, error) {
	summary, err := getData[domain.OrderSummary](ctx, c.client, orderPath(orderID)+"/summary", nil)
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

func getSection[T any](ctx context.Context, c *OrderClient, orderID, section string) (*T, error) {
	value, err := getData[T](ctx, c.client, sectionPath(orderID, section), nil)
	if err != nil {
		return nil, err
	}
	return &value, nil
}

func (c *OrderClient) GetSupplierSection(ctx context.Context, orderID string) (*domain.SupplierSection, error) {
	return getSection[domain.SupplierSection](ctx, c, orderID, domain.SectionSupplier)
}

func (c *OrderClient) PutSupplierSection(ctx context.Context, orderID string, section domain.SupplierSection) error {
	return putData(ctx, c.client, sectionPath(orderID, domain.SectionSupplier), section)
}

func (c *OrderClient) GetOrderingPartySection(ctx context.Context, orderID string) (*domain.OrderingPartySection, error) {
	return getSection[domain.OrderingPartySection](ctx, c, orderID, domain.SectionOrderingParty)
}

func (c *OrderClient) PutOrderingPartySection(ctx context.Context, orderID string, section domain.OrderingPartySection) error {
	return putData(ctx, c.client, sectionPath(orderID, domain.SectionOrderingParty), section)
}

func (c *OrderClient) GetCommencementDateSection(ctx context.Context, orderID string) (*domain.CommencementDateSection, error) {
	return getSection[domain.CommencementDateSection](ctx, c, orderID, domain.SectionCommencementDate)
}

func (c *OrderClient) PutCommencementDateSection(ctx context.Context, orderID string, section domain.CommencementDateSection) error {
	return putData(ctx, c.client, sectionPath(orderID, domain.SectionCommencementDate), section)
}

func (c *OrderClient) GetServiceRecipientsSection(ctx context.Context, orderID string) (*domain.ServiceRecipientsSection, error) {
	section, err := getSection[domain.ServiceRecipientsSection](ctx, c, orderID, domain.SectionServiceRecipients)
	if err != nil {
		return nil, err
	}
	if section.ServiceRecipients == nil {
		section.ServiceRecipients = []domain.ServiceRecipient{}
	}
	return section, nil
}

func (c *OrderClient) PutServiceRecipientsSection(ctx context.Context, orderID string, section domain.ServiceRecipientsSection) error {
	return putData(ctx, c.client, sectionPath(orderID, domain.SectionServiceRecipients), section)
}

func (c *OrderClient) ListOrderItems(ctx context.Context, orderID string, itemType domain.CatalogueItemType) ([]domain.OrderItem, error) {
	var query url.Values
	if itemType != "" {
		query = url.Values{"catalogueItemType": {string(itemType)}}
	}
	return nonNil(getData[[]domain.OrderItem](ctx, c.client, orderPath(orderID)+"/order-items", query))
}

func (c *OrderClient) GetOrderItem(ctx context.Context, orderID, orderItemID string) (*domain.OrderItem, error) {
	item, err := getData[domain.OrderItem](ctx, c.client, orderPath(orderID)+"/order-items/"+pathID(orderItemID), nil)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *OrderClient) CreateOrderItem(ctx context.Context, orderID string, item domain.OrderItem) (string, error) {
	resp, err := postData[domain.OrderItem, createOrderItemResponse](ctx, c.client, orderPath(orderID)+"/order-items", item)
	if err != nil {
		return "", err
	}
	return resp.OrderItemID, nil
}

func (c *OrderClient) UpdateOrderItem(ctx context.Context, orderID, orderItemID string, item domain.OrderItem) error {
	return putData(ctx, c.client, orderPath(orderID)+"/order-items/"+pathID(orderItemID), item)
}
