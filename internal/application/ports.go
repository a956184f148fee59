package application

import (
	"context"
	"time"

	"github.com/nhs-digital-gp-it-futures/order-form-sub000/internal/domain"
)

// CatalogueAPI is the port for the catalogue and pricing service (BAPI).
type CatalogueAPI interface {
	SearchSuppliers(ctx context.Context, name string) ([]domain.Supplier, error)
	GetSupplier(ctx context.Context, supplierID string) (*domain.SupplierDetail, error)
	ListCatalogueItems(ctx context.Context, supplierID string, itemType domain.CatalogueItemType) ([]domain.CatalogueItem, error)
	GetCatalogueItem(ctx context.Context, catalogueItemID string) (*domain.CatalogueItem, error)
	ListPrices(ctx context.Context, catalogueItemID string) ([]domain.Price, error)
}

// OrganisationAPI is the port for the organisation directory (OAPI).
type OrganisationAPI interface {
	GetOrganisation(ctx context.Context, orgID string) (*domain.Organisation, error)
	ListRelatedOrganisations(ctx context.Context, orgID string) ([]domain.Organisation, error)
	ListServiceRecipients(ctx context.Context, orgID string) ([]domain.ServiceRecipient, error)
}

// OrderAPI is the port for the order state service (ORDAPI).
type OrderAPI interface {
	GetOrderSummary(ctx context.Context, orderID string) (*domain.OrderSummary, error)

	GetSupplierSection(ctx context.Context, orderID string) (*domain.SupplierSection, error)
	PutSupplierSection(ctx context.Context, orderID string, section domain.SupplierSection) error
	GetOrderingPartySection(ctx context.Context, orderID string) (*domain.OrderingPartySection, error)
	PutOrderingPartySection(ctx context.Context, orderID string, section domain.OrderingPartySection) error
	GetCommencementDateSection(ctx context.Context, orderID string) (*domain.CommencementDateSection, error)
	PutCommencementDateSection(ctx context.Context, orderID string, section domain.CommencementDateSection) error
	GetServiceRecipientsSection(ctx context.Context, orderID string) (*domain.ServiceRecipientsSection, error)
	PutServiceRecipientsSection(ctx context.Context, orderID string, section domain.ServiceRecipientsSection) error

	ListOrderItems(ctx context.Context, orderID string, itemType domain.CatalogueItemType) ([]domain.OrderItem, error)
	GetOrderItem(ctx context.Context, orderID, orderItemID string) (*domain.OrderItem, error)
	CreateOrderItem(ctx context.Context, orderID string, item domain.OrderItem) (string, error)
	UpdateOrderItem(ctx context.Context, orderID, orderItemID string, item domain.OrderItem) error
}

// SessionStore is the port for server-side session state. Values are opaque
// JSON documents; found is false when the key was never written, was cleared,
// or has expired.
type SessionStore interface {
	Get(ctx context.Context, sessionID, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, sessionID, key string, value []byte) error
	// Clear removes the given keys, or every key of the session when none are
	// given.
	Clear(ctx context.Context, sessionID string, keys ...string) error
	// Touch restarts the lifetime of a live session. Unknown and expired
	// sessions are left alone.
	Touch(ctx context.Context, sessionID string) error
}

// ExpiredSessionRemover is implemented by session backends that cannot expire
// entries on their own.
type ExpiredSessionRemover interface {
	DeleteExpired(ctx context.Context, before time.Time, limit int) (int64, error)
}
