package services

import (
	"github.com/nhs-digital-gp-it-futures/order-form-sub000/internal/application/validation"
	"github.com/nhs-digital-gp-it-futures/order-form-sub000/internal/domain"
)

// PageBase is embedded by every page view-model.
type PageBase struct {
	Order    OrderRef
	Title    string
	BackLink string
	Errors   []domain.ValidationError
}

func (p PageBase) HasErrors() bool {
	return len(p.Errors) > 0
}

type DashboardPage struct {
	PageBase
	OrganisationName string
	Description      string
	Sections         []DashboardSection
}

type DashboardSection struct {
	ID     string
	Title  string
	Href   string
	Status string
	Count  int
}

type OrderingPartyPage struct {
	PageBase
	Name    string
	OdsCode string
	Address *domain.Address
	Contact validation.ContactForm
}

type SupplierSearchPage struct {
	PageBase
	SupplierName string
}

type SupplierSelectPage struct {
	PageBase
	Suppliers []domain.Supplier
	Selected  string
}

type SupplierPage struct {
	PageBase
	SupplierID string
	Name       string
	Address    *domain.Address
	Contact    validation.ContactForm
	// SearchLink is shown while the supplier can still be changed.
	SearchLink string
}

type CommencementDatePage struct {
	PageBase
	Date validation.DateForm
}

type RecipientOption struct {
	domain.ServiceRecipient
	Selected bool
}

type ServiceRecipientsPage struct {
	PageBase
	Recipients  []RecipientOption
	SelectAll   string
	DeselectAll string
	AllSelected bool
}

type ItemListPage struct {
	PageBase
	SectionID string
	Items     []ItemListEntry
	AddLink   string
}

type ItemListEntry struct {
	domain.OrderItem
	Href string
}

// SelectPage is the radio-group page used for item, price and recipient
// choices.
type SelectPage struct {
	PageBase
	Field    string
	ItemName string
	Options  []SelectOption
	Selected string
}

type SelectOption struct {
	Value string
	Text  string
}

type DeliveryDatePage struct {
	PageBase
	ItemName      string
	RecipientName string
	Date          validation.DateForm
}

type OrderItemPage struct {
	PageBase
	ItemName                 string
	RecipientName            string
	RecipientOdsCode         string
	DeliveryDate             string
	PriceLabel               string
	ItemUnit                 string
	RequiresEstimationPeriod bool
	Form                     validation.OrderItemForm
	IsNew                    bool
}
