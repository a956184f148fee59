package domain

// Section names as exposed by the order API.
const (
	SectionOrderingParty     = "ordering-party"
	SectionSupplier          = "supplier"
	SectionCommencementDate  = "commencement-date"
	SectionServiceRecipients = "service-recipients"
	SectionCatalogueItems    = "catalogue-solutions"
	SectionAdditional        = "additional-services"
	SectionAssociated        = "associated-services"
)

type SectionStatus struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Count  int    `json:"count,omitempty"`
}

type OrderSummary struct {
	OrderID     string          `json:"orderId"`
	Description string          `json:"description"`
	Sections    []SectionStatus `json:"sections"`
}

// Section returns the status entry for id, or a zero value with Status
// "incomplete" when the order API did not report it.
func (o OrderSummary) Section(id string) SectionStatus {
	for _, s := range o.Sections {
		if s.ID == id {
			return s
		}
	}
	return SectionStatus{ID: id, Status: "incomplete"}
}

type SupplierSection struct {
	SupplierID     string   `json:"supplierId,omitempty"`
	Name           string   `json:"name,omitempty"`
	Address        *Address `json:"address,omitempty"`
	PrimaryContact *Contact `json:"primaryContact,omitempty"`
}

type OrderingPartySection struct {
	Name           string   `json:"name,omitempty"`
	OdsCode        string   `json:"odsCode,omitempty"`
	Address        *Address `json:"address,omitempty"`
	PrimaryContact *Contact `json:"primaryContact,omitempty"`
}

type CommencementDateSection struct {
	// CommencementDate is an ISO date (2006-01-02); empty when unset.
	CommencementDate string `json:"commencementDate,omitempty"`
}

type ServiceRecipientsSection struct {
	ServiceRecipients []ServiceRecipient `json:"serviceRecipients"`
}

type OrderItem struct {
	OrderItemID       string            `json:"orderItemId,omitempty"`
	CatalogueItemID   string            `json:"catalogueItemId"`
	CatalogueItemName string            `json:"catalogueItemName"`
	CatalogueItemType CatalogueItemType `json:"catalogueItemType"`
	ServiceRecipient  *ServiceRecipient `json:"serviceRecipient,omitempty"`
	DeliveryDate      string            `json:"deliveryDate,omitempty"`
	Quantity          int               `json:"quantity"`
	EstimationPeriod  string            `json:"estimationPeriod,omitempty"`
	PriceID           int               `json:"priceId,omitempty"`
	Price             float64           `json:"price"`
	Type              string            `json:"type,omitempty"`
	ProvisioningType  ProvisioningType  `json:"provisioningType,omitempty"`
	CurrencyCode      string            `json:"currencyCode,omitempty"`
	ItemUnit          *Unit             `json:"itemUnit,omitempty"`
	TimeUnit          *Unit             `json:"timeUnit,omitempty"`
}

func (o OrderItem) ItemID() string { return o.OrderItemID }
