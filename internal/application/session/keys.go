package session

import "github.com/nhs-digital-gp-it-futures/order-form-sub000/internal/domain"

// Order-wide keys.
var (
	OrgIDsByOdsCode = NewKey[map[string]string]("orgIdsByOdsCode")

	SupplierSearchResults = NewKey[[]domain.Supplier]("suppliersFound")
	SelectedSupplierID    = NewKey[string]("selectedSupplier")
	SelectedSupplier      = NewKey[domain.SupplierDetail]("selectedSupplierDetail")

	OrganisationRecipients = NewKey[[]domain.ServiceRecipient]("organisationServiceRecipients")
)

// ItemFlowKeys are the keys one catalogue item section writes while the user
// moves from picking an item to the order item page. Sections use disjoint
// prefixes so that resetting one leaves the others intact.
type ItemFlowKeys struct {
	Items             Key[[]domain.CatalogueItem]
	SelectedItemID    Key[string]
	SelectedItemName  Key[string]
	Prices            Key[[]domain.Price]
	SelectedPriceID   Key[string]
	Recipients        Key[[]domain.ServiceRecipient]
	SelectedRecipient Key[string]
	RecipientName     Key[string]
	DeliveryDate      Key[string]
}

func NewItemFlowKeys(prefix string) ItemFlowKeys {
	return ItemFlowKeys{
		Items:             NewKey[[]domain.CatalogueItem](prefix + "Items"),
		SelectedItemID:    NewKey[string](prefix + "SelectedItemId"),
		SelectedItemName:  NewKey[string](prefix + "SelectedItemName"),
		Prices:            NewKey[[]domain.Price](prefix + "Prices"),
		SelectedPriceID:   NewKey[string](prefix + "SelectedPriceId"),
		Recipients:        NewKey[[]domain.ServiceRecipient](prefix + "Recipients"),
		SelectedRecipient: NewKey[string](prefix + "SelectedRecipientId"),
		RecipientName:     NewKey[string](prefix + "SelectedRecipientName"),
		DeliveryDate:      NewKey[string](prefix + "PlannedDeliveryDate"),
	}
}

// All lists every key in the flow, for resets.
func (k ItemFlowKeys) All() []Named {
	return []Named{
		k.Items, k.SelectedItemID, k.SelectedItemName, k.Prices, k.SelectedPriceID,
		k.Recipients, k.SelectedRecipient, k.RecipientName, k.DeliveryDate,
	}
}

var (
	SolutionKeys          = NewItemFlowKeys("solution")
	AdditionalServiceKeys = NewItemFlowKeys("additionalService")
	AssociatedServiceKeys = NewItemFlowKeys("associatedService")
)

// WizardKeys is everything the dashboard clears when the user returns to it.
func WizardKeys() []Named {
	keys := []Named{SupplierSearchResults, SelectedSupplierID, SelectedSupplier, OrganisationRecipients}
	keys = append(keys, SolutionKeys.All()...)
	keys = append(keys, AdditionalServiceKeys.All()...)
	keys = append(keys, AssociatedServiceKeys.All()...)
	return keys
}
