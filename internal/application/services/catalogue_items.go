package services

import (
	"context"
	"strconv"

	"github.com/nhs-digital-gp-it-futures/order-form-sub000/internal/application"
	"github.com/nhs-digital-gp-it-futures/order-form-sub000/internal/application/session"
	"github.com/nhs-digital-gp-it-futures/order-form-sub000/internal/application/validation"
	"github.com/nhs-digital-gp-it-futures/order-form-sub000/internal/domain"
)

// NewOrderItemID is the path segment of the order item page before the item
// exists upstream.
const NewOrderItemID = "neworderitem"

// ItemSection configures the shared item flow for one order section.
type ItemSection struct {
	ID       string
	Title    string
	Noun     string
	ItemType domain.CatalogueItemType
	Keys     session.ItemFlowKeys

	ItemField  string
	PriceField string
	// RecipientField is empty when the ordering party is the only recipient.
	RecipientField string
	DeliveryDate   bool

	validateItem      func(validation.SelectionForm) domain.SelectionResult
	validatePrice     func(validation.SelectionForm) domain.SelectionResult
	validateRecipient func(validation.SelectionForm) domain.SelectionResult
}

var (
	SolutionsSection = ItemSection{
		ID:                domain.SectionCatalogueItems,
		Title:             "Catalogue Solutions",
		Noun:              "solution",
		ItemType:          domain.CatalogueItemTypeSolution,
		Keys:              session.SolutionKeys,
		ItemField:         "selectSolution",
		PriceField:        "selectSolutionPrice",
		RecipientField:    "selectSolutionRecipient",
		DeliveryDate:      true,
		validateItem:      validation.ValidateSolutionForm,
		validatePrice:     validation.ValidateSolutionPriceForm,
		validateRecipient: validation.ValidateSolutionRecipientForm,
	}

	AdditionalServicesSection = ItemSection{
		ID:                domain.SectionAdditional,
		Title:             "Additional Services",
		Noun:              "additional-service",
		ItemType:          domain.CatalogueItemTypeAdditionalService,
		Keys:              session.AdditionalServiceKeys,
		ItemField:         "selectAdditionalService",
		PriceField:        "selectAdditionalServicePrice",
		RecipientField:    "selectAdditionalServiceRecipient",
		validateItem:      validation.ValidateAdditionalServiceForm,
		validatePrice:     validation.ValidateAdditionalServicePriceForm,
		validateRecipient: validation.ValidateAdditionalServiceRecipientForm,
	}

	AssociatedServicesSection = ItemSection{
		ID:            domain.SectionAssociated,
		Title:         "Associated Services",
		Noun:          "associated-service",
		ItemType:      domain.CatalogueItemTypeAssociatedService,
		Keys:          session.AssociatedServiceKeys,
		ItemField:     "selectAssociatedService",
		PriceField:    "selectAssociatedServicePrice",
		validateItem:  validation.ValidateAssociatedServiceForm,
		validatePrice: validation.ValidateAssociatedServicePriceForm,
	}
)

// ItemSections lists the sections served by the item flow.
func ItemSections() []ItemSection {
	return []ItemSection{SolutionsSection, AdditionalServicesSection, AssociatedServicesSection}
}

func (sec ItemSection) listPath(order OrderRef) string {
	return order.Path(sec.ID)
}

func (sec ItemSection) itemPath(order OrderRef) string {
	return order.Path(sec.ID, "select", sec.Noun)
}

func (sec ItemSection) pricePath(order OrderRef) string {
	return order.Path(sec.ID, "select", sec.Noun, "price")
}

func (sec ItemSection) recipientPath(order OrderRef) string {
	return order.Path(sec.ID, "select", sec.Noun, "price", "recipient")
}

func (sec ItemSection) datePath(order OrderRef) string {
	return order.Path(sec.ID, "select", sec.Noun, "price", "recipient", "date")
}

func (sec ItemSection) orderItemPath(order OrderRef, orderItemID string) string {
	return order.Path(sec.ID, orderItemID)
}

// afterPrice is the step following a price choice.
func (sec ItemSection) afterPrice(order OrderRef) string {
	if sec.RecipientField != "" {
		return sec.recipientPath(order)
	}
	return sec.orderItemPath(order, NewOrderItemID)
}

func (sec ItemSection) afterRecipient(order OrderRef) string {
	if sec.DeliveryDate {
		return sec.datePath(order)
	}
	return sec.orderItemPath(order, NewOrderItemID)
}

type CatalogueItemService struct {
	orders    application.OrderAPI
	catalogue application.CatalogueAPI
}

func NewCatalogueItemService(orders application.OrderAPI, catalogue application.CatalogueAPI) *CatalogueItemService {
	return &CatalogueItemService{orders: orders, catalogue: catalogue}
}

// GetItems lists what the order already holds for the section and starts the
// section's flow afresh.
func (s *CatalogueItemService) GetItems(ctx context.Context, sess *session.Session, order OrderRef, sec ItemSection) (Outcome[ItemListPage], error) {
	if err := sess.Clear(ctx, sec.Keys.All()...); err != nil {
		return Outcome[ItemListPage]{}, err
	}

	items, err := s.orders.ListOrderItems(ctx, order.OrderID, sec.ItemType)
	if err != nil {
		return Outcome[ItemListPage]{}, err
	}

	page := &ItemListPage{
		PageBase: PageBase{
			Order:    order,
			Title:    sec.Title + " for " + order.OrderID,
			BackLink: order.Path(),
		},
		SectionID: sec.ID,
		AddLink:   sec.itemPath(order),
	}
	for _, item := range items {
		page.Items = append(page.Items, ItemListEntry{
			OrderItem: item,
			Href:      sec.orderItemPath(order, item.OrderItemID),
		})
	}
	return render(page), nil
}

func (s *CatalogueItemService) catalogueItems(ctx context.Context, sess *session.Session, order OrderRef, sec ItemSection) ([]domain.CatalogueItem, error) {
	return session.GetFromSessionOrAPI(ctx, sess, sec.Keys.Items, func(ctx context.Context) ([]domain.CatalogueItem, error) {
		supplier, err := s.orders.GetSupplierSection(ctx, order.OrderID)
		if err != nil {
			return nil, err
		}
		if supplier.SupplierID == "" {
			return nil, domain.NewMissingSelectionError(domain.SectionSupplier)
		}
		return s.catalogue.ListCatalogueItems(ctx, supplier.SupplierID, sec.ItemType)
	})
}

func (s *CatalogueItemService) GetSelectItem(ctx context.Context, sess *session.Session, order OrderRef, sec ItemSection) (Outcome[SelectPage], error) {
	items, err := s.catalogueItems(ctx, sess, order, sec)
	if err != nil {
		return Outcome[SelectPage]{}, err
	}
	selected, err := session.GetOrZero(ctx, sess, sec.Keys.SelectedItemID)
	if err != nil {
		return Outcome[SelectPage]{}, err
	}
	return render(s.selectItemPage(order, sec, items, selected, nil)), nil
}

func (s *CatalogueItemService) PostSelectItem(ctx context.Context, sess *session.Session, order OrderRef, sec ItemSection, form validation.SelectionForm) (Outcome[SelectPage], error) {
	if result := sec.validateItem(form); !result.Success {
		items, err := s.catalogueItems(ctx, sess, order, sec)
		if err != nil {
			return Outcome[SelectPage]{}, err
		}
		return render(s.selectItemPage(order, sec, items, "", result.Errors)), nil
	}

	item, err := session.FindSelectedItem(ctx, sess, sec.Keys.Items, form.Value)
	if err != nil {
		return Outcome[SelectPage]{}, err
	}

	if err := sess.Clear(ctx, sec.Keys.Prices, sec.Keys.SelectedPriceID); err != nil {
		return Outcome[SelectPage]{}, err
	}
	if err := session.Set(ctx, sess, sec.Keys.SelectedItemID, item.ID); err != nil {
		return Outcome[SelectPage]{}, err
	}
	if err := session.Set(ctx, sess, sec.Keys.SelectedItemName, item.Name); err != nil {
		return Outcome[SelectPage]{}, err
	}

	existing, err := s.orders.ListOrderItems(ctx, order.OrderID, sec.ItemType)
	if err != nil {
		return Outcome[SelectPage]{}, err
	}
	for _, orderItem := range existing {
		if orderItem.CatalogueItemID == item.ID {
			return redirectTo[SelectPage](sec.orderItemPath(order, orderItem.OrderItemID)), nil
		}
	}
	return redirectTo[SelectPage](sec.pricePath(order)), nil
}

func (s *CatalogueItemService) selectItemPage(order OrderRef, sec ItemSection, items []domain.CatalogueItem, selected string, errs []domain.ValidationError) *SelectPage {
	page := &SelectPage{
		PageBase: PageBase{
			Order:    order,
			Title:    "Add " + sec.Title,
			BackLink: sec.listPath(order),
			Errors:   errs,
		},
		Field:    sec.ItemField,
		Selected: selected,
	}
	for _, item := range items {
		page.Options = append(page.Options, SelectOption{Value: item.ID, Text: item.Name})
	}
	return page
}

func requireString(ctx context.Context, sess *session.Session, key session.Key[string]) (string, error) {
	value, err := session.GetOrZero(ctx, sess, key)
	if err != nil {
		return "", err
	}
	if value == "" {
		return "", domain.NewMissingSelectionError(key.Name())
	}
	return value, nil
}

func (s *CatalogueItemService) prices(ctx context.Context, sess *session.Session, sec ItemSection) ([]domain.Price, error) {
	itemID, err := requireString(ctx, sess, sec.Keys.SelectedItemID)
	if err != nil {
		return nil, err
	}
	return session.GetFromSessionOrAPI(ctx, sess, sec.Keys.Prices, func(ctx context.Context) ([]domain.Price, error) {
		return s.catalogue.ListPrices(ctx, itemID)
	})
}

// itemName refetches the selected item when the session kept its ID but not
// its name.
func (s *CatalogueItemService) itemName(ctx context.Context, sess *session.Session, sec ItemSection) (string, error) {
	return session.GetFromSessionOrAPI(ctx, sess, sec.Keys.SelectedItemName, func(ctx context.Context) (string, error) {
		itemID, err := requireString(ctx, sess, sec.Keys.SelectedItemID)
		if err != nil {
			return "", err
		}
		item, err := s.catalogue.GetCatalogueItem(ctx, itemID)
		if err != nil {
			return "", err
		}
		return item.Name, nil
	})
}

// GetSelectPrice skips itself when the item has a single price.
func (s *CatalogueItemService) GetSelectPrice(ctx context.Context, sess *session.Session, order OrderRef, sec ItemSection) (Outcome[SelectPage], error) {
	prices, err := s.prices(ctx, sess, sec)
	if err != nil {
		return Outcome[SelectPage]{}, err
	}

	if len(prices) == 1 {
		if err := session.Set(ctx, sess, sec.Keys.SelectedPriceID, prices[0].ItemID()); err != nil {
			return Outcome[SelectPage]{}, err
		}
		return redirectTo[SelectPage](sec.afterPrice(order)), nil
	}

	itemName, err := s.itemName(ctx, sess, sec)
	if err != nil {
		return Outcome[SelectPage]{}, err
	}
	selected, err := session.GetOrZero(ctx, sess, sec.Keys.SelectedPriceID)
	if err != nil {
		return Outcome[SelectPage]{}, err
	}
	return render(s.selectPricePage(order, sec, itemName, prices, selected, nil)), nil
}

func (s *CatalogueItemService) PostSelectPrice(ctx context.Context, sess *session.Session, order OrderRef, sec ItemSection, form validation.SelectionForm) (Outcome[SelectPage], error) {
	if result := sec.validatePrice(form); !result.Success {
		prices, err := s.prices(ctx, sess, sec)
		if err != nil {
			return Outcome[SelectPage]{}, err
		}
		itemName, err := s.itemName(ctx, sess, sec)
		if err != nil {
			return Outcome[SelectPage]{}, err
		}
		return render(s.selectPricePage(order, sec, itemName, prices, "", result.Errors)), nil
	}

	price, err := session.FindSelectedItem(ctx, sess, sec.Keys.Prices, form.Value)
	if err != nil {
		return Outcome[SelectPage]{}, err
	}
	if err := session.Set(ctx, sess, sec.Keys.SelectedPriceID, price.ItemID()); err != nil {
		return Outcome[SelectPage]{}, err
	}
	return redirectTo[SelectPage](sec.afterPrice(order)), nil
}

func (s *CatalogueItemService) selectPricePage(order OrderRef, sec ItemSection, itemName string, prices []domain.Price, selected string, errs []domain.ValidationError) *SelectPage {
	page := &SelectPage{
		PageBase: PageBase{
			Order:    order,
			Title:    "List price for " + itemName,
			BackLink: sec.itemPath(order),
			Errors:   errs,
		},
		Field:    sec.PriceField,
		ItemName: itemName,
		Selected: selected,
	}
	for _, p := range prices {
		page.Options = append(page.Options, SelectOption{Value: p.ItemID(), Text: p.Label()})
	}
	return page
}

// priceBackLink is the Back target of the step after the price choice. With a
// single price the price step only forwards, so Back goes to item selection.
func (s *CatalogueItemService) priceBackLink(ctx context.Context, sess *session.Session, order OrderRef, sec ItemSection) (string, error) {
	prices, err := session.GetOrZero(ctx, sess, sec.Keys.Prices)
	if err != nil {
		return "", err
	}
	if len(prices) == 1 {
		return sec.itemPath(order), nil
	}
	return sec.pricePath(order), nil
}

func (s *CatalogueItemService) orderRecipients(ctx context.Context, sess *session.Session, order OrderRef, sec ItemSection) ([]domain.ServiceRecipient, error) {
	return session.GetFromSessionOrAPI(ctx, sess, sec.Keys.Recipients, func(ctx context.Context) ([]domain.ServiceRecipient, error) {
		section, err := s.orders.GetServiceRecipientsSection(ctx, order.OrderID)
		if err != nil {
			return nil, err
		}
		return section.ServiceRecipients, nil
	})
}

func (s *CatalogueItemService) GetSelectRecipient(ctx context.Context, sess *session.Session, order OrderRef, sec ItemSection) (Outcome[SelectPage], error) {
	if sec.RecipientField == "" {
		return redirectTo[SelectPage](sec.orderItemPath(order, NewOrderItemID)), nil
	}

	itemName, err := session.GetOrZero(ctx, sess, sec.Keys.SelectedItemName)
	if err != nil {
		return Outcome[SelectPage]{}, err
	}
	recipients, err := s.orderRecipients(ctx, sess, order, sec)
	if err != nil {
		return Outcome[SelectPage]{}, err
	}
	selected, err := session.GetOrZero(ctx, sess, sec.Keys.SelectedRecipient)
	if err != nil {
		return Outcome[SelectPage]{}, err
	}
	backLink, err := s.priceBackLink(ctx, sess, order, sec)
	if err != nil {
		return Outcome[SelectPage]{}, err
	}
	return render(s.selectRecipientPage(order, sec, backLink, itemName, recipients, selected, nil)), nil
}

func (s *CatalogueItemService) PostSelectRecipient(ctx context.Context, sess *session.Session, order OrderRef, sec ItemSection, form validation.SelectionForm) (Outcome[SelectPage], error) {
	if sec.RecipientField == "" {
		return redirectTo[SelectPage](sec.orderItemPath(order, NewOrderItemID)), nil
	}

	if result := sec.validateRecipient(form); !result.Success {
		itemName, err := session.GetOrZero(ctx, sess, sec.Keys.SelectedItemName)
		if err != nil {
			return Outcome[SelectPage]{}, err
		}
		recipients, err := s.orderRecipients(ctx, sess, order, sec)
		if err != nil {
			return Outcome[SelectPage]{}, err
		}
		backLink, err := s.priceBackLink(ctx, sess, order, sec)
		if err != nil {
			return Outcome[SelectPage]{}, err
		}
		return render(s.selectRecipientPage(order, sec, backLink, itemName, recipients, "", result.Errors)), nil
	}

	recipient, err := session.FindSelectedItem(ctx, sess, sec.Keys.Recipients, form.Value)
	if err != nil {
		return Outcome[SelectPage]{}, err
	}
	if err := session.Set(ctx, sess, sec.Keys.SelectedRecipient, recipient.OdsCode); err != nil {
		return Outcome[SelectPage]{}, err
	}
	if err := session.Set(ctx, sess, sec.Keys.RecipientName, recipient.Name); err != nil {
		return Outcome[SelectPage]{}, err
	}
	return redirectTo[SelectPage](sec.afterRecipient(order)), nil
}

func (s *CatalogueItemService) selectRecipientPage(order OrderRef, sec ItemSection, backLink, itemName string, recipients []domain.ServiceRecipient, selected string, errs []domain.ValidationError) *SelectPage {
	page := &SelectPage{
		PageBase: PageBase{
			Order:    order,
			Title:    "Service Recipient for " + itemName,
			BackLink: backLink,
			Errors:   errs,
		},
		Field:    sec.RecipientField,
		ItemName: itemName,
		Selected: selected,
	}
	for _, r := range recipients {
		page.Options = append(page.Options, SelectOption{Value: r.OdsCode, Text: r.Name + " (" + r.OdsCode + ")"})
	}
	return page
}

// GetDeliveryDate pre-fills from this run of the flow, then from the order's
// commencement date.
func (s *CatalogueItemService) GetDeliveryDate(ctx context.Context, sess *session.Session, order OrderRef, sec ItemSection) (Outcome[DeliveryDatePage], error) {
	if !sec.DeliveryDate {
		return redirectTo[DeliveryDatePage](sec.orderItemPath(order, NewOrderItemID)), nil
	}

	date, err := session.GetOrZero(ctx, sess, sec.Keys.DeliveryDate)
	if err != nil {
		return Outcome[DeliveryDatePage]{}, err
	}
	if date == "" {
		commencement, err := s.orders.GetCommencementDateSection(ctx, order.OrderID)
		if err != nil {
			return Outcome[DeliveryDatePage]{}, err
		}
		date = commencement.CommencementDate
	}

	page, err := s.deliveryDatePage(ctx, sess, order, sec, validation.DateFormOf("deliveryDate", date), nil)
	if err != nil {
		return Outcome[DeliveryDatePage]{}, err
	}
	return render(page), nil
}

func (s *CatalogueItemService) PostDeliveryDate(ctx context.Context, sess *session.Session, order OrderRef, sec ItemSection, form validation.DateForm) (Outcome[DeliveryDatePage], error) {
	if !sec.DeliveryDate {
		return redirectTo[DeliveryDatePage](sec.orderItemPath(order, NewOrderItemID)), nil
	}

	form.Field = "deliveryDate"
	if result := validation.ValidateDeliveryDateForm(form); !result.Success {
		page, err := s.deliveryDatePage(ctx, sess, order, sec, form, result.Errors)
		if err != nil {
			return Outcome[DeliveryDatePage]{}, err
		}
		return render(page), nil
	}

	if err := session.Set(ctx, sess, sec.Keys.DeliveryDate, form.ISO()); err != nil {
		return Outcome[DeliveryDatePage]{}, err
	}
	return redirectTo[DeliveryDatePage](sec.orderItemPath(order, NewOrderItemID)), nil
}

func (s *CatalogueItemService) deliveryDatePage(ctx context.Context, sess *session.Session, order OrderRef, sec ItemSection, form validation.DateForm, errs []domain.ValidationError) (*DeliveryDatePage, error) {
	itemName, err := session.GetOrZero(ctx, sess, sec.Keys.SelectedItemName)
	if err != nil {
		return nil, err
	}
	recipientName, err := session.GetOrZero(ctx, sess, sec.Keys.RecipientName)
	if err != nil {
		return nil, err
	}
	return &DeliveryDatePage{
		PageBase: PageBase{
			Order:    order,
			Title:    "Planned delivery date",
			BackLink: sec.recipientPath(order),
			Errors:   errs,
		},
		ItemName:      itemName,
		RecipientName: recipientName,
		Date:          form,
	}, nil
}

// draftOrderItem assembles the order item the session describes, before the
// user has entered quantity and price.
func (s *CatalogueItemService) draftOrderItem(ctx context.Context, sess *session.Session, order OrderRef, sec ItemSection) (*domain.OrderItem, error) {
	itemID, err := requireString(ctx, sess, sec.Keys.SelectedItemID)
	if err != nil {
		return nil, err
	}
	itemName, err := s.itemName(ctx, sess, sec)
	if err != nil {
		return nil, err
	}
	priceID, err := requireString(ctx, sess, sec.Keys.SelectedPriceID)
	if err != nil {
		return nil, err
	}
	price, err := session.FindSelectedItem(ctx, sess, sec.Keys.Prices, priceID)
	if err != nil {
		return nil, err
	}

	item := &domain.OrderItem{
		CatalogueItemID:   itemID,
		CatalogueItemName: itemName,
		CatalogueItemType: sec.ItemType,
		PriceID:           price.ID,
		Price:             price.Price,
		Type:              price.Type,
		ProvisioningType:  price.ProvisioningType,
		CurrencyCode:      price.CurrencyCode,
		ItemUnit:          &price.ItemUnit,
		TimeUnit:          price.TimeUnit,
	}

	if sec.RecipientField != "" {
		odsCode, err := requireString(ctx, sess, sec.Keys.SelectedRecipient)
		if err != nil {
			return nil, err
		}
		name, err := session.GetOrZero(ctx, sess, sec.Keys.RecipientName)
		if err != nil {
			return nil, err
		}
		item.ServiceRecipient = &domain.ServiceRecipient{Name: name, OdsCode: odsCode}
	} else {
		party, err := s.orders.GetOrderingPartySection(ctx, order.OrderID)
		if err != nil {
			return nil, err
		}
		item.ServiceRecipient = &domain.ServiceRecipient{Name: party.Name, OdsCode: party.OdsCode}
	}

	if sec.DeliveryDate {
		item.DeliveryDate, err = requireString(ctx, sess, sec.Keys.DeliveryDate)
		if err != nil {
			return nil, err
		}
	}
	return item, nil
}

func (s *CatalogueItemService) loadOrderItem(ctx context.Context, sess *session.Session, order OrderRef, sec ItemSection, orderItemID string) (*domain.OrderItem, error) {
	if orderItemID == NewOrderItemID {
		return s.draftOrderItem(ctx, sess, order, sec)
	}
	return s.orders.GetOrderItem(ctx, order.OrderID, orderItemID)
}

func (s *CatalogueItemService) GetOrderItem(ctx context.Context, sess *session.Session, order OrderRef, sec ItemSection, orderItemID string) (Outcome[OrderItemPage], error) {
	item, err := s.loadOrderItem(ctx, sess, order, sec, orderItemID)
	if err != nil {
		return Outcome[OrderItemPage]{}, err
	}
	backLink, err := s.orderItemBackLink(ctx, sess, order, sec, orderItemID)
	if err != nil {
		return Outcome[OrderItemPage]{}, err
	}

	form := validation.OrderItemForm{
		Price:                    strconv.FormatFloat(item.Price, 'f', -1, 64),
		RequiresEstimationPeriod: requiresEstimationPeriod(item),
	}
	if orderItemID == NewOrderItemID {
		if item.TimeUnit != nil && (item.TimeUnit.Name == "month" || item.TimeUnit.Name == "year") {
			form.EstimationPeriod = item.TimeUnit.Name
		}
	} else {
		form.Quantity = strconv.Itoa(item.Quantity)
		form.EstimationPeriod = item.EstimationPeriod
	}
	return render(s.orderItemPage(order, orderItemID, backLink, item, form, nil)), nil
}

// PostOrderItem creates the item upstream for neworderitem and updates it
// otherwise.
func (s *CatalogueItemService) PostOrderItem(ctx context.Context, sess *session.Session, order OrderRef, sec ItemSection, orderItemID string, form validation.OrderItemForm) (Outcome[OrderItemPage], error) {
	item, err := s.loadOrderItem(ctx, sess, order, sec, orderItemID)
	if err != nil {
		return Outcome[OrderItemPage]{}, err
	}
	backLink, err := s.orderItemBackLink(ctx, sess, order, sec, orderItemID)
	if err != nil {
		return Outcome[OrderItemPage]{}, err
	}

	form.RequiresEstimationPeriod = requiresEstimationPeriod(item)
	if result := validation.ValidateOrderItemForm(form); !result.Success {
		return render(s.orderItemPage(order, orderItemID, backLink, item, form, result.Errors)), nil
	}

	submitted := *item
	submitted.Quantity, _ = strconv.Atoi(form.Quantity)
	submitted.Price, _ = strconv.ParseFloat(form.Price, 64)
	submitted.EstimationPeriod = ""
	if form.RequiresEstimationPeriod {
		submitted.EstimationPeriod = form.EstimationPeriod
	}

	if orderItemID == NewOrderItemID {
		_, err = s.orders.CreateOrderItem(ctx, order.OrderID, submitted)
	} else {
		err = s.orders.UpdateOrderItem(ctx, order.OrderID, orderItemID, submitted)
	}
	if err != nil {
		errs, err := translateValidation(err)
		if err != nil {
			return Outcome[OrderItemPage]{}, err
		}
		return render(s.orderItemPage(order, orderItemID, backLink, item, form, errs)), nil
	}

	return redirectTo[OrderItemPage](sec.listPath(order)), nil
}

func requiresEstimationPeriod(item *domain.OrderItem) bool {
	return domain.Price{ProvisioningType: item.ProvisioningType}.RequiresEstimationPeriod()
}

// orderItemBackLink retraces the select steps for a new item; an existing
// item goes back to the section list.
func (s *CatalogueItemService) orderItemBackLink(ctx context.Context, sess *session.Session, order OrderRef, sec ItemSection, orderItemID string) (string, error) {
	switch {
	case orderItemID != NewOrderItemID:
		return sec.listPath(order), nil
	case sec.DeliveryDate:
		return sec.datePath(order), nil
	case sec.RecipientField != "":
		return sec.recipientPath(order), nil
	}
	return s.priceBackLink(ctx, sess, order, sec)
}

func (s *CatalogueItemService) orderItemPage(order OrderRef, orderItemID, backLink string, item *domain.OrderItem, form validation.OrderItemForm, errs []domain.ValidationError) *OrderItemPage {
	page := &OrderItemPage{
		PageBase: PageBase{
			Order:    order,
			Title:    item.CatalogueItemName + " information for " + order.OrderID,
			BackLink: backLink,
			Errors:   errs,
		},
		ItemName:                 item.CatalogueItemName,
		DeliveryDate:             item.DeliveryDate,
		RequiresEstimationPeriod: requiresEstimationPeriod(item),
		Form:                     form,
		IsNew:                    orderItemID == NewOrderItemID,
	}
	if item.ServiceRecipient != nil {
		page.RecipientName = item.ServiceRecipient.Name
		page.RecipientOdsCode = item.ServiceRecipient.OdsCode
	}
	if item.ItemUnit != nil {
		page.ItemUnit = item.ItemUnit.Description
		page.PriceLabel = domain.Price{Price: item.Price, ItemUnit: *item.ItemUnit, TimeUnit: item.TimeUnit}.Label()
	}
	return page
}
