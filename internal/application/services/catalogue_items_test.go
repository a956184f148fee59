package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/nhs-digital-gp-it-futures/order-form-sub000/internal/application"
	"github.com/nhs-digital-gp-it-futures/order-form-sub000/internal/application/mocks"
	"github.com/nhs-digital-gp-it-futures/order-form-sub000/internal/application/services"
	"github.com/nhs-digital-gp-it-futures/order-form-sub000/internal/application/session"
	"github.com/nhs-digital-gp-it-futures/order-form-sub000/internal/application/validation"
	"github.com/nhs-digital-gp-it-futures/order-form-sub000/internal/domain"
)

var (
	perPatientPerYear = domain.Price{
		ID:               1,
		Type:             "flat",
		ProvisioningType: domain.ProvisioningPatient,
		CurrencyCode:     "GBP",
		ItemUnit:         domain.Unit{Name: "patient", Description: "per patient"},
		TimeUnit:         &domain.Unit{Name: "year", Description: "per year"},
		Price:            1.64,
	}
	perPractice = domain.Price{
		ID:               2,
		Type:             "flat",
		ProvisioningType: domain.ProvisioningDeclarative,
		CurrencyCode:     "GBP",
		ItemUnit:         domain.Unit{Name: "practice", Description: "per practice"},
		Price:            99.99,
	}
)

type CatalogueItemServiceTestSuite struct {
	suite.Suite
	orders    *mocks.MockOrderAPI
	catalogue *mocks.MockCatalogueAPI
	service   *services.CatalogueItemService
	sess      *session.Session
	ctx       context.Context
}

func TestCatalogueItemServiceSuite(t *testing.T) {
	suite.Run(t, new(CatalogueItemServiceTestSuite))
}

func (suite *CatalogueItemServiceTestSuite) SetupTest() {
	suite.orders = mocks.NewMockOrderAPI(suite.T())
	suite.catalogue = mocks.NewMockCatalogueAPI(suite.T())
	suite.service = services.NewCatalogueItemService(suite.orders, suite.catalogue)
	suite.sess = newTestSession()
	suite.ctx = identityContext()
}

// seedSolutionFlow fills the session the way the select steps leave it.
func (suite *CatalogueItemServiceTestSuite) seedSolutionFlow() {
	t := suite.T()
	keys := session.SolutionKeys
	seed(t, suite.sess, keys.SelectedItemID, "item-1")
	seed(t, suite.sess, keys.SelectedItemName, "Write on Time")
	seed(t, suite.sess, keys.Prices, []domain.Price{perPatientPerYear, perPractice})
	seed(t, suite.sess, keys.SelectedPriceID, "1")
	seed(t, suite.sess, keys.SelectedRecipient, "A10001")
	seed(t, suite.sess, keys.RecipientName, "Blue Mountain Medical Practice")
	seed(t, suite.sess, keys.DeliveryDate, "2020-10-01")
}

// ============================================================================
// SELECT STEPS
// ============================================================================

func (suite *CatalogueItemServiceTestSuite) Test_SelectItem_ListsSupplierItems() {
	t := suite.T()
	suite.orders.EXPECT().GetSupplierSection(mock.Anything, testOrder.OrderID).
		Return(&domain.SupplierSection{SupplierID: "sup-1"}, nil).Once()
	suite.catalogue.EXPECT().ListCatalogueItems(mock.Anything, "sup-1", domain.CatalogueItemTypeSolution).
		Return([]domain.CatalogueItem{{ID: "item-1", Name: "Write on Time"}}, nil).Once()

	out, err := suite.service.GetSelectItem(suite.ctx, suite.sess, testOrder, services.SolutionsSection)
	require.NoError(t, err)
	require.NotNil(t, out.Page)
	assert.Equal(t, "selectSolution", out.Page.Field)
	assert.Equal(t, []services.SelectOption{{Value: "item-1", Text: "Write on Time"}}, out.Page.Options)

	// Second visit is served from session.
	_, err = suite.service.GetSelectItem(suite.ctx, suite.sess, testOrder, services.SolutionsSection)
	require.NoError(t, err)
}

func (suite *CatalogueItemServiceTestSuite) Test_SelectItem_RequiresChoice() {
	t := suite.T()
	seed(t, suite.sess, session.SolutionKeys.Items, []domain.CatalogueItem{{ID: "item-1", Name: "Write on Time"}})

	out, err := suite.service.PostSelectItem(suite.ctx, suite.sess, testOrder, services.SolutionsSection,
		validation.SelectionForm{Field: "selectSolution"})

	require.NoError(t, err)
	require.NotNil(t, out.Page)
	assert.Equal(t, []domain.ValidationError{{Field: "selectSolution", ID: "SelectSolutionRequired"}}, out.Page.Errors)
}

func (suite *CatalogueItemServiceTestSuite) Test_SelectItem_StoresChoiceAndMovesToPrice() {
	t := suite.T()
	seed(t, suite.sess, session.SolutionKeys.Items, []domain.CatalogueItem{{ID: "item-1", Name: "Write on Time"}})
	seed(t, suite.sess, session.SolutionKeys.Prices, []domain.Price{perPractice})
	suite.orders.EXPECT().ListOrderItems(mock.Anything, testOrder.OrderID, domain.CatalogueItemTypeSolution).
		Return([]domain.OrderItem{}, nil)

	out, err := suite.service.PostSelectItem(suite.ctx, suite.sess, testOrder, services.SolutionsSection,
		validation.SelectionForm{Value: "item-1"})

	require.NoError(t, err)
	assert.Equal(t, testOrder.Path("catalogue-solutions", "select", "solution", "price"), out.Redirect)

	id, _ := sessionValue(t, suite.sess, session.SolutionKeys.SelectedItemID)
	name, _ := sessionValue(t, suite.sess, session.SolutionKeys.SelectedItemName)
	assert.Equal(t, "item-1", id)
	assert.Equal(t, "Write on Time", name)

	// Prices belong to the previous item.
	_, found := sessionValue(t, suite.sess, session.SolutionKeys.Prices)
	assert.False(t, found)
}

func (suite *CatalogueItemServiceTestSuite) Test_SelectItem_AlreadyOrderedGoesToExistingItem() {
	t := suite.T()
	seed(t, suite.sess, session.SolutionKeys.Items, []domain.CatalogueItem{{ID: "item-1", Name: "Write on Time"}})
	suite.orders.EXPECT().ListOrderItems(mock.Anything, testOrder.OrderID, domain.CatalogueItemTypeSolution).
		Return([]domain.OrderItem{{OrderItemID: "42", CatalogueItemID: "item-1"}}, nil)

	out, err := suite.service.PostSelectItem(suite.ctx, suite.sess, testOrder, services.SolutionsSection,
		validation.SelectionForm{Value: "item-1"})

	require.NoError(t, err)
	assert.Equal(t, testOrder.Path("catalogue-solutions", "42"), out.Redirect)
}

func (suite *CatalogueItemServiceTestSuite) Test_SelectItem_UnknownIDIsIntegrityError() {
	t := suite.T()
	seed(t, suite.sess, session.SolutionKeys.Items, []domain.CatalogueItem{{ID: "item-1", Name: "Write on Time"}})

	_, err := suite.service.PostSelectItem(suite.ctx, suite.sess, testOrder, services.SolutionsSection,
		validation.SelectionForm{Value: "item-9"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	_, found := sessionValue(t, suite.sess, session.SolutionKeys.SelectedItemID)
	assert.False(t, found)
}

func (suite *CatalogueItemServiceTestSuite) Test_SelectPrice_SinglePriceIsChosenAutomatically() {
	t := suite.T()
	seed(t, suite.sess, session.SolutionKeys.SelectedItemID, "item-1")
	suite.catalogue.EXPECT().ListPrices(mock.Anything, "item-1").Return([]domain.Price{perPatientPerYear}, nil).Once()

	out, err := suite.service.GetSelectPrice(suite.ctx, suite.sess, testOrder, services.SolutionsSection)

	require.NoError(t, err)
	assert.Nil(t, out.Page)
	assert.Equal(t, testOrder.Path("catalogue-solutions", "select", "solution", "price", "recipient"), out.Redirect)
	priceID, _ := sessionValue(t, suite.sess, session.SolutionKeys.SelectedPriceID)
	assert.Equal(t, "1", priceID)
}

func (suite *CatalogueItemServiceTestSuite) Test_SelectPrice_ListsLabels() {
	t := suite.T()
	seed(t, suite.sess, session.SolutionKeys.SelectedItemID, "item-1")
	seed(t, suite.sess, session.SolutionKeys.SelectedItemName, "Write on Time")
	suite.catalogue.EXPECT().ListPrices(mock.Anything, "item-1").Return([]domain.Price{perPatientPerYear, perPractice}, nil).Once()

	out, err := suite.service.GetSelectPrice(suite.ctx, suite.sess, testOrder, services.SolutionsSection)

	require.NoError(t, err)
	require.NotNil(t, out.Page)
	assert.Equal(t, []services.SelectOption{
		{Value: "1", Text: "1.64 per patient per year"},
		{Value: "2", Text: "99.99 per practice"},
	}, out.Page.Options)
	assert.Equal(t, "Write on Time", out.Page.ItemName)
}

func (suite *CatalogueItemServiceTestSuite) Test_SelectPrice_RefetchesLostItemName() {
	t := suite.T()
	seed(t, suite.sess, session.SolutionKeys.SelectedItemID, "item-1")
	seed(t, suite.sess, session.SolutionKeys.Prices, []domain.Price{perPatientPerYear, perPractice})
	suite.catalogue.EXPECT().GetCatalogueItem(mock.Anything, "item-1").
		Return(&domain.CatalogueItem{ID: "item-1", Name: "Write on Time"}, nil).Once()

	out, err := suite.service.GetSelectPrice(suite.ctx, suite.sess, testOrder, services.SolutionsSection)
	require.NoError(t, err)
	require.NotNil(t, out.Page)
	assert.Equal(t, "Write on Time", out.Page.ItemName)

	out, err = suite.service.PostSelectPrice(suite.ctx, suite.sess, testOrder, services.SolutionsSection, validation.SelectionForm{})
	require.NoError(t, err)
	require.NotNil(t, out.Page)
	assert.Equal(t, "Write on Time", out.Page.ItemName, "name is cached after the first fetch")

	name, found := sessionValue(t, suite.sess, session.SolutionKeys.SelectedItemName)
	assert.True(t, found)
	assert.Equal(t, "Write on Time", name)
}

func (suite *CatalogueItemServiceTestSuite) Test_OrderItem_LostItemNameFetchFailureIsReturned() {
	t := suite.T()
	keys := session.AssociatedServiceKeys
	seed(t, suite.sess, keys.SelectedItemID, "assoc-1")
	seed(t, suite.sess, keys.Prices, []domain.Price{perPractice})
	seed(t, suite.sess, keys.SelectedPriceID, "2")
	suite.catalogue.EXPECT().GetCatalogueItem(mock.Anything, "assoc-1").Return(nil, domain.ErrNotFound).Once()

	_, err := suite.service.GetOrderItem(suite.ctx, suite.sess, testOrder, services.AssociatedServicesSection, services.NewOrderItemID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	_, found := sessionValue(t, suite.sess, keys.SelectedItemName)
	assert.False(t, found)
}

func (suite *CatalogueItemServiceTestSuite) Test_SelectPrice_WithoutItemIsIntegrityError() {
	_, err := suite.service.GetSelectPrice(suite.ctx, suite.sess, testOrder, services.SolutionsSection)

	require.Error(suite.T(), err)
	assert.True(suite.T(), errors.Is(err, domain.ErrNotFound))
}

func (suite *CatalogueItemServiceTestSuite) Test_SelectRecipient_UsesOrderRecipients() {
	t := suite.T()
	suite.orders.EXPECT().GetServiceRecipientsSection(mock.Anything, testOrder.OrderID).
		Return(&domain.ServiceRecipientsSection{ServiceRecipients: []domain.ServiceRecipient{
			{Name: "Blue Mountain Medical Practice", OdsCode: "A10001"},
		}}, nil).Once()

	out, err := suite.service.PostSelectRecipient(suite.ctx, suite.sess, testOrder, services.SolutionsSection,
		validation.SelectionForm{Value: "A10001"})
	require.Error(t, err, "recipients must be listed before one can be chosen")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	assert.Empty(t, out.Redirect)

	page, err := suite.service.GetSelectRecipient(suite.ctx, suite.sess, testOrder, services.SolutionsSection)
	require.NoError(t, err)
	require.NotNil(t, page.Page)
	assert.Equal(t, "selectSolutionRecipient", page.Page.Field)

	out, err = suite.service.PostSelectRecipient(suite.ctx, suite.sess, testOrder, services.SolutionsSection,
		validation.SelectionForm{Value: "A10001"})
	require.NoError(t, err)
	assert.Equal(t, testOrder.Path("catalogue-solutions", "select", "solution", "price", "recipient", "date"), out.Redirect)

	name, _ := sessionValue(t, suite.sess, session.SolutionKeys.RecipientName)
	assert.Equal(t, "Blue Mountain Medical Practice", name)
}

func (suite *CatalogueItemServiceTestSuite) Test_DeliveryDate_DefaultsToCommencementDate() {
	t := suite.T()
	suite.orders.EXPECT().GetCommencementDateSection(mock.Anything, testOrder.OrderID).
		Return(&domain.CommencementDateSection{CommencementDate: "2020-10-01"}, nil).Once()

	out, err := suite.service.GetDeliveryDate(suite.ctx, suite.sess, testOrder, services.SolutionsSection)

	require.NoError(t, err)
	require.NotNil(t, out.Page)
	assert.Equal(t, validation.DateForm{Field: "deliveryDate", Day: "1", Month: "10", Year: "2020"}, out.Page.Date)
}

func (suite *CatalogueItemServiceTestSuite) Test_DeliveryDate_StoresValidDate() {
	t := suite.T()

	out, err := suite.service.PostDeliveryDate(suite.ctx, suite.sess, testOrder, services.SolutionsSection,
		validation.DateForm{Day: "9", Month: "2", Year: "2021"})

	require.NoError(t, err)
	assert.Equal(t, testOrder.Path("catalogue-solutions", "neworderitem"), out.Redirect)
	date, _ := sessionValue(t, suite.sess, session.SolutionKeys.DeliveryDate)
	assert.Equal(t, "2021-02-09", date)
}

func (suite *CatalogueItemServiceTestSuite) Test_DeliveryDate_RejectsImpossibleDate() {
	t := suite.T()

	out, err := suite.service.PostDeliveryDate(suite.ctx, suite.sess, testOrder, services.SolutionsSection,
		validation.DateForm{Day: "31", Month: "2", Year: "2021"})

	require.NoError(t, err)
	require.NotNil(t, out.Page)
	assert.Equal(t, []domain.ValidationError{{Field: "deliveryDate", ID: "DeliveryDateInvalid"}}, out.Page.Errors)
}

// ============================================================================
// ORDER ITEM
// ============================================================================

func (suite *CatalogueItemServiceTestSuite) Test_OrderItem_NewItemIsPrefilledFromSession() {
	t := suite.T()
	suite.seedSolutionFlow()

	out, err := suite.service.GetOrderItem(suite.ctx, suite.sess, testOrder, services.SolutionsSection, services.NewOrderItemID)

	require.NoError(t, err)
	require.NotNil(t, out.Page)
	assert.True(t, out.Page.IsNew)
	assert.Equal(t, "Write on Time", out.Page.ItemName)
	assert.Equal(t, "A10001", out.Page.RecipientOdsCode)
	assert.Equal(t, "1.64 per patient per year", out.Page.PriceLabel)
	assert.True(t, out.Page.RequiresEstimationPeriod)
	assert.Equal(t, "1.64", out.Page.Form.Price)
	assert.Equal(t, "year", out.Page.Form.EstimationPeriod)
	assert.Empty(t, out.Page.Form.Quantity)
}

func (suite *CatalogueItemServiceTestSuite) Test_OrderItem_CreatesItemAndReturnsToList() {
	t := suite.T()
	suite.seedSolutionFlow()

	suite.orders.EXPECT().CreateOrderItem(mock.Anything, testOrder.OrderID, mock.MatchedBy(func(item domain.OrderItem) bool {
		return item.CatalogueItemID == "item-1" &&
			item.ServiceRecipient != nil && item.ServiceRecipient.OdsCode == "A10001" &&
			item.DeliveryDate == "2020-10-01" &&
			item.Quantity == 10 &&
			item.EstimationPeriod == "month" &&
			item.Price == 1.5 &&
			item.PriceID == 1
	})).Return("99", nil).Once()

	out, err := suite.service.PostOrderItem(suite.ctx, suite.sess, testOrder, services.SolutionsSection, services.NewOrderItemID,
		validation.OrderItemForm{Quantity: "10", EstimationPeriod: "month", Price: "1.5"})

	require.NoError(t, err)
	assert.Equal(t, testOrder.Path("catalogue-solutions"), out.Redirect)
}

func (suite *CatalogueItemServiceTestSuite) Test_OrderItem_InvalidFormIsRenderedWithErrors() {
	t := suite.T()
	suite.seedSolutionFlow()

	out, err := suite.service.PostOrderItem(suite.ctx, suite.sess, testOrder, services.SolutionsSection, services.NewOrderItemID,
		validation.OrderItemForm{Quantity: "1.5", Price: "abc"})

	require.NoError(t, err)
	require.NotNil(t, out.Page)
	assert.Equal(t, []domain.ValidationError{
		{Field: "quantity", ID: "QuantityMustBeAWholeNumber"},
		{Field: "estimationPeriod", ID: "EstimationPeriodRequired"},
		{Field: "price", ID: "PriceMustBeANumber"},
	}, out.Page.Errors)
	assert.Equal(t, "1.5", out.Page.Form.Quantity)
}

func (suite *CatalogueItemServiceTestSuite) Test_OrderItem_UpstreamValidationIsShownOnForm() {
	t := suite.T()
	suite.seedSolutionFlow()

	upstreamErrs := []domain.ValidationError{{Field: "deliveryDate", ID: "DeliveryDateOutsideDeliveryWindow"}}
	suite.orders.EXPECT().CreateOrderItem(mock.Anything, testOrder.OrderID, mock.Anything).
		Return("", &application.UpstreamError{Service: "order", StatusCode: 400, Errors: upstreamErrs}).Once()

	out, err := suite.service.PostOrderItem(suite.ctx, suite.sess, testOrder, services.SolutionsSection, services.NewOrderItemID,
		validation.OrderItemForm{Quantity: "10", EstimationPeriod: "year", Price: "1.64"})

	require.NoError(t, err)
	require.NotNil(t, out.Page)
	assert.Equal(t, upstreamErrs, out.Page.Errors)
}

func (suite *CatalogueItemServiceTestSuite) Test_OrderItem_UpstreamFailureIsReturned() {
	t := suite.T()
	suite.seedSolutionFlow()

	suite.orders.EXPECT().CreateOrderItem(mock.Anything, testOrder.OrderID, mock.Anything).
		Return("", &application.UpstreamError{Service: "order", StatusCode: 500}).Once()

	_, err := suite.service.PostOrderItem(suite.ctx, suite.sess, testOrder, services.SolutionsSection, services.NewOrderItemID,
		validation.OrderItemForm{Quantity: "10", EstimationPeriod: "year", Price: "1.64"})

	require.Error(t, err)
	assert.Equal(t, application.CategoryUnexpected, application.CategorizeError(err))
}

func (suite *CatalogueItemServiceTestSuite) Test_OrderItem_ExistingItemIsUpdated() {
	t := suite.T()
	existing := &domain.OrderItem{
		OrderItemID:       "42",
		CatalogueItemID:   "item-1",
		CatalogueItemName: "Write on Time",
		ServiceRecipient:  &domain.ServiceRecipient{Name: "Blue Mountain", OdsCode: "A10001"},
		Quantity:          5,
		EstimationPeriod:  "month",
		PriceID:           2,
		Price:             99.99,
		ProvisioningType:  domain.ProvisioningDeclarative,
		ItemUnit:          &domain.Unit{Name: "practice", Description: "per practice"},
	}
	suite.orders.EXPECT().GetOrderItem(mock.Anything, testOrder.OrderID, "42").Return(existing, nil)

	page, err := suite.service.GetOrderItem(suite.ctx, suite.sess, testOrder, services.SolutionsSection, "42")
	require.NoError(t, err)
	require.NotNil(t, page.Page)
	assert.False(t, page.Page.IsNew)
	assert.False(t, page.Page.RequiresEstimationPeriod)
	assert.Equal(t, "5", page.Page.Form.Quantity)

	suite.orders.EXPECT().UpdateOrderItem(mock.Anything, testOrder.OrderID, "42", mock.MatchedBy(func(item domain.OrderItem) bool {
		return item.Quantity == 7 && item.EstimationPeriod == ""
	})).Return(nil).Once()

	out, err := suite.service.PostOrderItem(suite.ctx, suite.sess, testOrder, services.SolutionsSection, "42",
		validation.OrderItemForm{Quantity: "7", Price: "99.99"})
	require.NoError(t, err)
	assert.Equal(t, testOrder.Path("catalogue-solutions"), out.Redirect)
}

func (suite *CatalogueItemServiceTestSuite) Test_OrderItem_NewItemWithoutSelectionsIsIntegrityError() {
	_, err := suite.service.GetOrderItem(suite.ctx, suite.sess, testOrder, services.SolutionsSection, services.NewOrderItemID)

	require.Error(suite.T(), err)
	assert.True(suite.T(), domain.IsErrorCode(err, domain.ErrCodeMissingSelection))
	assert.Equal(suite.T(), application.CategoryIntegrity, application.CategorizeError(err))
}

// ============================================================================
// SECTION VARIANTS
// ============================================================================

func (suite *CatalogueItemServiceTestSuite) Test_AssociatedService_OrderingPartyIsRecipient() {
	t := suite.T()
	keys := session.AssociatedServiceKeys
	seed(t, suite.sess, keys.SelectedItemID, "assoc-1")
	seed(t, suite.sess, keys.SelectedItemName, "Training")
	seed(t, suite.sess, keys.Prices, []domain.Price{perPractice})
	seed(t, suite.sess, keys.SelectedPriceID, "2")

	suite.orders.EXPECT().GetOrderingPartySection(mock.Anything, testOrder.OrderID).
		Return(&domain.OrderingPartySection{Name: "Hampshire CCG", OdsCode: primaryOdsCode}, nil)

	page, err := suite.service.GetOrderItem(suite.ctx, suite.sess, testOrder, services.AssociatedServicesSection, services.NewOrderItemID)
	require.NoError(t, err)
	require.NotNil(t, page.Page)
	assert.Equal(t, primaryOdsCode, page.Page.RecipientOdsCode)
	assert.Empty(t, page.Page.DeliveryDate)
	assert.Equal(t, testOrder.Path("associated-services", "select", "associated-service"), page.Page.BackLink)

	out, err := suite.service.GetSelectRecipient(suite.ctx, suite.sess, testOrder, services.AssociatedServicesSection)
	require.NoError(t, err)
	assert.Equal(t, testOrder.Path("associated-services", "neworderitem"), out.Redirect)
}

func (suite *CatalogueItemServiceTestSuite) Test_SelectRecipient_BackLinkSkipsSinglePrice() {
	tests := []struct {
		name     string
		prices   []domain.Price
		expected string
	}{
		{
			name:     "singlePrice",
			prices:   []domain.Price{perPatientPerYear},
			expected: testOrder.Path("catalogue-solutions", "select", "solution"),
		},
		{
			name:     "severalPrices",
			prices:   []domain.Price{perPatientPerYear, perPractice},
			expected: testOrder.Path("catalogue-solutions", "select", "solution", "price"),
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()
			sess := newTestSession()
			keys := session.SolutionKeys
			seed(t, sess, keys.SelectedItemName, "Write on Time")
			seed(t, sess, keys.Prices, tt.prices)
			seed(t, sess, keys.Recipients, []domain.ServiceRecipient{{Name: "Practice", OdsCode: "A10001"}})

			page, err := suite.service.GetSelectRecipient(suite.ctx, sess, testOrder, services.SolutionsSection)
			require.NoError(t, err)
			require.NotNil(t, page.Page)
			assert.Equal(t, tt.expected, page.Page.BackLink)

			page, err = suite.service.PostSelectRecipient(suite.ctx, sess, testOrder, services.SolutionsSection,
				validation.SelectionForm{})
			require.NoError(t, err)
			require.NotNil(t, page.Page)
			assert.NotEmpty(t, page.Page.Errors)
			assert.Equal(t, tt.expected, page.Page.BackLink)
		})
	}
}

func (suite *CatalogueItemServiceTestSuite) Test_AssociatedService_BackLinkFollowsPriceCount() {
	suite.orders.EXPECT().GetOrderingPartySection(mock.Anything, testOrder.OrderID).
		Return(&domain.OrderingPartySection{Name: "Hampshire CCG", OdsCode: primaryOdsCode}, nil)

	tests := []struct {
		name     string
		prices   []domain.Price
		expected string
	}{
		{
			name:     "singlePrice",
			prices:   []domain.Price{perPractice},
			expected: testOrder.Path("associated-services", "select", "associated-service"),
		},
		{
			name:     "severalPrices",
			prices:   []domain.Price{perPatientPerYear, perPractice},
			expected: testOrder.Path("associated-services", "select", "associated-service", "price"),
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()
			sess := newTestSession()
			keys := session.AssociatedServiceKeys
			seed(t, sess, keys.SelectedItemID, "assoc-1")
			seed(t, sess, keys.SelectedItemName, "Training")
			seed(t, sess, keys.Prices, tt.prices)
			seed(t, sess, keys.SelectedPriceID, "2")

			page, err := suite.service.GetOrderItem(suite.ctx, sess, testOrder, services.AssociatedServicesSection, services.NewOrderItemID)
			require.NoError(t, err)
			require.NotNil(t, page.Page)
			assert.Equal(t, tt.expected, page.Page.BackLink)
		})
	}
}

func (suite *CatalogueItemServiceTestSuite) Test_AdditionalService_SkipsDeliveryDate() {
	t := suite.T()
	seed(t, suite.sess, session.AdditionalServiceKeys.Recipients, []domain.ServiceRecipient{{Name: "Practice", OdsCode: "A10001"}})

	out, err := suite.service.PostSelectRecipient(suite.ctx, suite.sess, testOrder, services.AdditionalServicesSection,
		validation.SelectionForm{Value: "A10001"})

	require.NoError(t, err)
	assert.Equal(t, testOrder.Path("additional-services", "neworderitem"), out.Redirect)
}

func (suite *CatalogueItemServiceTestSuite) Test_ItemList_ResetsOnlyItsOwnFlow() {
	t := suite.T()
	suite.seedSolutionFlow()
	seed(t, suite.sess, session.AdditionalServiceKeys.SelectedItemID, "add-1")

	suite.orders.EXPECT().ListOrderItems(mock.Anything, testOrder.OrderID, domain.CatalogueItemTypeSolution).
		Return([]domain.OrderItem{{OrderItemID: "42", CatalogueItemName: "Write on Time"}}, nil)

	out, err := suite.service.GetItems(suite.ctx, suite.sess, testOrder, services.SolutionsSection)
	require.NoError(t, err)
	require.NotNil(t, out.Page)
	require.Len(t, out.Page.Items, 1)
	assert.Equal(t, testOrder.Path("catalogue-solutions", "42"), out.Page.Items[0].Href)
	assert.Equal(t, testOrder.Path("catalogue-solutions", "select", "solution"), out.Page.AddLink)

	_, found := sessionValue(t, suite.sess, session.SolutionKeys.SelectedItemID)
	assert.False(t, found)
	_, found = sessionValue(t, suite.sess, session.AdditionalServiceKeys.SelectedItemID)
	assert.True(t, found)
}
