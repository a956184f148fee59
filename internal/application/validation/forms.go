package validation

import (
	"net/url"

	"github.com/nhs-digital-gp-it-futures/order-form-sub000/internal/domain"
)

type SupplierSearchForm struct {
	SupplierName string `form:"supplierName" validate:"required" msg:"required=SupplierNameRequired"`
}

func SupplierSearchFormFrom(v url.Values) SupplierSearchForm {
	return SupplierSearchForm{SupplierName: trim(v.Get("supplierName"))}
}

func ValidateSupplierSearchForm(f SupplierSearchForm) domain.SelectionResult {
	f.SupplierName = trim(f.SupplierName)
	return domain.NewSelectionResult(check(f))
}

type SelectSupplierForm struct {
	SelectSupplier string `form:"selectSupplier" validate:"required" msg:"required=SelectSupplierRequired"`
}

func SelectSupplierFormFrom(v url.Values) SelectSupplierForm {
	return SelectSupplierForm{SelectSupplier: trim(v.Get("selectSupplier"))}
}

func ValidateSelectSupplierForm(f SelectSupplierForm) domain.SelectionResult {
	f.SelectSupplier = trim(f.SelectSupplier)
	return domain.NewSelectionResult(check(f))
}

// ContactForm is the primary contact block shared by the ordering party and
// supplier pages.
type ContactForm struct {
	FirstName       string `form:"firstName" validate:"required,max=100" msg:"required=FirstNameRequired,max=FirstNameTooLong"`
	LastName        string `form:"lastName" validate:"required,max=100" msg:"required=LastNameRequired,max=LastNameTooLong"`
	EmailAddress    string `form:"emailAddress" validate:"required,email,max=256" msg:"required=EmailAddressRequired,email=EmailAddressInvalidFormat,max=EmailAddressTooLong"`
	TelephoneNumber string `form:"telephoneNumber" validate:"required,max=35" msg:"required=TelephoneNumberRequired,max=TelephoneNumberTooLong"`
}

func ContactFormFrom(v url.Values) ContactForm {
	return ContactForm{
		FirstName:       trim(v.Get("firstName")),
		LastName:        trim(v.Get("lastName")),
		EmailAddress:    trim(v.Get("emailAddress")),
		TelephoneNumber: trim(v.Get("telephoneNumber")),
	}
}

func (f ContactForm) Contact() *domain.Contact {
	return &domain.Contact{
		FirstName:       f.FirstName,
		LastName:        f.LastName,
		EmailAddress:    f.EmailAddress,
		TelephoneNumber: f.TelephoneNumber,
	}
}

func ContactFormOf(c *domain.Contact) ContactForm {
	if c == nil {
		return ContactForm{}
	}
	return ContactForm{
		FirstName:       c.FirstName,
		LastName:        c.LastName,
		EmailAddress:    c.EmailAddress,
		TelephoneNumber: c.TelephoneNumber,
	}
}

func ValidateContactForm(f ContactForm) domain.SelectionResult {
	f.FirstName = trim(f.FirstName)
	f.LastName = trim(f.LastName)
	f.EmailAddress = trim(f.EmailAddress)
	f.TelephoneNumber = trim(f.TelephoneNumber)
	return domain.NewSelectionResult(check(f))
}

// SelectionForm is a single radio group. Field is the posted name, e.g.
// selectSolution or selectAdditionalServicePrice; a blank value fails with
// the id <Field>Required.
type SelectionForm struct {
	Field string
	Value string
}

func SelectionFormFrom(v url.Values, field string) SelectionForm {
	return SelectionForm{Field: field, Value: trim(v.Get(field))}
}

func ValidateSelectionForm(f SelectionForm) domain.SelectionResult {
	if trim(f.Value) == "" {
		return domain.Rejected(f.Field, requiredID(f.Field))
	}
	return domain.Selected()
}

func requiredID(field string) string {
	return capitalise(field) + "Required"
}

// Dedicated wrappers for the radio groups the order form posts.

func ValidateSolutionForm(f SelectionForm) domain.SelectionResult {
	f.Field = "selectSolution"
	return ValidateSelectionForm(f)
}

func ValidateSolutionPriceForm(f SelectionForm) domain.SelectionResult {
	f.Field = "selectSolutionPrice"
	return ValidateSelectionForm(f)
}

func ValidateSolutionRecipientForm(f SelectionForm) domain.SelectionResult {
	f.Field = "selectSolutionRecipient"
	return ValidateSelectionForm(f)
}

func ValidateAdditionalServiceForm(f SelectionForm) domain.SelectionResult {
	f.Field = "selectAdditionalService"
	return ValidateSelectionForm(f)
}

func ValidateAdditionalServicePriceForm(f SelectionForm) domain.SelectionResult {
	f.Field = "selectAdditionalServicePrice"
	return ValidateSelectionForm(f)
}

func ValidateAdditionalServiceRecipientForm(f SelectionForm) domain.SelectionResult {
	f.Field = "selectAdditionalServiceRecipient"
	return ValidateSelectionForm(f)
}

func ValidateAssociatedServiceForm(f SelectionForm) domain.SelectionResult {
	f.Field = "selectAssociatedService"
	return ValidateSelectionForm(f)
}

func ValidateAssociatedServicePriceForm(f SelectionForm) domain.SelectionResult {
	f.Field = "selectAssociatedServicePrice"
	return ValidateSelectionForm(f)
}

// OrderItemForm is the quantity / period / price page. Values stay as posted
// so the page can be re-rendered verbatim on failure.
type OrderItemForm struct {
	Quantity         string `form:"quantity" validate:"required,integer,positive,belowint32" msg:"required=QuantityRequired,integer=QuantityMustBeAWholeNumber,positive=QuantityGreaterThanZero,belowint32=QuantityLessThanMax"`
	EstimationPeriod string `form:"estimationPeriod" validate:"omitempty,oneof=month year" msg:"oneof=EstimationPeriodValidValue"`
	Price            string `form:"price" validate:"required,decimal,nonnegative" msg:"required=PriceRequired,decimal=PriceMustBeANumber,nonnegative=PriceGreaterThanOrEqualToZero"`

	RequiresEstimationPeriod bool `form:"-"`
}

func OrderItemFormFrom(v url.Values, requiresEstimationPeriod bool) OrderItemForm {
	return OrderItemForm{
		Quantity:                 trim(v.Get("quantity")),
		EstimationPeriod:         trim(v.Get("estimationPeriod")),
		Price:                    trim(v.Get("price")),
		RequiresEstimationPeriod: requiresEstimationPeriod,
	}
}

func ValidateOrderItemForm(f OrderItemForm) domain.SelectionResult {
	f.Quantity = trim(f.Quantity)
	f.EstimationPeriod = trim(f.EstimationPeriod)
	f.Price = trim(f.Price)

	errs := appendPeriodRequired(check(f), f)
	return domain.NewSelectionResult(orderByField(errs, "quantity", "estimationPeriod", "price"))
}

func appendPeriodRequired(errs []domain.ValidationError, f OrderItemForm) []domain.ValidationError {
	if f.RequiresEstimationPeriod && f.EstimationPeriod == "" {
		return append(errs, domain.ValidationError{Field: "estimationPeriod", ID: "EstimationPeriodRequired"})
	}
	return errs
}

func orderByField(errs []domain.ValidationError, fields ...string) []domain.ValidationError {
	out := make([]domain.ValidationError, 0, len(errs))
	for _, field := range fields {
		for _, e := range errs {
			if e.Field == field {
				out = append(out, e)
			}
		}
	}
	return out
}
