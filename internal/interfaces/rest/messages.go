package rest

// messages maps validation ids to the text shown next to the field and in the
// error summary.
var messages = map[string]string{
	"SupplierNameRequired":   "Enter a supplier name or part of a supplier name",
	"SupplierNotFound":       "There are no suppliers that match the search terms you've provided. Try searching again.",
	"SelectSupplierRequired": "Select a supplier",

	"FirstNameRequired":         "Enter a first name",
	"FirstNameTooLong":          "First name must be 100 characters or fewer",
	"LastNameRequired":          "Enter a last name",
	"LastNameTooLong":           "Last name must be 100 characters or fewer",
	"EmailAddressRequired":      "Enter an email address",
	"EmailAddressInvalidFormat": "Enter an email address in the correct format, like name@example.com",
	"EmailAddressTooLong":       "Email address must be 256 characters or fewer",
	"TelephoneNumberRequired":   "Enter a telephone number",
	"TelephoneNumberTooLong":    "Telephone number must be 35 characters or fewer",

	"CommencementDateRequired":      "Enter a commencement date",
	"CommencementDateDayRequired":   "Commencement date must include a day",
	"CommencementDateMonthRequired": "Commencement date must include a month",
	"CommencementDateYearRequired":  "Commencement date must include a year",
	"CommencementDateYearLength":    "Year must be four numbers",
	"CommencementDateInvalid":       "Commencement date must be a real date",
	"CommencementDateGreaterThan":   "Commencement date must be in the future or within the last 60 days",
	"CommencementDateLessThan":      "Commencement date must be within the next 183 days",

	"DeliveryDateRequired":              "Enter a planned delivery date",
	"DeliveryDateDayRequired":           "Planned delivery date must include a day",
	"DeliveryDateMonthRequired":         "Planned delivery date must include a month",
	"DeliveryDateYearRequired":          "Planned delivery date must include a year",
	"DeliveryDateYearLength":            "Year must be four numbers",
	"DeliveryDateInvalid":               "Planned delivery date must be a real date",
	"DeliveryDateOutsideDeliveryWindow": "Planned delivery date must be within 42 months from the commencement date for this Call-off Agreement",

	"SelectSolutionRequired":                   "Select a Catalogue Solution",
	"SelectSolutionPriceRequired":              "Select a list price",
	"SelectSolutionRecipientRequired":          "Select a Service Recipient",
	"SelectAdditionalServiceRequired":          "Select an Additional Service",
	"SelectAdditionalServicePriceRequired":     "Select a list price",
	"SelectAdditionalServiceRecipientRequired": "Select a Service Recipient",
	"SelectAssociatedServiceRequired":          "Select an Associated Service",
	"SelectAssociatedServicePriceRequired":     "Select a list price",

	"QuantityRequired":              "Enter a quantity",
	"QuantityMustBeAWholeNumber":    "Quantity must be a whole number",
	"QuantityGreaterThanZero":       "Quantity must be greater than zero",
	"QuantityLessThanMax":           "Quantity must be less than 2,147,483,647",
	"EstimationPeriodRequired":      "Select an estimation period",
	"EstimationPeriodValidValue":    "Select a valid estimation period",
	"PriceRequired":                 "Enter a price",
	"PriceMustBeANumber":            "Price must be a number",
	"PriceGreaterThanOrEqualToZero": "Price cannot be negative",
}

const fallbackMessage = "There is a problem with this answer"

// Message returns the user-facing text for a validation id.
func Message(id string) string {
	if text, ok := messages[id]; ok {
		return text
	}
	return fallbackMessage
}
