package validation

import (
	"net/url"
	"strconv"
	"time"

	"github.com/nhs-digital-gp-it-futures/order-form-sub000/internal/domain"
)

const isoDate = "2006-01-02"

const (
	maxDaysInPast   = 60
	maxDaysInFuture = 183
)

// DateForm is a day/month/year triple posted as <Field>Day, <Field>Month and
// <Field>Year.
type DateForm struct {
	Field string
	Day   string
	Month string
	Year  string
}

func DateFormFrom(v url.Values, field string) DateForm {
	return DateForm{
		Field: field,
		Day:   trim(v.Get(field + "Day")),
		Month: trim(v.Get(field + "Month")),
		Year:  trim(v.Get(field + "Year")),
	}
}

// DateFormOf splits an ISO date for pre-filling; bad input yields an empty
// form.
func DateFormOf(field, iso string) DateForm {
	t, err := time.Parse(isoDate, iso)
	if err != nil {
		return DateForm{Field: field}
	}
	return DateForm{
		Field: field,
		Day:   strconv.Itoa(t.Day()),
		Month: strconv.Itoa(int(t.Month())),
		Year:  strconv.Itoa(t.Year()),
	}
}

// ISO returns the date as 2006-01-02. Only meaningful after a successful
// validation.
func (f DateForm) ISO() string {
	t, _ := f.parse()
	return t.Format(isoDate)
}

func (f DateForm) parse() (time.Time, bool) {
	day, errD := strconv.Atoi(f.Day)
	month, errM := strconv.Atoi(f.Month)
	year, errY := strconv.Atoi(f.Year)
	if errD != nil || errM != nil || errY != nil {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalises 31/02 into March; a real date survives the round trip.
	if t.Day() != day || int(t.Month()) != month || t.Year() != year {
		return time.Time{}, false
	}
	return t, true
}

// ValidateDateForm checks presence and calendar validity. Ids are prefixed
// with the capitalised field name, e.g. DeliveryDateDayRequired.
func ValidateDateForm(f DateForm) domain.SelectionResult {
	prefix := capitalise(f.Field)
	day, month, year := trim(f.Day), trim(f.Month), trim(f.Year)

	switch {
	case day == "" && month == "" && year == "":
		return domain.Rejected(f.Field, prefix+"Required")
	case day == "":
		return domain.Rejected(f.Field, prefix+"DayRequired")
	case month == "":
		return domain.Rejected(f.Field, prefix+"MonthRequired")
	case year == "":
		return domain.Rejected(f.Field, prefix+"YearRequired")
	case len(year) != 4:
		return domain.Rejected(f.Field, prefix+"YearLength")
	}

	if _, ok := (DateForm{Day: day, Month: month, Year: year}).parse(); !ok {
		return domain.Rejected(f.Field, prefix+"Invalid")
	}
	return domain.Selected()
}

// ValidateCommencementDateForm adds the allowed window around today to the
// plain date checks.
func ValidateCommencementDateForm(f DateForm, today time.Time) domain.SelectionResult {
	f.Field = "commencementDate"
	if result := ValidateDateForm(f); !result.Success {
		return result
	}

	date, _ := DateForm{Day: trim(f.Day), Month: trim(f.Month), Year: trim(f.Year)}.parse()
	midnight := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)

	if date.Before(midnight.AddDate(0, 0, -maxDaysInPast)) {
		return domain.Rejected(f.Field, "CommencementDateGreaterThan")
	}
	if date.After(midnight.AddDate(0, 0, maxDaysInFuture)) {
		return domain.Rejected(f.Field, "CommencementDateLessThan")
	}
	return domain.Selected()
}

func ValidateDeliveryDateForm(f DateForm) domain.SelectionResult {
	f.Field = "deliveryDate"
	return ValidateDateForm(f)
}

