package domain

type Address struct {
	Line1    string `json:"line1"`
	Line2    string `json:"line2,omitempty"`
	Line3    string `json:"line3,omitempty"`
	Town     string `json:"town"`
	County   string `json:"county,omitempty"`
	Postcode string `json:"postcode"`
	Country  string `json:"country,omitempty"`
}

type Contact struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	EmailAddress    string `json:"emailAddress"`
	TelephoneNumber string `json:"telephoneNumber"`
}

type Organisation struct {
	ID      string   `json:"organisationId"`
	Name    string   `json:"name"`
	OdsCode string   `json:"odsCode"`
	Address *Address `json:"address,omitempty"`
}

// ServiceRecipient is an addressable delivery target. It is identified by its
// ODS code.
type ServiceRecipient struct {
	Name    string `json:"name"`
	OdsCode string `json:"odsCode"`
}

func (s ServiceRecipient) ItemID() string { return s.OdsCode }
