// Package domain holds the catalogue, organisation and order shapes the order
// form moves between the upstream services, plus the form selection contract.
package domain

import (
	"strconv"
	"strings"
)

// CatalogueItemType is the classification the catalogue API filters items by.
type CatalogueItemType string

const (
	CatalogueItemTypeSolution          CatalogueItemType = "Solution"
	CatalogueItemTypeAdditionalService CatalogueItemType = "AdditionalService"
	CatalogueItemTypeAssociatedService CatalogueItemType = "AssociatedService"
)

// ProvisioningType decides how quantities are estimated for a price.
type ProvisioningType string

const (
	ProvisioningPatient     ProvisioningType = "Patient"
	ProvisioningDeclarative ProvisioningType = "Declarative"
	ProvisioningOnDemand    ProvisioningType = "OnDemand"
)

// Identifiable is implemented by anything a user can pick from a list kept in
// session.
type Identifiable interface {
	ItemID() string
}

type Supplier struct {
	ID   string `json:"supplierId"`
	Name string `json:"name"`
}

func (s Supplier) ItemID() string { return s.ID }

type SupplierDetail struct {
	ID             string   `json:"supplierId"`
	Name           string   `json:"name"`
	Address        *Address `json:"address,omitempty"`
	PrimaryContact *Contact `json:"primaryContact,omitempty"`
}

type CatalogueItem struct {
	ID   string            `json:"catalogueItemId"`
	Name string            `json:"name"`
	Type CatalogueItemType `json:"catalogueItemType"`
}

func (c CatalogueItem) ItemID() string { return c.ID }

type Unit struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type Price struct {
	ID               int              `json:"priceId"`
	Type             string           `json:"type"`
	ProvisioningType ProvisioningType `json:"provisioningType"`
	CurrencyCode     string           `json:"currencyCode"`
	ItemUnit         Unit             `json:"itemUnit"`
	TimeUnit         *Unit            `json:"timeUnit,omitempty"`
	Price            float64          `json:"price"`
}

func (p Price) ItemID() string { return strconv.Itoa(p.ID) }

// RequiresEstimationPeriod reports whether the user has to choose a period
// (per month / per year) for quantities bought against this price.
func (p Price) RequiresEstimationPeriod() bool {
	return p.ProvisioningType != ProvisioningDeclarative
}

// Label renders the price the way the select-price page lists it,
// e.g. "1.64 per patient per year".
func (p Price) Label() string {
	parts := []string{strconv.FormatFloat(p.Price, 'f', -1, 64), p.ItemUnit.Description}
	if p.TimeUnit != nil && p.TimeUnit.Description != "" {
		parts = append(parts, p.TimeUnit.Description)
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}
