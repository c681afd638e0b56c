package types

import "github.com/shopspring/decimal"

// RateCard is a company's pricing configuration. It is supplied by the
// caller on every pricing call and never persisted by the core.
type RateCard struct {
	// CompanyID identifies the owning company
	CompanyID string `json:"companyId,omitempty"`

	// Currency is the quote currency
	Currency Currency `json:"currency,omitempty"`

	// Rates maps each surface type to its unit price
	Rates map[SurfaceType]decimal.Decimal `json:"rates"`

	// OverheadPercent is applied to the subtotal
	OverheadPercent decimal.Decimal `json:"overheadPercent"`

	// ProfitMarginPercent is applied to subtotal plus overhead
	ProfitMarginPercent decimal.Decimal `json:"profitMarginPercent"`

	// TaxRatePercent is applied to subtotal plus overhead plus profit
	TaxRatePercent decimal.Decimal `json:"taxRatePercent"`

	// HourlyLaborRate converts the labor share into estimated hours
	HourlyLaborRate decimal.Decimal `json:"hourlyLaborRate"`

	// LaborPercent is the share of the subtotal attributed to labor.
	// Zero means labor is embedded in the unit rates.
	LaborPercent decimal.Decimal `json:"laborPercent"`
}

// Rate returns the unit price for a surface type
func (r *RateCard) Rate(t SurfaceType) (decimal.Decimal, bool) {
	if r == nil || r.Rates == nil {
		return decimal.Zero, false
	}
	rate, ok := r.Rates[t]
	return rate, ok
}

// CurrencyOrDefault returns the card currency, USD when unset
func (r *RateCard) CurrencyOrDefault() Currency {
	if r == nil || r.Currency == "" {
		return CurrencyUSD
	}
	return r.Currency
}

// LineItem is the priced result for one surface
type LineItem struct {
	// Surface is the input surface
	Surface Surface `json:"surface"`

	// Class is the unit class used for the calculation
	Class UnitClass `json:"unitClass"`

	// Measure is the billing unit label (sqft, linear ft, each)
	Measure string `json:"measure"`

	// Quantity is the measured quantity
	Quantity decimal.Decimal `json:"quantity"`

	// Coats is the coat multiplier applied (1 for linear and count classes)
	Coats int `json:"coats"`

	// Rate is the unit price
	Rate decimal.Decimal `json:"rate"`

	// Subtotal is Quantity * Coats * Rate, rounded to cents
	Subtotal decimal.Decimal `json:"subtotal"`

	// Formula describes how the subtotal was calculated
	Formula string `json:"formula"`
}

// PricedQuote is the immutable output of the pricing calculator
type PricedQuote struct {
	LineItems      []LineItem      `json:"lineItems"`
	MaterialCost   decimal.Decimal `json:"materialCost"`
	LaborCost      decimal.Decimal `json:"laborCost"`
	LaborHours     decimal.Decimal `json:"laborHours"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	OverheadAmount decimal.Decimal `json:"overheadAmount"`
	ProfitAmount   decimal.Decimal `json:"profitAmount"`
	TaxAmount      decimal.Decimal `json:"taxAmount"`
	TotalCost      decimal.Decimal `json:"totalCost"`
	Currency       Currency        `json:"currency"`
}
