// Package pricing converts surfaces and a rate card into a priced quote.
// All arithmetic is decimal and unrounded; only the returned fields are
// rounded to cents, so identical inputs always produce identical quotes.
package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"paint-quote/core/types"
)

// MoneyPlaces is the number of decimal places of every monetary output
const MoneyPlaces = 2

// Price computes the quote for surfaces under rateCard. Surfaces that cannot
// be priced return a TypeInvalidSurface error; nothing is defaulted silently.
func Price(surfaces []types.Surface, rateCard *types.RateCard) (*types.PricedQuote, error) {
	if err := ValidateRateCard(rateCard); err != nil {
		return nil, err
	}

	quote := &types.PricedQuote{
		LineItems: make([]types.LineItem, 0, len(surfaces)),
		Currency:  rateCard.CurrencyOrDefault(),
	}

	subtotal := decimal.Zero
	for i, s := range surfaces {
		if err := ValidateSurface(i, s, rateCard); err != nil {
			return nil, err
		}
		item, amount := lineItem(s, rateCard)
		quote.LineItems = append(quote.LineItems, item)
		subtotal = subtotal.Add(amount)
	}

	overhead := subtotal.Mul(percent(rateCard.OverheadPercent))
	profit := subtotal.Add(overhead).Mul(percent(rateCard.ProfitMarginPercent))
	taxable := subtotal.Add(overhead).Add(profit)
	tax := taxable.Mul(percent(rateCard.TaxRatePercent))
	total := taxable.Add(tax)

	labor := subtotal.Mul(percent(rateCard.LaborPercent))
	material := subtotal.Sub(labor)
	hours := decimal.Zero
	if labor.IsPositive() && rateCard.HourlyLaborRate.IsPositive() {
		hours = labor.Div(rateCard.HourlyLaborRate)
	}

	quote.Subtotal = money(subtotal)
	quote.OverheadAmount = money(overhead)
	quote.ProfitAmount = money(profit)
	quote.TaxAmount = money(tax)
	quote.TotalCost = money(total)
	quote.LaborCost = money(labor)
	quote.MaterialCost = money(material)
	quote.LaborHours = money(hours)
	return quote, nil
}

// lineItem prices one validated surface and returns the unrounded amount
func lineItem(s types.Surface, rateCard *types.RateCard) (types.LineItem, decimal.Decimal) {
	rate, _ := rateCard.Rate(s.Type)
	class := s.Type.Class()

	var qty decimal.Decimal
	coats := 1
	switch class {
	case types.UnitArea:
		qty = decimal.NewFromFloat(*s.Area)
		coats = s.EffectiveCoats()
	case types.UnitLinear:
		qty = decimal.NewFromFloat(*s.LinearFeet)
	case types.UnitCount:
		qty = decimal.NewFromInt(int64(*s.Count))
	}

	amount := qty.Mul(decimal.NewFromInt(int64(coats))).Mul(rate)

	formula := fmt.Sprintf("%s %s x $%s", qty.String(), class.Measure(), rate.StringFixed(MoneyPlaces))
	if class == types.UnitArea {
		formula = fmt.Sprintf("%s sqft x %d coats x $%s", qty.String(), coats, rate.StringFixed(MoneyPlaces))
	}

	return types.LineItem{
		Surface:  s,
		Class:    class,
		Measure:  class.Measure(),
		Quantity: qty,
		Coats:    coats,
		Rate:     rate,
		Subtotal: money(amount),
		Formula:  formula,
	}, amount
}

func percent(p decimal.Decimal) decimal.Decimal {
	return p.Shift(-2)
}

func money(d decimal.Decimal) decimal.Decimal {
	return d.Round(MoneyPlaces)
}
