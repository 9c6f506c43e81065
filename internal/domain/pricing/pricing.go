// Package pricing computes sale totals from cart lines and the active pricing
// party. Every function is pure; callers recompute on each mutation.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/luzbrill/pos-terminal/internal/domain/entity"
	"github.com/luzbrill/pos-terminal/internal/domain/enum"
	"github.com/luzbrill/pos-terminal/pkg/apperror"
)

// VATRate is the Paraguayan VAT percentage. Prices are tax-inclusive, so the
// tax figure is extracted from the discounted total, never added on top.
const VATRate = 10

var (
	hundred     = decimal.NewFromInt(100)
	vatRate     = decimal.NewFromInt(VATRate)
	vatDivisor  = decimal.NewFromInt(100 + VATRate)
	roundPlaces = int32(2)
)

// Totals is the derived pricing breakdown for a cart.
type Totals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Discount decimal.Decimal `json:"discount"`
	NetTotal decimal.Decimal `json:"net_total"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

// Compute derives totals from the line set and the party's discount. A nil
// party means no discount, which keeps draft carts priceable before a client
// is selected.
func Compute(lines []entity.CartLine, party *entity.PricingParty) Totals {
	subtotal := decimal.Zero
	for i := range lines {
		subtotal = subtotal.Add(lines[i].LineTotal())
	}

	discountPct := decimal.Zero
	if party != nil {
		discountPct = party.DiscountPercent
	}
	discount := subtotal.Mul(discountPct).Div(hundred)
	net := subtotal.Sub(discount)
	tax := net.Mul(vatRate).Div(vatDivisor).Round(roundPlaces)

	return Totals{
		Subtotal: subtotal,
		Discount: discount,
		NetTotal: net,
		Tax:      tax,
		// Tax is informational; it is already inside the net total.
		Total: net,
	}
}

// ChangeDue computes the change for a cash payment. Tendering less than the
// total is a blocking condition, not a warning.
func ChangeDue(total, tendered decimal.Decimal) (decimal.Decimal, error) {
	if tendered.LessThan(total) {
		return decimal.Zero, apperror.ErrInsufficientTender
	}
	return tendered.Sub(total), nil
}

// ForCart computes totals for a cart using its active pricing party.
func ForCart(c *entity.Cart) Totals {
	return Compute(c.Lines, c.Party())
}

// ValidateTender checks the tender-specific preconditions that can be decided
// locally: cheque eligibility and the cash tendered-amount gate. The sales
// service remains authoritative; this is the client-side fast path.
func ValidateTender(c *entity.Cart, totals Totals) error {
	party := c.Party()
	switch c.Tender {
	case enum.TenderCheque:
		if party == nil || !party.AcceptsCheque {
			return apperror.ErrTenderNotEligible
		}
	case enum.TenderCash:
		if _, err := ChangeDue(totals.Total, c.AmountTendered); err != nil {
			return err
		}
	}
	return nil
}
