package entity

import (
	"github.com/shopspring/decimal"
)

// Client is a customer record as reported by the client directory.
type Client struct {
	ID              int64           `json:"id"`
	Name            string          `json:"name"`
	TaxID           string          `json:"tax_id,omitempty"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	CreditLimit     decimal.Decimal `json:"credit_limit"`
	AcceptsCheque   bool            `json:"accepts_cheque"`
}

// PricingParty is the entity whose commercial privileges govern a sale's
// pricing. It normally mirrors the selected client; when the sale records a
// representative, the representative's privileges apply while the nominal
// client stays on the sale.
type PricingParty struct {
	ClientID        int64           `json:"client_id"`
	Name            string          `json:"name"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	CreditLimit     decimal.Decimal `json:"credit_limit"`
	AcceptsCheque   bool            `json:"accepts_cheque"`
}

// Party returns the client's privileges as a pricing party.
func (c *Client) Party() PricingParty {
	return PricingParty{
		ClientID:        c.ID,
		Name:            c.Name,
		DiscountPercent: c.DiscountPercent,
		CreditLimit:     c.CreditLimit,
		AcceptsCheque:   c.AcceptsCheque,
	}
}
