package request

import (
	"github.com/shopspring/decimal"
)

// SubmitRequest carries the per-submit choices. AsPending is only meaningful
// for brand-new sales; an edited sale is already pending.
type SubmitRequest struct {
	AsPending      bool             `json:"as_pending"`
	AmountTendered *decimal.Decimal `json:"amount_tendered"`
}
