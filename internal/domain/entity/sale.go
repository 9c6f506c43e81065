package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/luzbrill/pos-terminal/internal/domain/enum"
)

// Sale is the persisted transaction aggregate as reported by the sales
// service. Once confirmed or annulled it is read-only to this service.
type Sale struct {
	ID               int64           `json:"id"`
	Status           enum.SaleStatus `json:"status"`
	ClientID         int64           `json:"client_id"`
	RepresentativeID *int64          `json:"representative_id,omitempty"`
	Tender           enum.Tender     `json:"tender"`
	IsDelivery       bool            `json:"is_delivery"`
	Subtotal         decimal.Decimal `json:"subtotal"`
	Discount         decimal.Decimal `json:"discount"`
	Tax              decimal.Decimal `json:"tax"`
	Total            decimal.Decimal `json:"total"`
	Lines            []SaleLine      `json:"lines"`
	CreatedAt        time.Time       `json:"created_at"`
}

// SaleLine is a persisted line item.
type SaleLine struct {
	RefID     int64           `json:"ref_id"`
	Kind      enum.LineKind   `json:"kind"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Note      string          `json:"note,omitempty"`
}

// SalePayload is the create/update request body sent to the sales service.
type SalePayload struct {
	ClientID         int64         `json:"client_id"`
	RepresentativeID *int64        `json:"representative_id,omitempty"`
	Tender           enum.Tender   `json:"tender"`
	IsDelivery       bool          `json:"is_delivery"`
	Lines            []PayloadLine `json:"lines"`
}

// PayloadLine is one line of a SalePayload.
type PayloadLine struct {
	RefID     int64           `json:"ref_id"`
	Kind      enum.LineKind   `json:"kind"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Note      string          `json:"note,omitempty"`
}
