package entity

import (
	"github.com/shopspring/decimal"

	"github.com/luzbrill/pos-terminal/internal/domain/enum"
)

// Item is a sellable catalog entry as reported by the catalog service.
// Stock and price reflect the moment of the lookup; they are never
// re-validated locally afterwards.
type Item struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Barcode     string          `json:"barcode,omitempty"`
	Price       decimal.Decimal `json:"price"`
	StockLevel  int             `json:"stock_level"`
	IsUniqueUse bool            `json:"is_unique_use"`
}

// Kind returns the cart line kind this item produces.
func (i *Item) Kind() enum.LineKind {
	if i.IsUniqueUse {
		return enum.LineKindUniqueLabItem
	}
	return enum.LineKindStockedProduct
}
