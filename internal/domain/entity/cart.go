package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/luzbrill/pos-terminal/internal/domain/enum"
	"github.com/luzbrill/pos-terminal/pkg/apperror"
)

// CartLine is one sellable unit in the transaction. DisplayName and UnitPrice
// are snapshots taken at add time; a later catalog rename or price change does
// not reach lines already in the cart.
type CartLine struct {
	Kind        enum.LineKind   `json:"kind"`
	ReferenceID int64           `json:"reference_id"`
	DisplayName string          `json:"display_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	// StockCeiling is the stock level observed when the line was added.
	// Meaningful only for stocked products.
	StockCeiling int    `json:"stock_ceiling,omitempty"`
	Note         string `json:"note,omitempty"`
}

// LineTotal returns quantity times unit price.
func (l *CartLine) LineTotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart is an in-progress sale owned by a single terminal session. All
// mutations happen under the owning session's lock in the cart store.
type Cart struct {
	ID             uuid.UUID       `json:"id"`
	TerminalID     string          `json:"terminal_id"`
	Client         *Client         `json:"client,omitempty"`
	Representative *Client         `json:"representative,omitempty"`
	Lines          []CartLine      `json:"lines"`
	Tender         enum.Tender     `json:"tender"`
	AmountTendered decimal.Decimal `json:"amount_tendered"`
	IsDelivery     bool            `json:"is_delivery"`
	// EditingSaleID is the remote sale being edited, zero for a brand-new sale.
	EditingSaleID int64     `json:"editing_sale_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	// usedUnique tracks every unique-use item ever inserted into this cart,
	// including removed ones. The backing lab item becomes unavailable once
	// sold, so re-adding after a remove is still refused.
	usedUnique map[int64]struct{}
}

// NewCart creates an empty cart for a terminal session.
func NewCart(terminalID string) *Cart {
	now := time.Now()
	return &Cart{
		ID:         uuid.New(),
		TerminalID: terminalID,
		Lines:      []CartLine{},
		Tender:     enum.TenderCash,
		CreatedAt:  now,
		UpdatedAt:  now,
		usedUnique: make(map[int64]struct{}),
	}
}

// AddItem inserts a catalog item into the cart, or increments the quantity of
// an existing stocked line. Stock is read from the item as observed at lookup
// time and never re-validated afterwards.
func (c *Cart) AddItem(item *Item) error {
	switch item.Kind() {
	case enum.LineKindUniqueLabItem:
		if _, used := c.usedUnique[item.ID]; used {
			return apperror.ErrDuplicateUniqueItem
		}
		c.usedUnique[item.ID] = struct{}{}
		c.Lines = append(c.Lines, CartLine{
			Kind:        enum.LineKindUniqueLabItem,
			ReferenceID: item.ID,
			DisplayName: item.Name,
			Quantity:    1,
			UnitPrice:   item.Price,
		})
	default:
		if idx := c.findStockedLine(item.ID); idx >= 0 {
			line := &c.Lines[idx]
			if line.Quantity+1 > line.StockCeiling {
				return apperror.ErrStockCeilingExceeded
			}
			line.Quantity++
		} else {
			if item.StockLevel < 1 {
				return apperror.ErrOutOfStock
			}
			c.Lines = append(c.Lines, CartLine{
				Kind:         enum.LineKindStockedProduct,
				ReferenceID:  item.ID,
				DisplayName:  item.Name,
				Quantity:     1,
				UnitPrice:    item.Price,
				StockCeiling: item.StockLevel,
			})
		}
	}
	c.touch()
	return nil
}

// SetQuantity changes a line's quantity. Quantities below one are ignored, as
// are edits to unique-use lines whose quantity is fixed at one.
func (c *Cart) SetQuantity(index, qty int) error {
	line, err := c.line(index)
	if err != nil {
		return err
	}
	if line.Kind == enum.LineKindUniqueLabItem {
		return nil
	}
	if qty < 1 {
		return nil
	}
	if qty > line.StockCeiling {
		return apperror.ErrStockCeilingExceeded
	}
	line.Quantity = qty
	c.touch()
	return nil
}

// SetUnitPrice overrides a line's price. Negative prices are ignored; there is
// no upper bound, the operator override is intentionally unrestricted.
func (c *Cart) SetUnitPrice(index int, price decimal.Decimal) error {
	line, err := c.line(index)
	if err != nil {
		return err
	}
	if price.IsNegative() {
		return nil
	}
	line.UnitPrice = price
	c.touch()
	return nil
}

// SetNote attaches free text to a line.
func (c *Cart) SetNote(index int, note string) error {
	line, err := c.line(index)
	if err != nil {
		return err
	}
	line.Note = note
	c.touch()
	return nil
}

// RemoveLine deletes a line. Removing a unique-use line does not free it for
// re-insertion; see usedUnique.
func (c *Cart) RemoveLine(index int) error {
	if index < 0 || index >= len(c.Lines) {
		return apperror.ErrLineNotFound
	}
	c.Lines = append(c.Lines[:index], c.Lines[index+1:]...)
	c.touch()
	return nil
}

// SetClient selects the nominal client and optional representative. The
// representative is a looked-up reference, never a copy into the client record.
func (c *Cart) SetClient(client *Client, representative *Client) {
	c.Client = client
	c.Representative = representative
	c.touch()
}

// Party returns the pricing party whose privileges apply: the representative
// when one is nominated, the client otherwise. Nil when no client is selected.
func (c *Cart) Party() *PricingParty {
	if c.Representative != nil {
		p := c.Representative.Party()
		return &p
	}
	if c.Client != nil {
		p := c.Client.Party()
		return &p
	}
	return nil
}

// MarkUniqueUsed records a unique-use reference without adding a line. Used
// when reseeding a cart from a pending sale.
func (c *Cart) MarkUniqueUsed(refID int64) {
	if c.usedUnique == nil {
		c.usedUnique = make(map[int64]struct{})
	}
	c.usedUnique[refID] = struct{}{}
}

// Payload serializes the cart into the sales-service request shape.
func (c *Cart) Payload() *SalePayload {
	p := &SalePayload{
		Tender:     c.Tender,
		IsDelivery: c.IsDelivery,
		Lines:      make([]PayloadLine, 0, len(c.Lines)),
	}
	if c.Client != nil {
		p.ClientID = c.Client.ID
	}
	if c.Representative != nil {
		id := c.Representative.ID
		p.RepresentativeID = &id
	}
	for _, l := range c.Lines {
		p.Lines = append(p.Lines, PayloadLine{
			RefID:     l.ReferenceID,
			Kind:      l.Kind,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
			Note:      l.Note,
		})
	}
	return p
}

func (c *Cart) findStockedLine(refID int64) int {
	for i := range c.Lines {
		if c.Lines[i].Kind == enum.LineKindStockedProduct && c.Lines[i].ReferenceID == refID {
			return i
		}
	}
	return -1
}

func (c *Cart) line(index int) (*CartLine, error) {
	if index < 0 || index >= len(c.Lines) {
		return nil, apperror.ErrLineNotFound
	}
	return &c.Lines[index], nil
}

func (c *Cart) touch() {
	c.UpdatedAt = time.Now()
}
