package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/luzbrill/pos-terminal/internal/domain/entity"
	"github.com/luzbrill/pos-terminal/internal/domain/enum"
	"github.com/luzbrill/pos-terminal/internal/domain/port"
	"github.com/luzbrill/pos-terminal/internal/domain/pricing"
	"github.com/luzbrill/pos-terminal/internal/infrastructure/store"
	"github.com/luzbrill/pos-terminal/pkg/apperror"
)

// CartService drives cart construction: line management, party selection and
// tender choice. Totals are recomputed in full on every read; carts are small
// enough that nothing is cached.
type CartService struct {
	store     *store.CartStore
	catalog   port.Catalog
	directory port.ClientDirectory
}

// NewCartService creates a new cart service
func NewCartService(cartStore *store.CartStore, catalog port.Catalog, directory port.ClientDirectory) *CartService {
	return &CartService{
		store:     cartStore,
		catalog:   catalog,
		directory: directory,
	}
}

// CartView is a point-in-time snapshot of a cart with its derived totals.
type CartView struct {
	Cart      *entity.Cart     `json:"cart"`
	Totals    pricing.Totals   `json:"totals"`
	ChangeDue *decimal.Decimal `json:"change_due,omitempty"`
}

// AddLineInput identifies the catalog item to add: either a scanned code or
// an explicit id plus kind.
type AddLineInput struct {
	Code   string
	ItemID int64
	Kind   enum.LineKind
}

// UpdateLineInput carries the optional per-line edits.
type UpdateLineInput struct {
	Quantity  *int
	UnitPrice *decimal.Decimal
	Note      *string
}

// CreateCart opens a new cart session for the operator's terminal, optionally
// pre-selecting a client.
func (s *CartService) CreateCart(ctx context.Context, sess *entity.Session, clientID, representativeID *int64) (*CartView, error) {
	cart := entity.NewCart(sess.TerminalID)

	if clientID != nil {
		client, representative, err := s.resolveParty(ctx, *clientID, representativeID)
		if err != nil {
			return nil, err
		}
		cart.SetClient(client, representative)
	}

	s.store.Put(cart)
	return viewOf(cart), nil
}

// GetCart returns the cart with freshly computed totals.
func (s *CartService) GetCart(id uuid.UUID) (*CartView, error) {
	return s.withView(id, func(cart *entity.Cart) error { return nil })
}

// AddLine resolves the item against the catalog and inserts it. The catalog
// lookup happens before the cart lock is taken; the stock level it reports
// becomes the line's ceiling.
func (s *CartService) AddLine(ctx context.Context, id uuid.UUID, in AddLineInput) (*CartView, error) {
	var item *entity.Item
	var err error
	if in.Code != "" {
		item, err = s.catalog.FindByBarcodeOrID(ctx, in.Code)
	} else {
		item, err = s.catalog.GetItem(ctx, in.ItemID, in.Kind == enum.LineKindUniqueLabItem)
	}
	if err != nil {
		return nil, err
	}

	return s.withView(id, func(cart *entity.Cart) error {
		return cart.AddItem(item)
	})
}

// UpdateLine applies quantity, price and note edits to one line.
func (s *CartService) UpdateLine(id uuid.UUID, index int, in UpdateLineInput) (*CartView, error) {
	return s.withView(id, func(cart *entity.Cart) error {
		if in.Quantity != nil {
			if err := cart.SetQuantity(index, *in.Quantity); err != nil {
				return err
			}
		}
		if in.UnitPrice != nil {
			if err := cart.SetUnitPrice(index, *in.UnitPrice); err != nil {
				return err
			}
		}
		if in.Note != nil {
			if err := cart.SetNote(index, *in.Note); err != nil {
				return err
			}
		}
		return nil
	})
}

// RemoveLine deletes one line.
func (s *CartService) RemoveLine(id uuid.UUID, index int) (*CartView, error) {
	return s.withView(id, func(cart *entity.Cart) error {
		return cart.RemoveLine(index)
	})
}

// SetClient selects the nominal client and optional representative, swapping
// the pricing party accordingly.
func (s *CartService) SetClient(ctx context.Context, id uuid.UUID, clientID int64, representativeID *int64) (*CartView, error) {
	client, representative, err := s.resolveParty(ctx, clientID, representativeID)
	if err != nil {
		return nil, err
	}

	return s.withView(id, func(cart *entity.Cart) error {
		cart.SetClient(client, representative)
		return nil
	})
}

// SetTender records the payment method, the cash amount tendered and the
// delivery flag.
func (s *CartService) SetTender(id uuid.UUID, tender enum.Tender, amountTendered *decimal.Decimal, isDelivery *bool) (*CartView, error) {
	if !tender.Valid() {
		return nil, apperror.NewBadRequestError("Unknown tender: " + tender.String())
	}
	return s.withView(id, func(cart *entity.Cart) error {
		cart.Tender = tender
		if amountTendered != nil {
			cart.AmountTendered = *amountTendered
		}
		if isDelivery != nil {
			cart.IsDelivery = *isDelivery
		}
		return nil
	})
}

// Abandon drops the cart session without touching any remote state.
func (s *CartService) Abandon(id uuid.UUID) error {
	if err := s.store.WithCart(id, func(cart *entity.Cart) error { return nil }); err != nil {
		return err
	}
	s.store.Remove(id)
	return nil
}

func (s *CartService) resolveParty(ctx context.Context, clientID int64, representativeID *int64) (*entity.Client, *entity.Client, error) {
	client, err := s.directory.GetClient(ctx, clientID)
	if err != nil {
		return nil, nil, err
	}

	var representative *entity.Client
	if representativeID != nil {
		if *representativeID == clientID {
			return nil, nil, apperror.NewBadRequestError("A client cannot represent itself")
		}
		representative, err = s.directory.GetClient(ctx, *representativeID)
		if err != nil {
			return nil, nil, err
		}
	}
	return client, representative, nil
}

func (s *CartService) withView(id uuid.UUID, fn func(cart *entity.Cart) error) (*CartView, error) {
	var view *CartView
	err := s.store.WithCart(id, func(cart *entity.Cart) error {
		if err := fn(cart); err != nil {
			return err
		}
		view = viewOf(cart)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// viewOf snapshots the cart and computes totals. Must run under the cart lock.
func viewOf(cart *entity.Cart) *CartView {
	cp := *cart
	cp.Lines = append([]entity.CartLine(nil), cart.Lines...)

	totals := pricing.ForCart(&cp)
	view := &CartView{Cart: &cp, Totals: totals}

	if cp.Tender == enum.TenderCash && cp.AmountTendered.IsPositive() {
		if change, err := pricing.ChangeDue(totals.Total, cp.AmountTendered); err == nil {
			view.ChangeDue = &change
		}
	}
	return view
}
