package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/luzbrill/pos-terminal/internal/domain/entity"
	"github.com/luzbrill/pos-terminal/internal/domain/enum"
	"github.com/luzbrill/pos-terminal/internal/domain/port"
	"github.com/luzbrill/pos-terminal/internal/domain/pricing"
	"github.com/luzbrill/pos-terminal/internal/infrastructure/metrics"
	"github.com/luzbrill/pos-terminal/internal/infrastructure/store"
	"github.com/luzbrill/pos-terminal/pkg/apperror"
)

// CheckoutService drives the sale lifecycle against the remote sales service:
// submission of new and edited sales, the deferred-confirm path, annulment,
// and entering edit mode from a pending sale. Local validation runs before
// any request leaves the process; the sales service stays authoritative and
// its rejections surface verbatim with cart state intact.
type CheckoutService struct {
	store     *store.CartStore
	sales     port.SalesService
	catalog   port.Catalog
	directory port.ClientDirectory
}

// NewCheckoutService creates a new checkout service
func NewCheckoutService(cartStore *store.CartStore, sales port.SalesService, catalog port.Catalog, directory port.ClientDirectory) *CheckoutService {
	return &CheckoutService{
		store:     cartStore,
		sales:     sales,
		catalog:   catalog,
		directory: directory,
	}
}

// SubmitInput carries the per-submit choices.
type SubmitInput struct {
	// AsPending parks a brand-new sale instead of confirming it. Ignored in
	// edit mode, where the sale is already pending until explicitly confirmed.
	AsPending      bool
	AmountTendered *decimal.Decimal
}

// SubmitResult reports the outcome of a submit.
type SubmitResult struct {
	Sale   *entity.Sale    `json:"sale"`
	Totals pricing.Totals  `json:"totals"`
	Change decimal.Decimal `json:"change_due"`
	// AwaitingConfirm is true when the sale was left pending; confirming is a
	// separate, operator-consented request.
	AwaitingConfirm bool `json:"awaiting_confirm"`
}

// Submit validates the cart, sends exactly one create or update request, and
// for the normal flow follows a successful create with the confirm call. The
// cart session is discarded only after the remote side accepted the sale.
func (s *CheckoutService) Submit(ctx context.Context, cartID uuid.UUID, in SubmitInput) (*SubmitResult, error) {
	if err := s.store.BeginSubmit(cartID); err != nil {
		return nil, err
	}
	defer s.store.EndSubmit(cartID)

	var (
		payload       *entity.SalePayload
		totals        pricing.Totals
		tender        enum.Tender
		tendered      decimal.Decimal
		editingSaleID int64
	)
	err := s.store.WithCart(cartID, func(cart *entity.Cart) error {
		if in.AmountTendered != nil {
			cart.AmountTendered = *in.AmountTendered
		}
		if cart.Client == nil {
			return apperror.ErrNoClientSelected
		}
		if len(cart.Lines) == 0 {
			return apperror.ErrEmptyCart
		}

		totals = pricing.ForCart(cart)
		if err := pricing.ValidateTender(cart, totals); err != nil {
			return err
		}

		payload = cart.Payload()
		tender = cart.Tender
		tendered = cart.AmountTendered
		editingSaleID = cart.EditingSaleID
		return nil
	})
	if err != nil {
		return nil, err
	}

	result := &SubmitResult{Totals: totals}

	if editingSaleID != 0 {
		sale, err := s.sales.Update(ctx, editingSaleID, payload)
		if err != nil {
			return nil, err
		}
		metrics.SalesSubmitted.WithLabelValues("update").Inc()
		result.Sale = sale
		result.AwaitingConfirm = true
	} else if in.AsPending {
		sale, err := s.sales.Create(ctx, payload, true)
		if err != nil {
			return nil, err
		}
		metrics.SalesSubmitted.WithLabelValues("create_pending").Inc()
		result.Sale = sale
		result.AwaitingConfirm = true
	} else {
		sale, err := s.sales.Create(ctx, payload, false)
		if err != nil {
			return nil, err
		}
		metrics.SalesSubmitted.WithLabelValues("create").Inc()

		confirmed, err := s.sales.Confirm(ctx, sale.ID)
		if err != nil {
			// The draft exists remotely but confirmation was refused, for
			// example by the authoritative stock check. The cart survives so
			// the operator can adjust and resubmit.
			return nil, err
		}
		metrics.SalesConfirmed.WithLabelValues("direct").Inc()
		result.Sale = confirmed
	}

	if tender == enum.TenderCash {
		change, err := pricing.ChangeDue(totals.Total, tendered)
		if err == nil {
			result.Change = change
		}
	}

	s.store.Remove(cartID)
	return result, nil
}

// LoadForEdit fetches a sale and, when it is still pending, reseeds a new
// cart from it. Display names and prices come from the sale snapshot, not the
// current catalog; stock ceilings are re-observed because the pending sale
// has not yet decremented stock.
func (s *CheckoutService) LoadForEdit(ctx context.Context, sess *entity.Session, saleID int64) (*CartView, error) {
	sale, err := s.sales.Get(ctx, saleID)
	if err != nil {
		return nil, err
	}
	if sale.Status != enum.SaleStatusPending {
		return nil, apperror.ErrSaleNotEditable
	}

	client, err := s.directory.GetClient(ctx, sale.ClientID)
	if err != nil {
		return nil, err
	}
	var representative *entity.Client
	if sale.RepresentativeID != nil {
		representative, err = s.directory.GetClient(ctx, *sale.RepresentativeID)
		if err != nil {
			return nil, err
		}
	}

	cart := entity.NewCart(sess.TerminalID)
	cart.EditingSaleID = sale.ID
	cart.SetClient(client, representative)
	cart.Tender = sale.Tender
	cart.IsDelivery = sale.IsDelivery

	for _, l := range sale.Lines {
		line := entity.CartLine{
			Kind:        l.Kind,
			ReferenceID: l.RefID,
			DisplayName: l.Name,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			Note:        l.Note,
		}
		if l.Kind == enum.LineKindUniqueLabItem {
			cart.MarkUniqueUsed(l.RefID)
		} else {
			line.StockCeiling = l.Quantity
			if item, err := s.catalog.GetItem(ctx, l.RefID, false); err == nil {
				line.StockCeiling = item.StockLevel
			}
		}
		cart.Lines = append(cart.Lines, line)
	}

	s.store.Put(cart)
	return viewOf(cart), nil
}

// ConfirmPending promotes a pending sale. This is the operator-consented
// second step after an edit-submit, or a later pickup of a parked sale.
func (s *CheckoutService) ConfirmPending(ctx context.Context, saleID int64) (*entity.Sale, error) {
	sale, err := s.sales.ConfirmPending(ctx, saleID)
	if err != nil {
		return nil, err
	}
	metrics.SalesConfirmed.WithLabelValues("pending").Inc()
	return sale, nil
}

// Annul voids a sale through the sales service.
func (s *CheckoutService) Annul(ctx context.Context, saleID int64) (*entity.Sale, error) {
	sale, err := s.sales.Annul(ctx, saleID)
	if err != nil {
		return nil, err
	}
	metrics.SalesAnnulled.Inc()
	return sale, nil
}

// GetSale fetches a sale with its lines.
func (s *CheckoutService) GetSale(ctx context.Context, saleID int64) (*entity.Sale, error) {
	return s.sales.Get(ctx, saleID)
}
