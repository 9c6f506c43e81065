package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/luzbrill/pos-terminal/internal/domain/entity"
	"github.com/luzbrill/pos-terminal/internal/domain/enum"
	"github.com/luzbrill/pos-terminal/internal/domain/port"
	"github.com/luzbrill/pos-terminal/internal/infrastructure/store"
	"github.com/luzbrill/pos-terminal/pkg/apperror"
	"github.com/luzbrill/pos-terminal/pkg/capability"
)

// fakeSales records the lifecycle calls made against it and returns canned
// results, failing on demand per operation.
type fakeSales struct {
	calls []string

	createErr  error
	confirmErr error
	updateErr  error

	sale *entity.Sale
}

func (f *fakeSales) Create(_ context.Context, payload *entity.SalePayload, asPending bool) (*entity.Sale, error) {
	if asPending {
		f.calls = append(f.calls, "create_pending")
	} else {
		f.calls = append(f.calls, "create")
	}
	if f.createErr != nil {
		return nil, f.createErr
	}
	status := enum.SaleStatusDraft
	if asPending {
		status = enum.SaleStatusPending
	}
	return &entity.Sale{ID: 100, Status: status, ClientID: payload.ClientID, Tender: payload.Tender}, nil
}

func (f *fakeSales) Update(_ context.Context, id int64, payload *entity.SalePayload) (*entity.Sale, error) {
	f.calls = append(f.calls, "update")
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return &entity.Sale{ID: id, Status: enum.SaleStatusPending, ClientID: payload.ClientID}, nil
}

func (f *fakeSales) Confirm(_ context.Context, id int64) (*entity.Sale, error) {
	f.calls = append(f.calls, "confirm")
	if f.confirmErr != nil {
		return nil, f.confirmErr
	}
	return &entity.Sale{ID: id, Status: enum.SaleStatusConfirmed}, nil
}

func (f *fakeSales) ConfirmPending(_ context.Context, id int64) (*entity.Sale, error) {
	f.calls = append(f.calls, "confirm_pending")
	return &entity.Sale{ID: id, Status: enum.SaleStatusConfirmed}, nil
}

func (f *fakeSales) Annul(_ context.Context, id int64) (*entity.Sale, error) {
	f.calls = append(f.calls, "annul")
	return &entity.Sale{ID: id, Status: enum.SaleStatusAnnulled}, nil
}

func (f *fakeSales) Get(_ context.Context, id int64) (*entity.Sale, error) {
	f.calls = append(f.calls, "get")
	if f.sale != nil {
		return f.sale, nil
	}
	return nil, apperror.NewNotFoundError("Sale")
}

type fakeCatalog struct {
	items map[int64]*entity.Item
}

func (f *fakeCatalog) FindByBarcodeOrID(_ context.Context, code string) (*entity.Item, error) {
	for _, item := range f.items {
		if item.Barcode == code {
			return item, nil
		}
	}
	return nil, apperror.NewNotFoundError("Item")
}

func (f *fakeCatalog) GetItem(_ context.Context, id int64, _ bool) (*entity.Item, error) {
	if item, ok := f.items[id]; ok {
		return item, nil
	}
	return nil, apperror.NewNotFoundError("Item")
}

func (f *fakeCatalog) ListAvailable(_ context.Context, _ port.ItemFilter) ([]entity.Item, error) {
	return nil, nil
}

type fakeDirectory struct {
	clients map[int64]*entity.Client
}

func (f *fakeDirectory) GetClient(_ context.Context, id int64) (*entity.Client, error) {
	if c, ok := f.clients[id]; ok {
		return c, nil
	}
	return nil, apperror.NewNotFoundError("Client")
}

func (f *fakeDirectory) ListClients(_ context.Context, _ string) ([]entity.Client, error) {
	return nil, nil
}

func testSession() *entity.Session {
	return &entity.Session{
		TerminalID: "term-1",
		Caps:       capability.NewSet(capability.SaleCreate, capability.SaleView),
	}
}

func seededCart(t *testing.T, cartStore *store.CartStore, client *entity.Client) *entity.Cart {
	t.Helper()
	cart := entity.NewCart("term-1")
	if client != nil {
		cart.SetClient(client, nil)
	}
	if err := cart.AddItem(&entity.Item{ID: 7, Name: "Widget", Price: decimal.NewFromInt(10000), StockLevel: 5}); err != nil {
		t.Fatalf("seed cart: %v", err)
	}
	cartStore.Put(cart)
	return cart
}

func newCheckout(sales *fakeSales, catalog *fakeCatalog, directory *fakeDirectory) (*CheckoutService, *store.CartStore) {
	cartStore := store.NewCartStore(time.Hour)
	if catalog == nil {
		catalog = &fakeCatalog{items: map[int64]*entity.Item{}}
	}
	if directory == nil {
		directory = &fakeDirectory{clients: map[int64]*entity.Client{}}
	}
	return NewCheckoutService(cartStore, sales, catalog, directory), cartStore
}

func TestSubmitGuards(t *testing.T) {
	client := &entity.Client{ID: 1, Name: "Acme"}

	tests := []struct {
		name    string
		setup   func(t *testing.T, s *store.CartStore) *entity.Cart
		input   SubmitInput
		wantErr error
	}{
		{
			name: "no client selected",
			setup: func(t *testing.T, s *store.CartStore) *entity.Cart {
				return seededCart(t, s, nil)
			},
			input:   SubmitInput{AmountTendered: dec("20000")},
			wantErr: apperror.ErrNoClientSelected,
		},
		{
			name: "empty cart",
			setup: func(t *testing.T, s *store.CartStore) *entity.Cart {
				cart := entity.NewCart("term-1")
				cart.SetClient(client, nil)
				s.Put(cart)
				return cart
			},
			input:   SubmitInput{AmountTendered: dec("20000")},
			wantErr: apperror.ErrEmptyCart,
		},
		{
			name: "cash insufficient",
			setup: func(t *testing.T, s *store.CartStore) *entity.Cart {
				return seededCart(t, s, client)
			},
			input:   SubmitInput{AmountTendered: dec("9999")},
			wantErr: apperror.ErrInsufficientTender,
		},
		{
			name: "cheque not accepted",
			setup: func(t *testing.T, s *store.CartStore) *entity.Cart {
				cart := seededCart(t, s, client)
				cart.Tender = enum.TenderCheque
				return cart
			},
			wantErr: apperror.ErrTenderNotEligible,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sales := &fakeSales{}
			svc, cartStore := newCheckout(sales, nil, nil)
			cart := tt.setup(t, cartStore)

			_, err := svc.Submit(context.Background(), cart.ID, tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
			if len(sales.calls) != 0 {
				t.Errorf("remote calls = %v, want none before local validation passes", sales.calls)
			}
			// The cart survives a rejected submit.
			if err := cartStore.WithCart(cart.ID, func(c *entity.Cart) error { return nil }); err != nil {
				t.Errorf("cart lookup after rejection: %v", err)
			}
		})
	}
}

func TestSubmitNormalFlow(t *testing.T) {
	sales := &fakeSales{}
	svc, cartStore := newCheckout(sales, nil, nil)
	cart := seededCart(t, cartStore, &entity.Client{ID: 1, Name: "Acme"})

	result, err := svc.Submit(context.Background(), cart.ID, SubmitInput{AmountTendered: dec("12000")})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	wantCalls := []string{"create", "confirm"}
	if len(sales.calls) != 2 || sales.calls[0] != wantCalls[0] || sales.calls[1] != wantCalls[1] {
		t.Errorf("calls = %v, want %v", sales.calls, wantCalls)
	}
	if result.AwaitingConfirm {
		t.Error("AwaitingConfirm = true, want false on the direct flow")
	}
	if result.Sale.Status != enum.SaleStatusConfirmed {
		t.Errorf("status = %s, want CONFIRMED", result.Sale.Status)
	}
	if !result.Change.Equal(decimal.NewFromInt(2000)) {
		t.Errorf("change = %s, want 2000", result.Change)
	}
	if cartStore.Len() != 0 {
		t.Error("cart should be discarded after a successful submit")
	}
}

func TestSubmitExactCashHasZeroChange(t *testing.T) {
	sales := &fakeSales{}
	svc, cartStore := newCheckout(sales, nil, nil)
	cart := seededCart(t, cartStore, &entity.Client{ID: 1, Name: "Acme"})

	result, err := svc.Submit(context.Background(), cart.ID, SubmitInput{AmountTendered: dec("10000")})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !result.Change.IsZero() {
		t.Errorf("change = %s, want 0", result.Change)
	}
}

func TestSubmitAsPendingSkipsConfirm(t *testing.T) {
	sales := &fakeSales{}
	svc, cartStore := newCheckout(sales, nil, nil)
	cart := seededCart(t, cartStore, &entity.Client{ID: 1, Name: "Acme"})
	if err := cartStore.WithCart(cart.ID, func(c *entity.Cart) error {
		c.Tender = enum.TenderCard
		return nil
	}); err != nil {
		t.Fatalf("set tender: %v", err)
	}

	result, err := svc.Submit(context.Background(), cart.ID, SubmitInput{AsPending: true})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if len(sales.calls) != 1 || sales.calls[0] != "create_pending" {
		t.Errorf("calls = %v, want [create_pending]", sales.calls)
	}
	if !result.AwaitingConfirm {
		t.Error("AwaitingConfirm = false, want true for a parked sale")
	}
	if result.Sale.Status != enum.SaleStatusPending {
		t.Errorf("status = %s, want PENDING", result.Sale.Status)
	}
}

func TestSubmitEditModeSendsUpdate(t *testing.T) {
	sales := &fakeSales{}
	svc, cartStore := newCheckout(sales, nil, nil)
	cart := seededCart(t, cartStore, &entity.Client{ID: 1, Name: "Acme"})
	if err := cartStore.WithCart(cart.ID, func(c *entity.Cart) error {
		c.EditingSaleID = 55
		c.Tender = enum.TenderCard
		return nil
	}); err != nil {
		t.Fatalf("enter edit mode: %v", err)
	}

	result, err := svc.Submit(context.Background(), cart.ID, SubmitInput{})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if len(sales.calls) != 1 || sales.calls[0] != "update" {
		t.Errorf("calls = %v, want [update]", sales.calls)
	}
	if !result.AwaitingConfirm {
		t.Error("AwaitingConfirm = false, want true after an edit submit")
	}
	if result.Sale.ID != 55 {
		t.Errorf("sale id = %d, want 55", result.Sale.ID)
	}
}

func TestSubmitRemoteRejectionKeepsCart(t *testing.T) {
	remoteErr := apperror.NewUpstreamError(409, "Insufficient stock")
	sales := &fakeSales{confirmErr: remoteErr}
	svc, cartStore := newCheckout(sales, nil, nil)
	cart := seededCart(t, cartStore, &entity.Client{ID: 1, Name: "Acme"})

	_, err := svc.Submit(context.Background(), cart.ID, SubmitInput{AmountTendered: dec("10000")})
	if !errors.Is(err, remoteErr) {
		t.Fatalf("error = %v, want the upstream rejection verbatim", err)
	}

	// The operator can adjust and resubmit against the same cart.
	if cartStore.Len() != 1 {
		t.Fatal("cart was discarded despite the rejection")
	}
	sales.confirmErr = nil
	if _, err := svc.Submit(context.Background(), cart.ID, SubmitInput{AmountTendered: dec("10000")}); err != nil {
		t.Fatalf("resubmit: %v", err)
	}
}

func TestSubmitLatchBlocksConcurrentSubmit(t *testing.T) {
	sales := &fakeSales{}
	svc, cartStore := newCheckout(sales, nil, nil)
	cart := seededCart(t, cartStore, &entity.Client{ID: 1, Name: "Acme"})

	if err := cartStore.BeginSubmit(cart.ID); err != nil {
		t.Fatalf("arm latch: %v", err)
	}
	_, err := svc.Submit(context.Background(), cart.ID, SubmitInput{AmountTendered: dec("10000")})
	if !errors.Is(err, apperror.ErrSubmitInFlight) {
		t.Fatalf("error = %v, want ErrSubmitInFlight", err)
	}
	if len(sales.calls) != 0 {
		t.Errorf("calls = %v, want none while latched", sales.calls)
	}
}

func TestLoadForEdit(t *testing.T) {
	repID := int64(2)
	pending := &entity.Sale{
		ID:               55,
		Status:           enum.SaleStatusPending,
		ClientID:         1,
		RepresentativeID: &repID,
		Tender:           enum.TenderCard,
		IsDelivery:       true,
		Lines: []entity.SaleLine{
			{RefID: 7, Kind: enum.LineKindStockedProduct, Name: "Widget", Quantity: 2, UnitPrice: decimal.NewFromInt(10000)},
			{RefID: 42, Kind: enum.LineKindUniqueLabItem, Name: "Lab frame", Quantity: 1, UnitPrice: decimal.NewFromInt(150000)},
		},
	}
	sales := &fakeSales{sale: pending}
	catalog := &fakeCatalog{items: map[int64]*entity.Item{
		7: {ID: 7, Name: "Widget", Price: decimal.NewFromInt(11000), StockLevel: 9},
	}}
	directory := &fakeDirectory{clients: map[int64]*entity.Client{
		1: {ID: 1, Name: "Acme"},
		2: {ID: 2, Name: "Rep", DiscountPercent: decimal.NewFromInt(10)},
	}}
	svc, cartStore := newCheckout(sales, catalog, directory)

	view, err := svc.LoadForEdit(context.Background(), testSession(), 55)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	cart := view.Cart
	if cart.EditingSaleID != 55 {
		t.Errorf("EditingSaleID = %d, want 55", cart.EditingSaleID)
	}
	if cart.Tender != enum.TenderCard || !cart.IsDelivery {
		t.Errorf("tender/delivery = %s/%v, want CARD/true", cart.Tender, cart.IsDelivery)
	}
	if len(cart.Lines) != 2 {
		t.Fatalf("lines = %d, want 2", len(cart.Lines))
	}
	// Snapshot values come from the sale, not the current catalog.
	if !cart.Lines[0].UnitPrice.Equal(decimal.NewFromInt(10000)) {
		t.Errorf("unit price = %s, want the sale snapshot 10000", cart.Lines[0].UnitPrice)
	}
	// The ceiling is re-observed from the catalog.
	if cart.Lines[0].StockCeiling != 9 {
		t.Errorf("ceiling = %d, want 9", cart.Lines[0].StockCeiling)
	}
	// The representative's privileges drive pricing after the reload.
	if !view.Totals.Discount.Equal(decimal.NewFromInt(17000)) {
		t.Errorf("discount = %s, want 17000", view.Totals.Discount)
	}
	if cartStore.Len() != 1 {
		t.Error("cart session was not registered")
	}

	// The unique item is re-registered as consumed.
	err = cartStore.WithCart(cart.ID, func(c *entity.Cart) error {
		return c.AddItem(&entity.Item{ID: 42, Name: "Lab frame", IsUniqueUse: true})
	})
	if !errors.Is(err, apperror.ErrDuplicateUniqueItem) {
		t.Errorf("re-add error = %v, want ErrDuplicateUniqueItem", err)
	}
}

func TestLoadForEditRejectsNonPending(t *testing.T) {
	for _, status := range []enum.SaleStatus{enum.SaleStatusConfirmed, enum.SaleStatusAnnulled} {
		t.Run(status.String(), func(t *testing.T) {
			sales := &fakeSales{sale: &entity.Sale{ID: 55, Status: status, ClientID: 1}}
			svc, cartStore := newCheckout(sales, nil, nil)

			_, err := svc.LoadForEdit(context.Background(), testSession(), 55)
			if !errors.Is(err, apperror.ErrSaleNotEditable) {
				t.Fatalf("error = %v, want ErrSaleNotEditable", err)
			}
			if cartStore.Len() != 0 {
				t.Error("no cart session should exist after a refused load")
			}
		})
	}
}

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}
