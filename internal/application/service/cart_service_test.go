package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/luzbrill/pos-terminal/internal/domain/entity"
	"github.com/luzbrill/pos-terminal/internal/domain/enum"
	"github.com/luzbrill/pos-terminal/internal/infrastructure/store"
	"github.com/luzbrill/pos-terminal/pkg/apperror"
)

func newCartService(catalog *fakeCatalog, directory *fakeDirectory) (*CartService, *store.CartStore) {
	cartStore := store.NewCartStore(time.Hour)
	if catalog == nil {
		catalog = &fakeCatalog{items: map[int64]*entity.Item{}}
	}
	if directory == nil {
		directory = &fakeDirectory{clients: map[int64]*entity.Client{}}
	}
	return NewCartService(cartStore, catalog, directory), cartStore
}

func TestCreateCartWithClient(t *testing.T) {
	directory := &fakeDirectory{clients: map[int64]*entity.Client{
		1: {ID: 1, Name: "Acme", DiscountPercent: decimal.NewFromInt(10)},
	}}
	svc, cartStore := newCartService(nil, directory)

	clientID := int64(1)
	view, err := svc.CreateCart(context.Background(), testSession(), &clientID, nil)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if view.Cart.Client == nil || view.Cart.Client.ID != 1 {
		t.Errorf("client = %+v, want 1", view.Cart.Client)
	}
	if view.Cart.TerminalID != "term-1" {
		t.Errorf("terminal = %q, want term-1", view.Cart.TerminalID)
	}
	if cartStore.Len() != 1 {
		t.Error("cart session was not registered")
	}
}

func TestAddLineByScannedCode(t *testing.T) {
	catalog := &fakeCatalog{items: map[int64]*entity.Item{
		7: {ID: 7, Name: "Widget", Barcode: "779001", Price: decimal.NewFromInt(5000), StockLevel: 3},
	}}
	svc, cartStore := newCartService(catalog, nil)
	cart := entity.NewCart("term-1")
	cartStore.Put(cart)

	view, err := svc.AddLine(context.Background(), cart.ID, AddLineInput{Code: "779001"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if len(view.Cart.Lines) != 1 || view.Cart.Lines[0].ReferenceID != 7 {
		t.Fatalf("lines = %+v, want one line for item 7", view.Cart.Lines)
	}
	if view.Cart.Lines[0].StockCeiling != 3 {
		t.Errorf("ceiling = %d, want the observed stock 3", view.Cart.Lines[0].StockCeiling)
	}
}

func TestAddLineUnknownCode(t *testing.T) {
	svc, cartStore := newCartService(nil, nil)
	cart := entity.NewCart("term-1")
	cartStore.Put(cart)

	_, err := svc.AddLine(context.Background(), cart.ID, AddLineInput{Code: "no-such"})
	if err == nil {
		t.Fatal("expected an error for an unknown code")
	}
	if appErr := apperror.GetAppError(err); appErr.Code != 404 {
		t.Errorf("code = %d, want 404", appErr.Code)
	}
}

func TestSetClientRejectsSelfRepresentation(t *testing.T) {
	directory := &fakeDirectory{clients: map[int64]*entity.Client{
		1: {ID: 1, Name: "Acme"},
	}}
	svc, cartStore := newCartService(nil, directory)
	cart := entity.NewCart("term-1")
	cartStore.Put(cart)

	same := int64(1)
	_, err := svc.SetClient(context.Background(), cart.ID, 1, &same)
	if err == nil {
		t.Fatal("expected an error for self-representation")
	}
	if appErr := apperror.GetAppError(err); appErr.Code != 400 {
		t.Errorf("code = %d, want 400", appErr.Code)
	}
}

func TestSetTenderComputesChangeInView(t *testing.T) {
	catalog := &fakeCatalog{items: map[int64]*entity.Item{
		7: {ID: 7, Name: "Widget", Price: decimal.NewFromInt(10000), StockLevel: 5},
	}}
	svc, cartStore := newCartService(catalog, nil)
	cart := entity.NewCart("term-1")
	cartStore.Put(cart)

	if _, err := svc.AddLine(context.Background(), cart.ID, AddLineInput{ItemID: 7}); err != nil {
		t.Fatalf("add: %v", err)
	}

	view, err := svc.SetTender(cart.ID, enum.TenderCash, dec("15000"), nil)
	if err != nil {
		t.Fatalf("set tender: %v", err)
	}
	if view.ChangeDue == nil || !view.ChangeDue.Equal(decimal.NewFromInt(5000)) {
		t.Errorf("change = %v, want 5000", view.ChangeDue)
	}

	// Under-tendering leaves the view without a change figure; the block
	// happens at submit time.
	view, err = svc.SetTender(cart.ID, enum.TenderCash, dec("9000"), nil)
	if err != nil {
		t.Fatalf("set tender: %v", err)
	}
	if view.ChangeDue != nil {
		t.Errorf("change = %v, want nil when tendered is short", view.ChangeDue)
	}
}

func TestSetTenderUnknownMethod(t *testing.T) {
	svc, cartStore := newCartService(nil, nil)
	cart := entity.NewCart("term-1")
	cartStore.Put(cart)

	if _, err := svc.SetTender(cart.ID, enum.Tender("BARTER"), nil, nil); err == nil {
		t.Fatal("expected an error for an unknown tender")
	}
}

func TestAbandon(t *testing.T) {
	svc, cartStore := newCartService(nil, nil)
	cart := entity.NewCart("term-1")
	cartStore.Put(cart)

	if err := svc.Abandon(cart.ID); err != nil {
		t.Fatalf("abandon: %v", err)
	}
	if cartStore.Len() != 0 {
		t.Error("cart still registered after abandon")
	}
	if err := svc.Abandon(cart.ID); !errors.Is(err, apperror.ErrCartNotFound) {
		t.Errorf("second abandon error = %v, want ErrCartNotFound", err)
	}
}
