package cart

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/teruzahostel/minimarket-backend/pkg/db/models"
	"github.com/teruzahostel/minimarket-backend/pkg/enums"
	pkgerrors "github.com/teruzahostel/minimarket-backend/pkg/errors"
)

type productReader interface {
	FindProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
}

// Service exposes the guest cart operations.
type Service interface {
	Get(ctx context.Context, sessionID string, lang enums.Language) (*View, error)
	AddItem(ctx context.Context, sessionID string, productID uuid.UUID, quantity int, lang enums.Language) (*View, error)
	UpdateQuantity(ctx context.Context, sessionID string, productID uuid.UUID, quantity int, lang enums.Language) (*View, error)
	RemoveItem(ctx context.Context, sessionID string, productID uuid.UUID, lang enums.Language) (*View, error)
	Clear(ctx context.Context, sessionID string) error

	// Snapshot returns the priced lines for checkout.
	Snapshot(ctx context.Context, sessionID string, lang enums.Language) ([]ItemDTO, error)
}

type service struct {
	store       *Store
	products    productReader
	deliveryFee decimal.Decimal
}

// NewService constructs the cart service. deliveryFee is the flat
// storefront rate applied once per non-empty cart.
func NewService(store *Store, products productReader, deliveryFee decimal.Decimal) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("cart store required")
	}
	if products == nil {
		return nil, fmt.Errorf("product reader required")
	}
	if deliveryFee.IsNegative() {
		return nil, fmt.Errorf("delivery fee cannot be negative")
	}
	return &service{store: store, products: products, deliveryFee: deliveryFee}, nil
}

func (s *service) Get(ctx context.Context, sessionID string, lang enums.Language) (*View, error) {
	state, err := s.store.load(ctx, sessionID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart")
	}
	return s.buildView(ctx, sessionID, state, lang)
}

func (s *service) AddItem(ctx context.Context, sessionID string, productID uuid.UUID, quantity int, lang enums.Language) (*View, error) {
	if quantity <= 0 {
		quantity = 1
	}

	product, err := s.loadSellableProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	state, err := s.store.load(ctx, sessionID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart")
	}

	found := false
	for i := range state.Lines {
		if state.Lines[i].ProductID == product.ID {
			state.Lines[i].Quantity += quantity
			found = true
			break
		}
	}
	if !found {
		if !lang.IsValid() {
			lang = enums.LanguagePT
		}
		state.Lines = append(state.Lines, Line{ProductID: product.ID, Name: product.Name(lang), Quantity: quantity})
	}

	if err := s.store.save(ctx, sessionID, state); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save cart")
	}
	return s.buildView(ctx, sessionID, state, lang)
}

func (s *service) UpdateQuantity(ctx context.Context, sessionID string, productID uuid.UUID, quantity int, lang enums.Language) (*View, error) {
	state, err := s.store.load(ctx, sessionID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart")
	}

	index := -1
	for i := range state.Lines {
		if state.Lines[i].ProductID == productID {
			index = i
			break
		}
	}
	if index < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not in cart")
	}

	if quantity <= 0 {
		state.Lines = append(state.Lines[:index], state.Lines[index+1:]...)
	} else {
		state.Lines[index].Quantity = quantity
	}

	if err := s.store.save(ctx, sessionID, state); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save cart")
	}
	return s.buildView(ctx, sessionID, state, lang)
}

func (s *service) RemoveItem(ctx context.Context, sessionID string, productID uuid.UUID, lang enums.Language) (*View, error) {
	return s.UpdateQuantity(ctx, sessionID, productID, 0, lang)
}

func (s *service) Clear(ctx context.Context, sessionID string) error {
	if err := s.store.clear(ctx, sessionID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "clear cart")
	}
	return nil
}

func (s *service) Snapshot(ctx context.Context, sessionID string, lang enums.Language) ([]ItemDTO, error) {
	view, err := s.Get(ctx, sessionID, lang)
	if err != nil {
		return nil, err
	}
	return view.Items, nil
}

// buildView prices the cart against the live catalog. Lines whose
// product disappeared or went inactive are pruned and persisted so the
// guest does not checkout phantom items.
func (s *service) buildView(ctx context.Context, sessionID string, state *cartState, lang enums.Language) (*View, error) {
	if !lang.IsValid() {
		lang = enums.LanguagePT
	}
	if len(state.Lines) == 0 {
		return emptyView(), nil
	}

	kept := make([]Line, 0, len(state.Lines))
	items := make([]ItemDTO, 0, len(state.Lines))
	subtotal := decimal.Zero
	count := 0

	for _, line := range state.Lines {
		product, err := s.products.FindProductByID(ctx, line.ProductID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup product")
		}
		if !product.Active {
			continue
		}

		// Names were frozen when the guest added the item; older carts
		// without one fall back to the current localization.
		name := line.Name
		if name == "" {
			name = product.Name(lang)
		}

		lineTotal := product.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
		items = append(items, ItemDTO{
			ProductID: product.ID,
			Name:      name,
			Type:      product.Type,
			ImageURL:  product.ImageURL,
			UnitPrice: product.Price,
			Quantity:  line.Quantity,
			LineTotal: lineTotal,
		})
		kept = append(kept, line)
		subtotal = subtotal.Add(lineTotal)
		count += line.Quantity
	}

	if len(kept) != len(state.Lines) {
		state.Lines = kept
		if err := s.store.save(ctx, sessionID, state); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save cart")
		}
	}

	if len(items) == 0 {
		return emptyView(), nil
	}

	return &View{
		Items:       items,
		ItemCount:   count,
		Subtotal:    subtotal,
		DeliveryFee: s.deliveryFee,
		Total:       subtotal.Add(s.deliveryFee),
		Currency:    "BRL",
	}, nil
}

func (s *service) loadSellableProduct(ctx context.Context, productID uuid.UUID) (*models.Product, error) {
	product, err := s.products.FindProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup product")
	}
	if !product.Active {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "product is not available")
	}
	return product, nil
}
