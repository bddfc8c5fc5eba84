package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/jpmanalo/bakepos-counter/internal/domain/entity"
	"github.com/jpmanalo/bakepos-counter/internal/domain/enum"
	"github.com/jpmanalo/bakepos-counter/internal/domain/repository"
	"github.com/jpmanalo/bakepos-counter/pkg/apperror"
	"github.com/jpmanalo/bakepos-counter/pkg/money"
)

// CartService manages the per-session cart and the payment panel inputs.
type CartService struct {
	cartRepo    repository.CartRepository
	catalogRepo repository.CatalogRepository
}

// NewCartService creates a new cart service
func NewCartService(
	cartRepo repository.CartRepository,
	catalogRepo repository.CatalogRepository,
) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		catalogRepo: catalogRepo,
	}
}

// Get returns the session's cart with its derived totals.
func (s *CartService) Get(ctx context.Context, sessionID uuid.UUID, username string) (*entity.Cart, entity.Totals, error) {
	cart, err := s.cartRepo.GetOrCreate(ctx, sessionID, username)
	if err != nil {
		return nil, entity.Totals{}, err
	}
	return cart, entity.ComputeTotals(cart), nil
}

// AddItem adds one unit of a catalog product to the cart. The product's name
// and price are copied into the line, so a later catalog refresh does not
// reprice what is already in the cart.
func (s *CartService) AddItem(ctx context.Context, sessionID uuid.UUID, username string, productID int64) (*entity.Cart, entity.Totals, error) {
	product, err := s.catalogRepo.Get(ctx, productID)
	if err != nil {
		return nil, entity.Totals{}, err
	}
	if product == nil {
		return nil, entity.Totals{}, apperror.NewNotFoundError("Product")
	}

	cart, err := s.cartRepo.GetOrCreate(ctx, sessionID, username)
	if err != nil {
		return nil, entity.Totals{}, err
	}

	cart.Add(*product)
	if err := s.cartRepo.Save(ctx, cart); err != nil {
		return nil, entity.Totals{}, err
	}
	return cart, entity.ComputeTotals(cart), nil
}

// RemoveItem deletes the whole line for a product regardless of quantity.
// Removing a product that is not in the cart succeeds without effect.
func (s *CartService) RemoveItem(ctx context.Context, sessionID uuid.UUID, username string, productID int64) (*entity.Cart, entity.Totals, error) {
	cart, err := s.cartRepo.GetOrCreate(ctx, sessionID, username)
	if err != nil {
		return nil, entity.Totals{}, err
	}

	cart.Remove(productID)
	if err := s.cartRepo.Save(ctx, cart); err != nil {
		return nil, entity.Totals{}, err
	}
	return cart, entity.ComputeTotals(cart), nil
}

// PaymentInput carries the raw payment panel fields. Method may be empty to
// keep the current selection.
type PaymentInput struct {
	Discount   string
	AmountPaid string
	Method     string
}

// SetPayment stores the sanitized payment inputs on the cart. Discount and
// amount paid are kept as strings the way they were typed, minus characters
// the fields never accept.
func (s *CartService) SetPayment(ctx context.Context, sessionID uuid.UUID, username string, input PaymentInput) (*entity.Cart, entity.Totals, error) {
	cart, err := s.cartRepo.GetOrCreate(ctx, sessionID, username)
	if err != nil {
		return nil, entity.Totals{}, err
	}

	cart.Discount = money.Sanitize(input.Discount)
	cart.AmountPaid = money.Sanitize(input.AmountPaid)
	if input.Method != "" {
		method, err := enum.ParsePaymentMethod(input.Method)
		if err != nil {
			return nil, entity.Totals{}, apperror.NewBadRequestError("Unknown payment method")
		}
		cart.Method = method
	}

	if err := s.cartRepo.Save(ctx, cart); err != nil {
		return nil, entity.Totals{}, err
	}
	return cart, entity.ComputeTotals(cart), nil
}
