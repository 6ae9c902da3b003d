package order

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/sweetlane/pos-backend-go/internal/domain/auth"
	"github.com/sweetlane/pos-backend-go/internal/domain/order"
	"github.com/sweetlane/pos-backend-go/internal/domain/product"
	"github.com/sweetlane/pos-backend-go/internal/domain/user"
	"github.com/sweetlane/pos-backend-go/internal/pkg/database"
	"github.com/sweetlane/pos-backend-go/internal/repository/postgresql"
)

type orderService struct {
	db          *database.DB
	cartRepo    order.CartRepository
	orderRepo   order.OrderRepository
	productRepo product.ProductRepository
	userRepo    user.UserRepository
}

// NewOrderService creates a new cart and checkout service.
func NewOrderService(
	db *database.DB,
	cartRepo order.CartRepository,
	orderRepo order.OrderRepository,
	productRepo product.ProductRepository,
	userRepo user.UserRepository,
) order.OrderService {
	return &orderService{
		db:          db,
		cartRepo:    cartRepo,
		orderRepo:   orderRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
	}
}

func (s *orderService) AddToCart(ctx context.Context, req order.AddToCartRequest) (order.CartItemResponse, error) {
	if err := req.Validate(); err != nil {
		return order.CartItemResponse{}, err
	}

	identity, err := auth.IdentityFromContext(ctx)
	if err != nil {
		return order.CartItemResponse{}, err
	}

	p, err := s.productRepo.GetByID(ctx, req.ProductID)
	if err != nil {
		return order.CartItemResponse{}, err
	}

	existing, err := s.cartRepo.GetItem(ctx, identity.UserID, req.ProductID)
	if err != nil {
		return order.CartItemResponse{}, fmt.Errorf("failed to get cart item: %w", err)
	}

	quantity := req.Quantity
	if existing != nil {
		quantity = quantity.Add(existing.Quantity)
	}
	if quantity.Cmp(p.Stock) > 0 {
		return order.CartItemResponse{}, order.ErrInsufficientStock
	}

	now := time.Now()
	item := order.CartItem{
		ID:        uuid.New().String(),
		UserID:    identity.UserID,
		ProductID: req.ProductID,
		Quantity:  quantity,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if existing != nil {
		item.ID = existing.ID
		item.CreatedAt = existing.CreatedAt
	}

	saved, err := s.cartRepo.Upsert(ctx, item)
	if err != nil {
		return order.CartItemResponse{}, fmt.Errorf("failed to save cart item: %w", err)
	}

	return order.ToCartItemResponse(saved), nil
}

func (s *orderService) GetCart(ctx context.Context) (order.CartResponse, error) {
	identity, err := auth.IdentityFromContext(ctx)
	if err != nil {
		return order.CartResponse{}, err
	}

	items, err := s.cartRepo.GetItems(ctx, identity.UserID)
	if err != nil {
		return order.CartResponse{}, fmt.Errorf("failed to get cart: %w", err)
	}

	resp := order.CartResponse{
		Items: make([]order.CartItemResponse, 0, len(items)),
		Total: decimal.Zero,
	}
	for _, item := range items {
		resp.Items = append(resp.Items, order.ToCartItemResponse(item))
		resp.Total = resp.Total.Add(item.Total())
	}
	return resp, nil
}

func (s *orderService) RemoveFromCart(ctx context.Context, itemID string) error {
	identity, err := auth.IdentityFromContext(ctx)
	if err != nil {
		return err
	}
	return s.cartRepo.RemoveItem(ctx, identity.UserID, itemID)
}

func (s *orderService) Checkout(ctx context.Context) (order.OrderResponse, error) {
	identity, err := auth.IdentityFromContext(ctx)
	if err != nil {
		return order.OrderResponse{}, err
	}

	actor, err := s.userRepo.GetByID(ctx, identity.UserID)
	if err != nil {
		return order.OrderResponse{}, fmt.Errorf("failed to get user: %w", err)
	}

	items, err := s.cartRepo.GetItems(ctx, identity.UserID)
	if err != nil {
		return order.OrderResponse{}, fmt.Errorf("failed to get cart: %w", err)
	}
	if len(items) == 0 {
		return order.OrderResponse{}, order.ErrCartEmpty
	}

	o := order.Order{
		ID:        uuid.New().String(),
		UserID:    actor.ID,
		UserName:  actor.Name,
		OrderDate: time.Now(),
		Total:     decimal.Zero,
		ItemCount: len(items),
		Status:    order.StatusCompleted,
		Items:     make([]order.OrderItem, 0, len(items)),
	}

	for _, item := range items {
		productID := item.ProductID
		o.Items = append(o.Items, order.OrderItem{
			ID:             uuid.New().String(),
			OrderID:        o.ID,
			ProductID:      &productID,
			ProductName:    item.ProductName,
			ProductEmoji:   item.ProductEmoji,
			Price:          item.ProductPrice,
			Quantity:       item.Quantity,
			IsSoldByWeight: item.IsSoldByWeight,
		})
		o.Total = o.Total.Add(item.Total())
	}
	o.Total = o.Total.Round(2)

	var created order.Order
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := postgresql.ContextWithTx(ctx, tx)

		for _, item := range items {
			if _, err := s.productRepo.AdjustStock(txCtx, item.ProductID, item.Quantity.Neg()); err != nil {
				return err
			}
		}

		created, err = s.orderRepo.Create(txCtx, o)
		if err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		return s.cartRepo.Clear(txCtx, identity.UserID)
	})
	if err != nil {
		return order.OrderResponse{}, err
	}

	return order.ToOrderResponse(created), nil
}

func (s *orderService) GetOrder(ctx context.Context, id string) (order.OrderResponse, error) {
	o, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return order.OrderResponse{}, err
	}
	return order.ToOrderResponse(o), nil
}

func (s *orderService) ListOrders(ctx context.Context) ([]order.OrderResponse, error) {
	identity, err := auth.IdentityFromContext(ctx)
	if err != nil {
		return nil, err
	}

	var orders []order.Order
	if identity.IsStaff() {
		orders, err = s.orderRepo.List(ctx)
	} else {
		orders, err = s.orderRepo.ListByUser(ctx, identity.UserID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	responses := make([]order.OrderResponse, 0, len(orders))
	for _, o := range orders {
		responses = append(responses, order.ToOrderResponse(o))
	}
	return responses, nil
}
