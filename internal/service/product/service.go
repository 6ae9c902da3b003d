package product

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sweetlane/pos-backend-go/internal/domain/auth"
	"github.com/sweetlane/pos-backend-go/internal/domain/product"
	"github.com/sweetlane/pos-backend-go/internal/domain/user"
)

type productService struct {
	productRepo product.ProductRepository
	userRepo    user.UserRepository
}

// NewProductService creates a new catalog service.
func NewProductService(productRepo product.ProductRepository, userRepo user.UserRepository) product.ProductService {
	return &productService{
		productRepo: productRepo,
		userRepo:    userRepo,
	}
}

func (s *productService) Create(ctx context.Context, req product.CreateProductRequest) (product.ProductResponse, error) {
	if err := req.Validate(); err != nil {
		return product.ProductResponse{}, err
	}

	if req.Barcode != "" {
		existing, err := s.productRepo.GetByBarcode(ctx, req.Barcode)
		if err != nil && !errors.Is(err, product.ErrProductNotFound) {
			return product.ProductResponse{}, fmt.Errorf("failed to check barcode: %w", err)
		}
		if existing.ID != "" {
			return product.ProductResponse{}, product.ErrBarcodeExists
		}
	}

	now := time.Now()
	p := product.Product{
		ID:             uuid.New().String(),
		Name:           req.Name,
		Emoji:          req.Emoji,
		Barcode:        req.Barcode,
		Price:          req.Price,
		Stock:          req.Stock,
		IsSoldByWeight: req.IsSoldByWeight,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	created, err := s.productRepo.Create(ctx, p)
	if err != nil {
		return product.ProductResponse{}, fmt.Errorf("failed to create product: %w", err)
	}

	return product.ToResponse(created), nil
}

func (s *productService) Get(ctx context.Context, id string) (product.ProductResponse, error) {
	p, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return product.ProductResponse{}, err
	}
	return product.ToResponse(p), nil
}

func (s *productService) Search(ctx context.Context, query string) ([]product.ProductResponse, error) {
	products, err := s.productRepo.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}

	responses := make([]product.ProductResponse, 0, len(products))
	for _, p := range products {
		responses = append(responses, product.ToResponse(p))
	}
	return responses, nil
}

func (s *productService) Update(ctx context.Context, req product.UpdateProductRequest) (product.ProductResponse, error) {
	if err := req.Validate(); err != nil {
		return product.ProductResponse{}, err
	}

	p, err := s.productRepo.GetByID(ctx, req.ID)
	if err != nil {
		return product.ProductResponse{}, err
	}

	if req.Barcode != nil && *req.Barcode != "" && *req.Barcode != p.Barcode {
		existing, err := s.productRepo.GetByBarcode(ctx, *req.Barcode)
		if err != nil && !errors.Is(err, product.ErrProductNotFound) {
			return product.ProductResponse{}, fmt.Errorf("failed to check barcode: %w", err)
		}
		if existing.ID != "" && existing.ID != p.ID {
			return product.ProductResponse{}, product.ErrBarcodeExists
		}
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Emoji != nil {
		p.Emoji = *req.Emoji
	}
	if req.Barcode != nil {
		p.Barcode = *req.Barcode
	}
	if req.Price != nil {
		p.Price = *req.Price
	}
	if req.IsSoldByWeight != nil {
		p.IsSoldByWeight = *req.IsSoldByWeight
	}
	p.UpdatedAt = time.Now()

	if err := s.productRepo.Update(ctx, p); err != nil {
		return product.ProductResponse{}, fmt.Errorf("failed to update product: %w", err)
	}

	return product.ToResponse(p), nil
}

func (s *productService) Delete(ctx context.Context, id string) error {
	if _, err := s.productRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.productRepo.Delete(ctx, id)
}

func (s *productService) Restock(ctx context.Context, req product.RestockRequest) (product.ProductResponse, error) {
	if err := req.Validate(); err != nil {
		return product.ProductResponse{}, err
	}

	identity, err := auth.IdentityFromContext(ctx)
	if err != nil {
		return product.ProductResponse{}, err
	}

	actor, err := s.userRepo.GetByID(ctx, identity.UserID)
	if err != nil {
		return product.ProductResponse{}, fmt.Errorf("failed to get acting user: %w", err)
	}

	before, err := s.productRepo.GetByID(ctx, req.ProductID)
	if err != nil {
		return product.ProductResponse{}, err
	}

	updated, err := s.productRepo.AdjustStock(ctx, req.ProductID, req.Quantity)
	if err != nil {
		return product.ProductResponse{}, fmt.Errorf("failed to adjust stock: %w", err)
	}

	record := product.RestockRecord{
		ID:            uuid.New().String(),
		ProductID:     updated.ID,
		ProductName:   updated.Name,
		ProductEmoji:  updated.Emoji,
		QuantityAdded: req.Quantity,
		StockBefore:   before.Stock,
		StockAfter:    updated.Stock,
		UserID:        actor.ID,
		UserName:      actor.Name,
		RestockDate:   time.Now(),
	}
	if _, err := s.productRepo.CreateRestockRecord(ctx, record); err != nil {
		return product.ProductResponse{}, fmt.Errorf("failed to record restock: %w", err)
	}

	return product.ToResponse(updated), nil
}

func (s *productService) ListRestockRecords(ctx context.Context) ([]product.RestockRecordResponse, error) {
	records, err := s.productRepo.ListRestockRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list restock records: %w", err)
	}

	responses := make([]product.RestockRecordResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, product.ToRestockResponse(r))
	}
	return responses, nil
}
