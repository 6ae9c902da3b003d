package expense

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sweetlane/pos-backend-go/internal/domain/expense"
	"github.com/sweetlane/pos-backend-go/internal/domain/user"
)

type expenseService struct {
	expenseRepo expense.ExpenseRepository
	userRepo    user.UserRepository
}

// NewExpenseService creates a new expense service.
func NewExpenseService(expenseRepo expense.ExpenseRepository, userRepo user.UserRepository) expense.ExpenseService {
	return &expenseService{
		expenseRepo: expenseRepo,
		userRepo:    userRepo,
	}
}

func (s *expenseService) Create(ctx context.Context, req expense.CreateExpenseRequest) (expense.ExpenseResponse, error) {
	if err := req.Validate(); err != nil {
		return expense.ExpenseResponse{}, err
	}

	date, err := req.ParsedDate()
	if err != nil {
		return expense.ExpenseResponse{}, err
	}

	u, err := s.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		return expense.ExpenseResponse{}, fmt.Errorf("failed to get user: %w", err)
	}

	e := expense.Expense{
		ID:        uuid.New().String(),
		UserID:    u.ID,
		UserName:  u.Name,
		Category:  req.Category,
		Amount:    req.Amount,
		Date:      date,
		Notes:     req.Notes,
		CreatedAt: time.Now(),
	}

	created, err := s.expenseRepo.Create(ctx, e)
	if err != nil {
		return expense.ExpenseResponse{}, fmt.Errorf("failed to create expense: %w", err)
	}

	return expense.ToResponse(created), nil
}

func (s *expenseService) ListByUser(ctx context.Context, userID string, start, end time.Time) ([]expense.ExpenseResponse, error) {
	expenses, err := s.expenseRepo.ListByUser(ctx, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	return toResponses(expenses), nil
}

func (s *expenseService) ListByPeriod(ctx context.Context, start, end time.Time) ([]expense.ExpenseResponse, error) {
	expenses, err := s.expenseRepo.ListByPeriod(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	return toResponses(expenses), nil
}

func (s *expenseService) Delete(ctx context.Context, id string) error {
	return s.expenseRepo.Delete(ctx, id)
}

func toResponses(expenses []expense.Expense) []expense.ExpenseResponse {
	responses := make([]expense.ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		responses = append(responses, expense.ToResponse(e))
	}
	return responses
}
