package postgresql

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/sweetlane/pos-backend-go/internal/domain/expense"
	"github.com/sweetlane/pos-backend-go/internal/pkg/database"
)

type expenseRepositoryImpl struct {
	db *database.DB
}

func NewExpenseRepository(db *database.DB) expense.ExpenseRepository {
	return &expenseRepositoryImpl{db: db}
}

const expenseColumns = `id, user_id, user_name, category, amount, date, notes, created_at`

func scanExpense(row pgx.Row) (expense.Expense, error) {
	var e expense.Expense
	err := row.Scan(
		&e.ID,
		&e.UserID,
		&e.UserName,
		&e.Category,
		&e.Amount,
		&e.Date,
		&e.Notes,
		&e.CreatedAt,
	)
	return e, err
}

// Create implements expense.ExpenseRepository.
func (r *expenseRepositoryImpl) Create(ctx context.Context, e expense.Expense) (expense.Expense, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO expenses (id, user_id, user_name, category, amount, date, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + expenseColumns

	created, err := scanExpense(q.QueryRow(ctx, query,
		e.ID,
		e.UserID,
		e.UserName,
		e.Category,
		e.Amount,
		e.Date,
		e.Notes,
	))
	if err != nil {
		return expense.Expense{}, err
	}

	return created, nil
}

// ListByUser implements expense.ExpenseRepository.
func (r *expenseRepositoryImpl) ListByUser(ctx context.Context, userID string, start, end time.Time) ([]expense.Expense, error) {
	return r.list(ctx, &userID, start, end)
}

// ListByPeriod implements expense.ExpenseRepository.
func (r *expenseRepositoryImpl) ListByPeriod(ctx context.Context, start, end time.Time) ([]expense.Expense, error) {
	return r.list(ctx, nil, start, end)
}

func (r *expenseRepositoryImpl) list(ctx context.Context, userID *string, start, end time.Time) ([]expense.Expense, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + expenseColumns + `
		FROM expenses
		WHERE date BETWEEN $1 AND $2
		  AND ($3::text IS NULL OR user_id = $3)
		ORDER BY date DESC
	`

	rows, err := q.Query(ctx, query, start, end, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expenses []expense.Expense
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}

	return expenses, rows.Err()
}

// Delete implements expense.ExpenseRepository.
func (r *expenseRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return expense.ErrExpenseNotFound
	}

	return nil
}
