package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"basera/infras/otel"
	"basera/infras/postgres"
	"basera/internal/domains/transaction/model"
	"basera/shared/constant"
	gDto "basera/shared/dto"
	"basera/shared/logger"
	gRepo "basera/shared/repository"
)

type Transaction interface {
	Insert(ctx context.Context, model model.Transaction) error
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Transaction) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Transaction, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Transaction, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	SumBalance(ctx context.Context, userID string, categories ...string) (decimal.Decimal, error)
	SumByCategory(ctx context.Context, propertyID, category string) (decimal.Decimal, error)
	SumDebitsForPeriod(ctx context.Context, bookingID, category string, from, to time.Time) (decimal.Decimal, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Transaction]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Transaction {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Transaction](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// SumBalance nets a user's ledger entries: credits add, debits subtract. The
// key is the tenant, not the booking, so a wallet survives re-bookings. An
// optional category list narrows the entries considered.
func (repo *repositoryImpl) SumBalance(ctx context.Context, userID string, categories ...string) (decimal.Decimal, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".transaction.SumBalance")
	defer scope.End()

	query := `SELECT COALESCE(SUM(CASE WHEN is_credit THEN amount ELSE -amount END), 0)
		FROM transactions WHERE user_id = ?`
	args := []any{userID}

	if len(categories) > 0 {
		inQuery, inArgs, err := sqlx.In(" AND category IN (?)", categories)
		if err != nil {
			return decimal.Zero, fmt.Errorf("failed to build category filter: %w", err)
		}

		query += inQuery
		args = append(args, inArgs...)
	}

	query = repo.db.Read.Rebind(query)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var balance decimal.Decimal

	err := repo.db.Read.GetContext(ctx, &balance, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return decimal.Zero, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return decimal.Zero, fmt.Errorf("failed to sum ledger balance: %w", err)
	}

	return balance, nil
}

// SumByCategory totals a property's entries for one category, netted by the
// credit flag.
func (repo *repositoryImpl) SumByCategory(ctx context.Context, propertyID, category string) (decimal.Decimal, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".transaction.SumByCategory")
	defer scope.End()

	query := `SELECT COALESCE(SUM(CASE WHEN is_credit THEN amount ELSE -amount END), 0)
		FROM transactions WHERE property_id = $1 AND category = $2`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var total decimal.Decimal

	err := repo.db.Read.GetContext(ctx, &total, query, propertyID, category)
	if errors.Is(err, sql.ErrNoRows) {
		return decimal.Zero, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return decimal.Zero, fmt.Errorf("failed to sum category total: %w", err)
	}

	return total, nil
}

// SumDebitsForPeriod totals a booking's charges in one category over a date
// range, debit-positive so credits reduce the result.
func (repo *repositoryImpl) SumDebitsForPeriod(ctx context.Context, bookingID, category string, from, to time.Time) (decimal.Decimal, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".transaction.SumDebitsForPeriod")
	defer scope.End()

	query := `SELECT COALESCE(SUM(CASE WHEN is_credit THEN -amount ELSE amount END), 0)
		FROM transactions
		WHERE booking_id = $1 AND category = $2 AND created_at >= $3 AND created_at < $4`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var total decimal.Decimal

	err := repo.db.Read.GetContext(ctx, &total, query, bookingID, category, from, to)
	if errors.Is(err, sql.ErrNoRows) {
		return decimal.Zero, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return decimal.Zero, fmt.Errorf("failed to sum period debits: %w", err)
	}

	return total, nil
}
