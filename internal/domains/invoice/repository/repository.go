package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"basera/infras/otel"
	"basera/infras/postgres"
	"basera/internal/domains/invoice/model"
	"basera/shared/constant"
	gDto "basera/shared/dto"
	"basera/shared/failure"
	gRepo "basera/shared/repository"
)

type Invoice interface {
	Insert(ctx context.Context, model model.Invoice) error
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Invoice) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Invoice, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Invoice, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	UpdateTxGuarded(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) (int64, error)
	GetUnpaid(ctx context.Context, bookingID string) ([]model.Invoice, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Invoice]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Invoice {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Invoice](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// Insert stores an invoice. The unique constraint on booking and period start
// is the idempotency guard: a second insert for the same period surfaces as a
// duplicate invoice failure, regardless of which process raced first.
func (repo *repositoryImpl) Insert(ctx context.Context, inv model.Invoice) error {
	return mapDuplicate(inv, repo.Repository.Insert(ctx, inv))
}

// InsertTx stores an invoice inside an open transaction, with the same
// duplicate mapping as Insert.
func (repo *repositoryImpl) InsertTx(ctx context.Context, sqltx *sqlx.Tx, inv model.Invoice) error {
	return mapDuplicate(inv, repo.Repository.InsertTx(ctx, sqltx, inv))
}

func mapDuplicate(inv model.Invoice, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeUniqueViolation {
		return failure.DuplicateInvoiceForPeriod(inv.BookingID, inv.PeriodStart.Format(constant.DateOnlyLayout))
	}

	return err
}

// GetUnpaid lists a booking's unpaid invoices, oldest period first.
func (repo *repositoryImpl) GetUnpaid(ctx context.Context, bookingID string) ([]model.Invoice, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldBookingID,
				Value:    bookingID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldIsPaid,
				Value:    false,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}

	params := gDto.QueryParams{
		SortBy:  model.FieldPeriodStart,
		SortDir: gDto.SortDirAsc,
	}

	return repo.GetAll(ctx, params, filter)
}
