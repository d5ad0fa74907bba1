package repository

//go:generate go run go.uber.org/mock/mockgen -source=./reading.go -destination=../mocks/reading_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"basera/infras/otel"
	"basera/infras/postgres"
	"basera/internal/domains/bed/model"
	"basera/shared/constant"
	gDto "basera/shared/dto"
	"basera/shared/logger"
	gRepo "basera/shared/repository"
)

type ElectricityReading interface {
	Insert(ctx context.Context, model model.ElectricityReading) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.ElectricityReading, error)
	SumUnits(ctx context.Context, bedID string, from, to time.Time) (decimal.Decimal, error)
}

type readingRepositoryImpl struct {
	gRepo.Repository[model.ElectricityReading]
	db   *postgres.Connection
	otel otel.Otel
}

func NewElectricityReading(db *postgres.Connection, otel otel.Otel) ElectricityReading {
	return &readingRepositoryImpl{
		Repository: gRepo.NewRepository[model.ElectricityReading](model.ReadingEntityName, model.ReadingTableName, model.ReadingFieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// SumUnits totals the recorded consumption for a bed between from and to,
// inclusive on both ends.
func (repo *readingRepositoryImpl) SumUnits(ctx context.Context, bedID string, from, to time.Time) (decimal.Decimal, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".electricity_reading.SumUnits")
	defer scope.End()

	query := `SELECT COALESCE(SUM(units), 0) FROM electricity_readings
		WHERE bed_id = $1 AND reading_date >= $2 AND reading_date <= $3`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var total decimal.Decimal

	err := repo.db.Read.GetContext(ctx, &total, query, bedID, from, to)
	if errors.Is(err, sql.ErrNoRows) {
		return decimal.Zero, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return decimal.Zero, fmt.Errorf("failed to sum electricity units: %w", err)
	}

	return total, nil
}
