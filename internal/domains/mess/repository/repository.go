package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"basera/infras/otel"
	"basera/infras/postgres"
	"basera/internal/domains/mess/model"
	"basera/shared/constant"
	gDto "basera/shared/dto"
	"basera/shared/logger"
	gRepo "basera/shared/repository"
)

type MessMenu interface {
	Insert(ctx context.Context, model model.MessMenu) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.MessMenu, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.MessMenu, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type menuRepositoryImpl struct {
	gRepo.Repository[model.MessMenu]
	db   *postgres.Connection
	otel otel.Otel
}

func NewMessMenu(db *postgres.Connection, otel otel.Otel) MessMenu {
	return &menuRepositoryImpl{
		Repository: gRepo.NewRepository[model.MessMenu](model.MenuEntityName, model.MenuTableName, model.MenuFieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

type MealSelection interface {
	Insert(ctx context.Context, model model.DailyMealSelection) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.DailyMealSelection, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.DailyMealSelection, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateTxGuarded(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) (int64, error)
	GetBillable(ctx context.Context, propertyID string, from, to time.Time) ([]model.BillableSelection, error)
}

type selectionRepositoryImpl struct {
	gRepo.Repository[model.DailyMealSelection]
	db   *postgres.Connection
	otel otel.Otel
}

func NewMealSelection(db *postgres.Connection, otel otel.Otel) MealSelection {
	return &selectionRepositoryImpl{
		Repository: gRepo.NewRepository[model.DailyMealSelection](model.SelectionEntityName, model.SelectionTableName, model.SelectionFieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// GetBillable lists unbilled selections joined with their menus for a
// property, for menu dates between from and to inclusive.
func (repo *selectionRepositoryImpl) GetBillable(ctx context.Context, propertyID string, from, to time.Time) ([]model.BillableSelection, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".daily_meal_selection.GetBillable")
	defer scope.End()

	query := `SELECT s.id, s.tenant_id, s.booking_id, s.menu_id, s.breakfast, s.lunch, s.dinner, s.is_billed,
			s.created_by, s.modified_by,
			m.property_id, m.menu_date, m.breakfast_price, m.lunch_price, m.dinner_price
		FROM daily_meal_selections s
		JOIN mess_menus m ON m.id = s.menu_id
		WHERE s.is_billed = FALSE AND m.property_id = $1 AND m.menu_date >= $2 AND m.menu_date <= $3
		ORDER BY m.menu_date, s.id`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var selections []model.BillableSelection

	err := repo.db.Read.SelectContext(ctx, &selections, query, propertyID, from, to)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get billable selections: %w", err)
	}

	return selections, nil
}
