package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"basera/infras/otel"
	"basera/infras/postgres"
	"basera/internal/domains/pricing/model"
	"basera/shared/constant"
	gDto "basera/shared/dto"
	gRepo "basera/shared/repository"
)

type PricingRule interface {
	Insert(ctx context.Context, model model.PricingRule) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.PricingRule, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.PricingRule, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	GetActiveForProperty(ctx context.Context, propertyID string) ([]model.PricingRule, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.PricingRule]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) PricingRule {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.PricingRule](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// GetActiveForProperty returns active rules scoped to the property plus
// platform-wide rules with no property.
func (repo *repositoryImpl) GetActiveForProperty(ctx context.Context, propertyID string) ([]model.PricingRule, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldActive,
				Value:    true,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.FilterGroup{
				Operator: gDto.FilterGroupOperatorOr,
				Filters: []any{
					gDto.Filter{
						Field:    model.FieldPropertyID,
						Value:    propertyID,
						Operator: gDto.FilterOperatorEq,
						Table:    model.TableName,
					},
					gDto.Filter{
						Field:    model.FieldPropertyID,
						Operator: gDto.FilterIsNull,
						Table:    model.TableName,
					},
				},
			},
		},
	}

	params := gDto.QueryParams{
		SortBy:  constant.FieldCreatedAt,
		SortDir: gDto.SortDirDesc,
	}

	return repo.GetAll(ctx, params, filter)
}
