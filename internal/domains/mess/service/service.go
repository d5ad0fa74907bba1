package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"basera/config"
	"basera/infras/otel"
	"basera/infras/postgres"
	bookingModel "basera/internal/domains/booking/model"
	bookingRepo "basera/internal/domains/booking/repository"
	"basera/internal/domains/mess/model"
	"basera/internal/domains/mess/model/dto"
	"basera/internal/domains/mess/repository"
	txnModel "basera/internal/domains/transaction/model"
	txnRepo "basera/internal/domains/transaction/repository"
	"basera/shared"
	"basera/shared/cache"
	"basera/shared/constant"
	gDto "basera/shared/dto"
	"basera/shared/failure"
	gModel "basera/shared/model"
	"basera/shared/money"
	"basera/shared/timezone"
)

const (
	cacheGetAllMenu = "mess:menu:gets"
	cacheCountMenu  = "mess:menu:count"
)

type Mess interface {
	CreateMenu(ctx context.Context, req dto.CreateMenuRequest) error
	GetMenus(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetMenusResponse, error)
	SetSelection(ctx context.Context, req dto.SetSelectionRequest) error
	GetSelection(ctx context.Context, bookingID, menuID string) (dto.SelectionResponse, error)
	BillDay(ctx context.Context, propertyID string, date time.Time) (dto.BillDayResponse, error)
	BillDue(ctx context.Context, propertyID string) (dto.BillDayResponse, error)
}

type serviceImpl struct {
	menus        repository.MessMenu
	selections   repository.MealSelection
	bookings     bookingRepo.Booking
	transactions txnRepo.Transaction
	db           *postgres.Connection
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(
	menus repository.MessMenu,
	selections repository.MealSelection,
	bookings bookingRepo.Booking,
	transactions txnRepo.Transaction,
	db *postgres.Connection,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Mess {
	return &serviceImpl{
		menus:        menus,
		selections:   selections,
		bookings:     bookings,
		transactions: transactions,
		db:           db,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

func (s *serviceImpl) CreateMenu(ctx context.Context, req dto.CreateMenuRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateMenu")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	menu, err := req.ToModel(user)
	if err != nil {
		log.Error().Err(err).Msg("invalid menu payload")

		return failure.BadRequestFromString("menu prices must be valid amounts and menu_date a valid date")
	}

	if menu.BreakfastPrice.Sign() < 0 || menu.LunchPrice.Sign() < 0 || menu.DinnerPrice.Sign() < 0 {
		return failure.Configuration("menu prices must not be negative")
	}

	exist, err := s.menus.Exist(ctx, menuDateFilter(menu.PropertyID, menu.MenuDate))
	if err != nil {
		log.Error().Err(err).Msg("failed to check menu existence")

		return err
	}

	if exist {
		return failure.Conflict("menu already exists for this property and date")
	}

	if err = s.menus.Insert(ctx, menu); err != nil {
		return err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllMenu)
		shared.InvalidateCaches(c, s.cache, cacheCountMenu)
	}()

	return nil
}

func (s *serviceImpl) GetMenus(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetMenusResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetMenus")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllMenu, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for mess menus")

		return res, nil
	}

	total, err := s.menus.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count mess menus")

		return res, fmt.Errorf("failed to count mess menus: %w", err)
	}

	models, err := s.menus.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get mess menus")

		return res, fmt.Errorf("failed to get mess menus: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save mess menus to cache")
		}
	}()

	return res, nil
}

// SetSelection records or revises a tenant's meal choices for a menu. One
// selection exists per tenant per menu day; selections are frozen once
// billed.
func (s *serviceImpl) SetSelection(ctx context.Context, req dto.SetSelectionRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SetSelection")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	menuExist, err := s.menus.Exist(ctx, shared.FilterByID(req.MenuID, model.MenuFieldID, model.MenuTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check menu existence")

		return err
	}

	if !menuExist {
		return failure.NotFound("mess menu not found")
	}

	booking, err := s.bookings.Get(ctx, shared.FilterByID(req.BookingID, bookingModel.FieldID, bookingModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking for meal selection")

		return err
	}

	if booking.ID == constant.Empty {
		return failure.NotFound("booking not found")
	}

	filter := tenantSelectionFilter(booking.TenantID, req.MenuID)

	current, err := s.selections.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get meal selection")

		return err
	}

	if current.ID == constant.Empty {
		return s.selections.Insert(ctx, req.ToModel(user, booking.TenantID))
	}

	if current.IsBilled {
		return failure.Conflict("meal selection is already billed")
	}

	incoming := req.ToModel(user, booking.TenantID)
	fields := map[string]any{
		model.SelectionFieldBreakfast: incoming.Breakfast,
		model.SelectionFieldLunch:     incoming.Lunch,
		model.SelectionFieldDinner:    incoming.Dinner,
		constant.FieldModifiedAt:      timezone.Now(),
		constant.FieldModifiedBy:      user,
	}

	return s.selections.Update(ctx, fields, filter)
}

func (s *serviceImpl) GetSelection(ctx context.Context, bookingID, menuID string) (res dto.SelectionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetSelection")
	defer scope.End()
	defer scope.TraceIfError(err)

	selection, err := s.selections.Get(ctx, selectionFilter(bookingID, menuID))
	if err != nil {
		log.Error().Err(err).Msg("failed to get meal selection")

		return res, fmt.Errorf("failed to get meal selection: %w", err)
	}

	if selection.ID == constant.Empty {
		return res, failure.NotFound("meal selection not found") // nolint:wrapcheck
	}

	res.FromModel(selection)

	return res, nil
}

// BillDay debits every unbilled selection on the property's menu for the
// given date against the tenant's meal wallet. Re-running the same day bills
// nothing new; wallets may go negative.
func (s *serviceImpl) BillDay(ctx context.Context, propertyID string, date time.Time) (res dto.BillDayResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".BillDay")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.bill(ctx, propertyID, date, date)
}

// BillDue sweeps every unbilled selection with a menu date up to today.
func (s *serviceImpl) BillDue(ctx context.Context, propertyID string) (res dto.BillDayResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".BillDue")
	defer scope.End()
	defer scope.TraceIfError(err)

	var epoch time.Time

	return s.bill(ctx, propertyID, epoch, timezone.Now())
}

func (s *serviceImpl) bill(ctx context.Context, propertyID string, from, to time.Time) (res dto.BillDayResponse, err error) {
	billable, err := s.selections.GetBillable(ctx, propertyID, from, to)
	if err != nil {
		log.Error().Err(err).Msg("failed to get billable selections")

		return res, fmt.Errorf("failed to get billable selections: %w", err)
	}

	res.PropertyID = propertyID
	res.Date = to.Format(constant.DateOnlyLayout)

	total := decimal.Zero

	for _, sel := range billable {
		billed, amount, billErr := s.billSelection(ctx, propertyID, sel)
		if billErr != nil {
			log.Error().Err(billErr).Str("selection", sel.ID).Msg("failed to bill meal selection")

			return res, billErr
		}

		if billed {
			res.BilledCount++
			total = total.Add(amount)
		} else {
			res.SkippedCount++
		}
	}

	res.TotalAmount = total.StringFixed(2)

	return res, nil
}

// billSelection flips one selection to billed and posts one wallet debit per
// eaten slot, all in a single transaction. The guarded update makes the flip
// race-safe: a concurrent run that already billed the row leaves nothing to
// do here.
func (s *serviceImpl) billSelection(ctx context.Context, propertyID string, sel model.BillableSelection) (billed bool, amount decimal.Decimal, err error) {
	slots := sel.EatingSlots(sel.Menu(), constant.MealStatusEating)

	err = s.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		filter := gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorAnd,
			Filters: []any{
				gDto.Filter{
					Field:    model.SelectionFieldID,
					Value:    sel.ID,
					Operator: gDto.FilterOperatorEq,
					Table:    model.SelectionTableName,
				},
				gDto.Filter{
					Field:    model.SelectionFieldIsBilled,
					Value:    false,
					Operator: gDto.FilterOperatorEq,
					Table:    model.SelectionTableName,
				},
			},
		}

		fields := map[string]any{
			model.SelectionFieldIsBilled: true,
			constant.FieldModifiedAt:     timezone.Now(),
			constant.FieldModifiedBy:     constant.LedgerActorSystem,
		}

		affected, err := s.selections.UpdateTxGuarded(ctx, tx, fields, filter)
		if err != nil {
			return err
		}

		if affected == 0 {
			return nil
		}

		billed = true
		bookingID := sel.BookingID

		for _, slot := range slots {
			price := money.Round(slot.Price)
			if price.Sign() <= 0 {
				continue
			}

			amount = amount.Add(price)

			insertErr := s.transactions.InsertTx(ctx, tx, txnModel.Transaction{
				ID:          uuid.NewString(),
				UserID:      sel.TenantID,
				PropertyID:  propertyID,
				BookingID:   &bookingID,
				Category:    constant.TxnCategoryMessDebit,
				Amount:      price,
				IsCredit:    false,
				Description: "mess " + slot.Slot + " for " + sel.MenuDate.Format(constant.DateOnlyLayout),
				Metadata: gModel.Metadata{
					CreatedAt:  timezone.Now(),
					ModifiedAt: timezone.Now(),
					CreatedBy:  constant.LedgerActorSystem,
					ModifiedBy: constant.LedgerActorSystem,
				},
			})
			if insertErr != nil {
				return insertErr
			}
		}

		return nil
	})
	if err != nil {
		return false, decimal.Zero, err
	}

	return billed, amount, nil
}

func menuDateFilter(propertyID string, menuDate time.Time) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.MenuFieldPropertyID,
				Value:    propertyID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.MenuTableName,
			},
			gDto.Filter{
				Field:    model.MenuFieldMenuDate,
				Value:    menuDate,
				Operator: gDto.FilterOperatorEq,
				Table:    model.MenuTableName,
			},
		},
	}
}

func tenantSelectionFilter(tenantID, menuID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.SelectionFieldTenantID,
				Value:    tenantID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.SelectionTableName,
			},
			gDto.Filter{
				Field:    model.SelectionFieldMenuID,
				Value:    menuID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.SelectionTableName,
			},
		},
	}
}

func selectionFilter(bookingID, menuID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.SelectionFieldBookingID,
				Value:    bookingID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.SelectionTableName,
			},
			gDto.Filter{
				Field:    model.SelectionFieldMenuID,
				Value:    menuID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.SelectionTableName,
			},
		},
	}
}
