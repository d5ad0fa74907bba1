package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"basera/config"
	"basera/infras/otel"
	"basera/internal/domains/pricing/model"
	"basera/internal/domains/pricing/model/dto"
	"basera/internal/domains/pricing/repository"
	"basera/shared"
	"basera/shared/cache"
	"basera/shared/constant"
	gDto "basera/shared/dto"
	"basera/shared/failure"
	"basera/shared/timezone"
)

const (
	cacheGetRule     = "pricing:get"
	cacheGetAllRule  = "pricing:gets"
	cacheCountRule   = "pricing:count"
	cacheActiveRules = "pricing:active"
)

type Pricing interface {
	Create(ctx context.Context, req dto.CreatePricingRuleRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetPricingRulesResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.PricingRuleResponse, error)
	Update(ctx context.Context, req dto.UpdatePricingRuleRequest, id string) error
	Deactivate(ctx context.Context, id string) error
	ResolveRent(ctx context.Context, propertyID string, baseRent decimal.Decimal, date time.Time) (decimal.Decimal, *model.PricingRule, error)
	Resolve(ctx context.Context, propertyID, baseRent, date string) (dto.ResolveRentResponse, error)
}

type serviceImpl struct {
	repo  repository.PricingRule
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.PricingRule, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Pricing {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreatePricingRuleRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	rule, err := req.ToModel(user)
	if err != nil {
		log.Error().Err(err).Msg("invalid price multiplier")

		return failure.BadRequestFromString("price_multiplier must be a valid decimal")
	}

	if rule.PriceMultiplier.Sign() <= 0 {
		return failure.Configuration("price_multiplier must be positive")
	}

	if err = s.repo.Insert(ctx, rule); err != nil {
		return err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllRule)
		shared.InvalidateCaches(c, s.cache, cacheCountRule)
		shared.InvalidateCaches(c, s.cache, cacheActiveRules)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetPricingRulesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllRule, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for pricing rules")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count pricing rules")

		return res, fmt.Errorf("failed to count pricing rules: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get pricing rules")

		return res, fmt.Errorf("failed to get pricing rules: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save pricing rules to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountRule, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count pricing rules")

		return res, fmt.Errorf("failed to count pricing rules: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save pricing rule count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.PricingRuleResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetRule, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	rule, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get pricing rule")

		return res, fmt.Errorf("failed to get pricing rule: %w", err)
	}

	if rule.ID == constant.Empty {
		return res, failure.NotFound("pricing rule not found") // nolint:wrapcheck
	}

	res.FromModel(rule)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save pricing rule to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdatePricingRuleRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check pricing rule existence")

		return err
	}

	if !exist {
		return failure.NotFound("pricing rule not found")
	}

	if req.PriceMultiplier != "" {
		multiplier, err := decimal.NewFromString(req.PriceMultiplier)
		if err != nil {
			return failure.BadRequestFromString("price_multiplier must be a valid decimal")
		}

		if multiplier.Sign() <= 0 {
			return failure.Configuration("price_multiplier must be positive")
		}
	}

	if err = s.repo.Update(ctx, shared.TransformFields(req, user), filter); err != nil {
		return err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, shared.BuildCacheKey(cacheGetRule, id))
		shared.InvalidateCaches(c, s.cache, cacheGetAllRule)
		shared.InvalidateCaches(c, s.cache, cacheActiveRules)
	}()

	return nil
}

func (s *serviceImpl) Deactivate(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Deactivate")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check pricing rule existence")

		return err
	}

	if !exist {
		return failure.NotFound("pricing rule not found")
	}

	fields := map[string]any{
		model.FieldActive:        false,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.Update(ctx, fields, filter); err != nil {
		return err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, shared.BuildCacheKey(cacheGetRule, id))
		shared.InvalidateCaches(c, s.cache, cacheGetAllRule)
		shared.InvalidateCaches(c, s.cache, cacheActiveRules)
	}()

	return nil
}

// ResolveRent computes the effective monthly rent for a property's base rent
// on the month containing date.
func (s *serviceImpl) ResolveRent(ctx context.Context, propertyID string, baseRent decimal.Decimal, date time.Time) (res decimal.Decimal, rule *model.PricingRule, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ResolveRent")
	defer scope.End()
	defer scope.TraceIfError(err)

	if baseRent.Sign() <= 0 {
		return decimal.Zero, nil, failure.Configuration("base rent must be positive")
	}

	rules, err := s.activeRules(ctx, propertyID)
	if err != nil {
		return decimal.Zero, nil, err
	}

	for _, r := range rules {
		if r.PriceMultiplier.Sign() <= 0 {
			return decimal.Zero, nil, failure.Configuration("pricing rule " + r.ID + " has a non-positive multiplier")
		}
	}

	effective, rule := EffectiveRent(baseRent, rules, date.Month())

	return effective, rule, nil
}

func (s *serviceImpl) Resolve(ctx context.Context, propertyID, baseRent, date string) (res dto.ResolveRentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Resolve")
	defer scope.End()
	defer scope.TraceIfError(err)

	rent, err := decimal.NewFromString(baseRent)
	if err != nil {
		return res, failure.BadRequestFromString("base_rent must be a valid amount")
	}

	on, err := time.Parse(constant.DateOnlyLayout, date)
	if err != nil {
		return res, failure.BadRequestFromString("date must use format " + constant.DateOnlyLayout)
	}

	effective, rule, err := s.ResolveRent(ctx, propertyID, rent, on)
	if err != nil {
		return res, err
	}

	res.BaseRent = rent.StringFixed(2)
	res.EffectiveRent = effective.StringFixed(2)
	res.Multiplier = multiplierOne.String()

	if rule != nil {
		res.Multiplier = rule.PriceMultiplier.String()
		res.RuleID = rule.ID
		res.RuleName = rule.Name
	}

	return res, nil
}

func (s *serviceImpl) activeRules(ctx context.Context, propertyID string) (rules []model.PricingRule, err error) {
	cacheKey := shared.BuildCacheKey(cacheActiveRules, propertyID)

	err = s.cache.Get(ctx, cacheKey, &rules)
	if err == nil {
		return rules, nil
	}

	rules, err = s.repo.GetActiveForProperty(ctx, propertyID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get active pricing rules")

		return nil, fmt.Errorf("failed to get active pricing rules: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, rules, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save active pricing rules to cache")
		}
	}()

	return rules, nil
}
