package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"basera/config"
	"basera/infras/otel"
	"basera/internal/domains/bed/model"
	"basera/internal/domains/bed/model/dto"
	"basera/internal/domains/bed/repository"
	"basera/shared"
	"basera/shared/cache"
	"basera/shared/constant"
	gDto "basera/shared/dto"
	"basera/shared/failure"
)

const (
	cacheGetBed    = "bed:get"
	cacheGetAllBed = "bed:gets"
	cacheCountBed  = "bed:count"
)

type Bed interface {
	Create(ctx context.Context, req dto.CreateBedRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBedsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BedResponse, error)
	Update(ctx context.Context, req dto.UpdateBedRequest, id string) error
	Delete(ctx context.Context, id string) error
	RecordReading(ctx context.Context, bedID string, req dto.RecordReadingRequest) error
}

type serviceImpl struct {
	repo     repository.Bed
	readings repository.ElectricityReading
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
}

func New(repo repository.Bed, readings repository.ElectricityReading, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Bed {
	return &serviceImpl{
		repo:     repo,
		readings: readings,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBedRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		return err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBed)
		shared.InvalidateCaches(c, s.cache, cacheCountBed)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBedsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBed, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for beds")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count beds")

		return res, fmt.Errorf("failed to count beds: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get beds")

		return res, fmt.Errorf("failed to get beds: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save beds to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBed, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bed count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count beds")

		return res, fmt.Errorf("failed to count beds: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bed count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BedResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBed, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bed")

		return res, nil
	}

	bed, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get bed")

		return res, fmt.Errorf("failed to get bed: %w", err)
	}

	if bed.ID == constant.Empty {
		return res, failure.NotFound("bed not found") // nolint:wrapcheck
	}

	res.FromModel(bed)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bed to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBedRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check bed existence")

		return err
	}

	if !exist {
		log.Error().Msg("bed not found")

		return failure.NotFound("bed not found")
	}

	if err = s.repo.Update(ctx, shared.TransformFields(req, user), filter); err != nil {
		return err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, shared.BuildCacheKey(cacheGetBed, id))
		shared.InvalidateCaches(c, s.cache, cacheGetAllBed)
	}()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	bed, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bed")

		return err
	}

	if bed.ID == constant.Empty {
		return failure.NotFound("bed not found")
	}

	if bed.IsOccupied {
		return failure.Conflict("bed is occupied")
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		return err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, shared.BuildCacheKey(cacheGetBed, id))
		shared.InvalidateCaches(c, s.cache, cacheGetAllBed)
		shared.InvalidateCaches(c, s.cache, cacheCountBed)
	}()

	return nil
}

func (s *serviceImpl) RecordReading(ctx context.Context, bedID string, req dto.RecordReadingRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RecordReading")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(bedID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check bed existence")

		return err
	}

	if !exist {
		return failure.NotFound("bed not found")
	}

	reading, err := req.ToModel(bedID, user)
	if err != nil {
		log.Error().Err(err).Msg("invalid electricity reading payload")

		return failure.BadRequestFromString("units must be a valid amount and reading_date a valid date")
	}

	return s.readings.Insert(ctx, reading)
}
