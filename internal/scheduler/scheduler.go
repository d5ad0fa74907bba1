package scheduler

import (
	"context"
	"fmt"
	"time"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"basera/config"
	"basera/infras/otel"
	invoiceService "basera/internal/domains/invoice/service"
	messService "basera/internal/domains/mess/service"
	propertyModel "basera/internal/domains/property/model"
	propertyRepo "basera/internal/domains/property/repository"
	"basera/shared/constant"
	gDto "basera/shared/dto"
	"basera/shared/timezone"
)

const jobLockTTL = 30 * time.Minute

// Scheduler drives the recurring billing runs: the nightly mess sweep and
// the monthly invoice generation. A redis lock keeps multi-instance deploys
// from running the same job twice.
type Scheduler struct {
	cron       *cron.Cron
	cfg        *config.Config
	properties propertyRepo.Property
	mess       messService.Mess
	invoices   invoiceService.Invoice
	redis      *goRedis.Client
	otel       otel.Otel
}

func New(
	cfg *config.Config,
	properties propertyRepo.Property,
	mess messService.Mess,
	invoices invoiceService.Invoice,
	redis *goRedis.Client,
	ot otel.Otel,
) *Scheduler {
	return &Scheduler{
		cron:       cron.New(),
		cfg:        cfg,
		properties: properties,
		mess:       mess,
		invoices:   invoices,
		redis:      redis,
		otel:       ot,
	}
}

func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.cfg.Billing.MessBillingCron, s.runMessBilling); err != nil {
		return fmt.Errorf("failed to register mess billing job: %w", err)
	}

	if _, err := s.cron.AddFunc(s.cfg.Billing.InvoiceCron, s.runInvoiceGeneration); err != nil {
		return fmt.Errorf("failed to register invoice generation job: %w", err)
	}

	s.cron.Start()
	log.Info().Msg("billing scheduler started")

	return nil
}

func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()

	log.Info().Msg("billing scheduler stopped")
}

func (s *Scheduler) runMessBilling() {
	ctx, scope := s.otel.NewScope(context.Background(), constant.OtelSchedulerScopeName, constant.OtelSchedulerScopeName+".runMessBilling")
	defer scope.End()

	day := timezone.Now().Format(constant.DateOnlyLayout)
	if !s.acquireLock(ctx, "mess-billing:"+day) {
		return
	}

	s.forEachProperty(ctx, func(propertyID string) {
		res, err := s.mess.BillDue(ctx, propertyID)
		if err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Str("property", propertyID).Msg("mess billing run failed")

			return
		}

		log.Info().
			Str("property", propertyID).
			Int("billed", res.BilledCount).
			Str("total", res.TotalAmount).
			Msg("mess billing run completed")
	})
}

func (s *Scheduler) runInvoiceGeneration() {
	ctx, scope := s.otel.NewScope(context.Background(), constant.OtelSchedulerScopeName, constant.OtelSchedulerScopeName+".runInvoiceGeneration")
	defer scope.End()

	now := timezone.Now()
	periodStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	if !s.acquireLock(ctx, "invoice-generation:"+periodStart.Format(constant.DateOnlyLayout)) {
		return
	}

	s.forEachProperty(ctx, func(propertyID string) {
		res, err := s.invoices.GenerateForPeriod(ctx, propertyID, periodStart)
		if err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Str("property", propertyID).Msg("invoice generation run failed")

			return
		}

		log.Info().
			Str("property", propertyID).
			Int("generated", res.Generated).
			Int("skipped", res.Skipped).
			Msg("invoice generation run completed")
	})
}

func (s *Scheduler) forEachProperty(ctx context.Context, fn func(propertyID string)) {
	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    propertyModel.FieldActive,
				Value:    true,
				Operator: gDto.FilterOperatorEq,
				Table:    propertyModel.TableName,
			},
		},
	}

	properties, err := s.properties.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to list properties for billing run")

		return
	}

	for _, property := range properties {
		fn(property.ID)
	}
}

// acquireLock claims the job for this instance. Losing the claim means
// another instance already runs it.
func (s *Scheduler) acquireLock(ctx context.Context, job string) bool {
	key := "scheduler:lock:" + job

	ok, err := s.redis.SetNX(ctx, key, 1, jobLockTTL).Result()
	if err != nil {
		log.Error().Err(err).Str("job", job).Msg("failed to acquire job lock")

		return false
	}

	if !ok {
		log.Info().Str("job", job).Msg("job already claimed by another instance")
	}

	return ok
}
