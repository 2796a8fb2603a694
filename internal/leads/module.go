// Package leads provides the lead decisioning bounded context module.
// This file defines the module that encapsulates all leads setup and route registration.
package leads

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"sales360_backend/internal/events"
	apphttp "sales360_backend/internal/http"
	"sales360_backend/internal/leads/cadence"
	"sales360_backend/internal/leads/dispatch"
	"sales360_backend/internal/leads/handler"
	"sales360_backend/internal/leads/repository"
	"sales360_backend/internal/leads/routing"
	"sales360_backend/internal/leads/scoring"
	"sales360_backend/internal/leads/service"
	"sales360_backend/platform/config"
	"sales360_backend/platform/logger"
	"sales360_backend/platform/validator"
)

// firstEvaluationDelay gives a freshly created lead a short head start before
// the cadence engine looks at it.
const firstEvaluationDelay = 5 * time.Minute

// CadenceScheduler enqueues a deferred cadence evaluation for one lead.
// Implemented by the scheduler client; nil disables auto-scheduling.
type CadenceScheduler interface {
	ScheduleCadenceEvaluation(ctx context.Context, leadID uuid.UUID, runAt time.Time) error
}

// Module is the leads bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
	repo    *repository.Repository
}

// NewModule creates and initializes the leads module with all its dependencies.
func NewModule(pool *pgxpool.Pool, eventBus events.Bus, sched CadenceScheduler, val *validator.Validator, cfg *config.Config, log *logger.Logger) (*Module, error) {
	rules, err := scoring.LoadRules(cfg.GetScoringRulesPath())
	if err != nil {
		return nil, err
	}

	repo := repository.New(pool)
	dispatcher := dispatch.New(dispatch.NewCatalog(), log)
	svc := service.New(
		scoring.New(rules),
		routing.New(),
		cadence.New(),
		dispatcher,
		repo,
		eventBus,
		log,
		cfg.GetDefaultPhoneRegion(),
	)

	// New leads get their first cadence evaluation scheduled automatically.
	if sched != nil {
		eventBus.Subscribe(events.LeadCreated{}.EventName(), events.HandlerFunc(func(ctx context.Context, event events.Event) error {
			e, ok := event.(events.LeadCreated)
			if !ok {
				return nil
			}

			if err := sched.ScheduleCadenceEvaluation(ctx, e.LeadID, time.Now().Add(firstEvaluationDelay)); err != nil {
				log.Error("failed to schedule first cadence evaluation", "error", err, "leadId", e.LeadID)
			}
			return nil
		}))
	}

	return &Module{
		handler: handler.New(svc, val),
		service: svc,
		repo:    repo,
	}, nil
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "leads"
}

// Service returns the lead decision service for external use (worker wiring).
func (m *Module) Service() *service.Service {
	return m.service
}

// Repository returns the lead repository for external use.
func (m *Module) Repository() *repository.Repository {
	return m.repo
}

// RegisterRoutes mounts leads routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	m.handler.RegisterRoutes(ctx.Protected.Group("/leads"))
	m.handler.RegisterCadenceRoutes(ctx.Protected.Group("/cadence"))
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
