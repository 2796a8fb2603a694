// Package service orchestrates the lead decision pipeline: scoring, routing,
// cadence and dispatch over both ad-hoc leads and persisted ones.
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"sales360_backend/internal/events"
	"sales360_backend/internal/leads/cadence"
	"sales360_backend/internal/leads/dispatch"
	"sales360_backend/internal/leads/domain"
	"sales360_backend/internal/leads/objection"
	"sales360_backend/internal/leads/repository"
	"sales360_backend/internal/leads/routing"
	"sales360_backend/internal/leads/scoring"
	"sales360_backend/platform/logger"
	"sales360_backend/platform/phone"
)

// Decision timeline kinds recorded per lead.
const (
	DecisionKindScore   = "score"
	DecisionKindRouting = "routing"
	DecisionKindCadence = "cadence"
)

// Service runs the decision pipeline. The engines are pure; the service adds
// persistence, events and logging around them.
type Service struct {
	scorer     *scoring.Engine
	router     *routing.Engine
	cadencer   *cadence.Engine
	dispatcher *dispatch.Dispatcher
	repo       *repository.Repository
	bus        events.Bus
	log        *logger.Logger

	phoneRegion string
}

// New creates the leads service. The repository may be nil when the service
// only serves the stateless evaluation endpoints.
func New(scorer *scoring.Engine, router *routing.Engine, cadencer *cadence.Engine, dispatcher *dispatch.Dispatcher, repo *repository.Repository, bus events.Bus, log *logger.Logger, phoneRegion string) *Service {
	return &Service{
		scorer:      scorer,
		router:      router,
		cadencer:    cadencer,
		dispatcher:  dispatcher,
		repo:        repo,
		bus:         bus,
		log:         log,
		phoneRegion: phoneRegion,
	}
}

// =============================================================================
// Stateless pipeline operations
// =============================================================================

// Score runs the scoring engine over a lead.
func (s *Service) Score(lead domain.Lead) domain.ScoreResult {
	return s.scorer.Score(lead)
}

// Route scores the lead and decides which agent should handle it now.
func (s *Service) Route(lead domain.Lead) (domain.ScoreResult, domain.RoutingDecision) {
	score := s.scorer.Score(lead)
	return score, s.router.Route(lead, score)
}

// NextAction scores, routes and dispatches the routed agent's action.
func (s *Service) NextAction(lead domain.Lead) (domain.ScoreResult, domain.RoutingDecision, dispatch.ActionPayload) {
	score, route := s.Route(lead)
	action := s.dispatcher.AgentAction(lead, route, score)
	return score, route, action
}

// HandleObjection scores the lead and builds an objection-aware response.
func (s *Service) HandleObjection(lead domain.Lead, objectionText string) (domain.ScoreResult, objection.Response) {
	score := s.scorer.Score(lead)
	return score, objection.Respond(lead, score, objectionText)
}

// PostCallFollowup returns the follow-up payload for a scenario.
func (s *Service) PostCallFollowup(lead domain.Lead, scenario domain.Scenario, lastTouchChannel string) dispatch.ActionPayload {
	score := s.scorer.Score(lead)
	decision := domain.CadenceDecision{
		NextAgent: domain.AgentPostCallFollowup,
		Scenario:  scenario,
	}
	return s.dispatcher.RunCadenceAction(lead, score, decision, 0, lastTouchChannel)
}

// Reengage returns the re-engagement payload for an inactivity gap.
func (s *Service) Reengage(lead domain.Lead, daysInactive int, lastTouchChannel string) dispatch.ActionPayload {
	score := s.scorer.Score(lead)
	decision := domain.CadenceDecision{NextAgent: domain.AgentReengagement}
	return s.dispatcher.RunCadenceAction(lead, score, decision, daysInactive, lastTouchChannel)
}

// CadenceStep scores the lead and evaluates the cadence decision table.
func (s *Service) CadenceStep(lead domain.Lead, state domain.CadenceState) (domain.ScoreResult, domain.CadenceDecision) {
	score := s.scorer.Score(lead)
	return score, s.cadencer.DecideNextAgent(lead, score, state)
}

// CadenceRun evaluates the cadence and dispatches the decided action.
func (s *Service) CadenceRun(lead domain.Lead, state domain.CadenceState, lastTouchChannel string) (domain.ScoreResult, domain.CadenceDecision, dispatch.ActionPayload) {
	score, decision := s.CadenceStep(lead, state)
	action := s.dispatcher.RunCadenceAction(lead, score, decision, state.DaysInactive, lastTouchChannel)
	return score, decision, action
}

// =============================================================================
// Persisted lead operations
// =============================================================================

// CreateLead normalizes, persists and scores a new lead, records the score
// on its decision timeline and announces it on the bus.
func (s *Service) CreateLead(ctx context.Context, lead domain.Lead) (repository.StoredLead, domain.ScoreResult, error) {
	lead.Phone = phone.NormalizeE164Region(lead.Phone, s.phoneRegion)

	stored, err := s.repo.Create(ctx, lead)
	if err != nil {
		return repository.StoredLead{}, domain.ScoreResult{}, err
	}

	score := s.scorer.Score(stored.Lead)
	if err := s.repo.RecordDecision(ctx, stored.ID, DecisionKindScore, score); err != nil {
		s.log.DatabaseError("record score decision", err)
	}
	s.log.LeadScored(stored.ID.String(), score.Score, string(score.IntentLevel), string(score.CallDecision))

	s.bus.Publish(ctx, events.LeadCreated{
		BaseEvent: events.NewBaseEvent(),
		LeadID:    stored.ID,
		FullName:  stored.Lead.FullName,
		Source:    stored.Lead.LeadSource,
	})
	s.bus.Publish(ctx, events.LeadScored{
		BaseEvent:    events.NewBaseEvent(),
		LeadID:       stored.ID,
		Score:        score.Score,
		IntentLevel:  string(score.IntentLevel),
		CallDecision: string(score.CallDecision),
		RulesVersion: s.scorer.RulesVersion(),
	})

	return stored, score, nil
}

// GetLead retrieves a stored lead.
func (s *Service) GetLead(ctx context.Context, id uuid.UUID) (repository.StoredLead, error) {
	return s.repo.GetByID(ctx, id)
}

// ListDecisions returns the decision timeline of a lead.
func (s *Service) ListDecisions(ctx context.Context, id uuid.UUID, limit int) ([]repository.DecisionRecord, error) {
	return s.repo.ListDecisions(ctx, id, limit)
}

// EvaluationResult is one full pipeline run over a persisted lead.
type EvaluationResult struct {
	Lead         repository.StoredLead  `json:"lead"`
	DaysInactive int                    `json:"days_inactive"`
	State        repository.TouchState  `json:"state"`
	Score        domain.ScoreResult     `json:"scoring"`
	Routing      domain.RoutingDecision `json:"routing"`
	Cadence      domain.CadenceDecision `json:"cadence_decision"`
	Action       dispatch.ActionPayload `json:"agent_action"`
}

// EvaluateStored loads a lead and its interaction state, derives the days
// inactive, and runs the full pipeline. The routing and cadence decisions are
// appended to the decision timeline.
func (s *Service) EvaluateStored(ctx context.Context, id uuid.UUID) (EvaluationResult, error) {
	stored, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return EvaluationResult{}, err
	}

	state, err := s.repo.GetTouchState(ctx, id)
	if err != nil {
		return EvaluationResult{}, err
	}

	daysInactive := daysSince(state.LastTouchAt, stored.CreatedAt)

	score := s.scorer.Score(stored.Lead)
	route := s.router.Route(stored.Lead, score)
	decision := s.cadencer.DecideNextAgent(stored.Lead, score, domain.CadenceState{
		LastAgent:    state.LastAgent,
		DaysInactive: daysInactive,
		LastOutcome:  state.LastOutcome,
	})
	action := s.dispatcher.RunCadenceAction(stored.Lead, score, decision, daysInactive, state.LastTouchChannel)

	if err := s.repo.RecordDecision(ctx, id, DecisionKindRouting, route); err != nil {
		s.log.DatabaseError("record routing decision", err)
	}
	if err := s.repo.RecordDecision(ctx, id, DecisionKindCadence, decision); err != nil {
		s.log.DatabaseError("record cadence decision", err)
	}

	return EvaluationResult{
		Lead:         stored,
		DaysInactive: daysInactive,
		State:        state,
		Score:        score,
		Routing:      route,
		Cadence:      decision,
		Action:       action,
	}, nil
}

// RecordCadenceTouch updates the interaction state after a delivered cadence
// action and announces the execution. The previous outcome is cleared so the
// outcome-driven rules do not replay it on the next evaluation.
func (s *Service) RecordCadenceTouch(ctx context.Context, leadID uuid.UUID, decision domain.CadenceDecision, action dispatch.ActionPayload, channel string) error {
	if err := s.repo.RecordTouch(ctx, leadID, decision.NextAgent, "", channel, time.Now()); err != nil {
		return err
	}

	s.log.CadenceAction(leadID.String(), string(decision.NextAgent), string(decision.Scenario), channel)
	s.bus.Publish(ctx, events.CadenceActionExecuted{
		BaseEvent:   events.NewBaseEvent(),
		LeadID:      leadID,
		Agent:       string(decision.NextAgent),
		Scenario:    string(decision.Scenario),
		MessageType: action.MessageType,
		Channel:     channel,
	})
	return nil
}

// RecordOutcome stores an externally reported interaction outcome, e.g. a
// missed call from telephony or a no-show from the calendar.
func (s *Service) RecordOutcome(ctx context.Context, leadID uuid.UUID, outcome domain.Outcome) error {
	return s.repo.RecordOutcome(ctx, leadID, outcome)
}

// MarkWhatsAppReplied flags the reply bit that escalates routing.
func (s *Service) MarkWhatsAppReplied(ctx context.Context, leadID uuid.UUID) error {
	return s.repo.SetWhatsAppReplied(ctx, leadID)
}

// ActiveLeadIDs lists the leads the cadence sweep should evaluate.
func (s *Service) ActiveLeadIDs(ctx context.Context) ([]uuid.UUID, error) {
	return s.repo.ListActiveIDs(ctx)
}

func daysSince(lastTouchAt *time.Time, createdAt time.Time) int {
	reference := createdAt
	if lastTouchAt != nil {
		reference = *lastTouchAt
	}

	days := int(time.Since(reference).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}
