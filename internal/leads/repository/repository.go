// Package repository persists leads, their interaction state, and the
// decision timeline. The decision engines themselves never touch storage;
// this package supplies the externally held state they are evaluated against.
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"sales360_backend/internal/leads/domain"
	"sales360_backend/platform/apperr"
)

const leadNotFoundMessage = "lead not found"

// StoredLead is a persisted lead with its identity and lifecycle fields.
type StoredLead struct {
	ID        uuid.UUID   `json:"id"`
	Lead      domain.Lead `json:"lead"`
	Active    bool        `json:"active"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// TouchState is the persisted interaction state for a lead. A zero value
// means the lead has never been touched.
type TouchState struct {
	LastAgent        domain.Agent   `json:"last_agent,omitempty"`
	LastOutcome      domain.Outcome `json:"last_outcome,omitempty"`
	LastTouchChannel string         `json:"last_touch_channel,omitempty"`
	LastTouchAt      *time.Time     `json:"last_touch_at,omitempty"`
}

// DecisionRecord is one entry of the append-only decision timeline.
type DecisionRecord struct {
	ID        uuid.UUID       `json:"id"`
	LeadID    uuid.UUID       `json:"leadId"`
	Kind      string          `json:"kind"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"createdAt"`
}

// Repository provides lead persistence backed by PostgreSQL.
type Repository struct {
	pool *pgxpool.Pool
}

// New creates a new leads repository.
func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

const leadColumns = `
	id, full_name, email, phone, company, title, country,
	country_region, industry_type, lead_source, entry_channel, business_size,
	monthly_lead_volume, budget_readiness, decision_level, current_challenges,
	interested_services, utm_source, utm_medium,
	email_opened, link_clicked, whatsapp_replied,
	active, created_at, updated_at`

// Create persists a new lead and returns the stored record.
func (r *Repository) Create(ctx context.Context, lead domain.Lead) (StoredLead, error) {
	query := `
		INSERT INTO leads (
			id, full_name, email, phone, company, title, country,
			country_region, industry_type, lead_source, entry_channel, business_size,
			monthly_lead_volume, budget_readiness, decision_level, current_challenges,
			interested_services, utm_source, utm_medium,
			email_opened, link_clicked, whatsapp_replied
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7,
			$8, $9, $10, $11, $12,
			$13, $14, $15, $16,
			$17, $18, $19,
			$20, $21, $22
		)
		RETURNING created_at, updated_at`

	stored := StoredLead{
		ID:     uuid.New(),
		Lead:   lead,
		Active: true,
	}

	err := r.pool.QueryRow(ctx, query,
		stored.ID, lead.FullName, lead.Email, lead.Phone, lead.Company, lead.Title, lead.Country,
		lead.CountryRegion, lead.IndustryType, lead.LeadSource, lead.EntryChannel, lead.BusinessSize,
		lead.MonthlyLeadVolume, lead.BudgetReadiness, lead.DecisionLevel, lead.CurrentChallenges,
		nonNilServices(lead.InterestedServices), lead.UTMSource, lead.UTMMedium,
		lead.EmailOpened, lead.LinkClicked, lead.WhatsAppReplied,
	).Scan(&stored.CreatedAt, &stored.UpdatedAt)
	if err != nil {
		return StoredLead{}, fmt.Errorf("create lead: %w", err)
	}

	return stored, nil
}

// GetByID retrieves a lead by its ID.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (StoredLead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE id = $1`

	stored, err := scanLead(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return StoredLead{}, apperr.NotFound(leadNotFoundMessage)
		}
		return StoredLead{}, fmt.Errorf("get lead by id: %w", err)
	}

	return stored, nil
}

// ListActiveIDs returns the IDs of all active leads, oldest first. The
// cadence sweep iterates over this set.
func (r *Repository) ListActiveIDs(ctx context.Context) ([]uuid.UUID, error) {
	rows, err := r.pool.Query(ctx, `SELECT id FROM leads WHERE active ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list active leads: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan lead id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// SetWhatsAppReplied flags the behavior bit that escalates routing.
func (r *Repository) SetWhatsAppReplied(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE leads SET whatsapp_replied = TRUE, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("set whatsapp replied: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound(leadNotFoundMessage)
	}
	return nil
}

// GetTouchState returns the interaction state for a lead. A lead without
// recorded touches yields the zero state, not an error.
func (r *Repository) GetTouchState(ctx context.Context, leadID uuid.UUID) (TouchState, error) {
	query := `
		SELECT last_agent, last_outcome, last_touch_channel, last_touch_at
		FROM lead_touch_state
		WHERE lead_id = $1`

	var state TouchState
	var lastAgent, lastOutcome, lastChannel *string
	err := r.pool.QueryRow(ctx, query, leadID).Scan(&lastAgent, &lastOutcome, &lastChannel, &state.LastTouchAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return TouchState{}, nil
		}
		return TouchState{}, fmt.Errorf("get touch state: %w", err)
	}

	if lastAgent != nil {
		state.LastAgent = domain.Agent(*lastAgent)
	}
	if lastOutcome != nil {
		state.LastOutcome = domain.Outcome(*lastOutcome)
	}
	if lastChannel != nil {
		state.LastTouchChannel = *lastChannel
	}
	return state, nil
}

// RecordTouch upserts the interaction state after an agent action.
// An empty outcome clears the previous one so it is not replayed on the
// next evaluation.
func (r *Repository) RecordTouch(ctx context.Context, leadID uuid.UUID, agent domain.Agent, outcome domain.Outcome, channel string, at time.Time) error {
	query := `
		INSERT INTO lead_touch_state (lead_id, last_agent, last_outcome, last_touch_channel, last_touch_at)
		VALUES ($1, NULLIF($2, ''), NULLIF($3, ''), NULLIF($4, ''), $5)
		ON CONFLICT (lead_id) DO UPDATE SET
			last_agent = NULLIF($2, ''),
			last_outcome = NULLIF($3, ''),
			last_touch_channel = NULLIF($4, ''),
			last_touch_at = $5`

	if _, err := r.pool.Exec(ctx, query, leadID, string(agent), string(outcome), channel, at); err != nil {
		return fmt.Errorf("record touch: %w", err)
	}
	return nil
}

// RecordOutcome stores the result of the previous interaction without
// advancing the touch timestamp, e.g. a missed call reported by telephony.
func (r *Repository) RecordOutcome(ctx context.Context, leadID uuid.UUID, outcome domain.Outcome) error {
	query := `
		INSERT INTO lead_touch_state (lead_id, last_outcome)
		VALUES ($1, NULLIF($2, ''))
		ON CONFLICT (lead_id) DO UPDATE SET last_outcome = NULLIF($2, '')`

	if _, err := r.pool.Exec(ctx, query, leadID, string(outcome)); err != nil {
		return fmt.Errorf("record outcome: %w", err)
	}
	return nil
}

// RecordDecision appends an entry to the lead's decision timeline.
func (r *Repository) RecordDecision(ctx context.Context, leadID uuid.UUID, kind string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal decision payload: %w", err)
	}

	query := `INSERT INTO lead_decisions (id, lead_id, kind, payload) VALUES ($1, $2, $3, $4)`
	if _, err := r.pool.Exec(ctx, query, uuid.New(), leadID, kind, data); err != nil {
		return fmt.Errorf("record decision: %w", err)
	}
	return nil
}

// ListDecisions returns the most recent decision records for a lead.
func (r *Repository) ListDecisions(ctx context.Context, leadID uuid.UUID, limit int) ([]DecisionRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT id, lead_id, kind, payload, created_at
		FROM lead_decisions
		WHERE lead_id = $1
		ORDER BY created_at DESC
		LIMIT $2`

	rows, err := r.pool.Query(ctx, query, leadID, limit)
	if err != nil {
		return nil, fmt.Errorf("list decisions: %w", err)
	}
	defer rows.Close()

	var records []DecisionRecord
	for rows.Next() {
		var rec DecisionRecord
		if err := rows.Scan(&rec.ID, &rec.LeadID, &rec.Kind, &rec.Payload, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan decision: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// nonNilServices coalesces a nil slice to an empty one. pgx encodes a nil
// []string as SQL NULL, which the NOT NULL array column rejects.
func nonNilServices(services []string) []string {
	if services == nil {
		return []string{}
	}
	return services
}

func scanLead(row pgx.Row) (StoredLead, error) {
	var stored StoredLead
	err := row.Scan(
		&stored.ID, &stored.Lead.FullName, &stored.Lead.Email, &stored.Lead.Phone,
		&stored.Lead.Company, &stored.Lead.Title, &stored.Lead.Country,
		&stored.Lead.CountryRegion, &stored.Lead.IndustryType, &stored.Lead.LeadSource,
		&stored.Lead.EntryChannel, &stored.Lead.BusinessSize,
		&stored.Lead.MonthlyLeadVolume, &stored.Lead.BudgetReadiness,
		&stored.Lead.DecisionLevel, &stored.Lead.CurrentChallenges,
		&stored.Lead.InterestedServices, &stored.Lead.UTMSource, &stored.Lead.UTMMedium,
		&stored.Lead.EmailOpened, &stored.Lead.LinkClicked, &stored.Lead.WhatsAppReplied,
		&stored.Active, &stored.CreatedAt, &stored.UpdatedAt,
	)
	return stored, err
}
