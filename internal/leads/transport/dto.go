// Package transport defines the request and response DTOs of the leads API.
package transport

import (
	"time"

	"github.com/google/uuid"

	"sales360_backend/internal/leads/domain"
)

// LeadPayload mirrors domain.Lead on the wire. Every field is optional;
// validation only rejects malformed values, never missing ones, because the
// scoring engine treats absence as zero contribution.
type LeadPayload struct {
	FullName string `json:"full_name,omitempty" validate:"omitempty,max=200"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
	Phone    string `json:"phone,omitempty" validate:"omitempty,max=32"`
	Company  string `json:"company,omitempty" validate:"omitempty,max=200"`
	Title    string `json:"title,omitempty" validate:"omitempty,max=200"`
	Country  string `json:"country,omitempty" validate:"omitempty,max=100"`

	CountryRegion      string   `json:"country_region,omitempty" validate:"omitempty,max=100"`
	IndustryType       string   `json:"industry_type,omitempty" validate:"omitempty,max=100"`
	LeadSource         string   `json:"lead_source,omitempty" validate:"omitempty,max=100"`
	EntryChannel       string   `json:"entry_channel,omitempty" validate:"omitempty,max=100"`
	BusinessSize       string   `json:"business_size,omitempty" validate:"omitempty,max=20"`
	MonthlyLeadVolume  int      `json:"monthly_lead_volume,omitempty" validate:"omitempty,min=0"`
	BudgetReadiness    string   `json:"budget_readiness,omitempty" validate:"omitempty,max=20"`
	DecisionLevel      string   `json:"decision_level,omitempty" validate:"omitempty,max=100"`
	CurrentChallenges  string   `json:"current_challenges,omitempty" validate:"omitempty,max=2000"`
	InterestedServices []string `json:"interested_services,omitempty" validate:"omitempty,dive,max=100"`
	UTMSource          string   `json:"utm_source,omitempty" validate:"omitempty,max=100"`
	UTMMedium          string   `json:"utm_medium,omitempty" validate:"omitempty,max=100"`

	EmailOpened     bool `json:"email_opened,omitempty"`
	LinkClicked     bool `json:"link_clicked,omitempty"`
	WhatsAppReplied bool `json:"whatsapp_replied,omitempty"`
}

// ToDomain converts the payload to the domain value object.
func (p LeadPayload) ToDomain() domain.Lead {
	return domain.Lead{
		FullName:           p.FullName,
		Email:              p.Email,
		Phone:              p.Phone,
		Company:            p.Company,
		Title:              p.Title,
		Country:            p.Country,
		CountryRegion:      p.CountryRegion,
		IndustryType:       p.IndustryType,
		LeadSource:         p.LeadSource,
		EntryChannel:       p.EntryChannel,
		BusinessSize:       p.BusinessSize,
		MonthlyLeadVolume:  p.MonthlyLeadVolume,
		BudgetReadiness:    p.BudgetReadiness,
		DecisionLevel:      p.DecisionLevel,
		CurrentChallenges:  p.CurrentChallenges,
		InterestedServices: p.InterestedServices,
		UTMSource:          p.UTMSource,
		UTMMedium:          p.UTMMedium,
		EmailOpened:        p.EmailOpened,
		LinkClicked:        p.LinkClicked,
		WhatsAppReplied:    p.WhatsAppReplied,
	}
}

// CreateLeadRequest registers a lead for persistence and cadence tracking.
type CreateLeadRequest struct {
	LeadPayload
	FullName string `json:"full_name" validate:"required,max=200"`
}

// ToDomain converts the create request to the domain value object.
func (r CreateLeadRequest) ToDomain() domain.Lead {
	lead := r.LeadPayload.ToDomain()
	lead.FullName = r.FullName
	return lead
}

// ObjectionRequest carries a lead and the objection to respond to.
type ObjectionRequest struct {
	Lead          LeadPayload `json:"lead"`
	ObjectionText string      `json:"objection_text" validate:"required,max=4000"`
}

// PostCallRequest selects a post-call follow-up variant.
type PostCallRequest struct {
	Lead             LeadPayload `json:"lead"`
	Scenario         string      `json:"scenario" validate:"required,oneof=confirmation reminder missed_call no_show after_call"`
	LastTouchChannel string      `json:"last_touch_channel,omitempty" validate:"omitempty,max=50"`
}

// ReengagementRequest selects a re-engagement variant by inactivity gap.
type ReengagementRequest struct {
	Lead             LeadPayload `json:"lead"`
	DaysInactive     int         `json:"days_inactive" validate:"min=0"`
	LastTouchChannel string      `json:"last_touch_channel,omitempty" validate:"omitempty,max=50"`
}

// CadenceStepRequest asks the cadence engine for the next agent given the
// externally held interaction state.
type CadenceStepRequest struct {
	Lead         LeadPayload `json:"lead"`
	LastAgent    string      `json:"last_agent,omitempty" validate:"omitempty,max=50"`
	DaysInactive int         `json:"days_inactive" validate:"min=0"`
	LastOutcome  string      `json:"last_outcome,omitempty" validate:"omitempty,oneof=missed_call no_show after_call reminder"`
}

// State converts the request's state fields to the domain form.
func (r CadenceStepRequest) State() domain.CadenceState {
	return domain.CadenceState{
		LastAgent:    domain.Agent(r.LastAgent),
		DaysInactive: r.DaysInactive,
		LastOutcome:  domain.Outcome(r.LastOutcome),
	}
}

// CadenceRunRequest additionally runs the decided action through dispatch.
type CadenceRunRequest struct {
	CadenceStepRequest
	LastTouchChannel string `json:"last_touch_channel,omitempty" validate:"omitempty,max=50"`
}

// LeadResponse represents a stored lead in API responses.
type LeadResponse struct {
	ID        uuid.UUID   `json:"id"`
	Lead      domain.Lead `json:"lead"`
	Active    bool        `json:"active"`
	CreatedAt string      `json:"createdAt"`
	UpdatedAt string      `json:"updatedAt"`
}

// NewLeadResponse formats a stored lead for the API.
func NewLeadResponse(id uuid.UUID, lead domain.Lead, active bool, createdAt, updatedAt time.Time) LeadResponse {
	return LeadResponse{
		ID:        id,
		Lead:      lead,
		Active:    active,
		CreatedAt: createdAt.Format(time.RFC3339),
		UpdatedAt: updatedAt.Format(time.RFC3339),
	}
}
