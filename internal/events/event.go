// Package events provides domain event definitions for decoupled,
// event-driven communication between modules.
// Infrastructure (Bus, Handler) is in platform/events.
package events

import (
	"sales360_backend/platform/events"

	"github.com/google/uuid"
)

// Re-export platform types for convenience
type (
	Event       = events.Event
	Bus         = events.Bus
	Handler     = events.Handler
	HandlerFunc = events.HandlerFunc
	BaseEvent   = events.BaseEvent
)

// Re-export platform functions
var NewBaseEvent = events.NewBaseEvent

// LeadCreated is published when a new lead is registered.
type LeadCreated struct {
	BaseEvent
	LeadID   uuid.UUID `json:"leadId"`
	FullName string    `json:"fullName"`
	Source   string    `json:"source,omitempty"`
}

func (e LeadCreated) EventName() string { return "leads.created" }

// LeadScored is published after a persisted lead is scored.
type LeadScored struct {
	BaseEvent
	LeadID       uuid.UUID `json:"leadId"`
	Score        int       `json:"score"`
	IntentLevel  string    `json:"intentLevel"`
	CallDecision string    `json:"callDecision"`
	RulesVersion string    `json:"rulesVersion"`
}

func (e LeadScored) EventName() string { return "leads.scored" }

// CadenceActionExecuted is published when the cadence runner delivers an
// agent action for a lead.
type CadenceActionExecuted struct {
	BaseEvent
	LeadID      uuid.UUID `json:"leadId"`
	Agent       string    `json:"agent"`
	Scenario    string    `json:"scenario,omitempty"`
	MessageType string    `json:"messageType"`
	Channel     string    `json:"channel"`
}

func (e CadenceActionExecuted) EventName() string { return "leads.cadence.action_executed" }
