// Package dispatch maps routing and cadence decisions to agent action
// payloads. It is a pure name dispatch over the closed agent set; the actual
// message text comes from the Templates collaborator.
package dispatch

import (
	"sales360_backend/internal/leads/domain"
	"sales360_backend/platform/logger"
)

// Message type constants for payloads not owned by a specific template.
const (
	MessageTypeNoAction      = "no_action"
	MessageTypeUnmappedAgent = "unmapped_agent"
)

// ActionPayload is the structured outcome of dispatching a decision. The
// presentation layer put the message or script on the wire; the core only
// selects it.
type ActionPayload struct {
	Agent             domain.Agent `json:"agent,omitempty"`
	ChannelSuggestion string       `json:"channel_suggestion,omitempty"`
	MessageType       string       `json:"message_type"`
	Message           string       `json:"message,omitempty"`
	Script            string       `json:"script,omitempty"`
	Notes             string       `json:"notes,omitempty"`
}

// Templates is the message-template collaborator. Implementations format
// human-readable text for each agent; the dispatcher only selects which
// template applies.
type Templates interface {
	Intake(lead domain.Lead) ActionPayload
	Nurture(lead domain.Lead, score domain.ScoreResult) ActionPayload
	CallScript(lead domain.Lead, score domain.ScoreResult) ActionPayload
	Appointment(lead domain.Lead, score domain.ScoreResult) ActionPayload
	PostCallFollowup(lead domain.Lead, scenario domain.Scenario, lastTouchChannel string) ActionPayload
	Reengagement(lead domain.Lead, daysInactive int, lastTouchChannel string) ActionPayload
	MinimalTouch(lead domain.Lead) ActionPayload
}

// Dispatcher resolves decisions to payloads.
type Dispatcher struct {
	templates Templates
	log       *logger.Logger
}

// New creates a dispatcher over the given template collaborator.
func New(templates Templates, log *logger.Logger) *Dispatcher {
	return &Dispatcher{templates: templates, log: log}
}

// RunCadenceAction turns a cadence decision into the agent action payload.
// An empty next agent yields a no-action payload carrying the decision's
// reason. An agent the cadence table can name but no template covers is a
// configuration gap: it is returned as a marked payload and logged for
// operators, never dropped.
func (d *Dispatcher) RunCadenceAction(lead domain.Lead, score domain.ScoreResult, decision domain.CadenceDecision, daysInactive int, lastTouchChannel string) ActionPayload {
	if !decision.HasAction() {
		notes := decision.Reason
		if notes == "" {
			notes = "No cadence action required."
		}
		return ActionPayload{
			MessageType: MessageTypeNoAction,
			Notes:       notes,
		}
	}

	switch decision.NextAgent {
	case domain.AgentAppointment:
		return d.templates.Appointment(lead, score)

	case domain.AgentPostCallFollowup:
		scenario := decision.Scenario
		if scenario == "" {
			scenario = domain.ScenarioConfirmation
		}
		return d.templates.PostCallFollowup(lead, scenario, lastTouchChannel)

	case domain.AgentReengagement:
		return d.templates.Reengagement(lead, daysInactive, lastTouchChannel)
	}

	return d.unmapped(decision.NextAgent)
}

// AgentAction turns a routing decision into the agent action payload.
func (d *Dispatcher) AgentAction(lead domain.Lead, routing domain.RoutingDecision, score domain.ScoreResult) ActionPayload {
	switch routing.AssignedAgent {
	case domain.AgentIntake:
		return d.templates.Intake(lead)
	case domain.AgentNurture:
		return d.templates.Nurture(lead, score)
	case domain.AgentAICall:
		return d.templates.CallScript(lead, score)
	case domain.AgentAppointment:
		return d.templates.Appointment(lead, score)
	case domain.AgentPostCallFollowup:
		return d.templates.PostCallFollowup(lead, domain.ScenarioConfirmation, "")
	case domain.AgentReengagement:
		return d.templates.Reengagement(lead, 0, "")
	case domain.AgentMinimalTouch:
		return d.templates.MinimalTouch(lead)
	}

	return d.unmapped(routing.AssignedAgent)
}

// unmapped builds the error payload for an agent with no template. This
// signals a rule referencing an agent that delivery cannot serve.
func (d *Dispatcher) unmapped(agent domain.Agent) ActionPayload {
	if d.log != nil {
		d.log.UnmappedAgent(string(agent))
	}
	return ActionPayload{
		Agent:       agent,
		MessageType: MessageTypeUnmappedAgent,
		Message:     "A rule selected an agent that has not been mapped to a template.",
		Notes:       "Register a template for this agent in the dispatch catalog.",
	}
}
