// Package routing assigns a lead to its next-action agent.
//
// The rules are evaluated in a fixed order and each matching rule overwrites
// the running decision, so a later rule wins over an earlier one. This is
// deliberate: the WhatsApp-reply override runs last and always trumps the
// score-based branches, because a reply is the strongest buying signal the
// pipeline sees.
package routing

import (
	"sales360_backend/internal/leads/domain"
)

// Engine routes leads. It is stateless; Route is a pure function.
type Engine struct{}

// New creates a routing engine.
func New() *Engine {
	return &Engine{}
}

// Route decides which agent handles the lead now, over which channel and how
// persistently, given the lead and its score result.
func (e *Engine) Route(lead domain.Lead, score domain.ScoreResult) domain.RoutingDecision {
	decision := domain.RoutingDecision{
		AssignedAgent:    domain.AgentNurture,
		PrimaryChannel:   "email",
		PersistenceLevel: domain.PersistenceLow,
		RoutingNotes:     "Default route - low priority nurture.",

		Score:          score.Score,
		IntentLevel:    score.IntentLevel,
		SignalStrength: score.SignalStrength,
		CallDecision:   score.CallDecision,
	}

	switch {
	case score.IntentLevel == domain.IntentHot || score.CallDecision == domain.CallNow:
		decision.AssignedAgent = domain.AgentAICall
		decision.PrimaryChannel = "phone_call + whatsapp"
		decision.PersistenceLevel = domain.PersistenceHigh
		decision.RoutingNotes = "High intent lead. Call immediately, follow up via WhatsApp."

	case score.IntentLevel == domain.IntentWarm || score.CallDecision == domain.CallAfterIntake:
		decision.AssignedAgent = domain.AgentNurture
		decision.PrimaryChannel = "whatsapp + email"
		decision.PersistenceLevel = domain.PersistenceMedium
		decision.RoutingNotes = "Warm lead. Start nurture, then hand off to call agent if engagement increases."

		// Regions where more persistent outreach is acceptable.
		// Matched exactly as stored, not normalized.
		if lead.CountryRegion == "Nigeria" || lead.CountryRegion == "Dubai" {
			decision.PersistenceLevel = domain.PersistenceHigh
			decision.RoutingNotes += " Region allows higher persistence."
		}

	case score.IntentLevel == domain.IntentCold && score.Score >= 30:
		decision.AssignedAgent = domain.AgentNurture
		decision.PrimaryChannel = "email"
		decision.PersistenceLevel = domain.PersistenceLow
		decision.RoutingNotes = "Cold but not dead. Put into long-term nurture."

	case score.Score < 30:
		decision.AssignedAgent = domain.AgentMinimalTouch
		decision.PrimaryChannel = "email"
		decision.PersistenceLevel = domain.PersistenceVeryLow
		decision.RoutingNotes = "Very low score. Occasional soft check-ins only."
	}

	// Final override: a WhatsApp reply always escalates, whatever the
	// branches above decided.
	if lead.WhatsAppReplied {
		if score.Score >= 50 {
			decision.AssignedAgent = domain.AgentAICall
			decision.PrimaryChannel = "phone_call + whatsapp"
			decision.PersistenceLevel = domain.PersistenceHigh
			decision.RoutingNotes = "WhatsApp reply + decent score. Prioritise call."
		} else {
			decision.AssignedAgent = domain.AgentNurture
			decision.PrimaryChannel = "whatsapp"
			decision.PersistenceLevel = domain.PersistenceMedium
			decision.RoutingNotes = "WhatsApp reply but low score. Nurture via WhatsApp."
		}
	}

	return decision
}
