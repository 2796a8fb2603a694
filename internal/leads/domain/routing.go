package domain

// Agent identifies a next-action handler. The set is closed: Action Dispatch
// maps each name to a message template, and an unknown name is surfaced as a
// configuration gap.
type Agent string

const (
	AgentIntake           Agent = "intake_agent"
	AgentNurture          Agent = "nurture_agent"
	AgentAICall           Agent = "ai_call_agent"
	AgentAppointment      Agent = "appointment_agent"
	AgentPostCallFollowup Agent = "post_call_followup_agent"
	AgentReengagement     Agent = "reengagement_agent"
	AgentMinimalTouch     Agent = "minimal_touch_agent"
)

// PersistenceLevel expresses how aggressively the assigned agent follows up.
type PersistenceLevel string

const (
	PersistenceVeryLow PersistenceLevel = "very_low"
	PersistenceLow     PersistenceLevel = "low"
	PersistenceMedium  PersistenceLevel = "medium"
	PersistenceHigh    PersistenceLevel = "high"
)

// RoutingDecision says which agent handles the lead now, over which channel,
// and how persistently. The scoring fields used are echoed for the caller.
type RoutingDecision struct {
	AssignedAgent    Agent            `json:"assigned_agent"`
	PrimaryChannel   string           `json:"primary_channel"`
	PersistenceLevel PersistenceLevel `json:"persistence_level"`
	RoutingNotes     string           `json:"routing_notes"`

	Score          int            `json:"score"`
	IntentLevel    IntentLevel    `json:"intent_level"`
	SignalStrength SignalStrength `json:"signal_strength"`
	CallDecision   CallDecision   `json:"call_decision"`
}
