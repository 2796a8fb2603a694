package domain

// Scenario sub-classifies the post-call follow-up agent's action.
type Scenario string

const (
	ScenarioConfirmation Scenario = "confirmation"
	ScenarioReminder     Scenario = "reminder"
	ScenarioMissedCall   Scenario = "missed_call"
	ScenarioNoShow       Scenario = "no_show"
	ScenarioAfterCall    Scenario = "after_call"
)

// Outcome is the result of the previous interaction, supplied by the caller.
// Outcomes reuse scenario vocabulary where the follow-up mirrors the event.
type Outcome string

const (
	OutcomeMissedCall Outcome = "missed_call"
	OutcomeNoShow     Outcome = "no_show"
	OutcomeAfterCall  Outcome = "after_call"
	OutcomeReminder   Outcome = "reminder"
)

// CadenceProfile is the touch-frequency policy attached to cadence decisions.
type CadenceProfile struct {
	Level                 string `json:"level"`
	MaxTouchesPerWeek     int    `json:"max_touches_per_week"`
	MinDaysBetweenTouches int    `json:"min_days_between_touches"`
}

// CadenceDecision is the outcome of one cadence evaluation. NextAgent empty
// means no action is required now. The engine holds no memory between calls;
// last agent, days inactive and last outcome are supplied by the caller.
type CadenceDecision struct {
	NextAgent      Agent          `json:"next_agent,omitempty"`
	Scenario       Scenario       `json:"scenario,omitempty"`
	Reason         string         `json:"reason"`
	CadenceProfile CadenceProfile `json:"cadence_profile"`
}

// HasAction reports whether the decision selects an agent to act.
func (d CadenceDecision) HasAction() bool {
	return d.NextAgent != ""
}

// CadenceState is the externally supplied interaction state a cadence
// evaluation runs against.
type CadenceState struct {
	LastAgent    Agent   `json:"last_agent,omitempty"`
	DaysInactive int     `json:"days_inactive"`
	LastOutcome  Outcome `json:"last_outcome,omitempty"`
}
