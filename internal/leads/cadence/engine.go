// Package cadence decides which agent should act next on a lead, given the
// externally supplied interaction state. The engine is a prioritized decision
// table: an ordered list of (predicate, producer) rules evaluated top to
// bottom, first match wins. Priority lives in the table, not in control flow,
// so individual rules can be tested and reordered independently.
package cadence

import (
	"sales360_backend/internal/leads/domain"
)

// evaluation is the input a rule predicate sees: the score outcome plus the
// caller-supplied interaction state.
type evaluation struct {
	intent domain.IntentLevel
	state  domain.CadenceState
}

// rule pairs a predicate with the decision it produces. Name is the stable
// identifier recorded alongside decisions.
type rule struct {
	name    string
	matches func(evaluation) bool
	produce func(evaluation) domain.CadenceDecision
}

// followUp builds a post-call follow-up decision for the given scenario.
func followUp(scenario domain.Scenario, reason string) domain.CadenceDecision {
	return domain.CadenceDecision{
		NextAgent: domain.AgentPostCallFollowup,
		Scenario:  scenario,
		Reason:    reason,
	}
}

// rules is the decision table, highest priority first.
//
// The last two entries are unreachable: the days_inactive >= 7 rule shadows
// them. They are kept as data so a future tiered re-engagement cadence can
// resurrect them by reordering, and so the shadowing is visible rather than
// silently collapsed.
var rules = []rule{
	{
		name: "hot_appointment_window_reminder",
		matches: func(e evaluation) bool {
			return e.intent == domain.IntentHot &&
				e.state.LastAgent == domain.AgentAppointment &&
				e.state.DaysInactive >= 3 && e.state.DaysInactive < 7
		},
		produce: func(evaluation) domain.CadenceDecision {
			return followUp(domain.ScenarioReminder, "Hot lead: gentle reminder before switching to re-engagement.")
		},
	},
	{
		name: "missed_call_followup",
		matches: func(e evaluation) bool {
			return e.state.LastOutcome == domain.OutcomeMissedCall
		},
		produce: func(evaluation) domain.CadenceDecision {
			return followUp(domain.ScenarioMissedCall, "Call was attempted but not picked.")
		},
	},
	{
		name: "no_show_followup",
		matches: func(e evaluation) bool {
			return e.state.LastOutcome == domain.OutcomeNoShow
		},
		produce: func(evaluation) domain.CadenceDecision {
			return followUp(domain.ScenarioNoShow, "Lead did not attend scheduled meeting.")
		},
	},
	{
		name: "after_call_recap",
		matches: func(e evaluation) bool {
			return e.state.LastOutcome == domain.OutcomeAfterCall
		},
		produce: func(evaluation) domain.CadenceDecision {
			return followUp(domain.ScenarioAfterCall, "Send recap and next steps after a successful call.")
		},
	},
	{
		name: "pre_call_reminder",
		matches: func(e evaluation) bool {
			return e.state.LastOutcome == domain.OutcomeReminder
		},
		produce: func(evaluation) domain.CadenceDecision {
			return followUp(domain.ScenarioReminder, "Send a reminder message before the scheduled call.")
		},
	},
	{
		name: "hot_inactive_after_call",
		matches: func(e evaluation) bool {
			return e.intent == domain.IntentHot &&
				e.state.LastAgent == domain.AgentAICall &&
				e.state.DaysInactive >= 1
		},
		produce: func(evaluation) domain.CadenceDecision {
			return domain.CadenceDecision{
				NextAgent: domain.AgentAppointment,
				Reason:    "Hot lead inactive after call attempt.",
			}
		},
	},
	{
		name: "appointment_day_one_reminder",
		matches: func(e evaluation) bool {
			return e.state.LastAgent == domain.AgentAppointment && e.state.DaysInactive == 1
		},
		produce: func(evaluation) domain.CadenceDecision {
			return followUp(domain.ScenarioReminder, "Reminder 1 day after appointment outreach.")
		},
	},
	{
		name: "hot_appointment_second_reminder",
		matches: func(e evaluation) bool {
			return e.state.LastAgent == domain.AgentAppointment &&
				e.intent == domain.IntentHot &&
				e.state.DaysInactive >= 3 && e.state.DaysInactive < 7
		},
		produce: func(evaluation) domain.CadenceDecision {
			return followUp(domain.ScenarioReminder, "Hot lead: reminder before switching to re-engagement.")
		},
	},
	{
		name: "inactive_week_reengage",
		matches: func(e evaluation) bool {
			return e.state.DaysInactive >= 7
		},
		produce: func(evaluation) domain.CadenceDecision {
			return domain.CadenceDecision{
				NextAgent: domain.AgentReengagement,
				Reason:    "No response after reminders. Switching to re-engagement.",
			}
		},
	},
	{
		// Shadowed by inactive_week_reengage.
		name: "inactive_month_reengage",
		matches: func(e evaluation) bool {
			return e.state.DaysInactive >= 30
		},
		produce: func(evaluation) domain.CadenceDecision {
			return domain.CadenceDecision{
				NextAgent: domain.AgentReengagement,
				Reason:    "Lead inactive for over 30 days.",
			}
		},
	},
	{
		// Shadowed by inactive_week_reengage.
		name: "inactive_fortnight_reengage",
		matches: func(e evaluation) bool {
			return e.state.DaysInactive >= 14
		},
		produce: func(evaluation) domain.CadenceDecision {
			return domain.CadenceDecision{
				NextAgent: domain.AgentReengagement,
				Reason:    "Lead inactive for over 14 days.",
			}
		},
	},
}

// Engine evaluates the cadence decision table. Stateless and pure.
type Engine struct{}

// New creates a cadence engine.
func New() *Engine {
	return &Engine{}
}

// DecideNextAgent evaluates the decision table for a lead. Every decision
// carries the cadence profile, including the no-action default.
func (e *Engine) DecideNextAgent(lead domain.Lead, score domain.ScoreResult, state domain.CadenceState) domain.CadenceDecision {
	profile := profileFor(score.IntentLevel, score.SignalStrength, lead.CountryRegion)

	eval := evaluation{
		intent: score.IntentLevel,
		state:  state,
	}

	for _, r := range rules {
		if r.matches(eval) {
			decision := r.produce(eval)
			decision.CadenceProfile = profile
			return decision
		}
	}

	return domain.CadenceDecision{
		Reason:         "No cadence action required at this time.",
		CadenceProfile: profile,
	}
}
