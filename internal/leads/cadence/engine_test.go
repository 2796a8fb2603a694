package cadence

import (
	"testing"

	"sales360_backend/internal/leads/domain"
)

func hot() domain.ScoreResult {
	return domain.ScoreResult{
		Score:          85,
		IntentLevel:    domain.IntentHot,
		SignalStrength: domain.SignalHigh,
		CallDecision:   domain.CallNow,
	}
}

func cold() domain.ScoreResult {
	return domain.ScoreResult{
		Score:          20,
		IntentLevel:    domain.IntentCold,
		SignalStrength: domain.SignalLow,
		CallDecision:   domain.NoCall,
	}
}

func TestDecideMissedCallOutranksInactivity(t *testing.T) {
	engine := New()

	// Even a long-inactive lead gets the missed-call follow-up first.
	decision := engine.DecideNextAgent(domain.Lead{}, cold(), domain.CadenceState{
		LastOutcome:  domain.OutcomeMissedCall,
		DaysInactive: 20,
	})

	if decision.NextAgent != domain.AgentPostCallFollowup {
		t.Fatalf("expected post_call_followup_agent, got %s", decision.NextAgent)
	}
	if decision.Scenario != domain.ScenarioMissedCall {
		t.Fatalf("expected missed_call scenario, got %s", decision.Scenario)
	}
}

func TestDecideWeekOfSilenceTriggersReengagement(t *testing.T) {
	engine := New()

	decision := engine.DecideNextAgent(domain.Lead{}, cold(), domain.CadenceState{DaysInactive: 10})
	if decision.NextAgent != domain.AgentReengagement {
		t.Fatalf("expected reengagement_agent, got %s", decision.NextAgent)
	}

	// A month of silence hits the same seven-day rule.
	month := engine.DecideNextAgent(domain.Lead{}, cold(), domain.CadenceState{DaysInactive: 35})
	if month.NextAgent != domain.AgentReengagement {
		t.Fatalf("expected reengagement_agent after a month, got %s", month.NextAgent)
	}
	if month.Reason != decision.Reason {
		t.Fatalf("expected the seven-day rule to shadow the longer gaps, got %q", month.Reason)
	}
}

func TestDecideHotLeadAfterCallMovesToAppointment(t *testing.T) {
	engine := New()

	decision := engine.DecideNextAgent(domain.Lead{}, hot(), domain.CadenceState{
		LastAgent:    domain.AgentAICall,
		DaysInactive: 2,
	})
	if decision.NextAgent != domain.AgentAppointment {
		t.Fatalf("expected appointment_agent, got %s", decision.NextAgent)
	}
}

func TestDecideHotAppointmentWindowGetsReminder(t *testing.T) {
	engine := New()

	decision := engine.DecideNextAgent(domain.Lead{}, hot(), domain.CadenceState{
		LastAgent:    domain.AgentAppointment,
		DaysInactive: 4,
	})
	if decision.NextAgent != domain.AgentPostCallFollowup {
		t.Fatalf("expected post_call_followup_agent, got %s", decision.NextAgent)
	}
	if decision.Scenario != domain.ScenarioReminder {
		t.Fatalf("expected reminder scenario, got %s", decision.Scenario)
	}

	// Day seven is out of the reminder window and falls through to re-engagement.
	late := engine.DecideNextAgent(domain.Lead{}, hot(), domain.CadenceState{
		LastAgent:    domain.AgentAppointment,
		DaysInactive: 7,
	})
	if late.NextAgent != domain.AgentReengagement {
		t.Fatalf("expected reengagement_agent at day 7, got %s", late.NextAgent)
	}
}

func TestDecideAppointmentDayOneReminderAppliesToAnyIntent(t *testing.T) {
	engine := New()

	decision := engine.DecideNextAgent(domain.Lead{}, cold(), domain.CadenceState{
		LastAgent:    domain.AgentAppointment,
		DaysInactive: 1,
	})
	if decision.NextAgent != domain.AgentPostCallFollowup {
		t.Fatalf("expected post_call_followup_agent, got %s", decision.NextAgent)
	}
	if decision.Scenario != domain.ScenarioReminder {
		t.Fatalf("expected reminder scenario, got %s", decision.Scenario)
	}
}

func TestDecideDefaultCarriesProfileWithoutAction(t *testing.T) {
	engine := New()

	warm := domain.ScoreResult{
		Score:          60,
		IntentLevel:    domain.IntentWarm,
		SignalStrength: domain.SignalMedium,
		CallDecision:   domain.CallAfterIntake,
	}
	decision := engine.DecideNextAgent(domain.Lead{}, warm, domain.CadenceState{DaysInactive: 2})

	if decision.HasAction() {
		t.Fatalf("expected no action, got agent %s", decision.NextAgent)
	}
	if decision.CadenceProfile.Level != "medium" {
		t.Fatalf("expected medium profile on the no-action default, got %q", decision.CadenceProfile.Level)
	}
	if decision.CadenceProfile.MaxTouchesPerWeek != 2 || decision.CadenceProfile.MinDaysBetweenTouches != 2 {
		t.Fatalf("unexpected warm profile: %+v", decision.CadenceProfile)
	}
}

func TestProfileForEscalatesWithIntentSignalAndRegion(t *testing.T) {
	low := profileFor(domain.IntentCold, domain.SignalLow, "")
	if low.Level != "low" || low.MaxTouchesPerWeek != 1 || low.MinDaysBetweenTouches != 4 {
		t.Fatalf("unexpected baseline profile: %+v", low)
	}

	high := profileFor(domain.IntentHot, domain.SignalMedium, "")
	if high.Level != "high" || high.MaxTouchesPerWeek != 3 || high.MinDaysBetweenTouches != 1 {
		t.Fatalf("unexpected hot profile: %+v", high)
	}

	maxed := profileFor(domain.IntentHot, domain.SignalHigh, "")
	if maxed.MaxTouchesPerWeek != 4 {
		t.Fatalf("expected 4 touches for hot+high, got %d", maxed.MaxTouchesPerWeek)
	}

	regional := profileFor(domain.IntentHot, domain.SignalHigh, "dubai")
	if regional.MaxTouchesPerWeek != 5 {
		t.Fatalf("expected region bonus touch, got %d", regional.MaxTouchesPerWeek)
	}

	// The region bonus only applies to Hot leads.
	warmRegional := profileFor(domain.IntentWarm, domain.SignalMedium, "Nigeria")
	if warmRegional.MaxTouchesPerWeek != 2 {
		t.Fatalf("expected no region bonus for warm lead, got %d", warmRegional.MaxTouchesPerWeek)
	}
}
