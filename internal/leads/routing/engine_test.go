package routing

import (
	"strings"
	"testing"

	"sales360_backend/internal/leads/domain"
)

func warmScore(score int) domain.ScoreResult {
	return domain.ScoreResult{
		Score:          score,
		IntentLevel:    domain.IntentWarm,
		SignalStrength: domain.SignalMedium,
		CallDecision:   domain.CallAfterIntake,
	}
}

func TestRouteHotLeadGoesToCallAgent(t *testing.T) {
	engine := New()

	decision := engine.Route(domain.Lead{}, domain.ScoreResult{
		Score:          85,
		IntentLevel:    domain.IntentHot,
		SignalStrength: domain.SignalHigh,
		CallDecision:   domain.CallNow,
	})

	if decision.AssignedAgent != domain.AgentAICall {
		t.Fatalf("expected ai_call_agent, got %s", decision.AssignedAgent)
	}
	if decision.PrimaryChannel != "phone_call + whatsapp" {
		t.Fatalf("unexpected channel %q", decision.PrimaryChannel)
	}
	if decision.PersistenceLevel != domain.PersistenceHigh {
		t.Fatalf("expected high persistence, got %s", decision.PersistenceLevel)
	}
}

func TestRouteWarmRegionBumpMatchesExactCase(t *testing.T) {
	engine := New()

	bumped := engine.Route(domain.Lead{CountryRegion: "Nigeria"}, warmScore(60))
	if bumped.PersistenceLevel != domain.PersistenceHigh {
		t.Fatalf("expected high persistence for Nigeria, got %s", bumped.PersistenceLevel)
	}
	if !strings.Contains(bumped.RoutingNotes, "Region allows higher persistence") {
		t.Fatalf("expected region note, got %q", bumped.RoutingNotes)
	}

	// The region bump matches the stored value verbatim.
	plain := engine.Route(domain.Lead{CountryRegion: "nigeria"}, warmScore(60))
	if plain.PersistenceLevel != domain.PersistenceMedium {
		t.Fatalf("expected medium persistence for lowercase region, got %s", plain.PersistenceLevel)
	}
}

func TestRouteColdBandsSplitAtThirty(t *testing.T) {
	engine := New()

	cold := domain.ScoreResult{
		Score:          35,
		IntentLevel:    domain.IntentCold,
		SignalStrength: domain.SignalLow,
		CallDecision:   domain.NoCallForNow,
	}
	decision := engine.Route(domain.Lead{}, cold)
	if decision.AssignedAgent != domain.AgentNurture {
		t.Fatalf("expected nurture_agent, got %s", decision.AssignedAgent)
	}
	if decision.PersistenceLevel != domain.PersistenceLow {
		t.Fatalf("expected low persistence, got %s", decision.PersistenceLevel)
	}

	cold.Score = 25
	cold.CallDecision = domain.NoCall
	decision = engine.Route(domain.Lead{}, cold)
	if decision.AssignedAgent != domain.AgentMinimalTouch {
		t.Fatalf("expected minimal_touch_agent, got %s", decision.AssignedAgent)
	}
	if decision.PersistenceLevel != domain.PersistenceVeryLow {
		t.Fatalf("expected very_low persistence, got %s", decision.PersistenceLevel)
	}
}

func TestRouteWhatsAppReplyOverridesEveryBranch(t *testing.T) {
	engine := New()

	// Decent score: the reply escalates straight to the call agent.
	escalated := engine.Route(domain.Lead{WhatsAppReplied: true}, warmScore(60))
	if escalated.AssignedAgent != domain.AgentAICall {
		t.Fatalf("expected ai_call_agent after reply, got %s", escalated.AssignedAgent)
	}
	if escalated.PersistenceLevel != domain.PersistenceHigh {
		t.Fatalf("expected high persistence after reply, got %s", escalated.PersistenceLevel)
	}

	// Low score: the reply still wins, but keeps the lead in nurture on WhatsApp.
	nurtured := engine.Route(domain.Lead{WhatsAppReplied: true}, domain.ScoreResult{
		Score:          40,
		IntentLevel:    domain.IntentCold,
		SignalStrength: domain.SignalLow,
		CallDecision:   domain.NoCallForNow,
	})
	if nurtured.AssignedAgent != domain.AgentNurture {
		t.Fatalf("expected nurture_agent, got %s", nurtured.AssignedAgent)
	}
	if nurtured.PrimaryChannel != "whatsapp" {
		t.Fatalf("expected whatsapp channel, got %q", nurtured.PrimaryChannel)
	}
}

func TestRouteEchoesScoreFields(t *testing.T) {
	engine := New()

	score := warmScore(55)
	decision := engine.Route(domain.Lead{}, score)
	if decision.Score != 55 || decision.IntentLevel != score.IntentLevel ||
		decision.SignalStrength != score.SignalStrength || decision.CallDecision != score.CallDecision {
		t.Fatalf("expected decision to echo score fields, got %+v", decision)
	}
}
