package dispatch

import (
	"strings"
	"testing"

	"sales360_backend/internal/leads/domain"
)

func newTestDispatcher() *Dispatcher {
	return New(NewCatalog(), nil)
}

func TestRunCadenceActionNoActionCarriesReason(t *testing.T) {
	d := newTestDispatcher()

	payload := d.RunCadenceAction(domain.Lead{}, domain.ScoreResult{}, domain.CadenceDecision{
		Reason: "No cadence action required at this time.",
	}, 0, "")

	if payload.MessageType != MessageTypeNoAction {
		t.Fatalf("expected no_action, got %q", payload.MessageType)
	}
	if payload.Notes != "No cadence action required at this time." {
		t.Fatalf("expected reason in notes, got %q", payload.Notes)
	}
	if payload.Message != "" {
		t.Fatalf("expected empty message, got %q", payload.Message)
	}
}

func TestRunCadenceActionNoShowSelectsNoShowTemplate(t *testing.T) {
	d := newTestDispatcher()

	payload := d.RunCadenceAction(domain.Lead{}, domain.ScoreResult{}, domain.CadenceDecision{
		NextAgent: domain.AgentPostCallFollowup,
		Scenario:  domain.ScenarioNoShow,
	}, 0, "whatsapp")

	if payload.MessageType != "post_call_no_show" {
		t.Fatalf("expected post_call_no_show, got %q", payload.MessageType)
	}
	if payload.ChannelSuggestion != "whatsapp" {
		t.Fatalf("expected last touch channel to carry over, got %q", payload.ChannelSuggestion)
	}
}

func TestRunCadenceActionDefaultsScenarioToConfirmation(t *testing.T) {
	d := newTestDispatcher()

	payload := d.RunCadenceAction(domain.Lead{}, domain.ScoreResult{}, domain.CadenceDecision{
		NextAgent: domain.AgentPostCallFollowup,
	}, 0, "")

	if payload.MessageType != "post_call_confirmation" {
		t.Fatalf("expected post_call_confirmation, got %q", payload.MessageType)
	}
}

func TestRunCadenceActionReengagementBuckets(t *testing.T) {
	d := newTestDispatcher()

	decision := domain.CadenceDecision{NextAgent: domain.AgentReengagement}

	light := d.RunCadenceAction(domain.Lead{}, domain.ScoreResult{}, decision, 5, "")
	if light.MessageType != "reengagement_light" {
		t.Fatalf("expected reengagement_light at 5 days, got %q", light.MessageType)
	}

	value := d.RunCadenceAction(domain.Lead{}, domain.ScoreResult{}, decision, 20, "")
	if value.MessageType != "reengagement_value" {
		t.Fatalf("expected reengagement_value at 20 days, got %q", value.MessageType)
	}

	final := d.RunCadenceAction(domain.Lead{}, domain.ScoreResult{}, decision, 45, "")
	if final.MessageType != "reengagement_final" {
		t.Fatalf("expected reengagement_final at 45 days, got %q", final.MessageType)
	}
}

func TestRunCadenceActionUnmappedAgent(t *testing.T) {
	d := newTestDispatcher()

	payload := d.RunCadenceAction(domain.Lead{}, domain.ScoreResult{}, domain.CadenceDecision{
		NextAgent: domain.Agent("mystery_agent"),
	}, 0, "")

	if payload.MessageType != MessageTypeUnmappedAgent {
		t.Fatalf("expected unmapped_agent, got %q", payload.MessageType)
	}
	if payload.Agent != domain.Agent("mystery_agent") {
		t.Fatalf("expected offending agent echoed, got %q", payload.Agent)
	}
}

func TestAgentActionCoversEveryKnownAgent(t *testing.T) {
	d := newTestDispatcher()

	agents := []domain.Agent{
		domain.AgentIntake,
		domain.AgentNurture,
		domain.AgentAICall,
		domain.AgentAppointment,
		domain.AgentPostCallFollowup,
		domain.AgentReengagement,
		domain.AgentMinimalTouch,
	}

	for _, agent := range agents {
		payload := d.AgentAction(domain.Lead{}, domain.RoutingDecision{AssignedAgent: agent}, domain.ScoreResult{})
		if payload.MessageType == MessageTypeUnmappedAgent {
			t.Fatalf("agent %s should be mapped", agent)
		}
		if payload.Message == "" && payload.Script == "" {
			t.Fatalf("agent %s produced no content", agent)
		}
	}
}

func TestCallScriptSubstitutesLeadContext(t *testing.T) {
	d := newTestDispatcher()

	payload := d.AgentAction(
		domain.Lead{CountryRegion: "Dubai", IndustryType: "fx/crypto"},
		domain.RoutingDecision{AssignedAgent: domain.AgentAICall},
		domain.ScoreResult{IntentLevel: domain.IntentHot},
	)

	if payload.MessageType != "call_script" {
		t.Fatalf("expected call_script, got %q", payload.MessageType)
	}
	if !strings.Contains(payload.Script, "Dubai") || !strings.Contains(payload.Script, "fx/crypto") {
		t.Fatalf("expected region and industry in script, got %q", payload.Script)
	}
}
