package scoring

import (
	"testing"

	"sales360_backend/internal/leads/domain"
)

func TestScoreEmptyLeadIsZeroAndDisqualified(t *testing.T) {
	engine := New(DefaultRules())

	result := engine.Score(domain.Lead{})
	if result.Score != 0 {
		t.Fatalf("expected score 0 for empty lead, got %d", result.Score)
	}
	if result.IntentLevel != domain.IntentCold {
		t.Fatalf("expected Cold intent, got %s", result.IntentLevel)
	}
	if result.CallDecision != domain.NoCall {
		t.Fatalf("expected no_call decision, got %s", result.CallDecision)
	}
	if result.SignalStrength != domain.SignalLow {
		t.Fatalf("expected Low signal, got %s", result.SignalStrength)
	}
}

func TestScoreClampsAtHundred(t *testing.T) {
	engine := New(DefaultRules())

	// Every rule fires; the raw sum is far above the cap.
	result := engine.Score(domain.Lead{
		CountryRegion:     "UK",
		IndustryType:      "fx/crypto",
		Company:           "Exness Partners",
		Email:             "john@exness.com",
		Title:             "CEO",
		DecisionLevel:     "owner",
		EmailOpened:       true,
		LinkClicked:       true,
		WhatsAppReplied:   true,
		MonthlyLeadVolume: 150,
		BusinessSize:      "21-50",
		BudgetReadiness:   "yes",
		CurrentChallenges: "leads go cold before anyone calls them",
		LeadSource:        "referral",
		EntryChannel:      "dm",
	})

	if result.Score != 100 {
		t.Fatalf("expected clamped score 100, got %d", result.Score)
	}
	if result.IntentLevel != domain.IntentHot {
		t.Fatalf("expected Hot intent, got %s", result.IntentLevel)
	}
	if result.CallDecision != domain.CallNow {
		t.Fatalf("expected call_now, got %s", result.CallDecision)
	}
	if result.SignalStrength != domain.SignalHigh {
		t.Fatalf("expected High signal, got %s", result.SignalStrength)
	}
}

func TestScoreWarmBand(t *testing.T) {
	engine := New(DefaultRules())

	// 15 (Dubai) + 15 (sme) + 10 (volume 50) + 10 (budget) + 10 (website) = 60
	result := engine.Score(domain.Lead{
		CountryRegion:     "Dubai",
		IndustryType:      "SME",
		MonthlyLeadVolume: 50,
		BudgetReadiness:   "Yes",
		LeadSource:        "Website",
	})

	if result.Score != 60 {
		t.Fatalf("expected score 60, got %d", result.Score)
	}
	if result.IntentLevel != domain.IntentWarm {
		t.Fatalf("expected Warm intent, got %s", result.IntentLevel)
	}
	if result.CallDecision != domain.CallAfterIntake {
		t.Fatalf("expected call_after_intake, got %s", result.CallDecision)
	}
	if result.SignalStrength != domain.SignalMedium {
		t.Fatalf("expected Medium signal, got %s", result.SignalStrength)
	}
}

func TestScoreLongNurtureBoundary(t *testing.T) {
	engine := New(DefaultRules())

	// 5 (other region) + 5 (other industry) + 10 (pain) + 10 (website) = 30
	result := engine.Score(domain.Lead{
		CountryRegion:     "Germany",
		IndustryType:      "consulting",
		CurrentChallenges: "slow follow-up",
		LeadSource:        "website",
	})

	if result.Score != 30 {
		t.Fatalf("expected score 30, got %d", result.Score)
	}
	if result.CallDecision != domain.NoCallForNow {
		t.Fatalf("expected no_call_for_now at boundary, got %s", result.CallDecision)
	}

	// One tier lower falls into the disqualify band.
	below := engine.Score(domain.Lead{
		CountryRegion:     "Germany",
		IndustryType:      "consulting",
		CurrentChallenges: "slow follow-up",
	})
	if below.Score != 20 {
		t.Fatalf("expected score 20, got %d", below.Score)
	}
	if below.CallDecision != domain.NoCall {
		t.Fatalf("expected no_call below boundary, got %s", below.CallDecision)
	}
}

func TestScoreInfersRegionFromCountryOnlyWhenRegionEmpty(t *testing.T) {
	engine := New(DefaultRules())

	inferred := engine.Score(domain.Lead{Country: "United Kingdom"})
	explicit := engine.Score(domain.Lead{CountryRegion: "uk"})
	if inferred.Score != explicit.Score {
		t.Fatalf("expected inferred UK score %d to match explicit %d", inferred.Score, explicit.Score)
	}

	// country_region wins over the free-text country.
	precedence := engine.Score(domain.Lead{Country: "United Kingdom", CountryRegion: "Dubai"})
	dubai := engine.Score(domain.Lead{CountryRegion: "Dubai"})
	if precedence.Score != dubai.Score {
		t.Fatalf("expected country_region to take precedence: got %d, want %d", precedence.Score, dubai.Score)
	}
}

func TestScoreEmailDomainMatchesCompactedKeyword(t *testing.T) {
	engine := New(DefaultRules())

	// "ic markets" must match the hyphenated domain.
	result := engine.Score(domain.Lead{Email: "jane@ic-markets.com"})
	if result.Score != 10 {
		t.Fatalf("expected email domain match worth 10, got %d", result.Score)
	}

	noMatch := engine.Score(domain.Lead{Email: "jane@example.com"})
	if noMatch.Score != 0 {
		t.Fatalf("expected no points for unknown domain, got %d", noMatch.Score)
	}
}

func TestScoreIsMonotoneInBehaviorSignals(t *testing.T) {
	engine := New(DefaultRules())

	base := domain.Lead{
		CountryRegion: "Nigeria",
		IndustryType:  "b2b",
		LeadSource:    "partner",
	}
	withReply := base
	withReply.WhatsAppReplied = true

	if engine.Score(withReply).Score < engine.Score(base).Score {
		t.Fatal("adding a behavior signal must never lower the score")
	}
}
