package objection

import (
	"strings"
	"testing"

	"sales360_backend/internal/leads/domain"
)

func TestClassifyCategories(t *testing.T) {
	cases := []struct {
		text string
		want Category
	}{
		{"this looks too expensive for us", CategoryPrice},
		{"we have no budget this quarter", CategoryBudget},
		{"can you send me more info first", CategoryInfo},
		{"please share more information", CategoryInfo},
		{"maybe later, bad timing", CategoryTiming},
		{"we already use hubspot", CategoryCompetitor},
		{"we are already using a tool for this", CategoryCompetitor},
		{"not sure this would work for us", CategoryRisk},
		{"we get not enough leads to justify it", CategoryLeadVolume},
		{"honestly it's not a priority right now", CategoryPriority},
		{"I need my boss to sign off", CategoryAuthority},
		{"who are you exactly?", CategoryTrust},
		{"hmm interesting", CategoryGeneral},
	}

	for _, tc := range cases {
		if got := Classify(tc.text); got != tc.want {
			t.Fatalf("Classify(%q) = %s, want %s", tc.text, got, tc.want)
		}
	}
}

func TestClassifyPriceWinsOverBudget(t *testing.T) {
	// Both vocabularies match; the earlier category wins.
	if got := Classify("the price doesn't fit our budget"); got != CategoryPrice {
		t.Fatalf("expected price to win, got %s", got)
	}
}

func TestRespondSubstitutesRegionAndIndustry(t *testing.T) {
	lead := domain.Lead{CountryRegion: "Nigeria", IndustryType: "brokerage"}
	score := domain.ScoreResult{Score: 65, IntentLevel: domain.IntentWarm}

	resp := Respond(lead, score, "seems expensive")

	if resp.Category != CategoryPrice {
		t.Fatalf("expected price category, got %s", resp.Category)
	}
	if resp.Region != "NIGERIA" {
		t.Fatalf("expected uppercased region, got %q", resp.Region)
	}
	if !strings.Contains(resp.Message, "NIGERIA") || !strings.Contains(resp.Message, "brokerage") {
		t.Fatalf("expected placeholders substituted, got %q", resp.Message)
	}
	if strings.Contains(resp.Message, "{region}") || strings.Contains(resp.Message, "{industry}") {
		t.Fatalf("placeholders left in message: %q", resp.Message)
	}
	if resp.Score != 65 || resp.IntentLevel != domain.IntentWarm {
		t.Fatalf("expected score fields echoed, got %+v", resp)
	}
	if resp.OriginalObjection != "seems expensive" {
		t.Fatalf("expected original text echoed, got %q", resp.OriginalObjection)
	}
}

func TestRespondFallsBackForUnknownContext(t *testing.T) {
	resp := Respond(domain.Lead{}, domain.ScoreResult{}, "just thinking")

	if resp.Category != CategoryGeneral {
		t.Fatalf("expected general category, got %s", resp.Category)
	}
	if resp.Region != "YOUR MARKET" {
		t.Fatalf("expected region fallback, got %q", resp.Region)
	}
	if resp.Industry != "your type of business" {
		t.Fatalf("expected industry fallback, got %q", resp.Industry)
	}
	if resp.RecommendedNextStep != "nurture" {
		t.Fatalf("expected nurture next step, got %q", resp.RecommendedNextStep)
	}
}
