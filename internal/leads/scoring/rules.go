package scoring

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Rules holds the keyword vocabularies the scoring engine matches leads
// against. They are data, not logic: operators can retune them from a YAML
// file without touching the engine.
type Rules struct {
	// Version labels the rule set for debugging and decision timelines.
	Version string `yaml:"version"`

	// BrokerKeywords are brand names that mark a company, or an email
	// domain, as an ideal-customer-profile fit.
	BrokerKeywords []string `yaml:"broker_keywords"`

	// SeniorTitleKeywords mark a job title as senior enough to matter.
	SeniorTitleKeywords []string `yaml:"senior_title_keywords"`

	// DecisionMakers are decision_level values that indicate authority.
	DecisionMakers []string `yaml:"decision_makers"`

	// TierOneIndustries get the full industry bonus.
	TierOneIndustries []string `yaml:"tier_one_industries"`

	// QualifiedBusinessSizes are the size buckets worth a bonus.
	QualifiedBusinessSizes []string `yaml:"qualified_business_sizes"`

	// QualifiedLeadSources and QualifiedEntryChannels are the source and
	// channel allowlists.
	QualifiedLeadSources   []string `yaml:"qualified_lead_sources"`
	QualifiedEntryChannels []string `yaml:"qualified_entry_channels"`
}

// DefaultRules returns the compiled-in rule set.
func DefaultRules() Rules {
	return Rules{
		Version: "2026-v1",
		BrokerKeywords: []string{
			"exness", "ic markets", "icmarkets", "pepperstone", "xm", "fxcm", "ig",
			"oanda", "forex.com", "plus500", "etoro", "eightcap", "vt markets", "vantage",
		},
		SeniorTitleKeywords: []string{
			"founder", "co-founder", "ceo", "chief", "cmo", "cro", "vp",
			"head", "director", "partner", "owner",
		},
		DecisionMakers: []string{
			"owner", "founder", "ceo", "decision maker", "decisionmaker",
		},
		TierOneIndustries: []string{
			"fx/crypto", "fx", "cfd", "brokerage",
		},
		QualifiedBusinessSizes: []string{
			"6-20", "21-50", "51+",
		},
		QualifiedLeadSources: []string{
			"partner", "inbound demo", "website", "referral",
		},
		QualifiedEntryChannels: []string{
			"dm", "website", "referral",
		},
	}
}

// LoadRules reads a YAML rule file and merges it over the defaults.
// Missing keys keep their default vocabulary. An empty path returns the
// defaults unchanged.
func LoadRules(path string) (Rules, error) {
	rules := DefaultRules()
	if strings.TrimSpace(path) == "" {
		return rules, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Rules{}, fmt.Errorf("read scoring rules: %w", err)
	}

	var overrides Rules
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return Rules{}, fmt.Errorf("parse scoring rules: %w", err)
	}

	if overrides.Version != "" {
		rules.Version = overrides.Version
	}
	if len(overrides.BrokerKeywords) > 0 {
		rules.BrokerKeywords = overrides.BrokerKeywords
	}
	if len(overrides.SeniorTitleKeywords) > 0 {
		rules.SeniorTitleKeywords = overrides.SeniorTitleKeywords
	}
	if len(overrides.DecisionMakers) > 0 {
		rules.DecisionMakers = overrides.DecisionMakers
	}
	if len(overrides.TierOneIndustries) > 0 {
		rules.TierOneIndustries = overrides.TierOneIndustries
	}
	if len(overrides.QualifiedBusinessSizes) > 0 {
		rules.QualifiedBusinessSizes = overrides.QualifiedBusinessSizes
	}
	if len(overrides.QualifiedLeadSources) > 0 {
		rules.QualifiedLeadSources = overrides.QualifiedLeadSources
	}
	if len(overrides.QualifiedEntryChannels) > 0 {
		rules.QualifiedEntryChannels = overrides.QualifiedEntryChannels
	}

	return rules, nil
}
