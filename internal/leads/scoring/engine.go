// Package scoring computes a deterministic qualification score for a lead.
// The engine is a pure function of the lead and the injected rule
// vocabularies: no I/O, no retained state, safe for concurrent use.
package scoring

import (
	"strings"

	"sales360_backend/internal/leads/domain"
)

// Point weights of the additive rule system. All contributions are
// non-negative, so the floor of zero is implicit; the total is capped at 100.
const (
	pointsRegionUK      = 20
	pointsRegionDubai   = 15
	pointsRegionNigeria = 10
	pointsRegionOther   = 5

	pointsIndustryTierOne = 20
	pointsIndustrySME     = 15
	pointsIndustryB2B     = 10
	pointsIndustryOther   = 5

	pointsCompanyBrokerMatch = 20
	pointsEmailDomainMatch   = 10
	pointsSeniorTitle        = 10
	pointsDecisionMaker      = 15

	pointsEmailOpened     = 5
	pointsLinkClicked     = 15
	pointsWhatsAppReplied = 15

	pointsHighVolume    = 15
	pointsMediumVolume  = 10
	pointsQualifiedSize = 10

	pointsBudgetReady = 10
	pointsPainSignal  = 10

	pointsQualifiedSource  = 10
	pointsQualifiedChannel = 5

	maxScore = 100
)

// Engine scores leads against an injected rule set.
type Engine struct {
	rules Rules

	decisionMakers    map[string]struct{}
	tierOneIndustries map[string]struct{}
	qualifiedSizes    map[string]struct{}
	qualifiedSources  map[string]struct{}
	qualifiedChannels map[string]struct{}
}

// New creates a scoring engine for the given rule set.
func New(rules Rules) *Engine {
	return &Engine{
		rules:             rules,
		decisionMakers:    toSet(rules.DecisionMakers),
		tierOneIndustries: toSet(rules.TierOneIndustries),
		qualifiedSizes:    toSet(rules.QualifiedBusinessSizes),
		qualifiedSources:  toSet(rules.QualifiedLeadSources),
		qualifiedChannels: toSet(rules.QualifiedEntryChannels),
	}
}

// RulesVersion returns the version label of the active rule set.
func (e *Engine) RulesVersion() string {
	return e.rules.Version
}

// Score evaluates the lead and returns its score, intent tier, signal
// strength and call decision. It is total: absent fields contribute zero,
// and no input causes an error.
func (e *Engine) Score(lead domain.Lead) domain.ScoreResult {
	score := 0

	region := e.resolveRegion(lead)

	// Region
	switch region {
	case "uk":
		score += pointsRegionUK
	case "dubai":
		score += pointsRegionDubai
	case "nigeria":
		score += pointsRegionNigeria
	default:
		if region != "" {
			score += pointsRegionOther
		}
	}

	// Industry
	industry := norm(lead.IndustryType)
	if _, ok := e.tierOneIndustries[industry]; ok {
		score += pointsIndustryTierOne
	} else if industry == "sme" {
		score += pointsIndustrySME
	} else if industry == "b2b" {
		score += pointsIndustryB2B
	} else if industry != "" {
		score += pointsIndustryOther
	}

	// ICP fit: company name, email domain, title
	company := norm(lead.Company)
	if containsAnyKeyword(company, e.rules.BrokerKeywords) {
		score += pointsCompanyBrokerMatch
	}
	if emailDomainMatches(norm(lead.Email), e.rules.BrokerKeywords) {
		score += pointsEmailDomainMatch
	}
	if containsAnyKeyword(norm(lead.Title), e.rules.SeniorTitleKeywords) {
		score += pointsSeniorTitle
	}

	// Authority
	if _, ok := e.decisionMakers[norm(lead.DecisionLevel)]; ok {
		score += pointsDecisionMaker
	}

	// Behavior
	if lead.EmailOpened {
		score += pointsEmailOpened
	}
	if lead.LinkClicked {
		score += pointsLinkClicked
	}
	if lead.WhatsAppReplied {
		score += pointsWhatsAppReplied
	}

	// Volume and size
	if lead.MonthlyLeadVolume > 100 {
		score += pointsHighVolume
	} else if lead.MonthlyLeadVolume >= 30 {
		score += pointsMediumVolume
	}
	if _, ok := e.qualifiedSizes[norm(lead.BusinessSize)]; ok {
		score += pointsQualifiedSize
	}

	// Budget readiness
	if norm(lead.BudgetReadiness) == "yes" {
		score += pointsBudgetReady
	}

	// Pain signal
	if norm(lead.CurrentChallenges) != "" {
		score += pointsPainSignal
	}

	// Source and channel
	if _, ok := e.qualifiedSources[norm(lead.LeadSource)]; ok {
		score += pointsQualifiedSource
	}
	if _, ok := e.qualifiedChannels[norm(lead.EntryChannel)]; ok {
		score += pointsQualifiedChannel
	}

	if score > maxScore {
		score = maxScore
	}

	return classify(score)
}

// classify maps a clamped score onto the intent, call decision and signal
// strength tiers. Thresholds are evaluated high to low, first match wins.
func classify(score int) domain.ScoreResult {
	result := domain.ScoreResult{Score: score}

	switch {
	case score >= 80:
		result.IntentLevel = domain.IntentHot
		result.RecommendedAction = "Call Now"
		result.CallDecision = domain.CallNow
	case score >= 50:
		result.IntentLevel = domain.IntentWarm
		result.RecommendedAction = "Nurture + Call Later"
		result.CallDecision = domain.CallAfterIntake
	case score >= 30:
		result.IntentLevel = domain.IntentCold
		result.RecommendedAction = "Long Nurture"
		result.CallDecision = domain.NoCallForNow
	default:
		result.IntentLevel = domain.IntentCold
		result.RecommendedAction = "Low Priority / Disqualify"
		result.CallDecision = domain.NoCall
	}

	// Signal strength is an independent mapping. The 50..79 band reading
	// Medium while intent reads Warm at the same boundary is intentional.
	switch {
	case score >= 80:
		result.SignalStrength = domain.SignalHigh
	case score >= 50:
		result.SignalStrength = domain.SignalMedium
	default:
		result.SignalStrength = domain.SignalLow
	}

	return result
}

// resolveRegion returns the normalized country_region, inferring it from the
// free-text country only when country_region is empty.
func (e *Engine) resolveRegion(lead domain.Lead) string {
	region := norm(lead.CountryRegion)
	if region != "" {
		return region
	}

	country := norm(lead.Country)
	if country == "" {
		return ""
	}

	switch {
	case strings.Contains(country, "united kingdom"), country == "uk", strings.Contains(country, "england"):
		return "uk"
	case strings.Contains(country, "dubai"), strings.Contains(country, "uae"), strings.Contains(country, "united arab emirates"):
		return "dubai"
	case strings.Contains(country, "nigeria"):
		return "nigeria"
	}

	return ""
}

func norm(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, value := range values {
		set[norm(value)] = struct{}{}
	}
	return set
}

func containsAnyKeyword(text string, keywords []string) bool {
	if text == "" {
		return false
	}
	for _, keyword := range keywords {
		if keyword == "" {
			continue
		}
		if strings.Contains(text, norm(keyword)) {
			return true
		}
	}
	return false
}

// emailDomainMatches checks the part after "@" against broker keywords with
// dots, hyphens and spaces stripped, so "ic markets" matches "ic-markets.com".
func emailDomainMatches(email string, keywords []string) bool {
	at := strings.IndexByte(email, '@')
	if at < 0 {
		return false
	}

	domain := strings.NewReplacer(".", "", "-", "", " ", "").Replace(email[at+1:])
	if domain == "" {
		return false
	}

	for _, keyword := range keywords {
		compact := strings.ReplaceAll(norm(keyword), " ", "")
		if compact == "" {
			continue
		}
		if strings.Contains(domain, compact) {
			return true
		}
	}
	return false
}
