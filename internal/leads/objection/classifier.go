// Package objection classifies free-text sales objections into a closed
// category set and selects a scripted response for each. Classification is
// keyword matching over the lowercased text, checked in a fixed order so the
// more specific categories win over the generic ones.
package objection

import (
	"strings"

	"sales360_backend/internal/leads/domain"
)

// Category is a recognised objection type.
type Category string

const (
	CategoryPrice      Category = "price"
	CategoryBudget     Category = "budget"
	CategoryInfo       Category = "info"
	CategoryTiming     Category = "timing"
	CategoryCompetitor Category = "competitor"
	CategoryRisk       Category = "risk"
	CategoryLeadVolume Category = "lead_volume"
	CategoryPriority   Category = "priority"
	CategoryAuthority  Category = "authority"
	CategoryTrust      Category = "trust"
	CategoryGeneral    Category = "general"
)

var competitorKeywords = []string{
	"hubspot", "zoho", "gohighlevel", "highlevel", "pipedrive",
	"salesforce", "freshsales", "creatio", "clickup",
	"monday", "zendesk", "crm",
}

// Classify maps an objection text onto a category.
func Classify(objection string) Category {
	text := strings.ToLower(objection)

	contains := func(substrings ...string) bool {
		for _, s := range substrings {
			if strings.Contains(text, s) {
				return true
			}
		}
		return false
	}

	switch {
	case contains("expensive", "cost", "price"):
		return CategoryPrice
	case contains("budget", "can't afford", "no money"):
		return CategoryBudget
	case strings.Contains(text, "send") && contains("info") || contains("information"):
		return CategoryInfo
	case contains("later", "not a good time", "timing"):
		return CategoryTiming
	case contains(competitorKeywords...):
		return CategoryCompetitor
	case strings.Contains(text, "already") && contains("tool", "crm", "using"):
		return CategoryCompetitor
	case contains("not sure", "does it work", "work for us"):
		return CategoryRisk
	case contains("not enough leads", "low leads"):
		return CategoryLeadVolume
	case contains("not a priority", "priority"):
		return CategoryPriority
	case contains("boss", "manager", "partner", "approval"):
		return CategoryAuthority
	case contains("who are you", "never heard", "trust"):
		return CategoryTrust
	}

	return CategoryGeneral
}

// Response is an objection-aware reply with delivery guidance.
type Response struct {
	Category            Category           `json:"category"`
	Tone                string             `json:"tone"`
	Message             string             `json:"message"`
	RecommendedNextStep string             `json:"recommended_next_step"`
	Score               int                `json:"score"`
	IntentLevel         domain.IntentLevel `json:"intent_level"`
	Region              string             `json:"region"`
	Industry            string             `json:"industry"`
	OriginalObjection   string             `json:"original_objection"`
}

// Respond classifies the objection and builds the scripted response for it.
func Respond(lead domain.Lead, score domain.ScoreResult, objectionText string) Response {
	category := Classify(objectionText)

	region := strings.ToUpper(strings.TrimSpace(lead.CountryRegion))
	if region == "" {
		region = "YOUR MARKET"
	}
	industry := lead.IndustryType
	if strings.TrimSpace(industry) == "" {
		industry = "your type of business"
	}

	script := scripts[category]
	if script.message == "" {
		script = scripts[CategoryGeneral]
	}

	return Response{
		Category:            category,
		Tone:                script.tone,
		Message:             strings.ReplaceAll(strings.ReplaceAll(script.message, "{industry}", industry), "{region}", region),
		RecommendedNextStep: script.nextStep,
		Score:               score.Score,
		IntentLevel:         score.IntentLevel,
		Region:              region,
		Industry:            industry,
		OriginalObjection:   objectionText,
	}
}

type responseScript struct {
	tone     string
	message  string
	nextStep string
}

var scripts = map[Category]responseScript{
	CategoryPrice: {
		tone:     "gentle_consultant",
		nextStep: "book_strategy_call",
		message: "I completely understand you - pricing should always be something you think through properly.\n\n" +
			"Most of the businesses we help felt the same way at the beginning, until they realised how much revenue was slipping away through leads not being followed up fast enough and opportunities that simply never came back.\n\n" +
			"Sales360 is designed to pay for itself by fixing these gaps, not by increasing your workload or costs.\n\n" +
			"What I usually suggest is a quick 10-minute ROI walkthrough - we'll map out the real revenue potential for a {industry} business in {region} like yours, and then you decide if it makes sense.\n\n" +
			"Would you be open to seeing that breakdown?",
	},
	CategoryBudget: {
		tone:     "gentle_consultant",
		nextStep: "nurture",
		message: "Totally fair - if the budget isn't available right now, forcing a decision is never helpful.\n\n" +
			"What works really well for many of our clients in this exact situation is starting very small: one agent, one automated follow-up sequence, one conversion gap we fix quickly.\n\n" +
			"Even this light setup often recovers enough revenue to fund the full rollout later.\n\n" +
			"Would you be open to a simple, no-pressure planning chat about what a phased rollout could look like?",
	},
	CategoryInfo: {
		tone:     "friendly_consultative",
		nextStep: "nurture",
		message: "Absolutely - I can definitely send more information.\n\n" +
			"Just so I don't send a generic brochure, what angle would you like the info to focus on: lead capture automation, WhatsApp + email follow-up, AI sales agents, or the full Sales360 setup?\n\n" +
			"A quick one-liner helps me tailor the exact walkthrough you need.",
	},
	CategoryTiming: {
		tone:     "gentle_push",
		nextStep: "nurture",
		message: "That makes sense - timing matters.\n\n" +
			"One thing worth considering: follow-up gaps don't pause while things are busy, they usually get worse. " +
			"A light setup now often saves the exact time you're short on.\n\n" +
			"Would it help if I pencilled in a short chat for a quieter week, with zero commitment?",
	},
	CategoryCompetitor: {
		tone:     "strategic_advisor",
		nextStep: "book_strategy_call",
		message: "Good to hear you already have tooling in place - that usually means the basics are covered.\n\n" +
			"Where Sales360 tends to add value on top of an existing CRM is the follow-up layer: automated WhatsApp + email sequences and agents that qualify and book calls without manual work.\n\n" +
			"Would you be open to a short side-by-side look at what your current setup leaves on the table?",
	},
	CategoryRisk: {
		tone:     "reassuring",
		nextStep: "pilot_offer",
		message: "That's a completely fair question - you shouldn't commit to something unproven for your situation.\n\n" +
			"That's exactly why we usually start with a small pilot: one flow, measurable results, and a clear before/after for a {industry} business in {region}.\n\n" +
			"If the pilot doesn't show a difference, you'll know quickly and cheaply. Want me to outline what that pilot would look like?",
	},
	CategoryLeadVolume: {
		tone:     "gentle_consultant",
		nextStep: "nurture",
		message: "Understood - if lead volume feels low, squeezing more from each lead matters even more.\n\n" +
			"Most low-volume businesses we help lose a surprising share of the leads they do get to slow or inconsistent follow-up. Fixing that is usually the cheapest growth available.\n\n" +
			"Would a quick review of where your current leads drop off be useful?",
	},
	CategoryPriority: {
		tone:     "professional_consultant",
		nextStep: "book_strategy_call",
		message: "Fair enough - priorities have to be earned.\n\n" +
			"The reason clients often bump this up the list: follow-up automation compounds. Every week it's not running, leads that cost you money go cold for free.\n\n" +
			"Happy to make the case in 15 minutes and let you judge whether it deserves a priority slot. Shall we?",
	},
	CategoryAuthority: {
		tone:     "gentle_consultant",
		nextStep: "send_internal_summary",
		message: "Of course - decisions like this usually involve more people.\n\n" +
			"To make that conversation easy, I can send you a short internal summary: what Sales360 does, what it would change for a {industry} business like yours, and the expected return.\n\n" +
			"Would that be helpful to share with them?",
	},
	CategoryTrust: {
		tone:     "reassuring",
		nextStep: "book_walkthrough",
		message: "Completely reasonable - you should know who you're dealing with.\n\n" +
			"Sales360 builds sales automation for businesses in {region} and beyond, and everything we propose starts with a transparent walkthrough - no lock-in, no pressure.\n\n" +
			"Would a short live walkthrough help you judge us properly?",
	},
	CategoryGeneral: {
		tone:     "neutral_consultative",
		nextStep: "nurture",
		message: "Thanks for sharing that - it's useful context.\n\n" +
			"If you're open to it, we can walk through your situation together and see what makes the most sense.\n\n" +
			"No pressure - just clarity.",
	},
}
