package dispatch

import (
	"fmt"
	"strings"

	"sales360_backend/internal/leads/domain"
)

// Re-engagement inactivity buckets, in days.
const (
	reengageShortGap = 7
	reengageLongGap  = 30
)

// Catalog is the built-in Templates implementation. The wording lives here
// so product can edit copy without touching dispatch logic.
type Catalog struct{}

// NewCatalog creates the built-in template catalog.
func NewCatalog() *Catalog {
	return &Catalog{}
}

// Compile-time check that Catalog implements Templates.
var _ Templates = (*Catalog)(nil)

// Intake is the first-touch message welcoming a brand new lead and asking
// qualification questions.
func (t *Catalog) Intake(lead domain.Lead) ActionPayload {
	message := "Hi there!\n\n" +
		"Thanks for reaching out about improving your sales process.\n\n" +
		"I'm your Sales360 assistant. A few quick questions so I can understand your situation better:\n" +
		"1) What type of business are you running? (e.g. FX brokerage, SME, B2B service)\n" +
		"2) On average, how many leads do you get per month?\n" +
		"3) Are you currently using any CRM or automation tool?\n\n" +
		"Reply here and I'll recommend the best setup for you."

	return ActionPayload{
		Agent:             domain.AgentIntake,
		ChannelSuggestion: "whatsapp + email",
		MessageType:       "first_touch",
		Message:           message,
		Notes:             "Used for brand new leads to collect more context.",
	}
}

// Nurture warms up Warm or Cold leads.
func (t *Catalog) Nurture(lead domain.Lead, score domain.ScoreResult) ActionPayload {
	message := "Hi!\n\n" +
		"Based on what you've shared, I can already see a few quick wins we could unlock in your sales funnel.\n\n" +
		"With Sales360, we usually help businesses like yours:\n" +
		"- Capture every lead automatically\n" +
		"- Follow up on WhatsApp + email without manual work\n" +
		"- Use AI agents to qualify leads and book calls for you\n\n" +
		"If I showed you a 10-15 minute walkthrough of how this would work for your business, would that be useful?"

	return ActionPayload{
		Agent:             domain.AgentNurture,
		ChannelSuggestion: "whatsapp + email",
		MessageType:       "nurture",
		Message:           message,
		Notes:             fmt.Sprintf("Nurture for %s lead with score %d.", score.IntentLevel, score.Score),
	}
}

// CallScript is the call script for Hot leads, readable by an AI voice or a
// human SDR.
func (t *Catalog) CallScript(lead domain.Lead, score domain.ScoreResult) ActionPayload {
	region := fallback(lead.CountryRegion, "your region")
	industry := fallback(lead.IndustryType, "your type of business")

	script := "Hi, this is the Sales360 sales assistant calling.\n" +
		"Thanks for your interest in automating your sales process.\n\n" +
		fmt.Sprintf("I understand you're based in %s and running a %s business.\n", region, industry) +
		"To make sure we recommend the right setup, could you tell me:\n" +
		"- How you're currently generating leads?\n" +
		"- What your biggest frustration is with follow-ups right now?\n" +
		"\nThank you, that helps a lot.\n" +
		"Based on what you've shared, the next best step is a short strategy call with a human specialist who can map out your exact Sales360 setup.\n\n" +
		"Would you prefer a morning or afternoon slot this week?"

	return ActionPayload{
		Agent:       domain.AgentAICall,
		MessageType: "call_script",
		Script:      script,
		Notes:       "Use this for Hot leads. Can be read by AI voice or human SDR.",
	}
}

// Appointment locks in a specific call time. Tone adapts to intent: Hot
// leads get near-term slots, Warm leads a softer this-week ask.
func (t *Catalog) Appointment(lead domain.Lead, score domain.ScoreResult) ActionPayload {
	region := fallback(strings.ToUpper(strings.TrimSpace(lead.CountryRegion)), "YOUR MARKET")
	industry := fallback(lead.IndustryType, "your type of business")

	var message, notes string
	if score.IntentLevel == domain.IntentHot {
		message = "Brilliant - let's lock in a quick strategy session so we don't lose momentum.\n\n" +
			fmt.Sprintf("For your %s business in %s, we'll use this call to:\n", industry, region) +
			"- Map your ideal Sales360 flow\n" +
			"- Highlight the quickest wins\n" +
			"- Show you exactly how the AI agents would work day-to-day\n\n" +
			"Here are a few slots you can pick from:\n" +
			"- Today or tomorrow morning\n" +
			"- Today or tomorrow afternoon\n" +
			"- Or a specific time that works better for you\n\n" +
			"Reply with your preferred option and we'll confirm the calendar invite."
		notes = "High-intent lead. Offer very near-term slots and clear next step."
	} else {
		message = "Great - the next simple step is to schedule a short Sales360 strategy session.\n\n" +
			fmt.Sprintf("We'll walk through your current %s setup in %s and:\n", industry, region) +
			"- Identify where leads are being lost\n" +
			"- Show how automation can plug those gaps\n" +
			"- Outline a realistic rollout that fits your stage\n\n" +
			"You can reply with a morning window, an afternoon window, or a specific day and time that suits you.\n\n" +
			"Once you share that, we'll confirm and send over a calendar invite."
		notes = "Warm lead. Encourage booking this week with flexible time options."
	}

	return ActionPayload{
		Agent:             domain.AgentAppointment,
		ChannelSuggestion: "whatsapp",
		MessageType:       "appointment",
		Message:           message,
		Notes:             notes,
	}
}

// PostCallFollowup selects among the post-call template variants by scenario.
// Unknown scenarios fall back to a generic check-in marked as the default
// variant.
func (t *Catalog) PostCallFollowup(lead domain.Lead, scenario domain.Scenario, lastTouchChannel string) ActionPayload {
	payload := ActionPayload{
		Agent:             domain.AgentPostCallFollowup,
		ChannelSuggestion: fallback(lastTouchChannel, "whatsapp"),
	}

	switch scenario {
	case domain.ScenarioConfirmation:
		payload.MessageType = "post_call_confirmation"
		payload.Message = "Your strategy session is booked. You'll get a calendar invite shortly - " +
			"if anything changes, just reply here and we'll move it."
		payload.Notes = "Confirm the booked slot and keep the channel open."
	case domain.ScenarioReminder:
		payload.MessageType = "post_call_reminder"
		payload.Message = "Quick reminder about your upcoming Sales360 call. " +
			"Looking forward to walking through your setup - reply here if the time no longer works."
		payload.Notes = "Gentle nudge before the scheduled call."
	case domain.ScenarioMissedCall:
		payload.MessageType = "post_call_missed_call"
		payload.Message = "We tried to reach you earlier but couldn't get through. " +
			"No problem - reply with a better time and we'll call you then."
		payload.Notes = "Call attempted, not picked. Offer an easy reschedule."
	case domain.ScenarioNoShow:
		payload.MessageType = "post_call_no_show"
		payload.Message = "We missed you at the session earlier. These things happen - " +
			"would you like to pick a new slot? Just reply with a day and time."
		payload.Notes = "Lead did not attend. Reschedule without friction."
	case domain.ScenarioAfterCall:
		payload.MessageType = "post_call_after_call"
		payload.Message = "Great speaking with you today. As discussed, I'll send over the setup outline - " +
			"meanwhile, reply here with any questions that come up."
		payload.Notes = "Recap and next steps after a successful call."
	default:
		payload.MessageType = "post_call_default"
		payload.Message = "Just following up on our recent conversation - reply here whenever suits you."
		payload.Notes = "Generic post-call check-in."
	}

	return payload
}

// Reengagement picks the re-engagement variant from the inactivity gap:
// a light nudge up to a week, a value reminder up to a month, and a final
// long-gap message beyond that.
func (t *Catalog) Reengagement(lead domain.Lead, daysInactive int, lastTouchChannel string) ActionPayload {
	payload := ActionPayload{
		Agent:             domain.AgentReengagement,
		ChannelSuggestion: fallback(lastTouchChannel, "email"),
	}

	switch {
	case daysInactive <= reengageShortGap:
		payload.MessageType = "reengagement_light"
		payload.Message = "Just circling back on improving your sales follow-up - " +
			"still happy to show you the quick walkthrough whenever you have 10 minutes."
		payload.Notes = "Short gap. Light nudge, no pressure."
	case daysInactive <= reengageLongGap:
		payload.MessageType = "reengagement_value"
		payload.Message = "It's been a little while since we spoke about your sales process. " +
			"Since then we've helped similar businesses recover leads that were slipping through follow-up gaps - " +
			"if that's still a priority for you, I'd love to pick the conversation back up."
		payload.Notes = "Medium gap. Lead with value, invite to resume."
	default:
		payload.MessageType = "reengagement_final"
		payload.Message = "It's been a while! If improving your sales follow-up is back on the agenda, " +
			"reply here and we'll start fresh with a quick walkthrough. " +
			"If now isn't the time, no problem at all."
		payload.Notes = "Long gap. Final low-pressure re-engagement."
	}

	return payload
}

// MinimalTouch is the occasional soft check-in for very low priority leads.
func (t *Catalog) MinimalTouch(lead domain.Lead) ActionPayload {
	return ActionPayload{
		Agent:       domain.AgentMinimalTouch,
		MessageType: "minimal_touch",
		Message: "Just checking in quickly - if you'd still like help improving your sales process, " +
			"you can reply here anytime and we'll pick things up.",
		Notes: "Low-priority / long-term nurture touch.",
	}
}

func fallback(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return value
}
