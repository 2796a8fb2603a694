package domain

// IntentLevel is the coarse qualification tier derived from the score.
type IntentLevel string

const (
	IntentHot  IntentLevel = "Hot"
	IntentWarm IntentLevel = "Warm"
	IntentCold IntentLevel = "Cold"
)

// SignalStrength is a confidence tier derived from the score, independent of
// the intent mapping.
type SignalStrength string

const (
	SignalHigh   SignalStrength = "High"
	SignalMedium SignalStrength = "Medium"
	SignalLow    SignalStrength = "Low"
)

// CallDecision says whether and when the lead should be called.
type CallDecision string

const (
	CallNow         CallDecision = "call_now"
	CallAfterIntake CallDecision = "call_after_intake"
	NoCallForNow    CallDecision = "no_call_for_now"
	NoCall          CallDecision = "no_call"
)

// ScoreResult is the outcome of one scoring pass over a lead.
// The score is clamped to [0,100].
type ScoreResult struct {
	Score             int            `json:"score"`
	IntentLevel       IntentLevel    `json:"intent_level"`
	SignalStrength    SignalStrength `json:"signal_strength"`
	RecommendedAction string         `json:"recommended_action"`
	CallDecision      CallDecision   `json:"call_decision"`
}
