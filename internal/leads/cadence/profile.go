package cadence

import (
	"strings"

	"sales360_backend/internal/leads/domain"
)

// profileFor computes the touch-frequency policy for a lead. Warm raises the
// baseline, Hot raises it further (checked after Warm, so Hot wins), a High
// signal on a Hot lead adds a touch, and Hot leads in Dubai or Nigeria get
// one more on top.
func profileFor(intent domain.IntentLevel, signal domain.SignalStrength, region string) domain.CadenceProfile {
	profile := domain.CadenceProfile{
		Level:                 "low",
		MaxTouchesPerWeek:     1,
		MinDaysBetweenTouches: 4,
	}

	if intent == domain.IntentWarm {
		profile = domain.CadenceProfile{
			Level:                 "medium",
			MaxTouchesPerWeek:     2,
			MinDaysBetweenTouches: 2,
		}
	}

	if intent == domain.IntentHot {
		profile = domain.CadenceProfile{
			Level:                 "high",
			MaxTouchesPerWeek:     3,
			MinDaysBetweenTouches: 1,
		}
	}

	if intent == domain.IntentHot && signal == domain.SignalHigh {
		profile.MaxTouchesPerWeek = 4
	}

	upper := strings.ToUpper(strings.TrimSpace(region))
	if (upper == "DUBAI" || upper == "NIGERIA") && intent == domain.IntentHot {
		profile.MaxTouchesPerWeek++
	}

	return profile
}
