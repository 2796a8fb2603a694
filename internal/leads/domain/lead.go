// Package domain holds the value objects of the lead decision pipeline.
// Every type here is a passive record: the scoring, routing and cadence
// engines are pure functions over these inputs and never mutate them.
package domain

// Lead represents one prospective customer. All fields are optional; an
// empty value contributes nothing to scoring. The record is immutable input
// for one evaluation call.
type Lead struct {
	FullName string `json:"full_name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Company  string `json:"company,omitempty"`
	Title    string `json:"title,omitempty"`
	Country  string `json:"country,omitempty"`

	CountryRegion      string   `json:"country_region,omitempty"`
	IndustryType       string   `json:"industry_type,omitempty"`
	LeadSource         string   `json:"lead_source,omitempty"`
	EntryChannel       string   `json:"entry_channel,omitempty"`
	BusinessSize       string   `json:"business_size,omitempty"`
	MonthlyLeadVolume  int      `json:"monthly_lead_volume,omitempty"`
	BudgetReadiness    string   `json:"budget_readiness,omitempty"`
	DecisionLevel      string   `json:"decision_level,omitempty"`
	CurrentChallenges  string   `json:"current_challenges,omitempty"`
	InterestedServices []string `json:"interested_services,omitempty"`
	UTMSource          string   `json:"utm_source,omitempty"`
	UTMMedium          string   `json:"utm_medium,omitempty"`

	EmailOpened     bool `json:"email_opened,omitempty"`
	LinkClicked     bool `json:"link_clicked,omitempty"`
	WhatsAppReplied bool `json:"whatsapp_replied,omitempty"`
}
