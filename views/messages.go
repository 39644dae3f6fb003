package views

import "smartimmo/models"

// FiltersChangedMsg is emitted by filters panel PanelID on submit and reset
type FiltersChangedMsg struct {
	PanelID string
	Filters models.PropertyFilters
}

// FavoriteToggleMsg is a card's request to flip a property's favorite state
type FavoriteToggleMsg struct {
	Property models.Property
}

// AgentQueryMsg carries a prompt from the assistant panel identified by PanelID
type AgentQueryMsg struct {
	PanelID string
	Prompt  string
}

type AgentLoadingMsg struct {
	PanelID string
	Loading bool
}

// AgentResponseMsg delivers the text to show in panel PanelID
type AgentResponseMsg struct {
	PanelID string
	Text    string
}
