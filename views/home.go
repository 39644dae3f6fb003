package views

import (
	"context"
	"fmt"
	"log"

	"smartimmo/locale"
	"smartimmo/models"
	"smartimmo/state"
	"smartimmo/styles"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
)

type propertiesLoadedMsg struct {
	page       string
	seq        uint64
	properties []models.Property
	err        error
}

type favoritesLoadedMsg struct {
	page      string
	gen       uint64
	favorites []models.Favorite
	err       error
}

type favoriteToggledMsg struct {
	page       string
	propertyID int64
	added      bool
	err        error
}

type agentAnsweredMsg struct {
	page     string
	panelID  string
	response *models.AiResponse
	err      error
}

type homeFocus int

const (
	focusList homeFocus = iota
	focusFilters
	focusAssistant
)

const (
	sideColumnWidth = 46
	cardHeight      = 7
)

// HomePage lists properties and coordinates the filters panel, the cards
// and the assistant panel. Child components only emit messages; every
// backend call starts here.
type HomePage struct {
	id     string
	api    PropertiesAPI
	ai     Assistant
	timing Timing

	home  *state.Home
	fetch *state.Latest

	filters   FiltersPanel
	assistant AssistantPanel

	selected      int
	focus         homeFocus
	loading       bool
	width, height int
}

func NewHomePage(api PropertiesAPI, ai Assistant, timing Timing) HomePage {
	return HomePage{
		id:        uuid.NewString(),
		api:       api,
		ai:        ai,
		timing:    timing,
		home:      state.NewHome(),
		fetch:     &state.Latest{},
		filters:   NewFiltersPanel(),
		assistant: NewAssistantPanel(),
		loading:   true,
	}
}

// Init loads the unfiltered listing and the favorites side by side
func (h HomePage) Init() tea.Cmd {
	return tea.Batch(h.loadProperties(), h.loadFavorites())
}

func (h HomePage) State() *state.Home {
	return h.home
}

func (h HomePage) Filters() FiltersPanel {
	return h.filters
}

func (h HomePage) Assistant() AssistantPanel {
	return h.assistant
}

func (h HomePage) Selected() int {
	return h.selected
}

// Capturing reports whether keys are going to a text field
func (h HomePage) Capturing() bool {
	return h.focus != focusList
}

// Close cancels the pending listing fetch and disposes the assistant panel
func (h *HomePage) Close() {
	h.fetch.Cancel()
	h.assistant.Close()
}

func (h HomePage) SetSize(w, ht int) HomePage {
	h.width = w
	h.height = ht
	h.assistant.SetWidth(sideColumnWidth - 2)
	return h
}

func (h HomePage) loadProperties() tea.Cmd {
	ctx, seq := h.fetch.Next(context.Background())
	filters := h.home.Filters()
	page := h.id
	api := h.api
	return func() tea.Msg {
		props, err := api.GetProperties(ctx, filters)
		return propertiesLoadedMsg{page: page, seq: seq, properties: props, err: err}
	}
}

func (h HomePage) loadFavorites() tea.Cmd {
	page := h.id
	gen := h.home.FavoritesGeneration()
	api := h.api
	return func() tea.Msg {
		favs, err := api.ListFavorites(context.Background())
		return favoritesLoadedMsg{page: page, gen: gen, favorites: favs, err: err}
	}
}

func (h HomePage) toggleFavorite(p models.Property) tea.Cmd {
	if !h.home.BeginToggle(p.ID) {
		log.Printf("Home: toggle for property %d already in flight", p.ID)
		return nil
	}
	page := h.id
	api := h.api
	if h.home.IsFavorite(p.ID) {
		return func() tea.Msg {
			err := api.RemoveFavorite(context.Background(), p.ID)
			return favoriteToggledMsg{page: page, propertyID: p.ID, added: false, err: err}
		}
	}
	return func() tea.Msg {
		_, err := api.AddFavorite(context.Background(), p.ID)
		return favoriteToggledMsg{page: page, propertyID: p.ID, added: true, err: err}
	}
}

// handleAgentQuery puts panel panelID into loading and asks the assistant.
// The answer comes back as an AgentResponseMsg for the same panel.
func (h *HomePage) handleAgentQuery(panelID, prompt string) tea.Cmd {
	h.routeToAssistant(AgentLoadingMsg{PanelID: panelID, Loading: true})

	page := h.id
	ai := h.ai
	return func() tea.Msg {
		res, err := ai.Ask(context.Background(), prompt)
		return agentAnsweredMsg{page: page, panelID: panelID, response: res, err: err}
	}
}

func (h *HomePage) routeToAssistant(msg tea.Msg) {
	h.assistant, _ = h.assistant.Update(msg)
}

func (h HomePage) Update(msg tea.Msg) (HomePage, tea.Cmd) {
	switch msg := msg.(type) {
	case propertiesLoadedMsg:
		if msg.page != h.id {
			return h, nil
		}
		if !h.fetch.IsCurrent(msg.seq) {
			log.Printf("Home: dropping superseded properties response #%d", msg.seq)
			return h, nil
		}
		h.fetch.Done(msg.seq)
		h.loading = false
		if msg.err != nil {
			log.Printf("Home: load properties failed: %v", msg.err)
			return h, ShowToast(locale.T(locale.PropertiesLoadFailed), ToastError, h.timing.Long)
		}
		h.home.ReplaceProperties(msg.properties)
		h.clampSelection()

	case favoritesLoadedMsg:
		if msg.page != h.id {
			return h, nil
		}
		if !h.home.FavoritesCurrent(msg.gen) {
			// a toggle was confirmed after this list was requested
			log.Printf("Home: dropping favorites list older than the last toggle")
			return h, nil
		}
		if msg.err != nil {
			log.Printf("Home: load favorites failed: %v", msg.err)
			h.home.ClearFavorites()
			return h, nil
		}
		h.home.SyncFavorites(msg.favorites)

	case FiltersChangedMsg:
		if msg.PanelID != h.filters.ID() {
			return h, nil
		}
		h.home.ApplyFilters(msg.Filters)
		h.filters.SetFilters(msg.Filters)
		h.loading = true
		return h, h.loadProperties()

	case FavoriteToggleMsg:
		return h, h.toggleFavorite(msg.Property)

	case favoriteToggledMsg:
		if msg.page != h.id {
			return h, nil
		}
		h.home.EndToggle(msg.propertyID)
		if msg.err != nil {
			log.Printf("Home: toggle favorite %d failed: %v", msg.propertyID, msg.err)
			return h, ShowToast(locale.T(locale.FavoriteToggleFailed), ToastError, h.timing.Long)
		}
		if msg.added {
			h.home.MarkFavorite(msg.propertyID)
			return h, ShowToast(locale.T(locale.FavoriteAdded), ToastInfo, h.timing.Short)
		}
		h.home.UnmarkFavorite(msg.propertyID)
		return h, ShowToast(locale.T(locale.FavoriteRemoved), ToastInfo, h.timing.Short)

	case AgentQueryMsg:
		cmd := h.handleAgentQuery(msg.PanelID, msg.Prompt)
		return h, cmd

	case agentAnsweredMsg:
		if msg.page != h.id {
			return h, nil
		}
		if msg.err != nil || msg.response == nil {
			log.Printf("Home: assistant query failed: %v", msg.err)
			h.routeToAssistant(AgentResponseMsg{PanelID: msg.panelID, Text: locale.T(locale.AssistantUnavailable)})
			return h, ShowToast(locale.T(locale.AssistantFailed), ToastError, h.timing.Long)
		}
		h.routeToAssistant(AgentResponseMsg{PanelID: msg.panelID, Text: msg.response.Response})

	case AgentLoadingMsg, AgentResponseMsg:
		h.routeToAssistant(msg)

	case tea.WindowSizeMsg:
		h = h.SetSize(msg.Width, msg.Height)

	case tea.KeyMsg:
		return h.handleKey(msg)
	}
	return h, nil
}

func (h HomePage) handleKey(msg tea.KeyMsg) (HomePage, tea.Cmd) {
	var cmd tea.Cmd

	switch h.focus {
	case focusFilters:
		if msg.String() == "esc" {
			h.filters.Blur()
			h.focus = focusList
			return h, nil
		}
		h.filters, cmd = h.filters.Update(msg)
		return h, cmd

	case focusAssistant:
		if msg.String() == "esc" {
			h.assistant.Blur()
			h.focus = focusList
			return h, nil
		}
		h.assistant, cmd = h.assistant.Update(msg)
		return h, cmd
	}

	props := h.home.Properties()
	switch msg.String() {
	case "down", "j":
		if h.selected < len(props)-1 {
			h.selected++
		}
	case "up", "k":
		if h.selected > 0 {
			h.selected--
		}
	case "home", "g":
		h.selected = 0
	case "end", "G":
		if len(props) > 0 {
			h.selected = len(props) - 1
		}
	case "f":
		if card, ok := h.selectedCard(); ok {
			return h, card.ToggleFavorite()
		}
	case "enter":
		if len(props) > 0 {
			return h, Navigate(PropertyPath(props[h.selected].ID))
		}
	case "/":
		h.focus = focusFilters
		h.filters.Focus()
	case "a":
		h.focus = focusAssistant
		h.assistant.Focus()
	}
	return h, nil
}

func (h *HomePage) clampSelection() {
	n := len(h.home.Properties())
	if h.selected >= n {
		h.selected = n - 1
	}
	if h.selected < 0 {
		h.selected = 0
	}
}

func (h HomePage) selectedCard() (PropertyCard, bool) {
	props := h.home.Properties()
	if len(props) == 0 {
		return PropertyCard{}, false
	}
	p := props[h.selected]
	return NewPropertyCard(p, h.home.IsFavorite(p.ID)), true
}

func (h HomePage) visibleCards() int {
	if h.height <= 0 {
		return 3
	}
	n := (h.height - 2) / cardHeight
	if n < 1 {
		n = 1
	}
	return n
}

func (h HomePage) View() string {
	props := h.home.Properties()
	header := styles.Title.Render(locale.T(locale.HomeTitle)) +
		styles.Muted.Render(fmt.Sprintf("  %d", len(props)))
	if h.loading {
		header += styles.Muted.Render("  …")
	}

	listWidth := h.width - sideColumnWidth - 2
	if listWidth < 40 {
		listWidth = 40
	}

	var cards []string
	if len(props) == 0 {
		cards = append(cards, styles.Muted.Render(locale.T(locale.HomeEmpty)))
	} else {
		visible := h.visibleCards()
		start := 0
		if h.selected >= visible {
			start = h.selected - visible + 1
		}
		end := start + visible
		if end > len(props) {
			end = len(props)
		}
		for i := start; i < end; i++ {
			card := NewPropertyCard(props[i], h.home.IsFavorite(props[i].ID))
			card.Selected = i == h.selected && h.focus == focusList
			card.Width = listWidth - 4
			cards = append(cards, card.View())
		}
	}
	list := lipgloss.JoinVertical(lipgloss.Left, append([]string{header}, cards...)...)

	side := lipgloss.JoinVertical(lipgloss.Left, h.filters.View(), "", h.assistant.View())
	side = lipgloss.NewStyle().Width(sideColumnWidth).Render(side)

	return lipgloss.JoinHorizontal(lipgloss.Top, side, "  ", list)
}
