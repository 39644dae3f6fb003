package views

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartimmo/locale"
	"smartimmo/models"
)

// deliver runs cmd, feeds what it produces back into the page and returns
// the messages emitted in response
func deliver(h HomePage, cmd tea.Cmd) (HomePage, []tea.Msg) {
	var out []tea.Msg
	for _, msg := range drain(cmd) {
		var next tea.Cmd
		h, next = h.Update(msg)
		out = append(out, drain(next)...)
	}
	return h, out
}

func loadedHome(t *testing.T, api *fakeAPI, ai *fakeAssistant) HomePage {
	t.Helper()
	h := NewHomePage(api, ai, DefaultTiming)
	h, out := deliver(h, h.Init())
	require.Empty(t, toasts(out))
	return h
}

func TestHomeInitLoadsPropertiesAndFavorites(t *testing.T) {
	api := &fakeAPI{
		properties: func(models.PropertyFilters) ([]models.Property, error) {
			return []models.Property{property(1, "Villa", "Lomé"), property(2, "Studio", "Kara")}, nil
		},
		favorites: []models.Favorite{{ID: 30, Property: property(2, "Studio", "Kara")}},
	}
	h := loadedHome(t, api, &fakeAssistant{})

	assert.Len(t, h.State().Properties(), 2)
	assert.Equal(t, []int64{2}, h.State().FavoriteIDs())
	assert.Equal(t, []models.PropertyFilters{{}}, api.propertyQueries)
	assert.Contains(t, h.View(), "Villa")
}

func TestHomeInitPropertiesFailure(t *testing.T) {
	api := &fakeAPI{
		properties: func(models.PropertyFilters) ([]models.Property, error) {
			return nil, errBackend
		},
	}
	h := NewHomePage(api, &fakeAssistant{}, DefaultTiming)
	h, out := deliver(h, h.Init())

	got := toasts(out)
	require.Len(t, got, 1)
	assert.Equal(t, locale.T(locale.PropertiesLoadFailed), got[0].Text)
	assert.Equal(t, ToastError, got[0].Kind)
	assert.Equal(t, DefaultTiming.Long, got[0].Duration)
	assert.NotNil(t, h.State().Properties())
	assert.Empty(t, h.State().Properties())
}

func TestHomeFavoritesFailureClearsSilently(t *testing.T) {
	api := &fakeAPI{favoritesErr: errBackend}
	h := NewHomePage(api, &fakeAssistant{}, DefaultTiming)
	h.State().MarkFavorite(5)

	h, out := deliver(h, h.Init())
	assert.Empty(t, toasts(out))
	assert.Empty(t, h.State().FavoriteIDs())
}

func TestHomeFiltersChangedFetchesOnce(t *testing.T) {
	api := &fakeAPI{
		properties: func(f models.PropertyFilters) ([]models.Property, error) {
			return []models.Property{property(3, "Maison", f.City)}, nil
		},
	}
	h := loadedHome(t, api, &fakeAssistant{})
	filters := models.PropertyFilters{City: "Kara", Bedrooms: ptr(2)}

	h, cmd := h.Update(FiltersChangedMsg{PanelID: h.Filters().ID(), Filters: filters})
	h, _ = deliver(h, cmd)

	require.Len(t, api.propertyQueries, 2)
	assert.Equal(t, filters, api.propertyQueries[1])
	assert.Equal(t, filters, h.State().Filters())
	assert.Equal(t, filters, h.Filters().Value())
	require.Len(t, h.State().Properties(), 1)
	assert.Equal(t, "Kara", h.State().Properties()[0].City)
}

func TestHomeDropsSupersededResponse(t *testing.T) {
	api := &fakeAPI{
		properties: func(f models.PropertyFilters) ([]models.Property, error) {
			return []models.Property{property(1, "Bien à "+f.City, f.City)}, nil
		},
	}
	h := loadedHome(t, api, &fakeAssistant{})

	h, slow := h.Update(FiltersChangedMsg{PanelID: h.Filters().ID(), Filters: models.PropertyFilters{City: "Lomé"}})
	h, fast := h.Update(FiltersChangedMsg{PanelID: h.Filters().ID(), Filters: models.PropertyFilters{City: "Kara"}})

	// the newer request answers first, the older one straggles in afterwards
	h, _ = deliver(h, fast)
	h, out := deliver(h, slow)

	assert.Empty(t, out)
	require.Len(t, h.State().Properties(), 1)
	assert.Equal(t, "Kara", h.State().Properties()[0].City)
}

func TestHomeToggleAdds(t *testing.T) {
	api := &fakeAPI{}
	h := loadedHome(t, api, &fakeAssistant{})

	h, cmd := h.Update(FavoriteToggleMsg{Property: property(8, "Duplex", "Lomé")})
	h, out := deliver(h, cmd)

	assert.Equal(t, []int64{8}, api.added)
	assert.True(t, h.State().IsFavorite(8))
	got := toasts(out)
	require.Len(t, got, 1)
	assert.Equal(t, locale.T(locale.FavoriteAdded), got[0].Text)
	assert.Equal(t, DefaultTiming.Short, got[0].Duration)
}

func TestHomeToggleRemoves(t *testing.T) {
	api := &fakeAPI{favorites: []models.Favorite{{ID: 1, Property: property(8, "Duplex", "Lomé")}}}
	h := loadedHome(t, api, &fakeAssistant{})
	require.True(t, h.State().IsFavorite(8))

	h, cmd := h.Update(FavoriteToggleMsg{Property: property(8, "Duplex", "Lomé")})
	h, out := deliver(h, cmd)

	assert.Equal(t, []int64{8}, api.removed)
	assert.Empty(t, api.added)
	assert.False(t, h.State().IsFavorite(8))
	got := toasts(out)
	require.Len(t, got, 1)
	assert.Equal(t, locale.T(locale.FavoriteRemoved), got[0].Text)
}

func TestHomeToggleFailureKeepsSet(t *testing.T) {
	api := &fakeAPI{addErr: errBackend}
	h := loadedHome(t, api, &fakeAssistant{})

	h, cmd := h.Update(FavoriteToggleMsg{Property: property(8, "Duplex", "Lomé")})
	assert.False(t, h.State().IsFavorite(8), "no optimistic update")
	h, out := deliver(h, cmd)

	assert.False(t, h.State().IsFavorite(8))
	got := toasts(out)
	require.Len(t, got, 1)
	assert.Equal(t, locale.T(locale.FavoriteToggleFailed), got[0].Text)
	assert.Equal(t, ToastError, got[0].Kind)
	assert.Equal(t, DefaultTiming.Long, got[0].Duration)

	// the guard is released, so a retry goes out
	_, retry := h.Update(FavoriteToggleMsg{Property: property(8, "Duplex", "Lomé")})
	assert.NotNil(t, retry)
}

func TestHomeToggleRemoveFailureKeepsSet(t *testing.T) {
	api := &fakeAPI{
		favorites: []models.Favorite{{ID: 1, Property: property(8, "Duplex", "Lomé")}},
		removeErr: errBackend,
	}
	h := loadedHome(t, api, &fakeAssistant{})
	require.True(t, h.State().IsFavorite(8))

	h, cmd := h.Update(FavoriteToggleMsg{Property: property(8, "Duplex", "Lomé")})
	h, out := deliver(h, cmd)

	assert.Equal(t, []int64{8}, api.removed)
	assert.Equal(t, []int64{8}, h.State().FavoriteIDs())
	got := toasts(out)
	require.Len(t, got, 1)
	assert.Equal(t, locale.T(locale.FavoriteToggleFailed), got[0].Text)
	assert.Equal(t, ToastError, got[0].Kind)
	assert.Equal(t, DefaultTiming.Long, got[0].Duration)
}

func TestHomeFavoritesListOlderThanToggleIsDropped(t *testing.T) {
	api := &fakeAPI{}
	h := NewHomePage(api, &fakeAssistant{}, DefaultTiming)

	// the initial list is answered before the add, but arrives after it
	initial := drain(h.Init())

	h, cmd := h.Update(FavoriteToggleMsg{Property: property(8, "Duplex", "Lomé")})
	h, _ = deliver(h, cmd)
	require.Equal(t, []int64{8}, h.State().FavoriteIDs())

	for _, msg := range initial {
		h, _ = h.Update(msg)
	}
	assert.Equal(t, []int64{8}, h.State().FavoriteIDs())

	// a list requested after the toggle is applied
	h, _ = deliver(h, h.loadFavorites())
	assert.Empty(t, h.State().FavoriteIDs())
}

func TestHomeIgnoresFiltersFromOtherPanels(t *testing.T) {
	api := &fakeAPI{}
	h := loadedHome(t, api, &fakeAssistant{})
	stale := NewFiltersPanel()
	stale.SetFilters(models.PropertyFilters{City: "Kara"})

	h, cmd := h.Update(drain(stale.Submit())[0])
	assert.Nil(t, cmd)
	assert.Len(t, api.propertyQueries, 1)
	assert.Equal(t, models.PropertyFilters{}, h.State().Filters())
}

func TestHomeToggleInFlightIsIgnored(t *testing.T) {
	h := loadedHome(t, &fakeAPI{}, &fakeAssistant{})
	p := property(8, "Duplex", "Lomé")

	h, first := h.Update(FavoriteToggleMsg{Property: p})
	require.NotNil(t, first)
	h, second := h.Update(FavoriteToggleMsg{Property: p})
	assert.Nil(t, second)
}

func TestHomeAgentQuery(t *testing.T) {
	ai := &fakeAssistant{answer: "Deux villas correspondent."}
	h := loadedHome(t, &fakeAPI{}, ai)
	panel := h.Assistant()

	h, cmd := h.Update(AgentQueryMsg{PanelID: panel.ID(), Prompt: "villa"})
	assert.True(t, h.Assistant().Loading())

	h, out := deliver(h, cmd)
	assert.Empty(t, out)
	assert.Equal(t, []string{"villa"}, ai.prompts)
	text, ok := h.Assistant().Response()
	assert.True(t, ok)
	assert.Equal(t, "Deux villas correspondent.", text)
	assert.False(t, h.Assistant().Loading())
}

func TestHomeAgentFailure(t *testing.T) {
	ai := &fakeAssistant{err: errBackend}
	h := loadedHome(t, &fakeAPI{}, ai)

	h, cmd := h.Update(AgentQueryMsg{PanelID: h.Assistant().ID(), Prompt: "villa"})
	h, out := deliver(h, cmd)

	text, ok := h.Assistant().Response()
	assert.True(t, ok)
	assert.Equal(t, locale.T(locale.AssistantUnavailable), text)
	got := toasts(out)
	require.Len(t, got, 1)
	assert.Equal(t, locale.T(locale.AssistantFailed), got[0].Text)
	assert.Equal(t, DefaultTiming.Long, got[0].Duration)
}

func TestHomeAgentAnswerForOtherPanel(t *testing.T) {
	h := loadedHome(t, &fakeAPI{}, &fakeAssistant{answer: "ailleurs"})

	h, cmd := h.Update(AgentQueryMsg{PanelID: "someone-else", Prompt: "villa"})
	h, _ = deliver(h, cmd)

	assert.Equal(t, AssistantIdle, h.Assistant().State())
}

func TestHomeIgnoresOtherInstances(t *testing.T) {
	api := &fakeAPI{
		properties: func(models.PropertyFilters) ([]models.Property, error) {
			return []models.Property{property(1, "Villa", "Lomé")}, nil
		},
	}
	old := NewHomePage(api, &fakeAssistant{}, DefaultTiming)
	stale := drain(old.Init())

	h := NewHomePage(&fakeAPI{}, &fakeAssistant{}, DefaultTiming)
	for _, msg := range stale {
		h, _ = h.Update(msg)
	}
	assert.Empty(t, h.State().Properties())
}

func TestHomeKeyboard(t *testing.T) {
	api := &fakeAPI{
		properties: func(models.PropertyFilters) ([]models.Property, error) {
			return []models.Property{property(1, "Villa", "Lomé"), property(2, "Studio", "Kara")}, nil
		},
	}
	h := loadedHome(t, api, &fakeAssistant{})

	h, _ = h.Update(keyRunes("j"))
	h, _ = h.Update(keyRunes("j"))
	assert.Equal(t, 1, h.Selected())

	h, cmd := h.Update(keyRunes("f"))
	msgs := drain(cmd)
	require.Len(t, msgs, 1)
	assert.Equal(t, FavoriteToggleMsg{Property: property(2, "Studio", "Kara")}, msgs[0])

	h, cmd = h.Update(key(tea.KeyEnter))
	assert.Equal(t, []tea.Msg{NavigateMsg{Path: "/properties/2"}}, drain(cmd))

	h, _ = h.Update(keyRunes("k"))
	assert.Equal(t, 0, h.Selected())

	// "/" hands the keyboard to the filters panel
	h, _ = h.Update(keyRunes("/"))
	assert.True(t, h.Capturing())
	for _, r := range "Kara" {
		h, _ = h.Update(keyRunes(string(r)))
	}
	h, cmd = h.Update(key(tea.KeyEnter))
	msgs = drain(cmd)
	require.Len(t, msgs, 1)
	assert.Equal(t, FiltersChangedMsg{PanelID: h.Filters().ID(), Filters: models.PropertyFilters{City: "Kara"}}, msgs[0])

	h, _ = h.Update(key(tea.KeyEsc))
	assert.False(t, h.Capturing())

	h, _ = h.Update(keyRunes("a"))
	for _, r := range "villa" {
		h, _ = h.Update(keyRunes(string(r)))
	}
	h, cmd = h.Update(key(tea.KeyEnter))
	msgs = drain(cmd)
	require.Len(t, msgs, 1)
	assert.Equal(t, AgentQueryMsg{PanelID: h.Assistant().ID(), Prompt: "villa"}, msgs[0])
}

func TestHomeCloseDisposesPanel(t *testing.T) {
	h := loadedHome(t, &fakeAPI{}, &fakeAssistant{})
	h.Close()

	h, _ = h.Update(AgentResponseMsg{PanelID: h.Assistant().ID(), Text: "trop tard"})
	_, ok := h.Assistant().Response()
	assert.False(t, ok)
}
