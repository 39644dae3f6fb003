package views

import (
	"context"
	"errors"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"smartimmo/models"
)

var errBackend = errors.New("backend down")

// fakeAPI answers from canned data and records every call
type fakeAPI struct {
	mu sync.Mutex

	properties   func(filters models.PropertyFilters) ([]models.Property, error)
	property     func(id int64) (*models.Property, error)
	favorites    []models.Favorite
	favoritesErr error
	addErr       error
	removeErr    error

	propertyQueries []models.PropertyFilters
	added           []int64
	removed         []int64
}

func (f *fakeAPI) GetProperties(ctx context.Context, filters models.PropertyFilters) ([]models.Property, error) {
	f.mu.Lock()
	f.propertyQueries = append(f.propertyQueries, filters)
	fn := f.properties
	f.mu.Unlock()
	if fn == nil {
		return []models.Property{}, nil
	}
	return fn(filters)
}

func (f *fakeAPI) GetProperty(ctx context.Context, id int64) (*models.Property, error) {
	if f.property == nil {
		return &models.Property{ID: id}, nil
	}
	return f.property(id)
}

func (f *fakeAPI) ListFavorites(ctx context.Context) ([]models.Favorite, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.favorites, f.favoritesErr
}

func (f *fakeAPI) AddFavorite(ctx context.Context, propertyID int64) (*models.Favorite, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.added = append(f.added, propertyID)
	if f.addErr != nil {
		return nil, f.addErr
	}
	return &models.Favorite{ID: propertyID * 10, Property: models.Property{ID: propertyID}}, nil
}

func (f *fakeAPI) RemoveFavorite(ctx context.Context, propertyID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.removed = append(f.removed, propertyID)
	return f.removeErr
}

type fakeAssistant struct {
	mu      sync.Mutex
	prompts []string
	answer  string
	err     error
}

func (f *fakeAssistant) Ask(ctx context.Context, prompt string) (*models.AiResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return nil, f.err
	}
	return &models.AiResponse{Response: f.answer, Model: "test"}, nil
}

// drain runs cmd and any batched children synchronously and returns the
// messages they produce. Never pass it a tea.Tick.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, drain(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

func toasts(msgs []tea.Msg) []ToastMsg {
	var out []ToastMsg
	for _, m := range msgs {
		if t, ok := m.(ToastMsg); ok {
			out = append(out, t)
		}
	}
	return out
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func key(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func ptr[T any](v T) *T {
	return &v
}

func property(id int64, title, city string) models.Property {
	return models.Property{
		ID:           id,
		Title:        title,
		City:         city,
		Price:        1000000,
		PropertyType: models.PropertyTypeHouse,
		Status:       models.PropertyStatusAvailable,
	}
}
