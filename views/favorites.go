package views

import (
	"context"
	"fmt"
	"log"

	"smartimmo/locale"
	"smartimmo/models"
	"smartimmo/styles"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
)

type favoritesListedMsg struct {
	page      string
	favorites []models.Favorite
	err       error
}

type favoriteDroppedMsg struct {
	page       string
	propertyID int64
	err        error
}

// FavoritesPage lists the user's saved properties
type FavoritesPage struct {
	id     string
	api    PropertiesAPI
	timing Timing

	favorites     []models.Favorite
	removing      map[int64]bool
	selected      int
	loading       bool
	width, height int
}

func NewFavoritesPage(api PropertiesAPI, timing Timing) FavoritesPage {
	return FavoritesPage{
		id:       uuid.NewString(),
		api:      api,
		timing:   timing,
		removing: make(map[int64]bool),
		loading:  true,
	}
}

func (f FavoritesPage) Init() tea.Cmd {
	return f.Refresh()
}

func (f FavoritesPage) Refresh() tea.Cmd {
	page := f.id
	api := f.api
	return func() tea.Msg {
		favs, err := api.ListFavorites(context.Background())
		return favoritesListedMsg{page: page, favorites: favs, err: err}
	}
}

func (f FavoritesPage) Favorites() []models.Favorite {
	return f.favorites
}

func (f FavoritesPage) SetSize(w, h int) FavoritesPage {
	f.width = w
	f.height = h
	return f
}

func (f FavoritesPage) remove(propertyID int64) tea.Cmd {
	if f.removing[propertyID] {
		return nil
	}
	f.removing[propertyID] = true
	page := f.id
	api := f.api
	return func() tea.Msg {
		err := api.RemoveFavorite(context.Background(), propertyID)
		return favoriteDroppedMsg{page: page, propertyID: propertyID, err: err}
	}
}

func (f FavoritesPage) Update(msg tea.Msg) (FavoritesPage, tea.Cmd) {
	switch msg := msg.(type) {
	case favoritesListedMsg:
		if msg.page != f.id {
			return f, nil
		}
		f.loading = false
		if msg.err != nil {
			log.Printf("Favorites: load failed: %v", msg.err)
			return f, ShowToast(locale.T(locale.FavoritesLoadFailed), ToastError, f.timing.Long)
		}
		f.favorites = msg.favorites
		f.clampSelection()

	case favoriteDroppedMsg:
		if msg.page != f.id {
			return f, nil
		}
		delete(f.removing, msg.propertyID)
		if msg.err != nil {
			log.Printf("Favorites: remove %d failed: %v", msg.propertyID, msg.err)
			return f, ShowToast(locale.T(locale.FavoriteRemoveFailed), ToastError, f.timing.Long)
		}
		kept := make([]models.Favorite, 0, len(f.favorites))
		for _, fav := range f.favorites {
			if fav.Property.ID != msg.propertyID {
				kept = append(kept, fav)
			}
		}
		f.favorites = kept
		f.clampSelection()
		return f, ShowToast(locale.T(locale.FavoriteRemovedOne), ToastInfo, f.timing.Short)

	case tea.WindowSizeMsg:
		f = f.SetSize(msg.Width, msg.Height)

	case tea.KeyMsg:
		switch msg.String() {
		case "down", "j":
			if f.selected < len(f.favorites)-1 {
				f.selected++
			}
		case "up", "k":
			if f.selected > 0 {
				f.selected--
			}
		case "x", "delete":
			if len(f.favorites) > 0 {
				return f, f.remove(f.favorites[f.selected].Property.ID)
			}
		case "enter":
			if len(f.favorites) > 0 {
				return f, Navigate(PropertyPath(f.favorites[f.selected].Property.ID))
			}
		case "r":
			f.loading = true
			return f, f.Refresh()
		}
	}
	return f, nil
}

func (f *FavoritesPage) clampSelection() {
	if f.selected >= len(f.favorites) {
		f.selected = len(f.favorites) - 1
	}
	if f.selected < 0 {
		f.selected = 0
	}
}

func (f FavoritesPage) View() string {
	header := styles.Title.Render(locale.T(locale.FavoritesTitle)) +
		styles.Muted.Render(fmt.Sprintf("  %d", len(f.favorites)))

	if f.loading && len(f.favorites) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, header, styles.Muted.Render(locale.T(locale.DetailsLoading)))
	}
	if len(f.favorites) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, header, styles.Muted.Render(locale.T(locale.FavoritesEmpty)))
	}

	width := f.width - 4
	if width < 40 {
		width = 40
	}
	rows := []string{header}
	for i, fav := range f.favorites {
		card := NewPropertyCard(fav.Property, true)
		card.Selected = i == f.selected
		card.Width = width
		rows = append(rows, card.View())
	}
	rows = append(rows, styles.Muted.Render("x retirer  enter détails  r recharger"))
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
