package views

import (
	"log"

	"smartimmo/locale"
	"smartimmo/styles"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// App is the root model: it owns the pages, follows NavigateMsg and shows
// toasts.
type App struct {
	api    PropertiesAPI
	ai     Assistant
	timing Timing

	initialPath string
	path        string
	back        string
	route       Route

	home      HomePage
	favorites FavoritesPage
	details   DetailsPage
	toaster   Toaster

	width, height int
}

func NewApp(api PropertiesAPI, ai Assistant, timing Timing, initialPath string) App {
	if initialPath == "" {
		initialPath = PathHome
	}
	return App{
		api:         api,
		ai:          ai,
		timing:      timing,
		initialPath: initialPath,
		back:        PathHome,
		home:        NewHomePage(api, ai, timing),
		favorites:   NewFavoritesPage(api, timing),
		details:     NewDetailsPage(api, timing),
	}
}

func (a App) Init() tea.Cmd {
	return Navigate(a.initialPath)
}

func (a App) Route() Route {
	return a.route
}

func (a App) Path() string {
	return a.path
}

func (a App) Home() HomePage {
	return a.home
}

func (a App) Favorites() FavoritesPage {
	return a.favorites
}

func (a App) Details() DetailsPage {
	return a.details
}

func (a App) Toast() (ToastMsg, bool) {
	return a.toaster.Current()
}

// navigate builds a fresh page for the target, like a router remounting
// its outlet. Moving between two details paths reuses the page so the
// older load gets cancelled.
func (a *App) navigate(path string) tea.Cmd {
	route, id := Resolve(path)
	log.Printf("App: navigate %q -> route %d", path, route)

	if a.path != "" && a.route != RouteDetails {
		a.back = a.path
	}
	if a.route == RouteHome && a.path != "" {
		a.home.Close()
	}
	if a.route == RouteDetails && route != RouteDetails {
		a.details.Close()
	}

	a.route = route
	switch route {
	case RouteDetails:
		a.path = PropertyPath(id)
		return a.details.Load(id)
	case RouteFavorites:
		a.path = PathFavorites
		a.favorites = NewFavoritesPage(a.api, a.timing).SetSize(a.width, a.contentHeight())
		return a.favorites.Init()
	default:
		a.path = PathHome
		a.home = NewHomePage(a.api, a.ai, a.timing).SetSize(a.width, a.contentHeight())
		return a.home.Init()
	}
}

func (a App) contentHeight() int {
	return a.height - 4
}

func (a App) capturing() bool {
	return a.route == RouteHome && a.home.Capturing()
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case NavigateMsg:
		cmd := a.navigate(msg.Path)
		return a, cmd

	case ToastMsg:
		var cmd tea.Cmd
		a.toaster, cmd = a.toaster.Update(msg)
		return a, cmd

	case toastExpiredMsg:
		a.toaster, _ = a.toaster.Update(msg)
		return a, nil

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.home = a.home.SetSize(msg.Width, a.contentHeight())
		a.favorites = a.favorites.SetSize(msg.Width, a.contentHeight())
		a.details = a.details.SetSize(msg.Width, a.contentHeight())
		return a, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			a.home.Close()
			return a, tea.Quit
		}
		if !a.capturing() {
			switch msg.String() {
			case "q":
				a.home.Close()
				return a, tea.Quit
			case "1":
				return a, Navigate(PathHome)
			case "2":
				return a, Navigate(PathFavorites)
			case "esc":
				if _, visible := a.toaster.Current(); visible {
					a.toaster = a.toaster.Dismiss()
					return a, nil
				}
				if a.route == RouteDetails {
					return a, Navigate(a.back)
				}
			}
		}

		var cmd tea.Cmd
		switch a.route {
		case RouteHome:
			a.home, cmd = a.home.Update(msg)
		case RouteFavorites:
			a.favorites, cmd = a.favorites.Update(msg)
		case RouteDetails:
			a.details, cmd = a.details.Update(msg)
		}
		return a, cmd
	}

	// Everything else goes to every page; each one ignores what is not its own.
	var cmd tea.Cmd
	a.home, cmd = a.home.Update(msg)
	cmds = append(cmds, cmd)
	a.favorites, cmd = a.favorites.Update(msg)
	cmds = append(cmds, cmd)
	a.details, cmd = a.details.Update(msg)
	cmds = append(cmds, cmd)

	return a, tea.Batch(cmds...)
}

func (a App) View() string {
	return lipgloss.JoinVertical(lipgloss.Left, a.renderTabs(), a.renderContent(), a.renderStatusBar())
}

func (a App) renderTabs() string {
	tabs := []struct {
		route Route
		name  string
	}{
		{RouteHome, "1 " + locale.T(locale.TabHome)},
		{RouteFavorites, "2 " + locale.T(locale.TabFavorites)},
	}
	if a.route == RouteDetails {
		tabs = append(tabs, struct {
			route Route
			name  string
		}{RouteDetails, locale.T(locale.TabDetails)})
	}

	var rendered []string
	for _, t := range tabs {
		if t.route == a.route {
			rendered = append(rendered, styles.TabActive.Render(t.name))
		} else {
			rendered = append(rendered, styles.TabInactive.Render(t.name))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...) + "\n"
}

func (a App) renderContent() string {
	switch a.route {
	case RouteFavorites:
		return a.favorites.View()
	case RouteDetails:
		return a.details.View()
	}
	return a.home.View()
}

func (a App) renderStatusBar() string {
	var left string
	switch {
	case a.capturing():
		left = "esc retour"
	case a.route == RouteHome:
		left = "j/k naviguer  f favori  enter détails  / filtres  a assistant  q quitter"
	case a.route == RouteFavorites:
		left = "j/k naviguer  x retirer  enter détails  1 accueil  q quitter"
	default:
		left = "esc retour  1 accueil  2 favoris  q quitter"
	}
	right := a.toaster.View()

	gap := a.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 0 {
		gap = 0
	}
	return styles.StatusBar.Render(left) + lipgloss.NewStyle().Width(gap).Render("") + right
}
