package views

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type Route int

const (
	RouteHome Route = iota
	RouteDetails
	RouteFavorites
)

const (
	PathHome      = "/"
	PathFavorites = "/favorites"
)

type NavigateMsg struct {
	Path string
}

func Navigate(path string) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{Path: path}
	}
}

func PropertyPath(id int64) string {
	return "/properties/" + strconv.FormatInt(id, 10)
}

// Resolve maps a path to its page. Unknown paths and malformed ids fall
// back to the home page.
func Resolve(path string) (Route, int64) {
	path = strings.TrimSpace(path)
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	path = strings.Trim(path, "/")

	switch {
	case path == "":
		return RouteHome, 0
	case path == "favorites":
		return RouteFavorites, 0
	case strings.HasPrefix(path, "properties/"):
		id, err := strconv.ParseInt(strings.TrimPrefix(path, "properties/"), 10, 64)
		if err != nil || id <= 0 {
			return RouteHome, 0
		}
		return RouteDetails, id
	}
	return RouteHome, 0
}
