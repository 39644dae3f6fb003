// Package state holds the canonical in-memory state of the listing pages.
// Everything here is mutated from the UI loop only and is not safe for
// concurrent use.
package state

import (
	"sort"

	"smartimmo/models"
)

// Home is the home page's state: the last fetched properties, the last
// applied filters and the favorites set. The set mirrors the last
// successful server answer and only changes through the methods below.
type Home struct {
	properties []models.Property
	filters    models.PropertyFilters
	favorites  map[int64]struct{}
	toggling   map[int64]struct{}
	// favGen counts confirmed toggles. A favorites list requested under
	// an older generation predates one of them and must not be applied.
	favGen uint64
}

func NewHome() *Home {
	return &Home{
		properties: []models.Property{},
		favorites:  make(map[int64]struct{}),
		toggling:   make(map[int64]struct{}),
	}
}

func (h *Home) Properties() []models.Property {
	return h.properties
}

func (h *Home) Filters() models.PropertyFilters {
	return h.filters
}

func (h *Home) IsFavorite(propertyID int64) bool {
	_, ok := h.favorites[propertyID]
	return ok
}

// FavoriteIDs returns the set in ascending order
func (h *Home) FavoriteIDs() []int64 {
	ids := make([]int64, 0, len(h.favorites))
	for id := range h.favorites {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (h *Home) ReplaceProperties(properties []models.Property) {
	if properties == nil {
		properties = []models.Property{}
	}
	h.properties = properties
}

func (h *Home) ApplyFilters(filters models.PropertyFilters) {
	h.filters = filters
}

// SyncFavorites rebuilds the set from an authoritative favorites list
func (h *Home) SyncFavorites(favorites []models.Favorite) {
	h.favorites = models.FavoritePropertyIDs(favorites)
}

func (h *Home) ClearFavorites() {
	h.favorites = make(map[int64]struct{})
}

func (h *Home) MarkFavorite(propertyID int64) {
	h.favorites[propertyID] = struct{}{}
	h.favGen++
}

func (h *Home) UnmarkFavorite(propertyID int64) {
	delete(h.favorites, propertyID)
	h.favGen++
}

// FavoritesGeneration is captured when a favorites list is requested and
// checked with FavoritesCurrent when the answer arrives.
func (h *Home) FavoritesGeneration() uint64 {
	return h.favGen
}

func (h *Home) FavoritesCurrent(gen uint64) bool {
	return gen == h.favGen
}

// BeginToggle reserves propertyID for one add/remove round trip. It
// returns false when a toggle for it is already in flight.
func (h *Home) BeginToggle(propertyID int64) bool {
	if _, busy := h.toggling[propertyID]; busy {
		return false
	}
	h.toggling[propertyID] = struct{}{}
	return true
}

func (h *Home) EndToggle(propertyID int64) {
	delete(h.toggling, propertyID)
}
