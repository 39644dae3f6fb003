package models

// Favorite links the current user to a property. Property.ID is the join key.
type Favorite struct {
	ID        int64     `json:"id"`
	Property  Property  `json:"property"`
	CreatedAt Timestamp `json:"created_at"`
}

// FavoritePropertyIDs projects a favorites list onto its property ids
func FavoritePropertyIDs(favorites []Favorite) map[int64]struct{} {
	ids := make(map[int64]struct{}, len(favorites))
	for _, f := range favorites {
		ids[f.Property.ID] = struct{}{}
	}
	return ids
}
