package models

type PropertyType string

const (
	PropertyTypeApartment  PropertyType = "apartment"
	PropertyTypeHouse      PropertyType = "house"
	PropertyTypeLand       PropertyType = "land"
	PropertyTypeCommercial PropertyType = "commercial"
)

// PropertyTypes lists the types in the order the filters panel cycles through them.
var PropertyTypes = []PropertyType{
	PropertyTypeApartment,
	PropertyTypeHouse,
	PropertyTypeLand,
	PropertyTypeCommercial,
}

type PropertyStatus string

const (
	PropertyStatusAvailable PropertyStatus = "available"
	PropertyStatusPending   PropertyStatus = "pending"
	PropertyStatusSold      PropertyStatus = "sold"
	PropertyStatusRented    PropertyStatus = "rented"
)

var PropertyStatuses = []PropertyStatus{
	PropertyStatusAvailable,
	PropertyStatusPending,
	PropertyStatusSold,
	PropertyStatusRented,
}

// PropertyImage is one picture of a listing. At most one should be primary,
// the backend does not enforce it.
type PropertyImage struct {
	ID        *int64 `json:"id,omitempty"`
	URL       string `json:"url"`
	IsPrimary *bool  `json:"is_primary,omitempty"`
}

// Primary reports whether the image is flagged as the representative one.
func (i PropertyImage) Primary() bool {
	return i.IsPrimary != nil && *i.IsPrimary
}

// Property is the read projection of a listing as returned by the backend
type Property struct {
	ID           int64           `json:"id"`
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	Price        float64         `json:"price"`
	Area         *float64        `json:"area"`
	Bedrooms     *int            `json:"bedrooms"`
	Bathrooms    *int            `json:"bathrooms"`
	City         string          `json:"city"`
	District     *string         `json:"district"`
	Address      *string         `json:"address"`
	Latitude     *float64        `json:"latitude"`
	Longitude    *float64        `json:"longitude"`
	PropertyType PropertyType    `json:"property_type"`
	Status       PropertyStatus  `json:"status"`
	IsFeatured   bool            `json:"is_featured"`
	OwnerID      int64           `json:"owner_id"`
	CreatedAt    Timestamp       `json:"created_at"`
	UpdatedAt    Timestamp       `json:"updated_at"`
	Images       []PropertyImage `json:"images"`
}

// PropertyInput is the partial shape sent on create and update. Unset
// fields are omitted so the server fills or keeps them.
type PropertyInput struct {
	Title        *string         `json:"title,omitempty"`
	Description  *string         `json:"description,omitempty"`
	Price        *float64        `json:"price,omitempty"`
	Area         *float64        `json:"area,omitempty"`
	Bedrooms     *int            `json:"bedrooms,omitempty"`
	Bathrooms    *int            `json:"bathrooms,omitempty"`
	City         *string         `json:"city,omitempty"`
	District     *string         `json:"district,omitempty"`
	Address      *string         `json:"address,omitempty"`
	Latitude     *float64        `json:"latitude,omitempty"`
	Longitude    *float64        `json:"longitude,omitempty"`
	PropertyType *PropertyType   `json:"property_type,omitempty"`
	Status       *PropertyStatus `json:"status,omitempty"`
	IsFeatured   *bool           `json:"is_featured,omitempty"`
	Images       []PropertyImage `json:"images,omitempty"`
}
