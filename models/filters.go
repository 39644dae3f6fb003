package models

import (
	"net/url"
	"strconv"
	"strings"
)

// PropertyFilters mirrors the list endpoint's query parameters. A nil
// pointer or empty string means the filter is absent.
type PropertyFilters struct {
	City         string         `json:"city,omitempty"`
	PropertyType PropertyType   `json:"property_type,omitempty"`
	Status       PropertyStatus `json:"status,omitempty"`
	MinPrice     *float64       `json:"min_price,omitempty"`
	MaxPrice     *float64       `json:"max_price,omitempty"`
	Bedrooms     *int           `json:"bedrooms,omitempty"`
	Bathrooms    *int           `json:"bathrooms,omitempty"`
	IsFeatured   *bool          `json:"is_featured,omitempty"`
}

// Query renders the present filters as query parameters. Absent fields
// produce no key at all.
func (f PropertyFilters) Query() url.Values {
	q := url.Values{}
	if city := strings.TrimSpace(f.City); city != "" {
		q.Set("city", city)
	}
	if f.PropertyType != "" {
		q.Set("property_type", string(f.PropertyType))
	}
	if f.Status != "" {
		q.Set("status", string(f.Status))
	}
	if f.MinPrice != nil {
		q.Set("min_price", strconv.FormatFloat(*f.MinPrice, 'f', -1, 64))
	}
	if f.MaxPrice != nil {
		q.Set("max_price", strconv.FormatFloat(*f.MaxPrice, 'f', -1, 64))
	}
	if f.Bedrooms != nil {
		q.Set("bedrooms", strconv.Itoa(*f.Bedrooms))
	}
	if f.Bathrooms != nil {
		q.Set("bathrooms", strconv.Itoa(*f.Bathrooms))
	}
	if f.IsFeatured != nil {
		q.Set("is_featured", strconv.FormatBool(*f.IsFeatured))
	}
	return q
}

// IsEmpty reports whether no filter is applied
func (f PropertyFilters) IsEmpty() bool {
	return len(f.Query()) == 0
}
