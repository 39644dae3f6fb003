package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"smartimmo/models"
)

// Client talks to the listings backend. It keeps no state between calls:
// no retries, no caching, no session.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, client *http.Client) *Client {
	if client == nil {
		client = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    client,
	}
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// GetProperties lists properties matching the present filters
func (c *Client) GetProperties(ctx context.Context, filters models.PropertyFilters) ([]models.Property, error) {
	endpoint := c.baseURL + "/properties"
	if q := filters.Query(); len(q) > 0 {
		endpoint += "?" + q.Encode()
	}

	var properties []models.Property
	if err := DoJSON(ctx, c.http, http.MethodGet, endpoint, nil, &properties); err != nil {
		return nil, err
	}
	if properties == nil {
		properties = []models.Property{}
	}
	return properties, nil
}

func (c *Client) GetProperty(ctx context.Context, id int64) (*models.Property, error) {
	var property models.Property
	if err := DoJSON(ctx, c.http, http.MethodGet, c.propertyURL(id), nil, &property); err != nil {
		return nil, err
	}
	return &property, nil
}

func (c *Client) CreateProperty(ctx context.Context, input models.PropertyInput) (*models.Property, error) {
	var property models.Property
	if err := DoJSON(ctx, c.http, http.MethodPost, c.baseURL+"/properties", input, &property); err != nil {
		return nil, err
	}
	return &property, nil
}

func (c *Client) UpdateProperty(ctx context.Context, id int64, input models.PropertyInput) (*models.Property, error) {
	var property models.Property
	if err := DoJSON(ctx, c.http, http.MethodPut, c.propertyURL(id), input, &property); err != nil {
		return nil, err
	}
	return &property, nil
}

func (c *Client) DeleteProperty(ctx context.Context, id int64) error {
	return DoJSON(ctx, c.http, http.MethodDelete, c.propertyURL(id), nil, nil)
}

func (c *Client) ListFavorites(ctx context.Context) ([]models.Favorite, error) {
	var favorites []models.Favorite
	if err := DoJSON(ctx, c.http, http.MethodGet, c.baseURL+"/favorites", nil, &favorites); err != nil {
		return nil, err
	}
	if favorites == nil {
		favorites = []models.Favorite{}
	}
	return favorites, nil
}

// AddFavorite bookmarks a property. The backend answers with the existing
// favorite when it is already there.
func (c *Client) AddFavorite(ctx context.Context, propertyID int64) (*models.Favorite, error) {
	var favorite models.Favorite
	if err := DoJSON(ctx, c.http, http.MethodPost, c.favoriteURL(propertyID), struct{}{}, &favorite); err != nil {
		return nil, err
	}
	return &favorite, nil
}

func (c *Client) RemoveFavorite(ctx context.Context, propertyID int64) error {
	return DoJSON(ctx, c.http, http.MethodDelete, c.favoriteURL(propertyID), nil, nil)
}

// Register creates an account. No session is established.
func (c *Client) Register(ctx context.Context, registration models.Registration) (*models.User, error) {
	var user models.User
	if err := DoJSON(ctx, c.http, http.MethodPost, c.baseURL+"/users", registration, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Login checks credentials and returns the user. The backend issues no
// token and none is kept here.
func (c *Client) Login(ctx context.Context, credentials models.Credentials) (*models.User, error) {
	var user models.User
	if err := DoJSON(ctx, c.http, http.MethodPost, c.baseURL+"/users/login", credentials, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) propertyURL(id int64) string {
	return fmt.Sprintf("%s/properties/%d", c.baseURL, id)
}

func (c *Client) favoriteURL(propertyID int64) string {
	return fmt.Sprintf("%s/favorites/%d", c.baseURL, propertyID)
}
