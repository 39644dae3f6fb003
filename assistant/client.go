package assistant

import (
	"context"
	"net/http"

	"smartimmo/api"
	"smartimmo/models"
)

// Client sends one prompt per call to the assistant endpoint. Nothing is
// queued or streamed.
type Client struct {
	endpoint string
	http     *http.Client
}

func NewClient(endpoint string, client *http.Client) *Client {
	if client == nil {
		client = http.DefaultClient
	}
	return &Client{endpoint: endpoint, http: client}
}

func (c *Client) Ask(ctx context.Context, prompt string) (*models.AiResponse, error) {
	var out models.AiResponse
	if err := api.DoJSON(ctx, c.http, http.MethodPost, c.endpoint, models.AiQuery{Prompt: prompt}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
