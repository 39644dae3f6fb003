package httputil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"smartimmo/config"
)

func TestNewClientsUseConfiguredTimeouts(t *testing.T) {
	cfg := &config.Config{
		API: config.APIConfig{BaseURL: "http://localhost:8000/api/v1", Timeout: 15 * time.Second},
		AI:  config.AIConfig{Endpoint: "http://localhost:8000/api/v1/ai/query", Timeout: time.Minute},
	}

	clients := NewClients(cfg)
	assert.Equal(t, 15*time.Second, clients.API.Timeout)
	assert.Equal(t, time.Minute, clients.AI.Timeout)
	assert.Same(t, clients.API.Transport, clients.AI.Transport)
}
