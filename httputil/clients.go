package httputil

import (
	"net/http"
	"time"

	"smartimmo/config"
)

type Clients struct {
	API *http.Client // listings, favorites, accounts
	AI  *http.Client // assistant, slow model inference
}

func NewClients(cfg *config.Config) *Clients {
	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConnsPerHost: 4,
		IdleConnTimeout:     90 * time.Second,
	}

	return &Clients{
		API: &http.Client{
			Timeout:   cfg.API.Timeout,
			Transport: transport,
		},
		AI: &http.Client{
			Timeout:   cfg.AI.Timeout,
			Transport: transport,
		},
	}
}
