// Package locale holds the French strings shown to the user. The catalog
// is embedded and decoded once at startup.
package locale

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"smartimmo/models"
)

//go:embed messages.yaml
var embedded []byte

type Catalog struct {
	Messages      map[string]string `yaml:"messages"`
	PropertyTypes map[string]string `yaml:"property_types"`
	Statuses      map[string]string `yaml:"statuses"`
}

var current = mustParse(embedded)

func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(c.Messages) == 0 {
		return nil, fmt.Errorf("parse catalog: no messages")
	}
	return &c, nil
}

func mustParse(data []byte) *Catalog {
	c, err := Parse(data)
	if err != nil {
		panic(err)
	}
	return c
}

// T returns the message for key, or the key itself when it is missing
func T(key string) string {
	return current.T(key)
}

func (c *Catalog) T(key string) string {
	if msg, ok := c.Messages[key]; ok {
		return msg
	}
	return key
}

func PropertyTypeLabel(t models.PropertyType) string {
	if label, ok := current.PropertyTypes[string(t)]; ok {
		return label
	}
	return string(t)
}

func StatusLabel(s models.PropertyStatus) string {
	if label, ok := current.Statuses[string(s)]; ok {
		return label
	}
	return string(s)
}
