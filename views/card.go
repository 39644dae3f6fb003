package views

import (
	"fmt"
	"strings"

	"smartimmo/locale"
	"smartimmo/models"
	"smartimmo/styles"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const PlaceholderImage = "https://placehold.co/600x400?text=SmartImmo"

const cardDescriptionLength = 100

// PrimaryImage picks the picture shown for a listing: the primary image,
// then the first one, then the placeholder.
func PrimaryImage(p models.Property) string {
	for _, img := range p.Images {
		if img.Primary() {
			if img.URL != "" {
				return img.URL
			}
			break
		}
	}
	if len(p.Images) > 0 && p.Images[0].URL != "" {
		return p.Images[0].URL
	}
	return PlaceholderImage
}

// PropertyCard renders one listing. It never changes its own favorite
// flag; the owning page decides after the backend answers.
type PropertyCard struct {
	Property   models.Property
	IsFavorite bool
	Selected   bool
	Width      int
}

func NewPropertyCard(p models.Property, isFavorite bool) PropertyCard {
	return PropertyCard{Property: p, IsFavorite: isFavorite}
}

func (c PropertyCard) PrimaryImage() string {
	return PrimaryImage(c.Property)
}

func (c PropertyCard) ToggleFavorite() tea.Cmd {
	p := c.Property
	return func() tea.Msg {
		return FavoriteToggleMsg{Property: p}
	}
}

func (c PropertyCard) View() string {
	p := c.Property

	heart := styles.Muted.Render("♡")
	if c.IsFavorite {
		heart = styles.Favorite.Render("♥")
	}
	title := heart + " " + lipgloss.NewStyle().Bold(true).Render(p.Title)
	if p.IsFeatured {
		title += "  " + styles.Featured.Render("★ "+locale.T(locale.FiltersFeatured))
	}

	summary := styles.Price.Render(formatPrice(p.Price)) +
		styles.Label.Render(" · "+locale.PropertyTypeLabel(p.PropertyType)+" · ") +
		statusStyle(p.Status).Render(locale.StatusLabel(p.Status))

	lines := []string{title, summary, styles.Label.Render(propertyFacts(p))}
	if desc := plainText(p.Description); desc != "" {
		lines = append(lines, truncate(strings.ReplaceAll(desc, "\n", " "), cardDescriptionLength))
	}
	lines = append(lines, styles.Muted.Render("🖼 "+c.PrimaryImage()))

	style := styles.Card
	if c.Selected {
		style = styles.CardSelected
	}
	if c.Width > 0 {
		style = style.Width(c.Width)
	}
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// propertyFacts is the "Lomé, Adidogomé · 4 ch. · 3 sdb · 320 m²" line
func propertyFacts(p models.Property) string {
	location := p.City
	if p.District != nil && *p.District != "" {
		location += ", " + *p.District
	}
	facts := []string{location}
	if p.Bedrooms != nil {
		facts = append(facts, fmt.Sprintf("%d ch.", *p.Bedrooms))
	}
	if p.Bathrooms != nil {
		facts = append(facts, fmt.Sprintf("%d sdb", *p.Bathrooms))
	}
	if p.Area != nil {
		facts = append(facts, fmt.Sprintf("%s m²", formatFloat(p.Area)))
	}
	return strings.Join(facts, " · ")
}

func statusStyle(s models.PropertyStatus) lipgloss.Style {
	switch s {
	case models.PropertyStatusAvailable:
		return styles.StatusAvailable
	case models.PropertyStatusPending:
		return styles.StatusPending
	}
	return styles.StatusClosed
}
