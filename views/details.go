package views

import (
	"context"
	"fmt"
	"log"
	"strings"

	"smartimmo/locale"
	"smartimmo/models"
	"smartimmo/state"
	"smartimmo/styles"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type propertyLoadedMsg struct {
	seq      uint64
	id       int64
	property *models.Property
	err      error
}

// DetailsPage shows a single listing. Only the latest Load is honored.
type DetailsPage struct {
	api    PropertiesAPI
	timing Timing
	latest *state.Latest

	id            int64
	property      *models.Property
	loading       bool
	width, height int
}

func NewDetailsPage(api PropertiesAPI, timing Timing) DetailsPage {
	return DetailsPage{
		api:    api,
		timing: timing,
		latest: &state.Latest{},
	}
}

func (d DetailsPage) ID() int64 {
	return d.id
}

func (d DetailsPage) Property() *models.Property {
	return d.property
}

func (d DetailsPage) Loading() bool {
	return d.loading
}

// Load fetches property id, abandoning any earlier load
func (d *DetailsPage) Load(id int64) tea.Cmd {
	ctx, seq := d.latest.Next(context.Background())
	d.id = id
	d.property = nil
	d.loading = true
	api := d.api
	return func() tea.Msg {
		p, err := api.GetProperty(ctx, id)
		return propertyLoadedMsg{seq: seq, id: id, property: p, err: err}
	}
}

func (d *DetailsPage) Close() {
	d.latest.Cancel()
	d.loading = false
}

func (d DetailsPage) SetSize(w, h int) DetailsPage {
	d.width = w
	d.height = h
	return d
}

func (d DetailsPage) Update(msg tea.Msg) (DetailsPage, tea.Cmd) {
	switch msg := msg.(type) {
	case propertyLoadedMsg:
		if !d.latest.IsCurrent(msg.seq) {
			log.Printf("Details: dropping superseded response for property %d", msg.id)
			return d, nil
		}
		d.latest.Done(msg.seq)
		d.loading = false
		if msg.err != nil {
			log.Printf("Details: load property %d failed: %v", msg.id, msg.err)
			return d, ShowToast(locale.T(locale.PropertyLoadFailed), ToastError, d.timing.Long)
		}
		d.property = msg.property

	case tea.WindowSizeMsg:
		d = d.SetSize(msg.Width, msg.Height)
	}
	return d, nil
}

func (d DetailsPage) View() string {
	header := styles.Title.Render(locale.T(locale.DetailsTitle))
	if d.loading {
		return lipgloss.JoinVertical(lipgloss.Left, header, styles.Muted.Render(locale.T(locale.DetailsLoading)))
	}
	if d.property == nil {
		return lipgloss.JoinVertical(lipgloss.Left, header, styles.Muted.Render(locale.T(locale.DetailsEmpty)))
	}

	p := d.property
	width := d.width - 4
	if width < 40 {
		width = 40
	}

	lines := []string{
		header,
		lipgloss.NewStyle().Bold(true).Render(p.Title),
		styles.Price.Render(formatPrice(p.Price)) + styles.Label.Render(" · "+locale.PropertyTypeLabel(p.PropertyType)+" · ") +
			statusStyle(p.Status).Render(locale.StatusLabel(p.Status)),
		styles.Label.Render(propertyFacts(*p)),
	}
	if p.Address != nil && *p.Address != "" {
		lines = append(lines, styles.Label.Render(*p.Address))
	}
	if p.Latitude != nil && p.Longitude != nil {
		lines = append(lines, styles.Muted.Render(fmt.Sprintf("%.5f, %.5f", *p.Latitude, *p.Longitude)))
	}
	if p.IsFeatured {
		lines = append(lines, styles.Featured.Render("★ "+locale.T(locale.FiltersFeatured)))
	}

	if desc := plainText(p.Description); desc != "" {
		lines = append(lines, "")
		lines = append(lines, wrapText(desc, width)...)
	}

	lines = append(lines, "", styles.Label.Render("Photos"))
	if len(p.Images) == 0 {
		lines = append(lines, styles.Muted.Render(PlaceholderImage))
	}
	for _, img := range p.Images {
		marker := "  "
		if img.Primary() {
			marker = "★ "
		}
		lines = append(lines, marker+img.URL)
	}
	if !p.CreatedAt.IsZero() {
		lines = append(lines, "", styles.Muted.Render("Publié le "+p.CreatedAt.Format("02/01/2006")))
	}
	lines = append(lines, styles.Muted.Render(strings.Repeat("─", 10)+"  esc retour"))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
