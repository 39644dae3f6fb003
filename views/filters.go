package views

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"smartimmo/locale"
	"smartimmo/models"
	"smartimmo/styles"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
)

type filterField int

const (
	fieldCity filterField = iota
	fieldType
	fieldStatus
	fieldMinPrice
	fieldMaxPrice
	fieldBedrooms
	fieldBathrooms
	fieldFeatured
	fieldCount
)

const (
	featuredAny = iota
	featuredYes
	featuredNo
)

// FiltersPanel is the search form above the property list
type FiltersPanel struct {
	id string

	city      textinput.Model
	minPrice  textinput.Model
	maxPrice  textinput.Model
	bedrooms  textinput.Model
	bathrooms textinput.Model

	typeIndex   int // 0 means any, otherwise models.PropertyTypes[typeIndex-1]
	statusIndex int
	featured    int

	active  filterField
	focused bool
}

func newFilterInput(placeholder string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Width = 16
	ti.Prompt = ""
	ti.Cursor.SetMode(cursor.CursorStatic)
	return ti
}

func NewFiltersPanel() FiltersPanel {
	return FiltersPanel{
		id:        uuid.NewString(),
		city:      newFilterInput("Lomé", 64),
		minPrice:  newFilterInput("0", 16),
		maxPrice:  newFilterInput("0", 16),
		bedrooms:  newFilterInput("0", 3),
		bathrooms: newFilterInput("0", 3),
	}
}

func (p FiltersPanel) ID() string {
	return p.id
}

func (p *FiltersPanel) input(f filterField) *textinput.Model {
	switch f {
	case fieldCity:
		return &p.city
	case fieldMinPrice:
		return &p.minPrice
	case fieldMaxPrice:
		return &p.maxPrice
	case fieldBedrooms:
		return &p.bedrooms
	case fieldBathrooms:
		return &p.bathrooms
	}
	return nil
}

// SetFilters fills the form from f without emitting a change
func (p *FiltersPanel) SetFilters(f models.PropertyFilters) {
	p.city.SetValue(f.City)
	p.minPrice.SetValue(formatFloat(f.MinPrice))
	p.maxPrice.SetValue(formatFloat(f.MaxPrice))
	p.bedrooms.SetValue(formatInt(f.Bedrooms))
	p.bathrooms.SetValue(formatInt(f.Bathrooms))

	p.typeIndex = 0
	for i, t := range models.PropertyTypes {
		if t == f.PropertyType {
			p.typeIndex = i + 1
		}
	}
	p.statusIndex = 0
	for i, s := range models.PropertyStatuses {
		if s == f.Status {
			p.statusIndex = i + 1
		}
	}
	p.featured = featuredAny
	if f.IsFeatured != nil {
		if *f.IsFeatured {
			p.featured = featuredYes
		} else {
			p.featured = featuredNo
		}
	}
}

// Value reads the form. Blank or unparsable fields are left out.
func (p FiltersPanel) Value() models.PropertyFilters {
	f := models.PropertyFilters{
		City:      strings.TrimSpace(p.city.Value()),
		MinPrice:  parseAmount(p.minPrice.Value()),
		MaxPrice:  parseAmount(p.maxPrice.Value()),
		Bedrooms:  parseCount(p.bedrooms.Value()),
		Bathrooms: parseCount(p.bathrooms.Value()),
	}
	if p.typeIndex > 0 {
		f.PropertyType = models.PropertyTypes[p.typeIndex-1]
	}
	if p.statusIndex > 0 {
		f.Status = models.PropertyStatuses[p.statusIndex-1]
	}
	switch p.featured {
	case featuredYes:
		yes := true
		f.IsFeatured = &yes
	case featuredNo:
		no := false
		f.IsFeatured = &no
	}
	return f
}

func (p FiltersPanel) Submit() tea.Cmd {
	filters := p.Value()
	id := p.id
	return func() tea.Msg {
		return FiltersChangedMsg{PanelID: id, Filters: filters}
	}
}

// Reset clears every field and emits an empty filter set
func (p *FiltersPanel) Reset() tea.Cmd {
	p.SetFilters(models.PropertyFilters{})
	id := p.id
	return func() tea.Msg {
		return FiltersChangedMsg{PanelID: id, Filters: models.PropertyFilters{}}
	}
}

func (p *FiltersPanel) Focus() {
	p.focused = true
	p.focusField(p.active)
}

func (p *FiltersPanel) Blur() {
	p.focused = false
	if in := p.input(p.active); in != nil {
		in.Blur()
	}
}

func (p FiltersPanel) Focused() bool {
	return p.focused
}

func (p *FiltersPanel) focusField(f filterField) {
	if in := p.input(p.active); in != nil {
		in.Blur()
	}
	p.active = f
	if in := p.input(f); in != nil {
		in.Focus()
	}
}

func (p FiltersPanel) Update(msg tea.Msg) (FiltersPanel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok || !p.focused {
		return p, nil
	}

	switch key.String() {
	case "tab", "down":
		p.focusField((p.active + 1) % fieldCount)
		return p, nil
	case "shift+tab", "up":
		p.focusField((p.active + fieldCount - 1) % fieldCount)
		return p, nil
	case "enter":
		return p, p.Submit()
	case "ctrl+r":
		cmd := p.Reset()
		return p, cmd
	case "left", "right":
		step := 1
		if key.String() == "left" {
			step = -1
		}
		switch p.active {
		case fieldType:
			p.typeIndex = cycle(p.typeIndex, step, len(models.PropertyTypes)+1)
			return p, nil
		case fieldStatus:
			p.statusIndex = cycle(p.statusIndex, step, len(models.PropertyStatuses)+1)
			return p, nil
		case fieldFeatured:
			p.featured = cycle(p.featured, step, 3)
			return p, nil
		}
	}

	in := p.input(p.active)
	if in == nil {
		return p, nil
	}
	var cmd tea.Cmd
	*in, cmd = in.Update(msg)
	return p, cmd
}

func cycle(i, step, n int) int {
	return ((i+step)%n + n) % n
}

func (p FiltersPanel) View() string {
	rows := []string{styles.Title.Render(locale.T(locale.FiltersTitle))}

	row := func(f filterField, label, value string) {
		labelStyle := styles.FieldBlurred
		if p.focused && p.active == f {
			labelStyle = styles.FieldFocused
		}
		rows = append(rows, labelStyle.Render(fmt.Sprintf("%-15s", label))+" "+value)
	}
	selector := func(f filterField, value string) string {
		if p.focused && p.active == f {
			return "‹ " + value + " ›"
		}
		return value
	}

	typeLabel := locale.T(locale.FiltersAny)
	if p.typeIndex > 0 {
		typeLabel = locale.PropertyTypeLabel(models.PropertyTypes[p.typeIndex-1])
	}
	statusLabel := locale.T(locale.FiltersAny)
	if p.statusIndex > 0 {
		statusLabel = locale.StatusLabel(models.PropertyStatuses[p.statusIndex-1])
	}
	featuredLabel := locale.T(locale.FiltersAny)
	switch p.featured {
	case featuredYes:
		featuredLabel = locale.T(locale.FiltersYes)
	case featuredNo:
		featuredLabel = locale.T(locale.FiltersNo)
	}

	row(fieldCity, locale.T(locale.FiltersCity), p.city.View())
	row(fieldType, locale.T(locale.FiltersType), selector(fieldType, typeLabel))
	row(fieldStatus, locale.T(locale.FiltersStatus), selector(fieldStatus, statusLabel))
	row(fieldMinPrice, locale.T(locale.FiltersMinPrice), p.minPrice.View())
	row(fieldMaxPrice, locale.T(locale.FiltersMaxPrice), p.maxPrice.View())
	row(fieldBedrooms, locale.T(locale.FiltersBedrooms), p.bedrooms.View())
	row(fieldBathrooms, locale.T(locale.FiltersBathrooms), p.bathrooms.View())
	row(fieldFeatured, locale.T(locale.FiltersFeatured), selector(fieldFeatured, featuredLabel))

	if p.focused {
		rows = append(rows, styles.Muted.Render("tab champ  ←/→ choix  enter appliquer  ctrl+r effacer"))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// parseAmount accepts "25000", "25 000" and "25000,50". Anything else is absent.
func parseAmount(s string) *float64 {
	s = strings.ReplaceAll(strings.TrimSpace(s), " ", "")
	s = strings.ReplaceAll(s, ",", ".")
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return nil
	}
	return &v
}

func parseCount(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return nil
	}
	return &v
}

func formatFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func formatInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}
