package styles

import "github.com/charmbracelet/lipgloss"

var (
	PrimaryColor   = lipgloss.Color("#0F766E")
	SecondaryColor = lipgloss.Color("#F59E0B")
	SuccessColor   = lipgloss.Color("#22C55E")
	WarningColor   = lipgloss.Color("#EAB308")
	ErrorColor     = lipgloss.Color("#EF4444")
	MutedColor     = lipgloss.Color("#6B7280")
	FavoriteColor  = lipgloss.Color("#E11D48")
	TextColor      = lipgloss.Color("#F9FAFB")

	Muted = lipgloss.NewStyle().Foreground(MutedColor)

	TabActive = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			Padding(0, 2)

	TabInactive = lipgloss.NewStyle().
			Foreground(MutedColor).
			Padding(0, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(PrimaryColor).
		Padding(0, 1)

	StatusBar = lipgloss.NewStyle().
			Foreground(MutedColor).
			Padding(0, 1)

	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(MutedColor).
		Padding(0, 1)

	CardSelected = Card.
			BorderForeground(PrimaryColor)

	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(SecondaryColor).
		Padding(0, 1)

	Price = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextColor)

	Label = lipgloss.NewStyle().
		Foreground(MutedColor)

	Favorite = lipgloss.NewStyle().Foreground(FavoriteColor)

	Featured = lipgloss.NewStyle().
			Bold(true).
			Foreground(SecondaryColor)

	StatusAvailable = lipgloss.NewStyle().Foreground(SuccessColor)
	StatusPending   = lipgloss.NewStyle().Foreground(WarningColor)
	StatusClosed    = lipgloss.NewStyle().Foreground(MutedColor)

	FieldFocused = lipgloss.NewStyle().Foreground(PrimaryColor).Bold(true)
	FieldBlurred = lipgloss.NewStyle().Foreground(MutedColor)

	ToastInfo = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Padding(0, 1)

	ToastError = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Padding(0, 1)
)
