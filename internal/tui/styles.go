package tui

import "github.com/charmbracelet/lipgloss"

// One Dark Pro color palette
var (
	// Background colors
	ColorBgPrimary   = lipgloss.Color("#282C34")
	ColorBgSecondary = lipgloss.Color("#21252B")
	ColorBgHighlight = lipgloss.Color("#2C313C")

	// Foreground colors
	ColorFgPrimary   = lipgloss.Color("#ABB2BF")
	ColorFgSecondary = lipgloss.Color("#828997")
	ColorFgMuted     = lipgloss.Color("#636B78")
	ColorFgComment   = lipgloss.Color("#5C6370")

	// Syntax colors
	ColorRed     = lipgloss.Color("#E06C75")
	ColorGreen   = lipgloss.Color("#98C379")
	ColorYellow  = lipgloss.Color("#E5C07B")
	ColorBlue    = lipgloss.Color("#61AFEF")
	ColorMagenta = lipgloss.Color("#C678DD")
	ColorCyan    = lipgloss.Color("#56B6C2")
	ColorOrange  = lipgloss.Color("#D19A66")

	// UI colors
	ColorBorder = lipgloss.Color("#3F4451")
)

// Component styles
var (
	// Header style
	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorRed).
			Bold(true).
			PaddingLeft(1)

	// Top bar user/role indicator
	UserStyle = lipgloss.NewStyle().
			Foreground(ColorCyan).
			PaddingLeft(1)

	// Navigation tabs
	NavActiveStyle = lipgloss.NewStyle().
			Foreground(ColorBlue).
			Bold(true).
			Padding(0, 1)

	NavInactiveStyle = lipgloss.NewStyle().
				Foreground(ColorFgMuted).
				Padding(0, 1)

	// Table styles
	TableHeaderStyle = lipgloss.NewStyle().
				Foreground(ColorMagenta).
				Bold(true).
				PaddingLeft(1)

	RowStyle = lipgloss.NewStyle().
			Foreground(ColorFgPrimary).
			PaddingLeft(1)

	SelectedRowStyle = lipgloss.NewStyle().
				Background(ColorBgHighlight).
				Foreground(ColorFgPrimary).
				Bold(true).
				PaddingLeft(1)

	// Task status styles
	TaskOpenStyle = lipgloss.NewStyle().
			Foreground(ColorYellow)

	TaskDoneStyle = lipgloss.NewStyle().
			Foreground(ColorGreen)

	// Modal styles
	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 2)

	ModalTitleStyle = lipgloss.NewStyle().
			Foreground(ColorBlue).
			Bold(true)

	FieldLabelStyle = lipgloss.NewStyle().
			Foreground(ColorFgSecondary)

	FieldLabelFocusedStyle = lipgloss.NewStyle().
				Foreground(ColorGreen).
				Bold(true)

	ReadOnlyFieldStyle = lipgloss.NewStyle().
				Foreground(ColorFgMuted)

	// Input styles
	InputStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	InputPromptStyle = lipgloss.NewStyle().
				Foreground(ColorGreen)

	// Status bar styles
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(ColorFgMuted).
			PaddingLeft(1).
			PaddingRight(1)

	// Toast styles
	ToastStyle = lipgloss.NewStyle().
			Foreground(ColorGreen).
			PaddingLeft(1)

	ToastErrorStyle = lipgloss.NewStyle().
			Foreground(ColorRed).
			PaddingLeft(1)

	// Help styles
	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorYellow)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorFgMuted)

	// Error styles
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorRed)

	// Success styles
	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorGreen)

	// Dimmed/info style for less important messages
	DimStyle = lipgloss.NewStyle().
			Foreground(ColorFgComment)
)
