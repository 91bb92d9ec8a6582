package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette — calm, studious, indigo-forward
var (
	Primary   = lipgloss.Color("#6366F1") // Indigo
	Secondary = lipgloss.Color("#0EA5E9") // Sky
	Accent    = lipgloss.Color("#F59E0B") // Amber
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#EF4444") // Red
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0F172A") // Deep Navy
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Chat
var (
	StudentLabel = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	TutorLabel = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	ChatBubble = lipgloss.NewStyle().
			Foreground(Text).
			PaddingLeft(2)

	Pending = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true).
		PaddingLeft(2)
)

// Task list
var (
	TaskDone = lipgloss.NewStyle().
			Foreground(TextDim).
			Strikethrough(true)

	TaskOpen = lipgloss.NewStyle().
			Foreground(Text)

	DateHeading = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true).
			Underline(true)

	PriorityHigh = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	PriorityMedium = lipgloss.NewStyle().
			Foreground(Accent)

	PriorityLow = lipgloss.NewStyle().
			Foreground(TextDim)

	XPBadge = lipgloss.NewStyle().
		Foreground(Success)
)
