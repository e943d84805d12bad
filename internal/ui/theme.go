package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// BLK Launcher theme (CLI + TUI).
// Kept intentionally small: reusable styles and a few emojis.

const (
	IconGame    = "🎮"
	IconSparkle = "✨"
	IconStar    = "⭐"
	IconHeart   = "❤️"
	IconTrophy  = "🏆"
	IconBolt    = "⚡"
	IconLock    = "🔒"
	IconUnlock  = "🔓"
	IconQuest   = "🗓️"
	IconClock   = "⏱️"
	IconPlus    = "➕"
	IconWarn    = "⚠️"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	Overlay = lipgloss.NewStyle().BorderStyle(lipgloss.DoubleBorder()).BorderForeground(cBad).Padding(1, 3)
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// XPBar renders a simple progress bar toward the next level.
func XPBar(xp, required, width int) string {
	if width < 4 {
		width = 4
	}
	if required <= 0 {
		required = 1
	}
	filled := xp * width / required
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return Gold.Render(bar)
}

// FavoriteMark renders the star used next to favorited games.
func FavoriteMark(favored bool) string {
	if favored {
		return Gold.Render("★")
	}
	return Muted.Render("☆")
}
