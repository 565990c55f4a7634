package utils

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// MessageType is a custom type used as a placeholder for various message types.
type MessageType int

// The message types used accross the CLI application.
const (
	DefaultMessage MessageType = iota
	SuccessMessage
	ErrorMessage
	StatusMessage
)

// Colors used accross the CLI application. Default messages are left unstyled.
var messageColors = map[MessageType]lipgloss.Color{
	StatusMessage:  lipgloss.Color("6"),
	SuccessMessage: lipgloss.Color("2"),
	ErrorMessage:   lipgloss.Color("1"),
}

// Decorator colors the messages written to a single output.
// The color profile is detected from the writer, so pipes and files get plain text.
type Decorator struct {
	renderer *lipgloss.Renderer
}

// NewDecorator creates a decorator for the messages written to w.
func NewDecorator(w io.Writer) *Decorator {
	return &Decorator{renderer: lipgloss.NewRenderer(w)}
}

// SetColorProfile overrides the detected color profile.
func (d *Decorator) SetColorProfile(p termenv.Profile) {
	d.renderer.SetColorProfile(p)
}

// Text shows the message types in different colors.
func (d *Decorator) Text(s string, msgType MessageType) string {
	c, ok := messageColors[msgType]
	if !ok {
		return s
	}
	return d.renderer.NewStyle().Foreground(c).Render(s)
}

// FormatTime formats time.Duration output to a human readable value.
func FormatTime(d time.Duration) string {
	if d.Seconds() < 60.0 {
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
	if d.Minutes() < 60.0 {
		remainingSeconds := math.Mod(d.Seconds(), 60)
		return fmt.Sprintf("%dm %.2fs", int64(d.Minutes()), remainingSeconds)
	}
	if d.Hours() < 24.0 {
		remainingMinutes := math.Mod(d.Minutes(), 60)
		remainingSeconds := math.Mod(d.Seconds(), 60)
		return fmt.Sprintf("%dh %dm %.2fs",
			int64(d.Hours()), int64(remainingMinutes), remainingSeconds)
	}
	remainingHours := math.Mod(d.Hours(), 24)
	remainingMinutes := math.Mod(d.Minutes(), 60)
	remainingSeconds := math.Mod(d.Seconds(), 60)
	return fmt.Sprintf("%dd %dh %dm %.2fs",
		int64(d.Hours()/24), int64(remainingHours),
		int64(remainingMinutes), remainingSeconds)
}
