package output

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used by commands.
type Styles struct {
	Header1  lipgloss.Style
	Header2  lipgloss.Style
	Bold     lipgloss.Style
	Muted    lipgloss.Style
	Success  lipgloss.Style
	Warning  lipgloss.Style
	Error    lipgloss.Style
	Info     lipgloss.Style
	FilePath lipgloss.Style
}

// Palette
var (
	colorPrimary = lipgloss.AdaptiveColor{Light: "#1F6FEB", Dark: "#58A6FF"}
	colorMuted   = lipgloss.AdaptiveColor{Light: "#6E7781", Dark: "#8B949E"}
	colorSuccess = lipgloss.AdaptiveColor{Light: "#1A7F37", Dark: "#3FB950"}
	colorWarning = lipgloss.AdaptiveColor{Light: "#9A6700", Dark: "#D29922"}
	colorError   = lipgloss.AdaptiveColor{Light: "#CF222E", Dark: "#F85149"}
	colorInfo    = lipgloss.AdaptiveColor{Light: "#0969DA", Dark: "#79C0FF"}
)

// NewStyles builds styles bound to a lipgloss renderer, so the renderer's
// color profile decides whether escape codes are emitted.
func NewStyles(lr *lipgloss.Renderer) *Styles {
	return &Styles{
		Header1:  lr.NewStyle().Bold(true).Foreground(colorPrimary).Underline(true),
		Header2:  lr.NewStyle().Bold(true).Foreground(colorPrimary),
		Bold:     lr.NewStyle().Bold(true),
		Muted:    lr.NewStyle().Foreground(colorMuted),
		Success:  lr.NewStyle().Foreground(colorSuccess),
		Warning:  lr.NewStyle().Foreground(colorWarning),
		Error:    lr.NewStyle().Foreground(colorError).Bold(true),
		Info:     lr.NewStyle().Foreground(colorInfo),
		FilePath: lr.NewStyle().Foreground(colorPrimary).Underline(true),
	}
}
