package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Tab           lipgloss.Style
	TabActive     lipgloss.Style
	Header        lipgloss.Style
	HeaderSorted  lipgloss.Style
	HeaderCursor  lipgloss.Style
	Row           lipgloss.Style
	RowSelected   lipgloss.Style
	EmptyState    lipgloss.Style
	Dim           lipgloss.Style
	Help          lipgloss.Style
	Search        lipgloss.Style
	Confirm       lipgloss.Style
	Main          lipgloss.Style
	Scroll        lipgloss.Style
	NotifySuccess lipgloss.Style
	NotifyError   lipgloss.Style
	NotifyWarning lipgloss.Style
	NotifyInfo    lipgloss.Style
	ModalBox      lipgloss.Style
	PreviewBox    lipgloss.Style
}

// NewStyles creates a Styles instance for the light or dark palette
func NewStyles(dark bool) *Styles {
	// Shared chrome
	s := &Styles{
		Confirm: lipgloss.NewStyle().Bold(true),
		Dim:     lipgloss.NewStyle().Faint(true),
		Help:    lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2).
			MaxHeight(100), // Will be dynamically adjusted
		Scroll:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		NotifySuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		NotifyError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		NotifyWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		NotifyInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		ModalBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(1, 2).
			BorderForeground(lipgloss.Color("203")),
		PreviewBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(1, 2).
			BorderForeground(lipgloss.Color("241")),
	}

	if dark {
		s.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("117"))
		s.Tab = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
		s.TabActive = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("117")).Underline(true)
		s.Header = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252"))
		s.HeaderSorted = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
		s.HeaderCursor = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("238"))
		s.Row = lipgloss.NewStyle().Foreground(lipgloss.Color("251"))
		s.RowSelected = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("238"))
		s.EmptyState = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("245"))
		s.Search = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
		return s
	}

	s.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	s.Tab = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	s.TabActive = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")).Underline(true)
	s.Header = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("236"))
	s.HeaderSorted = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("166"))
	s.HeaderCursor = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("16")).Background(lipgloss.Color("253"))
	s.Row = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	s.RowSelected = lipgloss.NewStyle().Foreground(lipgloss.Color("16")).Background(lipgloss.Color("253"))
	s.EmptyState = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241"))
	s.Search = lipgloss.NewStyle().Foreground(lipgloss.Color("166"))
	return s
}

// NotifyStyle returns the style for a notification severity class name.
func (s *Styles) NotifyStyle(class string) lipgloss.Style {
	switch class {
	case "success":
		return s.NotifySuccess
	case "error":
		return s.NotifyError
	case "warning":
		return s.NotifyWarning
	default:
		return s.NotifyInfo
	}
}
