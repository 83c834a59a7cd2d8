package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// NotificationView is one banner ready for display
type NotificationView struct {
	Icon    string
	Class   string // "success", "error", "warning", "info"
	Message string
}

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int

	PageTitles []string
	PageIndex  int
	Table      TableState

	Loading     bool
	SearchQuery string // applied filter on the current page
	InputMode   string // "" outside of text entry
	TextInput   string

	Notifications []NotificationView

	ShowHelp       bool
	ModalContent   string
	PreviewContent string
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	tableRender *TableRenderer
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer for the light or dark palette
func NewRenderer(dark bool) *Renderer {
	styles := NewStyles(dark)
	return &Renderer{
		styles:      styles,
		tableRender: NewTableRenderer(styles),
		popupRender: NewPopupRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.renderTitleLine(state))
	content.WriteString("\n")
	content.WriteString(r.renderTabs(state))
	content.WriteString("\n\n")

	// Search prompt while typing, applied filter otherwise
	if state.InputMode == "search" {
		content.WriteString(r.styles.Search.Render("Search: " + state.TextInput))
		content.WriteString("\n\n")
	} else if state.SearchQuery != "" {
		content.WriteString(r.styles.Search.Render(fmt.Sprintf("[Search: %s]", state.SearchQuery)))
		content.WriteString("\n\n")
	}

	// Main content
	if state.Loading && len(state.Table.Table.Rows) == 0 {
		content.WriteString(r.styles.Dim.Render("Loading listings..."))
	} else {
		content.WriteString(r.tableRender.Render(state.Table))
	}

	// Notifications stack above the help bar
	notifyBlock := r.renderNotifications(state.Notifications)

	helpText := r.styles.Help.Render("Press ? for help")

	// Pad so notifications and help sit at the bottom
	currentLines := strings.Count(content.String(), "\n") + 1
	availableLines := state.Height - 2
	if availableLines <= 0 {
		availableLines = 22 // Default terminal height minus padding
	}
	reserved := 1 + len(state.Notifications)
	paddingNeeded := availableLines - currentLines - reserved
	if paddingNeeded > 0 {
		content.WriteString(strings.Repeat("\n", paddingNeeded))
	}

	if notifyBlock != "" {
		content.WriteString("\n")
		content.WriteString(notifyBlock)
	}
	content.WriteString("\n")
	content.WriteString(helpText)

	mainStyle := r.styles.Main.MaxHeight(state.Height)
	finalContent := mainStyle.Render(content.String())

	// Overlay popups on top of main content
	if state.ModalContent != "" {
		return r.popupRender.RenderPopupOverlay(finalContent, state.ModalContent, state.Height, state.Width, r.styles.ModalBox)
	}

	if state.PreviewContent != "" {
		return r.popupRender.RenderPopupOverlay(finalContent, state.PreviewContent, state.Height, state.Width, r.styles.PreviewBox)
	}

	if state.ShowHelp {
		return r.popupRender.RenderPopupOverlay(finalContent, r.renderHelpContent(), state.Height, state.Width, r.styles.PreviewBox)
	}

	return finalContent
}

func (r *Renderer) renderTitleLine(state ViewState) string {
	logo := r.styles.Title.Render("careboard")
	if !state.Loading {
		return logo
	}

	spinner := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
	frame := int(time.Now().UnixMilli()/80) % len(spinner)
	indicator := r.styles.Dim.Render(fmt.Sprintf("%s Loading", spinner[frame]))

	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80 // Default terminal width
	}
	padding := termWidth - 4 - lipgloss.Width(logo) - lipgloss.Width(indicator)
	if padding > 0 {
		return logo + strings.Repeat(" ", padding) + indicator
	}
	return fmt.Sprintf("%s  %s", logo, indicator)
}

func (r *Renderer) renderTabs(state ViewState) string {
	parts := make([]string, len(state.PageTitles))
	for i, title := range state.PageTitles {
		label := fmt.Sprintf("%d:%s", i+1, title)
		if i == state.PageIndex {
			parts[i] = r.styles.TabActive.Render(label)
		} else {
			parts[i] = r.styles.Tab.Render(label)
		}
	}
	return strings.Join(parts, "  ")
}

func (r *Renderer) renderNotifications(notifications []NotificationView) string {
	if len(notifications) == 0 {
		return ""
	}
	lines := make([]string, len(notifications))
	for i, n := range notifications {
		style := r.styles.NotifyStyle(n.Class)
		lines[i] = style.Render(fmt.Sprintf("%s %s", n.Icon, n.Message))
	}
	return strings.Join(lines, "\n")
}

// renderHelpContent renders the help popup body
func (r *Renderer) renderHelpContent() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var help strings.Builder

	help.WriteString(titleStyle.Render("Careboard Help"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Navigation"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render("↑/↓, j/k"), descStyle.Render("Move between rows")))
	help.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render("←/→, h/l"), descStyle.Render("Move column cursor")))
	help.WriteString(fmt.Sprintf("  %s    %s\n", keyStyle.Render("PgUp/PgDn"), descStyle.Render("Page up/down")))
	help.WriteString(fmt.Sprintf("  %s       %s\n", keyStyle.Render("gg/G"), descStyle.Render("Go to top/bottom")))
	help.WriteString(fmt.Sprintf("  %s   %s\n", keyStyle.Render("1-5, Tab"), descStyle.Render("Switch listing page")))

	help.WriteString(sectionStyle.Render("Table"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s            %s\n", keyStyle.Render("s"), descStyle.Render("Toggle sort on column under cursor")))
	help.WriteString(fmt.Sprintf("  %s            %s\n", keyStyle.Render("/"), descStyle.Render("Search (filters as you type)")))
	help.WriteString(fmt.Sprintf("  %s          %s\n", keyStyle.Render("Esc"), descStyle.Render("Clear search")))

	help.WriteString(sectionStyle.Render("Records"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s      %s\n", keyStyle.Render("Enter/v"), descStyle.Render("View record details")))
	help.WriteString(fmt.Sprintf("  %s            %s\n", keyStyle.Render("d"), descStyle.Render("Delete record (asks to confirm)")))
	help.WriteString(fmt.Sprintf("  %s            %s\n", keyStyle.Render("c"), descStyle.Render("Copy row to clipboard")))
	help.WriteString(fmt.Sprintf("  %s            %s\n", keyStyle.Render("e"), descStyle.Render("Export page to CSV")))
	help.WriteString(fmt.Sprintf("  %s            %s\n", keyStyle.Render("p"), descStyle.Render("Preview record image")))

	help.WriteString(sectionStyle.Render("Other"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s            %s\n", keyStyle.Render("r"), descStyle.Render("Reload listings")))
	help.WriteString(fmt.Sprintf("  %s            %s\n", keyStyle.Render("t"), descStyle.Render("Toggle dark mode")))
	help.WriteString(fmt.Sprintf("  %s            %s\n", keyStyle.Render("?"), descStyle.Render("Toggle this help")))
	help.WriteString(fmt.Sprintf("  %s            %s", keyStyle.Render("q"), descStyle.Render("Quit")))

	return help.String()
}
