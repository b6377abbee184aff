package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/shapealbum/internal/album"
	"github.com/san-kum/shapealbum/internal/render"
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	green  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
)

// browser walks the snapshot ledger chronologically. Left/right step
// through PreviousSnapshot/NextSnapshot; the current capture is drawn
// on a braille canvas.
type browser struct {
	alb     *album.Album
	current *album.Snapshot

	width  int
	height int
}

// NewBrowser builds the interactive snapshot browser, opened at the
// earliest capture.
func NewBrowser(a *album.Album) tea.Model {
	b := browser{
		alb:    a,
		width:  80,
		height: 24,
	}
	if snaps := a.Snapshots(); len(snaps) > 0 {
		b.current = snaps[0]
	}
	return b
}

// Run opens the browser in the terminal and blocks until quit.
func Run(a *album.Album) error {
	_, err := tea.NewProgram(NewBrowser(a), tea.WithAltScreen()).Run()
	return err
}

func (b browser) Init() tea.Cmd { return nil }

func (b browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.width = msg.Width
		b.height = msg.Height
		return b, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return b, tea.Quit
		case "left", "h":
			if prev, ok := b.alb.PreviousSnapshot(b.current); ok {
				b.current = prev
			}
			return b, nil
		case "right", "l":
			if next, ok := b.alb.NextSnapshot(b.current); ok {
				b.current = next
			}
			return b, nil
		case "home", "g":
			if snaps := b.alb.Snapshots(); len(snaps) > 0 {
				b.current = snaps[0]
			}
			return b, nil
		case "end", "G":
			if snaps := b.alb.Snapshots(); len(snaps) > 0 {
				b.current = snaps[len(snaps)-1]
			}
			return b, nil
		}
	}
	return b, nil
}

func (b browser) View() string {
	var sb strings.Builder
	sb.WriteString(cyan.Render("shape album") + "\n\n")

	if b.current == nil {
		sb.WriteString(dim.Render("no snapshots captured") + "\n\n")
		sb.WriteString(dim.Render("q quit"))
		return sb.String()
	}

	pos, total := b.position()
	sb.WriteString(fmt.Sprintf("%s %s  %s\n",
		yellow.Render(fmt.Sprintf("[%d/%d]", pos, total)),
		white.Render(b.current.Timestamp().Format("2006-01-02 15:04:05")),
		green.Render(b.current.Description())))
	sb.WriteString(dim.Render(b.current.ID()) + "\n\n")

	cols := b.width - 4
	rows := b.height - 8
	if cols < 20 {
		cols = 20
	}
	if rows < 6 {
		rows = 6
	}
	scene := render.NewScene(cols, rows)
	sb.WriteString(scene.Draw(b.current.Shapes()))

	sb.WriteString("\n" + dim.Render("←/→ navigate  g/G first/last  q quit"))
	return sb.String()
}

func (b browser) position() (int, int) {
	snaps := b.alb.Snapshots()
	for i, s := range snaps {
		if s == b.current {
			return i + 1, len(snaps)
		}
	}
	return 0, len(snaps)
}
