package logger

import (
	"io"
	"os"
	"strconv"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// TypeColors holds the console color of each known entry type. The colors do
// not depend on the active profile.
var TypeColors = map[EntryType]lipgloss.Color{
	TypeInfo:     lipgloss.Color("14"), // bright cyan
	TypeError:    lipgloss.Color("9"),  // bright red
	TypeWarning:  lipgloss.Color("11"), // bright yellow
	TypeCritical: lipgloss.Color("1"),  // dark red
	TypeDebug:    lipgloss.Color("10"), // bright green
	"DEFAULT":    neutralColor,
}

const (
	neutralColor  = lipgloss.Color("7")  // gray
	unmappedColor = lipgloss.Color("13") // bright magenta
)

// consoleSink echoes entries to the console as three separately styled
// segments. mu keeps the segments of one entry together.
type consoleSink struct {
	mu       sync.Mutex
	w        io.Writer
	r        *lipgloss.Renderer
	neutral  lipgloss.Style
	unmapped lipgloss.Style
	tags     map[EntryType]lipgloss.Style
	journal  bool
}

func newConsoleSink(w io.Writer, noColor bool) *consoleSink {
	r := lipgloss.NewRenderer(w, envForceTTY())
	if noColor {
		r.SetColorProfile(termenv.Ascii)
	}

	style := func(c lipgloss.Color) lipgloss.Style {
		return r.NewStyle().Foreground(c).TabWidth(lipgloss.NoTabConversion)
	}

	tags := make(map[EntryType]lipgloss.Style, len(TypeColors))
	for t, c := range TypeColors {
		tags[t] = style(c)
	}

	return &consoleSink{
		w:        w,
		r:        r,
		neutral:  style(neutralColor),
		unmapped: style(unmappedColor),
		tags:     tags,
		journal:  shouldUseSyslogPrefix(),
	}
}

func (c *consoleSink) tagStyle(t EntryType) lipgloss.Style {
	if s, ok := c.tags[t]; ok {
		return s
	}
	return c.unmapped
}

func (c *consoleSink) write(ts string, t EntryType, msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// journald adds its own decoration, so the line stays plain there
	if c.journal {
		_, _ = io.WriteString(c.w, syslogPrefixForType(t)+formatLine(ts, t, msg)+lineEnding)
		return
	}

	_, _ = io.WriteString(c.w, c.neutral.Render("["+ts+"]")+" ")
	_, _ = io.WriteString(c.w, c.tagStyle(t).Render("["+string(t)+"]")+" ")
	_, _ = io.WriteString(c.w, c.neutral.Render(msg)+lineEnding)
}

// envForceTTY makes the renderer emit colors even when the writer is not a
// terminal, when FORCE_TTY is set.
func envForceTTY() termenv.OutputOption {
	if force, _ := strconv.ParseBool(os.Getenv("FORCE_TTY")); force {
		return termenv.WithTTY(true)
	}
	return func(*termenv.Output) {}
}

func shouldUseSyslogPrefix() bool {
	return os.Getenv("JOURNAL_STREAM") != ""
}

func syslogPrefixForType(t EntryType) string {
	switch t {
	case TypeCritical:
		return "<2>"
	case TypeError:
		return "<3>"
	case TypeWarning:
		return "<4>"
	case TypeInfo:
		return "<6>"
	case TypeDebug:
		return "<7>"
	default:
		return ""
	}
}
