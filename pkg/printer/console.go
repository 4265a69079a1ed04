package printer

import (
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Console is a console sink. On a terminal it colors debug lines; on
// anything else it writes the lines exactly as rendered.
type Console struct {
	mu         sync.Mutex
	w          io.Writer
	styled     bool
	lineStyle  lipgloss.Style
	debugStyle lipgloss.Style
	err        error
}

// NewConsole wraps w, enabling styles only when w is a terminal.
func NewConsole(w io.Writer) *Console {
	return NewStyledConsole(w, isTerminal(w))
}

// NewStyledConsole wraps w with styles forced on or off.
func NewStyledConsole(w io.Writer, styled bool) *Console {
	r := lipgloss.NewRenderer(w)
	return &Console{
		w:      w,
		styled: styled,
		lineStyle: r.NewStyle().
			TabWidth(lipgloss.NoTabConversion),
		debugStyle: r.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true).
			TabWidth(lipgloss.NoTabConversion),
	}
}

// WriteLine writes one rendered print followed by a newline.
func (c *Console) WriteLine(line string, isDebug bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.styled {
		style := c.lineStyle
		if isDebug {
			style = c.debugStyle
		}
		// Styles are applied per line so lipgloss does not pad the block.
		lines := strings.Split(line, "\n")
		for i, l := range lines {
			lines[i] = style.Render(l)
		}
		line = strings.Join(lines, "\n")
	}

	_, err := io.WriteString(c.w, line+"\n")
	if err != nil && c.err == nil {
		c.err = err
	}
	return err
}

// Write passes p through unstyled.
func (c *Console) Write(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	n, err := c.w.Write(p)
	if err != nil && c.err == nil {
		c.err = err
	}
	return n, err
}

// Err returns the first write error seen, if any.
func (c *Console) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
