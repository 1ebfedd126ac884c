package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/sys/unix"

	"github.com/yourusername/deskwm/internal/models"
)

// VisualizationOptions controls the appearance of the visualization
type VisualizationOptions struct {
	UseUnicode bool
	ShowIDs    bool
	MaxWidth   int
	MaxHeight  int
}

// DefaultVisualizationOptions returns sensible defaults
func DefaultVisualizationOptions() VisualizationOptions {
	width, height := getTerminalSize()
	return VisualizationOptions{
		UseUnicode: supportsUnicode(),
		ShowIDs:    true,
		MaxWidth:   width,
		MaxHeight:  height - 3, // header and footer lines
	}
}

// VisualizeDesktop renders visible windows back to front, with the
// taskbar as the last canvas row.
func VisualizeDesktop(d *models.Desktop, opts VisualizationOptions) string {
	sc := NewScalingContext(d.Viewport, opts.MaxWidth, opts.MaxHeight)
	canvas := NewCanvas(sc.TermWidth, sc.TermHeight, opts.UseUnicode)
	canvas.DrawBox(0, 0, sc.TermWidth, sc.TermHeight)

	visible := d.Visible()
	for _, win := range visible {
		x, y := sc.PixelToTerminal(win.Frame.X, win.Frame.Y)
		w, h := sc.ScaleSize(win.Frame.Width, win.Frame.Height)
		x, y, w, h = sc.ClampToCanvas(x, y, w, h)
		if w < 3 || h < 2 {
			continue
		}
		canvas.DrawWindow(x, y, w, h, windowLabel(&win, opts.ShowIDs), win.Active)
	}

	if sc.TermHeight > 2 {
		canvas.DrawText(1, sc.TermHeight-2, truncate(taskbarLine(d.Taskbar), sc.TermWidth-2))
	}

	header := fmt.Sprintf("Desktop %.0fx%.0f (workspace %.0fx%.0f)\n",
		d.Viewport.Width, d.Viewport.Height, d.Workspace.Width, d.Workspace.Height)
	footer := fmt.Sprintf("\nTotal: %d windows (%d visible)\n", len(d.Windows), len(visible))

	return header + canvas.String() + footer
}

// windowLabel creates a label for a window
func windowLabel(win *models.Window, showID bool) string {
	title := win.Title
	if title == "" {
		title = win.AppID
	}
	if title == "" {
		title = "untitled"
	}
	if showID {
		return fmt.Sprintf("[%d] %s", win.ID, title)
	}
	return title
}

// taskbarLine renders taskbar buttons; the active one is starred
func taskbarLine(entries []models.TaskbarEntry) string {
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		label := e.Title
		if e.Active {
			label = "*" + label
		}
		if e.ID == 0 {
			label = "+" + label
		}
		parts = append(parts, "["+label+"]")
	}
	return strings.Join(parts, " ")
}

// getTerminalSize returns the current terminal dimensions
func getTerminalSize() (width, height int) {
	ws, err := unix.IoctlGetWinsize(int(os.Stdout.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		// Default to 80x24 if we can't detect
		return 80, 24
	}
	return int(ws.Col), int(ws.Row)
}

// supportsUnicode checks if the terminal supports Unicode
func supportsUnicode() bool {
	lang := os.Getenv("LANG")
	lcAll := os.Getenv("LC_ALL")

	return strings.Contains(lang, "UTF-8") || strings.Contains(lcAll, "UTF-8")
}

// PrintVisualization prints a colored visualization
func PrintVisualization(w io.Writer, d *models.Desktop, opts VisualizationOptions) {
	result := VisualizeDesktop(d, opts)

	if color.NoColor {
		fmt.Fprint(w, result)
		return
	}
	cyan := color.New(color.FgCyan)
	cyan.Fprint(w, result)
}
