package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/yourusername/deskwm/internal/models"
)

// PrintWindowsTable prints windows in a table format, front-most first
func PrintWindowsTable(w io.Writer, windows []models.Window) {
	table := tablewriter.NewWriter(w)
	table.Header("ID", "Title", "App", "State", "Position", "Size", "Z", "Active")

	for i := len(windows) - 1; i >= 0; i-- {
		win := windows[i]
		active := ""
		if win.Active {
			active = "*"
		}
		z := "-"
		if win.ZOrder >= 0 {
			z = fmt.Sprintf("%d", win.ZOrder)
		}

		table.Append(
			fmt.Sprintf("%d", win.ID),
			truncate(win.Title, 30),
			truncate(win.AppID, 20),
			win.State,
			fmt.Sprintf("%.0f,%.0f", win.Frame.X, win.Frame.Y),
			fmt.Sprintf("%.0fx%.0f", win.Frame.Width, win.Frame.Height),
			z,
			active,
		)
	}

	table.Render()
}

// PrintApplicationsTable prints registered applications in a table format
func PrintApplicationsTable(w io.Writer, apps []models.Application) {
	table := tablewriter.NewWriter(w)
	table.Header("ID", "Title", "Singleton", "Running")

	for _, app := range apps {
		singleton := ""
		if app.Singleton {
			singleton = "yes"
		}
		table.Append(
			app.ID,
			truncate(app.Title, 30),
			singleton,
			fmt.Sprintf("%d", app.Running),
		)
	}

	table.Render()
}

// PrintTaskbarTable prints taskbar buttons in display order
func PrintTaskbarTable(w io.Writer, entries []models.TaskbarEntry) {
	table := tablewriter.NewWriter(w)
	table.Header("Window", "Title", "App", "Active", "Pinned")

	for _, e := range entries {
		id := "launcher"
		if e.ID != 0 {
			id = fmt.Sprintf("%d", e.ID)
		}
		active, pinned := "", ""
		if e.Active {
			active = "*"
		}
		if e.Pinned {
			pinned = "yes"
		}
		table.Append(id, truncate(e.Title, 30), e.AppID, active, pinned)
	}

	table.Render()
}

// PrintWindowDetail prints detailed information about a single window
func PrintWindowDetail(w io.Writer, win *models.Window) {
	fmt.Fprintf(w, "Window ID: %d\n", win.ID)
	fmt.Fprintf(w, "Title: %s\n", win.Title)
	if win.AppID != "" {
		fmt.Fprintf(w, "Application: %s\n", win.AppID)
	}
	fmt.Fprintf(w, "State: %s\n", win.State)
	fmt.Fprintf(w, "Active: %v\n", win.Active)
	fmt.Fprintf(w, "Frame: %s\n", formatRect(win.Frame.X, win.Frame.Y, win.Frame.Width, win.Frame.Height))
	fmt.Fprintf(w, "Normal: %s\n", formatRect(win.Normal.X, win.Normal.Y, win.Normal.Width, win.Normal.Height))
	fmt.Fprintf(w, "Min Size: %.0fx%.0f\n", win.MinSize.Width, win.MinSize.Height)
	fmt.Fprintf(w, "Capabilities: %s\n", formatCapabilities(win.Capabilities))
	fmt.Fprintf(w, "Surface: %s\n", win.Surface)
}

// Helper functions

func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}

func formatRect(x, y, w, h float64) string {
	return fmt.Sprintf("(%.0f, %.0f) %.0fx%.0f", x, y, w, h)
}

func formatCapabilities(caps map[string]bool) string {
	var on []string
	for _, name := range []string{"resizable", "minimizable", "maximizable", "closable"} {
		if caps[name] {
			on = append(on, name)
		}
	}
	if len(on) == 0 {
		return "none"
	}
	return strings.Join(on, ", ")
}
