package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yourusername/deskwm/internal/state"
)

var sessionPath string

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Inspect the saved desktop session",
}

var sessionShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the saved session",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := state.LoadSessionFrom(resolveSessionPath())
		if err != nil {
			return fail("Failed to load session", err)
		}
		if jsonOutput {
			return printJSON(s)
		}
		if len(s.Windows) == 0 {
			infoColor.Println("Saved session is empty")
			return nil
		}
		keyColor.Print("Saved: ")
		fmt.Println(s.LastUpdated.Format("2006-01-02 15:04:05"))
		for i, w := range s.Windows {
			flags := ""
			if w.Maximized {
				flags += " maximized"
			}
			if w.Minimized {
				flags += " minimized"
			}
			if w.Active {
				flags += " active"
			}
			fmt.Printf("  %d. %-24s %-12s %.0fx%.0f at (%.0f,%.0f)%s\n",
				i+1, w.Title, w.AppID, w.Normal.Width, w.Normal.Height, w.Normal.X, w.Normal.Y, flags)
		}
		return nil
	},
}

var sessionResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear the saved session",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := resolveSessionPath()
		if err := state.ResetAt(path); err != nil {
			return fail("Failed to reset session", err)
		}
		successColor.Printf("✓ Session cleared (%s)\n", path)
		return nil
	},
}

func resolveSessionPath() string {
	if sessionPath != "" {
		return sessionPath
	}
	return state.GetSessionPath()
}

func addSessionCommands() {
	rootCmd.AddCommand(sessionCmd)
	sessionCmd.PersistentFlags().StringVar(&sessionPath, "file", "", "Session file (default ~/.local/state/deskwm/session.json)")
	sessionCmd.AddCommand(sessionShowCmd)
	sessionCmd.AddCommand(sessionResetCmd)
}
