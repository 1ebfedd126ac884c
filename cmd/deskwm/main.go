package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/yourusername/deskwm/internal/client"
	"github.com/yourusername/deskwm/internal/config"
	"github.com/yourusername/deskwm/internal/logging"
	"github.com/yourusername/deskwm/internal/models"
	"github.com/yourusername/deskwm/internal/output"
	"github.com/yourusername/deskwm/internal/server"
	"github.com/yourusername/deskwm/internal/types"
)

var (
	socketPath string
	configPath string
	timeout    time.Duration
	jsonOutput bool
	noColor    bool
	debugMode  bool

	// Color functions
	successColor = color.New(color.FgGreen, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	infoColor    = color.New(color.FgCyan)
	keyColor     = color.New(color.FgYellow)
)

// rootCmd is the base command
var rootCmd = &cobra.Command{
	Use:   "deskwm",
	Short: "Desktop window manager server and CLI",
	Long: `deskwm runs a desktop-shell window manager behind a unix socket and
drives it from the command line.

Start the server with 'deskwm serve', then open, focus, minimize, maximize,
drag, resize and close windows with the other commands.`,
	Version:       server.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// pingCmd tests server connectivity
var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Test connection to the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := newClient(cmd)
		defer c.Close()

		start := time.Now()
		result, err := c.Ping(context.Background())
		elapsed := time.Since(start)
		if err != nil {
			return fail("Ping failed", err)
		}

		if jsonOutput {
			return printJSON(result)
		}

		successColor.Println("✓ Pong received")
		fmt.Printf("Response time: %v\n", elapsed)
		if v, ok := result["version"].(string); ok {
			keyColor.Print("Version: ")
			fmt.Println(v)
		}
		if up, ok := result["uptime"].(string); ok {
			keyColor.Print("Uptime: ")
			fmt.Println(up)
		}
		if n, ok := result["windows"].(float64); ok {
			keyColor.Print("Windows: ")
			fmt.Println(int(n))
		}
		return nil
	},
}

// dumpCmd dumps the complete state
var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Dump complete window manager state",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := getDesktop(cmd)
		if err != nil {
			return err
		}
		// Always JSON; it's too nested for a table
		return printJSON(d)
	},
}

// MARK: - List Commands

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List windows, applications or taskbar entries",
}

var listWindowsCmd = &cobra.Command{
	Use:   "windows",
	Short: "List open windows, front-most first",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := getDesktop(cmd)
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(d.Windows)
		}
		if len(d.Windows) == 0 {
			infoColor.Println("No windows open")
			return nil
		}
		output.PrintWindowsTable(os.Stdout, d.Windows)
		return nil
	},
}

var listAppsCmd = &cobra.Command{
	Use:   "apps",
	Short: "List registered applications",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := getDesktop(cmd)
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(d.Applications)
		}
		output.PrintApplicationsTable(os.Stdout, d.Applications)
		return nil
	},
}

var listTaskbarCmd = &cobra.Command{
	Use:   "taskbar",
	Short: "List taskbar buttons",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := getDesktop(cmd)
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(d.Taskbar)
		}
		output.PrintTaskbarTable(os.Stdout, d.Taskbar)
		return nil
	},
}

// MARK: - Show Commands

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Visualize the desktop",
}

// Visualization flags
var (
	showASCII   bool
	showUnicode bool
	showNoIDs   bool
	showWidth   int
	showHeight  int
)

var showDesktopCmd = &cobra.Command{
	Use:   "desktop",
	Short: "Draw the desktop with its windows and taskbar",
	Long: `Draws the viewport scaled to the terminal. Windows are drawn back to
front; the focused window has a heavier border. Minimized windows only
appear in the taskbar row.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := getDesktop(cmd)
		if err != nil {
			return err
		}
		output.PrintVisualization(os.Stdout, d, getVisualizationOptions())
		return nil
	},
}

// viewportCmd resizes the desktop
var viewportCmd = &cobra.Command{
	Use:   "viewport <WIDTHxHEIGHT>",
	Short: "Set the viewport size; maximized windows are refitted",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		size, err := config.ParseSize(args[0])
		if err != nil {
			return fail("Invalid viewport", err)
		}

		c := newClient(cmd)
		defer c.Close()

		result, err := c.CallMethod(context.Background(), "desktop.setViewport", map[string]interface{}{
			"width":  size.Width,
			"height": size.Height,
		})
		if err != nil {
			return fail("Failed to set viewport", err)
		}
		if jsonOutput {
			return printJSON(result)
		}
		successColor.Printf("✓ Viewport set to %s\n", config.FormatSize(size))
		return nil
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&socketPath, "socket", client.DefaultSocketPath, "Unix socket path")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.config/deskwm/config.yaml)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", client.DefaultTimeout, "Request timeout")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(pingCmd)
	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(viewportCmd)
	rootCmd.AddCommand(focusCmd)

	rootCmd.AddCommand(listCmd)
	listCmd.AddCommand(listWindowsCmd)
	listCmd.AddCommand(listAppsCmd)
	listCmd.AddCommand(listTaskbarCmd)

	rootCmd.AddCommand(showCmd)
	showCmd.AddCommand(showDesktopCmd)
	showDesktopCmd.Flags().BoolVar(&showASCII, "ascii", false, "Use ASCII box characters")
	showDesktopCmd.Flags().BoolVar(&showUnicode, "unicode", false, "Use Unicode box characters")
	showDesktopCmd.Flags().BoolVar(&showNoIDs, "no-ids", false, "Hide window IDs")
	showDesktopCmd.Flags().IntVar(&showWidth, "width", 0, "Override terminal width")
	showDesktopCmd.Flags().IntVar(&showHeight, "height", 0, "Override terminal height")

	addWindowCommands()
	addAppCommands()
	addConfigCommands()
	addSessionCommands()

	// Disable color if requested, start logging
	cobra.OnInitialize(func() {
		if noColor {
			color.NoColor = true
		}
		if err := logging.Init(debugMode); err != nil {
			fmt.Fprintf(os.Stderr, "warning: logging disabled: %v\n", err)
		}
	})
}

func main() {
	defer logging.Close()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// Helper functions

func printJSON(data interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

func printError(msg string) {
	if noColor {
		fmt.Fprintln(os.Stderr, "Error:", msg)
	} else {
		errorColor.Fprint(os.Stderr, "✗ Error: ")
		fmt.Fprintln(os.Stderr, msg)
	}
}

// fail prints and returns a wrapped error
func fail(what string, err error) error {
	printError(fmt.Sprintf("%s: %v", what, err))
	return fmt.Errorf("%s: %w", strings.ToLower(what), err)
}

// resolveSocket prefers --socket, then the config file, then the default
func resolveSocket(cmd *cobra.Command) string {
	if cmd.Flags().Changed("socket") {
		return socketPath
	}
	if cfg, err := config.LoadOrDefault(configPath); err == nil && cfg.Server.Socket != "" {
		return cfg.Server.Socket
	}
	return socketPath
}

func newClient(cmd *cobra.Command) *client.Client {
	return client.NewClient(resolveSocket(cmd), timeout)
}

func getDesktop(cmd *cobra.Command) (*models.Desktop, error) {
	c := newClient(cmd)
	defer c.Close()

	d, err := c.Dump(context.Background())
	if err != nil {
		return nil, fail("Failed to get state", err)
	}
	return d, nil
}

// parseWindowID parses a window id argument
func parseWindowID(s string) (uint32, error) {
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid window ID: %s", s)
	}
	return uint32(id), nil
}

// parsePoint parses "x,y"
func parsePoint(s string) (types.Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return types.Point{}, fmt.Errorf("expected x,y, got %q", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return types.Point{}, fmt.Errorf("invalid x in %q", s)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return types.Point{}, fmt.Errorf("invalid y in %q", s)
	}
	return types.Point{X: x, Y: y}, nil
}

// getVisualizationOptions builds options from flags
func getVisualizationOptions() output.VisualizationOptions {
	opts := output.DefaultVisualizationOptions()

	if showASCII {
		opts.UseUnicode = false
	}
	if showUnicode {
		opts.UseUnicode = true
	}
	if showNoIDs {
		opts.ShowIDs = false
	}
	if showWidth > 0 {
		opts.MaxWidth = showWidth
	}
	if showHeight > 0 {
		opts.MaxHeight = showHeight
	}

	return opts
}
