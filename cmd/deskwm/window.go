package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yourusername/deskwm/internal/client"
	"github.com/yourusername/deskwm/internal/mouse"
	"github.com/yourusername/deskwm/internal/output"
	"github.com/yourusername/deskwm/internal/types"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Create and manipulate windows",
}

// Create flags
var (
	createTitle      string
	createIcon       string
	createApp        string
	createX          float64
	createY          float64
	createWidth      float64
	createHeight     float64
	createMinWidth   float64
	createMinHeight  float64
	createNoResize   bool
	createNoMinimize bool
	createNoMaximize bool
	createNoClose    bool
)

var windowCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Open a new window and focus it",
	RunE: func(cmd *cobra.Command, args []string) error {
		params := map[string]interface{}{"title": createTitle}
		if createIcon != "" {
			params["icon"] = createIcon
		}
		if createApp != "" {
			params["appId"] = createApp
		}

		floats := []struct {
			flag string
			key  string
			val  float64
		}{
			{"x", "x", createX},
			{"y", "y", createY},
			{"width", "width", createWidth},
			{"height", "height", createHeight},
			{"min-width", "minWidth", createMinWidth},
			{"min-height", "minHeight", createMinHeight},
		}
		for _, f := range floats {
			if cmd.Flags().Changed(f.flag) {
				params[f.key] = f.val
			}
		}

		if createNoResize {
			params["resizable"] = false
		}
		if createNoMinimize {
			params["minimizable"] = false
		}
		if createNoMaximize {
			params["maximizable"] = false
		}
		if createNoClose {
			params["closable"] = false
		}

		c := newClient(cmd)
		defer c.Close()

		id, err := c.CreateWindow(context.Background(), params)
		if err != nil {
			return fail("Failed to create window", err)
		}
		if jsonOutput {
			return printJSON(map[string]interface{}{"windowId": id})
		}
		successColor.Printf("✓ Created window %d\n", id)
		return nil
	},
}

// windowAction builds a command that applies one operation to a window id
func windowAction(use, short, verb string, op func(*client.Client, context.Context, uint32) error) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <window-id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseWindowID(args[0])
			if err != nil {
				return fail("Invalid argument", err)
			}

			c := newClient(cmd)
			defer c.Close()

			if err := op(c, context.Background(), id); err != nil {
				return fail(fmt.Sprintf("Failed to %s window %d", verb, id), err)
			}
			if jsonOutput {
				return printJSON(map[string]interface{}{"windowId": id, "ok": true})
			}
			successColor.Printf("✓ Window %d: %s\n", id, verb)
			return nil
		},
	}
}

var windowShowCmd = &cobra.Command{
	Use:   "show <window-id>",
	Short: "Show details for one window",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseWindowID(args[0])
		if err != nil {
			return fail("Invalid argument", err)
		}
		d, err := getDesktop(cmd)
		if err != nil {
			return err
		}
		win := d.GetWindow(id)
		if win == nil {
			return fail("Lookup failed", fmt.Errorf("window %d not found", id))
		}
		if jsonOutput {
			return printJSON(win)
		}
		output.PrintWindowDetail(os.Stdout, win)
		return nil
	},
}

var windowTitleCmd = &cobra.Command{
	Use:   "title <window-id> <title>",
	Short: "Change a window's title",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseWindowID(args[0])
		if err != nil {
			return fail("Invalid argument", err)
		}

		c := newClient(cmd)
		defer c.Close()

		if err := c.SetTitle(context.Background(), id, args[1]); err != nil {
			return fail("Failed to set title", err)
		}
		if !jsonOutput {
			successColor.Printf("✓ Window %d renamed to %q\n", id, args[1])
		}
		return nil
	},
}

var windowUpdateAllCmd = &cobra.Command{
	Use:   "update-all",
	Short: "Ask every window to refresh itself",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := newClient(cmd)
		defer c.Close()

		if err := c.UpdateAll(context.Background()); err != nil {
			return fail("Failed to update windows", err)
		}
		if !jsonOutput {
			successColor.Println("✓ Windows updated")
		}
		return nil
	},
}

// Gesture flags
var (
	gestureFrom  string
	gestureTo    string
	gestureSteps int
)

var windowDragCmd = &cobra.Command{
	Use:   "drag <window-id>",
	Short: "Drag a window by its title bar",
	Long: `Presses at --from, moves to --to in --steps increments and releases.
The window moves by the pointer delta, clamped so part of it stays visible.

Example:
  deskwm window drag 3 --from 120,60 --to 400,300`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, from, to, err := gestureArgs(args[0])
		if err != nil {
			return fail("Invalid argument", err)
		}

		c := newClient(cmd)
		defer c.Close()

		if err := mouse.Drag(context.Background(), c, id, from, to, gestureSteps); err != nil {
			return fail("Drag failed", err)
		}
		if !jsonOutput {
			successColor.Printf("✓ Dragged window %d\n", id)
		}
		return nil
	},
}

var windowResizeCmd = &cobra.Command{
	Use:   "resize <window-id> <edge>",
	Short: "Resize a window from an edge or corner",
	Long: `Edges: top, bottom, left, right, top-left, top-right, bottom-left,
bottom-right (or n, s, w, e, nw, ne, sw, se).

Example:
  deskwm window resize 3 bottom-right --from 650,450 --to 800,600`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, from, to, err := gestureArgs(args[0])
		if err != nil {
			return fail("Invalid argument", err)
		}
		edge, ok := types.ParseEdge(args[1])
		if !ok {
			return fail("Invalid argument", fmt.Errorf("unknown edge %q", args[1]))
		}

		c := newClient(cmd)
		defer c.Close()

		if err := mouse.Resize(context.Background(), c, id, edge, from, to, gestureSteps); err != nil {
			return fail("Resize failed", err)
		}
		if !jsonOutput {
			successColor.Printf("✓ Resized window %d from %s\n", id, edge)
		}
		return nil
	},
}

func gestureArgs(idArg string) (uint32, types.Point, types.Point, error) {
	id, err := parseWindowID(idArg)
	if err != nil {
		return 0, types.Point{}, types.Point{}, err
	}
	from, err := parsePoint(gestureFrom)
	if err != nil {
		return 0, types.Point{}, types.Point{}, fmt.Errorf("--from: %w", err)
	}
	to, err := parsePoint(gestureTo)
	if err != nil {
		return 0, types.Point{}, types.Point{}, fmt.Errorf("--to: %w", err)
	}
	return id, from, to, nil
}

func addWindowCommands() {
	rootCmd.AddCommand(windowCmd)

	windowCmd.AddCommand(windowCreateCmd)
	windowCreateCmd.Flags().StringVar(&createTitle, "title", "", "Window title")
	windowCreateCmd.Flags().StringVar(&createIcon, "icon", "", "Taskbar icon")
	windowCreateCmd.Flags().StringVar(&createApp, "app", "", "Owning application id")
	windowCreateCmd.Flags().Float64Var(&createX, "x", 0, "Left edge (default: cascade)")
	windowCreateCmd.Flags().Float64Var(&createY, "y", 0, "Top edge (default: cascade)")
	windowCreateCmd.Flags().Float64Var(&createWidth, "width", 0, "Width (default from config)")
	windowCreateCmd.Flags().Float64Var(&createHeight, "height", 0, "Height (default from config)")
	windowCreateCmd.Flags().Float64Var(&createMinWidth, "min-width", 0, "Minimum width")
	windowCreateCmd.Flags().Float64Var(&createMinHeight, "min-height", 0, "Minimum height")
	windowCreateCmd.Flags().BoolVar(&createNoResize, "no-resize", false, "Disallow resizing")
	windowCreateCmd.Flags().BoolVar(&createNoMinimize, "no-minimize", false, "Disallow minimizing")
	windowCreateCmd.Flags().BoolVar(&createNoMaximize, "no-maximize", false, "Disallow maximizing")
	windowCreateCmd.Flags().BoolVar(&createNoClose, "no-close", false, "Disallow closing")

	windowCmd.AddCommand(windowAction("activate", "Focus a window and bring it to front", "activate", (*client.Client).ActivateWindow))
	windowCmd.AddCommand(windowAction("minimize", "Minimize a window", "minimize", (*client.Client).MinimizeWindow))
	windowCmd.AddCommand(windowAction("restore", "Un-minimize a window without focusing it", "restore", (*client.Client).RestoreWindow))
	windowCmd.AddCommand(windowAction("maximize", "Maximize a window to the workspace", "maximize", (*client.Client).MaximizeWindow))
	windowCmd.AddCommand(windowAction("unmaximize", "Restore a maximized window's geometry", "unmaximize", (*client.Client).RestoreFromMaximized))
	windowCmd.AddCommand(windowAction("toggle", "Toggle maximized state", "toggle", (*client.Client).ToggleMaximize))
	windowCmd.AddCommand(windowAction("close", "Close a window", "close", (*client.Client).CloseWindow))

	windowCmd.AddCommand(windowShowCmd)
	windowCmd.AddCommand(windowTitleCmd)
	windowCmd.AddCommand(windowUpdateAllCmd)

	windowCmd.AddCommand(windowDragCmd)
	windowCmd.AddCommand(windowResizeCmd)
	for _, c := range []*cobra.Command{windowDragCmd, windowResizeCmd} {
		c.Flags().StringVar(&gestureFrom, "from", "", "Press point as x,y")
		c.Flags().StringVar(&gestureTo, "to", "", "Release point as x,y")
		c.Flags().IntVar(&gestureSteps, "steps", 10, "Intermediate pointer moves")
		c.MarkFlagRequired("from")
		c.MarkFlagRequired("to")
	}
}
