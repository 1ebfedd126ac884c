package main

import (
	"context"

	"github.com/spf13/cobra"
)

var appCmd = &cobra.Command{
	Use:   "app",
	Short: "Open registered applications",
}

var appOpenCmd = &cobra.Command{
	Use:   "open <app-id>",
	Short: "Open an app, focusing it instead if it is a running singleton",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := newClient(cmd)
		defer c.Close()

		id, created, err := c.OpenApp(context.Background(), args[0])
		if err != nil {
			return fail("Failed to open app", err)
		}
		if jsonOutput {
			return printJSON(map[string]interface{}{"windowId": id, "created": created})
		}
		if created {
			successColor.Printf("✓ Opened %s in window %d\n", args[0], id)
		} else {
			successColor.Printf("✓ Focused %s (window %d)\n", args[0], id)
		}
		return nil
	},
}

var appCreateCmd = &cobra.Command{
	Use:   "create <app-id>",
	Short: "Always open a new window for an app",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := newClient(cmd)
		defer c.Close()

		id, err := c.CreateAppWindow(context.Background(), args[0])
		if err != nil {
			return fail("Failed to create app window", err)
		}
		if jsonOutput {
			return printJSON(map[string]interface{}{"windowId": id})
		}
		successColor.Printf("✓ Opened %s in window %d\n", args[0], id)
		return nil
	},
}

// Register flags
var (
	registerTitle     string
	registerIcon      string
	registerWidth     float64
	registerHeight    float64
	registerSingleton bool
	registerPinned    bool
)

var appRegisterCmd = &cobra.Command{
	Use:   "register <app-id>",
	Short: "Register an application at runtime",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		params := map[string]interface{}{
			"title":     registerTitle,
			"singleton": registerSingleton,
			"pinned":    registerPinned,
		}
		if registerIcon != "" {
			params["icon"] = registerIcon
		}
		if cmd.Flags().Changed("width") {
			params["width"] = registerWidth
		}
		if cmd.Flags().Changed("height") {
			params["height"] = registerHeight
		}

		c := newClient(cmd)
		defer c.Close()

		if err := c.RegisterApp(context.Background(), args[0], params); err != nil {
			return fail("Failed to register app", err)
		}
		if !jsonOutput {
			successColor.Printf("✓ Registered %s\n", args[0])
		}
		return nil
	},
}

var taskbarCmd = &cobra.Command{
	Use:   "taskbar",
	Short: "Taskbar actions",
}

var taskbarToggleCmd = &cobra.Command{
	Use:   "toggle <window-id>",
	Short: "Click a taskbar button: minimize if focused, otherwise focus",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseWindowID(args[0])
		if err != nil {
			return fail("Invalid argument", err)
		}

		c := newClient(cmd)
		defer c.Close()

		ctx := context.Background()
		if err := c.ToggleTaskbar(ctx, id); err != nil {
			return fail("Taskbar toggle failed", err)
		}
		active, err := c.IsActive(ctx, id)
		if err != nil {
			return fail("Taskbar toggle failed", err)
		}
		if jsonOutput {
			return printJSON(map[string]interface{}{"windowId": id, "active": active})
		}
		if active {
			successColor.Printf("✓ Window %d focused\n", id)
		} else {
			successColor.Printf("✓ Window %d minimized\n", id)
		}
		return nil
	},
}

func addAppCommands() {
	rootCmd.AddCommand(appCmd)
	appCmd.AddCommand(appOpenCmd)
	appCmd.AddCommand(appCreateCmd)
	appCmd.AddCommand(appRegisterCmd)
	appRegisterCmd.Flags().StringVar(&registerTitle, "title", "", "Default window title")
	appRegisterCmd.Flags().StringVar(&registerIcon, "icon", "", "Taskbar icon")
	appRegisterCmd.Flags().Float64Var(&registerWidth, "width", 0, "Default width")
	appRegisterCmd.Flags().Float64Var(&registerHeight, "height", 0, "Default height")
	appRegisterCmd.Flags().BoolVar(&registerSingleton, "singleton", false, "Focus the running window instead of opening another")
	appRegisterCmd.Flags().BoolVar(&registerPinned, "pinned", false, "Keep a launcher in the taskbar")

	rootCmd.AddCommand(taskbarCmd)
	taskbarCmd.AddCommand(taskbarToggleCmd)
}
