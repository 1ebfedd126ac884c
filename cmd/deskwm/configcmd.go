package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yourusername/deskwm/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and create the config file",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective config",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadOrDefault(configPath)
		if err != nil {
			return fail("Failed to load config", err)
		}
		if jsonOutput {
			return printJSON(cfg)
		}
		data, err := cfg.Marshal()
		if err != nil {
			return fail("Failed to render config", err)
		}
		fmt.Print(string(data))
		return nil
	},
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the config file for errors",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			if errors.Is(err, config.ErrNoConfig) {
				infoColor.Println("No config file; built-in defaults apply")
				return nil
			}
			return fail("Config is invalid", err)
		}
		successColor.Println("✓ Config is valid")
		keyColor.Print("Viewport: ")
		fmt.Println(cfg.Settings.Viewport)
		keyColor.Print("Apps: ")
		fmt.Println(len(cfg.Apps))
		return nil
	},
}

var configInitForce bool

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			path = config.GetConfigPath()
		}
		if _, err := os.Stat(path); err == nil && !configInitForce {
			return fail("Refusing to overwrite", fmt.Errorf("%s exists (use --force)", path))
		}

		data, err := config.DefaultConfig().Marshal()
		if err != nil {
			return fail("Failed to render config", err)
		}
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return fail("Failed to create config dir", err)
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			return fail("Failed to write config", err)
		}
		successColor.Printf("✓ Wrote %s\n", path)
		return nil
	},
}

func addConfigCommands() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configValidateCmd)
	configCmd.AddCommand(configInitCmd)
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "Overwrite an existing file")
}
