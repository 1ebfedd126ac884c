package config

import (
	"fmt"
)

// Validate checks the configuration for errors
func (c *Config) Validate() error {
	if err := validateSettings(&c.Settings); err != nil {
		return fmt.Errorf("settings: %w", err)
	}

	appIDs := make(map[string]bool)
	for i, app := range c.Apps {
		if app.ID == "" {
			return fmt.Errorf("app %d: missing id", i)
		}
		if appIDs[app.ID] {
			return fmt.Errorf("duplicate app id: %s", app.ID)
		}
		appIDs[app.ID] = true

		if err := validateApp(&app); err != nil {
			return fmt.Errorf("app %s: %w", app.ID, err)
		}
	}

	return nil
}

func validateSettings(s *Settings) error {
	sizes := []struct{ name, value string }{
		{"viewport", s.Viewport},
		{"defaultSize", s.DefaultSize},
		{"defaultMinSize", s.DefaultMinSize},
	}
	for _, sz := range sizes {
		if sz.value == "" {
			continue
		}
		if _, err := ParseSize(sz.value); err != nil {
			return fmt.Errorf("%s: %w", sz.name, err)
		}
	}

	if s.TaskbarHeight < 0 {
		return fmt.Errorf("taskbar height cannot be negative")
	}
	if s.TitlebarHeight < 0 {
		return fmt.Errorf("titlebar height cannot be negative")
	}
	if s.DragMargin < 0 {
		return fmt.Errorf("drag margin cannot be negative")
	}

	c := s.Cascade
	if c.Step < 0 || c.RangeX < 0 || c.RangeY < 0 {
		return fmt.Errorf("cascade step and ranges cannot be negative")
	}

	if s.Viewport != "" && s.TaskbarHeight > 0 {
		vp, _ := ParseSize(s.Viewport)
		if s.TaskbarHeight >= vp.Height {
			return fmt.Errorf("taskbar height %v leaves no workspace in viewport %s", s.TaskbarHeight, s.Viewport)
		}
	}
	return nil
}

func validateApp(app *AppConfig) error {
	size, err := parseOptionalSize(app.Size, DefaultWindowSize)
	if err != nil {
		return fmt.Errorf("size: %w", err)
	}
	minSize, err := parseOptionalSize(app.MinSize, DefaultMinWindowSize)
	if err != nil {
		return fmt.Errorf("minSize: %w", err)
	}
	if app.Size != "" && app.MinSize != "" && (size.Width < minSize.Width || size.Height < minSize.Height) {
		return fmt.Errorf("size %s is smaller than minSize %s", app.Size, app.MinSize)
	}
	return nil
}
