package server

import (
	"errors"
	"fmt"

	"github.com/yourusername/deskwm/internal/wm"
)

// errBadParams marks request parameter problems (code 400)
var errBadParams = errors.New("bad params")

// params wraps a request's loosely typed parameters
type params map[string]interface{}

func badParam(key, want string, got interface{}) error {
	if got == nil {
		return fmt.Errorf("missing %s (%s): %w", key, want, errBadParams)
	}
	return fmt.Errorf("%s must be %s, got %T: %w", key, want, got, errBadParams)
}

// float reads a required number
func (p params) float(key string) (float64, error) {
	switch v := p[key].(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	default:
		return 0, badParam(key, "a number", p[key])
	}
}

// optFloat reads a number, reporting whether it was present
func (p params) optFloat(key string) (float64, bool, error) {
	if _, ok := p[key]; !ok {
		return 0, false, nil
	}
	v, err := p.float(key)
	return v, err == nil, err
}

func (p params) str(key string) (string, error) {
	v, ok := p[key].(string)
	if !ok || v == "" {
		return "", badParam(key, "a non-empty string", p[key])
	}
	return v, nil
}

func (p params) optStr(key string) string {
	v, _ := p[key].(string)
	return v
}

// optBool reads a flag; nil means absent
func (p params) optBool(key string) (*bool, error) {
	raw, ok := p[key]
	if !ok || raw == nil {
		return nil, nil
	}
	v, ok := raw.(bool)
	if !ok {
		return nil, badParam(key, "a boolean", raw)
	}
	return &v, nil
}

// windowID reads the windowId parameter
func (p params) windowID() (wm.WindowID, error) {
	v, err := p.float("windowId")
	if err != nil {
		return wm.NoWindow, err
	}
	if v < 1 || v != float64(uint32(v)) {
		return wm.NoWindow, fmt.Errorf("windowId must be a positive integer, got %v: %w", v, errBadParams)
	}
	return wm.WindowID(v), nil
}

// point reads the x and y parameters
func (p params) point() (float64, float64, error) {
	x, err := p.float("x")
	if err != nil {
		return 0, 0, err
	}
	y, err := p.float("y")
	if err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

// windowConfig builds a WindowConfig from create/register parameters
func (p params) windowConfig() (wm.WindowConfig, error) {
	cfg := wm.WindowConfig{
		Title: p.optStr("title"),
		Icon:  p.optStr("icon"),
		AppID: p.optStr("appId"),
	}

	sizes := []struct {
		key string
		dst *float64
	}{
		{"width", &cfg.Width},
		{"height", &cfg.Height},
		{"minWidth", &cfg.MinWidth},
		{"minHeight", &cfg.MinHeight},
	}
	for _, s := range sizes {
		v, ok, err := p.optFloat(s.key)
		if err != nil {
			return cfg, err
		}
		if ok {
			if v < 0 {
				return cfg, fmt.Errorf("%s cannot be negative: %w", s.key, errBadParams)
			}
			*s.dst = v
		}
	}

	if x, ok, err := p.optFloat("x"); err != nil {
		return cfg, err
	} else if ok {
		cfg.X = wm.Float(x)
	}
	if y, ok, err := p.optFloat("y"); err != nil {
		return cfg, err
	} else if ok {
		cfg.Y = wm.Float(y)
	}

	flags := []struct {
		key string
		dst **bool
	}{
		{"resizable", &cfg.Resizable},
		{"minimizable", &cfg.Minimizable},
		{"maximizable", &cfg.Maximizable},
		{"closable", &cfg.Closable},
	}
	for _, f := range flags {
		v, err := p.optBool(f.key)
		if err != nil {
			return cfg, err
		}
		*f.dst = v
	}

	return cfg, nil
}
