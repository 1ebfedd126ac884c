package server

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/deskwm/internal/client"
	"github.com/yourusername/deskwm/internal/config"
	"github.com/yourusername/deskwm/internal/models"
	"github.com/yourusername/deskwm/internal/state"
	"github.com/yourusername/deskwm/internal/types"
	"github.com/yourusername/deskwm/internal/wm"
)

// runServer starts a server on a temp socket; stop shuts it down and
// waits for Run to return
func runServer(t *testing.T, cfg *config.Config, opts Options) (*Server, *client.Client, func()) {
	t.Helper()
	if opts.SocketPath == "" {
		// Keep the path short; unix socket paths are length-limited
		dir, err := os.MkdirTemp("", "deskwm")
		require.NoError(t, err)
		t.Cleanup(func() { os.RemoveAll(dir) })
		opts.SocketPath = filepath.Join(dir, "wm.sock")
	}
	if opts.SessionPath == "" {
		opts.SessionPath = filepath.Join(t.TempDir(), "session.json")
	}
	srv, err := New(cfg, opts)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	select {
	case <-srv.Ready():
	case err := <-done:
		cancel()
		t.Fatalf("server exited early: %v", err)
	case <-time.After(5 * time.Second):
		cancel()
		t.Fatal("server did not start")
	}

	c := client.NewClient(opts.SocketPath, 5*time.Second)
	var once sync.Once
	stop := func() {
		once.Do(func() {
			c.Close()
			cancel()
			select {
			case err := <-done:
				assert.NoError(t, err)
			case <-time.After(5 * time.Second):
				t.Error("server did not stop")
			}
		})
	}
	return srv, c, stop
}

func startServer(t *testing.T, cfg *config.Config, opts Options) (*Server, *client.Client) {
	t.Helper()
	srv, c, stop := runServer(t, cfg, opts)
	t.Cleanup(stop)
	return srv, c
}

func serverCode(t *testing.T, err error) int {
	t.Helper()
	var info *models.ErrorInfo
	require.True(t, errors.As(err, &info), "expected server error, got %v", err)
	return info.Code
}

func TestServer_Ping(t *testing.T) {
	_, c := startServer(t, nil, Options{})
	ctx := context.Background()

	res, err := c.Ping(ctx)
	require.NoError(t, err)
	assert.Equal(t, true, res["pong"])
	assert.Equal(t, Version, res["version"])
}

func TestServer_WindowLifecycle(t *testing.T) {
	_, c := startServer(t, nil, Options{})
	ctx := context.Background()

	a, err := c.CreateWindow(ctx, map[string]interface{}{"title": "A", "x": 50, "y": 50, "width": 300, "height": 200})
	require.NoError(t, err)
	b, err := c.CreateWindow(ctx, map[string]interface{}{"title": "B"})
	require.NoError(t, err)
	assert.Equal(t, uint32(1), a)
	assert.Equal(t, uint32(2), b)

	active, err := c.IsActive(ctx, b)
	require.NoError(t, err)
	assert.True(t, active)

	require.NoError(t, c.ActivateWindow(ctx, a))
	require.NoError(t, c.MaximizeWindow(ctx, a))

	d, err := c.Dump(ctx)
	require.NoError(t, err)
	assert.Equal(t, a, d.Active)
	wa := d.GetWindow(a)
	require.NotNil(t, wa)
	assert.Equal(t, "maximized", wa.State)
	assert.Equal(t, d.Workspace, wa.Frame)
	assert.Equal(t, types.Rect{X: 50, Y: 50, Width: 300, Height: 200}, wa.Normal)
	require.Len(t, d.Taskbar, 2)

	require.NoError(t, c.RestoreFromMaximized(ctx, a))
	require.NoError(t, c.SetTitle(ctx, a, "A2"))
	require.NoError(t, c.CloseWindow(ctx, b))

	d, err = c.Dump(ctx)
	require.NoError(t, err)
	require.Len(t, d.Windows, 1)
	assert.Equal(t, "A2", d.Windows[0].Title)
	assert.Equal(t, types.Rect{X: 50, Y: 50, Width: 300, Height: 200}, d.Windows[0].Frame)
}

func TestServer_Errors(t *testing.T) {
	_, c := startServer(t, nil, Options{})
	ctx := context.Background()

	fixed, err := c.CreateWindow(ctx, map[string]interface{}{"closable": false, "resizable": false})
	require.NoError(t, err)

	tests := []struct {
		name   string
		method string
		params map[string]interface{}
		code   int
	}{
		{"unknown window", "window.activate", map[string]interface{}{"windowId": 99}, models.CodeNotFound},
		{"missing window id", "window.close", nil, models.CodeBadRequest},
		{"fractional window id", "window.close", map[string]interface{}{"windowId": 1.5}, models.CodeBadRequest},
		{"not closable", "window.close", map[string]interface{}{"windowId": fixed}, models.CodeForbidden},
		{"not resizable", "pointer.beginResize", map[string]interface{}{"windowId": fixed, "edge": "right", "x": 0, "y": 0}, models.CodeForbidden},
		{"bad edge", "pointer.beginResize", map[string]interface{}{"windowId": fixed, "edge": "middle", "x": 0, "y": 0}, models.CodeBadRequest},
		{"unknown app", "app.open", map[string]interface{}{"appId": "nope"}, models.CodeNotFound},
		{"unknown method", "window.explode", nil, models.CodeUnknownMethod},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.CallMethod(ctx, tt.method, tt.params)
			require.Error(t, err)
			assert.Equal(t, tt.code, serverCode(t, err))
		})
	}
}

func TestServer_Pointer(t *testing.T) {
	_, c := startServer(t, nil, Options{})
	ctx := context.Background()

	id, err := c.CreateWindow(ctx, map[string]interface{}{"x": 50, "y": 50, "width": 300, "height": 200})
	require.NoError(t, err)

	require.NoError(t, c.BeginDrag(ctx, id, 60, 60))
	require.NoError(t, c.PointerMove(ctx, 200, 150))
	require.NoError(t, c.PointerUp(ctx))

	require.NoError(t, c.BeginResize(ctx, id, "se", 490, 340))
	require.NoError(t, c.PointerMove(ctx, 500, 360))
	require.NoError(t, c.PointerUp(ctx))

	d, err := c.Dump(ctx)
	require.NoError(t, err)
	w := d.GetWindow(id)
	require.NotNil(t, w)
	assert.Equal(t, types.Rect{X: 190, Y: 140, Width: 310, Height: 220}, w.Frame)
	assert.Equal(t, w.Frame, w.Normal)
	assert.Zero(t, d.Dragging)
	assert.Zero(t, d.Resizing)
}

func TestServer_SetViewport(t *testing.T) {
	_, c := startServer(t, nil, Options{})
	ctx := context.Background()

	id, err := c.CreateWindow(ctx, map[string]interface{}{"title": "Big"})
	require.NoError(t, err)
	require.NoError(t, c.MaximizeWindow(ctx, id))

	_, err = c.CallMethod(ctx, "desktop.setViewport", map[string]interface{}{"width": 1920, "height": 1080})
	require.NoError(t, err)

	d, err := c.Dump(ctx)
	require.NoError(t, err)
	assert.Equal(t, types.Size{Width: 1920, Height: 1080}, d.Viewport)
	assert.Equal(t, types.Rect{Width: 1920, Height: 1040}, d.Workspace)
	assert.Equal(t, d.Workspace, d.GetWindow(id).Frame)

	_, err = c.CallMethod(ctx, "desktop.setViewport", map[string]interface{}{"width": 0, "height": 600})
	require.Error(t, err)
	assert.Equal(t, models.CodeBadRequest, serverCode(t, err))
}

func TestServer_AppsAndTaskbar(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Apps = []config.AppConfig{
		{ID: "about", Title: "About", Size: "400x300", Singleton: true, Pinned: true},
		{ID: "notes", Title: "Notes"},
	}
	_, c := startServer(t, cfg, Options{})
	ctx := context.Background()

	d, err := c.Dump(ctx)
	require.NoError(t, err)
	require.Len(t, d.Applications, 2)
	require.Len(t, d.Taskbar, 1, "pinned launcher shows before the app runs")
	assert.Zero(t, d.Taskbar[0].ID)

	first, created, err := c.OpenApp(ctx, "about")
	require.NoError(t, err)
	assert.True(t, created)

	_, err = c.CreateWindow(ctx, map[string]interface{}{"title": "Other"})
	require.NoError(t, err)

	again, created, err := c.OpenApp(ctx, "about")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first, again)

	active, err := c.IsActive(ctx, first)
	require.NoError(t, err)
	assert.True(t, active)

	// Taskbar click on the active window minimizes it
	require.NoError(t, c.ToggleTaskbar(ctx, first))
	active, err = c.IsActive(ctx, first)
	require.NoError(t, err)
	assert.False(t, active)

	n1, err := c.CreateAppWindow(ctx, "notes")
	require.NoError(t, err)
	n2, err := c.CreateAppWindow(ctx, "notes")
	require.NoError(t, err)
	assert.NotEqual(t, n1, n2)

	require.NoError(t, c.RegisterApp(ctx, "calc", map[string]interface{}{"title": "Calc", "pinned": true}))
	d, err = c.Dump(ctx)
	require.NoError(t, err)
	assert.Len(t, d.Applications, 3)

	var launchers int
	for _, e := range d.Taskbar {
		if e.ID == 0 {
			launchers++
		}
	}
	assert.Equal(t, 1, launchers, "only calc is pinned and not running")
}

func TestServer_SessionPersistence(t *testing.T) {
	sessionPath := filepath.Join(t.TempDir(), "session.json")
	ctx := context.Background()

	_, c, stop := runServer(t, nil, Options{SessionPath: sessionPath, Persist: true})
	id, err := c.CreateWindow(ctx, map[string]interface{}{"title": "Keep", "x": 10, "y": 20, "width": 400, "height": 300})
	require.NoError(t, err)
	require.NoError(t, c.MaximizeWindow(ctx, id))
	_, err = c.CreateWindow(ctx, map[string]interface{}{"title": "Hidden"})
	require.NoError(t, err)
	require.NoError(t, c.MinimizeWindow(ctx, id+1))
	stop()

	saved, err := state.LoadSessionFrom(sessionPath)
	require.NoError(t, err)
	require.Len(t, saved.Windows, 2)

	_, c2 := startServer(t, nil, Options{SessionPath: sessionPath, Restore: true})
	d, err := c2.Dump(ctx)
	require.NoError(t, err)
	require.Len(t, d.Windows, 2)

	byTitle := map[string]models.Window{}
	for _, w := range d.Windows {
		byTitle[w.Title] = w
	}
	assert.Equal(t, "maximized", byTitle["Keep"].State)
	assert.Equal(t, types.Rect{X: 10, Y: 20, Width: 400, Height: 300}, byTitle["Keep"].Normal)
	assert.Equal(t, "minimized", byTitle["Hidden"].State)
	assert.Equal(t, byTitle["Keep"].ID, d.Active)
}

func TestServer_RestoredSingletonIsFocused(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Apps = []config.AppConfig{{ID: "about", Title: "About", Singleton: true}}

	sessionPath := filepath.Join(t.TempDir(), "session.json")
	saved := state.NewSession()
	saved.Windows = []state.SavedWindow{
		{AppID: "about", Title: "About", Normal: types.Rect{X: 50, Y: 50, Width: 600, Height: 400}},
		{Title: "Other", Normal: types.Rect{X: 100, Y: 100, Width: 600, Height: 400}, Active: true},
	}
	require.NoError(t, saved.SaveTo(sessionPath))

	_, c := startServer(t, cfg, Options{SessionPath: sessionPath, Restore: true})
	ctx := context.Background()

	d, err := c.Dump(ctx)
	require.NoError(t, err)
	require.Len(t, d.Windows, 2)
	var restored uint32
	for _, w := range d.Windows {
		if w.AppID == "about" {
			restored = w.ID
		}
	}
	require.NotZero(t, restored)
	require.NotEqual(t, restored, d.Active)

	id, created, err := c.OpenApp(ctx, "about")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, restored, id)

	d, err = c.Dump(ctx)
	require.NoError(t, err)
	assert.Len(t, d.Windows, 2)
	assert.Equal(t, restored, d.Active)
}

func TestLauncher_SingletonReopensAfterClose(t *testing.T) {
	srv, err := New(nil, Options{SocketPath: "unused"})
	require.NoError(t, err)
	srv.mgr.RegisterApplication("about", wm.WindowConfig{Title: "About"})
	srv.launcher.SetSingleton("about", true)

	id, created, err := srv.launcher.Open("about")
	require.NoError(t, err)
	require.True(t, created)

	require.NoError(t, srv.mgr.CloseWindow(id))

	next, created, err := srv.launcher.Open("about")
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotEqual(t, id, next)

	srv.launcher.SetSingleton("about", false)
	third, created, err := srv.launcher.Open("about")
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotEqual(t, next, third)
}

func TestErrorCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("x: %w", wm.ErrWindowNotFound), models.CodeNotFound},
		{wm.ErrAppNotRegistered, models.CodeNotFound},
		{wm.ErrCapabilityDenied, models.CodeForbidden},
		{wm.ErrCloseVetoed, models.CodeConflict},
		{wm.ErrInvalidState, models.CodeConflict},
		{wm.ErrInvalidEdge, models.CodeBadRequest},
		{errBadParams, models.CodeBadRequest},
		{errors.New("boom"), models.CodeInternal},
	}
	for _, tt := range tests {
		if got := errorCode(tt.err); got != tt.want {
			t.Errorf("errorCode(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}
