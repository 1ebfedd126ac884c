package client

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/yourusername/deskwm/internal/models"
)

const (
	DefaultSocketPath = "/tmp/deskwm.sock"
	DefaultTimeout    = 30 * time.Second
)

// Client is the deskwm server client. It is not safe for concurrent use.
type Client struct {
	conn    *Connection
	timeout time.Duration
}

// NewClient creates a new deskwm client
func NewClient(socketPath string, timeout time.Duration) *Client {
	if socketPath == "" {
		socketPath = DefaultSocketPath
	}
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		conn:    NewConnection(socketPath),
		timeout: timeout,
	}
}

// Connect establishes connection to the server
func (c *Client) Connect(ctx context.Context) error {
	return c.conn.Connect(ctx)
}

// Close closes the connection
func (c *Client) Close() error {
	return c.conn.Close()
}

// request sends one request, dialing first if needed. The client
// timeout applies unless ctx already carries a deadline.
func (c *Client) request(ctx context.Context, method string, params map[string]interface{}) (*models.Response, error) {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	if !c.conn.IsConnected() {
		if err := c.Connect(ctx); err != nil {
			return nil, err
		}
	}

	req := models.NewRequest(uuid.New().String(), method, params)
	return c.conn.RoundTrip(ctx, req)
}

// CallMethod sends a generic RPC request with the given method and parameters.
// Server-side failures are returned as *models.ErrorInfo.
func (c *Client) CallMethod(ctx context.Context, method string, params map[string]interface{}) (map[string]interface{}, error) {
	resp, err := c.request(ctx, method, params)
	if err != nil {
		return nil, err
	}

	if resp.IsError() {
		return nil, resp.Error
	}

	return resp.Result, nil
}

// Ping sends a ping request to test connectivity
func (c *Client) Ping(ctx context.Context) (map[string]interface{}, error) {
	return c.CallMethod(ctx, "ping", nil)
}

// Dump retrieves the complete window manager state
func (c *Client) Dump(ctx context.Context) (*models.Desktop, error) {
	raw, err := c.CallMethod(ctx, "dump", map[string]interface{}{})
	if err != nil {
		return nil, err
	}

	var d models.Desktop
	if err := models.DecodeResult(raw, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// windowCall runs a method whose only parameter is the window id
func (c *Client) windowCall(ctx context.Context, method string, id uint32) error {
	_, err := c.CallMethod(ctx, method, map[string]interface{}{"windowId": id})
	return err
}

// CreateWindow opens a window. params may carry title, icon, appId,
// width, height, minWidth, minHeight, x, y and capability flags.
func (c *Client) CreateWindow(ctx context.Context, params map[string]interface{}) (uint32, error) {
	raw, err := c.CallMethod(ctx, "window.create", params)
	if err != nil {
		return 0, err
	}
	return resultID(raw), nil
}

func (c *Client) ActivateWindow(ctx context.Context, id uint32) error {
	return c.windowCall(ctx, "window.activate", id)
}

func (c *Client) MinimizeWindow(ctx context.Context, id uint32) error {
	return c.windowCall(ctx, "window.minimize", id)
}

func (c *Client) RestoreWindow(ctx context.Context, id uint32) error {
	return c.windowCall(ctx, "window.restore", id)
}

func (c *Client) MaximizeWindow(ctx context.Context, id uint32) error {
	return c.windowCall(ctx, "window.maximize", id)
}

func (c *Client) RestoreFromMaximized(ctx context.Context, id uint32) error {
	return c.windowCall(ctx, "window.unmaximize", id)
}

func (c *Client) ToggleMaximize(ctx context.Context, id uint32) error {
	return c.windowCall(ctx, "window.toggleMaximize", id)
}

func (c *Client) CloseWindow(ctx context.Context, id uint32) error {
	return c.windowCall(ctx, "window.close", id)
}

// SetTitle updates a window's title
func (c *Client) SetTitle(ctx context.Context, id uint32, title string) error {
	_, err := c.CallMethod(ctx, "window.setTitle", map[string]interface{}{"windowId": id, "title": title})
	return err
}

// UpdateAll runs every window's update hook
func (c *Client) UpdateAll(ctx context.Context) error {
	_, err := c.CallMethod(ctx, "window.updateAll", nil)
	return err
}

// IsActive reports whether id is the focused window
func (c *Client) IsActive(ctx context.Context, id uint32) (bool, error) {
	raw, err := c.CallMethod(ctx, "window.isActive", map[string]interface{}{"windowId": id})
	if err != nil {
		return false, err
	}
	active, _ := raw["active"].(bool)
	return active, nil
}

// BeginDrag starts a drag session on a window
func (c *Client) BeginDrag(ctx context.Context, id uint32, x, y float64) error {
	_, err := c.CallMethod(ctx, "pointer.beginDrag", map[string]interface{}{"windowId": id, "x": x, "y": y})
	return err
}

// BeginResize starts a resize session; edge is e.g. "bottom-right" or "se"
func (c *Client) BeginResize(ctx context.Context, id uint32, edge string, x, y float64) error {
	_, err := c.CallMethod(ctx, "pointer.beginResize", map[string]interface{}{"windowId": id, "edge": edge, "x": x, "y": y})
	return err
}

// PointerMove reports a pointer position to active sessions
func (c *Client) PointerMove(ctx context.Context, x, y float64) error {
	_, err := c.CallMethod(ctx, "pointer.move", map[string]interface{}{"x": x, "y": y})
	return err
}

// PointerUp ends all pointer sessions
func (c *Client) PointerUp(ctx context.Context) error {
	_, err := c.CallMethod(ctx, "pointer.up", nil)
	return err
}

// RegisterApp registers an application; params as for CreateWindow plus
// "singleton" and "pinned"
func (c *Client) RegisterApp(ctx context.Context, appID string, params map[string]interface{}) error {
	p := map[string]interface{}{"appId": appID}
	for k, v := range params {
		p[k] = v
	}
	_, err := c.CallMethod(ctx, "app.register", p)
	return err
}

// CreateAppWindow always opens a new window for appID
func (c *Client) CreateAppWindow(ctx context.Context, appID string) (uint32, error) {
	raw, err := c.CallMethod(ctx, "app.create", map[string]interface{}{"appId": appID})
	if err != nil {
		return 0, err
	}
	return resultID(raw), nil
}

// OpenApp focuses the app's window if it is a running singleton,
// otherwise opens a new one. created reports which happened.
func (c *Client) OpenApp(ctx context.Context, appID string) (id uint32, created bool, err error) {
	raw, err := c.CallMethod(ctx, "app.open", map[string]interface{}{"appId": appID})
	if err != nil {
		return 0, false, err
	}
	created, _ = raw["created"].(bool)
	return resultID(raw), created, nil
}

// ToggleTaskbar performs a taskbar button click on a window
func (c *Client) ToggleTaskbar(ctx context.Context, id uint32) error {
	return c.windowCall(ctx, "taskbar.toggle", id)
}

// resultID reads the windowId field of a result; JSON numbers decode as float64
func resultID(raw map[string]interface{}) uint32 {
	if v, ok := raw["windowId"].(float64); ok {
		return uint32(v)
	}
	return 0
}
