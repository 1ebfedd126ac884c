package server

import (
	"errors"
	"fmt"
	"time"

	"github.com/yourusername/deskwm/internal/logging"
	"github.com/yourusername/deskwm/internal/models"
	"github.com/yourusername/deskwm/internal/taskbar"
	"github.com/yourusername/deskwm/internal/types"
	"github.com/yourusername/deskwm/internal/wm"
)

type handlerFunc func(p params) (map[string]interface{}, error)

func (s *Server) routes() map[string]handlerFunc {
	return map[string]handlerFunc{
		"ping":                  s.ping,
		"dump":                  s.dump,
		"desktop.setViewport":   s.setViewport,
		"window.create":         s.createWindow,
		"window.activate":       s.windowOp(s.mgr.ActivateWindow),
		"window.minimize":       s.windowOp(s.mgr.MinimizeWindow),
		"window.restore":        s.windowOp(s.mgr.RestoreWindow),
		"window.maximize":       s.windowOp(s.mgr.MaximizeWindow),
		"window.unmaximize":     s.windowOp(s.mgr.RestoreFromMaximized),
		"window.toggleMaximize": s.windowOp(s.mgr.ToggleMaximize),
		"window.close":          s.windowOp(s.mgr.CloseWindow),
		"window.setTitle":       s.setTitle,
		"window.updateAll":      s.updateAll,
		"window.isActive":       s.isActive,
		"pointer.beginDrag":     s.beginDrag,
		"pointer.beginResize":   s.beginResize,
		"pointer.move":          s.pointerMove,
		"pointer.up":            s.pointerUp,
		"app.register":          s.registerApp,
		"app.create":            s.createApp,
		"app.open":              s.openApp,
		"app.list":              s.listApps,
		"taskbar.list":          s.listTaskbar,
		"taskbar.toggle":        s.toggleTaskbar,
	}
}

// dispatch runs one request on the loop goroutine
func (s *Server) dispatch(req *models.Request) *models.MessageEnvelope {
	h, ok := s.handlers[req.Method]
	if !ok {
		return models.NewErrorResponse(req.ID, models.CodeUnknownMethod, fmt.Sprintf("unknown method: %s", req.Method))
	}

	result, err := h(params(req.Params))
	if err != nil {
		code := errorCode(err)
		logging.Debug().Str("method", req.Method).Int("code", code).Err(err).Msg("request failed")
		return models.NewErrorResponse(req.ID, code, err.Error())
	}
	if result == nil {
		result = map[string]interface{}{}
	}
	return models.NewResponse(req.ID, result)
}

// errorCode maps manager and parameter errors onto response codes
func errorCode(err error) int {
	switch {
	case errors.Is(err, wm.ErrWindowNotFound), errors.Is(err, wm.ErrAppNotRegistered):
		return models.CodeNotFound
	case errors.Is(err, wm.ErrCapabilityDenied):
		return models.CodeForbidden
	case errors.Is(err, wm.ErrCloseVetoed), errors.Is(err, wm.ErrInvalidState):
		return models.CodeConflict
	case errors.Is(err, errBadParams), errors.Is(err, wm.ErrInvalidEdge):
		return models.CodeBadRequest
	default:
		return models.CodeInternal
	}
}

func idResult(id wm.WindowID) map[string]interface{} {
	return map[string]interface{}{"windowId": uint32(id)}
}

// windowOp adapts a manager method that only takes a window id
func (s *Server) windowOp(op func(wm.WindowID) error) handlerFunc {
	return func(p params) (map[string]interface{}, error) {
		id, err := p.windowID()
		if err != nil {
			return nil, err
		}
		if err := op(id); err != nil {
			return nil, err
		}
		return idResult(id), nil
	}
}

func (s *Server) ping(p params) (map[string]interface{}, error) {
	return map[string]interface{}{
		"pong":    true,
		"version": Version,
		"uptime":  time.Since(s.started).Round(time.Second).String(),
		"windows": s.mgr.Count(),
	}, nil
}

func (s *Server) dump(p params) (map[string]interface{}, error) {
	return models.EncodeResult(Snapshot(s.mgr, s.taskbar, s.launcher))
}

func (s *Server) setViewport(p params) (map[string]interface{}, error) {
	w, err := p.float("width")
	if err != nil {
		return nil, err
	}
	h, err := p.float("height")
	if err != nil {
		return nil, err
	}
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("viewport must be positive: %w", errBadParams)
	}
	s.mgr.SetViewport(types.Size{Width: w, Height: h})
	return map[string]interface{}{"workspace": s.mgr.Workspace()}, nil
}

func (s *Server) createWindow(p params) (map[string]interface{}, error) {
	cfg, err := p.windowConfig()
	if err != nil {
		return nil, err
	}
	return idResult(s.mgr.CreateWindow(cfg)), nil
}

func (s *Server) setTitle(p params) (map[string]interface{}, error) {
	id, err := p.windowID()
	if err != nil {
		return nil, err
	}
	title, ok := p["title"].(string)
	if !ok {
		return nil, badParam("title", "a string", p["title"])
	}
	if err := s.mgr.UpdateWindowTitle(id, title); err != nil {
		return nil, err
	}
	return idResult(id), nil
}

func (s *Server) updateAll(p params) (map[string]interface{}, error) {
	s.mgr.UpdateAllWindows()
	return map[string]interface{}{"windows": s.mgr.Count()}, nil
}

func (s *Server) isActive(p params) (map[string]interface{}, error) {
	id, err := p.windowID()
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"windowId": uint32(id), "active": s.mgr.IsActive(id)}, nil
}

func (s *Server) beginDrag(p params) (map[string]interface{}, error) {
	id, err := p.windowID()
	if err != nil {
		return nil, err
	}
	x, y, err := p.point()
	if err != nil {
		return nil, err
	}
	if err := s.mgr.BeginDrag(id, x, y); err != nil {
		return nil, err
	}
	return idResult(id), nil
}

func (s *Server) beginResize(p params) (map[string]interface{}, error) {
	id, err := p.windowID()
	if err != nil {
		return nil, err
	}
	name, err := p.str("edge")
	if err != nil {
		return nil, err
	}
	edge, ok := types.ParseEdge(name)
	if !ok {
		return nil, fmt.Errorf("edge %q: %w", name, wm.ErrInvalidEdge)
	}
	x, y, err := p.point()
	if err != nil {
		return nil, err
	}
	if err := s.mgr.BeginResize(id, edge, x, y); err != nil {
		return nil, err
	}
	return map[string]interface{}{"windowId": uint32(id), "edge": edge.String()}, nil
}

func (s *Server) pointerMove(p params) (map[string]interface{}, error) {
	x, y, err := p.point()
	if err != nil {
		return nil, err
	}
	s.mgr.PointerMove(x, y)
	return s.sessions(), nil
}

func (s *Server) pointerUp(p params) (map[string]interface{}, error) {
	s.mgr.PointerUp()
	return s.sessions(), nil
}

// sessions reports the frames of windows under an active pointer session
func (s *Server) sessions() map[string]interface{} {
	out := map[string]interface{}{}
	if id, ok := s.mgr.Dragging(); ok {
		if w, ok := s.mgr.Window(id); ok {
			out["dragging"] = map[string]interface{}{"windowId": uint32(id), "frame": w.Bounds}
		}
	}
	if id, ok := s.mgr.Resizing(); ok {
		if w, ok := s.mgr.Window(id); ok {
			out["resizing"] = map[string]interface{}{"windowId": uint32(id), "frame": w.Bounds}
		}
	}
	return out
}

func (s *Server) registerApp(p params) (map[string]interface{}, error) {
	appID, err := p.str("appId")
	if err != nil {
		return nil, err
	}
	cfg, err := p.windowConfig()
	if err != nil {
		return nil, err
	}
	singleton, err := p.optBool("singleton")
	if err != nil {
		return nil, err
	}
	pinned, err := p.optBool("pinned")
	if err != nil {
		return nil, err
	}

	s.mgr.RegisterApplication(appID, cfg)
	s.launcher.SetSingleton(appID, singleton != nil && *singleton)
	if pinned != nil && *pinned {
		s.taskbar.Pin(taskbar.Launcher{AppID: appID, Title: cfg.Title, Icon: cfg.Icon})
	}
	return map[string]interface{}{"appId": appID}, nil
}

func (s *Server) createApp(p params) (map[string]interface{}, error) {
	appID, err := p.str("appId")
	if err != nil {
		return nil, err
	}
	id, err := s.mgr.CreateAppWindow(appID)
	if err != nil {
		return nil, err
	}
	return idResult(id), nil
}

func (s *Server) openApp(p params) (map[string]interface{}, error) {
	appID, err := p.str("appId")
	if err != nil {
		return nil, err
	}
	id, created, err := s.launcher.Open(appID)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"windowId": uint32(id), "created": created}, nil
}

func (s *Server) listApps(p params) (map[string]interface{}, error) {
	d := Snapshot(s.mgr, s.taskbar, s.launcher)
	return map[string]interface{}{"applications": d.Applications}, nil
}

func (s *Server) listTaskbar(p params) (map[string]interface{}, error) {
	return map[string]interface{}{"entries": taskbarView(s.taskbar)}, nil
}

func (s *Server) toggleTaskbar(p params) (map[string]interface{}, error) {
	id, err := p.windowID()
	if err != nil {
		return nil, err
	}
	if err := taskbar.Toggle(s.mgr, id); err != nil {
		return nil, err
	}
	return map[string]interface{}{"windowId": uint32(id), "active": s.mgr.IsActive(id)}, nil
}
