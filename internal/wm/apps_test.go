package wm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterApplication(t *testing.T) {
	m, tb := newTestManager(t)

	m.RegisterApplication("terminal", WindowConfig{Title: "Terminal", AppID: "ignored", Width: 700, Height: 450})
	m.RegisterApplication("about", WindowConfig{Title: "About"})
	assert.Equal(t, []string{"about", "terminal"}, m.Applications())

	cfg, ok := m.Application("terminal")
	require.True(t, ok)
	assert.Equal(t, "terminal", cfg.AppID)

	id, err := m.CreateAppWindow("terminal")
	require.NoError(t, err)

	info := mustWindow(t, m, id)
	assert.Equal(t, "Terminal", info.Title)
	assert.Equal(t, "terminal", info.AppID)
	assert.Equal(t, 700.0, info.Bounds.Width)
	assert.Equal(t, []string{"added 1 Terminal", "activated 1"}, tb.events)

	// Each call opens a new window
	second, err := m.CreateAppWindow("terminal")
	require.NoError(t, err)
	assert.NotEqual(t, id, second)
	assert.Equal(t, 2, m.Count())
}

func TestRegisterApplication_Overwrites(t *testing.T) {
	m, _ := newTestManager(t)
	m.RegisterApplication("notes", WindowConfig{Title: "Old"})
	m.RegisterApplication("notes", WindowConfig{Title: "New"})

	id, err := m.CreateAppWindow("notes")
	require.NoError(t, err)
	assert.Equal(t, "New", mustWindow(t, m, id).Title)
	assert.Len(t, m.Applications(), 1)
}

func TestCreateAppWindow_Unknown(t *testing.T) {
	m, tb := newTestManager(t)

	id, err := m.CreateAppWindow("missing")
	assert.Equal(t, NoWindow, id)
	assert.True(t, errors.Is(err, ErrAppNotRegistered))
	assert.Equal(t, 0, m.Count())
	assert.Empty(t, tb.events)
}
