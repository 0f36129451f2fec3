package interactive

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resconfig/resconfig-go/pkg/apilevel"
	"github.com/resconfig/resconfig-go/pkg/config"
	"github.com/resconfig/resconfig-go/pkg/profile"
	"github.com/resconfig/resconfig-go/pkg/qualifier"
)

func newTestSession(t *testing.T, level apilevel.Level) (*Session, *bytes.Buffer) {
	t.Helper()
	set, err := profile.Builtin()
	require.NoError(t, err)
	var out bytes.Buffer
	return NewSession(qualifier.NewParser(nil), set, level, &out), &out
}

func TestSession_Resolve(t *testing.T) {
	s, out := newTestSession(t, 0)
	assert.Equal(t, apilevel.Latest, s.Level())

	assert.True(t, s.Execute("fr-rFR-land"))
	assert.Equal(t, "fr-rFR-ldltr-sw320dp-w320dp-land-v29\n", out.String())
	require.NotNil(t, s.Current())
}

func TestSession_Overlay(t *testing.T) {
	s, out := newTestSession(t, apilevel.P)

	s.Execute("en-rUS-port-hdpi")
	out.Reset()
	s.Execute("+land-night")
	assert.Equal(t, "en-rUS-ldltr-sw320dp-w320dp-land-night-hdpi-v28\n", out.String())
	assert.Equal(t, config.OrientationLandscape, s.Current().Config.Orientation)
}

func TestSession_Error(t *testing.T) {
	s, out := newTestSession(t, apilevel.P)

	s.Execute("land")
	out.Reset()
	s.Execute("land-v21")
	assert.True(t, strings.HasPrefix(out.String(), "error [ILLEGAL_VERSION]"), out.String())
	assert.Equal(t, config.OrientationLandscape, s.Current().Config.Orientation, "failed line must keep the current configuration")
}

func TestSession_API(t *testing.T) {
	s, out := newTestSession(t, apilevel.P)

	s.Execute("hdpi")
	assert.Equal(t, 240, s.Current().Config.DensityDpi)

	out.Reset()
	s.Execute("api jb")
	assert.Equal(t, apilevel.JellyBean, s.Level())
	assert.Contains(t, out.String(), "API level set to 16")
	assert.Zero(t, s.Current().Config.DensityDpi)
	assert.Equal(t, 240, s.Current().Metrics.DensityDpi)

	out.Reset()
	s.Execute("api")
	assert.Contains(t, out.String(), "API level 16")

	out.Reset()
	s.Execute("api nonsense")
	assert.Contains(t, out.String(), "Error:")
	assert.Equal(t, apilevel.JellyBean, s.Level())
}

func TestSession_Profile(t *testing.T) {
	s, out := newTestSession(t, 0)

	s.Execute("profile watch")
	assert.Contains(t, out.String(), "-round-")
	assert.Equal(t, config.UIModeTypeWatch, s.Current().Config.UIModeType)

	out.Reset()
	s.Execute("profile toaster")
	assert.Contains(t, out.String(), "profile not found")

	out.Reset()
	s.Execute("profiles")
	assert.Contains(t, out.String(), "phone-land")
}

func TestSession_Get(t *testing.T) {
	s, out := newTestSession(t, apilevel.P)

	s.Execute("get orientation")
	assert.Contains(t, out.String(), "No configuration resolved yet")

	s.Execute("land-xlarge")
	out.Reset()
	s.Execute("get screenLayout")
	assert.Equal(t, "screenLayout: 0x4\n", out.String())

	out.Reset()
	s.Execute("get colour")
	assert.Contains(t, out.String(), "Unknown field")
}

func TestSession_ShowAndReset(t *testing.T) {
	s, out := newTestSession(t, apilevel.P)

	s.Execute("land")
	out.Reset()
	s.Execute("show")
	assert.Contains(t, out.String(), "canonical: sw320dp-w320dp-land-v28")

	s.Execute("reset")
	assert.Nil(t, s.Current())
}

func TestSession_Commands(t *testing.T) {
	s, out := newTestSession(t, apilevel.P)

	assert.True(t, s.Execute(""))
	assert.True(t, s.Execute("help"))
	assert.Contains(t, out.String(), "Qualifier Commands:")

	out.Reset()
	assert.True(t, s.Execute("frobnicate the widget"))
	assert.Contains(t, out.String(), "Unknown command: frobnicate")

	assert.False(t, s.Execute("quit"))
	assert.False(t, s.Execute("EXIT"))
}

func TestSession_OverlayWithoutCurrent(t *testing.T) {
	s, out := newTestSession(t, apilevel.P)

	assert.True(t, s.Execute("+land"))
	assert.Equal(t, "sw320dp-w320dp-land-v28\n", out.String())
	require.NotNil(t, s.Current())
}

func TestSession_RunQuit(t *testing.T) {
	s, _ := newTestSession(t, apilevel.P)

	var stdout bytes.Buffer
	err := s.Run(context.Background(), strings.NewReader("land\nquit\n"), &stdout)
	require.NoError(t, err)
	require.NotNil(t, s.Current())
	assert.Equal(t, config.OrientationLandscape, s.Current().Config.Orientation)
}

func TestSession_RunCancel(t *testing.T) {
	s, _ := newTestSession(t, apilevel.P)

	stdin, w := io.Pipe()
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.Run(ctx, stdin, io.Discard)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after the context was cancelled")
	}
}
