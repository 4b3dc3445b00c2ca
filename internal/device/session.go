// Package device talks to an attached ADCP through a serialmux.Mux: it
// captures the reply to CSHOW and writes command lists back.
package device

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"tailscale.com/tsweb"

	"github.com/banshee-data/adcp-config/internal/adcp"
	"github.com/banshee-data/adcp-config/internal/cshow"
	"github.com/banshee-data/adcp-config/internal/monitoring"
	"github.com/banshee-data/adcp-config/internal/serialmux"
)

// ErrNoFrame is returned when the instrument prints nothing in reply to CSHOW.
var ErrNoFrame = errors.New("no CSHOW reply received")

const (
	DefaultCaptureTimeout = 5 * time.Second
	DefaultQuietPeriod    = 500 * time.Millisecond
)

// Session issues commands over a Mux. Monitor must be running on the mux for
// replies to arrive.
type Session struct {
	mux serialmux.Mux

	// CaptureTimeout bounds a whole CSHOW capture.
	CaptureTimeout time.Duration
	// QuietPeriod ends a capture that has no end marker once the instrument
	// has been silent this long.
	QuietPeriod time.Duration
	// CommandDelay is waited after each command written by Apply.
	CommandDelay time.Duration

	// OnCapture, when set, receives every successfully decoded capture.
	OnCapture func(raw string, cfg *adcp.AdcpConfiguration)

	logf func(format string, v ...interface{})
}

// NewSession returns a Session with default timeouts.
func NewSession(m serialmux.Mux) *Session {
	return &Session{
		mux:            m,
		CaptureTimeout: DefaultCaptureTimeout,
		QuietPeriod:    DefaultQuietPeriod,
		logf:           monitoring.Prefixed("device"),
	}
}

// Capture sends CSHOW and collects the lines printed in reply. Collection
// stops at the end marker, after QuietPeriod of silence, or when the capture
// timeout expires. A partial reply is returned without error; no reply at
// all is ErrNoFrame.
func (s *Session) Capture(ctx context.Context) (string, error) {
	if s.CaptureTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.CaptureTimeout)
		defer cancel()
	}

	id, ch := s.mux.Subscribe()
	defer s.mux.Unsubscribe(id)

	if err := s.mux.SendCommand(cshow.StartMarker); err != nil {
		return "", fmt.Errorf("send %s: %w", cshow.StartMarker, err)
	}

	var lines []string
	quiet := time.NewTimer(time.Hour)
	quiet.Stop()
	defer quiet.Stop()

	for {
		select {
		case line, ok := <-ch:
			if !ok {
				return s.frame(lines, nil)
			}
			lines = append(lines, line)
			if strings.EqualFold(strings.TrimSpace(line), cshow.EndMarker) {
				return s.frame(lines, nil)
			}
			if s.QuietPeriod > 0 {
				quiet.Reset(s.QuietPeriod)
			}
		case <-quiet.C:
			return s.frame(lines, nil)
		case <-ctx.Done():
			return s.frame(lines, ctx.Err())
		}
	}
}

func (s *Session) frame(lines []string, cause error) (string, error) {
	if len(lines) == 0 {
		if cause != nil {
			return "", fmt.Errorf("%w: %v", ErrNoFrame, cause)
		}
		return "", ErrNoFrame
	}
	if cause != nil {
		s.logf("capture cut short after %d lines: %v", len(lines), cause)
	}
	return strings.Join(lines, "\n") + "\n", nil
}

// ReadConfiguration captures a CSHOW reply and decodes it against sn. The raw
// reply is returned alongside the configuration.
func (s *Session) ReadConfiguration(ctx context.Context, sn adcp.SerialNumber) (*adcp.AdcpConfiguration, string, error) {
	raw, err := s.Capture(ctx)
	if err != nil {
		return nil, "", err
	}
	dec := cshow.Decoder{Logf: monitoring.Prefixed("cshow")}
	cfg := dec.Decode(raw, sn)
	s.logf("decoded CEPO %q into %d configurations", cfg.Commands.CEPO(), len(cfg.Configs()))
	if s.OnCapture != nil {
		s.OnCapture(raw, cfg)
	}
	return cfg, raw, nil
}

// Apply writes every command of cfg to the instrument in order.
func (s *Session) Apply(ctx context.Context, cfg *adcp.AdcpConfiguration) error {
	for _, line := range cfg.CommandList() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.mux.SendCommand(line); err != nil {
			return fmt.Errorf("send %q: %w", line, err)
		}
		s.logf("sent %s", line)
		if s.CommandDelay > 0 {
			select {
			case <-time.After(s.CommandDelay):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
	return nil
}

// AttachAdminRoutes adds a /debug/cshow page that captures the instrument's
// configuration and prints it decoded against sn.
func (s *Session) AttachAdminRoutes(mux *http.ServeMux, sn adcp.SerialNumber) {
	debug := tsweb.Debugger(mux)
	debug.HandleFunc("cshow", "capture and decode the ADCP configuration", func(w http.ResponseWriter, r *http.Request) {
		cfg, _, err := s.ReadConfiguration(r.Context(), sn)
		if err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, ErrNoFrame) {
				status = http.StatusGatewayTimeout
			}
			http.Error(w, err.Error(), status)
			return
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		io.WriteString(w, cshow.Format(cfg))
	})
}
