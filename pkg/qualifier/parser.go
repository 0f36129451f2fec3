package qualifier

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/resconfig/resconfig-go/pkg/apilevel"
	"github.com/resconfig/resconfig-go/pkg/config"
	"github.com/resconfig/resconfig-go/pkg/log"
)

// OverlayPrefix marks a qualifier string that is applied on top of the
// current configuration rather than replacing it.
const OverlayPrefix = "+"

// Result is a resolved qualifier string.
type Result struct {
	Config    config.Configuration  `json:"config" yaml:"config"`
	Metrics   config.DisplayMetrics `json:"metrics" yaml:"metrics"`
	Canonical string                `json:"canonical" yaml:"canonical"`
	Level     apilevel.Level        `json:"apiLevel" yaml:"apiLevel"`
}

// Qualifiers returns the canonical string without its version token. The
// returned string parses back to the same configuration.
func (r *Result) Qualifiers() string {
	token := r.Level.Token()
	if r.Canonical == token {
		return ""
	}
	return strings.TrimSuffix(r.Canonical, Separator+token)
}

// Request describes a resolution of one or more layered qualifier strings.
type Request struct {
	// Layers are applied in order. A dimension set by a later layer
	// replaces the value from an earlier one. Every layer after the first
	// may carry the OverlayPrefix.
	Layers []string

	// Level is the platform API level to resolve against.
	Level apilevel.Level

	// Profile names the device profile the layers came from, if any.
	Profile string
}

// Parser resolves qualifier strings and reports every attempt to a Logger.
// A Parser is safe for concurrent use if its Logger is.
type Parser struct {
	logger    log.Logger
	sessionID string
	now       func() time.Time
}

// NewParser creates a parser with a fresh session ID. A nil logger disables
// tracing.
func NewParser(logger log.Logger) *Parser {
	if logger == nil {
		logger = log.NoopLogger{}
	}
	return &Parser{
		logger:    logger,
		sessionID: uuid.NewString(),
		now:       time.Now,
	}
}

// SessionID returns the ID stamped on every event this parser logs.
func (p *Parser) SessionID() string {
	return p.sessionID
}

// Parse resolves a qualifier string against an API level.
func (p *Parser) Parse(qualifiers string, level apilevel.Level) (*Result, error) {
	return p.Resolve(Request{Layers: []string{qualifiers}, Level: level})
}

// ParseOverlay resolves overlay on top of base.
func (p *Parser) ParseOverlay(base, overlay string, level apilevel.Level) (*Result, error) {
	return p.Resolve(Request{Layers: []string{base, overlay}, Level: level})
}

// Resolve tokenizes every layer, merges them and resolves the result.
// Parsing is all-or-nothing: the first failing layer aborts the request.
func (p *Parser) Resolve(req Request) (*Result, error) {
	start := p.now()
	layers := req.Layers
	if len(layers) == 0 {
		layers = []string{""}
	}

	if !req.Level.Valid() {
		err := fmt.Errorf("%w %d: must be at least %d", ErrInvalidLevel, int(req.Level), int(apilevel.Base))
		p.logRejection(req, layers, err)
		return nil, err
	}

	merged := &Qualifiers{}
	for i, layer := range layers {
		if i > 0 {
			layer = strings.TrimPrefix(layer, OverlayPrefix)
		}
		q, err := Tokenize(layer)
		if err != nil {
			p.logRejection(req, layers, err)
			return nil, err
		}
		merged = Merge(merged, q)
	}

	cfg, metrics := Resolve(merged, req.Level)
	res := &Result{
		Config:    cfg,
		Metrics:   metrics,
		Canonical: Canonicalize(cfg, metrics, req.Level),
		Level:     req.Level,
	}

	ev := p.event(req, layers, log.CategoryResolved)
	ev.Resolution = &log.ResolutionEvent{
		Canonical: res.Canonical,
		Config:    cfg,
		Metrics:   metrics,
		Duration:  ev.Timestamp.Sub(start),
	}
	p.logger.Log(ev)

	return res, nil
}

func (p *Parser) logRejection(req Request, layers []string, err error) {
	ev := p.event(req, layers, log.CategoryRejected)
	ev.Rejection = &log.RejectionEvent{Message: err.Error()}
	var qe *Error
	if errors.As(err, &qe) {
		ev.Rejection.Kind = qe.Kind.String()
		ev.Rejection.Token = qe.Token
		if qe.Kind != KindUnrecognized {
			ev.Rejection.Dimension = qe.Dimension.String()
		}
	}
	p.logger.Log(ev)
}

func (p *Parser) event(req Request, layers []string, cat log.Category) log.Event {
	ev := log.Event{
		Timestamp: p.now(),
		SessionID: p.sessionID,
		Category:  cat,
		Source:    log.SourceParse,
		APILevel:  req.Level,
		Input:     layers[len(layers)-1],
		Profile:   req.Profile,
	}
	if len(layers) > 1 {
		ev.Source = log.SourceOverlay
		ev.Base = strings.Join(layers[:len(layers)-1], " ")
	}
	if req.Profile != "" {
		ev.Source = log.SourceProfile
	}
	return ev
}

var defaultParser = &Parser{logger: log.NoopLogger{}, now: time.Now}

// Parse resolves a qualifier string against an API level without tracing.
func Parse(qualifiers string, level apilevel.Level) (*Result, error) {
	return defaultParser.Parse(qualifiers, level)
}
