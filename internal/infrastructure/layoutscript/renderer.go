// Package layoutscript renders the JavaScript injected into the host page:
// the bridge shim and the quadrant grid layout script.
package layoutscript

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"text/template"

	"github.com/grafana/sobek"

	"github.com/bnema/quadchat/internal/application/port"
	"github.com/bnema/quadchat/internal/domain/entity"
	"github.com/bnema/quadchat/internal/logging"
)

const (
	// DefaultHandlerName is the WebKit script message handler the page posts to.
	DefaultHandlerName = "quadchat"
	// GridElementID is the DOM id of the injected grid container.
	GridElementID = "quadchat-grid"
)

var (
	//go:embed layout.js.tmpl
	layoutSource string
	//go:embed bridge.js.tmpl
	bridgeSource string
	//go:embed gap.js.tmpl
	gapSource string

	layoutTemplate = template.Must(template.New("layout").Parse(layoutSource))
	bridgeTemplate = template.Must(template.New("bridge").Parse(bridgeSource))
	gapTemplate    = template.Must(template.New("gap").Parse(gapSource))
)

// ErrInvalidScript is returned when a rendered script does not parse.
var ErrInvalidScript = errors.New("layoutscript: rendered script is not valid JavaScript")

type layoutData struct {
	GridID      string
	Gap         string
	Count       int
	LoadingText string
	Handler     string
	DelayMS     int64
}

type bridgeData struct {
	Handler string
}

type gapData struct {
	GridID string
	Gap    string
}

// Renderer implements port.LayoutScriptRenderer.
type Renderer struct {
	handler string
}

// NewRenderer creates a renderer posting to the given message handler.
// An empty name selects DefaultHandlerName.
func NewRenderer(handlerName string) *Renderer {
	if handlerName == "" {
		handlerName = DefaultHandlerName
	}
	return &Renderer{handler: handlerName}
}

// HandlerName returns the script message handler name scripts post to.
func (r *Renderer) HandlerName() string {
	return r.handler
}

// Render produces the grid layout script. The output is syntax checked
// before it is returned.
func (r *Renderer) Render(ctx context.Context, opts port.LayoutScriptOptions) (string, error) {
	log := logging.FromContext(ctx)

	data := layoutData{
		GridID:      jsString(GridElementID),
		Gap:         strconv.FormatFloat(opts.Gap, 'f', -1, 64),
		Count:       entity.QuadrantCount,
		LoadingText: jsString(opts.LoadingText),
		Handler:     jsString(r.handler),
		DelayMS:     opts.ReportDelay.Milliseconds(),
	}
	if data.DelayMS < 0 {
		data.DelayMS = 0
	}

	script, err := execute(layoutTemplate, data)
	if err != nil {
		return "", err
	}
	if err := Validate("layout.js", script); err != nil {
		return "", err
	}

	log.Debug().
		Int("bytes", len(script)).
		Str("gap", data.Gap).
		Int64("delay_ms", data.DelayMS).
		Msg("layout script rendered")
	return script, nil
}

// RenderBridge produces the document-start shim exposing
// window.__quadchat.invoke(cmd, args).
func (r *Renderer) RenderBridge() (string, error) {
	script, err := execute(bridgeTemplate, bridgeData{Handler: jsString(r.handler)})
	if err != nil {
		return "", err
	}
	if err := Validate("bridge.js", script); err != nil {
		return "", err
	}
	return script, nil
}

// RenderGap produces a script that changes the gap of an already injected
// grid. It does nothing on a page without the grid.
func (r *Renderer) RenderGap(gap float64) (string, error) {
	script, err := execute(gapTemplate, gapData{
		GridID: jsString(GridElementID),
		Gap:    strconv.FormatFloat(gap, 'f', -1, 64),
	})
	if err != nil {
		return "", err
	}
	if err := Validate("gap.js", script); err != nil {
		return "", err
	}
	return script, nil
}

// Validate compiles script without running it.
func Validate(name, script string) error {
	if _, err := sobek.Compile(name, script, false); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidScript, name, err)
	}
	return nil
}

func execute(tmpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render %s: %w", tmpl.Name(), err)
	}
	return buf.String(), nil
}

// jsString encodes s as a JavaScript string literal.
func jsString(s string) string {
	b, err := json.Marshal(s)
	if err != nil {
		return `""`
	}
	return string(b)
}
