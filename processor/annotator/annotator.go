package annotator

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/c360studio/signum/output/label"
	"github.com/c360studio/signum/processor/renderer"
	"github.com/c360studio/signum/source"
	"github.com/c360studio/signum/validation"
	vocab "github.com/c360studio/signum/vocabulary/signum"
)

// Status is the outcome of a pass.
type Status string

const (
	// StatusRendered means at least one slot was found and populated.
	StatusRendered Status = "rendered"

	// StatusNoSlots means the metadata was valid but the document has no slot
	// that can hold a label.
	StatusNoSlots Status = "no_slots"

	// StatusSkipped means validation failed and nothing was changed.
	StatusSkipped Status = "skipped"
)

// Config configures an Annotator.
type Config struct {
	// Prefix is the meta name prefix (default "signum:").
	Prefix string

	// Render configures slot lookup and indicator markup.
	Render renderer.Options
}

// Result describes one pass.
type Result struct {
	PassID     string            `json:"pass_id"`
	Status     Status            `json:"status"`
	Record     source.Record     `json:"record"`
	Validation validation.Result `json:"validation"`

	// Label is nil when validation failed.
	Label *label.Label `json:"label,omitempty"`

	// LevelClass is the level-specific CSS class, empty when validation failed.
	LevelClass string `json:"level_class,omitempty"`

	Slots    int      `json:"slots"`
	Rendered int      `json:"rendered"`
	Skipped  []string `json:"skipped,omitempty"`
}

// Annotator runs render passes.
type Annotator struct {
	prefix    string
	validator *validation.Validator
	renderer  *renderer.Renderer
	metrics   *Metrics
	logger    *slog.Logger
}

// New creates an annotator. Metrics may be nil.
func New(cfg Config, metrics *Metrics, logger *slog.Logger) (*Annotator, error) {
	if cfg.Prefix == "" {
		cfg.Prefix = vocab.MetaPrefix
	}

	r, err := renderer.New(cfg.Render)
	if err != nil {
		return nil, fmt.Errorf("create renderer: %w", err)
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Annotator{
		prefix:    cfg.Prefix,
		validator: validation.NewValidator(cfg.Prefix),
		renderer:  r,
		metrics:   metrics,
		logger:    logger,
	}, nil
}

// Annotate runs one pass over doc.
func (a *Annotator) Annotate(doc *source.Document) Result {
	res := a.Inspect(doc)
	logger := a.logger.With("pass_id", res.PassID)

	switch {
	case !res.Validation.Valid && len(res.Validation.MissingFields) > 0:
		logger.Warn("Signum mandatory metadata missing, cannot render labels",
			"missing", res.Validation.MissingFields)
	case !res.Validation.Valid:
		logger.Warn("Signum level value invalid, cannot render labels",
			"level", res.Validation.InvalidLevel)
	case res.Slots == 0:
		// Nothing to populate.
	default:
		ind := renderer.NewIndicator(res.Record.LevelCode(), *res.Label, a.renderer.Options())
		out := a.renderer.Render(doc, ind)
		res.Rendered = out.Rendered
		res.Skipped = out.Skipped

		if len(out.Skipped) > 0 {
			logger.Debug("Skipped placeholder slots that cannot hold a label", "elements", out.Skipped)
		}
		if res.Rendered == 0 {
			res.Status = StatusNoSlots
			break
		}
		res.Status = StatusRendered
		logger.Debug("Rendered Signum labels",
			"level", res.Record.Level,
			"slots", res.Slots,
			"rendered", res.Rendered)
	}

	a.metrics.observe(&res)
	return res
}

// Inspect reads, validates and formats without touching the document.
// Status is StatusSkipped or StatusNoSlots, or StatusRendered when at least one
// slot would be populated by Annotate.
func (a *Annotator) Inspect(doc *source.Document) Result {
	res := Result{
		PassID: uuid.NewString(),
		Record: source.NewReader(doc, a.prefix).Read(),
	}

	res.Validation = a.validator.Check(res.Record)
	if !res.Validation.Valid {
		res.Status = StatusSkipped
		return res
	}

	lbl := label.Format(res.Record)
	res.Label = &lbl
	res.LevelClass = res.Record.LevelCode().ClassName(a.renderer.Options().ClassPrefix)

	res.Slots = a.renderer.Slots(doc).Length()
	if a.renderer.Usable(doc) == 0 {
		res.Status = StatusNoSlots
		return res
	}
	res.Status = StatusRendered
	return res
}

// AnnotateBytes parses content, runs a pass and returns the serialized
// document. When the pass changes nothing the original bytes are returned.
func (a *Annotator) AnnotateBytes(content []byte) ([]byte, Result, error) {
	doc, err := source.ParseBytes(content)
	if err != nil {
		return nil, Result{}, err
	}

	res := a.Annotate(doc)
	if res.Rendered == 0 {
		return content, res, nil
	}

	out, err := doc.Bytes()
	if err != nil {
		return nil, res, err
	}
	return out, res, nil
}
