package half

import (
	"fmt"

	"github.com/rs/xid"

	"github.com/pipelined/spiral/log"
	"github.com/pipelined/spiral/pixel"
)

// Pipeline is a fixed binding of pairer, reducer and shaper between
// splitter and mirrorer.
type Pipeline struct {
	uid     string
	name    string
	pairer  Pairer
	reducer Reducer
	shaper  Shaper
	log     log.Logger
}

// Option provides a way to set functional parameters to pipeline.
type Option func(p *Pipeline)

var defaultLogger = log.GetLogger()

// newUID returns new unique id value.
func newUID() string {
	return xid.New().String()
}

// New creates a new pipeline and applies provided options.
func New(pairer Pairer, reducer Reducer, shaper Shaper, options ...Option) *Pipeline {
	p := &Pipeline{
		uid:     newUID(),
		pairer:  pairer,
		reducer: reducer,
		shaper:  shaper,
		log:     defaultLogger,
	}
	p.name = p.uid
	for _, option := range options {
		option(p)
	}
	return p
}

// WithName sets name to pipeline.
func WithName(name string) Option {
	return func(p *Pipeline) {
		p.name = name
	}
}

// WithLogger sets logger to pipeline.
func WithLogger(l log.Logger) Option {
	return func(p *Pipeline) {
		p.log = l
	}
}

// ID returns unique id of the pipeline.
func (p *Pipeline) ID() string {
	return p.uid
}

// Name returns name of the pipeline.
func (p *Pipeline) Name() string {
	return p.name
}

func (p *Pipeline) String() string {
	return fmt.Sprintf("%s: %v, %v, %v", p.name, p.pairer, p.reducer, p.shaper)
}

// Apply runs all stages over a copy of the image and returns mirrored
// result. Provided image is never modified.
func (p *Pipeline) Apply(img *pixel.Image) (*pixel.Image, error) {
	if err := img.Validate(); err != nil {
		return nil, &StageError{Pipeline: p.name, Stage: "copy", Err: err}
	}
	img = img.Copy()
	halves, err := Split(img)
	if err != nil {
		return nil, &StageError{Pipeline: p.name, Stage: "split", Err: err}
	}
	p.log.Debug(fmt.Sprintf("%v/%v: split %v into %v halves", p.name, p.uid, img.Shape(), halves.Left.Shape()))

	paired, err := p.pairer.Pair(halves)
	if err != nil {
		return nil, &StageError{Pipeline: p.name, Stage: "pair", Err: err}
	}
	reduced, err := p.reducer.Reduce(paired)
	if err != nil {
		return nil, &StageError{Pipeline: p.name, Stage: "reduce", Err: err}
	}
	shaped, err := p.shaper.Shape(reduced)
	if err != nil {
		return nil, &StageError{Pipeline: p.name, Stage: "shape", Err: err}
	}
	result := Mirror(shaped)
	p.log.Debug(fmt.Sprintf("%v/%v: mirrored %v", p.name, p.uid, result.Shape()))
	return result, nil
}
