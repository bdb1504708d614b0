package ragu

import (
	"fmt"
	"reflect"

	"github.com/consensys/gnark/logger"
	"github.com/rs/zerolog"

	"github.com/alxiong/ragu/accum"
	"github.com/alxiong/ragu/field"
	"github.com/alxiong/ragu/field/bn254"
	"github.com/alxiong/ragu/header"
	"github.com/alxiong/ragu/splitacc"
	"github.com/alxiong/ragu/step"
)

// Builder accumulates step registrations before an application is
// finalized. Registering a step also registers its three headers; a suffix
// may only ever be claimed by one header type.
type Builder struct {
	steps       map[step.Index]step.Step
	headers     map[header.Suffix]header.Header
	headerTypes map[header.Suffix]reflect.Type
}

func NewBuilder() *Builder {
	return &Builder{
		steps:       make(map[step.Index]step.Step),
		headers:     make(map[header.Suffix]header.Header),
		headerTypes: make(map[header.Suffix]reflect.Type),
	}
}

// Register adds a step and its declared headers to the builder.
func (b *Builder) Register(s step.Step) error {
	if _, ok := b.steps[s.Index()]; ok {
		return fmt.Errorf("%w: step index %d", ErrDuplicateStep, s.Index())
	}
	for _, h := range []header.Header{s.Left(), s.Right(), s.Output()} {
		if err := b.registerHeader(h); err != nil {
			return err
		}
	}
	b.steps[s.Index()] = s
	return nil
}

func (b *Builder) registerHeader(h header.Header) error {
	sfx := h.Suffix()
	if sfx == header.TrivialSuffix {
		switch h.(type) {
		case header.Trivial, *header.Trivial:
			return nil
		}
		return fmt.Errorf("%w: suffix %d belongs to the trivial header", ErrReservedSuffix, sfx)
	}
	t := reflect.TypeOf(h)
	if prev, ok := b.headerTypes[sfx]; ok {
		if prev != t {
			return fmt.Errorf("%w: suffix %d claimed by both %v and %v", ErrDuplicateSuffix, sfx, prev, t)
		}
		if b.headers[sfx].Width() != h.Width() {
			return fmt.Errorf("%w: suffix %d registered with widths %d and %d",
				ErrDuplicateSuffix, sfx, b.headers[sfx].Width(), h.Width())
		}
		return nil
	}
	b.headers[sfx] = h
	b.headerTypes[sfx] = t
	return nil
}

type config struct {
	field  field.Field
	scheme accum.Scheme
	log    zerolog.Logger
}

// Option configures Finalize.
type Option func(*config)

// WithField selects the field the application's headers and steps operate
// over. Defaults to bn254.
func WithField(f field.Field) Option {
	return func(c *config) { c.field = f }
}

// WithScheme injects the accumulation scheme. Defaults to the splitacc
// reference scheme.
func WithScheme(s accum.Scheme) Option {
	return func(c *config) { c.scheme = s }
}

// WithLogger replaces the default gnark logger.
func WithLogger(l zerolog.Logger) Option {
	return func(c *config) { c.log = l }
}

// Finalize freezes the registry into an immutable Application. The
// application and everything it holds is read-only afterwards and safe for
// concurrent use.
func (b *Builder) Finalize(opts ...Option) (*Application, error) {
	cfg := config{field: &bn254.Field{}, log: logger.Logger()}
	for _, o := range opts {
		o(&cfg)
	}
	if cfg.field == nil {
		return nil, fmt.Errorf("finalize: nil field")
	}

	app := &Application{
		f:       cfg.field,
		log:     cfg.log,
		steps:   make(map[step.Index]step.Step, len(b.steps)),
		headers: make(map[header.Suffix]header.Header, len(b.headers)),
	}
	for i, s := range b.steps {
		app.steps[i] = s
	}
	for sfx, h := range b.headers {
		app.headers[sfx] = h
	}

	if cfg.scheme == nil {
		cfg.scheme = splitacc.New(cfg.field, app)
	}
	app.scheme = cfg.scheme

	app.log.Debug().
		Int("nbSteps", len(app.steps)).
		Int("nbHeaders", len(app.headers)).
		Msg("application finalized")
	return app, nil
}

// Application is a finalized registry of steps and headers bound to a
// field and an accumulation scheme. It is the sole producer of instances.
type Application struct {
	f       field.Field
	scheme  accum.Scheme
	headers map[header.Suffix]header.Header
	steps   map[step.Index]step.Step
	log     zerolog.Logger
}

// Field returns the field the application operates over.
func (app *Application) Field() field.Field { return app.f }

// ResolveStep returns the registered step for idx.
func (app *Application) ResolveStep(idx step.Index) (step.Step, bool) {
	s, ok := app.steps[idx]
	return s, ok
}

// Header returns the registered header for sfx.
func (app *Application) Header(sfx header.Suffix) (header.Header, bool) {
	if sfx == header.TrivialSuffix {
		return header.Trivial{}, true
	}
	h, ok := app.headers[sfx]
	return h, ok
}

// Trivial returns the base-case instance: the trivial state type with no
// derivation history. It is the only instance that exists without a proof
// of derivation and the only valid origin for Seed.
func (app *Application) Trivial() Instance {
	return Instance{suffix: header.TrivialSuffix, acc: app.scheme.Trivial()}
}

// Verify checks that an instance's accumulator attests to its state type
// and certified encoding. This is the terminal, end-consumer check; a
// failing instance must be discarded, never fused further.
func (app *Application) Verify(in Instance) bool {
	if in.acc == nil {
		return in.suffix == header.TrivialSuffix && len(in.output) == 0
	}
	return app.scheme.Verify(in.suffix, in.output, in.acc)
}
