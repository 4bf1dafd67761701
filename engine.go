package chimera

import (
	"context"
	"strings"
	"sync"
	"time"
)

// Engine composes pattern transforms over a fixed alphabet.
//
// Engines are safe for concurrent use. SetTransform may be called at any
// time; each Encode or Decode sees a consistent registry.
type Engine struct {
	alphabet *Alphabet

	mu         sync.RWMutex
	transforms map[Selector]Transform
}

// Option configures an Engine.
type Option func(*engineConfig) error

type engineConfig struct {
	alphabet   *Alphabet
	transforms map[Selector]Transform
}

// WithAlphabet sets the engine alphabet.
func WithAlphabet(a *Alphabet) Option {
	return func(c *engineConfig) error {
		if a == nil {
			return ErrEmptyAlphabet
		}
		c.alphabet = a
		return nil
	}
}

// WithSymbols builds the engine alphabet from a raw symbol string.
func WithSymbols(symbols string) Option {
	return func(c *engineConfig) error {
		a, err := NewAlphabet(symbols)
		if err != nil {
			return err
		}
		c.alphabet = a
		return nil
	}
}

// WithTransform registers t for sel, replacing any builtin.
func WithTransform(sel Selector, t Transform) Option {
	return func(c *engineConfig) error {
		c.transforms[sel] = t
		return nil
	}
}

// NewEngine creates an Engine with the builtin transforms.
// Without WithAlphabet or WithSymbols the default alphabet is used.
func NewEngine(opts ...Option) (*Engine, error) {
	cfg := &engineConfig{
		transforms: builtinTransforms(),
	}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	if cfg.alphabet == nil {
		cfg.alphabet = DefaultAlphabet()
	}

	e := &Engine{
		alphabet:   cfg.alphabet,
		transforms: cfg.transforms,
	}

	emitEngineCreated(context.Background(), e.alphabet.Size())
	return e, nil
}

// Alphabet returns the engine alphabet.
func (e *Engine) Alphabet() *Alphabet {
	return e.alphabet
}

// SetTransform registers a transform for the given selector.
// Returns the engine for chaining. Safe for concurrent use.
func (e *Engine) SetTransform(sel Selector, t Transform) *Engine {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.transforms[sel] = t
	return e
}

// Parse parses a pattern token against the engine alphabet.
func (e *Engine) Parse(raw string) (Pattern, error) {
	return ParsePattern(raw, e.alphabet)
}

// Sanitize filters raw text down to the engine alphabet.
func (e *Engine) Sanitize(raw string) (string, error) {
	return e.alphabet.Sanitize(raw)
}

// Encode sanitizes text and applies p's forward transforms left to right.
func (e *Engine) Encode(ctx context.Context, p Pattern, text string) (string, error) {
	return e.run(ctx, ModeEncode, p, text)
}

// Decode sanitizes text and applies p's inverse transforms right to left.
func (e *Engine) Decode(ctx context.Context, p Pattern, text string) (string, error) {
	return e.run(ctx, ModeDecode, p, text)
}

// Run executes a full invocation from raw arguments.
//
// Arguments are validated before any transform runs, in order: mode,
// pattern presence, text presence, pattern selectors, sanitized text.
// Text parts are concatenated without separators.
func (e *Engine) Run(ctx context.Context, rawMode, rawPattern string, text ...string) (string, error) {
	mode, err := ParseMode(rawMode)
	if err != nil {
		return "", err
	}
	if rawPattern == "" {
		return "", newInputError(ErrMissingPattern, "")
	}
	if len(text) == 0 {
		return "", newInputError(ErrMissingText, "")
	}

	p, err := e.Parse(rawPattern)
	if err != nil {
		return "", err
	}
	return e.run(ctx, mode, p, strings.Join(text, ""))
}

// Transform applies p to text in the given mode without sanitizing.
// Runes outside the alphabet pass through the index-based transforms
// untouched, so Transform(ModeDecode, p, Transform(ModeEncode, p, t)) == t
// for any t made of upper-case alphabet members. Lower-case input is folded
// to upper-case wherever a transform touches it.
func (e *Engine) Transform(mode Mode, p Pattern, text string) string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return string(e.apply(mode, p, []rune(text)))
}

func (e *Engine) run(ctx context.Context, mode Mode, p Pattern, raw string) (string, error) {
	start := time.Now()
	emitTransformStart(ctx, mode, p, len(raw))

	var out string
	var retErr error
	defer func() {
		emitTransformComplete(ctx, mode, p, len(out), time.Since(start), retErr)
	}()

	if len(p.Selectors) == 0 {
		retErr = newInputError(ErrEmptyPattern, p.Raw)
		return "", retErr
	}

	text, err := e.alphabet.Sanitize(raw)
	if err != nil {
		retErr = err
		return "", retErr
	}

	out = e.Transform(mode, p, text)
	return out, nil
}

// apply composes transforms; callers hold e.mu.
func (e *Engine) apply(mode Mode, p Pattern, text []rune) []rune {
	env := Env{Alphabet: e.alphabet, Shift: p.Shift}

	if mode == ModeDecode {
		for i := len(p.Selectors) - 1; i >= 0; i-- {
			env.Selector = p.Selectors[i]
			text = e.lookup(env.Selector).Inverse(text, env)
		}
		return text
	}

	for _, sel := range p.Selectors {
		env.Selector = sel
		text = e.lookup(sel).Forward(text, env)
	}
	return text
}

// lookup returns the transform for sel, or Identity.
func (e *Engine) lookup(sel Selector) Transform {
	if t, ok := e.transforms[sel]; ok {
		return t
	}
	return identity
}

var identity = Identity()
