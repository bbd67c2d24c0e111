package validity

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/formkit/pkg/logger"
)

type rule func(Kind, extractor) bool

var rules = [...]rule{
	ValueMissing:    valueMissing,
	TypeMismatch:    typeMismatch,
	PatternMismatch: patternMismatch,
	TooLong:         tooLong,
	TooShort:        tooShort,
	RangeUnderflow:  rangeUnderflow,
	RangeOverflow:   rangeOverflow,
	StepMismatch:    stepMismatch,
	BadInput:        badInput,
	CustomError:     customError,
}

// EvaluatorOption configures an Evaluator.
type EvaluatorOption func(*Evaluator)

// WithLogger sets the logger used to report ignored constraints at debug
// level. A nil logger keeps the discarding default.
func WithLogger(l *slog.Logger) EvaluatorOption {
	return func(e *Evaluator) {
		if l != nil {
			e.log = l
		}
	}
}

// Evaluator answers validity queries for controls. It holds no per-control
// state, so a single Evaluator can serve concurrent callers as long as the
// controls themselves are stable for the duration of a call.
type Evaluator struct {
	log *slog.Logger
}

// New returns an Evaluator.
func New(opts ...EvaluatorOption) *Evaluator {
	e := &Evaluator{log: logger.NewNop()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Is evaluates a single flag for c.
func (e *Evaluator) Is(c Control, f Flag) bool {
	if f < 0 || int(f) >= len(rules) {
		return false
	}
	k := Classify(c)
	if k == KindOther {
		return false
	}
	return rules[f](k, extractor{c: c, log: e.log})
}

// Check evaluates all ten flags for c.
func (e *Evaluator) Check(c Control) State {
	k := Classify(c)
	if k == KindOther {
		return State{}
	}
	x := extractor{c: c, log: e.log}
	s := State{
		ValueMissing:    valueMissing(k, x),
		TypeMismatch:    typeMismatch(k, x),
		PatternMismatch: patternMismatch(k, x),
		TooLong:         tooLong(k, x),
		TooShort:        tooShort(k, x),
		RangeUnderflow:  rangeUnderflow(k, x),
		RangeOverflow:   rangeOverflow(k, x),
		StepMismatch:    stepMismatch(k, x),
		BadInput:        badInput(k, x),
		CustomError:     customError(k, x),
	}
	if !s.Valid() && e.log.Enabled(context.Background(), slog.LevelDebug) {
		e.log.LogAttrs(context.Background(), slog.LevelDebug, "control invalid",
			logger.Control(c.LocalName()),
			logger.Kind(k.String()),
			logger.Flags(s.FlagNames()),
		)
	}
	return s
}

// ValueMissing reports whether a required control has no value.
func (e *Evaluator) ValueMissing(c Control) bool {
	return e.Is(c, ValueMissing)
}

// TypeMismatch reports whether the value breaks the format of its input type.
func (e *Evaluator) TypeMismatch(c Control) bool {
	return e.Is(c, TypeMismatch)
}

// PatternMismatch reports whether the value does not fully match pattern.
func (e *Evaluator) PatternMismatch(c Control) bool {
	return e.Is(c, PatternMismatch)
}

// TooLong reports whether the value has more characters than maxlength.
func (e *Evaluator) TooLong(c Control) bool {
	return e.Is(c, TooLong)
}

// TooShort reports whether the value has fewer characters than minlength.
func (e *Evaluator) TooShort(c Control) bool {
	return e.Is(c, TooShort)
}

// RangeUnderflow reports whether a number input's value is below min.
func (e *Evaluator) RangeUnderflow(c Control) bool {
	return e.Is(c, RangeUnderflow)
}

// RangeOverflow reports whether a number input's value is above max.
func (e *Evaluator) RangeOverflow(c Control) bool {
	return e.Is(c, RangeOverflow)
}

// StepMismatch reports whether a number input's value is not a multiple of step.
func (e *Evaluator) StepMismatch(c Control) bool {
	return e.Is(c, StepMismatch)
}

// BadInput is reserved and always false.
func (e *Evaluator) BadInput(c Control) bool {
	return e.Is(c, BadInput)
}

// CustomError is reserved and always false.
func (e *Evaluator) CustomError(c Control) bool {
	return e.Is(c, CustomError)
}

// Valid is true when none of the ten flags is raised for c.
func (e *Evaluator) Valid(c Control) bool {
	for _, f := range AllFlags {
		if e.Is(c, f) {
			return false
		}
	}
	return true
}
