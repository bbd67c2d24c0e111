package validity

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/dmitrymomot/formkit/pkg/logger"
)

const (
	attrRequired  = "required"
	attrPattern   = "pattern"
	attrMinLength = "minlength"
	attrMaxLength = "maxlength"
	attrMin       = "min"
	attrMax       = "max"
	attrStep      = "step"
	attrType      = "type"
	attrMultiple  = "multiple"
)

var (
	errNotNumber   = errors.New("not a valid floating-point number")
	errNotInteger  = errors.New("not a valid non-negative integer")
	errStepAny     = errors.New("step is \"any\"")
	errStepNotPos  = errors.New("step must be greater than zero")
	floatingNumber = regexp.MustCompile(`^-?(?:[0-9]+(?:\.[0-9]+)?|\.[0-9]+)(?:[eE][+-]?[0-9]+)?$`)
)

// extractor reads constraint attributes of one control. Every fallible parse
// goes through present, so a malformed attribute is indistinguishable from a
// missing one.
type extractor struct {
	c   Control
	log *slog.Logger
}

// present turns a parse result into an optional constraint. Parse failures
// are logged at debug level and reported as absent.
func present[T any](x extractor, name, raw string, v T, err error) (T, bool) {
	if err != nil {
		x.log.LogAttrs(context.Background(), slog.LevelDebug, "constraint ignored",
			logger.Control(x.c.LocalName()),
			logger.Constraint(name, raw),
			logger.Error(err),
		)
		var zero T
		return zero, false
	}
	return v, true
}

func (x extractor) has(name string) bool {
	_, ok := x.c.Attribute(name)
	return ok
}

func (x extractor) required() bool {
	return x.has(attrRequired)
}

func (x extractor) multiple() bool {
	return x.has(attrMultiple)
}

// inputType returns the lower-cased type attribute.
func (x extractor) inputType() (string, bool) {
	raw, ok := x.c.Attribute(attrType)
	if !ok {
		return "", false
	}
	return strings.ToLower(strings.TrimSpace(raw)), true
}

// nonTextTypes are input types whose value is not free text, so pattern,
// minlength and maxlength do not apply to them.
var nonTextTypes = map[string]bool{
	"checkbox": true, "radio": true, "file": true, "color": true,
	"date": true, "month": true, "week": true, "time": true, "datetime-local": true,
}

// textual reports whether pattern and length constraints apply to an input.
// Missing and unknown types are text.
func (x extractor) textual() bool {
	typ, _ := x.inputType()
	return !nonTextTypes[typ]
}

// pattern compiles the pattern attribute anchored at both ends.
func (x extractor) pattern() (*regexp.Regexp, bool) {
	raw, ok := x.c.Attribute(attrPattern)
	if !ok {
		return nil, false
	}
	re, err := regexp.Compile(`^(?:` + raw + `)$`)
	return present(x, attrPattern, raw, re, err)
}

// length parses minlength/maxlength.
func (x extractor) length(name string) (int, bool) {
	raw, ok := x.c.Attribute(name)
	if !ok {
		return 0, false
	}
	n, err := parseNonNegativeInt(raw)
	return present(x, name, raw, n, err)
}

// number parses min/max.
func (x extractor) number(name string) (float64, bool) {
	raw, ok := x.c.Attribute(name)
	if !ok {
		return 0, false
	}
	f, err := parseNumber(trimASCIISpace(raw))
	return present(x, name, raw, f, err)
}

func (x extractor) step() (float64, bool) {
	raw, ok := x.c.Attribute(attrStep)
	if !ok {
		return 0, false
	}
	if strings.EqualFold(strings.TrimSpace(raw), "any") {
		return present(x, attrStep, raw, 0.0, errStepAny)
	}
	f, err := parseNumber(trimASCIISpace(raw))
	if err == nil && f <= 0 {
		err = errStepNotPos
	}
	return present(x, attrStep, raw, f, err)
}

func parseNonNegativeInt(raw string) (int, error) {
	s := trimASCIISpace(raw)
	if s == "" {
		return 0, errNotInteger
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, errNotInteger
		}
	}
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, errors.Join(errNotInteger, err)
	}
	return int(n), nil
}

// parseNumber accepts the HTML floating-point grammar only and rejects
// values that overflow to infinity.
func parseNumber(s string) (float64, error) {
	if !floatingNumber.MatchString(s) {
		return 0, errNotNumber
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.Join(errNotNumber, err)
	}
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, errNotNumber
	}
	return f, nil
}

func trimASCIISpace(s string) string {
	return strings.Trim(s, " \t\n\f\r")
}
