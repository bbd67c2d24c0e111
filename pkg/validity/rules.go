package validity

import (
	"math"
	"unicode/utf8"
)

// Each rule takes the classified kind and the control's extractor and
// returns whether its flag is raised. Rules never read one another.

func valueMissing(k Kind, x extractor) bool {
	switch k {
	case KindTextInput, KindNumberInput, KindTextArea:
		if !x.required() {
			return false
		}
		_, ok := x.c.ValueForValidation()
		return !ok
	case KindSelect:
		if !x.required() {
			return false
		}
		for _, opt := range x.c.Options() {
			if opt.Selected && opt.Enabled && opt.Value != "" {
				return false
			}
		}
		return true
	case KindButton, KindObject, KindOther:
		return false
	default:
		return false
	}
}

func typeMismatch(k Kind, x extractor) bool {
	switch k {
	case KindTextInput, KindNumberInput:
		typ, ok := x.inputType()
		if !ok {
			return false
		}
		check, ok := typeFormats[typ]
		if !ok {
			return false
		}
		value, ok := x.c.ValueForValidation()
		if !ok {
			return false
		}
		return !check(value, x.multiple())
	case KindButton, KindObject, KindSelect, KindTextArea, KindOther:
		return false
	default:
		return false
	}
}

func patternMismatch(k Kind, x extractor) bool {
	switch k {
	case KindTextInput, KindNumberInput:
		if !x.textual() {
			return false
		}
		re, ok := x.pattern()
		if !ok {
			return false
		}
		value, ok := x.c.ValueForValidation()
		if !ok {
			return false
		}
		return !re.MatchString(value)
	case KindButton, KindObject, KindSelect, KindTextArea, KindOther:
		return false
	default:
		return false
	}
}

func tooLong(k Kind, x extractor) bool {
	switch k {
	case KindTextInput, KindNumberInput, KindTextArea:
		if k == KindTextInput && !x.textual() {
			return false
		}
		limit, ok := x.length(attrMaxLength)
		if !ok {
			return false
		}
		value, ok := x.c.ValueForValidation()
		if !ok {
			return false
		}
		return utf8.RuneCountInString(value) > limit
	case KindButton, KindObject, KindSelect, KindOther:
		return false
	default:
		return false
	}
}

func tooShort(k Kind, x extractor) bool {
	switch k {
	case KindTextInput, KindNumberInput, KindTextArea:
		if k == KindTextInput && !x.textual() {
			return false
		}
		limit, ok := x.length(attrMinLength)
		if !ok {
			return false
		}
		value, ok := x.c.ValueForValidation()
		if !ok {
			return false
		}
		return utf8.RuneCountInString(value) < limit
	case KindButton, KindObject, KindSelect, KindOther:
		return false
	default:
		return false
	}
}

func rangeUnderflow(k Kind, x extractor) bool {
	switch k {
	case KindNumberInput:
		low, ok := x.number(attrMin)
		if !ok {
			return false
		}
		v, ok := numericValue(x.c)
		return ok && v < low
	case KindTextInput, KindButton, KindObject, KindSelect, KindTextArea, KindOther:
		return false
	default:
		return false
	}
}

func rangeOverflow(k Kind, x extractor) bool {
	switch k {
	case KindNumberInput:
		high, ok := x.number(attrMax)
		if !ok {
			return false
		}
		v, ok := numericValue(x.c)
		return ok && v > high
	case KindTextInput, KindButton, KindObject, KindSelect, KindTextArea, KindOther:
		return false
	default:
		return false
	}
}

// The quotient value/step must be within these bounds of an integer. The
// absolute bound covers noise such as 0.9 / 0.3; the relative one covers the
// rounding error of large quotients such as 1e10 / 0.1.
const (
	stepTolerance         = 1e-9
	stepRelativeTolerance = 1e-14
)

func stepMismatch(k Kind, x extractor) bool {
	switch k {
	case KindNumberInput:
		step, ok := x.step()
		if !ok {
			return false
		}
		v, ok := numericValue(x.c)
		if !ok {
			return false
		}
		q := v / step
		eps := math.Max(stepTolerance, stepRelativeTolerance*math.Abs(q))
		return math.Abs(q-math.Round(q)) > eps
	case KindTextInput, KindButton, KindObject, KindSelect, KindTextArea, KindOther:
		return false
	default:
		return false
	}
}

// badInput is reserved: no control in this model keeps a displayed value
// that differs from its value for validation.
func badInput(Kind, extractor) bool {
	return false
}

// customError is reserved: there is no custom validity message registry.
func customError(Kind, extractor) bool {
	return false
}

// numericValue parses the value for validation. A value that is absent or
// not a number yields ok=false, so numeric rules do not fire.
func numericValue(c Control) (float64, bool) {
	raw, ok := c.ValueForValidation()
	if !ok {
		return 0, false
	}
	v, err := parseNumber(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}
