package validity

// Flag names one of the ten validity conditions.
type Flag int

const (
	ValueMissing Flag = iota
	TypeMismatch
	PatternMismatch
	TooLong
	TooShort
	RangeUnderflow
	RangeOverflow
	StepMismatch
	BadInput
	CustomError
)

// AllFlags lists every flag in ValidityState order.
var AllFlags = []Flag{
	ValueMissing,
	TypeMismatch,
	PatternMismatch,
	TooLong,
	TooShort,
	RangeUnderflow,
	RangeOverflow,
	StepMismatch,
	BadInput,
	CustomError,
}

var flagNames = [...]string{
	ValueMissing:    "valueMissing",
	TypeMismatch:    "typeMismatch",
	PatternMismatch: "patternMismatch",
	TooLong:         "tooLong",
	TooShort:        "tooShort",
	RangeUnderflow:  "rangeUnderflow",
	RangeOverflow:   "rangeOverflow",
	StepMismatch:    "stepMismatch",
	BadInput:        "badInput",
	CustomError:     "customError",
}

// String returns the ValidityState attribute name of the flag.
func (f Flag) String() string {
	if f < 0 || int(f) >= len(flagNames) {
		return "unknown"
	}
	return flagNames[f]
}

// ParseFlag resolves a ValidityState attribute name.
func ParseFlag(name string) (Flag, bool) {
	for i, n := range flagNames {
		if n == name {
			return Flag(i), true
		}
	}
	return 0, false
}

// State is a snapshot of the ten flags for one control. It is computed on
// demand and never updated in place.
type State struct {
	ValueMissing    bool `json:"valueMissing" yaml:"valueMissing"`
	TypeMismatch    bool `json:"typeMismatch" yaml:"typeMismatch"`
	PatternMismatch bool `json:"patternMismatch" yaml:"patternMismatch"`
	TooLong         bool `json:"tooLong" yaml:"tooLong"`
	TooShort        bool `json:"tooShort" yaml:"tooShort"`
	RangeUnderflow  bool `json:"rangeUnderflow" yaml:"rangeUnderflow"`
	RangeOverflow   bool `json:"rangeOverflow" yaml:"rangeOverflow"`
	StepMismatch    bool `json:"stepMismatch" yaml:"stepMismatch"`
	BadInput        bool `json:"badInput" yaml:"badInput"`
	CustomError     bool `json:"customError" yaml:"customError"`
}

// Has reports whether flag f is raised.
func (s State) Has(f Flag) bool {
	switch f {
	case ValueMissing:
		return s.ValueMissing
	case TypeMismatch:
		return s.TypeMismatch
	case PatternMismatch:
		return s.PatternMismatch
	case TooLong:
		return s.TooLong
	case TooShort:
		return s.TooShort
	case RangeUnderflow:
		return s.RangeUnderflow
	case RangeOverflow:
		return s.RangeOverflow
	case StepMismatch:
		return s.StepMismatch
	case BadInput:
		return s.BadInput
	case CustomError:
		return s.CustomError
	default:
		return false
	}
}

// Valid is true when no flag is raised.
func (s State) Valid() bool {
	return !(s.ValueMissing || s.TypeMismatch || s.PatternMismatch ||
		s.TooLong || s.TooShort || s.RangeUnderflow || s.RangeOverflow ||
		s.StepMismatch || s.BadInput || s.CustomError)
}

// Flags returns the raised flags in ValidityState order.
func (s State) Flags() []Flag {
	var out []Flag
	for _, f := range AllFlags {
		if s.Has(f) {
			out = append(out, f)
		}
	}
	return out
}

// FlagNames returns the names of the raised flags.
func (s State) FlagNames() []string {
	flags := s.Flags()
	if len(flags) == 0 {
		return nil
	}
	names := make([]string, len(flags))
	for i, f := range flags {
		names[i] = f.String()
	}
	return names
}
