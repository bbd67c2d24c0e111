package validity

var std = New()

// Check evaluates all flags for c with the default Evaluator.
func Check(c Control) State { return std.Check(c) }

// Valid reports whether c satisfies all of its constraints.
func Valid(c Control) bool { return std.Valid(c) }

// IsValueMissing is Evaluator.ValueMissing with the default Evaluator.
func IsValueMissing(c Control) bool { return std.ValueMissing(c) }

// IsTypeMismatch is Evaluator.TypeMismatch with the default Evaluator.
func IsTypeMismatch(c Control) bool { return std.TypeMismatch(c) }

// IsPatternMismatch is Evaluator.PatternMismatch with the default Evaluator.
func IsPatternMismatch(c Control) bool { return std.PatternMismatch(c) }

// IsTooLong is Evaluator.TooLong with the default Evaluator.
func IsTooLong(c Control) bool { return std.TooLong(c) }

// IsTooShort is Evaluator.TooShort with the default Evaluator.
func IsTooShort(c Control) bool { return std.TooShort(c) }

// IsRangeUnderflow is Evaluator.RangeUnderflow with the default Evaluator.
func IsRangeUnderflow(c Control) bool { return std.RangeUnderflow(c) }

// IsRangeOverflow is Evaluator.RangeOverflow with the default Evaluator.
func IsRangeOverflow(c Control) bool { return std.RangeOverflow(c) }

// IsStepMismatch is Evaluator.StepMismatch with the default Evaluator.
func IsStepMismatch(c Control) bool { return std.StepMismatch(c) }

// IsBadInput is Evaluator.BadInput with the default Evaluator.
func IsBadInput(c Control) bool { return std.BadInput(c) }

// IsCustomError is Evaluator.CustomError with the default Evaluator.
func IsCustomError(c Control) bool { return std.CustomError(c) }
