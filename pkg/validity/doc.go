// Package validity computes the constraint-validation state of interactive
// form controls: the ten ValidityState flags (valueMissing, typeMismatch,
// patternMismatch, tooLong, tooShort, rangeUnderflow, rangeOverflow,
// stepMismatch, badInput, customError) and the derived valid flag.
//
// The package never owns a document. Callers hand it a Control, a read-only
// view over an element of their own document model exposing the node type,
// the tag name, attribute lookup, the value used for validation, and (for
// select elements) the descendant options. pkg/dom provides a ready-made
// implementation.
//
// # Architecture
//
// Evaluation flows through four stages, all pure reads of the control:
//
//   - Classify maps the control to a Kind (text input, number input, button,
//     object, select, textarea, other). Non-element nodes are KindOther.
//   - The extractor reads constraint attributes (required, pattern,
//     minlength, maxlength, min, max, step, type, multiple). A malformed
//     attribute is treated exactly like a missing one and logged at debug
//     level; it is never reported to the caller.
//   - Ten independent rules decide one flag each from the kind and the
//     extracted constraints. A rule whose constraint is absent, or whose
//     value is absent, does not fire; only valueMissing reacts to a missing
//     value.
//   - State aggregates the flags; State.Valid is the negated OR of all ten.
//
// # Usage
//
//	doc, err := dom.Parse(strings.NewReader(markup))
//	if err != nil {
//	    return err
//	}
//	ev := validity.New(validity.WithLogger(log))
//	for _, c := range doc.Controls() {
//	    state := ev.Check(c)
//	    if !state.Valid() {
//	        fmt.Println(c.LocalName(), state.FlagNames())
//	    }
//	}
//
// Package-level helpers (Check, Valid, IsValueMissing, ...) use a default
// Evaluator that discards its logs.
//
// # Concurrency
//
// Nothing is cached between calls: every query re-reads the control. An
// Evaluator may be shared between goroutines provided the underlying
// document is not mutated while a query runs.
package validity
