// Package logger builds *slog.Logger values for formkit binaries and
// libraries.
//
// New takes functional options (format, level, output, static attributes,
// context extractors) and returns a logger whose handler is wrapped by
// NewContextHandler, so values carried in a context.Context (for example
// the request id set by pkg/api) are attached to every record logged with a
// *Context method.
//
// Attribute helpers in attr.go keep key names consistent across packages:
//
//	log.DebugContext(ctx, "constraint ignored",
//	    logger.Control("input"),
//	    logger.Constraint("maxlength", "ten"),
//	)
//
// NewNop returns a logger that discards everything; pkg/validity uses it when
// no logger is configured.
package logger
