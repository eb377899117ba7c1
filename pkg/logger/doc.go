// Package logger provides a context-aware wrapper around Go's slog package
// adding functional options for configuration, helper attribute constructors,
// and transparent injection of values stored in context.Context.
//
// The package exposes a single factory – New – that creates a *slog.Logger
// configured by a set of Option functions. These options allow you to:
//
//   - Select an output format (text or json)
//   - Set the minimum log level
//   - Supply default slog.Attr values applied to every record
//   - Register ContextExtractor callbacks that inject attributes pulled from a
//     context value (for example a request id) every time Handle is invoked.
//
// # Architecture
//
// New determines the concrete slog.Handler implementation –
// slog.NewTextHandler or slog.NewJSONHandler – based on the configured
// Format, then wraps it with LogHandlerDecorator which runs the registered
// ContextExtractor callbacks before delegating to the underlying handler.
//
// Helper constructors such as RunID, Path and Constraint live in attr.go and
// keep attribute naming consistent between the validator, the diagnostic
// sinks and callers.
//
// # Usage
//
//	import "github.com/dmitrymomot/formguard/pkg/logger"
//
//	func main() {
//	    log := logger.New(
//	        logger.WithService("signup-forms"),
//	        logger.WithLevel(slog.LevelWarn),
//	        logger.WithContextValue("request_id", ctxKeyRequestID),
//	    )
//	    logger.SetAsDefault(log)
//	}
//
// # Configuration
//
//   - WithFormat / WithTextFormatter / WithJSONFormatter – override output format.
//   - WithLevel – set a custom slog.Level; ParseLevel converts names from config.
//   - WithAttr / WithService – attach static attributes.
//   - WithContextExtractors / WithContextValue – inject attributes from context.
//
// # Error Handling
//
// Helper functions Error and Errors produce attributes only when the supplied
// error value is non-nil allowing calls like:
//
//	log.Info("schema loaded", logger.Error(err))
//
// without an additional nil check.
package logger
