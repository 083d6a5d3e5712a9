// Package logger builds slog loggers from functional options and provides
// attribute helpers with consistent keys for event registry logging.
//
// New selects a text or JSON handler, applies static attributes and wraps the
// handler so that registered ContextExtractor functions can add attributes
// pulled from the context of each log call.
//
//	log := logger.New(
//		logger.WithEnvironment(environment.Development, "subject-demo"),
//		logger.WithOutput(os.Stderr),
//	)
//	log.Debug("subscribed", logger.Channel("stuff"), logger.Handle(h))
//
// Error and Errors return an empty attribute for nil errors, so they can be
// passed unconditionally.
package logger
