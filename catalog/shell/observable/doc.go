// Package observable decorates command and query handlers with logging, metrics and tracing.
//
// The wrapped handlers stay free of observability concerns; the wrappers translate their
// HandlerResult and errors into log records, metric samples and span outcomes.
package observable
