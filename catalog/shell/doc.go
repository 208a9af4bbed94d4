// Package shell is the imperative shell around the pure catalog core.
//
// It maps stored documents to core records and back, serializes load-mutate-save cycles
// per collection, and carries the shared handler contracts, handler results and
// observability helpers used by every feature package.
//
// In Domain-Driven Design or Hexagonal Architecture terminology, this would be
// called the 'infrastructure' layer.
package shell
