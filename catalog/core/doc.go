// Package core contains the data model of the library catalog:
// books, library members (users) and the decisions taken about them.
//
// Everything here is pure: no IO, no clocks, no randomness except for the identifier
// generator that callers pass in. Document conversion applies the catalog defaults
// (year 2023, category "General", one copy) and best-effort coercion of loosely typed
// stored values.
//
// In Domain-Driven Design or Hexagonal Architecture terminology, this would be
// called the 'domain' layer.
package core
