// Package fixtures provides catalog records and store arrangement helpers for tests.
package fixtures
