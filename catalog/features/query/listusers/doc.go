// Package listusers implements the member listing query, optionally narrowed by a
// case-insensitive search on name or roll number.
package listusers
