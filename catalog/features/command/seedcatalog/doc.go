// Package seedcatalog implements the bulk seed of a fresh installation.
//
// The starter set of 24 books and 20 members is written exactly once: only when the catalog
// is empty. Seeded members whose roll number is already registered are left out, so seeding
// never creates duplicate roll numbers.
package seedcatalog
