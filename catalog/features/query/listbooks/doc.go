// Package listbooks implements the catalog listing query.
//
// The catalog is always loaded fresh. Results can be narrowed by a case-insensitive search
// on title or author and by category; the result also carries the sorted set of all
// categories and a title lookup by id for rendering member lists.
package listbooks
