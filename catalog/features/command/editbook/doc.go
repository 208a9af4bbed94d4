// Package editbook implements the Edit Book use case.
//
// An edit replaces selected fields of one book. Only title, author, publisher, year, category
// and copies are editable; naming any other field rejects the whole edit with
// core.ErrFieldNotEditable. Values for year and copies that cannot be read as integers keep the
// stored value and are reported as skipped fields instead of failing the edit.
package editbook
