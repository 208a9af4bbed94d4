// Package jsonfileengine provides a record store engine that keeps every collection
// of the library catalog in its own JSON file (books.json, users.json) inside one data directory.
//
// Each file holds a JSON array of flat objects, indented with four spaces. Loading
// a missing file yields an empty collection; loading a file that is not a JSON array
// of objects yields an empty collection as well (logged at warn level and counted),
// unless WithStrictDecoding is set.
//
// Saving replaces the whole file through a temporary file and a rename.
//
// Usage:
//
//	store, err := jsonfileengine.NewRecordStore("data",
//		jsonfileengine.WithLogger(slog.Default()),
//	)
//	if err != nil {
//		// handle error
//	}
//
//	books, err := store.Load(ctx, recordstore.Books)
package jsonfileengine
