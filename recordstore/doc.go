// Package recordstore provides core abstractions and types for persisting
// the collections of a library catalog as ordered lists of flat documents.
//
// This package defines the fundamental types used across different record
// store implementations (engines): collection names, documents, and common
// error definitions, plus the dependency-free observability interfaces the
// engines report to.
//
// A record store only knows whole collections. Every read returns the
// complete collection and every write replaces it, there are no partial
// updates and no append-only log:
//
//	docs, err := store.Load(ctx, recordstore.Books)
//	if err != nil {
//		// handle error
//	}
//
//	docs = append(docs, recordstore.Document{"item_id": id, "title": "Operating Systems"})
//	err = store.Save(ctx, recordstore.Books, docs)
//
// Engines:
//   - jsonfileengine: one JSON array file per collection (books.json, users.json)
//   - postgresengine: one JSONB row per collection
package recordstore
