// Package engine provides the Catalog Engine: the single call surface of the library catalog.
//
// The engine holds no catalog state. Every call reloads the collections it needs from the
// record store, and every mutation rewrites complete collections. All handlers of one engine
// share one set of collection locks, so load-mutate-save cycles on the same collection never
// interleave within a process. Across processes the last writer wins.
//
// Unknown roll numbers, unknown book ids and repeated operations are not errors; they are
// reported through shell.HandlerResult. Loans, overdue detection and fines are not tracked;
// the corresponding methods only exist for callers of the historical interface.
//
// Usage:
//
//	store, err := jsonfileengine.NewRecordStore("data")
//	if err != nil {
//		// handle error
//	}
//
//	eng, err := engine.NewEngine(store, engine.WithLogger(slog.Default()))
//	if err != nil {
//		// handle error
//	}
//
//	result, err := eng.IssueBook(ctx, bookID, "IT21B001", 14)
package engine
