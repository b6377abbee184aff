// Package album implements the live shape store and the snapshot
// history ledger.
//
// Commands mutate the store in place; [Album.TakeSnapshot] deep-clones
// the current shapes into an immutable [Snapshot] appended to the
// ledger. A snapshot shares no mutable state with the live store or
// with any other snapshot, so later mutations never alter a capture.
//
// Navigation over the ledger is by timestamp: exact lookup with
// [Album.SnapshotByTimestamp], chronological stepping with
// [Album.PreviousSnapshot] and [Album.NextSnapshot]. Lookup misses are
// non-error not-found results.
package album
