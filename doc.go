// Package cardfolio provides the functions and types for tracking purchases
// and sales of collectible cards. It is designed to be local-first and
// auditable: the full record set lives in a single human-readable file owned
// by the user, and every derived figure can be recomputed from it.
//
// The core functionalities include:
//   - Record Repository: the sole gateway to the durable card store,
//     providing load, upsert, delete, bulk-delete and wholesale replace
//     operations over records keyed by id.
//   - Aggregation: pure functions computing filtered views (date window,
//     sold status, text search), orderings, summary statistics (invested,
//     proceeds, realized profit, ROI) and the cumulative profit series.
//   - Snapshot Exchange: export of the full record set to a portable JSON
//     array for backup, and strict validation of an external snapshot
//     before it replaces the store wholesale.
//
// This package serves as the foundational logic for the `cct` command-line
// tool. There is no server and no network access; portability is whole-file
// snapshot exchange, not sync.
package cardfolio
