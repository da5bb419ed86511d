// Package orders implements the order export reconciliation feature.
//
// It ingests flat export rows (one row per line item), groups them into
// orders, and writes the previously-unseen orders and sub-orders to the
// database inside a single all-or-nothing transaction.
//
// # Pipeline
//
//  1. ValidateRows: rejects rows missing a reference code or suborder number,
//     or carrying an unparseable order date, before any store interaction.
//  2. GroupRows: pure in-memory partition of rows into OrderGroups, keyed by
//     reference code, preserving first-seen order at both levels.
//  3. Reconciler.Reconcile: one transaction over the whole batch; existing
//     orders (by reference code + invoice number) and sub-orders (by suborder
//     number) are reused/skipped, new ones are inserted, and counters report
//     exactly what happened. Any failure rolls back everything.
//
// Re-uploading an identical batch after a successful run is a safe no-op:
// zero creates, every line item counted as a duplicate.
//
// # Components
//
//   - Service: Validates, groups, and reconciles; also serves order listings.
//   - Handler: Exposes the upload and listing HTTP endpoints.
//   - Loader: Registers the feature with the application.
//
// # HTTP Endpoints
//
//   - POST /orders/upload : Reconcile a JSON array of export rows.
//   - GET  /orders        : List orders with nested sub-orders, newest first.
package orders
