// Package catalog implements the catalog synchronization engine.
//
// It reconciles the external series/set/card hierarchy of the reference
// dataset against the local catalog store: series and sets become taxons of a
// category tree, cards become products with one variant per configured card
// language, and manually described sealed items are linked into a derived
// "sealed products" branch.
//
// # Idempotence
//
// Every entity carries a deterministic code computed purely from stable
// external identifiers (see codes.go). Synchronizers only ever use the
// lookup-or-create pattern keyed by these codes, so re-running any import
// creates nothing new and mutates nothing existing. An already existing code
// short-circuits to the existing entity; it is never an error.
//
// # Persistence discipline
//
// All writes go through the Store boundary: records are staged, then flushed
// in a single transaction by Commit. Bulk imports commit every 50 processed
// items and once more at the end, so a late failure preserves the work that
// was already committed. Single-entity operations commit before returning.
//
// Execution is single-threaded and request-scoped. Two imports running
// concurrently against the same database are not supported; the unique index
// on every code column turns that race into a constraint violation instead of
// a silent duplicate.
//
// # Components
//
//   - Taxonomy: series/set tree reconciliation (parent before child, always).
//   - Cards: card-to-product mapping, single card or whole set with
//     skip-counting of existing and unresolvable cards.
//   - Sealed: manually described sealed products.
//   - ImageMirror: best-effort copy of card illustrations into object storage.
//   - Handler: admin HTTP endpoints triggering the operations above.
//
// # HTTP Endpoints
//
//   - POST /catalog/taxonomy/import : Import all series and sets.
//   - POST /catalog/taxonomy/series/:seriesId : Import one series.
//   - POST /catalog/taxonomy/sets/:setId : Import one set.
//   - POST /catalog/sets/:setId/products : Create products for a set's cards.
//   - POST /catalog/cards/:cardId/product : Create a product from one card.
//   - POST /catalog/sealed : Create a sealed product.
package catalog
