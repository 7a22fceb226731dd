// Package store provides persistent storage for sweetshop using SQLite.
//
// # Architecture
//
// The package uses an interface-driven architecture with two interfaces:
//
//   - UserStore: Registered accounts, looked up by exact email during
//     authentication
//   - SweetStore: Catalog items with field-level CRUD
//
// SQLiteStore implements both interfaces in a single struct, allowing easy
// composition while maintaining clear interface boundaries.
//
// # Data Models
//
//   - User: Registered account. Passwords are stored only as bcrypt hashes,
//     produced by the caller; this package never sees plaintext secrets.
//   - Sweet: Catalog item with name, category, price and stock.
//
// Lookup misses are reported with the sentinel errors ErrUserNotFound and
// ErrSweetNotFound so callers can distinguish "missing" from real database
// failures. Duplicate registration is reported as ErrEmailExists.
package store
