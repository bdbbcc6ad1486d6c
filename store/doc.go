// Package store persists named vectors in SQLite. It includes:
//   - Entry model and Store interface
//   - SQLiteStore: durable storage keyed by vector name
//   - Schema helper to create the vectors table
//   - Vector BLOB encoding and cosine nearest-neighbour ranking
package store
