package store

import (
	"context"

	"github.com/axiskit/vecmath/vecn"
)

// Entry is one named vector held in the store.
type Entry struct {
	// Name is the logical identifier of the vector. It must be non-empty.
	Name string

	// Vector holds the components. Dimensions may vary between entries;
	// Nearest only ranks entries matching the query's dimension.
	Vector vecn.Vector[float32]
}

// Match is one result of a nearest-neighbour query.
type Match struct {
	Entry

	// Distance is the cosine distance (1 - cosine similarity) between the
	// query and the entry; smaller means more similar.
	Distance float32
}

// Store defines the vector persistence API. The implementation in this
// module uses SQLite for durable storage.
type Store interface {
	// Save inserts the vector under the given name, replacing any existing
	// vector with the same name.
	Save(ctx context.Context, name string, v vecn.Vector[float32]) error

	// Load returns the vector stored under the given name.
	Load(ctx context.Context, name string) (vecn.Vector[float32], error)

	// Names lists all stored vector names in insertion order.
	Names(ctx context.Context) ([]string, error)

	// Remove deletes the vector with the given name.
	Remove(ctx context.Context, name string) error

	// Nearest returns up to k stored vectors ranked by ascending cosine
	// distance from the query vector.
	Nearest(ctx context.Context, query vecn.Vector[float32], k int) ([]Match, error)
}
