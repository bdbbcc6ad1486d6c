package store

import "github.com/viant/vec/search"

// cosineDistance returns the cosine distance (1 - cosine similarity)
// between two same-dimension float32 vectors. It uses the portable
// search.Float32s entry point; the magnitude-reusing variant is only
// exported under the arm64 build tag at the pinned viant/vec version.
func cosineDistance(a, b []float32) float32 {
	return search.Float32s(a).CosineDistance(b)
}

// magnitude returns the Euclidean norm of v.
func magnitude(v []float32) float32 {
	return search.Float32s(v).Magnitude()
}
