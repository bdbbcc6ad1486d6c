// Package engine provides helpers for working with the modernc.org/sqlite
// driver in this module: opening connections and registering the vector
// scalar SQL functions (vec_magnitude, vec_dot, vec_cosine) over vector
// BLOBs. It intentionally keeps a thin surface so other packages can share
// the same driver instance.
package engine
