// Package layout embeds graph nodes into low-dimensional coordinates for
// drawing, using classical (Torgerson) multidimensional scaling on the
// dissimilarity matrix 1 − C.
//
// The produced coordinates are presentational: they feed the viz package's
// graph figures and carry no guarantees beyond approximate preservation of
// the dissimilarity structure.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/srgw/layout"
//
//	coords, err := layout.Embed(C, 2) // n×2, one row per node
package layout
