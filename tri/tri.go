// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tri

import "errors"

var (
	// ErrBadShape reports mesh columns whose lengths disagree.
	ErrBadShape = errors.New("tri: column lengths differ")

	// ErrNoCompID reports a binary write attempted without component labels;
	// the binary layout carries a component record for every triangle.
	ErrNoCompID = errors.New("tri: component IDs required")
)

// Mesh holds one triangulated surface as parallel columns.
//
// X, Y, Z are node coordinates. I1, I2, I3 are 1-based vertex indices, one
// triple per triangle. CompID labels each triangle with a component; it may be
// nil for ASCII output without a component section. Q optionally carries one
// state row per node (e.g. Cp followed by flow state) for annotated ".triq"
// output; all rows must have equal width.
type Mesh struct {
	X, Y, Z []float64

	I1, I2, I3 []int32

	CompID []int32

	Q [][]float64
}

// NNode returns the node count.
func (m *Mesh) NNode() int { return len(m.X) }

// NTri returns the triangle count.
func (m *Mesh) NTri() int { return len(m.I1) }

// check validates column shapes; it performs no topology validation.
func (m *Mesh) check() error {
	if len(m.Y) != len(m.X) || len(m.Z) != len(m.X) {
		return ErrBadShape
	}
	if len(m.I2) != len(m.I1) || len(m.I3) != len(m.I1) {
		return ErrBadShape
	}
	if m.CompID != nil && len(m.CompID) != len(m.I1) {
		return ErrBadShape
	}
	if m.Q != nil {
		if len(m.Q) != len(m.X) {
			return ErrBadShape
		}
		for _, row := range m.Q {
			if len(row) != len(m.Q[0]) {
				return ErrBadShape
			}
		}
	}
	return nil
}
