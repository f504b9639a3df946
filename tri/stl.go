// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tri

import (
	"bufio"
	"fmt"
	"io"
)

// WriteSTL writes m to w as an ASCII STL solid.
//
// nx, ny, nz supply one outward normal per triangle; their lengths must match
// the triangle count. Vertex coordinates are resolved through the mesh's
// 1-based indices, which the caller has already bounds-validated.
func WriteSTL(w io.Writer, m *Mesh, nx, ny, nz []float64) error {
	if err := m.check(); err != nil {
		return err
	}
	nTri := m.NTri()
	if len(nx) != nTri || len(ny) != nTri || len(nz) != nTri {
		return ErrBadShape
	}
	bw := bufio.NewWriter(w)
	fmt.Fprint(bw, "solid\n")
	for i := 0; i < nTri; i++ {
		fmt.Fprintf(bw, "   facet normal   %5.2f %5.2f %5.2f\n", nx[i], ny[i], nz[i])
		fmt.Fprint(bw, "      outer loop\n")
		for _, idx := range [3]int32{m.I1[i], m.I2[i], m.I3[i]} {
			v := idx - 1
			fmt.Fprintf(bw, "         vertex   %5.2f %5.2f %5.2f\n", m.X[v], m.Y[v], m.Z[v])
		}
		fmt.Fprint(bw, "      endloop\n")
		fmt.Fprint(bw, "   endfacet\n")
	}
	fmt.Fprint(bw, "endsolid\n")
	return bw.Flush()
}
