// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tri

import (
	"bufio"
	"fmt"
	"io"
)

// WriteASCII writes m to w as an ASCII ".tri" file.
//
// Layout: a "%12d%12d" node/triangle count header, one "%+15.8E" coordinate
// triple per node, one index triple per triangle, then one component ID per
// line when CompID is populated.
func WriteASCII(w io.Writer, m *Mesh) error {
	if err := m.check(); err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%12d%12d\n", m.NNode(), m.NTri())
	writeNodes(bw, m)
	writeTris(bw, m)
	writeCompIDs(bw, m)
	// bufio latches the first sink error; Flush surfaces it.
	return bw.Flush()
}

// WriteASCIIQ writes m to w as an annotated ASCII ".triq" file.
//
// The header gains the state width, and one row of "%.6f" state values per
// node follows the component section.
func WriteASCIIQ(w io.Writer, m *Mesh) error {
	if err := m.check(); err != nil {
		return err
	}
	nq := 0
	if len(m.Q) > 0 {
		nq = len(m.Q[0])
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%12d%12d%4d\n", m.NNode(), m.NTri(), nq)
	writeNodes(bw, m)
	writeTris(bw, m)
	writeCompIDs(bw, m)
	for _, row := range m.Q {
		for j, q := range row {
			if j > 0 {
				fmt.Fprint(bw, " ")
			}
			fmt.Fprintf(bw, "%.6f", q)
		}
		fmt.Fprint(bw, "\n")
	}
	return bw.Flush()
}

func writeNodes(bw *bufio.Writer, m *Mesh) {
	for i := range m.X {
		fmt.Fprintf(bw, "%+15.8E %+15.8E %+15.8E\n", m.X[i], m.Y[i], m.Z[i])
	}
}

func writeTris(bw *bufio.Writer, m *Mesh) {
	for i := range m.I1 {
		fmt.Fprintf(bw, "%d %d %d\n", m.I1[i], m.I2[i], m.I3[i])
	}
}

func writeCompIDs(bw *bufio.Writer, m *Mesh) {
	for _, c := range m.CompID {
		fmt.Fprintf(bw, "%d\n", c)
	}
}
