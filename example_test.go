package seqrec_test

import (
	"bytes"
	"fmt"

	"code.hybscloud.com/seqrec"
)

func ExampleWriter() {
	var buf bytes.Buffer
	w := seqrec.NewWriter(&buf, seqrec.WithBigEndian())

	// One record of three index columns; the payload is row-major.
	i1 := []int32{1, 2}
	i2 := []int32{3, 4}
	i3 := []int32{5, 6}
	if err := w.WriteInt32Record(i1, i2, i3); err != nil {
		panic(err)
	}
	fmt.Printf("% x\n", buf.Bytes())
	// Output:
	// 00 00 00 18 00 00 00 01 00 00 00 03 00 00 00 05 00 00 00 02 00 00 00 04 00 00 00 06 00 00 00 18
}

func ExampleReader() {
	var buf bytes.Buffer
	w := seqrec.NewWriter(&buf, seqrec.WithLittleEndian())
	if err := w.WriteFloat64Record([]float64{0.25, -8}); err != nil {
		panic(err)
	}

	out := make([]float64, 2)
	r := seqrec.NewReader(&buf, seqrec.WithLittleEndian())
	if err := r.ReadFloat64Record(out); err != nil {
		panic(err)
	}
	fmt.Println(out)
	// Output:
	// [0.25 -8]
}
