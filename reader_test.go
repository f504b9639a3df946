package seqrec_test

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"code.hybscloud.com/seqrec"
)

func TestRead_LengthMarkerDisagreesWithShape(t *testing.T) {
	var raw bytes.Buffer
	if err := seqrec.NewWriter(&raw, seqrec.WithBigEndian()).WriteInt32Record(make([]int32, 4)); err != nil {
		t.Fatal(err)
	}
	r := seqrec.NewReader(&raw, seqrec.WithBigEndian())
	if err := r.ReadInt32Record(make([]int32, 5)); !errors.Is(err, seqrec.ErrRecordLength) {
		t.Fatalf("err=%v want ErrRecordLength", err)
	}
}

func TestRead_CorruptTrailingMarker(t *testing.T) {
	var raw bytes.Buffer
	if err := seqrec.NewWriter(&raw, seqrec.WithBigEndian()).WriteInt32Record([]int32{1, 2}); err != nil {
		t.Fatal(err)
	}
	b := raw.Bytes()
	b[len(b)-1] ^= 0xFF

	r := seqrec.NewReader(bytes.NewReader(b), seqrec.WithBigEndian())
	if err := r.ReadInt32Record(make([]int32, 2)); !errors.Is(err, seqrec.ErrRecordMarker) {
		t.Fatalf("err=%v want ErrRecordMarker", err)
	}
}

func TestRead_TruncatedPayload(t *testing.T) {
	var raw bytes.Buffer
	if err := seqrec.NewWriter(&raw, seqrec.WithLittleEndian()).WriteFloat64Record(make([]float64, 3)); err != nil {
		t.Fatal(err)
	}
	// Drop the trailing marker and part of the payload: an interrupted write.
	b := raw.Bytes()[:raw.Len()-10]

	r := seqrec.NewReader(bytes.NewReader(b), seqrec.WithLittleEndian())
	if err := r.ReadFloat64Record(make([]float64, 3)); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("err=%v want io.ErrUnexpectedEOF", err)
	}
}

func TestRead_TruncatedBeforeTrailingMarker(t *testing.T) {
	var raw bytes.Buffer
	if err := seqrec.NewWriter(&raw, seqrec.WithLittleEndian()).WriteInt32Record([]int32{7}); err != nil {
		t.Fatal(err)
	}
	b := raw.Bytes()[:8] // leading marker + payload, no suffix

	r := seqrec.NewReader(bytes.NewReader(b), seqrec.WithLittleEndian())
	if err := r.ReadInt32Record(make([]int32, 1)); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("err=%v want io.ErrUnexpectedEOF", err)
	}
}

func TestRead_CleanEOFAtRecordBoundary(t *testing.T) {
	var raw bytes.Buffer
	w := seqrec.NewWriter(&raw, seqrec.WithBigEndian())
	if err := w.WriteInt32Record([]int32{1}); err != nil {
		t.Fatal(err)
	}

	r := seqrec.NewReader(&raw, seqrec.WithBigEndian())
	if err := r.ReadInt32Record(make([]int32, 1)); err != nil {
		t.Fatalf("first record: %v", err)
	}
	if err := r.ReadInt32Record(make([]int32, 1)); !errors.Is(err, io.EOF) {
		t.Fatalf("err=%v want io.EOF at boundary", err)
	}
}

func TestRead_MidMarkerEOF(t *testing.T) {
	r := seqrec.NewReader(bytes.NewReader([]byte{0x00, 0x00}), seqrec.WithBigEndian())
	if err := r.ReadInt32Record(make([]int32, 1)); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("err=%v want io.ErrUnexpectedEOF", err)
	}
}

func TestRead_ChunkedSourceDeliversWholeRecord(t *testing.T) {
	// One byte per Read call; the reader must reassemble markers and payload.
	var raw bytes.Buffer
	if err := seqrec.NewWriter(&raw, seqrec.WithBigEndian()).WriteFloat32Record([]float32{1.5}, []float32{-2.5}); err != nil {
		t.Fatal(err)
	}
	r := seqrec.NewReader(iotest(raw.Bytes()), seqrec.WithBigEndian())
	a, b := make([]float32, 1), make([]float32, 1)
	if err := r.ReadFloat32Record(a, b); err != nil {
		t.Fatalf("read: %v", err)
	}
	if a[0] != 1.5 || b[0] != -2.5 {
		t.Fatalf("got (%v, %v)", a[0], b[0])
	}
}

func iotest(b []byte) io.Reader { return &oneByteReader{rest: b} }

type oneByteReader struct{ rest []byte }

func (r *oneByteReader) Read(p []byte) (int, error) {
	if len(r.rest) == 0 {
		return 0, io.EOF
	}
	if len(p) == 0 {
		return 0, nil
	}
	p[0] = r.rest[0]
	r.rest = r.rest[1:]
	return 1, nil
}
