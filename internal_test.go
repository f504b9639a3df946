package seqrec

import (
	"bytes"
	"errors"
	"testing"
)

func TestRecordSizeValidation(t *testing.T) {
	if _, _, err := recordSize(4); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("zero columns: %v", err)
	}
	if _, _, err := recordSize(4, 1, 1, 1, 1); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("four columns: %v", err)
	}
	if _, _, err := recordSize(8, 3, 4, 3); !errors.Is(err, ErrColumnMismatch) {
		t.Fatalf("mismatch: %v", err)
	}
	rows, payload, err := recordSize(8, 5, 5, 5)
	if err != nil || rows != 5 || payload != 5*3*8 {
		t.Fatalf("rows=%d payload=%d err=%v", rows, payload, err)
	}
}

func TestRecordSizeMarkerOverflow(t *testing.T) {
	// A payload over 2^31-1 bytes cannot be represented by the 4-byte marker.
	if _, _, err := recordSize(8, 1<<28, 1<<28); !errors.Is(err, ErrTooLong) {
		t.Fatalf("want ErrTooLong, got %v", err)
	}
	// Largest representable shape passes validation.
	if _, _, err := recordSize(4, 1<<29-1); err != nil {
		t.Fatalf("boundary shape rejected: %v", err)
	}
}

func TestScratchIsReusedAcrossRecords(t *testing.T) {
	var raw bytes.Buffer
	st := newStream(nil, &raw)
	first := st.scratch()
	second := st.scratch()
	if &first[0] != &second[0] {
		t.Fatal("scratch buffer reallocated")
	}
	if len(first)%8 != 0 {
		t.Fatalf("scratch length %d not a multiple of 8", len(first))
	}
}

func TestSwappedDecidedPerStream(t *testing.T) {
	var raw bytes.Buffer
	native := newStream(nil, &raw, WithNativeByteOrder())
	if native.swapped() {
		t.Fatal("native-order stream reports swapping")
	}
}
