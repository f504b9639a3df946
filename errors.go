// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seqrec

import "errors"

var (
	// ErrInvalidArgument reports a nil sink or an unsupported column count.
	ErrInvalidArgument = errors.New("seqrec: invalid argument")

	// ErrColumnMismatch reports columns of unequal length passed to one record.
	ErrColumnMismatch = errors.New("seqrec: column lengths differ")

	// ErrTooLong reports a payload whose byte count exceeds a signed 32-bit
	// record marker.
	ErrTooLong = errors.New("seqrec: record too long")

	// ErrRecordLength reports a record whose length marker disagrees with the
	// shape the caller asked to read.
	ErrRecordLength = errors.New("seqrec: record length mismatch")

	// ErrRecordMarker reports a trailing record marker that does not equal the
	// leading one; the record is corrupt.
	ErrRecordMarker = errors.New("seqrec: record marker mismatch")
)
