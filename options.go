// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seqrec

import (
	"encoding/binary"
	"time"

	"code.hybscloud.com/seqrec/internal/bo"
)

// Options configures record byte order and the would-block retry policy.
type Options struct {
	// ByteOrder is the target order for record markers and elements.
	ByteOrder binary.ByteOrder

	// RetryDelay controls how ErrWouldBlock from the underlying sink is handled:
	//   - negative: nonblock, return ErrWouldBlock immediately
	//   - zero: yield (runtime.Gosched) and retry
	//   - positive: sleep for the duration and retry
	RetryDelay time.Duration
}

var defaultOptions = Options{
	ByteOrder:  binary.BigEndian,
	RetryDelay: -1, // default: nonblock
}

type Option func(*Options)

func WithByteOrder(order binary.ByteOrder) Option {
	return func(o *Options) { o.ByteOrder = order }
}

// WithBigEndian selects big-endian records, the default and the usual choice
// for solver interchange files.
func WithBigEndian() Option {
	return func(o *Options) { o.ByteOrder = binary.BigEndian }
}

func WithLittleEndian() Option {
	return func(o *Options) { o.ByteOrder = binary.LittleEndian }
}

// WithNativeByteOrder selects the host machine's own order; element bytes are
// then streamed without conversion.
func WithNativeByteOrder() Option {
	return func(o *Options) { o.ByteOrder = bo.Native() }
}

// WithRetryDelay sets the retry/wait policy used when the underlying sink
// returns ErrWouldBlock.
func WithRetryDelay(d time.Duration) Option {
	return func(o *Options) { o.RetryDelay = d }
}

// WithBlock enables cooperative blocking (yield-and-retry) on ErrWouldBlock.
func WithBlock() Option {
	return func(o *Options) { o.RetryDelay = 0 }
}

// WithNonblock forces non-blocking behavior (return ErrWouldBlock immediately).
func WithNonblock() Option {
	return func(o *Options) { o.RetryDelay = -1 }
}
