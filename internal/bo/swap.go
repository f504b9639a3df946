// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bo

import "math/bits"

// Swap32 reverses the byte order of a 4-byte quantity.
//
// The operand is a raw bit pattern: integers and IEEE-754 singles swap
// identically. Applying Swap32 twice yields the original value.
func Swap32(u uint32) uint32 { return bits.ReverseBytes32(u) }

// Swap64 reverses the byte order of an 8-byte quantity.
func Swap64(u uint64) uint64 { return bits.ReverseBytes64(u) }
