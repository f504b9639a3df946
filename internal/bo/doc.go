// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package bo provides native byte order selection and raw byte-swap primitives.
//
// Native byte order is resolved per architecture via build tags where commonly
// known, with a portable runtime probe elsewhere. Swap32 and Swap64 reverse the
// byte order of fixed-size quantities as pure bit permutations; they never pass
// a value through floating-point arithmetic, so NaN payload bits survive intact.
package bo
