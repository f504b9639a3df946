// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package tri assembles Cart3D-style triangulated-surface files from
// caller-validated column arrays.
//
// A surface is a Mesh of parallel columns: x/y/z node coordinates, 1-based
// vertex-index triples, and optional per-triangle component labels and
// per-node state. Writers compose the columns into ASCII ".tri"/".triq"
// files, ASCII STL, or binary ".tri" files built from unformatted sequential
// records (package seqrec) in one of four interchange formats.
//
// The package checks only column shapes. Mesh topology, triangle orientation,
// and index bounds are the caller's contract; the sink is likewise opened and
// closed by the caller.
package tri
