// SPDX-FileCopyrightText: (C) 2024 Intel Corporation
// SPDX-License-Identifier: Apache 2.0

//go:build !dbor_32bit

package dbor

import "math"

// DecodeNaturalToken64 decodes the natural token <p[0], ..., p[n-1]> with
// n = len(p) and returns its value plus offset, like
// [DecodeNaturalToken32] with n up to 8 and a uint64 result.
//
// Built with the dbor_32bit tag, the same function is computed with split
// 32 bit halves for hosts without fast 64 bit arithmetic; both variants
// accept exactly the same inputs and produce bit-identical results.
func DecodeNaturalToken64(p []byte, offset uint32) (uint64, bool) {
	n := len(p)
	if n < 1 || n > 8 {
		return 0, false
	}
	v := decodeUint64LE(p)
	d := oneInEveryByte64>>(8*(8-n)) + uint64(offset)
	if v > math.MaxUint64-d {
		return 0, false
	}
	return v + d, true
}
