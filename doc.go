// SPDX-FileCopyrightText: (C) 2024 Intel Corporation
// SPDX-License-Identifier: Apache 2.0

/*
Package dbor implements a decoder for DBOR (Dense Binary Object
Representation), a self-describing binary format for numbers, strings and
containers.

The package is written for freestanding use: every operation works on a
caller-supplied byte slice, allocates nothing, performs no I/O, and reports
every outcome - including ill-formed or truncated input - as a [ResultCode]
value instead of an error or panic. All operations are reentrant and may be
called from an interrupt or signal handler as long as the underlying buffer
does not change.

Not supported:

  - Encoding of full DBOR values (only the natural-number token encoder and
    the size helpers are provided)
  - Interpretation of container contents (sequences and dictionaries are
    delimited, not recursed over)
  - Resolution of AllocatedValue indirection
  - Rounding modes other than round toward zero

# Decoding

A [Value] borrows the first value in a buffer and determines its size from
the leading byte or two:

	buffer := []byte{
		0xC8, 0x00, // BinaryRationalValue representing 0.125
		0x07,       // IntegerValue(7)
	}
	v := dbor.NewValue(buffer)
	// v.Size() is 2, v.IsComplete() is true

	f, rc := v.Float64()
	// f is 0.125, rc is dbor.Ok

Each typed extractor returns the most informative single result code for
its target type. On any outcome other than [Ok], [ApproxImprecise] and
[ApproxExtreme] the returned value is a deterministic default (0, NaN,
empty view), so extractions can be chained
and their codes folded into a [ResultCodeSet]:

	it := dbor.NewValueSequence(buffer).Begin()
	a, rcA := it.Front().Float64()
	it.Next()
	b, rcB := it.Front().Uint8()

	results := rcA.Set().With(rcB)
	if results.IsOk() {
		// use a, b
	}

# Sequences

[ValueSequence] iterates over concatenated values. A truncated or
ill-formed last element is exposed as an incomplete [Value] covering the
remaining bytes, never dropped:

	for v := range dbor.NewValueSequence(buffer).Values() {
		// ...
	}

# Strings

[String] is a non-owning view of a potentially UTF-8 encoded byte range.
Construction never validates; [String.Check] scans for well-formedness
(shortest-form UTF-8 per Unicode 13.0) and reports code-point count and
range.
*/
package dbor
