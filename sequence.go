// SPDX-FileCopyrightText: (C) 2024 Intel Corporation
// SPDX-License-Identifier: Apache 2.0

package dbor

import "iter"

// ValueSequence is a view of zero or more concatenated values in a byte
// buffer, supporting forward iteration:
//
//	seq := dbor.NewValueSequence(buffer)
//	for v := range seq.Values() {
//		// ...
//	}
//
// or, with explicit iterator state:
//
//	for it := seq.Begin(); !it.AtEnd(); it.Next() {
//		v := it.Front()
//		// ...
//	}
//
// The last element of a truncated or ill-formed sequence is visited as an
// incomplete [Value] covering the remaining bytes, never dropped.
type ValueSequence struct {
	buffer []byte
}

// NewValueSequence returns the view of the values concatenated in buffer.
func NewValueSequence(buffer []byte) ValueSequence {
	return ValueSequence{buffer: buffer}
}

// Buffer returns the viewed bytes.
func (s ValueSequence) Buffer() []byte { return s.buffer }

// Capacity returns the size of the viewed bytes.
func (s ValueSequence) Capacity() int { return len(s.buffer) }

// Empty reports whether the sequence contains no value.
func (s ValueSequence) Empty() bool { return len(s.buffer) == 0 }

// Begin returns an iterator on the first value of the sequence, at end
// for an empty sequence.
func (s ValueSequence) Begin() Iterator {
	it := Iterator{front: NewValue(s.buffer)}
	if len(it.front.data) > 0 {
		it.remaining = len(s.buffer) - it.front.Size()
	}
	return it
}

// Values returns the values of the sequence in order, front to back.
func (s ValueSequence) Values() iter.Seq[Value] {
	return func(yield func(Value) bool) {
		for it := s.Begin(); !it.AtEnd(); it.Next() {
			if !yield(it.Front()) {
				return
			}
		}
	}
}

// Iterator is a forward iterator over a [ValueSequence]. The zero
// Iterator is at end.
type Iterator struct {
	front     Value
	remaining int // remaining size after front
}

// Front returns the value the iterator is on, the zero [Value] at end.
func (it Iterator) Front() Value { return it.front }

// RemainingSize returns the number of bytes after the front value.
func (it Iterator) RemainingSize() int { return it.remaining }

// AtEnd reports whether the iterator is past the last value.
func (it Iterator) AtEnd() bool { return len(it.front.data) == 0 }

// Next advances the iterator to the next value, to the end state if the
// front value was the last.
func (it *Iterator) Next() {
	if it.remaining > 0 {
		size := len(it.front.data)
		it.front = NewValue(it.front.data[size : size+it.remaining])
		it.remaining -= it.front.Size()
	} else {
		it.front = Value{}
	}
}

// Equal reports whether both iterators are on the value at the same
// buffer position. All iterators at end are equal, regardless of their
// sequence.
func (it Iterator) Equal(other Iterator) bool {
	if it.AtEnd() || other.AtEnd() {
		return it.AtEnd() == other.AtEnd()
	}
	return &it.front.data[0] == &other.front.data[0]
}
