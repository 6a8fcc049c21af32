// SPDX-FileCopyrightText: (C) 2024 Intel Corporation
// SPDX-License-Identifier: Apache 2.0

// Package transcode re-encodes decoded DBOR values as CBOR (RFC 8949).
//
// Each DBOR value maps onto the closest CBOR item: integers onto major
// type 0/1, binary rationals onto floats, decimal rationals onto tag 4
// decimal fractions, NoneValue onto null. Containers are delimited but
// their contents are not interpreted by the decoder, so they cannot be
// transcoded and yield [ErrContainer].
package transcode

import (
	"errors"
	"fmt"
	"math"

	"github.com/fxamacker/cbor/v2"

	dbor "github.com/dlu-ch/go-dbor"
)

// ErrContainer is returned for sequences, dictionaries and allocated
// values, whose contents the decoder does not interpret.
var ErrContainer = errors.New("container values are not interpreted")

// ErrNotRepresentable is returned when a value decodes only approximately
// into the widest target this package transcodes through.
var ErrNotRepresentable = errors.New("value is not exactly representable")

// encMode encodes floats at their shortest exact size, matching DBOR's
// length-minimising encodings.
var encMode = func() cbor.EncMode {
	em, err := cbor.EncOptions{
		ShortestFloat: cbor.ShortestFloat16,
		InfConvert:    cbor.InfConvertFloat16,
	}.EncMode()
	if err != nil {
		panic(err)
	}
	return em
}()

func item(v dbor.Value) (any, error) {
	if !v.IsComplete() {
		return nil, fmt.Errorf("incomplete value of %d bytes", v.Size())
	}

	b := v.Buffer()[0]
	switch {
	case v.IsNone():
		return nil, nil

	case b == 0xFC: // minus zero
		return math.Copysign(0, -1), nil
	case b == 0xFD:
		return math.Inf(-1), nil
	case b == 0xFE:
		return math.Inf(1), nil

	case b < 0x20:
		u, rc := v.Uint64()
		if rc != dbor.Ok {
			return nil, fmt.Errorf("integer: %w", ErrNotRepresentable)
		}
		return u, nil
	case b < 0x40:
		i, rc := v.Int64()
		if rc != dbor.Ok {
			return nil, fmt.Errorf("integer: %w", ErrNotRepresentable)
		}
		return i, nil

	case b >= 0xC8 && b < 0xD0:
		f, rc := v.Float64()
		switch rc {
		case dbor.Ok:
			return f, nil
		case dbor.Illformed:
			return nil, errors.New("ill-formed binary rational")
		}
		return nil, fmt.Errorf("binary rational: %w", ErrNotRepresentable)

	case b >= 0xD0 && b < 0xF0:
		mant, exp10, rc := v.Decimal()
		switch rc {
		case dbor.Ok:
			return cbor.Tag{Number: 4, Content: []int64{int64(exp10), int64(mant)}}, nil
		case dbor.Illformed:
			return nil, errors.New("ill-formed decimal rational")
		}
		return nil, fmt.Errorf("decimal rational: %w", ErrNotRepresentable)

	case b < 0x60:
		p, _ := v.Bytes()
		return p, nil
	case b < 0x80:
		s, _ := v.UTF8String(math.MaxInt)
		if _, _, _, rc := s.Check(); rc != dbor.Ok {
			return nil, errors.New("ill-formed UTF-8 string")
		}
		return string(s.Buffer()), nil

	case v.IsContainer():
		return nil, ErrContainer
	}
	return nil, fmt.Errorf("reserved first byte %#02x", b)
}

// ToCBOR encodes the single value v as a CBOR item.
func ToCBOR(v dbor.Value) ([]byte, error) {
	decoded, err := item(v)
	if err != nil {
		return nil, err
	}
	return encMode.Marshal(decoded)
}

// SequenceToCBOR encodes every value in buffer as a CBOR item, in order,
// and returns the concatenation. It stops at the first value that cannot
// be transcoded.
func SequenceToCBOR(buffer []byte) ([]byte, error) {
	var out []byte
	i := 0
	for v := range dbor.NewValueSequence(buffer).Values() {
		data, err := ToCBOR(v)
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", i, err)
		}
		out = append(out, data...)
		i++
	}
	return out, nil
}
