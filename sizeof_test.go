// SPDX-FileCopyrightText: (C) 2024 Intel Corporation
// SPDX-License-Identifier: Apache 2.0

package dbor_test

import (
	"math"
	"testing"

	dbor "github.com/dlu-ch/go-dbor"
)

func TestSizeOfUint(t *testing.T) {
	for _, test := range []struct {
		value  uint64
		expect int
	}{
		{0, 1},
		{23, 1},
		{24, 2},
		{24 + 0xFF, 2},
		{24 + 0x100, 3},
		{24 + 0x100FF, 3},
		{24 + 0x10100, 4},
		{24 + 0x1010100, 5},
		{24 + 0x101010100, 6},
		{24 + 0x10101010100, 7},
		{24 + 0x1010101010100, 8},
		{24 + 0x101010101010100, 9},
		{math.MaxUint64, 9},
	} {
		if got := dbor.SizeOfUint(test.value); got != test.expect {
			t.Errorf("SizeOfUint(%#x); expected %d, got %d", test.value, test.expect, got)
		}
	}
}

func TestSizeOfUintMatchesEncoding(t *testing.T) {
	for _, value := range []uint64{
		0, 1, 23, 24, 0x117, 0x118, 0x10117, 0x10118, 0xFFFFFFFF,
		0x101010101010117, math.MaxUint64,
	} {
		expect := dbor.SizeOfUint(value)

		// values 0..23 are inlined in the first byte, larger ones take a
		// header byte plus a natural token of value - 23
		if value < 24 {
			if expect != 1 {
				t.Errorf("SizeOfUint(%d); expected 1, got %d", value, expect)
			}
			continue
		}
		buffer := make([]byte, 9)
		n := dbor.EncodeNaturalToken(value-24+1, buffer)
		if 1+n != expect {
			t.Errorf("SizeOfUint(%#x) is %d but the token takes 1+%d bytes",
				value, expect, n)
		}
	}
}

func TestSizeOfInt(t *testing.T) {
	for _, test := range []struct {
		value  int64
		expect int
	}{
		{0, 1},
		{23, 1},
		{24, 2},
		{-1, 1},
		{-24, 1},
		{-25, 2},
		{-24 - 0x100, 3},
		{math.MaxInt64, 9},
		{math.MinInt64, 9},
	} {
		if got := dbor.SizeOfInt(test.value); got != test.expect {
			t.Errorf("SizeOfInt(%d); expected %d, got %d", test.value, test.expect, got)
		}
	}
}

func TestSizeOfStrings(t *testing.T) {
	for _, test := range []struct {
		stringSize int
		expect     int
	}{
		{0, 1},
		{23, 1 + 23},
		{24, 2 + 24},
		{24 + 0xFF, 2 + 24 + 0xFF},
		{24 + 0x100, 3 + 24 + 0x100},
	} {
		if got := dbor.SizeOfByteString(test.stringSize); got != test.expect {
			t.Errorf("SizeOfByteString(%d); expected %d, got %d",
				test.stringSize, test.expect, got)
		}
		if got := dbor.SizeOfUTF8String(test.stringSize); got != test.expect {
			t.Errorf("SizeOfUTF8String(%d); expected %d, got %d",
				test.stringSize, test.expect, got)
		}
	}
}

func TestAddSizesSaturating(t *testing.T) {
	for _, test := range []struct {
		n, m   int
		expect int
	}{
		{0, 0, 0},
		{1, 2, 3},
		{math.MaxInt - 1, 1, math.MaxInt},
		{math.MaxInt, 1, math.MaxInt},
		{math.MaxInt, math.MaxInt, math.MaxInt},
	} {
		if got := dbor.AddSizesSaturating(test.n, test.m); got != test.expect {
			t.Errorf("AddSizesSaturating(%d, %d); expected %d, got %d",
				test.n, test.m, test.expect, got)
		}
	}
}
