// SPDX-FileCopyrightText: (C) 2024 Intel Corporation
// SPDX-License-Identifier: Apache 2.0

// dbordump lists the DBOR values in a file, or re-encodes them as CBOR.
//
//	dbordump encoded.dbor
//	dbordump --hex 'ff 0c fe'
//	dbordump --cbor encoded.dbor > encoded.cbor
package main

import (
	"encoding/hex"
	"fmt"
	"log/slog"
	"math"
	"os"
	"strings"

	flag "github.com/spf13/pflag"

	dbor "github.com/dlu-ch/go-dbor"
	"github.com/dlu-ch/go-dbor/transcode"
)

var (
	hexInput = flag.String("hex", "", "decode the given hex digits instead of reading a file")
	toCBOR   = flag.Bool("cbor", false, "write the values re-encoded as CBOR to stdout")
)

func main() {
	flag.Parse()
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	buffer, err := input()
	if err != nil {
		logger.Error("reading input", "error", err)
		os.Exit(2)
	}

	if *toCBOR {
		data, err := transcode.SequenceToCBOR(buffer)
		if err != nil {
			logger.Error("transcoding", "error", err)
			os.Exit(1)
		}
		if _, err := os.Stdout.Write(data); err != nil {
			logger.Error("writing output", "error", err)
			os.Exit(2)
		}
		return
	}

	results := dbor.NoCodes
	offset := 0
	for v := range dbor.NewValueSequence(buffer).Values() {
		text, rc := describe(v)
		fmt.Printf("%6d  % -12x %s\n", offset, v.Buffer(), text)
		results = results.With(rc)
		offset += v.Size()
	}

	if !results.IsOk() {
		logger.Info("dump finished", "results", results.String())
	}
	if !results.IsOkExcept(dbor.ApproxImprecise.Set().
		With(dbor.ApproxExtreme).With(dbor.NoObject)) {
		os.Exit(1)
	}
}

func input() ([]byte, error) {
	if *hexInput != "" {
		return hex.DecodeString(strings.Join(strings.Fields(*hexInput), ""))
	}
	if flag.NArg() != 1 {
		return nil, fmt.Errorf("expected exactly one file argument, got %d", flag.NArg())
	}
	return os.ReadFile(flag.Arg(0))
}

func describe(v dbor.Value) (string, dbor.ResultCode) {
	if !v.IsComplete() {
		return fmt.Sprintf("incomplete (%d bytes)", v.Size()), dbor.Incomplete
	}

	b := v.Buffer()[0]
	switch {
	case v.IsNone():
		return "none", dbor.NoObject

	case b == 0xFC:
		return "-0.0", dbor.Ok
	case b == 0xFD:
		return "-inf", dbor.Ok
	case b == 0xFE:
		return "inf", dbor.Ok

	case b < 0x20:
		u, rc := v.Uint64()
		return fmt.Sprintf("integer %d", u), rc
	case b < 0x40:
		i, rc := v.Int64()
		return fmt.Sprintf("integer %d", i), rc

	case b < 0x60:
		p, rc := v.Bytes()
		return fmt.Sprintf("bytes <%x>", p), rc
	case b < 0x80:
		s, rc := v.UTF8String(math.MaxInt)
		if _, _, _, checkRC := s.Check(); checkRC != dbor.Ok {
			return fmt.Sprintf("utf-8 (ill-formed) <%x>", s.Buffer()), checkRC
		}
		return fmt.Sprintf("utf-8 %q", s.Buffer()), rc

	case v.IsContainer():
		kind := "sequence"
		switch {
		case b >= 0xA0 && b < 0xC0:
			kind = "dictionary"
		case b >= 0xC0:
			kind = "allocated"
		}
		return fmt.Sprintf("%s (%d bytes total, contents not decoded)", kind, v.Size()), dbor.Ok

	case b >= 0xC8 && b < 0xD0:
		f, rc := v.Float64()
		return fmt.Sprintf("binary rational %g", f), rc
	case b < 0xF0:
		mant, exp10, rc := v.Decimal()
		return fmt.Sprintf("decimal rational %d * 10^%d", mant, exp10), rc
	}
	return "reserved", dbor.Incompatible
}
