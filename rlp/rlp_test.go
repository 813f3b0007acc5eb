// Copyright 2014 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

package rlp

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/holiman/uint256"
)

func TestEncodeSingleByte(t *testing.T) {
	enc, err := EncodeToBytes(byte(0x01))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(enc, []byte{0x01}) {
		t.Fatalf("got %x, want 01", enc)
	}
}

func TestEncodeShortString(t *testing.T) {
	enc, err := EncodeToBytes("dog")
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{0x83, 'd', 'o', 'g'}
	if !bytes.Equal(enc, want) {
		t.Fatalf("got %x, want %x", enc, want)
	}
}

func TestEncodeLongString(t *testing.T) {
	s := bytes.Repeat([]byte("a"), 56)
	enc, err := EncodeToBytes(s)
	if err != nil {
		t.Fatal(err)
	}
	if enc[0] != 0xb8 || enc[1] != 56 {
		t.Fatalf("got prefix %x, want b8 38", enc[:2])
	}
}

func TestEncodeZeroIntAsEmptyString(t *testing.T) {
	enc, err := EncodeToBytes(uint(0))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(enc, []byte{0x80}) {
		t.Fatalf("got %x, want 80", enc)
	}
}

func TestDecodeBytesRoundTrip(t *testing.T) {
	cases := [][]byte{
		{},
		{0x01},
		[]byte("dog"),
		bytes.Repeat([]byte("x"), 100),
	}
	for _, c := range cases {
		enc, err := EncodeToBytes(c)
		if err != nil {
			t.Fatal(err)
		}
		var out []byte
		if err := DecodeBytes(enc, &out); err != nil {
			t.Fatalf("decode %x: %v", c, err)
		}
		if !bytes.Equal(out, c) {
			t.Fatalf("got %x, want %x", out, c)
		}
	}
}

func TestListRoundTrip(t *testing.T) {
	in := [][]byte{[]byte("cat"), []byte("dog")}
	enc, err := EncodeToBytes(in)
	if err != nil {
		t.Fatal(err)
	}
	var out [][]byte
	if err := DecodeBytes(enc, &out); err != nil {
		t.Fatal(err)
	}
	if len(out) != 2 || string(out[0]) != "cat" || string(out[1]) != "dog" {
		t.Fatalf("got %v", out)
	}
}

// TestBigIntRoundTrip guards against the reflect.Kind dispatch-order
// bug: *big.Int must encode as a byte string, never as a struct.
func TestBigIntRoundTrip(t *testing.T) {
	cases := []*big.Int{
		big.NewInt(0),
		big.NewInt(1),
		big.NewInt(1000000),
		new(big.Int).Lsh(big.NewInt(1), 200),
	}
	for _, c := range cases {
		enc, err := EncodeToBytes(c)
		if err != nil {
			t.Fatal(err)
		}
		var out big.Int
		if err := DecodeBytes(enc, &out); err != nil {
			t.Fatalf("decode %v: %v", c, err)
		}
		if out.Cmp(c) != 0 {
			t.Fatalf("got %v, want %v\nencoding: %s", &out, c, spew.Sdump(enc))
		}
	}
}

func TestUint256RoundTrip(t *testing.T) {
	cases := []*uint256.Int{
		new(uint256.Int),
		uint256.NewInt(1),
		uint256.NewInt(0xdeadbeef),
	}
	for _, c := range cases {
		enc, err := EncodeToBytes(c)
		if err != nil {
			t.Fatal(err)
		}
		var out uint256.Int
		if err := DecodeBytes(enc, &out); err != nil {
			t.Fatalf("decode %v: %v", c, err)
		}
		if !out.Eq(c) {
			t.Fatalf("got %v, want %v", &out, c)
		}
	}
}
