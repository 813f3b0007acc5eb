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

package vm

import (
	"bytes"
	"testing"

	"github.com/holiman/uint256"
)

func TestMemoryWordAlignment(t *testing.T) {
	m := newMemory()
	m.Resize(1)
	if m.Len() != wordSize {
		t.Fatalf("len = %d, want %d", m.Len(), wordSize)
	}
	m.Resize(33)
	if m.Len() != 2*wordSize {
		t.Fatalf("len = %d, want %d", m.Len(), 2*wordSize)
	}
}

func TestMemoryNeverShrinks(t *testing.T) {
	m := newMemory()
	m.Resize(64)
	m.Resize(32)
	if m.Len() != 64 {
		t.Fatalf("len = %d, want 64", m.Len())
	}
}

func TestMemoryZeroExtendedRead(t *testing.T) {
	m := newMemory()
	out := m.GetCopy(0, 32)
	if !bytes.Equal(out, make([]byte, 32)) {
		t.Fatalf("expected all-zero read, got %x", out)
	}
	if m.Len() != 32 {
		t.Fatalf("read past length did not extend memory: len = %d", m.Len())
	}
}

func TestMemorySet32RoundTrip(t *testing.T) {
	m := newMemory()
	v := uint256.NewInt(0xdeadbeef)
	m.Set32(0, v)
	out := m.GetCopy(0, 32)
	got := new(uint256.Int).SetBytes(out)
	if !got.Eq(v) {
		t.Fatalf("got %v, want %v", got, v)
	}
}

func TestMemorySetPartialThenRead(t *testing.T) {
	m := newMemory()
	m.Set(0, []byte("hi"))
	out := m.GetCopy(0, 2)
	if string(out) != "hi" {
		t.Fatalf("got %q, want %q", out, "hi")
	}
}
