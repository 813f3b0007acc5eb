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

import "github.com/holiman/uint256"

// wordSize is the memory expansion granule: length is always a multiple
// of this many bytes.
const wordSize = 32

// Memory is the interpreter's byte-addressable scratch space. Its length
// only ever grows within a single execution, and reads past the current
// length are treated as zero rather than faulting.
type Memory struct {
	store []byte
}

func newMemory() *Memory { return &Memory{} }

// Len returns the current length of the backing store, always a multiple
// of wordSize.
func (m *Memory) Len() int { return len(m.store) }

// Resize grows the memory to cover size bytes, rounding up to the next
// word boundary. It never shrinks.
func (m *Memory) Resize(size uint64) {
	if uint64(len(m.store)) >= size {
		return
	}
	words := (size + wordSize - 1) / wordSize
	need := words * wordSize
	grown := make([]byte, need)
	copy(grown, m.store)
	m.store = grown
}

// GetPtr returns a view of size bytes starting at offset, expanding memory
// first if needed. size of zero returns nil.
func (m *Memory) GetPtr(offset, size uint64) []byte {
	if size == 0 {
		return nil
	}
	m.Resize(offset + size)
	return m.store[offset : offset+size]
}

// Set writes value into memory at offset, expanding memory first.
func (m *Memory) Set(offset uint64, value []byte) {
	if len(value) == 0 {
		return
	}
	m.Resize(offset + uint64(len(value)))
	copy(m.store[offset:], value)
}

// Set32 writes val as a 32-byte big-endian word at offset.
func (m *Memory) Set32(offset uint64, val *uint256.Int) {
	m.Resize(offset + wordSize)
	b := val.Bytes32()
	copy(m.store[offset:offset+wordSize], b[:])
}

// GetCopy returns a fresh copy of size bytes starting at offset, expanding
// memory first so that a read past the current length still returns zeros
// rather than faulting.
func (m *Memory) GetCopy(offset, size uint64) []byte {
	if size == 0 {
		return nil
	}
	m.Resize(offset + size)
	out := make([]byte, size)
	copy(out, m.store[offset:offset+size])
	return out
}
