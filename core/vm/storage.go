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

// Storage is the per-execution transient key/value space SLOAD/SSTORE
// operate on: a slot map, the pre-image of each slot at the moment of its
// first write within the current journal epoch, and the set of slots
// touched since the epoch began.
type Storage struct {
	store    map[uint256.Int]uint256.Int
	original map[uint256.Int]uint256.Int
	touched  map[uint256.Int]struct{}
}

func newStorage() *Storage {
	return &Storage{
		store:    make(map[uint256.Int]uint256.Int),
		original: make(map[uint256.Int]uint256.Int),
		touched:  make(map[uint256.Int]struct{}),
	}
}

// Load returns the value held at key, defaulting to zero.
func (s *Storage) Load(key *uint256.Int) uint256.Int {
	return s.store[*key]
}

// Store records the pre-image of key on its first write this epoch, then
// writes value.
func (s *Storage) Store(key, value *uint256.Int) {
	if _, ok := s.original[*key]; !ok {
		s.original[*key] = s.store[*key]
	}
	s.touched[*key] = struct{}{}
	s.store[*key] = *value
}

// Revert restores every touched slot to its recorded pre-image (removing
// the slot entirely when that pre-image was zero), then clears the epoch.
func (s *Storage) Revert() {
	for key := range s.touched {
		orig := s.original[key]
		if orig.IsZero() {
			delete(s.store, key)
		} else {
			s.store[key] = orig
		}
	}
	s.original = make(map[uint256.Int]uint256.Int)
	s.touched = make(map[uint256.Int]struct{})
}

// Commit clears the epoch's bookkeeping without undoing any writes.
func (s *Storage) Commit() {
	s.original = make(map[uint256.Int]uint256.Int)
	s.touched = make(map[uint256.Int]struct{})
}
