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
	"testing"

	"github.com/holiman/uint256"
)

func TestStorageLoadDefaultsZero(t *testing.T) {
	s := newStorage()
	key := uint256.NewInt(1)
	v := s.Load(key)
	if !v.IsZero() {
		t.Fatalf("got %v, want 0", &v)
	}
}

func TestStorageStoreLoadRoundTrip(t *testing.T) {
	s := newStorage()
	key := uint256.NewInt(0xabc)
	val := uint256.NewInt(0xdeadbeef)
	s.Store(key, val)
	got := s.Load(key)
	if !got.Eq(val) {
		t.Fatalf("got %v, want %v", &got, val)
	}
}

// TestStorageRevertRestoresOriginal exercises spec's property 8: after
// store(k,v); revert(), load(k) returns the pre-epoch value.
func TestStorageRevertRestoresOriginal(t *testing.T) {
	s := newStorage()
	key := uint256.NewInt(1)
	s.Store(key, uint256.NewInt(10))
	s.Commit() // close the epoch so 10 becomes the new "original"

	s.Store(key, uint256.NewInt(20))
	s.Revert()

	got := s.Load(key)
	if got.Uint64() != 10 {
		t.Fatalf("got %v, want 10", &got)
	}
}

// TestStorageRevertRemovesZeroOriginal exercises the design note: when a
// touched slot's pre-epoch value was zero (i.e. never written before),
// revert removes the slot entirely rather than leaving an explicit zero.
func TestStorageRevertRemovesZeroOriginal(t *testing.T) {
	s := newStorage()
	key := uint256.NewInt(1)
	s.Store(key, uint256.NewInt(99))
	s.Revert()

	if _, ok := s.store[*key]; ok {
		t.Fatalf("expected slot to be removed after revert, found %v", s.store[*key])
	}
	got := s.Load(key)
	if !got.IsZero() {
		t.Fatalf("got %v, want 0", &got)
	}
}

func TestStorageCommitKeepsWrites(t *testing.T) {
	s := newStorage()
	key := uint256.NewInt(1)
	s.Store(key, uint256.NewInt(7))
	s.Commit()
	if len(s.original) != 0 || len(s.touched) != 0 {
		t.Fatalf("commit did not clear epoch bookkeeping")
	}
	got := s.Load(key)
	if got.Uint64() != 7 {
		t.Fatalf("got %v, want 7", &got)
	}
}
