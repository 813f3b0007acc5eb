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

func TestStackPushPop(t *testing.T) {
	s := newStack()
	if err := s.Push(uint256.NewInt(42)); err != nil {
		t.Fatal(err)
	}
	if s.Len() != 1 {
		t.Fatalf("len = %d, want 1", s.Len())
	}
	v, err := s.Pop(0)
	if err != nil {
		t.Fatal(err)
	}
	if v.Uint64() != 42 {
		t.Fatalf("got %v, want 42", &v)
	}
	if s.Len() != 0 {
		t.Fatalf("len = %d, want 0", s.Len())
	}
}

func TestStackOverflow(t *testing.T) {
	s := newStack()
	for i := 0; i < maxStackDepth; i++ {
		if err := s.Push(uint256.NewInt(uint64(i))); err != nil {
			t.Fatalf("unexpected error at %d: %v", i, err)
		}
	}
	if err := s.Push(uint256.NewInt(1)); err != ErrStackOverflow {
		t.Fatalf("got %v, want ErrStackOverflow", err)
	}
}

func TestStackUnderflow(t *testing.T) {
	s := newStack()
	if _, err := s.Pop(0); err != ErrStackUnderflow {
		t.Fatalf("got %v, want ErrStackUnderflow", err)
	}
	if err := s.Push(uint256.NewInt(1)); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Peek(1); err != ErrStackUnderflow {
		t.Fatalf("got %v, want ErrStackUnderflow", err)
	}
}

func TestStackDup(t *testing.T) {
	s := newStack()
	s.Push(uint256.NewInt(1))
	s.Push(uint256.NewInt(2))
	if err := s.Dup(1); err != nil { // DUP2: copy stack[n-1] = depth 1 = value 1
		t.Fatal(err)
	}
	top, _ := s.Peek(0)
	if top.Uint64() != 1 {
		t.Fatalf("after DUP2 top = %v, want 1", top)
	}
	if s.Len() != 3 {
		t.Fatalf("len = %d, want 3", s.Len())
	}
}

func TestStackSwap(t *testing.T) {
	s := newStack()
	s.Push(uint256.NewInt(1))
	s.Push(uint256.NewInt(2))
	s.Push(uint256.NewInt(3))
	if err := s.Swap(2); err != nil { // SWAP2: exchange top with depth 2
		t.Fatal(err)
	}
	top, _ := s.Peek(0)
	bottom, _ := s.Peek(2)
	if top.Uint64() != 1 || bottom.Uint64() != 3 {
		t.Fatalf("after SWAP2: top=%v bottom=%v, want 1/3", top, bottom)
	}
}
