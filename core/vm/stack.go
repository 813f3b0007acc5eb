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

// maxStackDepth is the maximum number of words the stack may hold.
const maxStackDepth = 1024

// Stack is the interpreter's 256-bit operand stack, top-indexed: depth 0 is
// the top of the stack. The underlying slice is stored bottom-first, so
// depth d addresses data[len(data)-1-d].
type Stack struct {
	data []uint256.Int
}

// newStack returns an empty stack.
func newStack() *Stack {
	return &Stack{data: make([]uint256.Int, 0, 16)}
}

// Len reports the number of words currently on the stack.
func (st *Stack) Len() int { return len(st.data) }

// Push places v on top of the stack, faulting with ErrStackOverflow once
// the stack already holds maxStackDepth words.
func (st *Stack) Push(v *uint256.Int) error {
	if len(st.data) >= maxStackDepth {
		return ErrStackOverflow
	}
	st.data = append(st.data, *v)
	return nil
}

// Pop removes and returns the word at depth, the default (0) being the top.
func (st *Stack) Pop(depth int) (uint256.Int, error) {
	idx, err := st.index(depth)
	if err != nil {
		return uint256.Int{}, err
	}
	v := st.data[idx]
	st.data = append(st.data[:idx], st.data[idx+1:]...)
	return v, nil
}

// Peek returns the word at depth without removing it.
func (st *Stack) Peek(depth int) (*uint256.Int, error) {
	idx, err := st.index(depth)
	if err != nil {
		return nil, err
	}
	return &st.data[idx], nil
}

// Set overwrites the word at depth with v.
func (st *Stack) Set(depth int, v *uint256.Int) error {
	idx, err := st.index(depth)
	if err != nil {
		return err
	}
	st.data[idx] = *v
	return nil
}

// Swap exchanges the top of the stack with the word at depth.
func (st *Stack) Swap(depth int) error {
	if depth >= len(st.data) {
		return ErrStackUnderflow
	}
	top := len(st.data) - 1
	other := top - depth
	st.data[top], st.data[other] = st.data[other], st.data[top]
	return nil
}

// Dup pushes a copy of the word at depth.
func (st *Stack) Dup(depth int) error {
	v, err := st.Peek(depth)
	if err != nil {
		return err
	}
	cpy := *v
	return st.Push(&cpy)
}

// index translates a top-relative depth into an index into data, faulting
// with ErrStackUnderflow when depth reaches or exceeds the stack length.
func (st *Stack) index(depth int) (int, error) {
	if depth < 0 || depth >= len(st.data) {
		return 0, ErrStackUnderflow
	}
	return len(st.data) - 1 - depth, nil
}
