// Copyright 2015 The go-ethereum Authors
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

import "errors"

// Faults a Step/Run can terminate with. ErrOutOfGas is the expected
// operational outcome; the rest indicate bugs or corrupted input.
// ErrExecutionReverted and ErrInsufficientFunds are not returned by Step or
// Run: REVERT is reported through Result.Reverted, and the interpreter
// performs no balance transfers.
var (
	ErrOutOfGas         = errors.New("out of gas")
	ErrInvalidOpcode    = errors.New("invalid opcode")
	ErrStackOverflow    = errors.New("stack overflow")
	ErrStackUnderflow   = errors.New("stack underflow")
	ErrRangeError       = errors.New("value out of 256-bit range")
	ErrBadJump          = errors.New("invalid jump destination")
	ErrBadMemoryArg     = errors.New("invalid memory offset or size")
	ErrInsufficientFunds = errors.New("insufficient funds for transfer")
	ErrExecutionReverted = errors.New("execution reverted")
)
