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

// Package vm implements the stack-based 256-bit interpreter: opcode
// dispatch, arithmetic, gas accounting, and the stack/memory/storage it
// operates over.
package vm

import (
	"github.com/coreumchain/coreum/common"
)

// Tracer is invoked before dispatch of each opcode, if set.
type Tracer func(in *Interpreter, op OpCode)

// LogEntry is one LOGn event emitted during a run.
type LogEntry struct {
	Address common.Address
	Topics  []common.Hash
	Data    []byte
}

// Result is the outcome of a Run that halted normally or by REVERT, carrying
// return data. A fault is reported through Run's error instead.
type Result struct {
	ReturnData []byte
	GasLeft    int64
	Reverted   bool
	Logs       []LogEntry
}

// haltSignal, when returned by an opcode handler, signals normal
// termination (possibly a revert) rather than a fault. It is not exposed
// outside the package; Run translates it into a Result.
type haltSignal struct {
	data     []byte
	reverted bool
}

func (haltSignal) Error() string { return "halt" }

// Interpreter holds the state of a single execution: the code buffer, the
// program counter, the stack/memory/transient-storage triple, the gas
// register, and the address the running code is deployed at (used by
// CREATE/CREATE2 to derive a child address).
type Interpreter struct {
	Address common.Address
	code    []byte
	pc      uint64
	stack   *Stack
	memory  *Memory
	storage *Storage
	gas     int64
	nonce   uint64
	tracer  Tracer
	logs    []LogEntry
}

// NewInterpreter returns an interpreter over code with the given gas
// budget, ready to execute at address addr.
func NewInterpreter(addr common.Address, code []byte, gas int64) *Interpreter {
	return &Interpreter{
		Address: addr,
		code:    code,
		stack:   newStack(),
		memory:  newMemory(),
		storage: newStorage(),
		gas:     gas,
	}
}

// SetTracer installs a tracer hook, replacing any previously set one.
func (in *Interpreter) SetTracer(t Tracer) { in.tracer = t }

// GasLeft returns the current value of the gas register.
func (in *Interpreter) GasLeft() int64 { return in.gas }

// Step executes a single opcode: fetch, advance pc, trace, charge gas,
// dispatch. Returns a haltSignal on STOP/RETURN/REVERT/SELFDESTRUCT and
// when pc has run past the end of the code, nil after any other opcode, or
// a fault.
func (in *Interpreter) Step() error {
	if in.pc >= uint64(len(in.code)) {
		return haltSignal{}
	}
	op := OpCode(in.code[in.pc])
	in.pc++

	if in.tracer != nil {
		in.tracer(in, op)
	}

	entry := table[op]
	if entry == nil {
		return ErrInvalidOpcode
	}
	in.gas -= int64(entry.gas)
	if in.gas < 0 {
		return ErrOutOfGas
	}
	return entry.execute(in)
}

// Run drives Step to completion: a normal end-of-code, STOP, RETURN,
// REVERT or SELFDESTRUCT produces a Result; any other error is a fault
// propagated unaltered to the caller.
func (in *Interpreter) Run() (Result, error) {
	for {
		err := in.Step()
		if err == nil {
			continue
		}
		if h, ok := err.(haltSignal); ok {
			return Result{ReturnData: h.data, GasLeft: in.gas, Reverted: h.reverted, Logs: in.logs}, nil
		}
		return Result{}, err
	}
}
