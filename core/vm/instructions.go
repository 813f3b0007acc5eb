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
	"github.com/holiman/uint256"

	"github.com/coreumchain/coreum/common"
	"github.com/coreumchain/coreum/crypto"
)

func opStop(in *Interpreter) error {
	return haltSignal{}
}

func opAdd(in *Interpreter) error {
	a, err := in.stack.Pop(0)
	if err != nil {
		return err
	}
	b, err := in.stack.Pop(0)
	if err != nil {
		return err
	}
	res := new(uint256.Int).Add(&a, &b)
	return in.stack.Push(res)
}

func opMul(in *Interpreter) error {
	a, err := in.stack.Pop(0)
	if err != nil {
		return err
	}
	b, err := in.stack.Pop(0)
	if err != nil {
		return err
	}
	res := new(uint256.Int).Mul(&a, &b)
	return in.stack.Push(res)
}

func opSub(in *Interpreter) error {
	a, err := in.stack.Pop(0)
	if err != nil {
		return err
	}
	b, err := in.stack.Pop(0)
	if err != nil {
		return err
	}
	res := new(uint256.Int).Sub(&a, &b)
	return in.stack.Push(res)
}

func opDiv(in *Interpreter) error {
	a, err := in.stack.Pop(0)
	if err != nil {
		return err
	}
	b, err := in.stack.Pop(0)
	if err != nil {
		return err
	}
	res := new(uint256.Int).Div(&a, &b) // uint256.Div defines x/0 == 0
	return in.stack.Push(res)
}

func opSdiv(in *Interpreter) error {
	a, err := in.stack.Pop(0)
	if err != nil {
		return err
	}
	b, err := in.stack.Pop(0)
	if err != nil {
		return err
	}
	res := new(uint256.Int).SDiv(&a, &b)
	return in.stack.Push(res)
}

func opMod(in *Interpreter) error {
	a, err := in.stack.Pop(0)
	if err != nil {
		return err
	}
	b, err := in.stack.Pop(0)
	if err != nil {
		return err
	}
	res := new(uint256.Int).Mod(&a, &b)
	return in.stack.Push(res)
}

func opSha3(in *Interpreter) error {
	offset, size, err := popMemoryArg(in)
	if err != nil {
		return err
	}
	data := in.memory.GetCopy(offset, size)
	hash := crypto.Keccak256(data)
	return in.stack.Push(new(uint256.Int).SetBytes(hash))
}

func opPop(in *Interpreter) error {
	_, err := in.stack.Pop(0)
	return err
}

func opMload(in *Interpreter) error {
	off, err := in.stack.Pop(0)
	if err != nil {
		return err
	}
	offset, err := toMemoryIndex(&off)
	if err != nil {
		return err
	}
	data := in.memory.GetCopy(offset, 32)
	return in.stack.Push(new(uint256.Int).SetBytes(data))
}

func opMstore(in *Interpreter) error {
	off, err := in.stack.Pop(0)
	if err != nil {
		return err
	}
	val, err := in.stack.Pop(0)
	if err != nil {
		return err
	}
	offset, err := toMemoryIndex(&off)
	if err != nil {
		return err
	}
	in.memory.Set32(offset, &val)
	return nil
}

func opMstore8(in *Interpreter) error {
	off, err := in.stack.Pop(0)
	if err != nil {
		return err
	}
	val, err := in.stack.Pop(0)
	if err != nil {
		return err
	}
	offset, err := toMemoryIndex(&off)
	if err != nil {
		return err
	}
	in.memory.Set(offset, []byte{byte(val.Uint64())})
	return nil
}

func opSload(in *Interpreter) error {
	key, err := in.stack.Pop(0)
	if err != nil {
		return err
	}
	v := in.storage.Load(&key)
	return in.stack.Push(&v)
}

// opSstore consumes operands in reversed order relative to SLOAD: value
// is on top of the stack, key underneath.
func opSstore(in *Interpreter) error {
	value, err := in.stack.Pop(0)
	if err != nil {
		return err
	}
	key, err := in.stack.Pop(0)
	if err != nil {
		return err
	}
	in.storage.Store(&key, &value)
	return nil
}

func opJump(in *Interpreter) error {
	dest, err := in.stack.Pop(0)
	if err != nil {
		return err
	}
	target, err := toMemoryIndex(&dest)
	if err != nil {
		return ErrBadJump
	}
	if !isValidJumpDest(in.code, target) {
		return ErrBadJump
	}
	in.pc = target
	return nil
}

func opJumpi(in *Interpreter) error {
	dest, err := in.stack.Pop(0)
	if err != nil {
		return err
	}
	cond, err := in.stack.Pop(0)
	if err != nil {
		return err
	}
	if cond.IsZero() {
		return nil
	}
	target, err := toMemoryIndex(&dest)
	if err != nil {
		return ErrBadJump
	}
	if !isValidJumpDest(in.code, target) {
		return ErrBadJump
	}
	in.pc = target
	return nil
}

func opJumpdest(in *Interpreter) error { return nil }

// makePush returns a handler that reads n big-endian bytes immediately
// following the opcode, advances pc by n (zero-padding past end of code),
// and pushes the result.
func makePush(n int) func(*Interpreter) error {
	return func(in *Interpreter) error {
		var buf [32]byte
		for i := 0; i < n; i++ {
			if in.pc+uint64(i) < uint64(len(in.code)) {
				buf[32-n+i] = in.code[in.pc+uint64(i)]
			}
		}
		in.pc += uint64(n)
		return in.stack.Push(new(uint256.Int).SetBytes(buf[32-n:]))
	}
}

func makeDup(depth int) func(*Interpreter) error {
	return func(in *Interpreter) error {
		return in.stack.Dup(depth)
	}
}

func makeSwap(depth int) func(*Interpreter) error {
	return func(in *Interpreter) error {
		return in.stack.Swap(depth)
	}
}

// makeLog returns a handler for LOGn: pop size, offset, then n topics
// top-down, and append a LogEntry built from the referenced memory slice.
func makeLog(n int) func(*Interpreter) error {
	return func(in *Interpreter) error {
		offset, size, err := popMemoryArg(in)
		if err != nil {
			return err
		}
		topics := make([]common.Hash, n)
		for i := 0; i < n; i++ {
			t, err := in.stack.Pop(0)
			if err != nil {
				return err
			}
			topics[i] = common.BytesToHash(t.Bytes())
		}
		data := in.memory.GetCopy(offset, size)
		in.logs = append(in.logs, LogEntry{Address: in.Address, Topics: topics, Data: data})
		return nil
	}
}

// opCreate and opCreate2 are stubs: the full semantics of executing init
// code in a child context are out of scope (message-call sub-contexts are
// not specified). They pop their arguments, derive an address with the
// real CREATE/CREATE2 address scheme, and push it — without actually
// running any init code or mutating world state.
func opCreate(in *Interpreter) error {
	_, err := in.stack.Pop(0) // value
	if err != nil {
		return err
	}
	if _, _, err := popMemoryArg(in); err != nil { // offset, size
		return err
	}
	addr := crypto.CreateAddress(in.Address, in.nonce)
	in.nonce++
	return in.stack.Push(new(uint256.Int).SetBytes(addr.Bytes()))
}

func opCreate2(in *Interpreter) error {
	_, err := in.stack.Pop(0) // value
	if err != nil {
		return err
	}
	offset, size, err := popMemoryArg(in)
	if err != nil {
		return err
	}
	saltWord, err := in.stack.Pop(0)
	if err != nil {
		return err
	}
	initCode := in.memory.GetCopy(offset, size)
	var salt [32]byte
	b := saltWord.Bytes32()
	copy(salt[:], b[:])
	addr := crypto.CreateAddress2(in.Address, salt, crypto.Keccak256(initCode))
	return in.stack.Push(new(uint256.Int).SetBytes(addr.Bytes()))
}

// opCall, opDelegateCall handle CALL/CALLCODE/STATICCALL/DELEGATECALL
// alike: message-call sub-contexts are out of scope, so these stubs only
// pop their (7- or 6-argument) operand lists and push a success flag of 1.
func opCall(in *Interpreter) error {
	for i := 0; i < 7; i++ {
		if _, err := in.stack.Pop(0); err != nil {
			return err
		}
	}
	return in.stack.Push(uint256.NewInt(1))
}

func opDelegateCall(in *Interpreter) error {
	for i := 0; i < 6; i++ {
		if _, err := in.stack.Pop(0); err != nil {
			return err
		}
	}
	return in.stack.Push(uint256.NewInt(1))
}

func opReturn(in *Interpreter) error {
	offset, size, err := popMemoryArg(in)
	if err != nil {
		return err
	}
	return haltSignal{data: in.memory.GetCopy(offset, size)}
}

func opRevert(in *Interpreter) error {
	offset, size, err := popMemoryArg(in)
	if err != nil {
		return err
	}
	return haltSignal{data: in.memory.GetCopy(offset, size), reverted: true}
}

func opSelfdestruct(in *Interpreter) error {
	if _, err := in.stack.Pop(0); err != nil { // beneficiary
		return err
	}
	return haltSignal{}
}

// toMemoryIndex converts a stack word to a memory offset/length, faulting
// with ErrBadMemoryArg if the value is too large to address any practical
// memory region (the base spec's "negative offset or size" condition,
// translated to this interpreter's unsigned stack words).
func toMemoryIndex(v *uint256.Int) (uint64, error) {
	if !v.IsUint64() {
		return 0, ErrBadMemoryArg
	}
	return v.Uint64(), nil
}

// popMemoryArg pops a memory region argument. The literal worked example for
// RETURN (push offset, push size, then RETURN) puts size on top of the stack
// at entry, so size is popped first and offset second.
func popMemoryArg(in *Interpreter) (offset, size uint64, err error) {
	s, err := in.stack.Pop(0)
	if err != nil {
		return 0, 0, err
	}
	o, err := in.stack.Pop(0)
	if err != nil {
		return 0, 0, err
	}
	size, err = toMemoryIndex(&s)
	if err != nil {
		return 0, 0, err
	}
	offset, err = toMemoryIndex(&o)
	if err != nil {
		return 0, 0, err
	}
	return offset, size, nil
}
