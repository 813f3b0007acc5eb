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

	"github.com/coreumchain/coreum/common"
)

func TestInterpreterAddition(t *testing.T) {
	// PUSH1 3, PUSH1 4, ADD, STOP
	code := []byte{0x60, 0x03, 0x60, 0x04, 0x01, 0x00}
	in := NewInterpreter(common.Address{}, code, 1000)
	result, err := in.Run()
	if err != nil {
		t.Fatal(err)
	}
	if result.Reverted {
		t.Fatal("unexpected revert")
	}
	if len(result.ReturnData) != 0 {
		t.Fatalf("return data = %x, want empty", result.ReturnData)
	}
	top, err := in.stack.Peek(0)
	if err != nil {
		t.Fatal(err)
	}
	if top.Uint64() != 7 {
		t.Fatalf("top = %v, want 7", top)
	}
}

func TestInterpreterReturnMemorySlice(t *testing.T) {
	// PUSH1 0 (offset), PUSH1 2 (size), RETURN
	code := []byte{0x60, 0x00, 0x60, 0x02, 0xf3}
	in := NewInterpreter(common.Address{}, code, 1000)
	in.memory.Set(0, []byte("hi"))
	result, err := in.Run()
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(result.ReturnData, []byte("hi")) {
		t.Fatalf("return data = %q, want %q", result.ReturnData, "hi")
	}
}

func TestInterpreterOutOfGas(t *testing.T) {
	code := []byte{0x60, 0x02} // PUSH1 2
	in := NewInterpreter(common.Address{}, code, 0)
	_, err := in.Run()
	if err != ErrOutOfGas {
		t.Fatalf("got %v, want ErrOutOfGas", err)
	}
}

func TestInterpreterInvalidOpcode(t *testing.T) {
	code := []byte{0xfe}
	in := NewInterpreter(common.Address{}, code, 1000)
	_, err := in.Run()
	if err != ErrInvalidOpcode {
		t.Fatalf("got %v, want ErrInvalidOpcode", err)
	}
}

func TestInterpreterValidJump(t *testing.T) {
	// PUSH1 10, JUMP, then padding up to byte offset 10, where JUMPDEST sits.
	prog := []byte{0x60, 0x0a, 0x56, 0, 0, 0, 0, 0, 0, 0, 0x5b}
	if prog[10] != 0x5b {
		t.Fatalf("test program malformed: JUMPDEST not at offset 10")
	}
	in := NewInterpreter(common.Address{}, prog, 1000)
	result, err := in.Run()
	if err != nil {
		t.Fatal(err)
	}
	if result.Reverted {
		t.Fatal("unexpected revert")
	}
}

func TestInterpreterBadJump(t *testing.T) {
	// PUSH1 99 (no JUMPDEST there), JUMP
	code := []byte{0x60, 0x63, 0x56}
	in := NewInterpreter(common.Address{}, code, 1000)
	_, err := in.Run()
	if err != ErrBadJump {
		t.Fatalf("got %v, want ErrBadJump", err)
	}
}

func TestInterpreterSstoreSloadRoundTrip(t *testing.T) {
	// PUSH2 0xdeadbeef value isn't 2 bytes so use PUSH4; key 0x0abc needs PUSH2.
	// SSTORE pops value then key (top->bottom): push key first, then value.
	code := []byte{}
	code = append(code, 0x61, 0x0a, 0xbc) // PUSH2 0x0abc  (key)
	code = append(code, 0x63, 0xde, 0xad, 0xbe, 0xef) // PUSH4 0xdeadbeef (value)
	code = append(code, 0x55)             // SSTORE: pops value(top) then key
	code = append(code, 0x61, 0x0a, 0xbc) // PUSH2 0x0abc (key again)
	code = append(code, 0x54)             // SLOAD
	code = append(code, 0x00)             // STOP

	in := NewInterpreter(common.Address{}, code, 100000)
	_, err := in.Run()
	if err != nil {
		t.Fatal(err)
	}
	top, err := in.stack.Peek(0)
	if err != nil {
		t.Fatal(err)
	}
	if top.Uint64() != 0xdeadbeef {
		t.Fatalf("got %#x, want 0xdeadbeef", top.Uint64())
	}
}

func TestInterpreterRevertFlag(t *testing.T) {
	// PUSH1 0, PUSH1 0, REVERT
	code := []byte{0x60, 0x00, 0x60, 0x00, 0xfd}
	in := NewInterpreter(common.Address{}, code, 1000)
	result, err := in.Run()
	if err != nil {
		t.Fatal(err)
	}
	if !result.Reverted {
		t.Fatal("expected reverted=true")
	}
}
