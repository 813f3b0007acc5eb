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

// operation is one entry of the jump table: the handler to run and the
// fixed gas cost to charge before running it.
type operation struct {
	execute func(in *Interpreter) error
	gas     uint64
}

// jumpTable dispatches every opcode byte to its operation. Unlike the
// hardfork-gated tables production clients carry, this is a single static
// array: the spec this interpreter implements has no hardfork axis, so
// there is nothing to select between.
type jumpTable [256]*operation

var table = newJumpTable()

func newJumpTable() jumpTable {
	var tbl jumpTable

	tbl[STOP] = &operation{execute: opStop, gas: 0}
	tbl[ADD] = &operation{execute: opAdd, gas: GasFastestStep}
	tbl[MUL] = &operation{execute: opMul, gas: GasFastStep}
	tbl[SUB] = &operation{execute: opSub, gas: GasFastestStep}
	tbl[DIV] = &operation{execute: opDiv, gas: GasFastStep}
	tbl[SDIV] = &operation{execute: opSdiv, gas: GasFastStep}
	tbl[MOD] = &operation{execute: opMod, gas: GasFastStep}

	tbl[SHA3] = &operation{execute: opSha3, gas: GasSha3}

	tbl[POP] = &operation{execute: opPop, gas: GasQuickStep}
	tbl[MLOAD] = &operation{execute: opMload, gas: GasFastestStep}
	tbl[MSTORE] = &operation{execute: opMstore, gas: GasFastestStep}
	tbl[MSTORE8] = &operation{execute: opMstore8, gas: GasFastestStep}
	tbl[SLOAD] = &operation{execute: opSload, gas: GasSload}
	tbl[SSTORE] = &operation{execute: opSstore, gas: GasSstore}
	tbl[JUMP] = &operation{execute: opJump, gas: GasQuickStep}
	tbl[JUMPI] = &operation{execute: opJumpi, gas: GasQuickStep}
	tbl[JUMPDEST] = &operation{execute: opJumpdest, gas: GasJumpdest}

	for op := PUSH1; op <= PUSH32; op++ {
		tbl[op] = &operation{execute: makePush(int(op-PUSH1) + 1), gas: GasFastestStep}
	}
	for op := DUP1; op <= DUP16; op++ {
		tbl[op] = &operation{execute: makeDup(int(op - DUP1)), gas: GasFastestStep}
	}
	for op := SWAP1; op <= SWAP16; op++ {
		tbl[op] = &operation{execute: makeSwap(int(op-SWAP1) + 1), gas: GasFastestStep}
	}
	for op := LOG0; op <= LOG4; op++ {
		tbl[op] = &operation{execute: makeLog(int(op - LOG0)), gas: GasLog}
	}

	tbl[CREATE] = &operation{execute: opCreate, gas: GasCreate}
	tbl[CREATE2] = &operation{execute: opCreate2, gas: GasCreate}
	tbl[CALL] = &operation{execute: opCall, gas: GasCall}
	tbl[CALLCODE] = &operation{execute: opCall, gas: GasCall}
	tbl[STATICCALL] = &operation{execute: opCall, gas: GasCall}
	tbl[DELEGATECALL] = &operation{execute: opDelegateCall, gas: GasCall}
	tbl[RETURN] = &operation{execute: opReturn, gas: 0}
	tbl[REVERT] = &operation{execute: opRevert, gas: 0}
	tbl[SELFDESTRUCT] = &operation{execute: opSelfdestruct, gas: GasSelfdestruct}

	return tbl
}

// isValidJumpDest implements the base spec's literal rule: d is valid iff
// it names a JUMPDEST byte within code. Deliberately not push-data-aware —
// a byte that is really a PUSH immediate equal to 0x5b still reads as a
// valid destination. A stricter implementation would precompute a bitmap
// of PUSH-immediate positions and exclude them; this one does not.
func isValidJumpDest(code []byte, dest uint64) bool {
	if dest >= uint64(len(code)) {
		return false
	}
	return OpCode(code[dest]) == JUMPDEST
}
