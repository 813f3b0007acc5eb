// Copyright 2014 The go-probeum Authors
// This file is part of the go-probeum library.
//
// The go-probeum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-probeum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-probeum library. If not, see <http://www.gnu.org/licenses/>.

package types

import (
	"github.com/holiman/uint256"

	"github.com/coreumchain/coreum/common"
	"github.com/coreumchain/coreum/crypto"
)

// Account is the consensus-level record held at every leaf of the world
// state trie: a nonce, a balance, the root of the account's own storage
// trie, and the hash of its code.
type Account struct {
	Nonce       uint64
	Balance     *uint256.Int
	StorageRoot common.Hash
	CodeHash    common.Hash
}

var (
	// EmptyCodeHash is the Keccak-256 digest of the empty byte string, the
	// CodeHash carried by every externally-owned (non-contract) account.
	EmptyCodeHash = crypto.Keccak256Hash(nil)

	// EmptyAccountRootHash is the root of an empty storage trie: the
	// Keccak-256 digest of the RLP encoding of the empty string.
	EmptyAccountRootHash = crypto.Keccak256Hash([]byte{0x80})
)

// NewAccount returns the canonical zero-value account: nonce zero, balance
// zero, an empty storage trie, and no code.
func NewAccount() Account {
	return Account{
		Balance:     new(uint256.Int),
		StorageRoot: EmptyAccountRootHash,
		CodeHash:    EmptyCodeHash,
	}
}
