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

package types

import (
	"testing"

	"github.com/holiman/uint256"

	"github.com/coreumchain/coreum/rlp"
)

func TestNewAccountDefaults(t *testing.T) {
	a := NewAccount()
	if a.Nonce != 0 {
		t.Fatalf("nonce = %d, want 0", a.Nonce)
	}
	if !a.Balance.IsZero() {
		t.Fatalf("balance = %v, want 0", a.Balance)
	}
	if a.StorageRoot != EmptyAccountRootHash {
		t.Fatalf("storage root = %x, want EmptyAccountRootHash", a.StorageRoot)
	}
	if a.CodeHash != EmptyCodeHash {
		t.Fatalf("code hash = %x, want EmptyCodeHash", a.CodeHash)
	}
}

func TestAccountRLPRoundTrip(t *testing.T) {
	a := Account{
		Nonce:       7,
		Balance:     uint256.NewInt(1_000_000),
		StorageRoot: EmptyAccountRootHash,
		CodeHash:    EmptyCodeHash,
	}
	enc, err := rlp.EncodeToBytes(&a)
	if err != nil {
		t.Fatal(err)
	}
	var out Account
	if err := rlp.DecodeBytes(enc, &out); err != nil {
		t.Fatal(err)
	}
	if out.Nonce != a.Nonce {
		t.Fatalf("nonce = %d, want %d", out.Nonce, a.Nonce)
	}
	if out.Balance == nil || !out.Balance.Eq(a.Balance) {
		t.Fatalf("balance = %v, want %v", out.Balance, a.Balance)
	}
	if out.StorageRoot != a.StorageRoot || out.CodeHash != a.CodeHash {
		t.Fatalf("roots/hashes mismatch after round trip")
	}
}
