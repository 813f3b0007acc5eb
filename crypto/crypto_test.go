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

package crypto

import (
	"encoding/hex"
	"testing"

	"github.com/coreumchain/coreum/common"
)

func TestKeccak256Vectors(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", "c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470"},
		{"hello", "1c8aff950685c2ed4bc3174f3472287b56d9517b9c948127319a09a7a36deac8"},
	}
	for _, c := range cases {
		got := hex.EncodeToString(Keccak256([]byte(c.in)))
		if got != c.want {
			t.Fatalf("keccak256(%q) = %s, want %s", c.in, got, c.want)
		}
	}
}

func TestKeccak256HashMatchesKeccak256(t *testing.T) {
	data := []byte("the quick brown fox")
	h := Keccak256Hash(data)
	raw := Keccak256(data)
	if !bytesEqual(h[:], raw) {
		t.Fatalf("Keccak256Hash = %x, want %x", h[:], raw)
	}
}

func TestCreateAddressDeterministic(t *testing.T) {
	var sender common.Address
	copy(sender[:], []byte("0123456789abcdef0123"))
	a1 := CreateAddress(sender, 0)
	a2 := CreateAddress(sender, 0)
	if a1 != a2 {
		t.Fatalf("CreateAddress not deterministic: %x != %x", a1, a2)
	}
	a3 := CreateAddress(sender, 1)
	if a1 == a3 {
		t.Fatalf("CreateAddress(nonce=0) == CreateAddress(nonce=1)")
	}
}

func TestCreateAddress2Deterministic(t *testing.T) {
	var sender common.Address
	copy(sender[:], []byte("0123456789abcdef0123"))
	var salt [32]byte
	salt[0] = 0x01
	inithash := Keccak256([]byte("init code"))

	a1 := CreateAddress2(sender, salt, inithash)
	a2 := CreateAddress2(sender, salt, inithash)
	if a1 != a2 {
		t.Fatalf("CreateAddress2 not deterministic: %x != %x", a1, a2)
	}

	salt[0] = 0x02
	a3 := CreateAddress2(sender, salt, inithash)
	if a1 == a3 {
		t.Fatalf("different salts produced the same address")
	}
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
