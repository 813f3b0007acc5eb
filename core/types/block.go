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

// Package types contains the RLP-shaped records exchanged across the
// execution core's boundary: block headers, blocks, and accounts.
package types

import (
	"sync/atomic"

	"github.com/coreumchain/coreum/common"
	"github.com/coreumchain/coreum/crypto"
	"github.com/coreumchain/coreum/rlp"
)

// rlpHash encodes val and returns its Keccak-256 digest.
func rlpHash(val interface{}) common.Hash {
	b, err := rlp.EncodeToBytes(val)
	if err != nil {
		panic("can't encode: " + err.Error())
	}
	return crypto.Keccak256Hash(b)
}

// Header is a block header: the 15-field positional list. Field order is
// part of the wire format, not just a struct layout.
type Header struct {
	ParentHash       common.Hash
	UncleHash        common.Hash
	Coinbase         common.Address
	Root             common.Hash
	TxHash           common.Hash
	ReceiptHash      common.Hash
	Bloom            []byte
	Difficulty       uint64
	Number           uint64
	GasLimit         uint64
	GasUsed          uint64
	Time             uint64
	Extra            []byte
	MixDigest        common.Hash
	Nonce            uint64

	hash atomic.Value
}

// Hash returns keccak256(header_rlp), computed on first call and cached
// thereafter.
func (h *Header) Hash() common.Hash {
	if hash := h.hash.Load(); hash != nil {
		return hash.(common.Hash)
	}
	v := rlpHash(h)
	h.hash.Store(v)
	return v
}

// EmptyUncleHash is the hash of an RLP-encoded empty uncle list, the
// UncleHash a header with no ommers carries.
var EmptyUncleHash = rlpHash([]*Header(nil))

// Transaction is an opaque, already-serialized transaction. Signing,
// typed envelopes, and gas-price fields belong to transaction
// *processing*, which this execution core does not perform; the block
// RLP shape only ever needs the raw bytes of each transaction.
type Transaction []byte

// Block is the outer envelope spec §6 describes:
// [header_rlp, [tx_bytes…], [ommer_header_rlp…]].
type Block struct {
	header       *Header
	transactions []Transaction
	uncles       []*Header

	hash atomic.Value
}

// NewBlock assembles a block from an already-built header and body. The
// header's UncleHash is not derived here: callers are responsible for
// setting it to match the uncles list they pass (or to EmptyUncleHash).
func NewBlock(header *Header, txs []Transaction, uncles []*Header) *Block {
	b := &Block{header: header}
	b.transactions = make([]Transaction, len(txs))
	copy(b.transactions, txs)
	b.uncles = make([]*Header, len(uncles))
	copy(b.uncles, uncles)
	return b
}

func (b *Block) Header() *Header             { return b.header }
func (b *Block) Transactions() []Transaction { return b.transactions }
func (b *Block) Uncles() []*Header           { return b.uncles }
func (b *Block) NumberU64() uint64           { return b.header.Number }
func (b *Block) ParentHash() common.Hash     { return b.header.ParentHash }
func (b *Block) Root() common.Hash           { return b.header.Root }

// rlpBlock is the positional wire shape of Block: the header and each
// uncle are embedded pre-encoded, as opaque byte strings, matching
// spec's [header_rlp, [tx_bytes…], [ommer_header_rlp…]] exactly (rather
// than nesting their fields directly as a sub-list).
type rlpBlock struct {
	HeaderRLP []byte
	Txs       []Transaction
	UncleRLPs [][]byte
}

// rlp serializes b into the block RLP format.
func (b *Block) rlp() ([]byte, error) {
	headerRLP, err := rlp.EncodeToBytes(b.header)
	if err != nil {
		return nil, err
	}
	uncleRLPs := make([][]byte, len(b.uncles))
	for i, u := range b.uncles {
		enc, err := rlp.EncodeToBytes(u)
		if err != nil {
			return nil, err
		}
		uncleRLPs[i] = enc
	}
	return rlp.EncodeToBytes(rlpBlock{HeaderRLP: headerRLP, Txs: b.transactions, UncleRLPs: uncleRLPs})
}

// Hash returns the keccak256 hash of b's own RLP encoding.
// The hash is computed on the first call and cached thereafter.
func (b *Block) Hash() common.Hash {
	if hash := b.hash.Load(); hash != nil {
		return hash.(common.Hash)
	}
	enc, err := b.rlp()
	if err != nil {
		panic("can't encode: " + err.Error())
	}
	v := crypto.Keccak256Hash(enc)
	b.hash.Store(v)
	return v
}

type Blocks []*Block
