// Copyright 2016 The go-ethereum Authors
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

package trie

import (
	"bytes"

	"github.com/coreumchain/coreum/common"
	"github.com/coreumchain/coreum/crypto"
	"github.com/coreumchain/coreum/rlp"
)

// hasher collapses a trie subtree into its canonical wire form: a node
// whose RLP encoding is 32 bytes or longer is replaced by its Keccak-256
// digest (registered with db for a later Commit), everything smaller is
// kept inline at the parent reference site.
type hasher struct{ db *Database }

func newHasher(db *Database) *hasher { return &hasher{db: db} }

// hash returns the collapsed form of n (a hashNode if n was big enough to
// be hashed, or n's collapsed-children form otherwise) along with a copy
// of n with its hash cached for re-use.
func (h *hasher) hash(n node, force bool) (node, node) {
	if hash, dirty := n.cache(); hash != nil && !dirty {
		return hash, n
	}
	collapsed, cached := h.hashChildren(n)
	hashed := h.store(collapsed, force)
	switch cn := cached.(type) {
	case *shortNode:
		if hn, ok := hashed.(hashNode); ok {
			cn.flags.hash = hn
		}
		cn.flags.dirty = false
	case *fullNode:
		if hn, ok := hashed.(hashNode); ok {
			cn.flags.hash = hn
		}
		cn.flags.dirty = false
	}
	return hashed, cached
}

func (h *hasher) hashChildren(original node) (node, node) {
	switch n := original.(type) {
	case *shortNode:
		collapsed, cached := n.copy(), n.copy()
		collapsed.Key = hexToCompact(n.Key)
		switch n.Val.(type) {
		case *fullNode, *shortNode:
			collapsed.Val, cached.Val = h.hash(n.Val, false)
		}
		return collapsed, cached
	case *fullNode:
		collapsed, cached := n.copy(), n.copy()
		for i := 0; i < 16; i++ {
			if n.Children[i] != nil {
				collapsed.Children[i], cached.Children[i] = h.hash(n.Children[i], false)
			}
		}
		cached.Children[16] = n.Children[16]
		collapsed.Children[16] = n.Children[16]
		return collapsed, cached
	default:
		return n, original
	}
}

// store encodes n and, if the encoding is large enough to be hashed rather
// than inlined, registers the encoding under its digest with h.db.
func (h *hasher) store(n node, force bool) node {
	if n == nil {
		return nil
	}
	if _, isHash := n.(hashNode); isHash {
		return n
	}
	enc, err := nodeToBytes(n)
	if err != nil {
		panic("encode error: " + err.Error())
	}
	if len(enc) < 32 && !force {
		return n // stored inline at the parent reference site
	}
	hash := hashNode(crypto.Keccak256(enc))
	if h.db != nil {
		h.db.insert(common.BytesToHash(hash), n)
	}
	return hash
}

// nodeToBytes returns the canonical RLP encoding of a single collapsed
// node, the form stored under its digest in the backing store.
func nodeToBytes(n node) ([]byte, error) {
	buf := new(bytes.Buffer)
	switch n := n.(type) {
	case *fullNode:
		if err := n.EncodeRLP(buf); err != nil {
			return nil, err
		}
	case *shortNode:
		if err := rlp.Encode(buf, []interface{}{n.Key, n.Val}); err != nil {
			return nil, err
		}
	case valueNode:
		if err := rlp.Encode(buf, []byte(n)); err != nil {
			return nil, err
		}
	default:
		if err := rlp.Encode(buf, n); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}
