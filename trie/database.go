// Copyright 2018 The go-ethereum Authors
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
	"sync"

	"github.com/VictoriaMetrics/fastcache"
	lru "github.com/hashicorp/golang-lru"

	"github.com/coreumchain/coreum/common"
	"github.com/coreumchain/coreum/kv"
)

// cachedNode is an in-memory trie node pending a flush to the backing store,
// held in the collapsed form the hasher produced (compact keys, hashed or
// inlined children); its RLP encoding is produced when it is flushed.
type cachedNode struct {
	node node
	size uint16
}

// obj returns the cached node in the trie's working form, decoded from its
// RLP encoding exactly as a node read from the backing store would be.
func (n *cachedNode) obj(hash common.Hash) node {
	enc, err := nodeToBytes(n.node)
	if err != nil {
		panic("encode error: " + err.Error())
	}
	return mustDecodeNode(hash[:], enc)
}

// Database is the trie node store: an in-memory "dirty" layer of nodes not
// yet flushed to disk, a fastcache-backed clean-node cache, and an LRU of
// recently seen past roots, all fronting a durable kv.Store.
type Database struct {
	diskdb kv.Store

	cleans *fastcache.Cache
	lock   sync.RWMutex
	dirties map[common.Hash]*cachedNode

	pastTries *lru.Cache // bounded index of recently committed trie roots
}

// NewDatabase wraps diskdb with an in-memory node cache of the given byte
// size (0 disables the clean cache).
func NewDatabase(diskdb kv.Store, cleanCacheSize int) *Database {
	var cleans *fastcache.Cache
	if cleanCacheSize > 0 {
		cleans = fastcache.New(cleanCacheSize)
	}
	pastTries, _ := lru.New(32)
	return &Database{
		diskdb:  diskdb,
		cleans:  cleans,
		dirties: make(map[common.Hash]*cachedNode),
		pastTries: pastTries,
	}
}

// DiskDB returns the backing key-value store.
func (db *Database) DiskDB() kv.Store { return db.diskdb }

// insert records a freshly hashed node in the dirty cache, pending a Commit.
func (db *Database) insert(hash common.Hash, n node) {
	db.lock.Lock()
	defer db.lock.Unlock()
	if _, ok := db.dirties[hash]; ok {
		return
	}
	db.dirties[hash] = &cachedNode{node: n}
}

// node retrieves a trie node from memory or, failing that, from the backing
// store, and returns nil if it is found in neither.
func (db *Database) node(hash common.Hash) node {
	if db.cleans != nil {
		if enc := db.cleans.Get(nil, hash[:]); enc != nil {
			return mustDecodeNode(hash[:], enc)
		}
	}
	db.lock.RLock()
	dirty := db.dirties[hash]
	db.lock.RUnlock()
	if dirty != nil {
		return dirty.obj(hash)
	}

	// Content unavailable in memory, attempt to retrieve from disk.
	enc, err := db.diskdb.Get(hash[:])
	if err != nil || enc == nil {
		return nil
	}
	if db.cleans != nil {
		db.cleans.Set(hash[:], enc)
	}
	return mustDecodeNode(hash[:], enc)
}

// Commit flushes every dirty node reachable from hash to the backing
// store, recursing into child hash references first, and records the root
// in the past-roots index.
func (db *Database) Commit(hash common.Hash) error {
	if err := db.commitNode(hash); err != nil {
		return err
	}
	if db.pastTries != nil {
		db.pastTries.Add(hash, struct{}{})
	}
	return nil
}

func (db *Database) commitNode(hash common.Hash) error {
	db.lock.Lock()
	n, ok := db.dirties[hash]
	db.lock.Unlock()
	if !ok {
		// already flushed, inline, or an empty reference
		return nil
	}
	for _, child := range childHashes(n.node) {
		if err := db.commitNode(child); err != nil {
			return err
		}
	}
	enc, err := nodeToBytes(n.node)
	if err != nil {
		return err
	}
	if err := db.diskdb.Put(hash[:], enc); err != nil {
		return err
	}
	if db.cleans != nil {
		db.cleans.Set(hash[:], enc)
	}
	db.lock.Lock()
	delete(db.dirties, hash)
	db.lock.Unlock()
	return nil
}

// childHashes returns the direct hashNode children referenced by n.
func childHashes(n node) []common.Hash {
	var out []common.Hash
	switch n := n.(type) {
	case *fullNode:
		for _, child := range &n.Children {
			if hn, ok := child.(hashNode); ok {
				out = append(out, common.BytesToHash(hn))
			}
		}
	case *shortNode:
		if hn, ok := n.Val.(hashNode); ok {
			out = append(out, common.BytesToHash(hn))
		}
	}
	return out
}

// RecentRoot reports whether hash was recently committed as a trie root.
func (db *Database) RecentRoot(hash common.Hash) bool {
	if db.pastTries == nil {
		return false
	}
	_, ok := db.pastTries.Get(hash)
	return ok
}
