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

package state

import "github.com/coreumchain/coreum/kv"

// journalStore adapts a Journal to the kv.Store contract, so that both the
// account trie's node storage and the world state's own reads/writes flow
// through the same write-through cache and snapshot/revert machinery. A
// trie.Database fronted by a journalStore gets snapshot-scoped trie node
// commits for free: nodes the trie.Database commits land in the journal's
// cache and only reach the durable backing store when the journal commits.
type journalStore struct {
	j *Journal
}

func newJournalStore(j *Journal) *journalStore { return &journalStore{j: j} }

func (s *journalStore) Get(key []byte) ([]byte, error) {
	v, ok := s.j.Get(key)
	if !ok {
		return nil, kv.ErrNotFound
	}
	return v, nil
}

func (s *journalStore) Put(key, value []byte) error {
	s.j.Put(key, value)
	return nil
}

func (s *journalStore) Delete(key []byte) error {
	s.j.Delete(key)
	return nil
}

func (s *journalStore) Has(key []byte) (bool, error) {
	_, ok := s.j.Get(key)
	return ok, nil
}

func (s *journalStore) Close() error { return nil }

// NewBatch buffers writes and applies them to the journal, in order, on
// Write. The world state never needs atomic multi-key batches ahead of a
// journal commit (the journal itself is the atomicity boundary), so this
// is a thin convenience rather than a true write-ahead batch.
func (s *journalStore) NewBatch() kv.Batch { return &journalBatch{store: s} }

// NewIterator is not exercised by the trie or world-state code paths (both
// resolve nodes and accounts by direct key lookup); it delegates straight
// to the backing store and so will not see keys still held only in the
// journal's uncommitted cache.
func (s *journalStore) NewIterator(prefix, start []byte) kv.Iterator {
	return s.j.db.NewIterator(prefix, start)
}

type journalBatch struct {
	store *journalStore
	ops   []batchOp
	size  int
}

type batchOp struct {
	key     []byte
	value   []byte
	deleted bool
}

func (b *journalBatch) Put(key, value []byte) error {
	b.ops = append(b.ops, batchOp{key: append([]byte{}, key...), value: append([]byte{}, value...)})
	b.size += len(key) + len(value)
	return nil
}

func (b *journalBatch) Delete(key []byte) error {
	b.ops = append(b.ops, batchOp{key: append([]byte{}, key...), deleted: true})
	b.size += len(key)
	return nil
}

func (b *journalBatch) ValueSize() int { return b.size }

func (b *journalBatch) Write() error {
	for _, op := range b.ops {
		if op.deleted {
			if err := b.store.Delete(op.key); err != nil {
				return err
			}
			continue
		}
		if err := b.store.Put(op.key, op.value); err != nil {
			return err
		}
	}
	return nil
}

func (b *journalBatch) Reset() {
	b.ops = b.ops[:0]
	b.size = 0
}
