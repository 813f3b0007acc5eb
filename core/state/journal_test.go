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

package state

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/coreumchain/coreum/kv/memorydb"
)

// TestJournalSnapshotRevert exercises the literal scenario: put(k1,v1);
// snapshot; put(k1,v2); put(k2,vB); revert -> get(k1)=v1, get(k2)=absent.
func TestJournalSnapshotRevert(t *testing.T) {
	j := NewJournal(memorydb.New())
	j.Put([]byte("k1"), []byte("v1"))

	s := j.Snapshot()
	j.Put([]byte("k1"), []byte("v2"))
	j.Put([]byte("k2"), []byte("vB"))

	j.Revert(s)

	v, ok := j.Get([]byte("k1"))
	require.True(t, ok)
	require.Equal(t, []byte("v1"), v)

	_, ok = j.Get([]byte("k2"))
	require.False(t, ok, "k2 must be absent after revert")
}

func TestJournalRevertRemovesZeroOriginal(t *testing.T) {
	j := NewJournal(memorydb.New())
	s := j.Snapshot()
	j.Put([]byte("k1"), []byte("v1"))
	j.Revert(s)

	_, ok := j.Get([]byte("k1"))
	require.False(t, ok, "k1 must be absent after revert")

	_, ok = j.cache["k1"]
	require.False(t, ok, "cache entry for k1 must be removed, not left as a tombstone")
}

func TestJournalTombstoneDistinctFromAbsent(t *testing.T) {
	db := memorydb.New()
	require.NoError(t, db.Put([]byte("k1"), []byte("v1")))
	j := NewJournal(db)

	j.Delete([]byte("k1"))
	_, ok := j.Get([]byte("k1"))
	require.False(t, ok, "deleted key must read as absent")

	_, ok = j.Get([]byte("never-written"))
	require.False(t, ok)
}

func TestJournalCommitFlushesToBackingStore(t *testing.T) {
	db := memorydb.New()
	j := NewJournal(db)

	s := j.Snapshot()
	j.Put([]byte("k1"), []byte("v1"))
	require.NoError(t, j.Commit(s))

	got, err := db.Get([]byte("k1"))
	require.NoError(t, err)
	require.Equal(t, []byte("v1"), got)
	require.Zero(t, j.Length(), "journal entries must be empty after commit")
}

func TestJournalRevertIdempotent(t *testing.T) {
	j := NewJournal(memorydb.New())
	j.Put([]byte("k1"), []byte("v1"))
	s := j.Snapshot()
	j.Put([]byte("k1"), []byte("v2"))

	j.Revert(s)
	before, _ := j.Get([]byte("k1"))
	j.Revert(s)
	after, _ := j.Get([]byte("k1"))

	require.Equal(t, before, after, "revert must be idempotent")
}
