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

package trie

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"

	"github.com/coreumchain/coreum/common"
	"github.com/coreumchain/coreum/kv/memorydb"
)

func newTestTrie(t *testing.T) *Trie {
	t.Helper()
	db := NewDatabase(memorydb.New(), 0)
	tr, err := New(common.Hash{}, db)
	require.NoError(t, err)
	return tr
}

func TestEmptyTrieRoot(t *testing.T) {
	tr := newTestTrie(t)
	require.Equal(t, emptyRoot, tr.Hash())
}

var trieEntries = [][2]string{
	{"dog", "puppy"},
	{"do", "verb"},
	{"cat", "kitten"},
	{"fish", "fishlet"},
}

func TestTrieMultiKey(t *testing.T) {
	tr := newTestTrie(t)
	for _, e := range trieEntries {
		require.NoError(t, tr.TryUpdate([]byte(e[0]), []byte(e[1])))
	}
	for _, e := range trieEntries {
		got, err := tr.TryGet([]byte(e[0]))
		require.NoError(t, err)
		require.Equal(t, []byte(e[1]), got, "entries: %s", spew.Sdump(trieEntries))
	}
	got, err := tr.TryGet([]byte("cow"))
	require.NoError(t, err)
	require.Nil(t, got, "get(cow) must be absent")
}

// TestTrieRootOrderInvariant inserts the same key/value pairs in several
// different orders and checks the resulting root hash never depends on
// insertion order.
func TestTrieRootOrderInvariant(t *testing.T) {
	orders := [][]int{
		{0, 1, 2, 3},
		{3, 2, 1, 0},
		{2, 0, 3, 1},
	}
	var want common.Hash
	for i, order := range orders {
		tr := newTestTrie(t)
		for _, idx := range order {
			e := trieEntries[idx]
			require.NoError(t, tr.TryUpdate([]byte(e[0]), []byte(e[1])))
		}
		h := tr.Hash()
		if i == 0 {
			want = h
			continue
		}
		require.Equalf(t, want, h, "order %v produced a different root", order)
	}
}

func TestTrieDeleteRemovesKey(t *testing.T) {
	tr := newTestTrie(t)
	require.NoError(t, tr.TryUpdate([]byte("dog"), []byte("puppy")))
	require.NoError(t, tr.TryDelete([]byte("dog")))

	got, err := tr.TryGet([]byte("dog"))
	require.NoError(t, err)
	require.Nil(t, got)
	require.Equal(t, emptyRoot, tr.Hash(), "root after deleting the only key")
}

func TestTrieCommitPersists(t *testing.T) {
	db := NewDatabase(memorydb.New(), 0)
	tr, err := New(common.Hash{}, db)
	require.NoError(t, err)
	require.NoError(t, tr.TryUpdate([]byte("dog"), []byte("puppy")))

	root, err := tr.Commit()
	require.NoError(t, err)

	reopened, err := New(root, db)
	require.NoError(t, err)
	got, err := reopened.TryGet([]byte("dog"))
	require.NoError(t, err)
	require.Equal(t, []byte("puppy"), got)
}
