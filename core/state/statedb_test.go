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

package state

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"

	"github.com/coreumchain/coreum/common"
	"github.com/coreumchain/coreum/core/types"
	"github.com/coreumchain/coreum/kv/memorydb"
)

func newTestStateDB(t *testing.T) *StateDB {
	t.Helper()
	s, err := New(common.Hash{}, memorydb.New())
	require.NoError(t, err)
	return s
}

func TestGetAccountAbsent(t *testing.T) {
	s := newTestStateDB(t)
	_, ok := s.GetAccount(common.HexToAddress("0x01"))
	require.False(t, ok)
}

func TestSetGetAccountRoundTrip(t *testing.T) {
	s := newTestStateDB(t)
	addr := common.HexToAddress("0x01")
	acct := types.NewAccount()
	acct.Nonce = 5
	acct.Balance = uint256.NewInt(100)

	require.NoError(t, s.SetAccount(addr, acct))

	got, ok := s.GetAccount(addr)
	require.True(t, ok)
	require.Equal(t, uint64(5), got.Nonce)
	require.Equal(t, uint64(100), got.Balance.Uint64())
}

func TestTransferMovesBalance(t *testing.T) {
	s := newTestStateDB(t)
	from := common.HexToAddress("0x01")
	to := common.HexToAddress("0x02")

	fromAcct := types.NewAccount()
	fromAcct.Balance = uint256.NewInt(100)
	require.NoError(t, s.SetAccount(from, fromAcct))

	require.NoError(t, s.Transfer(from, to, uint256.NewInt(40)))

	gotFrom, _ := s.GetAccount(from)
	gotTo, _ := s.GetAccount(to)
	require.Equal(t, uint64(60), gotFrom.Balance.Uint64())
	require.Equal(t, uint64(40), gotTo.Balance.Uint64())
}

func TestTransferInsufficientFunds(t *testing.T) {
	s := newTestStateDB(t)
	from := common.HexToAddress("0x01")
	to := common.HexToAddress("0x02")

	err := s.Transfer(from, to, uint256.NewInt(1))
	require.ErrorIs(t, err, ErrInsufficientFunds)

	_, ok := s.GetAccount(to)
	require.False(t, ok, "receiver account must not be created on a failed transfer")
}

func TestStorageSetGetRoundTrip(t *testing.T) {
	s := newTestStateDB(t)
	addr := common.HexToAddress("0x01")
	key := common.HexToHash("0x0a")
	val := common.HexToHash("0xdeadbeef")

	require.NoError(t, s.SetStorage(addr, key, val))

	got, err := s.GetStorage(addr, key)
	require.NoError(t, err)
	require.Equal(t, val, got)
}

func TestStorageGetAbsentReturnsZeroHash(t *testing.T) {
	s := newTestStateDB(t)
	got, err := s.GetStorage(common.HexToAddress("0x01"), common.HexToHash("0x0a"))
	require.NoError(t, err)
	require.Equal(t, common.Hash{}, got)
}

// TestStateDBSnapshotRevert exercises world-state-level snapshot/revert:
// SetAccount mutates the live trie directly, ahead of any Journal write, so
// Revert must reopen the trie at the snapshot's root, not just roll back
// the Journal's own cache.
func TestStateDBSnapshotRevert(t *testing.T) {
	s := newTestStateDB(t)
	addr := common.HexToAddress("0x01")
	acct := types.NewAccount()
	acct.Balance = uint256.NewInt(100)
	require.NoError(t, s.SetAccount(addr, acct))

	id := s.Snapshot()
	acct.Balance = uint256.NewInt(5)
	require.NoError(t, s.SetAccount(addr, acct))
	s.Revert(id)

	got, ok := s.GetAccount(addr)
	require.True(t, ok)
	require.Equal(t, uint64(100), got.Balance.Uint64())
}

func TestStateDBCommitReturnsStableRoot(t *testing.T) {
	s := newTestStateDB(t)
	addr := common.HexToAddress("0x01")
	acct := types.NewAccount()
	acct.Balance = uint256.NewInt(100)
	require.NoError(t, s.SetAccount(addr, acct))

	id := s.Snapshot()
	root, err := s.Commit(id)
	require.NoError(t, err)
	require.Equal(t, s.Root(), root)
}
