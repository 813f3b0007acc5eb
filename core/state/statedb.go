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

// Package state implements the world state: a Journal-backed Merkle-Patricia
// trie of accounts, plus per-account storage sub-tries.
package state

import (
	"fmt"

	"github.com/holiman/uint256"

	"github.com/coreumchain/coreum/common"
	"github.com/coreumchain/coreum/core/types"
	"github.com/coreumchain/coreum/kv"
	"github.com/coreumchain/coreum/log"
	"github.com/coreumchain/coreum/rlp"
	"github.com/coreumchain/coreum/trie"
)

// ErrInsufficientFunds is raised by Transfer when the sender's balance is
// less than the amount being debited.
var ErrInsufficientFunds = fmt.Errorf("insufficient funds for transfer")

// StateDB is the world state: a Journal-backed account trie keyed by
// 20-byte addresses, whose leaves are RLP-encoded Account records. Every
// trie node, for the account trie and every account's storage sub-trie
// alike, is stored through the same Journal, so a single snapshot/revert/
// commit cycle covers account data and trie structure together.
type StateDB struct {
	journal  *Journal
	trieDB   *trie.Database
	accounts *trie.Trie

	// roots records the account trie's root hash at the moment each open
	// snapshot mark was taken, so Revert can re-open the trie from that
	// root instead of leaving the live in-memory node graph (which
	// SetAccount/SetStorage mutate directly, ahead of any journal write)
	// pointing at reverted data.
	roots map[int]common.Hash
}

// New opens the world state rooted at root (the zero hash opens a fresh,
// empty state) over the given backing key-value store.
func New(root common.Hash, db kv.Store) (*StateDB, error) {
	j := NewJournal(db)
	trieDB := trie.NewDatabase(newJournalStore(j), 0)
	accounts, err := trie.New(root, trieDB)
	if err != nil {
		return nil, err
	}
	return &StateDB{journal: j, trieDB: trieDB, accounts: accounts, roots: make(map[int]common.Hash)}, nil
}

// GetAccount decodes and returns the account at addr, and whether it exists.
func (s *StateDB) GetAccount(addr common.Address) (types.Account, bool) {
	enc, err := s.accounts.TryGet(addr.Bytes())
	if err != nil {
		log.Error("failed to resolve account", "addr", addr, "err", err)
		return types.Account{}, false
	}
	if len(enc) == 0 {
		return types.Account{}, false
	}
	var acct types.Account
	if err := rlp.DecodeBytes(enc, &acct); err != nil {
		log.Error("failed to decode account", "addr", addr, "err", err)
		return types.Account{}, false
	}
	return acct, true
}

// SetAccount encodes and writes acct at addr.
func (s *StateDB) SetAccount(addr common.Address, acct types.Account) error {
	enc, err := rlp.EncodeToBytes(&acct)
	if err != nil {
		return err
	}
	return s.accounts.TryUpdate(addr.Bytes(), enc)
}

// Transfer moves amount from from's account to to's account. Missing
// accounts default to the canonical zero-value account before the balance
// check is applied. Transfer faults with ErrInsufficientFunds rather than
// mutating anything when the sender's balance is too low.
func (s *StateDB) Transfer(from, to common.Address, amount *uint256.Int) error {
	sender, ok := s.GetAccount(from)
	if !ok {
		sender = types.NewAccount()
	}
	if sender.Balance.Cmp(amount) < 0 {
		return ErrInsufficientFunds
	}
	receiver, ok := s.GetAccount(to)
	if !ok {
		receiver = types.NewAccount()
	}
	sender.Balance = new(uint256.Int).Sub(sender.Balance, amount)
	receiver.Balance = new(uint256.Int).Add(receiver.Balance, amount)

	if err := s.SetAccount(from, sender); err != nil {
		return err
	}
	return s.SetAccount(to, receiver)
}

// SetStorage writes value under key in addr's per-account storage
// sub-trie, opened (or created empty) from the account's current
// storage_root, commits the sub-trie's nodes into the Journal, and
// rewrites the account with the new sub-trie root.
func (s *StateDB) SetStorage(addr common.Address, key, value common.Hash) error {
	acct, ok := s.GetAccount(addr)
	if !ok {
		acct = types.NewAccount()
	}
	storage, err := trie.New(acct.StorageRoot, s.trieDB)
	if err != nil {
		return err
	}
	enc, err := rlp.EncodeToBytes(value.Bytes())
	if err != nil {
		return err
	}
	if err := storage.TryUpdate(key.Bytes(), enc); err != nil {
		return err
	}
	root, err := storage.Commit()
	if err != nil {
		return err
	}
	acct.StorageRoot = root
	return s.SetAccount(addr, acct)
}

// GetStorage reads the value stored under key in addr's storage sub-trie,
// returning the zero hash for an absent account or an unset key.
func (s *StateDB) GetStorage(addr common.Address, key common.Hash) (common.Hash, error) {
	acct, ok := s.GetAccount(addr)
	if !ok {
		return common.Hash{}, nil
	}
	storage, err := trie.New(acct.StorageRoot, s.trieDB)
	if err != nil {
		return common.Hash{}, err
	}
	enc, err := storage.TryGet(key.Bytes())
	if err != nil {
		return common.Hash{}, err
	}
	if len(enc) == 0 {
		return common.Hash{}, nil
	}
	_, content, _, err := rlp.Split(enc)
	if err != nil {
		return common.Hash{}, err
	}
	return common.BytesToHash(content), nil
}

// Snapshot opens a new Journal revert mark covering subsequent account and
// storage mutations, and records the account trie's current root so Revert
// can restore the live trie object, not just the Journal's backing cache.
func (s *StateDB) Snapshot() int {
	id := s.journal.Snapshot()
	s.roots[id] = s.accounts.Hash()
	return id
}

// Revert undoes every account and storage mutation recorded since id. This
// reverts both the Journal (the trie nodes' durability boundary) and the
// live accounts trie itself, by re-opening it at the root captured when id
// was taken — SetAccount/SetStorage mutate the trie's in-memory node graph
// directly, ahead of any Journal write, so reverting the Journal alone
// would leave reads through the trie unaffected.
func (s *StateDB) Revert(id int) {
	s.journal.Revert(id)
	root, ok := s.roots[id]
	if !ok {
		return
	}
	accounts, err := trie.New(root, s.trieDB)
	if err != nil {
		log.Error("failed to reopen account trie on revert", "root", root, "err", err)
		return
	}
	s.accounts = accounts
	for mark := range s.roots {
		if mark >= id {
			delete(s.roots, mark)
		}
	}
}

// Commit hashes the account trie, flushes its dirty nodes into the Journal
// (storage sub-trie nodes are already there, written by SetStorage), then flushes
// the Journal itself down to the backing key-value store, and returns the
// resulting state root.
func (s *StateDB) Commit(id int) (common.Hash, error) {
	root, err := s.accounts.Commit()
	if err != nil {
		return common.Hash{}, err
	}
	if err := s.journal.Commit(id); err != nil {
		return common.Hash{}, err
	}
	for mark := range s.roots {
		if mark <= id {
			delete(s.roots, mark)
		}
	}
	return root, nil
}

// Root returns the current (possibly uncommitted) root hash of the
// account trie.
func (s *StateDB) Root() common.Hash { return s.accounts.Hash() }
