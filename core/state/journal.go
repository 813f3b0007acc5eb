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

import "github.com/coreumchain/coreum/kv"

// entry is a value held in the journal's write-through cache. tombstone
// distinguishes an explicit delete from a key that was never written, so
// "absent" and "deleted" never collapse to the same empty-bytes sentinel.
type entry struct {
	value     []byte
	tombstone bool
}

// change is one append-only journal record: the prior value of key at the
// moment it was overwritten, tagged with the snapshot epoch open at the
// time so Revert/Commit know which records they own.
type change struct {
	snapshot int
	key      string
	prior    entry
	hadPrior bool // false if key had no cache entry before this write
}

// Journal is a write-through cache over a backing kv.Store, with
// monotonically increasing snapshot ids and O(1) revert-to-mark support.
//
// Journal is not safe for concurrent use; callers sharing a Journal across
// goroutines must serialize snapshot/commit/revert themselves (spec's
// single-writer concurrency model).
type Journal struct {
	db      kv.Store
	cache   map[string]entry
	entries []change
	marks   []int // snapshot ids currently open, in increasing order
	nextID  int
}

// NewJournal creates a Journal fronting db.
func NewJournal(db kv.Store) *Journal {
	return &Journal{
		db:    db,
		cache: make(map[string]entry),
	}
}

// Get returns the logical current value for key: a cache hit (including a
// tombstone, reported as absent) wins over the backing store.
func (j *Journal) Get(key []byte) ([]byte, bool) {
	if e, ok := j.cache[string(key)]; ok {
		if e.tombstone {
			return nil, false
		}
		return e.value, true
	}
	v, err := j.db.Get(key)
	if err != nil {
		return nil, false
	}
	return v, true
}

// Put writes value for key, recording the pre-image for potential revert.
func (j *Journal) Put(key, value []byte) {
	k := string(key)
	prior, hadPrior := j.cache[k]
	j.entries = append(j.entries, change{snapshot: j.currentSnapshot(), key: k, prior: prior, hadPrior: hadPrior})
	j.cache[k] = entry{value: append([]byte{}, value...)}
}

// Delete marks key as deleted, recording the pre-image for potential revert.
func (j *Journal) Delete(key []byte) {
	k := string(key)
	prior, hadPrior := j.cache[k]
	j.entries = append(j.entries, change{snapshot: j.currentSnapshot(), key: k, prior: prior, hadPrior: hadPrior})
	j.cache[k] = entry{tombstone: true}
}

func (j *Journal) currentSnapshot() int {
	if len(j.marks) == 0 {
		return 0
	}
	return j.marks[len(j.marks)-1]
}

// Snapshot opens a new revert mark and returns its id.
func (j *Journal) Snapshot() int {
	j.nextID++
	id := j.nextID
	j.marks = append(j.marks, id)
	return id
}

// Revert undoes every journal entry tagged with a snapshot id at or after
// id, restoring the cache to the captured prior values, and drops snapshot
// marks at or after id.
func (j *Journal) Revert(id int) {
	i := len(j.entries)
	for i > 0 && j.entries[i-1].snapshot >= id {
		e := j.entries[i-1]
		if e.hadPrior {
			j.cache[e.key] = e.prior
		} else {
			delete(j.cache, e.key)
		}
		i--
	}
	j.entries = j.entries[:i]

	n := 0
	for _, m := range j.marks {
		if m < id {
			j.marks[n] = m
			n++
		}
	}
	j.marks = j.marks[:n]
}

// Commit flushes the current cache value of every key touched by a journal
// entry tagged at or before id to the backing store (deleting on
// tombstone), retains entries tagged after id, and drops snapshot marks at
// or before id. Commit never re-enters revert scope: entries it flushes
// are removed from the log, not merely marked.
func (j *Journal) Commit(id int) error {
	flushed := make(map[string]bool)
	retained := j.entries[:0:0]
	for _, e := range j.entries {
		if e.snapshot > id {
			retained = append(retained, e)
			continue
		}
		if flushed[e.key] {
			continue
		}
		flushed[e.key] = true
		cur := j.cache[e.key]
		if cur.tombstone {
			if err := j.db.Delete([]byte(e.key)); err != nil {
				return err
			}
		} else if err := j.db.Put([]byte(e.key), cur.value); err != nil {
			return err
		}
	}
	j.entries = retained

	n := 0
	for _, m := range j.marks {
		if m > id {
			j.marks[n] = m
			n++
		}
	}
	j.marks = j.marks[:n]
	return nil
}

// Length reports the number of open journal entries, for test assertions.
func (j *Journal) Length() int { return len(j.entries) }
