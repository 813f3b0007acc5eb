// Package memorydb implements an in-memory kv.Store, used by default in
// unit tests and wherever no durable backing store has been configured.
package memorydb

import (
	"sort"
	"sync"

	"github.com/coreumchain/coreum/kv"
)

// Database is an ephemeral map-backed kv.Store.
type Database struct {
	lock sync.RWMutex
	db   map[string][]byte
}

// New creates an empty in-memory store.
func New() *Database {
	return &Database{db: make(map[string][]byte)}
}

func (d *Database) Get(key []byte) ([]byte, error) {
	d.lock.RLock()
	defer d.lock.RUnlock()
	if d.db == nil {
		return nil, kv.ErrNotFound
	}
	v, ok := d.db[string(key)]
	if !ok {
		return nil, kv.ErrNotFound
	}
	return append([]byte{}, v...), nil
}

func (d *Database) Put(key, value []byte) error {
	d.lock.Lock()
	defer d.lock.Unlock()
	d.db[string(key)] = append([]byte{}, value...)
	return nil
}

func (d *Database) Delete(key []byte) error {
	d.lock.Lock()
	defer d.lock.Unlock()
	delete(d.db, string(key))
	return nil
}

func (d *Database) Has(key []byte) (bool, error) {
	d.lock.RLock()
	defer d.lock.RUnlock()
	_, ok := d.db[string(key)]
	return ok, nil
}

func (d *Database) Close() error { return nil }

func (d *Database) NewBatch() kv.Batch {
	return &batch{db: d}
}

func (d *Database) NewIterator(prefix, start []byte) kv.Iterator {
	d.lock.RLock()
	defer d.lock.RUnlock()

	keys := make([]string, 0, len(d.db))
	for k := range d.db {
		if len(prefix) > 0 && (len(k) < len(prefix) || k[:len(prefix)] != string(prefix)) {
			continue
		}
		if len(start) > 0 && k < string(start) {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return &iterator{db: d, keys: keys, pos: -1}
}

type keyValue struct {
	key, value []byte
	deleted    bool
}

type batch struct {
	db     *Database
	writes []keyValue
	size   int
}

func (b *batch) Put(key, value []byte) error {
	b.writes = append(b.writes, keyValue{append([]byte{}, key...), append([]byte{}, value...), false})
	b.size += len(key) + len(value)
	return nil
}

func (b *batch) Delete(key []byte) error {
	b.writes = append(b.writes, keyValue{append([]byte{}, key...), nil, true})
	b.size += len(key)
	return nil
}

func (b *batch) ValueSize() int { return b.size }

func (b *batch) Write() error {
	b.db.lock.Lock()
	defer b.db.lock.Unlock()
	for _, kv := range b.writes {
		if kv.deleted {
			delete(b.db.db, string(kv.key))
			continue
		}
		b.db.db[string(kv.key)] = kv.value
	}
	return nil
}

func (b *batch) Reset() {
	b.writes = b.writes[:0]
	b.size = 0
}

type iterator struct {
	db   *Database
	keys []string
	pos  int
}

func (it *iterator) Next() bool {
	it.pos++
	return it.pos < len(it.keys)
}

func (it *iterator) Key() []byte {
	if it.pos < 0 || it.pos >= len(it.keys) {
		return nil
	}
	return []byte(it.keys[it.pos])
}

func (it *iterator) Value() []byte {
	if it.pos < 0 || it.pos >= len(it.keys) {
		return nil
	}
	it.db.lock.RLock()
	defer it.db.lock.RUnlock()
	return append([]byte{}, it.db.db[it.keys[it.pos]]...)
}

func (it *iterator) Release() {}
