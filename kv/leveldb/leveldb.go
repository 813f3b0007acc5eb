// Package leveldb backs kv.Store with a durable on-disk LevelDB instance,
// the concrete "durable key-value store" external collaborator the world
// state and trie database are written against.
package leveldb

import (
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/errors"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/util"

	"github.com/coreumchain/coreum/kv"
)

// Database wraps a goleveldb instance behind the kv.Store interface.
type Database struct {
	db *leveldb.DB
}

// New opens (creating if necessary) a LevelDB store at path.
func New(path string, cache, handles int) (*Database, error) {
	db, err := leveldb.OpenFile(path, &opt.Options{
		OpenFilesCacheCapacity: handles,
		BlockCacheCapacity:     cache / 2 * opt.MiB,
		WriteBuffer:            cache / 4 * opt.MiB,
	})
	if err != nil {
		return nil, err
	}
	return &Database{db: db}, nil
}

func (d *Database) Get(key []byte) ([]byte, error) {
	v, err := d.db.Get(key, nil)
	if err == errors.ErrNotFound {
		return nil, kv.ErrNotFound
	}
	return v, err
}

func (d *Database) Put(key, value []byte) error {
	return d.db.Put(key, value, nil)
}

func (d *Database) Delete(key []byte) error {
	return d.db.Delete(key, nil)
}

func (d *Database) Has(key []byte) (bool, error) {
	return d.db.Has(key, nil)
}

func (d *Database) Close() error {
	return d.db.Close()
}

func (d *Database) NewBatch() kv.Batch {
	return &batch{db: d.db, b: new(leveldb.Batch)}
}

func (d *Database) NewIterator(prefix, start []byte) kv.Iterator {
	rng := util.BytesPrefix(prefix)
	if start != nil {
		rng.Start = append(append([]byte{}, prefix...), start...)
	}
	return &iter{iter: d.db.NewIterator(rng, nil)}
}

type batch struct {
	db   *leveldb.DB
	b    *leveldb.Batch
	size int
}

func (b *batch) Put(key, value []byte) error {
	b.b.Put(key, value)
	b.size += len(key) + len(value)
	return nil
}

func (b *batch) Delete(key []byte) error {
	b.b.Delete(key)
	b.size += len(key)
	return nil
}

func (b *batch) ValueSize() int { return b.size }

func (b *batch) Write() error {
	return b.db.Write(b.b, nil)
}

func (b *batch) Reset() {
	b.b.Reset()
	b.size = 0
}

type iter struct {
	iter iterator
}

type iterator interface {
	Next() bool
	Key() []byte
	Value() []byte
	Release()
}

func (it *iter) Next() bool    { return it.iter.Next() }
func (it *iter) Key() []byte   { return it.iter.Key() }
func (it *iter) Value() []byte { return it.iter.Value() }
func (it *iter) Release()      { it.iter.Release() }
