//go:build !nocache

package main

import (
	"encoding/json"
	"time"

	"github.com/dgraph-io/badger/v4"
)

var cache Cache

// Cache is a thin wrapper over badger holding the site message and
// rendered-page fragments.
type Cache struct {
	*badger.DB
}

func (c *Cache) initialize(path string) func() error {
	db, err := badger.Open(badger.DefaultOptions(path).WithLogger(nil))
	if err != nil {
		log.Fatal().Err(err).Msgf("failed to open badger at %s", path)
	}
	c.DB = db
	return db.Close
}

func (c *Cache) Get(key string) ([]byte, bool) {
	var val []byte
	err := c.DB.View(func(txn *badger.Txn) error {
		b, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}

		val, err = b.ValueCopy(nil)
		return err
	})

	if err == badger.ErrKeyNotFound {
		return nil, false
	}
	if err != nil {
		panic(err)
	}

	return val, true
}

func (c *Cache) GetJSON(key string, recv any) bool {
	b, ok := c.Get(key)
	if !ok {
		return false
	}
	if err := json.Unmarshal(b, recv); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to decode cached json")
		return false
	}
	return true
}

func (c *Cache) Set(key string, value []byte) {
	err := c.DB.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), value)
	})
	if err != nil {
		panic(err)
	}
}

func (c *Cache) SetJSON(key string, value any) {
	b, err := json.Marshal(value)
	if err != nil {
		panic(err)
	}
	c.Set(key, b)
}

func (c *Cache) SetWithTTL(key string, value []byte, ttl time.Duration) {
	err := c.DB.Update(func(txn *badger.Txn) error {
		return txn.SetEntry(badger.NewEntry([]byte(key), value).WithTTL(ttl))
	})
	if err != nil {
		panic(err)
	}
}

func (c *Cache) Delete(key string) {
	err := c.DB.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
	if err != nil {
		panic(err)
	}
}
