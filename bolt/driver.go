package bolt

import (
	"errors"
	"time"

	"github.com/boltdb/bolt"
)

var storeBucket = []byte("store")

// Driver wraps the bolt database behind a flat key-value contract:
// string keys, opaque values, no atomicity across keys. Every repository
// keeps its whole collection JSON-encoded under a single key, mirroring
// the storage layout of the original browser profile.
type Driver struct {
	store *bolt.DB
}

// Open opens the connection to the bolt database defined by path.
func (d *Driver) Open(path string) error {
	if d.store != nil {
		return errors.New("store already open")
	}

	store, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return err
	}

	err = store.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(storeBucket)
		return err
	})
	if err != nil {
		return err
	}

	d.store = store
	return nil
}

// Close closes the underlying database.
func (d *Driver) Close() error {
	if d.store != nil {
		err := d.store.Close()
		d.store = nil
		return err
	}
	return nil
}

// Get retrieves the value stored under key. It returns nil when the key
// is absent.
func (d *Driver) Get(key string) ([]byte, error) {
	var value []byte
	err := d.store.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(storeBucket).Get([]byte(key))
		if data == nil {
			return nil
		}

		// data is only valid for the duration of the transaction.
		value = make([]byte, len(data))
		copy(value, data)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return value, nil
}

func (d *Driver) Put(key string, value []byte) error {
	return d.store.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(storeBucket).Put([]byte(key), value)
	})
}

func (d *Driver) Delete(key string) error {
	return d.store.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(storeBucket).Delete([]byte(key))
	})
}
