package orm

import (
	"testing"

	"github.com/iov-one/xregister"
	"github.com/iov-one/xregister/errors"
	"github.com/iov-one/xregister/store"
	"github.com/iov-one/xregister/weavetest/assert"
)

func TestModelBucket(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("cnts", &counter{})

	var c counter
	assert.IsErr(t, errors.ErrNotFound, b.One(db, []byte("c1"), &c))
	assert.IsErr(t, errors.ErrNotFound, b.Has(db, []byte("c1")))

	assert.Nil(t, b.Put(db, []byte("c1"), &counter{Count: "1"}))
	assert.Nil(t, b.Has(db, []byte("c1")))
	assert.Nil(t, b.One(db, []byte("c1"), &c))
	assert.Equal(t, "1", c.Count)

	// last write wins
	assert.Nil(t, b.Put(db, []byte("c1"), &counter{Count: "2"}))
	assert.Nil(t, b.One(db, []byte("c1"), &c))
	assert.Equal(t, "2", c.Count)

	// stored under the bucket prefix
	raw, err := db.Get([]byte("cnts:c1"))
	assert.Nil(t, err)
	assert.Equal(t, []byte("2"), raw)

	assert.Nil(t, b.Delete(db, []byte("c1")))
	assert.IsErr(t, errors.ErrNotFound, b.Delete(db, []byte("c1")))
}

func TestModelBucketRejectsInvalidModel(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("cnts", &counter{})

	assert.IsErr(t, errors.ErrEmpty, b.Put(db, []byte("c1"), &counter{}))
	assert.IsErr(t, errors.ErrType, b.Put(db, []byte("c1"), &other{}))
	assert.IsErr(t, errors.ErrType, b.One(db, []byte("c1"), &other{}))
}

func TestModelBucketQuery(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("cnts", &counter{})
	qr := xregister.NewQueryRouter()
	b.Register("counters", qr)

	assert.Nil(t, b.Put(db, []byte("c1"), &counter{Count: "7"}))

	res, err := qr.Query(db, "/counters", []byte("c1"))
	assert.Nil(t, err)
	assert.Equal(t, []xregister.Model{xregister.Pair([]byte("cnts:c1"), []byte("7"))}, res)

	res, err = qr.Query(db, "/counters", []byte("missing"))
	assert.Nil(t, err)
	assert.Equal(t, 0, len(res))
}

func TestBucketNameValidation(t *testing.T) {
	assert.Panics(t, func() { NewModelBucket("x", &counter{}) })
	assert.Panics(t, func() { NewModelBucket("Capital", &counter{}) })
	assert.Panics(t, func() { NewModelBucket("cnts", counterValue{}) })
}

type counter struct {
	Count string
}

func (c *counter) Marshal() ([]byte, error) { return []byte(c.Count), nil }
func (c *counter) Unmarshal(raw []byte) error {
	c.Count = string(raw)
	return nil
}
func (c *counter) Validate() error {
	if c.Count == "" {
		return errors.Wrap(errors.ErrEmpty, "count")
	}
	return nil
}

type other struct{ counter }

type counterValue struct{}

func (counterValue) Marshal() ([]byte, error) { return nil, nil }
func (counterValue) Unmarshal([]byte) error   { return nil }
func (counterValue) Validate() error          { return nil }
