package orm

import (
	"fmt"
	"reflect"
	"regexp"

	"github.com/iov-one/xregister"
	"github.com/iov-one/xregister/errors"
)

var isBucketName = regexp.MustCompile(`^[a-z_]{3,10}$`).MatchString

// Model is a value that a ModelBucket can store.
type Model interface {
	Marshal() ([]byte, error)
	Unmarshal([]byte) error
	Validate() error
}

// ModelBucket stores models of a single type under a name prefix.
type ModelBucket struct {
	name   string
	prefix []byte
	model  reflect.Type
}

var _ xregister.QueryHandler = ModelBucket{}

// NewModelBucket returns a bucket storing models of the type of m, which
// must be a pointer. It panics if name is not 3 to 10 lowercase letters.
func NewModelBucket(name string, m Model) ModelBucket {
	if !isBucketName(name) {
		panic(fmt.Sprintf("Illegal bucket: %s", name))
	}
	tp := reflect.TypeOf(m)
	if tp.Kind() != reflect.Ptr {
		panic(fmt.Sprintf("model must be a pointer, got %T", m))
	}
	return ModelBucket{
		name:   name,
		prefix: append([]byte(name), ':'),
		model:  tp,
	}
}

// DBKey returns the database key of given model key. The result never
// shares memory with the bucket prefix.
func (b ModelBucket) DBKey(key []byte) []byte {
	l := len(b.prefix)
	out := make([]byte, l+len(key))
	copy(out, b.prefix)
	copy(out[l:], key)
	return out
}

// One loads the model stored under key into dest. It returns ErrNotFound
// if there is none, and ErrType if dest is not of the bucket model type.
func (b ModelBucket) One(db xregister.ReadOnlyKVStore, key []byte, dest Model) error {
	if reflect.TypeOf(dest) != b.model {
		return errors.Wrapf(errors.ErrType, "%s cannot be represented as %T", b.model, dest)
	}
	raw, err := db.Get(b.DBKey(key))
	if err != nil {
		return errors.Wrap(err, "cannot read from the database")
	}
	if raw == nil {
		return errors.Wrapf(errors.ErrNotFound, "%T not in the store", dest)
	}
	if err := dest.Unmarshal(raw); err != nil {
		return errors.Wrapf(errors.ErrModel, "cannot unmarshal: %s", err)
	}
	return nil
}

// Has returns ErrNotFound unless a model is stored under key.
func (b ModelBucket) Has(db xregister.ReadOnlyKVStore, key []byte) error {
	ok, err := db.Has(b.DBKey(key))
	if err != nil {
		return errors.Wrap(err, "cannot read from the database")
	}
	if !ok {
		return errors.ErrNotFound
	}
	return nil
}

// Put validates m and stores it under key, replacing any previous model.
func (b ModelBucket) Put(db xregister.KVStore, key []byte, m Model) error {
	if reflect.TypeOf(m) != b.model {
		return errors.Wrapf(errors.ErrType, "bucket %q cannot store %T", b.name, m)
	}
	if err := m.Validate(); err != nil {
		return errors.Wrap(err, "invalid model")
	}
	raw, err := m.Marshal()
	if err != nil {
		return errors.Wrapf(errors.ErrModel, "cannot marshal: %s", err)
	}
	if raw == nil {
		// A model with all fields empty is still present.
		raw = []byte{}
	}
	if err := db.Set(b.DBKey(key), raw); err != nil {
		return errors.Wrap(err, "cannot store in the database")
	}
	return nil
}

// Delete removes the model stored under key. It returns ErrNotFound if
// there is none.
func (b ModelBucket) Delete(db xregister.KVStore, key []byte) error {
	if err := b.Has(db, key); err != nil {
		return err
	}
	return db.Delete(b.DBKey(key))
}

// Register serves the bucket at "/"+name, or at the bucket name if name is
// empty.
func (b ModelBucket) Register(name string, r xregister.QueryRouter) {
	if name == "" {
		name = b.name
	}
	r.Register("/"+name, b)
}

// Query returns the raw model stored under the queried key, or nothing.
func (b ModelBucket) Query(db xregister.ReadOnlyKVStore, data []byte) ([]xregister.Model, error) {
	key := b.DBKey(data)
	value, err := db.Get(key)
	if err != nil {
		return nil, err
	}
	if value == nil {
		return nil, nil
	}
	return []xregister.Model{xregister.Pair(key, value)}, nil
}
