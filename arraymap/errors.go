package arraymap

import (
	"github.com/pkg/errors"
)

var (
	ErrKeyNotFound  = errors.New("key not found")
	ErrDuplicateKey = errors.New("duplicate key")
)

func keyNotFound(key any) error {
	return errors.Wrapf(ErrKeyNotFound, "key %v", key)
}
