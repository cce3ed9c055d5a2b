package orderedset

import "github.com/pkg/errors"

var (
	ErrEmpty           = errors.New("set is empty")
	ErrNotFound        = errors.New("element not found")
	ErrIndexOutOfRange = errors.New("index out of range")
)
