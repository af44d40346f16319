package curve

import "errors"

var (
	ErrBadData   = errors.New("bad data")
	ErrBadFormat = errors.New("bad format")
)
