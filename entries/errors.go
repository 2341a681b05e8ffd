package entries

import "errors"

var (
	ErrEmptyUsername   = errors.New("entries: username is empty")
	ErrUsernameTooLong = errors.New("entries: username does not fit a field element")
	ErrBadBalance      = errors.New("entries: balance must be a non negative decimal integer")
	ErrBadSalt         = errors.New("entries: salt must be a non negative decimal integer")
	ErrBadRecord       = errors.New("entries: record must have 2 or 3 columns")
	ErrNoEntries       = errors.New("entries: no entries")
)
