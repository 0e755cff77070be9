package store

import "errors"

var (
	ErrDuplicateTitle = errors.New("a suggestion with that title already exists")
	ErrNotFound       = errors.New("not found")
	ErrNotOwner       = errors.New("not the owner of that entry")
)
