package linkedlist

import "errors"

var (
	ErrEmpty           = errors.New("linkedlist: list is empty")
	ErrIndexOutOfRange = errors.New("linkedlist: index out of range")
)
