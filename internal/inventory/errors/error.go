// Package errors provides the error values reported by inventory operations.
package errors

import "errors"

// Input rejections. Each one aborts the current command and the loop continues.
var (
	ErrInvalidPrice        = errors.New("price must be a number")
	ErrEmptyName           = errors.New("name cannot be empty")
	ErrInvalidCount        = errors.New("number of products to see must be a number")
	ErrUnrecognizedCommand = errors.New("unrecognized command")
)
