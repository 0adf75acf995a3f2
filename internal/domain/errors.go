package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrNotFound            = errors.New("not found")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrStorage             = errors.New("storage failure")

	ErrAccountNotFound = fmt.Errorf("account %w", ErrNotFound)
	ErrItemNotFound    = fmt.Errorf("item %w", ErrNotFound)
)

// StorageError wraps err as ErrStorage unless it already carries a known kind.
func StorageError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, ErrInvalidInput),
		errors.Is(err, ErrNotFound),
		errors.Is(err, ErrInsufficientBalance),
		errors.Is(err, ErrStorage):
		return err
	}
	return fmt.Errorf("%w: %w", ErrStorage, err)
}
