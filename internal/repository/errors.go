package repository

import (
	"errors"

	"github.com/jackc/pgx/v5"
)

// ErrNotFound signals a missing user or ticket.
var ErrNotFound = errors.New("not found")

func translateErr(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
