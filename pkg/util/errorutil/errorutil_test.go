package errorutil

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUnknownUserEchoesUsername(t *testing.T) {
	assert.Equal(t, "User alice not found", NewUnknownUser("alice").Error())
	assert.Equal(t, "User  not found", NewUnknownUser("").Error())
}

func TestNewTicketNotFoundMessage(t *testing.T) {
	err := NewTicketNotFound(99)
	assert.Equal(t, "No ticket found for id 99", err.Error())
	assert.True(t, errors.Is(err, ErrTicketNotFound))
	assert.False(t, errors.Is(err, ErrUnknownUser))
}

func TestSentinelMatchingSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("create: %w", NewInvalidTicket("bad"))
	assert.ErrorIs(t, err, ErrInvalidTicket)
}

func TestToDomainError(t *testing.T) {
	assert.Nil(t, ToDomainError(nil))

	de := ToDomainError(pgx.ErrNoRows)
	require.NotNil(t, de)
	assert.Equal(t, CodeNotFound, de.Code)
	assert.Equal(t, http.StatusNotFound, de.HTTPStatus)

	cause := errors.New("boom")
	de = ToDomainError(cause)
	assert.Equal(t, CodeInternal, de.Code)
	assert.ErrorIs(t, de, cause)
	assert.Equal(t, "internal server error: boom", de.Error())
}
