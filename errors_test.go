package solanamcp

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistrationError(t *testing.T) {
	root := errors.New("tool already registered")
	err := &RegistrationError{Tool: "get_balance", Err: root}

	require.Equal(
		t,
		`failed to register tool "get_balance": tool already registered`,
		err.Error(),
	)
	require.ErrorIs(t, err, root)
}

func TestRegistrationErrorWrapsSentinels(t *testing.T) {
	err := &RegistrationError{Tool: "x", Err: ErrDuplicateTool}

	require.ErrorIs(t, err, ErrDuplicateTool)
	require.NotErrorIs(t, err, ErrEmptyToolName)
	require.NotErrorIs(t, err, ErrNilToolHandler)
}
