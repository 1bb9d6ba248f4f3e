package httperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		msg    string
	}{
		{"not owner", ErrNotOwner, http.StatusForbidden, "User must be an owner"},
		{"wrapped not owner", fmt.Errorf("save studio: %w", ErrNotOwner), http.StatusForbidden, "User must be an owner"},
		{"business", New(http.StatusConflict, "CONFLICT", "taken"), http.StatusConflict, "taken"},
		{"unauthorized", ErrUnauthorized, http.StatusUnauthorized, "Token is not valid"},
		{"unknown", errors.New("db down"), http.StatusInternalServerError, "Server error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, msg := StatusFor(tc.err)
			assert.Equal(t, tc.status, status)
			assert.Equal(t, tc.msg, msg)
		})
	}
}
