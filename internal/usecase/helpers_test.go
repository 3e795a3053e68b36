package usecase_test

import (
	"strings"
	"testing"
	"time"

	"minishop/internal/usecase"

	"github.com/stretchr/testify/assert"
)

func assertErrContains(t *testing.T, err error, wantSubstr string) {
	t.Helper()
	if assert.Error(t, err) {
		assert.True(t, strings.Contains(err.Error(), wantSubstr), "err=%q want contains %q", err.Error(), wantSubstr)
	}
}

func assertStatus(t *testing.T, err error, want int) {
	t.Helper()
	he, ok := usecase.AsHTTPError(err)
	if assert.True(t, ok, "err=%v is not HTTPError", err) {
		assert.Equal(t, want, he.Status)
	}
}

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

// bcryptを回さないhasher
type fakeHasher struct{ err error }

func (h fakeHasher) Hash(plain string) (string, error) {
	if h.err != nil {
		return "", h.err
	}
	return "hashed:" + plain, nil
}
