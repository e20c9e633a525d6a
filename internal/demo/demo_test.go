package demo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoot(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in     float64
		want   float64
		wantOK bool
	}{
		{16, 4, true},
		{0, 0, true},
		{2, math.Sqrt2, true},
		{-1, 0, false},
		{math.NaN(), 0, false},
	}
	for _, tc := range cases {
		got, ok := Root(tc.in)
		assert.Equal(t, tc.wantOK, ok, "Root(%v)", tc.in)
		assert.InDelta(t, tc.want, got, 1e-12, "Root(%v)", tc.in)
	}
}

func TestDivide(t *testing.T) {
	t.Parallel()

	q, ok := Divide(10, 4)
	require.True(t, ok)
	assert.Equal(t, 2.5, q)

	_, ok = Divide(1, 0)
	assert.False(t, ok)
}

func TestFindUser(t *testing.T) {
	t.Parallel()

	users := SampleUsers()

	t.Run("by id", func(t *testing.T) {
		u, err := FindUser(users, "id", "2")
		require.NoError(t, err)
		assert.Equal(t, "John", u.First)
	})

	t.Run("first match wins", func(t *testing.T) {
		u, err := FindUser(users, "last", "Doe")
		require.NoError(t, err)
		assert.Equal(t, "2", u.ID)
	})

	t.Run("no match", func(t *testing.T) {
		_, err := FindUser(users, "first", "Nobody")
		require.ErrorIs(t, err, ErrUserNotFound)
		assert.Contains(t, err.Error(), "cannot find a user with first: Nobody")
	})

	t.Run("unknown key", func(t *testing.T) {
		_, err := FindUser(users, "email", "x@example.com")
		assert.ErrorIs(t, err, ErrUnknownKey)
	})
}
