package digester_test

import (
	"testing"

	"github.com/kinbiko/jsonassert"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-leo/digest"
	"github.com/go-leo/digest/digester"
)

func TestJSONCanonicalForm(t *testing.T) {
	d, err := digester.JSON(map[string]any{"b": 2, "a": 1, "c": "x"})
	require.NoError(t, err)

	ja := jsonassert.New(t)
	ja.Assertf(string(d.Digest()), `{"a": 1, "b": 2, "c": "x"}`)
}

func TestJSONMapKeyOrderIsCanonical(t *testing.T) {
	a, err := digester.JSON(map[string]int{"x": 1, "y": 2, "z": 3})
	require.NoError(t, err)
	b, err := digester.JSON(map[string]int{"z": 3, "y": 2, "x": 1})
	require.NoError(t, err)
	assert.True(t, digest.Equals(a, b))
}

func TestJSONStructEquality(t *testing.T) {
	type account struct {
		Owner   string `json:"owner"`
		Balance int64  `json:"balance"`
	}
	a, err := digester.JSON(account{Owner: "alice", Balance: 15})
	require.NoError(t, err)
	b, err := digester.JSON(account{Owner: "alice", Balance: 15})
	require.NoError(t, err)
	c, err := digester.JSON(account{Owner: "alice", Balance: 16})
	require.NoError(t, err)

	assert.True(t, digest.Equals(a, b))
	assert.False(t, digest.Equals(a, c))
}

func TestJSONUnsupportedValue(t *testing.T) {
	_, err := digester.JSON(make(chan int))
	assert.Error(t, err)
}
