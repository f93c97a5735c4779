package selmap_test

import (
	"encoding/json"
	"testing"

	"github.com/selmap/selmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue_String(t *testing.T) {
	t.Parallel()

	t.Run("joined value renders its text", func(t *testing.T) {
		t.Parallel()

		v := selmap.Value{Text: "Paras1\nParas2", Joined: true}

		assert.Equal(t, "Paras1\nParas2", v.String())
	})

	t.Run("sequence value joins parts with newlines", func(t *testing.T) {
		t.Parallel()

		v := selmap.Value{Parts: []string{"one", "two"}}

		assert.Equal(t, "one\ntwo", v.String())
	})

	t.Run("failed value renders the error marker", func(t *testing.T) {
		t.Parallel()

		v := selmap.Value{Err: selmap.Errorf(selmap.ENOTFOUND, "NOT FOUND")}

		assert.Equal(t, "ERROR: NOT FOUND", v.String())
	})
}

func TestValue_MarshalJSON(t *testing.T) {
	t.Parallel()

	t.Run("joined value encodes as a string", func(t *testing.T) {
		t.Parallel()

		b, err := json.Marshal(selmap.Value{Text: "Linkas", Joined: true})

		require.NoError(t, err)
		assert.JSONEq(t, `"Linkas"`, string(b))
	})

	t.Run("sequence value encodes as an array", func(t *testing.T) {
		t.Parallel()

		b, err := json.Marshal(selmap.Value{Parts: []string{"a", "b"}})

		require.NoError(t, err)
		assert.JSONEq(t, `["a","b"]`, string(b))
	})

	t.Run("empty sequence encodes as an empty array, not null", func(t *testing.T) {
		t.Parallel()

		b, err := json.Marshal(selmap.Value{})

		require.NoError(t, err)
		assert.JSONEq(t, `[]`, string(b))
	})

	t.Run("failed value encodes as the error marker string", func(t *testing.T) {
		t.Parallel()

		b, err := json.Marshal(selmap.Value{Err: selmap.Errorf(selmap.EINVALID, "bad selector")})

		require.NoError(t, err)
		assert.JSONEq(t, `"ERROR: bad selector"`, string(b))
	})
}

func TestResults_Names(t *testing.T) {
	t.Parallel()

	r := selmap.Results{
		"z": {Text: "last", Joined: true},
		"a": {Text: "first", Joined: true},
		"m": {Text: "middle", Joined: true},
	}

	assert.Equal(t, []string{"a", "m", "z"}, r.Names())
}
