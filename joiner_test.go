package pretty_test

import (
	"bytes"
	"slices"
	"testing"

	"github.com/shapely/pretty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJoiner(t *testing.T) {
	t.Parallel()
	t.Run("separator after first", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		j := pretty.NewJoiner(&buf, " | ")
		for _, v := range []int{1, 2, 3} {
			require.NoError(t, j.Add(v))
		}
		assert.Equal(t, "1 | 2 | 3", buf.String())
	})
	t.Run("single value has no separator", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		j := pretty.NewJoiner(&buf, ", ")
		require.NoError(t, j.Add(1))
		assert.Equal(t, "1", buf.String())
	})
	t.Run("values count as nested", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		j := pretty.NewJoiner(&buf, ", ")
		require.NoError(t, j.Add("one"))
		require.NoError(t, j.Add("two"))
		assert.Equal(t, `"one", "two"`, buf.String())
	})
	t.Run("renders containers", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		j := pretty.New().Joiner(&buf, "; ")
		require.NoError(t, j.Add([]int{1, 2}))
		require.NoError(t, j.Add(point{3, 4}))
		assert.Equal(t, "[1, 2]; (3, 4)", buf.String())
	})
	t.Run("write error", func(t *testing.T) {
		t.Parallel()
		j := pretty.NewJoiner(failWriter{}, ", ")
		assert.ErrorIs(t, j.Add(1), errWriteFailed)
	})
}

func TestWriteSeq(t *testing.T) {
	t.Parallel()
	t.Run("ints", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		require.NoError(t, pretty.WriteSeq(&buf, slices.Values([]int{1, 2, 3})))
		assert.Equal(t, "[1, 2, 3]", buf.String())
	})
	t.Run("strings quoted", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		require.NoError(t, pretty.WriteSeq(&buf, slices.Values([]string{"a"})))
		assert.Equal(t, `["a"]`, buf.String())
	})
	t.Run("empty", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		require.NoError(t, pretty.WriteSeq(&buf, slices.Values([]int{})))
		assert.Equal(t, "[]", buf.String())
	})
	t.Run("options apply", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		seq := slices.Values([]string{"a"})
		require.NoError(t, pretty.WriteSeq(&buf, seq, pretty.WithoutQuotes()))
		assert.Equal(t, "[a]", buf.String())
	})
}
