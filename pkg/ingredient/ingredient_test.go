package ingredient

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_DropsBlankLines(t *testing.T) {
	lines := Parse("2 eggs\n1 cup flour\n\n1 tsp salt")

	assert.Equal(t, []string{"2 eggs", "1 cup flour", "1 tsp salt"}, Texts(lines))
	for i, l := range lines {
		assert.Equal(t, i, l.Index)
		assert.NotEmpty(t, l.Key)
	}
}

func TestParse_TrimsWhitespaceAndCarriageReturns(t *testing.T) {
	lines := Parse("  butter \r\n\t\r\nsugar\r\n   ")
	assert.Equal(t, []string{"butter", "sugar"}, Texts(lines))
}

func TestParse_Empty(t *testing.T) {
	assert.Empty(t, Parse(""))
	assert.Empty(t, Parse("\n \n\t"))
}

func TestParse_DuplicateLinesGetDistinctKeys(t *testing.T) {
	lines := Parse("1 egg\nmilk\n1 egg")
	require.Len(t, lines, 3)
	assert.NotEqual(t, lines[0].Key, lines[2].Key)
}

func TestKeysAreStableAcrossEdits(t *testing.T) {
	before := Parse("2 eggs\n1 cup flour\n1 tsp salt")
	after := Parse("a pinch of love\n2 eggs\n1 cup flour\n1 tsp salt")

	// 选择 "1 tsp salt"：行号已变化，但 key 依旧指向同一行
	found, missing := Resolve(after, []string{before[2].Key})
	assert.Empty(t, missing)
	require.Len(t, found, 1)
	assert.Equal(t, "1 tsp salt", found[0].Text)
	assert.Equal(t, 3, found[0].Index)
}

func TestResolve_UnknownAndRepeatedKeys(t *testing.T) {
	lines := Parse("2 eggs\n1 cup flour")

	found, missing := Resolve(lines, []string{lines[1].Key, "deadbeef", lines[1].Key})
	require.Len(t, found, 1)
	assert.Equal(t, "1 cup flour", found[0].Text)
	assert.Equal(t, []string{"deadbeef", lines[1].Key}, missing)
}

func TestResolve_RemovedLine(t *testing.T) {
	before := Parse("2 eggs\n1 cup flour")
	after := Parse("2 eggs")

	found, missing := Resolve(after, []string{before[1].Key})
	assert.Empty(t, found)
	assert.Equal(t, []string{before[1].Key}, missing)
}
