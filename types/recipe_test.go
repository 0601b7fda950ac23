package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagListUnmarshal(t *testing.T) {
	cases := map[string][]string{
		`{"tags":["vegan","quick"]}`:     {"vegan", "quick"},
		`{"tags":"vegan, quick , ,fast"}`: {"vegan", "quick", "fast"},
		`{"tags":""}`:                     {},
	}
	for raw, want := range cases {
		var req RecipeRequest
		require.NoError(t, json.Unmarshal([]byte(raw), &req), raw)
		assert.Equal(t, want, []string(req.Tags), raw)
	}

	var req RecipeRequest
	assert.Error(t, json.Unmarshal([]byte(`{"tags":12}`), &req))
}

func TestPageQueryNormalize(t *testing.T) {
	assert.Equal(t, 1, PageQuery{}.Normalize())
	assert.Equal(t, 1, PageQuery{Page: -3}.Normalize())
	assert.Equal(t, 4, PageQuery{Page: 4}.Normalize())
}

func TestNewPage(t *testing.T) {
	p := NewPage[int](nil, 13, 2, 6)
	assert.NotNil(t, p.List)
	assert.True(t, p.HasNext)

	p = NewPage([]int{1}, 13, 3, 6)
	assert.False(t, p.HasNext)
}
