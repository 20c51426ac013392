package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/reasonit/core"
)

func TestQuery_Normalized(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		q := Query{}.normalized(DefaultLimit)
		assert.Zero(t, q.Offset)
		assert.Equal(t, DefaultLimit, q.Limit)
	})

	t.Run("query text alias folds into text", func(t *testing.T) {
		q := Query{QueryText: "entropy"}.normalized(DefaultLimit)
		assert.Equal(t, "entropy", q.Text)
		assert.Empty(t, q.QueryText)
	})

	t.Run("text wins over query text", func(t *testing.T) {
		q := Query{Text: "entropy", QueryText: "enthalpy"}.normalized(DefaultLimit)
		assert.Equal(t, "entropy", q.Text)
	})

	t.Run("mode alias merges into modes", func(t *testing.T) {
		q := Query{Mode: core.ModePhysics}.normalized(DefaultLimit)
		assert.Equal(t, []core.Mode{core.ModePhysics}, q.Modes)
		assert.Zero(t, q.Mode)
	})

	t.Run("mode alias does not duplicate", func(t *testing.T) {
		q := Query{
			Mode:  core.ModePhysics,
			Modes: []core.Mode{core.ModePhysics, core.ModeCausal},
		}.normalized(DefaultLimit)
		assert.Equal(t, []core.Mode{core.ModePhysics, core.ModeCausal}, q.Modes)
	})

	t.Run("negative offset clamps to zero", func(t *testing.T) {
		q := Query{Offset: -5}.normalized(DefaultLimit)
		assert.Zero(t, q.Offset)
	})

	t.Run("non-positive limit gets default", func(t *testing.T) {
		assert.Equal(t, 7, Query{Limit: 0}.normalized(7).Limit)
		assert.Equal(t, 7, Query{Limit: -1}.normalized(7).Limit)
		assert.Equal(t, 3, Query{Limit: 3}.normalized(7).Limit)
	})
}

func TestQuery_HasText(t *testing.T) {
	assert.False(t, Query{}.hasText())
	assert.False(t, Query{Text: "   "}.hasText())
	assert.True(t, Query{Text: "entropy"}.hasText())
	assert.True(t, Query{Text: "!!!"}.hasText())
}

func TestParseSort(t *testing.T) {
	tests := []struct {
		input   string
		want    Sort
		wantErr bool
	}{
		{input: "", want: ""},
		{input: "relevance", want: SortRelevance},
		{input: "date", want: SortDate},
		{input: "title", want: SortTitle},
		{input: " Date ", want: SortDate},
		{input: "TITLE", want: SortTitle},
		{input: "shuffle", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSort(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownSort)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
