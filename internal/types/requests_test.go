package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContentParamsValues(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name   string
		params *ContentParams
		want   string
	}{
		{"nil", nil, ""},
		{"empty", &ContentParams{}, ""},
		{"strategy only", &ContentParams{Strategy: StrategyNew}, "strategy=new"},
		{"page only", &ContentParams{Page: 2}, "page=2"},
		{"per page renamed", &ContentParams{PerPage: 30}, "per_page=30"},
		{"explicit zeros omitted", &ContentParams{Page: 0, PerPage: 0, Strategy: StrategyOld}, "strategy=old"},
		{"all", &ContentParams{Page: 3, PerPage: 10, Strategy: StrategyRelevant}, "page=3&per_page=10&strategy=relevant"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, c.params.Values().Encode())
		})
	}
}

func TestContentIsRootAndUserFeatures(t *testing.T) {
	t.Parallel()
	parent := "p1"
	assert.True(t, ContentWithoutBody{ID: "a"}.IsRoot())
	assert.False(t, ContentWithoutBody{ID: "b", ParentID: &parent}.IsRoot())

	u := User{Features: []string{"create:content", "read:session"}}
	assert.True(t, u.HasFeature("read:session"))
	assert.False(t, u.HasFeature("ban:user"))
}

func TestMetricAliases(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []string{"cadastros"}, MetricAliases(MetricUsersCreated))
	assert.Nil(t, MetricAliases(MetricRootContentPublished))
}
