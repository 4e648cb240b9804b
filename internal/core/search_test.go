package core_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Rorical/RoriSelect/internal/core"
	"github.com/Rorical/RoriSelect/internal/option"
)

func opts(labels ...[2]string) []option.Option {
	out := make([]option.Option, 0, len(labels))
	for i, l := range labels {
		out = append(out, option.Option{
			PrimaryLabel:   l[0],
			SecondaryLabel: l[1],
			SourceKey:      string(rune('a' + i)),
		})
	}
	return out
}

func primaries(list []option.Option) []string {
	out := make([]string, 0, len(list))
	for _, o := range list {
		out = append(out, o.PrimaryLabel)
	}
	return out
}

func TestFilter(t *testing.T) {
	list := opts(
		[2]string{"Apple", "Fruit"},
		[2]string{"Banana", "Yellow fruit"},
		[2]string{"Carrot", "Vegetable"},
		[2]string{"Pineapple", "Tropical"},
	)

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"EmptyKeepsAll", "", []string{"Apple", "Banana", "Carrot", "Pineapple"}},
		{"BlankKeepsAll", "   ", []string{"Apple", "Banana", "Carrot", "Pineapple"}},
		{"PrimarySubstring", "apple", []string{"Apple", "Pineapple"}},
		{"SecondarySubstring", "fruit", []string{"Apple", "Banana"}},
		{"EitherField", "a", []string{"Apple", "Banana", "Carrot", "Pineapple"}},
		{"NoMatch", "zzz", []string{}},
		{"TrimmedQuery", "  carrot ", []string{"Carrot"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, primaries(core.Filter(list, tt.query)))
		})
	}
}

func TestFilter_CaseInsensitive(t *testing.T) {
	list := opts(
		[2]string{"Straße", "Street"},
		[2]string{"ÉCOLE", "school"},
		[2]string{"label1", "secondLabel1"},
	)

	for _, q := range []string{"straße", "école", "Label", "SECOND"} {
		lower := core.Filter(list, strings.ToLower(q))
		upper := core.Filter(list, strings.ToUpper(q))
		assert.Equal(t, primaries(lower), primaries(upper), "query %q", q)
		assert.NotEmpty(t, lower, "query %q", q)
	}
}

func TestFilter_Idempotent(t *testing.T) {
	list := opts([2]string{"Apple", "Fruit"}, [2]string{"Banana", "Fruit"}, [2]string{"Carrot", "Root"})
	once := core.Filter(list, "an")
	assert.Equal(t, once, core.Filter(once, "an"))
}

func TestHasExactMatch(t *testing.T) {
	list := opts([2]string{"Apple", "Fruit"}, [2]string{"Banana", "Fruit"})

	assert.True(t, core.HasExactMatch(list, "Apple"))
	assert.True(t, core.HasExactMatch(list, "  aPPLE "))
	assert.False(t, core.HasExactMatch(list, "Appl"))
	assert.False(t, core.HasExactMatch(list, "Fruit"), "secondary labels never count")
}
