package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitListField(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{name: "plain list", raw: "bus,train,taxi", want: []string{"bus", "train", "taxi"}},
		{name: "segments are trimmed", raw: "a, b ,c", want: []string{"a", "b", "c"}},
		{name: "empty segments are preserved", raw: "a,,b", want: []string{"a", "", "b"}},
		{name: "trailing comma yields empty entry", raw: "a,b,", want: []string{"a", "b", ""}},
		{name: "empty input yields one empty entry", raw: "", want: []string{""}},
		{name: "single value", raw: "ferry", want: []string{"ferry"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitListField(tt.raw))
		})
	}
}

func TestJoinListField(t *testing.T) {
	assert.Equal(t, "a, b, c", JoinListField([]string{"a", "b", "c"}))
	assert.Equal(t, "", JoinListField(nil))
}

func TestTripClone_ListFieldsDoNotAlias(t *testing.T) {
	orig := Trip{
		DestinationName:   "Kyoto",
		Images:            []string{"one.jpg", "two.jpg"},
		BestPlacesToVisit: []string{"Fushimi Inari"},
	}

	c := orig.Clone()
	c.Images[0] = "changed.jpg"
	c.BestPlacesToVisit = append(c.BestPlacesToVisit, "Gion")

	assert.Equal(t, "one.jpg", orig.Images[0])
	assert.Len(t, orig.BestPlacesToVisit, 1)
}

func TestAccountIsNew(t *testing.T) {
	assert.True(t, Account{}.IsNew())
	assert.False(t, Account{ID: "u1"}.IsNew())
}
