package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToInt(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want int
	}{
		{"int", 5, 5},
		{"int64", int64(7), 7},
		{"uint8", uint8(3), 3},
		{"int32 via fallback", int32(11), 11},
		{"float", 2.9, 2},
		{"string", " 42 ", 42},
		{"bytes", []byte("9"), 9},
		{"garbage", "abc", 0},
		{"nil", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToInt(tt.in))
		})
	}
}

func TestToBool(t *testing.T) {
	assert.True(t, ToBool(true))
	assert.True(t, ToBool("TRUE"))
	assert.True(t, ToBool("yes"))
	assert.True(t, ToBool(1))
	assert.True(t, ToBool([]byte("1")))
	assert.True(t, ToBool(" On "))
	assert.True(t, ToBool(int64(1)))
	assert.False(t, ToBool("no"))
	assert.False(t, ToBool(0))
	assert.False(t, ToBool(nil))
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"png", "svg"}, SplitList(" png, ,svg "))
	assert.Nil(t, SplitList(""))
}

func TestParseScales(t *testing.T) {
	scales, err := ParseScales("1, 2,3")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, scales)

	_, err = ParseScales("1,x")
	assert.Error(t, err)

	_, err = ParseScales("0")
	assert.ErrorContains(t, err, "positive integer")
}
