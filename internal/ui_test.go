package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGroupCharacters(t *testing.T) {
	cases := []struct {
		in   string
		n    int
		want string
	}{
		{"ABCDEFGHIJ", 5, "ABCDE FGHIJ"},
		{"ABC", 5, "ABC"},
		{"", 5, ""},
		{"ABCDE", 5, "ABCDE"},
		{"ABCDEF", 5, "ABCDE F"},
		{"ABCDEFG", 2, "AB CD EF G"},
		{"ABC", 1, "A B C"},
		{"ABC", 0, "ABC"},
		{"ABC", -1, "ABC"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, GroupCharacters(c.in, c.n), "%q/%d", c.in, c.n)
	}
}

func TestStripSpacesUndoesGrouping(t *testing.T) {
	in := "ABCDEFGHIJKLMNOPQ"
	assert.Equal(t, in, StripSpaces(GroupCharacters(in, 5)))
	assert.Equal(t, "ABC", StripSpaces(" A\tB\r\nC "))
}

func TestStyleDisabled(t *testing.T) {
	prev := ColorEnabled()
	defer SetColorEnabled(prev)

	SetColorEnabled(false)
	assert.Equal(t, "plain", Style("plain", Bold, Red))
	assert.Contains(t, Banner("v1"), "v1")
}
