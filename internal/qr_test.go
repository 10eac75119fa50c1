package internal

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderQR(t *testing.T) {
	out, err := RenderQR("HMXYZ 12AB7 Q")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.NotEmpty(t, lines)

	width := utf8.RuneCountInString(lines[0])
	// Version 1 is 21 modules wide; plus the quiet zone on both sides.
	assert.GreaterOrEqual(t, width, 21+2*quietZone)
	assert.Equal(t, (width+1)/2, len(lines))
	for _, l := range lines {
		assert.Equal(t, width, utf8.RuneCountInString(l))
	}
	assert.Equal(t, strings.Repeat(" ", width), lines[0], "quiet zone")
	assert.Contains(t, out, "█")
}
