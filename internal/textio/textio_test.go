package textio_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2021/internal/textio"
)

var errSentinel = errors.New("sentinel")

func TestLinesAndBlocks(t *testing.T) {
	in := "--- a ---\r\n1,2\n\n\n--- b ---  \n3,4\n5,6\n"
	lines, err := textio.Lines(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, lines, 7)
	assert.Equal(t, textio.Line{No: 1, Text: "--- a ---"}, lines[0])
	assert.Equal(t, "--- b ---", lines[4].Text)

	blocks := textio.Blocks(lines)
	require.Len(t, blocks, 2)
	assert.Len(t, blocks[0], 2)
	assert.Len(t, blocks[1], 3)
	assert.Equal(t, 7, blocks[1][2].No)

	assert.Len(t, textio.NonBlank(lines), 5)
}

func TestInts(t *testing.T) {
	got, err := textio.Ints("-618,-824, -621", ",")
	require.NoError(t, err)
	assert.Equal(t, []int{-618, -824, -621}, got)

	_, err = textio.Ints("1,x,3", ",")
	require.ErrorIs(t, err, textio.ErrBadInt)
}

func TestLineErrorf(t *testing.T) {
	err := textio.Line{No: 12, Text: "oops"}.Errorf("bad %q: %w", "oops", errSentinel)
	require.ErrorIs(t, err, errSentinel)
	assert.Equal(t, `line 12: bad "oops": sentinel`, err.Error())
}
