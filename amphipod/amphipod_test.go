package amphipod_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2021/amphipod"
)

const example = `#############
#...........#
###B#C#B#D###
  #A#D#C#A#
  #########
`

func TestParse(t *testing.T) {
	b, err := amphipod.Parse(strings.NewReader(example))
	require.NoError(t, err)
	require.Equal(t, 2, b.Depth)

	want, err := amphipod.NewBurrow([4]string{"BA", "CD", "BC", "DA"})
	require.NoError(t, err)
	assert.Equal(t, want, b)
	assert.Equal(t, example, b.String())
}

func TestParseErrors(t *testing.T) {
	cases := map[string]string{
		"too short":    "#############\n#...........#\n",
		"busy hallway": strings.Replace(example, "#...........#", "#A..........#", 1),
		"unknown kind": strings.Replace(example, "###B#C", "###E#C", 1),
		"bad census":   strings.Replace(example, "#A#D#C#A#", "#A#A#C#A#", 1),
		"short room":   strings.Replace(example, "  #A#D#C#A#", "  #A#D#", 1),
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := amphipod.Parse(strings.NewReader(in))
			require.ErrorIs(t, err, amphipod.ErrBadLayout)
		})
	}
}

func TestUnfold(t *testing.T) {
	b, err := amphipod.NewBurrow([4]string{"BA", "CD", "BC", "DA"})
	require.NoError(t, err)
	big, err := amphipod.Unfold(b)
	require.NoError(t, err)

	want, err := amphipod.NewBurrow([4]string{"BDDA", "CCBD", "BBAC", "DACA"})
	require.NoError(t, err)
	assert.Equal(t, want, big)

	_, err = amphipod.Unfold(big)
	require.ErrorIs(t, err, amphipod.ErrBadDepth)
}

func TestOrganizeExample(t *testing.T) {
	folded, unfolded, err := amphipod.Solve(strings.NewReader(example))
	require.NoError(t, err)
	assert.Equal(t, int64(12521), folded)
	assert.Equal(t, int64(44169), unfolded)
}

func TestOrganizeAlreadyDone(t *testing.T) {
	b, err := amphipod.NewBurrow([4]string{"AA", "BB", "CC", "DD"})
	require.NoError(t, err)
	require.True(t, b.Done())

	res, err := amphipod.Organize(b)
	require.NoError(t, err)
	assert.Zero(t, res.Energy)
	assert.Equal(t, []amphipod.Burrow{b}, res.Path)
	assert.Equal(t, 1, res.Stats.Explored)
}

func TestOrganizeSingleSwap(t *testing.T) {
	// A and B swap the bottom cells: B must step out, A goes home, B goes home.
	b, err := amphipod.NewBurrow([4]string{"BA", "AB", "CC", "DD"})
	require.NoError(t, err)

	res, err := amphipod.Organize(b)
	require.NoError(t, err)
	assert.Equal(t, int64(46), res.Energy)
	require.NotEmpty(t, res.Path)
	assert.Equal(t, b, res.Path[0])
	assert.True(t, res.Path[len(res.Path)-1].Done())
}

func TestPathCostsAddUp(t *testing.T) {
	b, err := amphipod.NewBurrow([4]string{"BA", "CD", "BC", "DA"})
	require.NoError(t, err)
	res, err := amphipod.Organize(b)
	require.NoError(t, err)

	var total int64
	for i := 1; i < len(res.Path); i++ {
		step := int64(-1)
		for _, e := range res.Path[i-1].Moves() {
			if e.To == res.Path[i] {
				step = e.Cost
				break
			}
		}
		require.NotEqual(t, int64(-1), step, "step %d is not a legal move", i)
		total += step
	}
	assert.Equal(t, res.Energy, total)
}

func TestMovesNeverStopOutsideRooms(t *testing.T) {
	b, err := amphipod.NewBurrow([4]string{"BA", "CD", "BC", "DA"})
	require.NoError(t, err)
	for _, e := range b.Moves() {
		for _, door := range []int{2, 4, 6, 8} {
			assert.Equal(t, amphipod.Empty, e.To.Hallway[door])
		}
		assert.Positive(t, e.Cost)
	}
}

func TestProgressIsPerCall(t *testing.T) {
	b, err := amphipod.NewBurrow([4]string{"BA", "CD", "BC", "DA"})
	require.NoError(t, err)

	var lines []string
	logf := func(format string, v ...any) { lines = append(lines, format) }

	first, err := amphipod.Organize(b, amphipod.WithProgress(1000, logf))
	require.NoError(t, err)
	firstLines := len(lines)
	assert.Equal(t, first.Stats.Explored/1000, firstLines)

	second, err := amphipod.Organize(b, amphipod.WithProgress(1000, logf))
	require.NoError(t, err)
	assert.Equal(t, first.Stats, second.Stats)
	assert.Equal(t, 2*firstLines, len(lines))
}

func TestWithProgressRejectsNegative(t *testing.T) {
	b, err := amphipod.NewBurrow([4]string{"AA", "BB", "CC", "DD"})
	require.NoError(t, err)
	_, err = amphipod.Organize(b, amphipod.WithProgress(-1, nil))
	require.ErrorIs(t, err, amphipod.ErrOptionViolation)
	assert.NotErrorIs(t, err, amphipod.ErrBadLayout)

	_, err = amphipod.Organize(b, amphipod.WithProgress(0, nil))
	require.NoError(t, err)
}

func TestOrganizeShallowRooms(t *testing.T) {
	b, err := amphipod.NewBurrow([4]string{"D", "C", "B", "A"})
	require.NoError(t, err)
	res, err := amphipod.Organize(b)
	require.NoError(t, err)
	assert.Equal(t, int64(8470), res.Energy)
}
