package amphipod

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/aoc2021/dijkstra"
)

// NewBurrow builds a burrow with an empty hallway. rooms[i] lists room i
// from the hallway downwards, e.g. {"BA", "CD", "BC", "DA"}.
func NewBurrow(rooms [RoomCount]string) (Burrow, error) {
	depth := len(rooms[0])
	if depth == 0 || depth > MaxDepth {
		return Burrow{}, fmt.Errorf("%w: room depth %d", ErrBadLayout, depth)
	}
	b := Burrow{Depth: depth}
	for i := range b.Hallway {
		b.Hallway[i] = Empty
	}
	var census [RoomCount]int
	for i, room := range rooms {
		if len(room) != depth {
			return Burrow{}, fmt.Errorf("%w: room %d has depth %d, want %d", ErrBadLayout, i, len(room), depth)
		}
		for x := 0; x < MaxDepth; x++ {
			if x >= depth {
				b.Rooms[i][x] = Empty
				continue
			}
			c := room[x]
			if !isAmphipod(c) {
				return Burrow{}, fmt.Errorf("%w: %q in room %d", ErrBadLayout, c, i)
			}
			census[kind(c)]++
			b.Rooms[i][x] = c
		}
	}
	for k, n := range census {
		if n != depth {
			return Burrow{}, fmt.Errorf("%w: %d amphipods of type %c, want %d", ErrBadLayout, n, 'A'+k, depth)
		}
	}

	return b, nil
}

// Unfold inserts the two folded rows #D#C#B#A# and #D#B#A#C# between the
// first and second row of a two-deep burrow.
func Unfold(b Burrow) (Burrow, error) {
	if b.Depth != 2 {
		return Burrow{}, fmt.Errorf("%w: depth %d", ErrBadDepth, b.Depth)
	}
	extra := [2]string{"DCBA", "DBAC"}
	var rooms [RoomCount]string
	for i := range rooms {
		rooms[i] = string([]byte{b.Rooms[i][0], extra[0][i], extra[1][i], b.Rooms[i][1]})
	}

	return NewBurrow(rooms)
}

// Done reports whether every room holds only its own amphipods.
func (b Burrow) Done() bool {
	for i := 0; i < RoomCount; i++ {
		for x := 0; x < b.Depth; x++ {
			if b.Rooms[i][x] != byte('A'+i) {
				return false
			}
		}
	}

	return true
}

// homeSlot returns the deepest free cell of room i when the room holds no
// strangers, or -1 when nobody may enter. settled reports whether every
// occupant of room i belongs there.
func (b Burrow) homeSlot(i int) (slot int, settled bool) {
	want := byte('A' + i)
	slot = -1
	for x := 0; x < b.Depth; x++ {
		switch c := b.Rooms[i][x]; {
		case c == Empty:
			slot = x
		case c != want:
			return -1, false
		}
	}

	return slot, true
}

// hallwayClear reports whether every cell after from, up to and including
// to, is free.
func (b Burrow) hallwayClear(from, to int) bool {
	step := 1
	if to < from {
		step = -1
	}
	for p := from; p != to; {
		p += step
		if b.Hallway[p] != Empty {
			return false
		}
	}

	return true
}

// Moves lists the legal successor arrangements with their energy cost.
func (b Burrow) Moves() []dijkstra.Edge[Burrow] {
	var slots [RoomCount]int
	var settled [RoomCount]bool
	for i := range slots {
		slots[i], settled[i] = b.homeSlot(i)
	}

	// Going home from the hallway is always worth doing first.
	for a, c := range b.Hallway {
		if c == Empty {
			continue
		}
		j := kind(c)
		door := doorOf(j)
		if slots[j] < 0 || !b.hallwayClear(a, door) {
			continue
		}
		nb := b
		nb.Hallway[a] = Empty
		nb.Rooms[j][slots[j]] = c
		steps := slots[j] + 1 + abs(door-a)

		return []dijkstra.Edge[Burrow]{{To: nb, Cost: int64(steps) * energy[j]}}
	}

	var out []dijkstra.Edge[Burrow]
	for i := 0; i < RoomCount; i++ {
		if settled[i] {
			continue
		}
		x := b.top(i)
		if x < 0 {
			continue
		}
		c := b.Rooms[i][x]
		j := kind(c)
		door := doorOf(i)
		left := b
		left.Rooms[i][x] = Empty

		if j != i && slots[j] >= 0 && b.hallwayClear(door, doorOf(j)) {
			nb := left
			nb.Rooms[j][slots[j]] = c
			steps := x + 1 + abs(door-doorOf(j)) + slots[j] + 1
			out = append(out, dijkstra.Edge[Burrow]{To: nb, Cost: int64(steps) * energy[j]})
		}
		for _, s := range stops {
			if !b.hallwayClear(door, s) {
				continue
			}
			nb := left
			nb.Hallway[s] = c
			steps := x + 1 + abs(door-s)
			out = append(out, dijkstra.Edge[Burrow]{To: nb, Cost: int64(steps) * energy[j]})
		}
	}

	return out
}

// top returns the index of the first occupied cell of room i, or -1.
func (b Burrow) top(i int) int {
	for x := 0; x < b.Depth; x++ {
		if b.Rooms[i][x] != Empty {
			return x
		}
	}

	return -1
}

// String draws the burrow as in the puzzle statement.
func (b Burrow) String() string {
	var sb strings.Builder
	sb.WriteString("#############\n#")
	sb.Write(b.Hallway[:])
	sb.WriteString("#\n")
	for x := 0; x < b.Depth; x++ {
		if x == 0 {
			sb.WriteString("###")
		} else {
			sb.WriteString("  #")
		}
		for i := 0; i < RoomCount; i++ {
			sb.WriteByte(b.Rooms[i][x])
			sb.WriteByte('#')
		}
		if x == 0 {
			sb.WriteString("##")
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  #########\n")

	return sb.String()
}

func abs(n int) int {
	if n < 0 {
		return -n
	}

	return n
}
