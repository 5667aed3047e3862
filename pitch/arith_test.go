package pitch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	noteC4  = NewNote(0, 0, 4)
	noteE4  = NewNote(2, 0, 4)
	noteG4  = NewNote(4, 0, 4)
	noteBb2 = NewNote(6, -1, 2)
	classC  = NewClass(0, 0)
	classG  = NewClass(4, 0)
	classB  = NewClass(6, 0)

	ivlM3     = NewInterval(2, 0, 0, 1)
	ivlP5     = NewInterval(4, 0, 0, 1)
	ivlM3Down = NewInterval(2, 0, 0, -1)
	ivlP8     = NewInterval(0, 0, 1, 1)
	ivlA4     = NewInterval(3, 1, 0, 1)
	ivlM9     = NewInterval(1, 0, 1, 1)
)

func TestTranspose(t *testing.T) {
	for _, tc := range []struct {
		name     string
		pitch    Pitch
		interval Pitch
		expected Pitch
	}{
		{name: "C4 up M3", pitch: noteC4, interval: ivlM3, expected: noteE4},
		{name: "C4 up P5", pitch: noteC4, interval: ivlP5, expected: noteG4},
		{name: "E4 down M3", pitch: noteE4, interval: ivlM3Down, expected: noteC4},
		{name: "C4 up P8", pitch: noteC4, interval: ivlP8, expected: NewNote(0, 0, 5)},
		{name: "class C up P5", pitch: classC, interval: ivlP5, expected: classG},
		{name: "class C down P5", pitch: classC, interval: NewInterval(4, 0, 0, -1), expected: NewClass(3, 0)},
		{name: "Bb2 up A4", pitch: noteBb2, interval: ivlA4, expected: NewNote(2, 0, 3)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Transpose(tc.pitch, tc.interval))
			// operand order does not matter
			assert.Equal(t, tc.expected, Transpose(tc.interval, tc.pitch))
		})
	}
}

func TestTransposeRejectsBadOperands(t *testing.T) {
	assert.False(t, Transpose(noteC4, noteE4).Valid())
	assert.False(t, Transpose(ivlM3, ivlP5).Valid())
	assert.False(t, Transpose(Pitch{}, ivlM3).Valid())
	assert.False(t, Transpose(noteC4, Pitch{}).Valid())
}

func TestTransposeBy(t *testing.T) {
	upThird := TransposeBy(ivlM3)
	assert.Equal(t, noteE4, upThird(noteC4))
	assert.Equal(t, NewNote(6, 0, 4), upThird(noteG4))
}

func TestDistance(t *testing.T) {
	for _, tc := range []struct {
		name     string
		from, to Pitch
		expected Pitch
	}{
		{name: "C4 to E4", from: noteC4, to: noteE4, expected: ivlM3},
		{name: "E4 to C4", from: noteE4, to: noteC4, expected: ivlM3Down},
		{name: "C4 to C5", from: noteC4, to: NewNote(0, 0, 5), expected: ivlP8},
		{name: "class G to B", from: classG, to: classB, expected: ivlM3},
		{name: "class B to G is ascending", from: classB, to: classG, expected: NewInterval(5, -1, 0, 1)},
		{name: "M3 to P5", from: ivlM3, to: ivlP5, expected: NewInterval(2, -1, 0, 1)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Distance(tc.from, tc.to))
		})
	}
}

func TestDistanceRejectsMixedKinds(t *testing.T) {
	assert.False(t, Distance(noteC4, classC).Valid())
	assert.False(t, Distance(classC, ivlM3).Valid())
	assert.False(t, Distance(noteC4, ivlM3).Valid())
	assert.False(t, Distance(Pitch{}, Pitch{}).Valid())
}

func TestTransposeThenDistanceIsIdentity(t *testing.T) {
	notes := []Pitch{noteC4, noteE4, noteBb2, NewNote(3, 2, -1), NewNote(5, -2, 7)}
	intervals := []Pitch{ivlM3, ivlP5, ivlM3Down, ivlP8, ivlA4, ivlM9,
		NewInterval(4, -1, 0, 1), NewInterval(6, -1, 2, -1)}
	for _, n := range notes {
		for _, i := range intervals {
			assert.Equal(t, i, Distance(n, Transpose(n, i)))
		}
	}
}

func TestDistanceThenTransposeIsIdentity(t *testing.T) {
	notes := []Pitch{noteC4, noteE4, noteG4, noteBb2, NewNote(1, 1, 6)}
	for _, a := range notes {
		for _, b := range notes {
			assert.Equal(t, b, Transpose(a, Distance(a, b)))
		}
	}
	classes := []Pitch{classC, classG, classB, NewClass(1, -1), NewClass(3, 1)}
	for _, a := range classes {
		for _, b := range classes {
			assert.Equal(t, b, Transpose(a, Distance(a, b)))
		}
	}
}

func TestClassDistanceIsAlwaysAscendingAndSimple(t *testing.T) {
	for stepA := 0; stepA <= 6; stepA++ {
		for stepB := 0; stepB <= 6; stepB++ {
			for altA := -2; altA <= 2; altA++ {
				for altB := -2; altB <= 2; altB++ {
					d := Distance(NewClass(stepA, altA), NewClass(stepB, altB))
					assert.Equal(t, 1, d.Dir())
					h := d.Height()
					assert.GreaterOrEqual(t, h, 0)
					assert.Less(t, h, 12)
				}
			}
		}
	}
}

func TestAddSubtract(t *testing.T) {
	m3 := NewInterval(2, -1, 0, 1)
	assert.Equal(t, ivlP5, Add(ivlM3, m3))
	assert.Equal(t, m3, Subtract(ivlP5, ivlM3))
	assert.Equal(t, ivlM3, Subtract(ivlP5, m3))
	assert.False(t, Add(ivlM3, noteC4).Valid())
	assert.False(t, Subtract(noteC4, ivlM3).Valid())
}

func TestSimplify(t *testing.T) {
	for _, tc := range []struct {
		name     string
		interval Pitch
		expected Pitch
	}{
		{name: "M9 to M2", interval: ivlM9, expected: NewInterval(1, 0, 0, 1)},
		{name: "P8 stays P8", interval: ivlP8, expected: ivlP8},
		{name: "-M9 to -M2", interval: NewInterval(1, 0, 1, -1), expected: NewInterval(1, 0, 0, -1)},
		{name: "P15 to P1", interval: NewInterval(0, 0, 2, 1), expected: NewInterval(0, 0, 0, 1)},
		{name: "A8 stays A8", interval: NewInterval(0, 1, 1, 1), expected: NewInterval(0, 1, 1, 1)},
		{name: "m10 to m3", interval: NewInterval(2, -1, 1, 1), expected: NewInterval(2, -1, 0, 1)},
		{name: "M3 untouched", interval: ivlM3, expected: ivlM3},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Simplify(tc.interval))
		})
	}
	assert.False(t, Simplify(noteC4).Valid())
}

func TestSimplifyAscending(t *testing.T) {
	for _, tc := range []struct {
		name     string
		interval Pitch
		expected Pitch
	}{
		{name: "-M3 to m6", interval: ivlM3Down, expected: NewInterval(5, -1, 0, 1)},
		{name: "-P5 to P4", interval: NewInterval(4, 0, 0, -1), expected: NewInterval(3, 0, 0, 1)},
		{name: "-m2 to M7", interval: NewInterval(1, -1, 0, -1), expected: NewInterval(6, 0, 0, 1)},
		{name: "ascending M3 untouched", interval: ivlM3, expected: ivlM3},
		{name: "-M9 to m7", interval: NewInterval(1, 0, 1, -1), expected: NewInterval(6, -1, 0, 1)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, SimplifyAscending(tc.interval))
		})
	}
}

func TestInvert(t *testing.T) {
	for _, tc := range []struct {
		name     string
		interval Pitch
		expected Pitch
	}{
		{name: "P4 to P5", interval: NewInterval(3, 0, 0, 1), expected: ivlP5},
		{name: "P5 to P4", interval: ivlP5, expected: NewInterval(3, 0, 0, 1)},
		{name: "M3 to m6", interval: ivlM3, expected: NewInterval(5, -1, 0, 1)},
		{name: "m3 to M6", interval: NewInterval(2, -1, 0, 1), expected: NewInterval(5, 0, 0, 1)},
		{name: "A4 to d5", interval: ivlA4, expected: NewInterval(4, -1, 0, 1)},
		{name: "d5 to A4", interval: NewInterval(4, -1, 0, 1), expected: ivlA4},
		{name: "M2 to m7", interval: NewInterval(1, 0, 0, 1), expected: NewInterval(6, -1, 0, 1)},
		{name: "direction preserved", interval: ivlM3Down, expected: NewInterval(5, -1, 0, -1)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Invert(tc.interval))
		})
	}
	assert.False(t, Invert(classC).Valid())
}
