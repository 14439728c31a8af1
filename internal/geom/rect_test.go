package geom

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func randomRect(rng *rand.Rand) Rect {
	return NewRect(rng.Float64()*200-100, rng.Float64()*200-100, rng.Float64()*50, rng.Float64()*50)
}

func TestIntersectsSymmetric(t *testing.T) {
	rng := rand.New(rand.NewSource(12345))
	for i := 0; i < 1000; i++ {
		a, b := randomRect(rng), randomRect(rng)
		assert.Equal(t, Intersects(a, b), Intersects(b, a), "a=%+v b=%+v", a, b)
	}
}

func TestIntersectsSelf(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 100; i++ {
		a := randomRect(rng)
		assert.True(t, Intersects(a, a))
	}
	// вырожденный прямоугольник тоже пересекается сам с собой
	assert.True(t, Intersects(NewRect(5, 5, 0, 0), NewRect(5, 5, 0, 0)))
}

func TestIntersectsTouchingEdges(t *testing.T) {
	a := NewRect(0, 0, 10, 10)

	assert.True(t, Intersects(a, NewRect(10, 0, 10, 10)), "right edge == left edge")
	assert.True(t, Intersects(a, NewRect(0, 10, 10, 10)), "bottom edge == top edge")
	assert.True(t, Intersects(a, NewRect(10, 10, 5, 5)), "corner touch")
}

func TestIntersectsDisjoint(t *testing.T) {
	a := NewRect(0, 0, 10, 10)

	tests := []struct {
		name string
		b    Rect
	}{
		{"right", NewRect(10.01, 0, 5, 5)},
		{"left", NewRect(-5.01, 0, 5, 5)},
		{"below", NewRect(0, 10.01, 5, 5)},
		{"above", NewRect(0, -5.01, 5, 5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, Intersects(a, tt.b))
		})
	}
}

func TestIntersectsContained(t *testing.T) {
	outer := NewRect(0, 0, 100, 100)
	inner := NewRect(40, 40, 5, 5)
	assert.True(t, Intersects(outer, inner))
	assert.True(t, Intersects(inner, outer))
}

func TestRectSize(t *testing.T) {
	r := NewRect(3, 4, 9, 33)
	assert.Equal(t, 9.0, r.Width())
	assert.Equal(t, 33.0, r.Height())
	assert.Equal(t, Rect{Top: 4, Left: 3, Bottom: 37, Right: 12}, r)
}
