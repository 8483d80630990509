package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Квадрат 10x10 вокруг начала координат
var square = Ring{{-5, -5}, {5, -5}, {5, 5}, {-5, 5}}

// Невыпуклый полигон в форме буквы "Г"
var lShape = Ring{{0, 0}, {4, 0}, {4, 2}, {2, 2}, {2, 6}, {0, 6}}

func TestContains_Square(t *testing.T) {
	assert.True(t, Contains(0, 0, square))
	assert.True(t, Contains(4.9, 4.9, square))
	assert.False(t, Contains(5.1, 0, square))
	assert.False(t, Contains(0, -5.1, square))
	assert.False(t, Contains(50, 50, square))
}

func TestContains_NonConvex(t *testing.T) {
	assert.True(t, Contains(1, 1, lShape))
	assert.True(t, Contains(1, 5, lShape))
	// Точка в "вырезе" буквы Г
	assert.False(t, Contains(3, 4, lShape))
	assert.False(t, Contains(-1, 1, lShape))
}

func TestContains_OpenRingTreatedAsClosed(t *testing.T) {
	closed := Ring{{-5, -5}, {5, -5}, {5, 5}, {-5, 5}, {-5, -5}}
	assert.Equal(t, Contains(0, 0, closed), Contains(0, 0, square))
	assert.Equal(t, Contains(6, 0, closed), Contains(6, 0, square))
}

func TestContains_Degenerate(t *testing.T) {
	assert.False(t, Contains(0, 0, nil))
	assert.False(t, Contains(0, 0, Ring{}))
	assert.False(t, Contains(0, 0, Ring{{0, 0}}))
	assert.False(t, Contains(0, 0, Ring{{0, 0}, {1, 1}}))
}

// Результат не должен зависеть от того, с какой вершины начат контур
func TestContains_CyclicRotationInvariance(t *testing.T) {
	points := [][2]float64{
		{0, 0}, {4.9, 4.9}, {-4.9, 4.9}, {5.1, 0}, {0, 7}, {-10, -10},
		{1, 1}, {3, 4}, {1, 5}, {3.9, 0.1},
	}
	for _, ring := range []Ring{square, lShape} {
		for shift := 1; shift < len(ring); shift++ {
			rotated := make(Ring, 0, len(ring))
			rotated = append(rotated, ring[shift:]...)
			rotated = append(rotated, ring[:shift]...)
			for _, p := range points {
				assert.Equal(t,
					Contains(p[0], p[1], ring),
					Contains(p[0], p[1], rotated),
					"point (%v, %v), shift %d", p[0], p[1], shift,
				)
			}
		}
	}
}

// Фиксируем текущее поведение на границе: нижнее ребро считается внутри,
// верхнее - снаружи. Это следствие правила (yi > lat) != (yj > lat),
// а не гарантированный контракт; тест существует, чтобы изменение
// поведения было осознанным.
func TestContains_EdgePointCurrentBehavior(t *testing.T) {
	assert.True(t, Contains(0, -5, square))
	assert.False(t, Contains(0, 5, square))
}
