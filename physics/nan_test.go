//go:build !sx3debug

package physics

import (
	"math"
	"testing"
)

func TestZeroMassPropagatesNaN(t *testing.T) {
	e := NewEngine(&World{Gravity: -9.8})
	o := projectile(0, 10, 0, 1, 0, 0)
	o.Props.Mass = 0

	e.Advance(&o, 0.1)
	if !math.IsNaN(float64(o.Props.Position.Y())) {
		t.Errorf("y = %v, want NaN", o.Props.Position.Y())
	}
}
