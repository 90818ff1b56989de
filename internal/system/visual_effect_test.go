package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-tower-keep/pkg/geom"
)

func TestEnemyFramesFlipEveryInterval(t *testing.T) {
	h := newHarness(t, emptyLevel())
	h.w.Enemies.Create(geom.Vec(60, 60), 100)
	e := h.w.Enemies.At(0)

	frames := []struct {
		now  float64
		want int
	}{
		{0, 0},
		{199, 0},
		{200, 1},
		{350, 1},
		{400, 0},
	}
	for _, f := range frames {
		h.at(f.now)
		h.anim.Update(h.w.Delta())
		assert.Equal(t, f.want, e.Frame, "at %v", f.now)
	}
}
