package app

import (
	"go-tower-keep/internal/config"
	"go-tower-keep/internal/input"
)

// RunHeadless drives g with bot at config.FixedStepMs per frame until the
// player dies or limitMs of run time has passed. A limit of 0 runs until death.
// g must not have been ticked yet.
func RunHeadless(g *Game, bot *input.Bot, limitMs float64) RunResult {
	now := 0.0
	for !g.Over() {
		if limitMs > 0 && g.World.Clock.Started() && g.World.Elapsed() >= limitMs {
			break
		}
		g.SetInput(bot.Update(g.World, g.Viewport))
		g.Tick(now)
		now += config.FixedStepMs
	}
	return g.Result()
}
