package main

import (
	"flag"
	"fmt"

	"tankcity/internal/game"
)

type runResult struct {
	runIndex int
	seed     int64

	finalState game.GameState
	endTick    int
	stats      game.WorldStats
}

func main() {
	var runs int
	var ticks int
	var seedBase int64
	var seedStep int64
	var maxSpawns int

	flag.IntVar(&runs, "runs", 5, "number of headless simulation runs")
	flag.IntVar(&ticks, "ticks", 7200, "maximum ticks per run (120s at 60fps)")
	flag.Int64Var(&seedBase, "seed-base", 42, "RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.IntVar(&maxSpawns, "max-spawns", 5, "cumulative enemy spawn cap per run")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if ticks <= 0 {
		fmt.Println("error: -ticks must be > 0")
		return
	}

	fmt.Printf("=== Headless Tank Sim ===\n")
	fmt.Printf("runs=%d ticks=%d seed_base=%d seed_step=%d max_spawns=%d\n\n",
		runs, ticks, seedBase, seedStep, maxSpawns)

	all := make([]runResult, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		res := runOnce(i+1, seed, ticks, maxSpawns)
		all = append(all, res)
		printRun(res)
	}
	printSummary(all)
}

// runOnce steps a seeded world with an idle player until a terminal state
// or the tick budget. The player defends by standing still; the run
// measures how the enemy wave plays out.
func runOnce(index int, seed int64, ticks, maxSpawns int) runResult {
	w := game.NewWorld(game.WithSeed(seed), game.WithMaxSpawns(maxSpawns))
	for t := 0; t < ticks && w.State == game.StateRunning; t++ {
		w.Step(game.InputState{})
	}
	return runResult{
		runIndex:   index,
		seed:       seed,
		finalState: w.State,
		endTick:    w.Tick(),
		stats:      w.Stats,
	}
}

func printRun(r runResult) {
	fmt.Printf("run %d (seed=%d): %s after %d ticks\n", r.runIndex, r.seed, r.finalState, r.endTick)
	fmt.Printf("  spawned=%d destroyed=%d bricks=%d player_deaths=%d\n",
		r.stats.EnemiesSpawned, r.stats.EnemiesDestroyed, r.stats.BricksDestroyed, r.stats.PlayerDeaths)
}

func printSummary(all []runResult) {
	byState := map[game.GameState]int{}
	totalTicks := 0
	totalBricks := 0
	for _, r := range all {
		byState[r.finalState]++
		totalTicks += r.endTick
		totalBricks += r.stats.BricksDestroyed
	}
	fmt.Printf("\n=== Summary (%d runs) ===\n", len(all))
	for _, s := range []game.GameState{game.StateRunning, game.StateGameOver, game.StateVictory} {
		if n := byState[s]; n > 0 {
			fmt.Printf("  %-10s %d\n", s.String()+":", n)
		}
	}
	fmt.Printf("  avg ticks: %d\n", totalTicks/len(all))
	fmt.Printf("  avg bricks destroyed: %.1f\n", float64(totalBricks)/float64(len(all)))
}
