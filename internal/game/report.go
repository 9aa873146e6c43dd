package game

import (
	"fmt"
	"log"
	"strings"

	"github.com/atotto/clipboard"
)

// DebugReport builds a textual snapshot of the world: state machine,
// rosters, counters and the retained event log. Shown nowhere in-game;
// it exists for the clipboard hotkey and the headless runner.
func (w *World) DebugReport() string {
	var b strings.Builder
	fmt.Fprintf(&b, "--- tankcity debug report ---\n")
	fmt.Fprintf(&b, "state=%s tick=%d\n", w.State, w.tick)
	fmt.Fprintf(&b, "player: pos=(%.0f,%.0f) dir=%s health=%d/%d lives=%d invincible=%v\n",
		w.Player.X, w.Player.Y, w.Player.Dir, w.Player.Health, w.Player.MaxHealth,
		w.Player.Lives, w.Player.Invincible)
	fmt.Fprintf(&b, "enemies: %d alive, %d/%d spawned\n",
		len(w.Enemies), w.Spawner.TotalSpawns(), w.Spawner.maxSpawns)
	for i, e := range w.Enemies {
		fmt.Fprintf(&b, "  [%d] pos=(%.0f,%.0f) dir=%s health=%d\n", i, e.X, e.Y, e.Dir, e.Health)
	}
	fmt.Fprintf(&b, "stats: shots=%d bricks=%d kills=%d deaths=%d\n",
		w.Stats.ShotsFired, w.Stats.BricksDestroyed, w.Stats.EnemiesDestroyed, w.Stats.PlayerDeaths)

	events := w.log.All()
	fmt.Fprintf(&b, "events (%d):\n", len(events))
	for _, e := range events {
		fmt.Fprintf(&b, "  t=%d %s\n", e.Tick, e.Text)
	}
	return b.String()
}

// copyReport places the debug report on the system clipboard. Failure is
// logged, never fatal.
func (g *Game) copyReport() {
	if err := clipboard.WriteAll(g.world.DebugReport()); err != nil {
		log.Printf("copy report to clipboard: %v", err)
		return
	}
	log.Printf("debug report copied to clipboard")
}
