// Package match runs one push-off session: two players, an arena, and the
// Start -> Playing -> GameOver state machine with win counters.
//
// A [Match] owns every piece of mutable game state. Frontends drive it by
// calling [Match.Start] on the start signal and [Match.Tick] once per frame
// with both players' input; sinks read [Snapshot] values, either by polling
// [Match.Snapshot] or by registering an [Observer].
//
// Optional mechanics are switched on through [Features] rather than by
// separate code paths:
//
//	m := match.New(match.DefaultOptions(match.Features{Charge: true, Obstacles: true}))
//	m.Start()
//	for !m.Tick(inputs()) {
//	}
//	fmt.Println(m.Winner(), m.Wins())
//
// # Thread Safety
//
// A Match is NOT safe for concurrent use. Independent matches share nothing
// and may run on separate goroutines.
package match
