// Package control provides the input sources that drive a player.
//
// Every source implements [Controller] and is asked once per tick for the
// player's input snapshot:
//
//   - [Keys]: the latest keyboard state, set by a frontend
//   - [Script]: a fixed sequence of inputs, one per tick
//   - [Bot]: steers toward the opponent with two [PID] loops and charges
//     up when it has room to
//   - [None]: never presses anything
//
// # Usage
//
//	bot := control.NewBot(true)
//	in := bot.Compute(self, opponent, tick)
package control
