// Package commands defines the gesturereplay CLI.
//
// Commands
//
//   - play    Replay trace files through a gesture detector and a card timeline
//   - scan    List the trace files below a set of directories
//   - listen  Replay records streamed by websocket clients
//
// The root command loads the OpenPrism configuration so replays classify
// gestures with the same thresholds as the application.
package commands
