// Package viz provides the interactive terminal view of the tooth row.
//
// The bubbletea [Model] plays the role of the page driver: it owns a
// [driver.Ticker], feeds it parameter edits, steps it on every tick and
// draws the returned positions onto a braille [Canvas].
package viz
