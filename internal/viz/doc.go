// Package viz renders diorama frames as styled text for headless output.
//
// Frames are colored with lipgloss according to a [Theme]:
//
//   - scene characters share one color
//   - each steam level has its own shade
//   - captions and separators use the muted help color
//
// The "plain" theme emits the bare characters, matching what the terminal
// backends draw.
package viz
