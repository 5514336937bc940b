package viewer

import "fmt"

// Escape sequences the viewer drives the terminal with. Mouse reporting uses
// any-event tracking (1003) with SGR encoding (1006); frames are wrapped in
// synchronized-output marks (2026) so repaints land atomically.
const (
	escEnter = "\x1b[?1049h\x1b[?25l\x1b[?1003h\x1b[?1006h\x1b[2J\x1b[H"
	escLeave = "\x1b[?1006l\x1b[?1003l\x1b[?25h\x1b[?1049l"

	escSyncBegin = "\x1b[?2026h"
	escSyncEnd   = "\x1b[?2026l"

	escHome      = "\x1b[H"
	escClearLine = "\x1b[2K"
)

// cursorTo moves to 1-based row, column 1.
func cursorTo(row int) string {
	return fmt.Sprintf("\x1b[%d;1H", row)
}
