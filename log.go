package gridpath

import (
	"log/slog"
	"time"
)

var discardLogger = slog.New(slog.DiscardHandler)

func logAbort(logger *slog.Logger, finder string, reason AbortReason, visited int, elapsed time.Duration) {
	logger.Debug("search aborted",
		"finder", finder,
		"reason", reason.String(),
		"visited", visited,
		"elapsed", elapsed,
	)
}

func logUnreachable(logger *slog.Logger, finder string, start, end Point, visited int) {
	logger.Debug("no path",
		"finder", finder,
		"start", start,
		"end", end,
		"visited", visited,
	)
}
