package quiz

import (
	"time"

	"github.com/sahajm/quizdeck/internal/generator"
)

// itemsReadyMsg is sent when question generation finishes. Gen ties the
// result to the request that started it so a stale batch can never land
// in a newer run.
type itemsReadyMsg struct {
	Gen   int
	Items []generator.Item
	Err   error
}

// tickMsg drives the timed round countdown, one per second.
type tickMsg struct {
	Gen  int
	Time time.Time
}
