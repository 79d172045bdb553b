// internal/sampler/types.go
package sampler

import (
	"time"

	"github.com/tamzrod/tkg-transmitter/internal/input"
)

// Sample is the input captured for one transmission tick.
type Sample struct {
	Seq      uint64
	At       time.Time
	Snapshot input.Snapshot
}
