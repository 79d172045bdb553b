// internal/input/jsonlines.go
package input

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/rs/zerolog"
)

// maxLine bounds one JSON object; the upstream reader emits well under 1 KiB.
const maxLine = 64 * 1024

// JSONLines reads one snapshot object per line from r.
// The latest successfully parsed line wins. Malformed lines are skipped.
// On EOF the last snapshot is kept.
type JSONLines struct {
	r   io.Reader
	log zerolog.Logger

	mu        sync.Mutex
	latest    Snapshot
	lines     uint64
	malformed uint64
}

// NewJSONLines creates a reader source starting from the neutral snapshot.
func NewJSONLines(r io.Reader, log zerolog.Logger) *JSONLines {
	return &JSONLines{
		r:      r,
		log:    log,
		latest: Neutral(),
	}
}

// Latest returns a private copy of the latest snapshot.
func (j *JSONLines) Latest() Snapshot {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.latest.Clone()
}

// Counts returns parsed and malformed line counts.
func (j *JSONLines) Counts() (lines, malformed uint64) {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.lines, j.malformed
}

// Run consumes the reader until EOF, a read error, or ctx is done.
// EOF is not an error.
func (j *JSONLines) Run(ctx context.Context) error {
	sc := bufio.NewScanner(j.r)
	sc.Buffer(make([]byte, 0, 4096), maxLine)

	for sc.Scan() {
		if ctx.Err() != nil {
			return nil
		}

		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}

		snap, err := ParseJSON(line)

		j.mu.Lock()
		if err != nil {
			j.malformed++
			j.mu.Unlock()
			j.log.Warn().Err(err).Msg("input: skipping malformed line")
			continue
		}
		j.lines++
		j.latest = snap
		j.mu.Unlock()
	}

	if err := sc.Err(); err != nil {
		return fmt.Errorf("input: read: %w", err)
	}
	j.log.Debug().Msg("input: stream closed, holding last snapshot")
	return nil
}

// ParseJSON decodes one snapshot object and fills missing channels with neutral values.
func ParseJSON(b []byte) (Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal(b, &s); err != nil {
		return Snapshot{}, err
	}
	return s.Merge(), nil
}
