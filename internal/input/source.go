// internal/input/source.go
package input

// Source provides the latest snapshot for the current tick.
// Latest MUST NOT block and MUST return a snapshot the caller may keep.
type Source interface {
	Latest() Snapshot
}

type neutralSource struct{}

// NeutralSource always returns the neutral snapshot.
func NeutralSource() Source { return neutralSource{} }

func (neutralSource) Latest() Snapshot { return Neutral() }
