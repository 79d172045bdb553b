// internal/ports/ports.go
package ports

import (
	"fmt"
	"sort"
	"strings"

	"go.bug.st/serial/enumerator"
)

// Port is one serial device visible to the host.
type Port struct {
	Path    string
	USB     bool
	VIDPID  string // "VID:PID" in uppercase hex, empty if not USB
	Serial  string
	Product string
}

// lister is swapped in tests.
var lister = enumerator.GetDetailedPortsList

// List returns the host's serial ports sorted by path.
func List() ([]Port, error) {
	details, err := lister()
	if err != nil {
		return nil, fmt.Errorf("ports: enumerate: %w", err)
	}

	out := make([]Port, 0, len(details))
	for _, d := range details {
		if d == nil || d.Name == "" {
			continue
		}
		p := Port{
			Path:    d.Name,
			USB:     d.IsUSB,
			Serial:  d.SerialNumber,
			Product: d.Product,
		}
		if d.IsUSB {
			p.VIDPID = strings.ToUpper(d.VID + ":" + d.PID)
		}
		out = append(out, p)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out, nil
}

// Matches reports whether p has the given VID:PID (case-insensitive).
func (p Port) Matches(vidpid string) bool {
	return p.USB && strings.EqualFold(p.VIDPID, strings.TrimSpace(vidpid))
}

// String renders one listing line.
func (p Port) String() string {
	if !p.USB {
		return p.Path
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s  usb %s", p.Path, p.VIDPID)
	if p.Product != "" {
		fmt.Fprintf(&b, "  %q", p.Product)
	}
	if p.Serial != "" {
		fmt.Fprintf(&b, "  serial=%s", p.Serial)
	}
	return b.String()
}
