// internal/input/scenario.go
package input

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

// Step holds one snapshot for Ticks consecutive ticks.
type Step struct {
	Ticks   int            `yaml:"ticks"`
	Buttons map[string]int `yaml:"buttons"`
	Analog  map[string]int `yaml:"analog"`
}

// ScenarioFile is the on-disk scripted input.
type ScenarioFile struct {
	Loop  bool   `yaml:"loop"`
	Steps []Step `yaml:"steps"`
}

// Scenario replays scripted snapshots, advancing one tick per Latest call.
// After the last step the final snapshot repeats unless Loop is set.
// Steps are walked with a cursor; memory is per step, not per tick.
type Scenario struct {
	mu    sync.Mutex
	loop  bool
	steps []Snapshot
	ticks []int
	total int

	step int // current step
	tick int // ticks already served from the current step
	done bool
}

// LoadScenario reads a YAML scenario file.
func LoadScenario(path string) (*Scenario, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var f ScenarioFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("scenario: %s: %w", path, err)
	}
	return NewScenario(f)
}

// NewScenario validates the steps. A step with zero ticks lasts one tick.
func NewScenario(f ScenarioFile) (*Scenario, error) {
	if len(f.Steps) == 0 {
		return nil, errors.New("scenario: at least one step required")
	}

	sc := &Scenario{loop: f.Loop}
	for i, st := range f.Steps {
		n := st.Ticks
		if n < 0 {
			return nil, fmt.Errorf("scenario: step %d: ticks must be >= 0", i)
		}
		if n == 0 {
			n = 1
		}
		sc.steps = append(sc.steps, Snapshot{Buttons: st.Buttons, Analog: st.Analog}.Merge())
		sc.ticks = append(sc.ticks, n)
		sc.total += n
	}

	return sc, nil
}

// Len returns the number of scripted ticks.
func (s *Scenario) Len() int {
	return s.total
}

// Done reports whether a non-looping scenario has been fully replayed.
func (s *Scenario) Done() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.done
}

func (s *Scenario) Latest() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.done {
		return s.steps[len(s.steps)-1].Clone()
	}

	snap := s.steps[s.step].Clone()

	s.tick++
	if s.tick >= s.ticks[s.step] {
		s.tick = 0
		s.step++
		if s.step == len(s.steps) {
			if s.loop {
				s.step = 0
			} else {
				s.step = len(s.steps) - 1
				s.done = true
			}
		}
	}
	return snap
}
