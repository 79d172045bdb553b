// internal/input/input_test.go
package input

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNeutral(t *testing.T) {
	n := Neutral()
	assert.Len(t, n.Buttons, len(Buttons))
	for _, b := range Buttons {
		assert.False(t, n.Held(b), b)
	}
	assert.Equal(t, 128, n.Axis("left_x"))
	assert.Equal(t, 0, n.Axis("L2"))
}

func TestAxisDefaults(t *testing.T) {
	s := Snapshot{}
	assert.Equal(t, StickNeutral, s.Axis("right_x"))
	assert.Equal(t, TriggerNeutral, s.Axis("R2"))
}

func TestCloneIsIndependent(t *testing.T) {
	a := Neutral()
	b := a.Clone()
	b.Buttons["circle"] = 1
	b.Analog["left_x"] = 0

	assert.False(t, a.Held("circle"))
	assert.Equal(t, 128, a.Axis("left_x"))
}

func TestMergeNormalizes(t *testing.T) {
	s := Snapshot{
		Buttons: map[string]int{"circle": 5},
		Analog:  map[string]int{"left_x": 300, "left_y": -4},
	}.Merge()

	assert.Equal(t, 1, s.Buttons["circle"])
	assert.Equal(t, 255, s.Analog["left_x"])
	assert.Equal(t, 0, s.Analog["left_y"])
	assert.Equal(t, 128, s.Analog["right_x"])
	assert.Contains(t, s.Buttons, "square")
}

func TestStickToDuty(t *testing.T) {
	assert.InDelta(t, 0.0, StickToDuty(128), 1e-9)
	assert.InDelta(t, -1.0, StickToDuty(0), 1e-9)
	assert.InDelta(t, 127.0/128.0, StickToDuty(255), 1e-9)
}

func TestVelocityMapping(t *testing.T) {
	s := Neutral()
	s.Analog["left_y"] = 0   // stick fully up
	s.Analog["left_x"] = 255 // stick fully right
	s.Analog["right_x"] = 0  // yaw left

	vx, vy, vyaw := Velocity(s)
	assert.InDelta(t, 1.0, vx, 1e-9)
	assert.InDelta(t, -127.0/128.0, vy, 1e-9)
	assert.InDelta(t, -1.0, vyaw, 1e-9)
}

func TestParseJSON(t *testing.T) {
	s, err := ParseJSON([]byte(`{"buttons":{"circle":1},"analog":{"left_y":0}}`))
	require.NoError(t, err)
	assert.True(t, s.Held("circle"))
	assert.Equal(t, 0, s.Axis("left_y"))
	assert.Equal(t, 128, s.Axis("left_x"))

	_, err = ParseJSON([]byte(`{"buttons":`))
	assert.Error(t, err)
}

func TestJSONLines_LatestWinsAndSkipsMalformed(t *testing.T) {
	in := strings.Join([]string{
		`{"buttons":{"cross":1},"analog":{}}`,
		`not json`,
		``,
		`{"buttons":{"square":1},"analog":{"right_x":200}}`,
	}, "\n")

	src := NewJSONLines(strings.NewReader(in), zerolog.Nop())
	require.NoError(t, src.Run(context.Background()))

	got := src.Latest()
	assert.True(t, got.Held("square"))
	assert.False(t, got.Held("cross"))
	assert.Equal(t, 200, got.Axis("right_x"))

	lines, bad := src.Counts()
	assert.Equal(t, uint64(2), lines)
	assert.Equal(t, uint64(1), bad)
}

func TestJSONLines_StartsNeutral(t *testing.T) {
	src := NewJSONLines(strings.NewReader(""), zerolog.Nop())
	assert.Equal(t, Neutral(), src.Latest())
}

func TestScenario_ReplayAndHold(t *testing.T) {
	sc, err := NewScenario(ScenarioFile{
		Steps: []Step{
			{Ticks: 2, Buttons: map[string]int{"select": 1}},
			{Buttons: map[string]int{"start": 1}},
		},
	})
	require.NoError(t, err)
	require.Equal(t, 3, sc.Len())

	assert.True(t, sc.Latest().Held("select"))
	assert.True(t, sc.Latest().Held("select"))
	assert.False(t, sc.Done())
	assert.True(t, sc.Latest().Held("start"))
	assert.True(t, sc.Done())

	// holds the last step
	assert.True(t, sc.Latest().Held("start"))
}

func TestScenario_Loop(t *testing.T) {
	sc, err := NewScenario(ScenarioFile{
		Loop: true,
		Steps: []Step{
			{Buttons: map[string]int{"circle": 1}},
			{Buttons: map[string]int{"cross": 1}},
		},
	})
	require.NoError(t, err)

	assert.True(t, sc.Latest().Held("circle"))
	assert.True(t, sc.Latest().Held("cross"))
	assert.True(t, sc.Latest().Held("circle"))
	assert.False(t, sc.Done())
}

func TestScenario_Errors(t *testing.T) {
	_, err := NewScenario(ScenarioFile{})
	assert.Error(t, err)

	_, err = NewScenario(ScenarioFile{Steps: []Step{{Ticks: -1}}})
	assert.Error(t, err)
}

func TestScenario_LargeTickCountIsNotExpanded(t *testing.T) {
	sc, err := NewScenario(ScenarioFile{
		Steps: []Step{
			{Ticks: 100000000, Buttons: map[string]int{"select": 1}},
			{Buttons: map[string]int{"start": 1}},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 100000001, sc.Len())
	assert.Len(t, sc.steps, 2)

	for i := 0; i < 1000; i++ {
		require.True(t, sc.Latest().Held("select"))
	}
	assert.False(t, sc.Done())
}

func TestScenario_LoopWithMultiTickSteps(t *testing.T) {
	sc, err := NewScenario(ScenarioFile{
		Loop: true,
		Steps: []Step{
			{Ticks: 2, Buttons: map[string]int{"circle": 1}},
			{Buttons: map[string]int{"cross": 1}},
		},
	})
	require.NoError(t, err)

	var got []bool
	for i := 0; i < 6; i++ {
		got = append(got, sc.Latest().Held("circle"))
	}
	assert.Equal(t, []bool{true, true, false, true, true, false}, got)
}

func TestLoadScenario(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drive.yaml")
	body := `
steps:
  - ticks: 3
    buttons: {start: 1}
  - ticks: 2
    analog: {left_y: 0}
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	sc, err := LoadScenario(path)
	require.NoError(t, err)
	assert.Equal(t, 5, sc.Len())

	_, err = LoadScenario(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
