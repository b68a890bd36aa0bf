package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionPrintsBuildVersion(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "version")
	require.NoError(t, err)
	assert.Equal(t, "dev\n", stdout)
}

func TestAssetCreatesWallpaperOnce(t *testing.T) {
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, "asset")
	require.NoError(t, err)

	path := filepath.Join(home, "breach.bmp")
	assert.Equal(t, path+"\n", stdout)
	first, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, first.Size())

	stdout, _, err = executeCLI(t, home, "asset")
	require.NoError(t, err)
	assert.Equal(t, path+"\n", stdout)
	second, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, first.ModTime(), second.ModTime())
}

func TestAssetForceRegenerates(t *testing.T) {
	home := t.TempDir()
	path := filepath.Join(home, "breach.bmp")
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0o644))

	_, _, err := executeCLI(t, home, "asset", "--force")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "BM", string(data[:2]))
}

func TestReplayReportsHijackCycle(t *testing.T) {
	home := t.TempDir()
	scenario := writeScenarioFixture(t, home)

	stdout, _, err := executeCLI(t, home, "replay", "--scenario", scenario)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Replay: hijack cycle")
	assert.Contains(t, stdout, "frames: 3  transitions: 2")
	assert.Contains(t, stdout, `original: C:\old.jpg style=6 tile=0`)
	assert.Contains(t, stdout, `final: C:\old.jpg style=6 tile=0`)
	assert.Contains(t, stdout, "desktop calls: 1 reads, 2 writes, 2 notifies")
}

func TestReplayJSONOutput(t *testing.T) {
	home := t.TempDir()
	scenario := writeScenarioFixture(t, home)

	stdout, _, err := executeCLI(t, home, "replay", "--scenario", scenario, "--json")
	require.NoError(t, err)
	require.True(t, json.Valid([]byte(stdout)))

	var result struct {
		Scenario    string
		Transitions int
		Frames      []struct {
			State  string
			Signal string
		}
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &result))
	assert.Equal(t, "hijack cycle", result.Scenario)
	assert.Equal(t, 2, result.Transitions)
	require.Len(t, result.Frames, 3)
	assert.Equal(t, "hijacked", result.Frames[0].State)
	assert.Equal(t, "task", result.Frames[0].Signal)
	assert.Equal(t, "normal", result.Frames[2].State)
}

func TestReplayAgainstConfiguredFileDesktop(t *testing.T) {
	home := t.TempDir()
	scenario := writeScenarioFixture(t, home)
	desktopFile := writeDesktopFixture(t, home)

	_, _, err := executeCLI(t, home, "replay", "--scenario", scenario, "--desktop", "configured")
	require.NoError(t, err)

	settings := readDesktopFixture(t, desktopFile)
	assert.Equal(t, `D:\cats.png`, settings["wallpaper"])
	assert.Equal(t, "10", settings["wallpaper_style"])
	assert.NotEmpty(t, settings["refreshed_at"])
}

func TestReplayMissingScenario(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "replay", "--scenario", filepath.Join(home, "nope.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scenario not found")
}

func TestReplayRequiresScenarioFlag(t *testing.T) {
	_, _, err := executeCLI(t, t.TempDir(), "replay")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag(s) \"scenario\" not set")
}

func TestReplayRejectsUnknownDesktop(t *testing.T) {
	home := t.TempDir()
	scenario := writeScenarioFixture(t, home)

	_, _, err := executeCLI(t, home, "replay", "--scenario", scenario, "--desktop", "x11")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown --desktop "x11"`)
}

func TestRestoreWritesFileDesktop(t *testing.T) {
	home := t.TempDir()
	desktopFile := filepath.Join(home, ".config", "honk", "desktop.toml")

	stdout, _, err := executeCLI(t, home, "restore", "--path", `C:\old.jpg`, "--style", "6")
	require.NoError(t, err)
	assert.Contains(t, stdout, `restored C:\old.jpg (style 6, tile 0)`)

	settings := readDesktopFixture(t, desktopFile)
	assert.Equal(t, `C:\old.jpg`, settings["wallpaper"])
	assert.Equal(t, "6", settings["wallpaper_style"])
	assert.Equal(t, "0", settings["tile_wallpaper"])
}

func TestRestoreRequiresPath(t *testing.T) {
	_, _, err := executeCLI(t, t.TempDir(), "restore")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag(s) \"path\" not set")
}

func TestRunIsWindowsOnly(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("live input is available on windows")
	}

	_, _, err := executeCLI(t, t.TempDir(), "run")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not supported on this platform")
}

func TestRunValidatesAnchor(t *testing.T) {
	_, _, err := executeCLI(t, t.TempDir(), "run", "--anchor", "1,2,3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--anchor needs exactly two values")
}

func TestUnknownLogLevelFailsWiring(t *testing.T) {
	_, _, err := executeCLI(t, t.TempDir(), "version", "--log-level", "loud")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "wire logger")
}

func executeCLI(t *testing.T, home string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", home)
	t.Setenv("HONK_ASSET_PATH", filepath.Join(home, "breach.bmp"))
	t.Setenv("HONK_DESKTOP_BACKEND", "file")

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeScenarioFixture(t *testing.T, home string) string {
	t.Helper()

	scenario := `version = 1
name = "hijack cycle"
width = 64
height = 36

[desktop]
wallpaper = 'C:\old.jpg'
wallpaper_style = "6"
tile_wallpaper = "0"

[tasks]
AttackMouse = 7

[actor]
max_run_speed = 200.0
max_charged_acceleration = 2300.0
position = [500.0, 500.0]

[[frames]]
at = "0s"
task = 7

[[frames]]
at = "16ms"
task = 7

[[frames]]
at = "32ms"
task = 2
`

	path := filepath.Join(home, "hijack_cycle.toml")
	require.NoError(t, os.WriteFile(path, []byte(scenario), 0o644))
	return path
}

func writeDesktopFixture(t *testing.T, home string) string {
	t.Helper()

	dir := filepath.Join(home, ".config", "honk")
	require.NoError(t, os.MkdirAll(dir, 0o700))

	desktop := `version = 1
wallpaper = 'D:\cats.png'
wallpaper_style = "10"
tile_wallpaper = "0"
`

	path := filepath.Join(dir, "desktop.toml")
	require.NoError(t, os.WriteFile(path, []byte(desktop), 0o600))
	return path
}

func readDesktopFixture(t *testing.T, path string) map[string]any {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var settings map[string]any
	require.NoError(t, toml.Unmarshal(data, &settings))
	return settings
}
