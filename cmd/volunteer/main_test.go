package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgo/volunteer/internal/model"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	out := new(bytes.Buffer)
	cmd := newRootCmd()
	cmd.SetOut(out)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// ============================================================================
// version
// ============================================================================

func TestVersionCmd_Executes(t *testing.T) {
	originalVersion := version
	version = "test-version-1.0.0"
	defer func() { version = originalVersion }()

	out, err := execute(t, "version")

	assert.NoError(t, err)
	assert.Contains(t, out, "volunteer version test-version-1.0.0")
}

func TestVersionCmd_IgnoresBrokenConfig(t *testing.T) {
	t.Setenv("VOLUNTEER_LOG_LEVEL", "nonsense")

	out, err := execute(t, "version")

	assert.NoError(t, err)
	assert.Contains(t, out, "volunteer version")
}

// ============================================================================
// demo
// ============================================================================

func TestDemoCmd(t *testing.T) {
	out, err := execute(t, "demo")

	require.NoError(t, err)
	assert.Contains(t, out, "registered volunteer v@x.com")
	assert.Contains(t, out, "registered organization o@x.com")
	assert.Contains(t, out, "#1 Cleanup")
	assert.Contains(t, out, "r@x.com cannot close #1")
	assert.Contains(t, out, "matches for v@x.com (1)")
	assert.Contains(t, out, "application #1 opportunity=#1 volunteer=v@x.com status=PENDING")
	assert.Contains(t, out, "status=ACCEPTED")
	assert.NotContains(t, out, "metrics")
}

func TestDemoCmd_WithMetrics(t *testing.T) {
	t.Setenv("VOLUNTEER_METRICS_ENABLED", "true")

	out, err := execute(t, "demo")

	require.NoError(t, err)
	assert.Contains(t, out, `volunteer_applications_created_total{interest="env"} 1`)
	assert.Contains(t, out, `volunteer_application_status_changes_total{from="PENDING",to="ACCEPTED"} 1`)
}

func TestDemoCmd_InvalidLogLevelFlag(t *testing.T) {
	_, err := execute(t, "--log-level", "loud", "demo")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "VOLUNTEER_LOG_LEVEL")
}

// ============================================================================
// seed
// ============================================================================

const seedFile = `
[[organizations]]
email = "o@x.com"
password = "pw"

  [[organizations.opportunities]]
  title = "Cleanup"
  interest = "env"

  [[organizations.opportunities]]
  title = "Bake sale"
  interest = "food"

[[volunteers]]
email = "v@x.com"
interests = ["food"]
`

func TestSeedCmd(t *testing.T) {
	path := writeFile(t, "seed.toml", seedFile)

	out, err := execute(t, "seed", path, "--match", "v@x.com")

	require.NoError(t, err)
	assert.Contains(t, out, "loaded 1 organizations, 1 volunteers")
	assert.Contains(t, out, "opportunities (2)")
	assert.Contains(t, out, "matches for v@x.com (1)")
	assert.Contains(t, out, "#2 Bake sale")
}

func TestSeedCmd_PathFromConfigFile(t *testing.T) {
	seedPath := writeFile(t, "seed.toml", seedFile)
	cfgPath := writeFile(t, "volunteer.toml", "[seed]\npath = \""+filepath.ToSlash(seedPath)+"\"\n")

	out, err := execute(t, "--config", cfgPath, "seed")

	require.NoError(t, err)
	assert.Contains(t, out, "opportunities (2)")
}

func TestSeedCmd_NoFile(t *testing.T) {
	_, err := execute(t, "seed")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "seed.path")
}

func TestSeedCmd_UnknownVolunteer(t *testing.T) {
	path := writeFile(t, "seed.toml", seedFile)

	_, err := execute(t, "seed", path, "--match", "o@x.com")

	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrNotFound)
	assert.Equal(t, 4, exitCode(err))
}

// ============================================================================
// exit codes
// ============================================================================

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"plain", errors.New("boom"), 1},
		{"validation", model.NewValidationError("x"), 2},
		{"authorization", model.NewAuthorizationError("x"), 3},
		{"wrapped not found", errors.Join(errors.New("ctx"), model.NewNotFoundError("x")), 4},
		{"capacity", model.NewCapacityError("interests", 3), 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCode(tt.err))
		})
	}
}
