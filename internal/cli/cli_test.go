package cli

import (
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
)

func TestRootCommandHasSubcommands(t *testing.T) {
	root := newRootCommand()
	names := make([]string, 0, len(root.Commands()))
	for _, cmd := range root.Commands() {
		names = append(names, cmd.Name())
	}
	for _, name := range []string{"check", "scan"} {
		assert.Contains(t, names, name, "missing subcommand: %s", name)
	}
}

func TestRootCommandVersion(t *testing.T) {
	root := newRootCommand()
	assert.Equal(t, "dev", root.Version)
}

func TestCheckCommandFlags(t *testing.T) {
	cmd := newCheckCommand()
	flags := []string{
		"root", "app", "channel", "server",
		"access-key", "timeout", "report",
	}
	for _, name := range flags {
		flag := cmd.Flags().Lookup(name)
		assert.NotNil(t, flag, "missing flag: %s", name)
	}
}

func TestScanCommandFlags(t *testing.T) {
	cmd := newScanCommand()
	assert.NotNil(t, cmd.Flags().Lookup("root"))
	assert.NotNil(t, cmd.Flags().Lookup("all"))
}

func TestExitCodeForError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name: "invalid argument",
			err: errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("failed to parse package manifest"),
			expected: 2,
		},
		{
			name: "failed precondition",
			err: errbuilder.New().
				WithCode(errbuilder.CodeFailedPrecondition).
				WithMsg("dependency folder missing: camera-kit"),
			expected: 4,
		},
		{
			name: "not found",
			err: errbuilder.New().
				WithCode(errbuilder.CodeNotFound).
				WithMsg("package manifest not found"),
			expected: 5,
		},
		{
			name: "native metadata missing",
			err: errbuilder.New().
				WithCode(errbuilder.CodeNotFound).
				WithMsg("native package metadata missing for channel staging"),
			expected: 6,
		},
		{
			name: "internal",
			err: errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("channel lookup failed"),
			expected: 5,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, exitCodeForError(tc.err))
		})
	}
}
