package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"generate-image/internal/openrouter"
)

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	// Flag values persist across Execute calls; reset to defaults.
	aspectRatioFlag = openrouter.DefaultAspectRatio
	imageSizeFlag = openrouter.DefaultImageSize
	proFlag = false
	verboseFlag = false
	rootCmd.SilenceUsage = false
	if help := rootCmd.Flags().Lookup("help"); help != nil {
		require.NoError(t, help.Value.Set("false"))
	}

	if args == nil {
		args = []string{} // nil would make cobra fall back to os.Args
	}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestUnknownFlag(t *testing.T) {
	output, err := executeCommand(t, "prompt", "out.png", "--bogus")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown flag")
	require.Contains(t, output, "Usage:")
}

func TestMissingArguments(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no args", nil},
		{"prompt only", []string{"a cat"}},
		{"too many args", []string{"a cat", "out.png", "extra"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := executeCommand(t, tc.args...)
			require.Error(t, err)
		})
	}
}

func TestHelp(t *testing.T) {
	output, err := executeCommand(t, "--help")
	require.NoError(t, err)
	require.Contains(t, output, "Usage:")
	require.Contains(t, output, "--aspect-ratio")
	require.Contains(t, output, "OPENROUTER_API_KEY")
}

func TestMissingAPIKey(t *testing.T) {
	t.Setenv("OPENROUTER_API_KEY", "")

	_, err := executeCommand(t, "a cat", filepath.Join(t.TempDir(), "out.png"))
	require.ErrorIs(t, err, openrouter.ErrMissingAPIKey)
}
