package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// ============================================================================
// Test Helpers
// ============================================================================

// executeCommand runs the root command with args and returns what it wrote.
// Global flag state is restored afterwards.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	origCfgFile := cfgFile
	t.Cleanup(func() {
		cfgFile = origCfgFile
		logLevel = ""
		logFormat = ""
		dataPath = ""
		noColor = false
		aliveKey = ""
		factName = ""
		listFacts = false
		rootCmd.PersistentFlags().Lookup("config").Changed = false
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(append([]string{"--no-color", "--log-level", "error"}, args...))

	err := rootCmd.Execute()
	return out.String(), err
}

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const smallFixture = `[
  {"dinosaurId": "YLtkN9R37", "name": "Allosaurus", "pronunciation": "AL-oh-sore-us",
   "lengthInMeters": 12, "period": "Late Jurassic", "mya": [156, 144], "info": "Apex predator."},
  {"dinosaurId": "WHQcpcOj0G", "name": "Dracorex", "pronunciation": "dray-ko-rex",
   "lengthInMeters": 3, "period": "Late Cretaceous", "mya": [66], "info": "Spiky skull."},
  {"dinosaurId": "nf01", "name": "Nofactosaurus", "pronunciation": "no-FACT-o-sore-us",
   "lengthInMeters": 12, "period": "Late Cretaceous", "mya": [66, 65], "info": "Unlisted."}
]`
