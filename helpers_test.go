package vector

import (
	"os"
	"testing"
)

// requireShell skips the test if /bin/sh is not available
func requireShell(t *testing.T) {
	t.Helper()
	if _, err := os.Stat("/bin/sh"); err != nil {
		t.Skip("/bin/sh not available")
	}
}

// writeEnvFiles creates dir and writes the given files into it
func writeEnvFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	if err := os.MkdirAll(dir, DirMode); err != nil {
		t.Fatal(err)
	}
	for name, content := range files {
		if err := os.WriteFile(dir+"/"+name, []byte(content), FileMode); err != nil {
			t.Fatal(err)
		}
	}
}
