package config

import (
	"os"
	"testing"
)

func writeFile(name, content string) error {
	return os.WriteFile(name, []byte(content), 0o600)
}

// unsetenv remove a variável durante o teste e a restaura no cleanup
func unsetenv(t *testing.T, key string) {
	t.Helper()
	prev, ok := os.LookupEnv(key)
	if err := os.Unsetenv(key); err != nil {
		t.Fatalf("unsetenv %s: %v", key, err)
	}
	t.Cleanup(func() {
		if ok {
			os.Setenv(key, prev)
		} else {
			os.Unsetenv(key)
		}
	})
}
