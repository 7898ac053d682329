package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gideon.toml")
	err := os.WriteFile(path, []byte(content), 0644)
	if err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Run("an empty path yields the default config", func(t *testing.T) {
		c, err := loadConfig("")
		if err != nil {
			t.Fatal(err)
		}
		if c.Format != "" || c.Color != nil || c.ProbeErrors {
			t.Fatalf("unexpected config: %+v", c)
		}
	})

	t.Run("all keys are read", func(t *testing.T) {
		path := writeConfig(t, `
format = "yaml"
color = false
probe_errors = true
`)
		c, err := loadConfig(path)
		if err != nil {
			t.Fatal(err)
		}
		if c.Format != formatYAML || c.Color == nil || *c.Color || !c.ProbeErrors {
			t.Fatalf("unexpected config: %+v", c)
		}
	})

	t.Run("a path can contain environment variables", func(t *testing.T) {
		path := writeConfig(t, `format = "json"`)
		t.Setenv("GIDEON_TEST_CONFIG_DIR", filepath.Dir(path))
		c, err := loadConfig("$GIDEON_TEST_CONFIG_DIR/gideon.toml")
		if err != nil {
			t.Fatal(err)
		}
		if c.Format != formatJSON {
			t.Fatalf("unexpected format: %v", c.Format)
		}
	})

	tests := []struct {
		caption string
		content string
	}{
		{
			caption: "an unknown key is an error",
			content: `colour = false`,
		},
		{
			caption: "an unknown format is an error",
			content: `format = "xml"`,
		},
		{
			caption: "a malformed file is an error",
			content: `format = `,
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			_, err := loadConfig(writeConfig(t, tt.content))
			if err == nil {
				t.Fatal("an error was expected")
			}
		})
	}

	t.Run("a missing file is an error", func(t *testing.T) {
		_, err := loadConfig(filepath.Join(t.TempDir(), "missing.toml"))
		if err == nil {
			t.Fatal("an error was expected")
		}
	})
}
