package store

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCheckExists(t *testing.T) {
	tmpDir := t.TempDir()

	tests := []struct {
		name      string
		setup     func(string) error
		wantExist bool
		wantError bool
	}{
		{
			name: "fixture exists",
			setup: func(dir string) error {
				f, err := os.Create(filepath.Join(dir, DefaultDBFile))
				if err != nil {
					return err
				}
				return f.Close()
			},
			wantExist: true,
			wantError: false,
		},
		{
			name: "fixture does not exist",
			setup: func(dir string) error {
				return nil
			},
			wantExist: false,
			wantError: false,
		},
		{
			name: "fixture path is directory",
			setup: func(dir string) error {
				return os.Mkdir(filepath.Join(dir, DefaultDBFile), 0755)
			},
			wantExist: false,
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testDir := filepath.Join(tmpDir, tt.name)
			if err := os.Mkdir(testDir, 0755); err != nil {
				t.Fatalf("failed to create test dir: %v", err)
			}

			if err := tt.setup(testDir); err != nil {
				t.Fatalf("setup failed: %v", err)
			}

			exists, err := CheckExists(filepath.Join(testDir, DefaultDBFile))

			if tt.wantError && err == nil {
				t.Error("expected error but got none")
			}
			if !tt.wantError && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if exists != tt.wantExist {
				t.Errorf("got exists=%v, want %v", exists, tt.wantExist)
			}
		})
	}
}

func TestRemove(t *testing.T) {
	tmpDir := t.TempDir()

	t.Run("removes existing file", func(t *testing.T) {
		dbPath := filepath.Join(tmpDir, "old.db")
		if err := os.WriteFile(dbPath, []byte("stale"), 0644); err != nil {
			t.Fatalf("setup failed: %v", err)
		}

		if err := Remove(dbPath); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := os.Stat(dbPath); !os.IsNotExist(err) {
			t.Errorf("file still exists after Remove")
		}
	})

	t.Run("missing file is not an error", func(t *testing.T) {
		if err := Remove(filepath.Join(tmpDir, "never-existed.db")); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}
