package notify

import (
	"os"
	"path/filepath"
	"testing"

	ps "github.com/mitchellh/go-ps"
)

type mockProcess struct {
	pid        int
	executable string
}

func (m *mockProcess) Pid() int           { return m.pid }
func (m *mockProcess) PPid() int          { return 0 }
func (m *mockProcess) Executable() string { return m.executable }

func writeLockfile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "agent.lock")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFindAndValidateAgent(t *testing.T) {
	oldFindProcessFunc := findProcessFunc
	defer func() { findProcessFunc = oldFindProcessFunc }()

	findProcessFunc = func(pid int) (ps.Process, error) {
		return &mockProcess{pid: pid, executable: "ritual-agent"}, nil
	}

	t.Run("valid lockfile", func(t *testing.T) {
		path := writeLockfile(t, "8099|1234|s3cret\n")
		port, secret, err := findAndValidateAgent(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if port != "8099" || secret != "s3cret" {
			t.Errorf("got port %q secret %q, want 8099 and s3cret", port, secret)
		}
	})

	t.Run("missing lockfile", func(t *testing.T) {
		if _, _, err := findAndValidateAgent(filepath.Join(t.TempDir(), "nope.lock")); err == nil {
			t.Error("expected error for missing lockfile")
		}
	})

	t.Run("malformed lockfile", func(t *testing.T) {
		path := writeLockfile(t, "justoneField")
		if _, _, err := findAndValidateAgent(path); err == nil {
			t.Error("expected error for malformed lockfile")
		}
	})

	t.Run("invalid port", func(t *testing.T) {
		path := writeLockfile(t, "99999|1234|s3cret")
		if _, _, err := findAndValidateAgent(path); err == nil {
			t.Error("expected error for out-of-range port")
		}
	})

	t.Run("empty secret", func(t *testing.T) {
		path := writeLockfile(t, "8099|1234| ")
		if _, _, err := findAndValidateAgent(path); err == nil {
			t.Error("expected error for empty secret")
		}
	})

	t.Run("wrong executable", func(t *testing.T) {
		findProcessFunc = func(pid int) (ps.Process, error) {
			return &mockProcess{pid: pid, executable: "impostor"}, nil
		}
		path := writeLockfile(t, "8099|1234|s3cret")
		if _, _, err := findAndValidateAgent(path); err == nil {
			t.Error("expected error when the pid is not the agent")
		}
	})

	t.Run("process gone", func(t *testing.T) {
		findProcessFunc = func(pid int) (ps.Process, error) {
			return nil, nil
		}
		path := writeLockfile(t, "8099|1234|s3cret")
		if _, _, err := findAndValidateAgent(path); err == nil {
			t.Error("expected error when the process is gone")
		}
	})
}
