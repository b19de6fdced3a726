package system

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// fakeRunner records invocations and replays canned responses keyed by
// the joined command line.
type fakeRunner struct {
	calls     []string
	responses map[string]string
	failures  map[string]error
}

func newFakeRunner() *fakeRunner {
	return &fakeRunner{
		responses: make(map[string]string),
		failures:  make(map[string]error),
	}
}

func (f *fakeRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
	cmdline := strings.Join(append([]string{name}, args...), " ")
	f.calls = append(f.calls, cmdline)
	if err, ok := f.failures[cmdline]; ok {
		return "", err
	}
	return f.responses[cmdline], nil
}

func TestServicesIsActive(t *testing.T) {
	run := newFakeRunner()
	run.responses["systemctl is-active postgresql"] = "active"
	run.failures["systemctl is-active nginx"] = errors.New("exit status 3")

	svc := NewServices(run)
	if !svc.IsActive(context.Background(), "postgresql") {
		t.Error("IsActive(postgresql) = false, want true")
	}
	if svc.IsActive(context.Background(), "nginx") {
		t.Error("IsActive(nginx) = true, want false")
	}
}

func TestServicesLifecycle(t *testing.T) {
	run := newFakeRunner()
	svc := NewServices(run)
	ctx := context.Background()

	if err := svc.Start(ctx, "postgresql"); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if err := svc.Enable(ctx, "postgresql"); err != nil {
		t.Fatalf("Enable() error = %v", err)
	}

	want := []string{
		"sudo systemctl start postgresql",
		"sudo systemctl enable postgresql",
	}
	for i, w := range want {
		if run.calls[i] != w {
			t.Errorf("call %d = %q, want %q", i, run.calls[i], w)
		}
	}
}

func TestServicesStartFailureWraps(t *testing.T) {
	run := newFakeRunner()
	run.failures["sudo systemctl start postgresql"] = errors.New("unit not found")

	err := NewServices(run).Start(context.Background(), "postgresql")
	if err == nil {
		t.Fatal("Start() error = nil, want error")
	}
	if !strings.Contains(err.Error(), "postgresql") {
		t.Errorf("Start() error %q does not name the service", err)
	}
}

func TestPackageInstalled(t *testing.T) {
	run := newFakeRunner()
	run.responses["dpkg -s postgresql"] = "Status: install ok installed"
	run.failures["dpkg -s nothere"] = errors.New("not installed")

	svc := NewServices(run)
	if !svc.PackageInstalled(context.Background(), "postgresql") {
		t.Error("PackageInstalled(postgresql) = false")
	}
	if svc.PackageInstalled(context.Background(), "nothere") {
		t.Error("PackageInstalled(nothere) = true")
	}
}

func TestPythonCreateVenv(t *testing.T) {
	run := newFakeRunner()
	if err := NewPython(run).CreateVenv(context.Background(), "/tmp/proj/.venv"); err != nil {
		t.Fatalf("CreateVenv() error = %v", err)
	}
	if len(run.calls) != 1 || !strings.HasSuffix(run.calls[0], "-m venv /tmp/proj/.venv") {
		t.Errorf("CreateVenv() ran %v", run.calls)
	}
}

func TestPythonInstallRequirements(t *testing.T) {
	dir := t.TempDir()
	req := filepath.Join(dir, "requirements.txt")
	if err := os.WriteFile(req, []byte("django\n"), 0644); err != nil {
		t.Fatal(err)
	}

	t.Run("success", func(t *testing.T) {
		run := newFakeRunner()
		run.responses["/venv/bin/pip install -r "+req] = "Successfully installed django"

		out, err := NewPython(run).InstallRequirements(context.Background(), "/venv/bin/pip", req)
		if err != nil {
			t.Fatalf("InstallRequirements() error = %v", err)
		}
		if !strings.Contains(out, "Successfully installed") {
			t.Errorf("InstallRequirements() output = %q", out)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		run := newFakeRunner()
		_, err := NewPython(run).InstallRequirements(context.Background(), "/venv/bin/pip", filepath.Join(dir, "nope.txt"))
		if err == nil {
			t.Fatal("InstallRequirements() error = nil, want error")
		}
		if len(run.calls) != 0 {
			t.Errorf("InstallRequirements() ran %v before checking the file", run.calls)
		}
	})
}

func TestPythonFreezeRequirements(t *testing.T) {
	dir := t.TempDir()
	run := newFakeRunner()
	run.responses["/venv/bin/pip freeze"] = "django==4.2.1\ngunicorn==21.2.0"

	path, err := NewPython(run).FreezeRequirements(context.Background(), "/venv/bin/pip", dir)
	if err != nil {
		t.Fatalf("FreezeRequirements() error = %v", err)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(content), "gunicorn==21.2.0") {
		t.Errorf("FreezeRequirements() wrote %q", content)
	}
}
