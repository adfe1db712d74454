package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/matzehuels/attribute/pkg/deps"
	"github.com/matzehuels/attribute/pkg/errors"
	pkgio "github.com/matzehuels/attribute/pkg/io"
	"github.com/matzehuels/attribute/pkg/pipeline"
)

const testLock = `PODS:
  - Alamofire (4.7.3)
  - SwiftLint (0.27.0):
    - SomeSubdep (1.0.0)

DEPENDENCIES:
  - Alamofire
`

func newTestProject(t *testing.T, licenses map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "Podfile.lock"), []byte(testLock), 0644); err != nil {
		t.Fatal(err)
	}
	for name, text := range licenses {
		podDir := filepath.Join(dir, "Pods", name)
		if err := os.MkdirAll(podDir, 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(podDir, "LICENSE"), []byte(text), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

// execute runs the root command with args and returns its stdout and error.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	c := New(&bytes.Buffer{}, LogInfo)
	root := c.RootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := New(&bytes.Buffer{}, LogInfo).RootCommand()

	want := []string{"completion", "generate", "list", "serve", "show"}
	var got []string
	for _, cmd := range root.Commands() {
		got = append(got, cmd.Name())
	}
	for _, name := range want {
		found := false
		for _, g := range got {
			if g == name {
				found = true
			}
		}
		if !found {
			t.Errorf("subcommand %q not registered (have %v)", name, got)
		}
	}
}

func TestRootGeneratesReport(t *testing.T) {
	dir := newTestProject(t, map[string]string{"Alamofire": "A", "SwiftLint": "S"})

	if _, err := execute(t, "--dir", dir); err != nil {
		t.Fatalf("execute error: %v", err)
	}

	ds, err := pkgio.ImportReport(filepath.Join(dir, "attributions.json"))
	if err != nil {
		t.Fatal(err)
	}
	if names := deps.Names(ds); !reflect.DeepEqual(names, []string{"Alamofire", "SwiftLint"}) {
		t.Errorf("names = %v", names)
	}
}

func TestGenerateOutputFlag(t *testing.T) {
	dir := newTestProject(t, map[string]string{"Alamofire": "A"})

	if _, err := execute(t, "generate", "-C", dir, "-o", "credits.json"); err != nil {
		t.Fatalf("execute error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "credits.json")); err != nil {
		t.Errorf("credits.json not written: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "attributions.json")); !os.IsNotExist(err) {
		t.Error("attributions.json should not be written with -o")
	}
}

func TestGenerateMissingLockfile(t *testing.T) {
	_, err := execute(t, "generate", "--dir", t.TempDir())
	if !errors.Is(err, errors.ErrCodeRead) {
		t.Errorf("error = %v, want READ_ERROR", err)
	}
}

func TestGenerateInvalidConfig(t *testing.T) {
	dir := newTestProject(t, nil)
	if err := os.WriteFile(filepath.Join(dir, ".attribute.toml"), []byte(`bogus = 1`), 0644); err != nil {
		t.Fatal(err)
	}
	_, err := execute(t, "--dir", dir)
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("error = %v, want INVALID_CONFIG", err)
	}
}

func TestRootRejectsArguments(t *testing.T) {
	if _, err := execute(t, "unexpected"); err == nil {
		t.Error("root command should reject positional arguments")
	}
}

func TestListCommand(t *testing.T) {
	dir := newTestProject(t, map[string]string{"Alamofire": "Copyright (c) Alamofire\nMore text"})

	out, err := execute(t, "list", "--dir", dir)
	if err != nil {
		t.Fatalf("execute error: %v", err)
	}
	for _, want := range []string{"NAME", "Alamofire", "4.7.3", "Copyright (c) Alamofire"} {
		if !strings.Contains(out, want) {
			t.Errorf("list output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "More text") {
		t.Error("list should only show the first license line")
	}
	if _, err := os.Stat(filepath.Join(dir, "attributions.json")); !os.IsNotExist(err) {
		t.Error("list should not write a report")
	}
}

func TestShowCommand(t *testing.T) {
	dir := newTestProject(t, nil)
	path := filepath.Join(dir, "attributions.json")
	if err := pkgio.ExportReport([]deps.Dependency{{Name: "Alamofire", Version: "4.7.3", License: "A"}}, path); err != nil {
		t.Fatal(err)
	}

	if _, err := execute(t, "show", path); err != nil {
		t.Errorf("show with path: %v", err)
	}
	if _, err := execute(t, "show", "--dir", dir); err != nil {
		t.Errorf("show with project dir: %v", err)
	}
	if _, err := execute(t, "show", filepath.Join(dir, "missing.json")); err == nil {
		t.Error("show should fail for a missing report")
	}
}

func TestCompletionCommand(t *testing.T) {
	out, err := execute(t, "completion", "bash")
	if err != nil {
		t.Fatalf("completion error: %v", err)
	}
	if !strings.Contains(out, "attribute") {
		t.Error("bash completion should mention the command name")
	}
	if _, err := execute(t, "completion", "tcsh"); err == nil {
		t.Error("completion should reject unknown shells")
	}
}

func TestPipelineOptions(t *testing.T) {
	dir := newTestProject(t, nil)
	if err := os.WriteFile(filepath.Join(dir, ".attribute.toml"), []byte(`output = "from-config.json"`), 0644); err != nil {
		t.Fatal(err)
	}

	c := New(&bytes.Buffer{}, LogInfo)
	c.project.dir = dir

	opts, err := c.pipelineOptions()
	if err != nil {
		t.Fatal(err)
	}
	if got := opts.OutputPath(); got != filepath.Join(dir, "from-config.json") {
		t.Errorf("OutputPath() = %q, want config output", got)
	}

	c.project.output = "from-flag.json"
	opts, err = c.pipelineOptions()
	if err != nil {
		t.Fatal(err)
	}
	if got := opts.OutputPath(); got != filepath.Join(dir, "from-flag.json") {
		t.Errorf("OutputPath() = %q, want flag output", got)
	}
}

func TestReportRouter(t *testing.T) {
	dir := newTestProject(t, map[string]string{"Alamofire": "A"})
	c := New(&bytes.Buffer{}, LogInfo)
	c.project.dir = dir
	opts, err := c.pipelineOptions()
	if err != nil {
		t.Fatal(err)
	}

	srv := httptest.NewServer(newReportRouter(c.newRunner(), opts))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/attributions.json")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
	ds, err := pkgio.ReadReport(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	if len(ds) != 1 || ds[0].Name != "Alamofire" {
		t.Errorf("served report = %+v", ds)
	}
	if _, err := os.Stat(filepath.Join(dir, "attributions.json")); !os.IsNotExist(err) {
		t.Error("serve should not write a report")
	}
}

func TestReportRouterMissingLockfile(t *testing.T) {
	opts := pipeline.Options{Dir: t.TempDir()}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}
	srv := httptest.NewServer(newReportRouter(pipeline.NewRunner(nil), opts))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/attributions.json")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

func TestReportRouterHealth(t *testing.T) {
	srv := httptest.NewServer(newReportRouter(pipeline.NewRunner(nil), pipeline.Options{}))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body["status"] != "ok" || body["version"] == "" {
		t.Errorf("health body = %v", body)
	}
}

func TestLicenseSummary(t *testing.T) {
	long := strings.Repeat("x", 60)
	tests := []struct {
		name string
		text string
		want string
	}{
		{"first line", "MIT License\n\nCopyright", "MIT License"},
		{"leading blank lines", "\n\n   The MIT License (MIT)  \n", "The MIT License (MIT)"},
		{"empty", "", ""},
		{"truncated", long, strings.Repeat("x", licenseSummaryWidth-1) + "…"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := licenseSummary(tt.text); got != tt.want {
				t.Errorf("licenseSummary() = %q, want %q", got, tt.want)
			}
		})
	}
}
