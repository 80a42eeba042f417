package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	cerrors "github.com/matzehuels/castcolor/pkg/errors"
	cio "github.com/matzehuels/castcolor/pkg/io"
)

func TestMain(m *testing.M) {
	statusOut = io.Discard
	os.Exit(m.Run())
}

// execute runs the root command with an isolated config directory and
// returns what it wrote to stdout.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	return executeIn(t, stdin, args...)
}

// executeIn is execute without resetting the environment.
func executeIn(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var logs, out bytes.Buffer
	c := New(&logs, LogInfo)
	root := c.RootCommand()
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

const yesSummary = `Found 1 solutions
Role 1 is played by actor 1
Role 2 is played by actor 3
Role 3 is played by actor 1
Role 4 is played by actor 2
Role 5 is played by actor 4
Role 6 is played by actor 4
`

func TestRootModes(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		stdin string
		want  string
	}{
		{"demo no", []string{"no"}, "", "No solution found\n"},
		{"demo yes", []string{"yes"}, "", yesSummary},
		{"demo smallest", []string{"smallest"}, "", "No solution found\n"},
		{"to-coloring", []string{"to-coloring"}, "2\n1\n2\n1 1\n1 2\n2 1 2\n", "2\n1\n2\n1 2\n"},
		{"to-casting", []string{"to-casting"}, "2 1 1\n1 2\n", "5\n3\n4\n1 1\n1 2\n1 3\n1 4\n1 4\n2 1 3\n2 2 3\n2 4 5\n"},
		{"no mode uses default reduction", nil, "2 1 1\n1 2\n", "5\n3\n4\n1 1\n1 2\n1 3\n1 4\n1 4\n2 1 3\n2 2 3\n2 4 5\n"},
		{"unknown mode uses default reduction", []string{"maybe"}, "2 1 1\n1 2\n", "5\n3\n4\n1 1\n1 2\n1 3\n1 4\n1 4\n2 1 3\n2 2 3\n2 4 5\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := execute(t, tt.stdin, tt.args...)
			if err != nil {
				t.Fatalf("execute: %v", err)
			}
			if got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRootModeMalformedInput(t *testing.T) {
	_, err := execute(t, "3 2", "to-casting")
	if !cerrors.Is(err, cerrors.ErrCodeInvalidInput) {
		t.Fatalf("error = %v, want INVALID_INPUT", err)
	}
	if !strings.Contains(err.Error(), "number of colors") {
		t.Errorf("error %q should name the missing field", err)
	}
}

func TestConfigDefaultReduction(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(`default_reduction = "to-coloring"`+"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := executeIn(t, "2\n1\n2\n1 1\n1 2\n2 1 2\n", "--config", path)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if got != "2\n1\n2\n1 2\n" {
		t.Errorf("output = %q", got)
	}
}

func TestConfigInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`log_level = "loud"`+"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := execute(t, "", "--config", path, "demo", "yes"); !cerrors.Is(err, cerrors.ErrCodeInvalidInput) {
		t.Errorf("error = %v, want INVALID_INPUT", err)
	}
}

func TestSolveCommand(t *testing.T) {
	yes := demoInput(t, "yes")

	t.Run("filtered", func(t *testing.T) {
		got, err := execute(t, yes, "solve")
		if err != nil {
			t.Fatal(err)
		}
		if got != yesSummary {
			t.Errorf("output = %q", got)
		}
	})

	t.Run("unfiltered", func(t *testing.T) {
		got, err := execute(t, yes, "solve", "--leads-apart=false")
		if err != nil {
			t.Fatal(err)
		}
		if !strings.HasPrefix(got, "Found 2 solutions\n") {
			t.Errorf("output = %q", got)
		}
	})

	t.Run("json", func(t *testing.T) {
		got, err := execute(t, yes, "solve", "--format", "json")
		if err != nil {
			t.Fatal(err)
		}
		var report cio.Report
		if err := json.Unmarshal([]byte(got), &report); err != nil {
			t.Fatalf("decode %q: %v", got, err)
		}
		if report.Total != 2 || report.Found != 1 || !report.LeadsApart {
			t.Errorf("report = %+v", report)
		}
		if len(report.Solutions) != 1 || report.Solutions[0][1] != 3 {
			t.Errorf("solutions = %v", report.Solutions)
		}
	})

	t.Run("table", func(t *testing.T) {
		got, err := execute(t, yes, "solve", "--all", "--leads-apart=false")
		if err != nil {
			t.Fatal(err)
		}
		for _, want := range []string{"R1", "R6", "╭"} {
			if !strings.Contains(got, want) {
				t.Errorf("table missing %q:\n%s", want, got)
			}
		}
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "yes.txt")
		if err := os.WriteFile(path, []byte(yes), 0o644); err != nil {
			t.Fatal(err)
		}
		got, err := execute(t, "", "solve", path)
		if err != nil {
			t.Fatal(err)
		}
		if got != yesSummary {
			t.Errorf("output = %q", got)
		}
	})

	t.Run("bad format", func(t *testing.T) {
		if _, err := execute(t, yes, "solve", "--format", "xml"); !cerrors.Is(err, cerrors.ErrCodeInvalidFormat) {
			t.Errorf("error = %v, want INVALID_FORMAT", err)
		}
	})

	t.Run("search limit", func(t *testing.T) {
		if _, err := execute(t, yes, "solve", "--max-nodes", "3"); !cerrors.Is(err, cerrors.ErrCodeSearchLimit) {
			t.Errorf("error = %v, want SEARCH_LIMIT", err)
		}
	})
}

func TestDemoCommand(t *testing.T) {
	got, err := execute(t, "", "demo", "list")
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"no", "yes", "smallest"} {
		if !strings.Contains(got, name) {
			t.Errorf("demo list missing %q:\n%s", name, got)
		}
	}

	got, err = execute(t, "", "demo", "smallest", "--text")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(got, "2\n1\n2\n") {
		t.Errorf("demo text = %q", got)
	}

	if _, err := execute(t, "", "demo", "maybe"); err == nil {
		t.Error("unknown demo should fail")
	}
}

func TestReduceCommand(t *testing.T) {
	out := filepath.Join(t.TempDir(), "graph.txt")
	if _, err := execute(t, demoInput(t, "smallest"), "reduce", "to-coloring", "-o", out); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "2\n1\n2\n1 2\n" {
		t.Errorf("written = %q", data)
	}

	if _, err := execute(t, "", "reduce", "sideways"); !cerrors.Is(err, cerrors.ErrCodeInvalidDirection) {
		t.Errorf("error = %v, want INVALID_DIRECTION", err)
	}
}

func TestVerifyCommand(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"colorable", "3 3 3 1 2 2 3 3 1", "colorable"},
		{"not colorable", "3 3 2 1 2 2 3 3 1", "not colorable"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := execute(t, tt.input, "verify")
			if err != nil {
				t.Fatal(err)
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("output missing %q:\n%s", tt.want, got)
			}
		})
	}
}

func TestRenderCommand(t *testing.T) {
	got, err := execute(t, demoInput(t, "yes"), "render", "--solve")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(got, "strict graph") || !strings.Contains(got, `label="R1"`) {
		t.Errorf("dot = %q", got)
	}

	got, err = execute(t, "3 2 2 1 2 2 3", "render", "--input", "coloring")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, `"v1" -- "v2";`) {
		t.Errorf("dot = %q", got)
	}

	if _, err := execute(t, "", "render", "--format", "png"); !cerrors.Is(err, cerrors.ErrCodeInvalidFormat) {
		t.Errorf("error = %v, want INVALID_FORMAT", err)
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path, fallback, want string
	}{
		{"", "dot", "dot"},
		{"out.svg", "dot", "svg"},
		{"out.SVG", "dot", "svg"},
		{"out.gv", "svg", "dot"},
		{"out.txt", "svg", "svg"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := formatFromPath(tt.path, tt.fallback); got != tt.want {
				t.Errorf("formatFromPath(%q, %q) = %q, want %q", tt.path, tt.fallback, got, tt.want)
			}
		})
	}
}

func TestCompletionCommand(t *testing.T) {
	got, err := execute(t, "", "completion", "bash")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "castcolor") {
		t.Error("bash completion should mention castcolor")
	}
}

func TestSolutionTable(t *testing.T) {
	got := solutionTable([][]int{{0, 2}, {1, 0}})
	for _, want := range []string{"#", "R1", "R2", "3"} {
		if !strings.Contains(got, want) {
			t.Errorf("table missing %q:\n%s", want, got)
		}
	}
}

func demoInput(t *testing.T, name string) string {
	t.Helper()
	got, err := execute(t, "", "demo", name, "--text")
	if err != nil {
		t.Fatalf("demo %s: %v", name, err)
	}
	return got
}

func TestSolveHelpNamesLeadActors(t *testing.T) {
	got, err := execute(t, "", "solve", "--help")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "actors 1 and 2 never share a scene") {
		t.Errorf("solve help should describe the lead filter by actors:\n%s", got)
	}
	if strings.Contains(got, "roles 1 and 2") {
		t.Errorf("solve help should not describe the leads as roles:\n%s", got)
	}
}

func TestIsLead(t *testing.T) {
	tests := []struct {
		actor int
		want  bool
	}{
		{0, true},
		{1, true},
		{2, false},
		{3, false},
	}
	for _, tt := range tests {
		if got := isLead(tt.actor); got != tt.want {
			t.Errorf("isLead(%d) = %v, want %v", tt.actor, got, tt.want)
		}
	}
}
