package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	mgerrors "github.com/SingularityNET-Archive/meetgraph/pkg/errors"
)

const meetings = `[
	{"workgroup": "Archives", "meetingInfo": {"date": "2025-01-07", "host": "Ann", "peoplePresent": "Ann, Ben, Cat"}},
	{"workgroup": "Archives", "meetingInfo": {"date": "2025-01-14", "host": "Ben", "peoplePresent": "Ben, Dan"}},
	{"workgroup": "Education", "meetingInfo": {"peoplePresent": "Eve"}}
]`

var fixedTime = time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

// harness runs commands against buffers with a pinned clock.
type harness struct {
	cli  *CLI
	out  bytes.Buffer
	logs bytes.Buffer
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	for _, k := range []string{"MEETGRAPH_INPUT", "MEETGRAPH_OUTPUT", "MEETGRAPH_LIMIT_TOP", "MEETGRAPH_CACHE_URL"} {
		t.Setenv(k, "")
	}
	h := &harness{}
	h.cli = New(&h.out, &h.logs, LogInfo)
	h.cli.now = func() time.Time { return fixedTime }
	return h
}

func (h *harness) run(args ...string) error {
	root := h.cli.RootCommand()
	root.SetArgs(args)
	root.SetOut(&h.out)
	root.SetErr(&h.logs)
	return root.ExecuteContext(context.Background())
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func TestAnalyze(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "meetings.json", meetings)
	output := filepath.Join(dir, "out", "report.md")

	h := newHarness(t)
	if err := h.run("analyze", "-i", input, "-o", output, "--html", "--limit-top", "3"); err != nil {
		t.Fatalf("analyze: %v\n%s", err, h.logs.String())
	}

	md := readFile(t, output)
	if !strings.HasPrefix(md, "# Unified Graph Analysis Report\n**Generated on:** 2025-03-14 09:26:53\n") {
		t.Errorf("unexpected report header:\n%.120s", md)
	}
	if !strings.Contains(md, "- Co-attendance graph (nodes): 4\n") {
		t.Error("report missing co-attendance summary")
	}
	if !strings.Contains(readFile(t, filepath.Join(dir, "out", "report.html")), "<!DOCTYPE html>") {
		t.Error("html report not written")
	}

	out := h.out.String()
	for _, want := range []string{"Analysis complete", output, "3 meetings", "Co-attendance graph (nodes)"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestAnalyzeStdin(t *testing.T) {
	output := filepath.Join(t.TempDir(), "report.md")
	h := newHarness(t)
	h.cli.stdin = strings.NewReader(meetings)

	if err := h.run("analyze", "--input", "-", "--output", output); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(output); err != nil {
		t.Errorf("report not written: %v", err)
	}
	if _, err := os.Stat(strings.TrimSuffix(output, ".md") + ".html"); !os.IsNotExist(err) {
		t.Error("html report should only be written with --html")
	}
}

func TestAnalyzeErrors(t *testing.T) {
	dir := t.TempDir()
	bad := writeFile(t, dir, "bad.json", `{"a": [`)

	tests := []struct {
		name string
		args []string
		code mgerrors.Code
	}{
		{"invalid json", []string{"analyze", "-i", bad, "-o", filepath.Join(dir, "r.md")}, mgerrors.ErrCodeInvalidJSON},
		{"missing file", []string{"analyze", "-i", filepath.Join(dir, "absent.json")}, mgerrors.ErrCodeFileNotFound},
		{"bad limit", []string{"analyze", "-i", bad, "--limit-top", "0"}, mgerrors.ErrCodeInvalidInput},
		{"bad scheme", []string{"analyze", "-i", "ftp://example.org/x.json"}, mgerrors.ErrCodeUnsupported},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := newHarness(t).run(tt.args...)
			if got := mgerrors.GetCode(err); got != tt.code {
				t.Errorf("code = %q, want %q (err: %v)", got, tt.code, err)
			}
		})
	}

	if _, err := os.Stat(filepath.Join(dir, "r.md")); !os.IsNotExist(err) {
		t.Error("no report may be written when the run fails")
	}
}

func TestAnalyzeHTTPInput(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/meetings.json" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(meetings))
	}))
	defer srv.Close()

	dir := t.TempDir()
	h := newHarness(t)
	err := h.run("analyze", "-i", srv.URL+"/meetings.json", "-o", filepath.Join(dir, "r.md"),
		"--cache-url", "file://"+filepath.Join(dir, "cache"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(h.out.String(), "fresh") {
		t.Errorf("first fetch should not be cached:\n%s", h.out.String())
	}

	h = newHarness(t)
	err = h.run("analyze", "-i", srv.URL+"/meetings.json", "-o", filepath.Join(dir, "r.md"),
		"--cache-url", "file://"+filepath.Join(dir, "cache"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(h.out.String(), "cached") {
		t.Errorf("second fetch should hit the cache:\n%s", h.out.String())
	}

	err = newHarness(t).run("analyze", "-i", srv.URL+"/missing.json", "-o", filepath.Join(dir, "r.md"))
	if got := mgerrors.GetCode(err); got != mgerrors.ErrCodeNotFound {
		t.Errorf("404 code = %q, want %q", got, mgerrors.ErrCodeNotFound)
	}
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "meetings.json", meetings)
	output := filepath.Join(dir, "from-config.md")
	cfg := writeFile(t, dir, "meetgraph.toml", "input = \""+input+"\"\noutput = \""+output+"\"\nhtml = true\n")

	if err := newHarness(t).run("--config", cfg, "analyze"); err != nil {
		t.Fatal(err)
	}
	for _, p := range []string{output, filepath.Join(dir, "from-config.html")} {
		if _, err := os.Stat(p); err != nil {
			t.Errorf("%s not written: %v", p, err)
		}
	}

	t.Setenv("MEETGRAPH_OUTPUT", filepath.Join(dir, "from-env.md"))
	h := &harness{}
	h.cli = New(&h.out, &h.logs, LogInfo)
	if err := h.run("--config", cfg, "analyze", "--html=false"); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(dir, "from-env.md")); err != nil {
		t.Errorf("environment should override the config file: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "from-env.html")); !os.IsNotExist(err) {
		t.Error("--html=false should override the config file")
	}
}

func TestReport(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "meetings.json", meetings)

	tests := map[string]string{
		"degree":     "# JSON Field Degree Analysis Report\n",
		"centrality": "Betweenness",
		"clustering": "Network Transitivity",
		"components": "Component 1",
		"paths":      "[0].meetingInfo.date",
	}
	for method, want := range tests {
		t.Run(method, func(t *testing.T) {
			output := filepath.Join(dir, method+".md")
			h := newHarness(t)
			if err := h.run("report", method, "-i", input, "-o", output); err != nil {
				t.Fatal(err)
			}
			if got := readFile(t, output); !strings.Contains(got, want) {
				t.Errorf("%s report missing %q:\n%s", method, want, got)
			}
		})
	}

	if err := newHarness(t).run("report", "pagerank", "-i", input); err == nil {
		t.Error("unknown method should fail")
	}
}

func TestWorkgroups(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "meetings.json", meetings)
	output := filepath.Join(dir, "wg.md")

	h := newHarness(t)
	if err := h.run("workgroups", "-i", input, "-o", output); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(readFile(t, output), "### Archives (2)\n") {
		t.Error("workgroup report missing Archives section")
	}
	out := h.out.String()
	for _, want := range []string{"Archives", "Education", "Counted 2 workgroups"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestSchema(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "meetings.json", meetings)

	h := newHarness(t)
	if err := h.run("schema", "-i", input, "--format", "json", "-o", "-"); err != nil {
		t.Fatal(err)
	}
	var doc map[string]any
	if err := json.Unmarshal(h.out.Bytes(), &doc); err != nil {
		t.Fatalf("schema is not JSON: %v\n%s", err, h.out.String())
	}
	if doc["type"] != "array" || doc["title"] != "Meeting summaries" {
		t.Errorf("schema = %v", doc)
	}

	output := filepath.Join(dir, "schema.md")
	if err := newHarness(t).run("schema", "-i", input, "-o", output); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(readFile(t, output), "## Inferred Schema\n") {
		t.Error("markdown schema missing heading")
	}

	err := newHarness(t).run("schema", "-i", input, "--format", "xml")
	if !mgerrors.Is(err, mgerrors.ErrCodeInvalidFormat) {
		t.Errorf("xml format error = %v", err)
	}
}

func TestExport(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "meetings.json", meetings)

	h := newHarness(t)
	if err := h.run("export", "-i", input, "--graph", "path", "--format", "dot"); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(h.out.String(), "digraph") {
		t.Errorf("dot output:\n%.200s", h.out.String())
	}

	output := filepath.Join(dir, "meeting.gexf")
	h = newHarness(t)
	if err := h.run("export", "-i", input, "--graph", "meeting", "--format", "gexf", "-o", output); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(readFile(t, output), "<gexf") {
		t.Error("gexf file not written")
	}
	if !strings.Contains(h.out.String(), "Exported meeting graph") {
		t.Errorf("output:\n%s", h.out.String())
	}

	tests := []struct {
		args []string
		code mgerrors.Code
	}{
		{[]string{"export", "-i", input, "--format", "png"}, mgerrors.ErrCodeInvalidFormat},
		{[]string{"export", "-i", input, "--graph", "people"}, mgerrors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		err := newHarness(t).run(tt.args...)
		if got := mgerrors.GetCode(err); got != tt.code {
			t.Errorf("%v: code = %q, want %q", tt.args, got, tt.code)
		}
	}
}

const reviewIssues = `[
	{"number": 1, "body": "**Method:** centrality\n\n- [x] Correct\n\n### Comments\nLooks right", "user": {"login": "ann"}, "created_at": "2025-02-01T10:00:00Z", "html_url": "https://github.com/o/r/issues/1"},
	{"number": 2, "body": "**Method:** centrality\n\n- [x] Incorrect", "user": {"login": "ben"}, "created_at": "2025-02-02T10:00:00Z"},
	{"number": 3, "body": "no method here"},
	{"number": 4, "body": "**Method:** clustering", "pull_request": {"url": "x"}}
]`

func TestAuditOffline(t *testing.T) {
	dir := t.TempDir()
	issues := writeFile(t, dir, "issues.json", reviewIssues)
	output := filepath.Join(dir, "audit", "reviews.json")

	h := newHarness(t)
	if err := h.run("audit", "--issues", issues, "-o", output); err != nil {
		t.Fatal(err)
	}

	var rep struct {
		LastUpdated string `json:"last_updated"`
		Total       int    `json:"total_issues_processed"`
		Methods     map[string]struct {
			TotalReviews int     `json:"total_reviews"`
			TrustScore   float64 `json:"trust_score"`
		} `json:"methods"`
	}
	if err := json.Unmarshal([]byte(readFile(t, output)), &rep); err != nil {
		t.Fatal(err)
	}
	if rep.Total != 4 || rep.LastUpdated != "2025-03-14T09:26:53Z" {
		t.Errorf("report header = %+v", rep)
	}
	if m := rep.Methods["centrality"]; m.TotalReviews != 2 || m.TrustScore != 0.5 {
		t.Errorf("centrality = %+v", m)
	}
	if len(rep.Methods) != 6 {
		t.Errorf("methods = %d, want 6", len(rep.Methods))
	}
	if !strings.Contains(h.out.String(), "Processed 4 issues") {
		t.Errorf("output:\n%s", h.out.String())
	}

	err := newHarness(t).run("audit", "--issues", filepath.Join(dir, "absent.json"), "-o", output)
	if got := mgerrors.GetCode(err); got != mgerrors.ErrCodeFileNotFound {
		t.Errorf("missing issues file code = %q", got)
	}
}

func TestAuditGitHub(t *testing.T) {
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		if r.URL.Path != "/repos/o/r/issues" || r.URL.Query().Get("labels") != "review" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(reviewIssues))
	}))
	defer srv.Close()

	output := filepath.Join(t.TempDir(), "reviews.json")
	h := newHarness(t)
	t.Setenv("GITHUB_TOKEN", "secret")
	h.cli.githubURL = srv.URL
	if err := h.run("audit", "--repo", "o/r", "-o", output); err != nil {
		t.Fatal(err)
	}
	if auth != "Bearer secret" {
		t.Errorf("Authorization = %q", auth)
	}
	if !strings.Contains(readFile(t, output), `"issue_number": 1`) {
		t.Error("reviews.json missing issue 1")
	}

	err := newHarness(t).run("audit", "--repo", "not a repo", "-o", output)
	if !mgerrors.Is(err, mgerrors.ErrCodeInvalidInput) {
		t.Errorf("invalid repo error = %v", err)
	}
}

func TestCacheCommands(t *testing.T) {
	dir := t.TempDir()
	cacheDir := filepath.Join(dir, "cache")
	cfg := writeFile(t, dir, "meetgraph.yaml", "cache:\n  dir: "+cacheDir+"\n")

	h := newHarness(t)
	if err := h.run("--config", cfg, "cache", "path"); err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(h.out.String()); got != cacheDir {
		t.Errorf("cache path = %q, want %q", got, cacheDir)
	}

	h = newHarness(t)
	if err := h.run("--config", cfg, "cache", "clear"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(h.out.String(), "Cache is empty") {
		t.Errorf("clear on missing dir:\n%s", h.out.String())
	}

	if err := os.MkdirAll(filepath.Join(cacheDir, "ab"), 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(cacheDir, "ab"), "cdef.json", `{}`)
	h = newHarness(t)
	if err := h.run("--config", cfg, "cache", "clear"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(h.out.String(), "Cleared 1 cached entries") {
		t.Errorf("clear output:\n%s", h.out.String())
	}
}

func TestVersion(t *testing.T) {
	h := newHarness(t)
	if err := h.run("--version"); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(h.out.String(), "meetgraph version ") {
		t.Errorf("version output = %q", h.out.String())
	}
}

func TestCompletion(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		h := newHarness(t)
		if err := h.run("completion", shell); err != nil {
			t.Fatalf("%s: %v", shell, err)
		}
		if !strings.Contains(h.out.String(), "meetgraph") {
			t.Errorf("%s completion does not mention meetgraph", shell)
		}
	}
}

func TestFormatBytes(t *testing.T) {
	tests := map[int]string{0: "0 B", 1023: "1023 B", 1536: "1.5 KB", 5 << 20: "5.0 MB"}
	for n, want := range tests {
		if got := formatBytes(n); got != want {
			t.Errorf("formatBytes(%d) = %q, want %q", n, got, want)
		}
	}
}
