package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const labelledPage = `<!DOCTYPE html><html><head>
<meta name="signum:level" content="AI-HR">
<meta name="signum:version" content="1.0.0">
<meta name="signum:timestamp" content="2025-04-01T12:00:00Z">
<meta name="signum:asserter" content="handle:example.social:alice">
<meta name="signum:tool" content="GPT-9; Editor-X">
</head><body><p>Text <span data-signum-placeholder>loading</span></p></body></html>`

const incompletePage = `<!DOCTYPE html><html><head>
<meta name="signum:level" content="H">
</head><body><span data-signum-placeholder></span></body></html>`

// isolate points the config loader at empty user and project locations.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)
	return dir
}

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := rootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, Version)
}

func TestRender_Stdin(t *testing.T) {
	isolate(t)

	out, _, err := execute(t, labelledPage, "render")
	require.NoError(t, err)
	assert.Contains(t, out, `class="signum-label signum-ai-hr"`)
	assert.Contains(t, out, `aria-label="Signum Label: Level 2: AI-Assisted, Human-Reviewed (Version 1.0.0)"`)
	assert.Contains(t, out, "Asserted by: alice on example.social&#10;")
	assert.NotContains(t, out, "loading")
}

func TestRender_StdinInvalidPassesThrough(t *testing.T) {
	isolate(t)

	out, stderr, err := execute(t, incompletePage, "render", "-")
	require.NoError(t, err)
	assert.Equal(t, incompletePage, out)
	assert.Contains(t, stderr, "signum:version")
	assert.Contains(t, stderr, "signum:asserter")
}

func TestRender_Strict(t *testing.T) {
	isolate(t)

	_, _, err := execute(t, incompletePage, "render", "--strict")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 1 documents skipped")
}

func TestRender_SingleFileToStdout(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "page.html")
	writeFile(t, path, labelledPage)

	out, _, err := execute(t, "", "render", path)
	require.NoError(t, err)
	assert.Contains(t, out, "signum-ai-hr")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, labelledPage, string(content))
}

func TestRender_ManyFilesNeedDestination(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "site", "a.html"), labelledPage)
	writeFile(t, filepath.Join(dir, "site", "b.html"), labelledPage)

	_, _, err := execute(t, "", "render", filepath.Join(dir, "site"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--in-place or --out-dir")
}

func TestRender_OutDirMirrorsLayout(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "site", "a.html"), labelledPage)
	writeFile(t, filepath.Join(dir, "site", "docs", "b.html"), labelledPage)
	outDir := filepath.Join(dir, "out")

	_, _, err := execute(t, "", "render", "--out-dir", outDir, filepath.Join(dir, "site", "**", "*.html"))
	require.NoError(t, err)

	for _, rel := range []string{"a.html", filepath.Join("docs", "b.html")} {
		content, err := os.ReadFile(filepath.Join(outDir, rel))
		require.NoError(t, err, rel)
		assert.Contains(t, string(content), "signum-ai-hr", rel)
	}
}

func TestRender_InPlaceWithMetrics(t *testing.T) {
	dir := isolate(t)
	page := filepath.Join(dir, "a.html")
	writeFile(t, page, labelledPage)
	writeFile(t, filepath.Join(dir, "b.html"), incompletePage)
	metrics := filepath.Join(dir, "signum.prom")

	_, _, err := execute(t, "", "render", "--in-place", "--metrics-file", metrics, dir)
	require.NoError(t, err)

	content, err := os.ReadFile(page)
	require.NoError(t, err)
	assert.Contains(t, string(content), "signum-ai-hr")

	prom, err := os.ReadFile(metrics)
	require.NoError(t, err)
	assert.Contains(t, string(prom), `signum_passes_total{status="rendered"} 1`)
	assert.Contains(t, string(prom), `signum_passes_total{status="skipped"} 1`)
	assert.Contains(t, string(prom), "signum_slots_rendered_total 1")
}

func TestRender_ConflictingFlags(t *testing.T) {
	isolate(t)

	_, _, err := execute(t, "", "render", "--in-place", "--out-dir", "x", "a.html")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestRender_ConfigFile(t *testing.T) {
	dir := isolate(t)
	cfgPath := filepath.Join(dir, "custom.yaml")
	writeFile(t, cfgPath, "render:\n  placeholder: \".provenance\"\n  element: \"b\"\n")

	page := strings.Replace(labelledPage, "<span data-signum-placeholder>loading</span>", `<div class="provenance"></div>`, 1)
	out, _, err := execute(t, page, "--config", cfgPath, "render")
	require.NoError(t, err)
	assert.Contains(t, out, `<div class="provenance"><b class="signum-label signum-ai-hr"`)
}

func TestInspect_Text(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "page.html")
	writeFile(t, path, labelledPage)

	out, _, err := execute(t, "", "inspect", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Status: rendered")
	assert.Contains(t, out, "Slots: 1")
	assert.Contains(t, out, "Class: signum-ai-hr")
	assert.Contains(t, out, "Tool(s): GPT-9, Editor-X")
	assert.Contains(t, out, "(absent)")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, labelledPage, string(content))
}

func TestInspect_Invalid(t *testing.T) {
	isolate(t)

	out, stderr, err := execute(t, incompletePage, "inspect", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "Status: skipped")
	assert.Contains(t, out, "signum:version")
	assert.NotContains(t, stderr, "WARN")
}

func TestInspect_JSON(t *testing.T) {
	isolate(t)

	out, _, err := execute(t, labelledPage, "inspect", "--json", "-")
	require.NoError(t, err)

	var res map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "rendered", res["status"])
	assert.Equal(t, "signum-ai-hr", res["level_class"])
	assert.EqualValues(t, 1, res["slots"])
	record, ok := res["record"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "AI-HR", record["level"])
}

func TestLevels(t *testing.T) {
	out, _, err := execute(t, "", "levels")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 6)
	assert.Contains(t, lines[1], "Level 0: Human")
	assert.Contains(t, lines[2], "signum-h-ae")
	assert.Contains(t, lines[5], "Level 4: Fully Automated AI")
}

func TestInit(t *testing.T) {
	dir := isolate(t)

	_, _, err := execute(t, "", "init")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "signum.yaml"))

	_, _, err = execute(t, "", "init")
	require.Error(t, err)

	_, _, err = execute(t, "", "init", "--force")
	require.NoError(t, err)
}

func TestInit_User(t *testing.T) {
	dir := isolate(t)

	out, _, err := execute(t, "", "init", "--user")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, ".config", "signum", "config.yaml"), strings.TrimSpace(out))
}

func TestInit_UserForce(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, ".config", "signum", "config.yaml")
	writeFile(t, path, "log:\n  level: debug\n")

	_, _, err := execute(t, "", "init", "--user")
	require.NoError(t, err)
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "log:\n  level: debug\n", string(content))

	_, _, err = execute(t, "", "init", "--user", "--force")
	require.NoError(t, err)
	content, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "placeholder: '[data-signum-placeholder]'")
	assert.Contains(t, string(content), "level: info")
}
