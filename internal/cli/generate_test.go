package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HartBrook/promptarchitect/internal/export"
	"github.com/HartBrook/promptarchitect/internal/prompt"
)

const mainBanner = "PROMPT ARQUITECTO - CONFIGURACIÓN PROFESIONAL"

func TestGenerate_PrintsPrompt(t *testing.T) {
	env := newTestEnv(t)

	require.NoError(t, env.run("generate", "--theme", "Programación y desarrollo", "Crear", "una", "API", "REST"))

	out := env.out.String()
	assert.Contains(t, out, mainBanner)
	assert.Contains(t, out, "Crear una API REST")
	assert.Contains(t, out, "CONTEXTO TEMÁTICO: Programación y desarrollo")
	assert.Empty(t, env.errOut.String())
}

func TestGenerate_EmptyObjectiveShowsPreview(t *testing.T) {
	env := newTestEnv(t)

	require.NoError(t, env.run("generate"))

	assert.Contains(t, env.out.String(), "ESTADO: Esperando objetivo específico...")
}

func TestGenerate_MatchesRenderer(t *testing.T) {
	env := newTestEnv(t)

	require.NoError(t, env.run("generate", "--tone", "formal", "--detail", "4", "--objective", "Planificar un viaje"))

	cfg := prompt.DefaultConfiguration()
	cfg.Tone = "formal"
	cfg.DetailLevel = 4
	cfg.Objective = "Planificar un viaje"
	assert.Equal(t, prompt.Render(cfg)+"\n", env.out.String())
}

func TestGenerate_ConfigDefaults(t *testing.T) {
	env := newTestEnv(t)
	env.writeConfig(t, "defaults:\n  tone: técnico\n  style: category\n")

	require.NoError(t, env.run("generate", "Planificar un viaje"))

	cfg := prompt.DefaultConfiguration()
	cfg.Tone = "técnico"
	cfg.Objective = "Planificar un viaje"
	assert.Equal(t, prompt.RenderStyle(cfg, prompt.StyleCategory)+"\n", env.out.String())
}

func TestGenerate_Optimize(t *testing.T) {
	env := newTestEnv(t)

	require.NoError(t, env.run("generate", "--optimize", "quiero que me hagas una función que pueda validar emails"))

	assert.Contains(t, env.out.String(), "Función para validar emails.")
	assert.Contains(t, env.errOut.String(), "Objective optimized: 10 → 4 words")
}

func TestGenerate_OptimizeWithoutObjective(t *testing.T) {
	env := newTestEnv(t)

	require.NoError(t, env.run("generate", "--optimize"))

	assert.Contains(t, env.errOut.String(), "No objective to optimize")
}

func TestGenerate_BadStyle(t *testing.T) {
	env := newTestEnv(t)

	err := env.run("generate", "--style", "fancy", "algo")

	assert.ErrorContains(t, err, "unknown style")
}

func TestGenerate_ThemeAppliedBeforeRole(t *testing.T) {
	env := newTestEnv(t)

	require.NoError(t, env.run("generate", "--role", "Tech Lead", "--theme", "Programación y desarrollo", "algo"))

	assert.Contains(t, env.out.String(), "ROL PROFESIONAL: Tech Lead")
	assert.Empty(t, env.errOut.String())
}

func TestGenerate_WarnsOnUnknownValues(t *testing.T) {
	env := newTestEnv(t)

	require.NoError(t, env.run("generate", "--tone", "sarcástico", "algo"))

	assert.Contains(t, env.errOut.String(), `Tone "sarcástico" is not in the catalog`)
}

func TestGenerate_OutputFile(t *testing.T) {
	env := newTestEnv(t)
	path := filepath.Join(t.TempDir(), "prompt.txt")

	require.NoError(t, env.run("generate", "--output", path, "algo"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), mainBanner)
	assert.Empty(t, env.out.String())
}

func TestGenerate_ExportMarkdown(t *testing.T) {
	env := newTestEnv(t)
	path := filepath.Join(t.TempDir(), "out", "prompt.md")

	require.NoError(t, env.run("generate", "--export", "md", "-O", path, "--theme", "Educación y formación", "algo"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "# Prompt Architect Export\n"))
	assert.Contains(t, string(data), "- **Tema**: Educación y formación\n")
	assert.Contains(t, env.errOut.String(), "Exported to "+path)
}

func TestGenerate_ExportJSONToConfiguredDir(t *testing.T) {
	env := newTestEnv(t)
	dir := t.TempDir()
	env.writeConfig(t, "export:\n  dir: "+dir+"\n")

	require.NoError(t, env.run("generate", "--export", "json", "algo"))

	data, err := os.ReadFile(filepath.Join(dir, export.Filename(export.FormatJSON, fixedNow)))
	require.NoError(t, err)

	var doc export.Document
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "algo", doc.Configuration.Objective)
	assert.Contains(t, doc.Prompt, mainBanner)
	assert.Equal(t, export.AppName, doc.App)
}

func TestGenerate_ExportBadFormat(t *testing.T) {
	env := newTestEnv(t)

	err := env.run("generate", "--export", "pdf", "algo")

	assert.ErrorContains(t, err, "unknown export format")
}

func TestGenerate_CopyStatsOpen(t *testing.T) {
	env := newTestEnv(t)

	require.NoError(t, env.run("generate", "--copy", "--stats", "--open", "--engine", "claude", "algo"))

	assert.Equal(t, strings.TrimSuffix(env.out.String(), "\n"), env.clipboard.text)
	assert.Contains(t, env.errOut.String(), "Copied to clipboard")
	assert.Contains(t, env.errOut.String(), "Estimated tokens")

	engine, ok := env.app.catalog.Engine("claude")
	require.True(t, ok)
	assert.Equal(t, []string{engine.URL}, env.opener.urls)
}

func TestGenerate_InvalidDetailFlag(t *testing.T) {
	env := newTestEnv(t)

	assert.Error(t, env.run("generate", "--detail", "mucho", "algo"))
}
