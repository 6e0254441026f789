package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fdmota/breeze.js/config"
	"github.com/fdmota/breeze.js/errors"
	"github.com/fdmota/breeze.js/intellisense"
	"github.com/fdmota/breeze.js/version"
)

func TestMain(m *testing.M) {
	pterm.DisableStyling()
	os.Exit(m.Run())
}

// setupProject lays out docs/data.json and the default template in a temp
// working directory
func setupProject(t *testing.T) string {
	t.Helper()
	fixture, err := filepath.Abs(filepath.Join("..", "..", "..", "intellisense", "testdata", "data.json"))
	require.NoError(t, err)
	data, err := os.ReadFile(fixture)
	require.NoError(t, err)

	dir := t.TempDir()
	t.Chdir(dir)

	require.NoError(t, os.MkdirAll("docs", 0755))
	require.NoError(t, os.WriteFile(filepath.Join("docs", "data.json"), data, 0644))
	require.NoError(t, os.MkdirAll(filepath.Dir(config.DefaultTemplatePath), 0755))
	require.NoError(t, os.WriteFile(config.DefaultTemplatePath, []byte(intellisense.DefaultTemplate), 0644))
	return dir
}

// execute runs sub under a fresh root with the given arguments
func execute(t *testing.T, sub *cobra.Command, args ...string) (string, error) {
	t.Helper()
	resetFlags(sub)

	root := &cobra.Command{
		Use:               "intellisense",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: InitLogging,
	}
	AddPersistentFlags(root)
	root.AddCommand(sub)

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{sub.Name()}, args...))

	err := root.Execute()
	return out.String(), err
}

// resetFlags undoes flag values left by a previous execution of the same command
func resetFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
}

func TestGenerateCmd(t *testing.T) {
	setupProject(t)

	out, err := execute(t, GenerateCmd, "docs")
	require.NoError(t, err)
	assert.Contains(t, out, "Generated "+config.DefaultOutputPath+" (4 classes in 3 modules)")
	assert.Contains(t, out, "3 class items skipped")

	written, err := os.ReadFile(config.DefaultOutputPath)
	require.NoError(t, err)
	assert.Contains(t, string(written), "intellisense.annotate(breeze.core.EntityManager.prototype, {")
	assert.NotContains(t, string(written), "ↈ")
}

func TestGenerateCmd_Flags(t *testing.T) {
	setupProject(t)

	_, err := execute(t, GenerateCmd, "docs",
		"-o", filepath.Join("build", "api.js"),
		"--namespace", "acme",
		"--events-routing", "itemtype")
	require.NoError(t, err)

	written, err := os.ReadFile(filepath.Join("build", "api.js"))
	require.NoError(t, err)
	assert.Contains(t, string(written), "intellisense.annotate(acme.core, {")
	assert.Contains(t, string(written), "'entityChanged': null,")
}

func TestGenerateCmd_ProjectConfig(t *testing.T) {
	setupProject(t)
	require.NoError(t, os.WriteFile(config.ProjectConfigName, []byte(`
namespace = "acme"

[input]
dir = "docs"

[output]
path = "out/acme.intellisense.js"
`), 0644))

	_, err := execute(t, GenerateCmd)
	require.NoError(t, err)

	written, err := os.ReadFile(filepath.Join("out", "acme.intellisense.js"))
	require.NoError(t, err)
	assert.Contains(t, string(written), "acme.query.EntityQuery")
}

func TestGenerateCmd_EnvOverride(t *testing.T) {
	setupProject(t)
	t.Setenv("INTELLISENSE_OUTPUT_PATH", "from-env.js")

	_, err := execute(t, GenerateCmd, "docs")
	require.NoError(t, err)
	assert.FileExists(t, "from-env.js")

	// Flags win over env
	_, err = execute(t, GenerateCmd, "docs", "-o", "from-flag.js")
	require.NoError(t, err)
	assert.FileExists(t, "from-flag.js")
}

func TestGenerateCmd_InputMissing(t *testing.T) {
	setupProject(t)

	_, err := execute(t, GenerateCmd, "nowhere")
	require.Error(t, err)
	assert.True(t, errors.IsInputMissing(err))
	assert.NoFileExists(t, config.DefaultOutputPath)
}

func TestGenerateCmd_TemplateMissing(t *testing.T) {
	setupProject(t)

	_, err := execute(t, GenerateCmd, "docs", "--template", "missing.txt")
	require.Error(t, err)
	assert.True(t, errors.IsTemplateMissing(err))
}

func TestGenerateCmd_InvalidRouting(t *testing.T) {
	setupProject(t)

	_, err := execute(t, GenerateCmd, "docs", "--events-routing", "bogus")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidConfig))
}

func TestCheckCmd(t *testing.T) {
	setupProject(t)

	_, err := execute(t, CheckCmd, "docs")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")

	_, err = execute(t, GenerateCmd, "docs")
	require.NoError(t, err)

	out, err := execute(t, CheckCmd, "docs")
	require.NoError(t, err)
	assert.Contains(t, out, "is up to date")

	content, err := os.ReadFile(config.DefaultOutputPath)
	require.NoError(t, err)
	stale := strings.Replace(string(content), "hasChanges", "isDirty", 1)
	require.NoError(t, os.WriteFile(config.DefaultOutputPath, []byte(stale), 0644))

	_, err = execute(t, CheckCmd, "docs")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is out of date")
	assert.Contains(t, errors.FlattenHints(err), "intellisense generate")
}

func TestInspectCmd_Table(t *testing.T) {
	setupProject(t)

	out, err := execute(t, InspectCmd, "docs")
	require.NoError(t, err)
	assert.Contains(t, out, "core")
	assert.Contains(t, out, "query")
	assert.Contains(t, out, "Items naming an unknown class: 2")
	assert.Contains(t, out, "Items naming an unknown module: 1")
	assert.Contains(t, out, "orphan")
	assert.NotContains(t, out, "duplicate class declarations")
}

func TestInspectCmd_EmptyReservedPrefixKeepsInternalClasses(t *testing.T) {
	setupProject(t)

	out, err := execute(t, InspectCmd, "docs", "--reserved-prefix", "")
	require.NoError(t, err)
	assert.Contains(t, out, "Items naming an unknown class: 1")
	assert.NotContains(t, out, "secret")
}

func TestGenerationOptions_ReservedPrefix(t *testing.T) {
	cfg := &config.Config{Classes: config.ClassesConfig{ReservedPrefix: "_"}}
	opts := generationOptions(cfg)
	assert.Equal(t, "_", opts.Build.ReservedPrefix)
	assert.False(t, opts.Build.DisableReservedPrefix)

	cfg.Classes.ReservedPrefix = ""
	assert.True(t, generationOptions(cfg).Build.DisableReservedPrefix)
}

func TestInspectCmd_JSON(t *testing.T) {
	setupProject(t)

	out, err := execute(t, InspectCmd, "docs", "--format", "json")
	require.NoError(t, err)

	var model struct {
		Namespace string `json:"namespace"`
		Modules   []struct {
			Name string `json:"name"`
		} `json:"modules"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &model))
	assert.Equal(t, "breeze", model.Namespace)
	require.Len(t, model.Modules, 3)
	assert.Equal(t, "core", model.Modules[0].Name)
}

func TestInspectCmd_NoTemplateRequired(t *testing.T) {
	setupProject(t)
	require.NoError(t, os.Remove(config.DefaultTemplatePath))

	_, err := execute(t, InspectCmd, "docs", "--format", "yaml")
	require.NoError(t, err)
}

func TestInspectCmd_UnknownFormat(t *testing.T) {
	setupProject(t)

	_, err := execute(t, InspectCmd, "docs", "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}

func TestTemplateCmd(t *testing.T) {
	setupProject(t)

	out, err := execute(t, TemplateCmd)
	require.NoError(t, err)
	assert.Equal(t, intellisense.DefaultTemplate, out)

	path := filepath.Join("custom", "t.txt")
	_, err = execute(t, TemplateCmd, "--write", path)
	require.NoError(t, err)
	written, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, intellisense.DefaultTemplate, string(written))
}

func TestConfigCmd(t *testing.T) {
	setupProject(t)
	t.Setenv("INTELLISENSE_NAMESPACE", "envns")

	out, err := execute(t, ConfigCmd, "docs")
	require.NoError(t, err)
	assert.Contains(t, out, "# intellisense configuration")
	assert.Contains(t, out, "envns")

	out, err = execute(t, ConfigCmd, "docs", "--format", "json", "--events-routing", "itemtype")
	require.NoError(t, err)
	var cfg config.Config
	require.NoError(t, json.Unmarshal([]byte(out), &cfg))
	assert.Equal(t, "docs", cfg.Input.Dir)
	assert.Equal(t, "envns", cfg.Namespace)
	assert.Equal(t, config.EventRoutingItemType, cfg.Events.Routing)
	assert.Equal(t, config.DefaultCtorMarker, cfg.Methods.CtorMarker)
}

func TestConfigCmd_ExplicitFileMissing(t *testing.T) {
	setupProject(t)

	_, err := execute(t, ConfigCmd, "--config", "nope.toml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope.toml")
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, VersionCmd)
	require.NoError(t, err)
	assert.Contains(t, out, "intellisense dev")

	out, err = execute(t, VersionCmd, "--json")
	require.NoError(t, err)
	var info version.Info
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Equal(t, version.Get().Platform, info.Platform)
}

func TestReportError_PrintsHints(t *testing.T) {
	setupProject(t)

	_, err := execute(t, GenerateCmd, "missing-dir")
	require.Error(t, err)

	var buf bytes.Buffer
	ReportError(&buf, err)
	assert.Contains(t, buf.String(), err.Error())
	assert.Contains(t, buf.String(), "run yuidoc first")
}

func TestReportError_NoHints(t *testing.T) {
	var buf bytes.Buffer
	ReportError(&buf, errors.New("plain failure"))
	assert.Contains(t, buf.String(), "plain failure")
	assert.Equal(t, 1, strings.Count(strings.TrimSpace(buf.String()), "\n")+1)
}
