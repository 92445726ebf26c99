package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/garden-faq/internal/domain/gardenfaq"
)

const cliDocument = `{"items": [
  {"id": "lawn", "category": "lawn", "keys": ["芝生"], "qa": [{"q": "芝生の手入れ", "a": "春と秋に目土を入れます。"}]},
  {"id": "typhoon", "category": "weather", "keys": ["台風対策"], "qa": [{"q": "台風の前に", "a": "鉢を取り込みます。"}]}
]}`

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("LOG_LEVEL", "error")
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeDocument(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "faq.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestSearchCommand(t *testing.T) {
	path := writeDocument(t, cliDocument)

	out, err := runCLI(t, "search", "--source", path, "芝生")
	require.NoError(t, err)
	require.Contains(t, out, "● 芝生 [lawn]")
	require.Contains(t, out, "A: 春と秋に目土を入れます。")
	require.Contains(t, out, "Candidates (1 found)")
}

func TestSearchCommandNoMatch(t *testing.T) {
	path := writeDocument(t, cliDocument)

	out, err := runCLI(t, "search", "--source", path, "--category", "lawn", "台風が")
	require.NoError(t, err)
	require.Contains(t, out, "No matching answer found.")
}

func TestSearchCommandMalformedDocument(t *testing.T) {
	path := writeDocument(t, `{}`)

	_, err := runCLI(t, "search", "--source", path, "芝生")
	require.Error(t, err)
	require.True(t, gardenfaq.IsFormatError(err))
	require.Contains(t, err.Error(), "redeployed")
}

func TestCategoriesCommand(t *testing.T) {
	path := writeDocument(t, cliDocument)

	out, err := runCLI(t, "categories", "--source", path)
	require.NoError(t, err)
	require.Equal(t, "all\nlawn\nweather\n", out)
}

func TestSourceFlagIsScopedToCommandTree(t *testing.T) {
	good := writeDocument(t, cliDocument)
	bad := writeDocument(t, `{}`)

	_, err := runCLI(t, "categories", "--source", bad)
	require.True(t, gardenfaq.IsFormatError(err))

	t.Setenv("FAQ_SOURCE", good)
	out, err := runCLI(t, "categories")
	require.NoError(t, err)
	require.Equal(t, "all\nlawn\nweather\n", out)
}
