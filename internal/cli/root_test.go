package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCommand()
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "avro", cmd.Use)
	assert.Contains(t, cmd.Long, "Bijoy")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	commands := []string{"parse", "reverse", "to-bijoy", "to-unicode", "exceptions", "stats"}

	for _, cmdName := range commands {
		t.Run(cmdName, func(t *testing.T) {
			subCmd, _, err := cmd.Find([]string{cmdName})
			require.NoError(t, err, "Command %s should exist", cmdName)
			require.NotNil(t, subCmd)
			assert.Equal(t, cmdName, subCmd.Name())
		})
	}
}

func TestParseCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	parseCmd, _, err := cmd.Find([]string{"parse"})
	require.NoError(t, err)

	bijoyFlag := parseCmd.Flags().Lookup("bijoy")
	require.NotNil(t, bijoyFlag)
	assert.Equal(t, "b", bijoyFlag.Shorthand)
	assert.Equal(t, "false", bijoyFlag.DefValue)

	remapFlag := parseCmd.Flags().Lookup("ignore-remap")
	require.NotNil(t, remapFlag)
	assert.Equal(t, "i", remapFlag.Shorthand)

	require.NotNil(t, parseCmd.Flags().Lookup("raw"))
	require.NotNil(t, cmd.PersistentFlags().Lookup("dict"))
}

func TestParse(t *testing.T) {
	out, _, err := execute(t, "", "parse", "ami", "banglay", "gan", "gai;")
	require.NoError(t, err)
	assert.Equal(t, "আমি বাংলায় গান গাই;\n", out)

	out, _, err = execute(t, "", "parse", "-b", "ami banglay gan gai;")
	require.NoError(t, err)
	assert.Equal(t, "Avwg evsjvq Mvb MvB;\n", out)
}

func TestParseFromStdin(t *testing.T) {
	out, _, err := execute(t, "kemon acho?\n", "parse")
	require.NoError(t, err)
	assert.Equal(t, "কেমন আছ?\n", out)
}

func TestParseRaw(t *testing.T) {
	out, _, err := execute(t, "", "parse", "-b", "--raw", "sOnar")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x87, 'm', 'v', 'b', 'v', 'i', '\n'}, []byte(out))
}

func TestIgnoreRemap(t *testing.T) {
	out, _, err := execute(t, "", "parse", "facebook")
	require.NoError(t, err)
	assert.Equal(t, "ফেসবুক\n", out)

	out, _, err = execute(t, "", "parse", "-i", "facebook")
	require.NoError(t, err)
	assert.NotEqual(t, "ফেসবুক\n", out)
}

func TestReverse(t *testing.T) {
	out, _, err := execute(t, "", "reverse", "আমি বাংলায় গান গাই")
	require.NoError(t, err)
	assert.Equal(t, "ami banglay gan gai\n", out)

	out, _, err = execute(t, "", "reverse", "--from-bijoy", "Avwg evsjvq Mvb MvB")
	require.NoError(t, err)
	assert.Equal(t, "ami banglay gan gai\n", out)
}

func TestLegacyCommands(t *testing.T) {
	out, _, err := execute(t, "", "to-bijoy", "সোনার")
	require.NoError(t, err)
	assert.Equal(t, "‡mvbvi\n", out)

	out, _, err = execute(t, "", "to-unicode", "‡mvbvi")
	require.NoError(t, err)
	assert.Equal(t, "সোনার\n", out)

	out, _, err = execute(t, string([]byte{0x87, 'm', 'v', 'b', 'v', 'i'}), "to-unicode", "--raw")
	require.NoError(t, err)
	assert.Equal(t, "সোনার\n", out)
}

func TestNoChanges(t *testing.T) {
	out, errOut, err := execute(t, "", "to-bijoy", "abc")
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Equal(t, noChanges+"\n", errOut)
}

func TestNoText(t *testing.T) {
	_, _, err := execute(t, "", "parse")
	require.ErrorIs(t, err, ErrNoText)

	_, _, err = execute(t, "\n", "reverse")
	require.ErrorIs(t, err, ErrNoText)
}

func TestExceptions(t *testing.T) {
	out, _, err := execute(t, "", "exceptions", "face")
	require.NoError(t, err)
	assert.Equal(t, "facebook\tফেসবুক\n", out)

	out, _, err = execute(t, "", "exceptions")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 24)
}

func TestStats(t *testing.T) {
	out, _, err := execute(t, "", "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "patterns:")
	assert.Contains(t, out, "exceptions:   24")
	assert.Contains(t, out, "1 collisions")
}

const testDefinition = `
name: "tiny"
patterns:
  - find: "k"
    replace: "ক"
  - find: "a"
    replace: "া"
vowel: "a"
consonant: "k"
casesensitive: ""
number: ""
shorborno: ""
shongkha: ""
banjonborno: "ক"
kar: ["া"]
ignore: []
`

func TestDictFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tiny.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testDefinition), 0o644))

	out, _, err := execute(t, "", "--dict", path, "parse", "ka")
	require.NoError(t, err)
	assert.Equal(t, "কা\n", out)

	out, _, err = execute(t, "", "--dict", path, "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "patterns: tiny")
	assert.Contains(t, out, "bijoy:        none")

	_, errOut, err := execute(t, "", "--dict", path, "to-bijoy", "কা")
	require.NoError(t, err)
	assert.Equal(t, noChanges+"\n", errOut)

	_, _, err = execute(t, "", "--dict", filepath.Join(t.TempDir(), "missing.yaml"), "stats")
	require.Error(t, err)
}
