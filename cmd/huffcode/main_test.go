package main

import (
	"bytes"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/abhinav/huffcode/internal/envtest"
	"github.com/abhinav/huffcode/internal/huffman"
	"github.com/abhinav/huffcode/internal/stub"
	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const _abbaReport = `SYMBOL  COUNT  PROBABILITY  CODE
"A"     2      0.5000       0
"B"     2      0.5000       1

entropy: 1.0000 bits/symbol
expected length: 1.0000 bits/symbol
efficiency: 100.00%
encoded bits: 4
packed bytes: 1
`

// newTestCmd builds a mainCmd that reads stdin from the given string.
func newTestCmd(stdin string, env envtest.Env) (cmd *mainCmd, stdout, stderr *bytes.Buffer) {
	stdout, stderr = new(bytes.Buffer), new(bytes.Buffer)
	return &mainCmd{
		Stdin:  strings.NewReader(stdin),
		Stdout: stdout,
		Stderr: stderr,
		Getenv: env.Getenv,
		Clock:  clock.NewMock(),
	}, stdout, stderr
}

func TestVersion(t *testing.T) {
	stub.Replace(t, &_version, "1.2.3")

	cmd, stdout, stderr := newTestCmd("", nil)
	require.NoError(t, run(cmd, []string{"-version"}))
	assert.Equal(t, "huffcode version 1.2.3\n", stdout.String())
	assert.Empty(t, stderr.String(), "stderr should be empty")
}

func TestHelp(t *testing.T) {
	t.Parallel()

	cmd, stdout, stderr := newTestCmd("", nil)
	err := run(cmd, []string{"-help"})
	assert.ErrorIs(t, err, flag.ErrHelp)
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "usage: huffcode [options] [FILE]")
}

func TestUnexpectedArguments(t *testing.T) {
	t.Parallel()

	cmd, _, _ := newTestCmd("", nil)
	err := run(cmd, []string{"a.txt", "b.txt", "c.txt"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unexpected arguments ["b.txt" "c.txt"]`)
}

func TestMainReport(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc  string
		stdin string
		args  []string
		want  string
	}{
		{
			desc:  "generated codes",
			stdin: "ABBA",
			want:  _abbaReport,
		},
		{
			desc:  "provided codes",
			stdin: "ABBA",
			args:  []string{"-codes", "A=0 B=1"},
			want:  _abbaReport,
		},
		{
			desc:  "encode",
			stdin: "ABBA",
			args:  []string{"-encode"},
			want:  _abbaReport + "encoded: 0110\n",
		},
		{
			desc:  "single symbol",
			stdin: "zzz",
			args:  []string{"-encode"},
			want: `SYMBOL  COUNT  PROBABILITY  CODE
"z"     3      1.0000       0

entropy: 0.0000 bits/symbol
expected length: 1.0000 bits/symbol
efficiency: 0.00%
encoded bits: 3
packed bytes: 1
encoded: 000
`,
		},
		{
			desc:  "skewed",
			stdin: "aaaabbc",
			want: `SYMBOL  COUNT  PROBABILITY  CODE
"a"     4      0.5714       1
"b"     2      0.2857       01
"c"     1      0.1429       00

entropy: 1.3788 bits/symbol
expected length: 1.4286 bits/symbol
efficiency: 96.51%
encoded bits: 10
packed bytes: 2
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			cmd, stdout, stderr := newTestCmd(tt.stdin, nil)
			require.NoError(t, run(cmd, tt.args))
			assert.Equal(t, tt.want, stdout.String())
			assert.Empty(t, stderr.String(), "stderr should be empty")
		})
	}
}

func TestMainGraphemes(t *testing.T) {
	t.Parallel()

	cmd, stdout, _ := newTestCmd("éé!", nil)
	require.NoError(t, run(cmd, []string{"-split", "graphemes"}))

	out := stdout.String()
	assert.Contains(t, out, "\"é\"     2      0.6667       1\n")
	assert.Contains(t, out, "\"!\"     1      0.3333       0\n")
	assert.Contains(t, out, "entropy: 0.9183 bits/symbol\n")
	assert.Contains(t, out, "efficiency: 91.83%\n")
}

func TestMainFileInput(t *testing.T) {
	t.Parallel()

	input := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(input, []byte("ABBA"), 0o644))

	cmd, stdout, _ := newTestCmd("ignored", nil)
	require.NoError(t, run(cmd, []string{input}))
	assert.Equal(t, _abbaReport, stdout.String())
}

func TestMainErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc    string
		stdin   string
		args    []string
		wantErr []string // all must be present
	}{
		{
			desc:  "missing code",
			stdin: "ABBA",
			args:  []string{"-codes", "A=0"},
			wantErr: []string{
				"evaluate codes:",
				`symbol "B" found in frequencies but not in codes`,
			},
		},
		{
			desc:  "extra code",
			stdin: "ABBA",
			args:  []string{"-codes", "A=0 B=10 C=11"},
			wantErr: []string{
				`extra symbol "C" found in codes but not in frequencies`,
			},
		},
		{
			desc:  "both directions",
			stdin: "ABBA",
			args:  []string{"-codes", "A=0 C=11"},
			wantErr: []string{
				`symbol "B" found in frequencies but not in codes`,
				`extra symbol "C" found in codes but not in frequencies`,
			},
		},
		{
			desc:  "not prefix-free",
			stdin: "ABBA",
			args:  []string{"-codes", "A=0 B=01"},
			wantErr: []string{
				"verify encoding:",
				`code for "A" is a prefix of the code for "B"`,
			},
		},
		{
			desc:    "bad code flag",
			args:    []string{"-codes", "A=x"},
			wantErr: []string{`invalid code "x" for "A"`},
		},
		{
			desc:    "bad split flag",
			args:    []string{"-split", "words"},
			wantErr: []string{`unknown split mode "words"`},
		},
		{
			desc:    "missing file",
			args:    []string{"does-not-exist.txt"},
			wantErr: []string{"read input:", "does-not-exist.txt"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			cmd, stdout, _ := newTestCmd(tt.stdin, nil)
			err := run(cmd, tt.args)
			require.Error(t, err)
			for _, want := range tt.wantErr {
				assert.Contains(t, err.Error(), want)
			}
			assert.Empty(t, stdout.String(), "stdout should be empty")
		})
	}
}

func TestMainEmptyInput(t *testing.T) {
	t.Parallel()

	cmd, stdout, _ := newTestCmd("", nil)
	err := run(cmd, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, huffman.ErrEmptyAlphabet)
	assert.Empty(t, stdout.String())
}

func TestMainLogFromEnv(t *testing.T) {
	t.Parallel()

	logfile := filepath.Join(t.TempDir(), "log.txt")
	cmd, stdout, stderr := newTestCmd("ABBA", envtest.MustPairs(_logfileEnv, logfile))
	require.NoError(t, run(cmd, []string{"-verbose"}))
	assert.Equal(t, _abbaReport, stdout.String())
	assert.Empty(t, stderr.String(), "stderr must be empty")

	body, err := os.ReadFile(logfile)
	require.NoError(t, err)
	assert.Contains(t, string(body), "DEBUG reading input\n")
	assert.Contains(t, string(body), "DEBUG counted symbols split=runes symbols=2 total=4 elapsed=0s\n")
	assert.Contains(t, string(body), "DEBUG built tree nodes=3 depth=1 elapsed=0s\n")
	assert.Contains(t, string(body), "DEBUG encoded text bits=4 bytes=1 elapsed=0s\n")
}

func TestMainLogFlag(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	logfile := filepath.Join(dir, "log.txt")
	input := filepath.Join(dir, "input.txt")
	require.NoError(t, os.WriteFile(input, []byte("ABBA"), 0o644))

	cmd, _, stderr := newTestCmd("", envtest.MustPairs(_logfileEnv, "ignored.txt"))
	require.NoError(t, run(cmd, []string{"-log", logfile, "-verbose", input}))
	assert.Empty(t, stderr.String(), "stderr must be empty")

	body, err := os.ReadFile(logfile)
	require.NoError(t, err)
	assert.Contains(t, string(body), "DEBUG reading input file="+input+"\n")
}

func TestMainLogToStderr(t *testing.T) {
	t.Parallel()

	cmd, _, stderr := newTestCmd("ABBA", nil)
	require.NoError(t, run(cmd, []string{"-verbose", "-codes", "A=0 B=1"}))
	assert.Contains(t, stderr.String(), "DEBUG using provided codes symbols=2\n")
	assert.NotContains(t, stderr.String(), "\x1b[", "logs must not be colored")
}

func TestMainLogOpenError(t *testing.T) {
	t.Parallel()

	logfile := filepath.Join(t.TempDir(), "does/not/exist/log.txt")
	cmd, _, _ := newTestCmd("ABBA", nil)
	err := run(cmd, []string{"-log", logfile})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open log")
}

func TestMainTargetPanicWithLog(t *testing.T) {
	t.Parallel()

	logfile := filepath.Join(t.TempDir(), "log.txt")
	cmd, stdout, stderr := newTestCmd("", envtest.MustPairs(_logfileEnv, logfile))

	called := false
	defer func() {
		assert.True(t, called, "runTarget was called")
	}()
	cmd.runTarget = func(interface{ Run(*config) error }, *config) error {
		called = true
		panic("great sadness")
	}

	err := run(cmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "great sadness")
	assert.Empty(t, stdout.String(), "stdout must be empty")
	assert.Empty(t, stderr.String(), "stderr must be empty")

	body, err := os.ReadFile(logfile)
	require.NoError(t, err)
	assert.Contains(t, string(body), `ERROR panic value="great sadness"`)
}
