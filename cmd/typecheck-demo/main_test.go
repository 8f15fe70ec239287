package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"TYPECHECK_CHECK_MODE",
		"TYPECHECK_LOG_LEVEL",
		"TYPECHECK_LOG_FORMAT",
		"TYPECHECK_CONFIG",
	} {
		t.Setenv(key, "")
	}
}

func TestRun(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantCode   int
		wantStdout string
		wantStderr []string
	}{
		{
			name:       "valid call",
			args:       []string{"1", "2"},
			wantCode:   0,
			wantStdout: "The sum of 1 and 2 is 3.\n",
		},
		{
			name:       "custom prompt",
			args:       []string{"1", "2", "prompt=x=%v y=%v sum=%v"},
			wantCode:   0,
			wantStdout: "x=1 y=2 sum=3\n",
		},
		{
			name:       "raise rejects a string",
			args:       []string{"hello", "2"},
			wantCode:   1,
			wantStderr: []string{"Argument x (hello: string) must be of type int.", "call rejected"},
		},
		{
			name:       "raise rejects a bool keyword",
			args:       []string{"1", "2", "prompt=true"},
			wantCode:   1,
			wantStderr: []string{"Argument prompt (true: bool) must be of type string."},
		},
		{
			name:     "report logs and calls through",
			args:     []string{"-mode", "report", "hello", "world"},
			wantCode: 1,
			wantStderr: []string{
				"invalid argument type",
				`"argument":"x"`,
				`"argument":"y"`,
				"cannot add hello (string) and world (string)",
			},
		},
		{
			name:       "report with a bad keyword keeps the default prompt",
			args:       []string{"-mode", "report", "1", "2", "prompt=7"},
			wantCode:   0,
			wantStdout: "The sum of 1 and 2 is 3.\n",
			wantStderr: []string{`"argument":"prompt"`},
		},
		{
			name:       "prompt starting with a hash",
			args:       []string{"1", "2", "prompt=#%v + %v = %v"},
			wantCode:   0,
			wantStdout: "#1 + 2 = 3\n",
		},
		{
			name:       "prompt without verbs",
			args:       []string{"1", "2", "prompt=hello"},
			wantCode:   1,
			wantStderr: []string{"prompt must format exactly three values"},
		},
		{
			name:       "prompt with too few verbs",
			args:       []string{"1", "2", "prompt=%v"},
			wantCode:   1,
			wantStderr: []string{"prompt must format exactly three values"},
		},
		{
			name:       "missing argument is not checked",
			args:       []string{"1"},
			wantCode:   1,
			wantStderr: []string{"sumString takes 2 positional arguments, got 1"},
		},
		{
			name:     "invalid mode",
			args:     []string{"-mode", "loud", "1", "2"},
			wantCode: 2,
		},
		{
			name:     "keyword without a name",
			args:     []string{"1", "2", "=3"},
			wantCode: 2,
		},
		{
			name:       "help",
			args:       []string{"-h"},
			wantCode:   0,
			wantStdout: usage + "\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			var stdout, stderr bytes.Buffer

			args := append([]string{"-log-format", "json"}, tt.args...)
			code := run(args, &stdout, &stderr)

			assert.Equal(t, tt.wantCode, code, "stderr: %s", stderr.String())
			if tt.wantStdout != "" || tt.wantCode != 0 {
				assert.Equal(t, tt.wantStdout, stdout.String())
			}
			for _, want := range tt.wantStderr {
				assert.Contains(t, stderr.String(), want)
			}
		})
	}
}

func TestRun_RunIDOnEveryLine(t *testing.T) {
	clearEnv(t)
	var stdout, stderr bytes.Buffer

	code := run([]string{"-log-format", "json", "-log-level", "debug", "-mode", "report", "a", "b"}, &stdout, &stderr)
	require.Equal(t, 1, code)

	lines := bytes.Split(bytes.TrimSpace(stderr.Bytes()), []byte("\n"))
	require.NotEmpty(t, lines)
	for _, line := range lines {
		if !bytes.HasPrefix(line, []byte("{")) {
			continue
		}
		assert.Contains(t, string(line), `"run_id":`)
	}
}
