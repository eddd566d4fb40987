package main

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/go-highway/lanes/hwy"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	// A nil slice would make cobra fall back to os.Args.
	cmd.SetArgs(append([]string{}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestInfo(t *testing.T) {
	out, err := execute(t)
	require.NoError(t, err)
	assert.Contains(t, out, "Highway dispatch level: "+hwy.CurrentName())
	assert.Contains(t, out, "Backends: scalar, sse2, avx2, neon, altivec")
	assert.Contains(t, out, "int8/uint8")
	assert.Contains(t, out, fmt.Sprintf("Hardware instructions: %v", hwy.HardwareInstructions()))
}

func TestVerifyText(t *testing.T) {
	out, err := execute(t, "verify", "--trials", "5", "--seed", "3")
	require.NoError(t, err)
	for _, level := range hwy.AllBackends() {
		assert.Contains(t, out, level.String())
	}
	assert.NotContains(t, out, "FAIL")
}

func TestVerifyYAML(t *testing.T) {
	out, err := execute(t, "verify", "--trials", "2", "--format", "yaml", "--backends", "avx2,null,avx2")
	require.NoError(t, err)

	var reports []hwy.BackendReport
	require.NoError(t, yaml.Unmarshal([]byte(out), &reports))
	require.Len(t, reports, 2)
	assert.Equal(t, "avx2", reports[0].Level)
	assert.Equal(t, 32, reports[0].Width)
	assert.Equal(t, "scalar", reports[1].Level)
	for _, r := range reports {
		assert.Equal(t, 2, r.Trials)
		assert.Positive(t, r.Checks)
		assert.Empty(t, r.Failures)
	}
}

func TestVerifyBadFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"format", []string{"verify", "--format", "json"}, "unknown --format"},
		{"trials", []string{"verify", "--trials", "0"}, "--trials must be positive"},
		{"backend", []string{"verify", "--backends", "sve"}, "unknown dispatch level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestWriteReportsFailure(t *testing.T) {
	var out bytes.Buffer
	reports := []hwy.BackendReport{{
		Level:  "neon",
		Width:  16,
		Checks: 10,
		Failures: []hwy.CheckFailure{
			{Op: "MoveL", Shape: "uint8x16", Arg: 3, Got: "[1]", Want: "[2]"},
		},
	}}
	require.NoError(t, writeReports(&out, "text", reports))
	assert.Contains(t, out.String(), "FAIL")
	assert.Contains(t, out.String(), "MoveL uint8x16 arg=3")
}

func TestCPU(t *testing.T) {
	out, err := execute(t, "cpu")
	require.NoError(t, err)
	assert.Contains(t, out, "Compiled-in backend: "+hwy.CurrentName())
}
