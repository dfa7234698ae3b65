package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/zeebo/assert"

	"github.com/zeebo/meow"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cfg := filepath.Join(t.TempDir(), "absent.toml")
	cmd := newRootCommand()

	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--config", cfg}, args...))

	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	assert.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestTestBuffer(t *testing.T) {
	out, err := run(t, "--width", "128")
	assert.NoError(t, err)
	assert.Equal(t, out, ""+
		"Using 128-bit Meow implementation\n"+
		"  Hash of a test buffer:\n"+
		"    01461F31-44B37202-B0D1D70A-09455BA5\n")

	out, err = run(t, "--width", "512")
	assert.NoError(t, err)
	assert.That(t, strings.Contains(out, "511E7600-2A5B4DC9-5C847308-9B4D34C6"))
}

func TestHashFile(t *testing.T) {
	path := writeFile(t, "data", []byte("some data"))

	out, err := run(t, "--width", "128", path)
	assert.NoError(t, err)
	assert.That(t, strings.Contains(out, "932BC75B-90F23D12-13F4315F-1F14EEA4"))

	empty := writeFile(t, "empty", nil)
	out, err = run(t, "--width", "128", empty)
	assert.NoError(t, err)
	assert.That(t, strings.Contains(out, "E28D2AA1-B9C5057E-AE26A8DE-FFCFBDE4"))
}

func TestHashStdin(t *testing.T) {
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader("some data"))
	cmd.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "absent.toml"), "--width", "128", "-"})

	assert.NoError(t, cmd.Execute())
	assert.That(t, strings.Contains(out.String(), "Hash of standard input:"))
	assert.That(t, strings.Contains(out.String(), "932BC75B-90F23D12-13F4315F-1F14EEA4"))
}

func TestSeedFlag(t *testing.T) {
	path := writeFile(t, "data", []byte("some data"))

	a, err := run(t, "--width", "128", path)
	assert.NoError(t, err)
	b, err := run(t, "--width", "128", "--seed", "1", path)
	assert.NoError(t, err)
	assert.That(t, a != b)
}

func TestCompareFiles(t *testing.T) {
	a := writeFile(t, "a", []byte("some data"))
	b := writeFile(t, "b", []byte("some data"))
	c := writeFile(t, "c", []byte("other data"))

	out, err := run(t, "--width", "256", a, b)
	assert.NoError(t, err)
	assert.That(t, strings.Contains(out, "are the same:"))

	out, err = run(t, "--width", "256", a, c)
	assert.NoError(t, err)
	assert.That(t, strings.Contains(out, "are different:"))
	assert.That(t, !strings.Contains(out, "FAILURE"))
}

func TestCompareFilesCanceled(t *testing.T) {
	a := writeFile(t, "a", []byte("some data"))
	b := writeFile(t, "b", []byte("some data"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var impl meow.Impl
	var out bytes.Buffer
	err := compareFiles(ctx, &out, impl, meow.Seed{}, a, b)
	assert.That(t, errors.Is(err, context.Canceled))
	assert.Equal(t, out.String(), "")

	err = compareFiles(context.Background(), &out, impl, meow.Seed{}, a, filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
	assert.That(t, strings.Contains(err.Error(), "missing"))
}

func TestErrors(t *testing.T) {
	_, err := run(t, filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)

	_, err = run(t, "a", "b", "c")
	assert.Error(t, err)

	_, err = run(t, "--width", "1024")
	assert.Error(t, err)

	_, err = run(t, "--seed", "nope")
	assert.Error(t, err)
}

func TestConfigFile(t *testing.T) {
	cfg := writeFile(t, "config.toml", []byte("width = \"128\"\n"))

	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", cfg})
	assert.NoError(t, cmd.Execute())
	assert.That(t, strings.HasPrefix(out.String(), "Using 128-bit Meow implementation\n"))
}

func TestInfo(t *testing.T) {
	out, err := run(t, "--width", "512", "info")
	assert.NoError(t, err)
	assert.That(t, strings.Contains(out, "Kernel: 512-bit"))
	assert.That(t, strings.Contains(out, "Block size: 1.0 KiB"))
}

func TestBench(t *testing.T) {
	out, err := run(t, "--width", "128", "bench", "--min-tries", "1", "--budget", "0s", "--max-size", "64")
	assert.NoError(t, err)
	assert.That(t, strings.Contains(out, "Leaderboard:"))
	assert.That(t, strings.Contains(out, "64 B"))
}
