package cmd

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/41v4/img-manipulation/image"
)

func TestPolicyFlags(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "imgnorm.yaml")
	require.NoError(t, os.WriteFile(fn, []byte("target_height: 300\njpeg_quality: 85\n"), 0644))

	fs := flag.NewFlagSet("normalize", flag.ContinueOnError)
	pf := addPolicyFlags(fs)
	require.NoError(t, fs.Parse([]string{"-config", fn, "-quality", "70", "-replace", "photos"}))
	assert.Equal(t, []string{"photos"}, fs.Args())

	s, err := pf.settings()
	require.NoError(t, err)
	assert.Equal(t, 300, s.TargetHeight, "unset flag keeps file value")
	assert.Equal(t, 70, s.JPEGQuality)
	assert.False(t, s.KeepOriginal)

	p, err := pf.policy()
	require.NoError(t, err)
	assert.Equal(t, image.FormatJPEG, p.Canonical)
	assert.Equal(t, 300, p.TargetHeight)
}

func TestPolicyFlagsInvalid(t *testing.T) {
	fs := flag.NewFlagSet("plan", flag.ContinueOnError)
	pf := addPolicyFlags(fs)
	require.NoError(t, fs.Parse([]string{"-height", "0", "dir"}))
	_, err := pf.policy()
	assert.Error(t, err)
}

func TestCommandName(t *testing.T) {
	assert.Equal(t, "normalize", cmdNormalize.Name())
	assert.Equal(t, "plan", cmdPlan.Name())
	assert.Equal(t, "version", cmdVersion.Name())
}
