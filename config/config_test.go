package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	s := Default()
	assert.Equal(t, 400, s.TargetHeight)
	assert.Equal(t, "jpg", s.CanonicalFormat)
	assert.Equal(t, 90, s.JPEGQuality)
	assert.True(t, s.KeepOriginal)
	assert.NoError(t, s.Validate(nil))
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "imgnorm.yaml")
	body := "target_height: 600\njpeg_quality: 80\nkeep_original: false\ninterpolation: bicubic\n"
	require.NoError(t, os.WriteFile(fn, []byte(body), 0644))

	t.Setenv("IMGNORM_JPEG_QUALITY", "70")
	s, err := Load(fn)
	require.NoError(t, err)
	assert.Equal(t, 600, s.TargetHeight)
	assert.Equal(t, 70, s.JPEGQuality, "env overrides file")
	assert.False(t, s.KeepOriginal)
	assert.Equal(t, "bicubic", s.Interpolation)
	assert.Equal(t, "jpg", s.CanonicalFormat)
}

func TestLoadConfigEnvFile(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "c.yaml")
	require.NoError(t, os.WriteFile(fn, []byte("target_height: 240\n"), 0644))
	t.Setenv("IMGNORM_CONFIG", fn)

	s, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 240, s.TargetHeight)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	known := []string{"bicubic", "lanczos3"}
	tests := []struct {
		name string
		edit func(*Settings)
		want error
	}{
		{"zero height", func(s *Settings) { s.TargetHeight = 0 }, ErrTargetHeight},
		{"negative height", func(s *Settings) { s.TargetHeight = -4 }, ErrTargetHeight},
		{"png canonical", func(s *Settings) { s.CanonicalFormat = "png" }, ErrCanonicalFormat},
		{"quality", func(s *Settings) { s.JPEGQuality = 101 }, ErrJPEGQuality},
		{"background", func(s *Settings) { s.Background = "white" }, ErrBackground},
		{"jpeg alias", func(s *Settings) { s.CanonicalFormat = "jpeg" }, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Default()
			tt.edit(&s)
			err := s.Validate(known)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}

	s := Default()
	s.Interpolation = "sinc"
	err := s.Validate(known)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bicubic, lanczos3")
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#102030")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff}, c)

	_, err = ParseColor("#12")
	assert.Error(t, err)

	s := Default()
	s.Background = "bad"
	assert.Equal(t, color.White, s.BackgroundColor())
}

func TestInDevelop(t *testing.T) {
	t.Setenv("IMGNORM_ENV", "dev")
	assert.True(t, InDevelop())
	t.Setenv("IMGNORM_ENV", "prod")
	assert.False(t, InDevelop())
}
