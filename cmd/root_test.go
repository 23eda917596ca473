package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apparebit/prettypretty/pkg/color"
	"github.com/apparebit/prettypretty/pkg/style"
)

func TestRootCommand(t *testing.T) {
	assert.Equal(t, "prettypretty", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
	assert.True(t, rootCmd.SilenceUsage)
}

func TestSetVersion(t *testing.T) {
	SetVersion("1.2.3-test")
	assert.Equal(t, "1.2.3-test", rootCmd.Version)
}

func TestOkVersionFlag(t *testing.T) {
	original := okVersionName
	defer func() { okVersionName = original }()

	okVersionName = "original"
	version, err := okVersion()
	require.NoError(t, err)
	assert.Equal(t, color.OkOriginal, version)

	okVersionName = "revised"
	version, err = okVersion()
	require.NoError(t, err)
	assert.Equal(t, color.OkRevised, version)

	okVersionName = "bogus"
	_, err = okVersion()
	assert.Error(t, err)
}

func TestOutputFidelityFlag(t *testing.T) {
	original := fidelityName
	defer func() { fidelityName = original }()

	fidelityName = "8-bit"
	fidelity, err := outputFidelity()
	require.NoError(t, err)
	assert.Equal(t, style.EightBit, fidelity)

	fidelityName = "bogus"
	_, err = outputFidelity()
	assert.Error(t, err)
}

func TestConvertCommand(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected []string
	}{
		{
			name: "hex to srgb",
			args: []string{"#ffa563", "--to", "srgb"},
			expected: []string{
				"color(srgb 1 0.6470588235294118 0.38823529411764707)",
				"#ffa563",
			},
		},
		{
			name:     "srgb to oklch",
			args:     []string{"#ffffff", "--to", "oklch"},
			expected: []string{"oklch("},
		},
		{
			name: "gamut mapping p3 green",
			args: []string{"color(display-p3 0 1 0)", "--to", "srgb", "--gamut-map"},
			// The mapped color is not the sRGB green primary; mapping
			// preserves as much chroma as a just-noticeable difference
			// allows.
			expected: []string{"color(srgb 0 0.98576", "#00fb29"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := newConvertCmd()
			var out bytes.Buffer
			cmd.SetOut(&out)
			cmd.SetErr(&out)
			cmd.SetArgs(tt.args)

			require.NoError(t, cmd.Execute())
			for _, expected := range tt.expected {
				assert.Contains(t, out.String(), expected)
			}
		})
	}
}

func TestConvertCommandErrors(t *testing.T) {
	cmd := newConvertCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	cmd.SetArgs([]string{"not-a-color"})
	assert.Error(t, cmd.Execute())

	cmd = newConvertCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"#fff", "--to", "not-a-space"})
	assert.Error(t, cmd.Execute())
}

func TestDownsampleCommand(t *testing.T) {
	originalFidelity := fidelityName
	defer func() { fidelityName = originalFidelity }()
	fidelityName = "ansi"

	cmd := newDownsampleCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"#ffa563"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "ansi 11 (bright yellow)")
}

func TestGridCommand(t *testing.T) {
	originalFidelity := fidelityName
	defer func() { fidelityName = originalFidelity }()
	fidelityName = "8-bit"

	cmd := newGridCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "6x6x6 RGB cube")
	assert.Contains(t, out.String(), "24-step gray gradient")
}

func TestThemeCommand(t *testing.T) {
	originalFidelity := fidelityName
	defer func() { fidelityName = originalFidelity }()
	fidelityName = "no-color"

	cmd := newThemeCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "default foreground")
	assert.Contains(t, out.String(), "hue-lightness downsampling supported")
}
