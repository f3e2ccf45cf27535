// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd_test

import (
	"testing"
	"testing/fstest"

	"github.com/aibor/base2/internal/cmd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvArgs(t *testing.T) {
	tests := []struct {
		name   string
		env    string
		output []string
	}{
		{
			name:   "empty",
			env:    "",
			output: []string{},
		},
		{
			name:   "multiple args",
			env:    "-method powers  -debug",
			output: []string{"-method", "powers", "-debug"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("BASE2_ARGS", tt.env)
			assert.Equal(t, tt.output, cmd.EnvArgs())
		})
	}
}

func TestLocalConfigArgs(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		env      map[string]string
		expected []string
	}{
		{
			name:     "empty",
			content:  "",
			expected: []string{},
		},
		{
			name:     "single line",
			content:  "-method=powers\n-debug",
			expected: []string{"-method=powers", "-debug"},
		},
		{
			name:     "multiple lines",
			content:  "-method\npowers\n\n  -debug  \n",
			expected: []string{"-method", "powers", "-debug"},
		},
		{
			name:     "with env vars",
			content:  "-method=${METHOD}\n-debug=$DEBUG\n",
			env:      map[string]string{"METHOD": "division", "DEBUG": "true"},
			expected: []string{"-method=division", "-debug=true"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testFS := fstest.MapFS{
				"conf": &fstest.MapFile{
					Data: []byte(tt.content),
				},
			}

			for key, value := range tt.env {
				t.Setenv(key, value)
			}

			content, err := cmd.LocalConfigArgs(testFS, "conf")
			require.NoError(t, err)

			assert.Equal(t, tt.expected, content)
		})
	}
}

func TestLocalConfigArgs_Missing(t *testing.T) {
	content, err := cmd.LocalConfigArgs(fstest.MapFS{}, "conf")
	require.NoError(t, err)
	assert.Nil(t, content)
}

func TestMergedArgs(t *testing.T) {
	testFS := fstest.MapFS{
		"conf": &fstest.MapFile{
			Data: []byte("-method=powers\n"),
		},
	}

	t.Setenv("BASE2_ARGS", "-debug")

	actual, err := cmd.MergedArgs([]string{"-method=division", "42"}, testFS, "conf")
	require.NoError(t, err)

	expected := []string{"-method=powers", "-debug", "-method=division", "42"}
	assert.Equal(t, expected, actual)
}

func TestMergedArgs_ReadError(t *testing.T) {
	testFS := fstest.MapFS{
		"conf/nested": &fstest.MapFile{},
	}

	_, err := cmd.MergedArgs([]string{"42"}, testFS, "conf")
	require.Error(t, err)
}
