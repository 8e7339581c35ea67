package plan

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/taskboard/pkg/errors"
)

const tomlPlan = `
title = "release"

[[tasks]]
id = "build"

[[tasks]]
id = "test"
needs = ["build"]

[[tasks]]
id = "publish"
needs = ["test"]
hold = true
`

const yamlPlan = `
title: release
tasks:
  - id: build
  - id: test
    needs: [build]
  - id: publish
    needs: [test]
    hold: true
`

const jsonPlan = `{
  "title": "release",
  "tasks": [
    {"id": "build"},
    {"id": "test", "needs": ["build"]},
    {"id": "publish", "needs": ["test"], "hold": true}
  ]
}`

func TestDecodeFormats(t *testing.T) {
	tests := []struct {
		format string
		input  string
	}{
		{FormatTOML, tomlPlan},
		{FormatYAML, yamlPlan},
		{FormatJSON, jsonPlan},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			p, err := Decode(strings.NewReader(tt.input), tt.format)
			require.NoError(t, err)

			assert.Equal(t, "release", p.Title)
			assert.Equal(t, []string{"build", "test", "publish"}, p.TaskIDs())
			assert.Equal(t, 2, p.EdgeCount())
			assert.True(t, p.Tasks[2].Hold)
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name   string
		format string
		input  string
	}{
		{"unsupported format", "xml", "<plan/>"},
		{"malformed toml", FormatTOML, "[[tasks]"},
		{"malformed yaml", FormatYAML, "tasks: ["},
		{"malformed json", FormatJSON, "{"},
		{"invalid plan", FormatJSON, `{"tasks":[{"id":"a","needs":["ghost"]}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.input), tt.format)
			assert.Error(t, err)
		})
	}
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path    string
		want    string
		wantErr bool
	}{
		{"plan.toml", FormatTOML, false},
		{"plan.yaml", FormatYAML, false},
		{"plan.yml", FormatYAML, false},
		{"plan.JSON", FormatJSON, false},
		{"https://example.com/plans/release.toml", FormatTOML, false},
		{"plan.txt", "", true},
		{"plan", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := DetectFormat(tt.path)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, errors.ErrCodeInvalidFormat, errors.GetCode(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plan.toml")
	require.NoError(t, os.WriteFile(path, []byte(tomlPlan), 0o644))

	p, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, p.Tasks, 3)

	_, err = Load(filepath.Join(dir, "missing.toml"))
	assert.Equal(t, errors.ErrCodeFileNotFound, errors.GetCode(err))
}
