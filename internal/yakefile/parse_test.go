package yakefile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validDocument = `
meta:
  doc: "Some docs"
  version: "1.0.0"
env:
  BASE: "BASEVAL"
targets:
  base:
    meta:
      doc: "Test command"
      type: callable
    exec:
      - echo "i'm base"
  group:
    meta:
      doc: "Test group"
      type: group
    targets:
      sub:
        meta:
          doc: "Subtarget"
          type: callable
          depends:
            - base
        env:
          DOCKER_PORT: "1234"
`

func TestParse(t *testing.T) {
	yf, err := Parse([]byte(validDocument))
	require.NoError(t, err)

	assert.Equal(t, "Some docs", yf.Meta.Doc)
	assert.Equal(t, "1.0.0", yf.Meta.Version)
	assert.False(t, yf.Meta.IncludeRecursively)
	assert.Equal(t, map[string]string{"BASE": "BASEVAL"}, yf.Env)

	base := yf.Targets["base"]
	require.NotNil(t, base)
	assert.Equal(t, Callable, base.Meta.Type)
	assert.Equal(t, []string{`echo "i'm base"`}, base.Exec)

	group := yf.Targets["group"]
	require.NotNil(t, group)
	assert.Equal(t, Group, group.Meta.Type)

	sub := group.Targets["sub"]
	require.NotNil(t, sub)
	assert.Equal(t, Callable, sub.Meta.Type)
	assert.Equal(t, []string{"base"}, sub.Meta.Depends)
	assert.Equal(t, map[string]string{"DOCKER_PORT": "1234"}, sub.Env)
}

func TestParseIncludeRecursively(t *testing.T) {
	yf, err := Parse([]byte(`
meta:
  doc: "docs"
  version: "1.0.0"
  include_recursively: true
targets: {}
`))
	require.NoError(t, err)
	assert.True(t, yf.Meta.IncludeRecursively)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "malformed yaml",
			yaml:    "meta: [",
			wantErr: "parse yakefile",
		},
		{
			name: "unknown target type",
			yaml: `
meta:
  doc: "docs"
  version: "1.0.0"
targets:
  base:
    meta:
      doc: "docs"
      type: runnable
`,
			wantErr: `unknown target type "runnable"`,
		},
		{
			name: "missing document doc",
			yaml: `
meta:
  version: "1.0.0"
`,
			wantErr: "meta.doc is required",
		},
		{
			name: "missing document version",
			yaml: `
meta:
  doc: "docs"
`,
			wantErr: "meta.version is required",
		},
		{
			name: "missing target type",
			yaml: `
meta:
  doc: "docs"
  version: "1.0.0"
targets:
  base:
    meta:
      doc: "docs"
`,
			wantErr: "target base: meta.type",
		},
		{
			name: "missing nested target doc",
			yaml: `
meta:
  doc: "docs"
  version: "1.0.0"
targets:
  group:
    meta:
      doc: "docs"
      type: group
    targets:
      sub:
        meta:
          type: callable
`,
			wantErr: "target group.sub: meta.doc is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Run("reads and parses a file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "Yakefile")
		require.NoError(t, os.WriteFile(path, []byte(validDocument), 0o644))

		yf, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "Some docs", yf.Meta.Doc)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "Yakefile"))
		require.Error(t, err)
		assert.ErrorContains(t, err, "read yakefile")
	})

	t.Run("parse error names the file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "Yakefile")
		require.NoError(t, os.WriteFile(path, []byte("meta: ["), 0o644))

		_, err := Load(path)
		require.Error(t, err)
		assert.ErrorContains(t, err, path)
	})
}

func TestTargetTypeString(t *testing.T) {
	assert.Equal(t, "group", Group.String())
	assert.Equal(t, "callable", Callable.String())
}
