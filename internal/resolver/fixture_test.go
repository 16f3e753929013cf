package resolver

import (
	"github.com/zerotired/yake/internal/yakefile"
)

// testDocument mirrors the canonical fixture: a root-level callable `base`,
// a callable `test` depending on it, and a callable `group.sub` nested
// under a group, with environment declarations at every layer.
func testDocument() *yakefile.Yakefile {
	return &yakefile.Yakefile{
		Meta: yakefile.Meta{Doc: "Bla", Version: "1.0.0"},
		Env:  map[string]string{"BASE": "BASEVAL"},
		Targets: map[string]*yakefile.Target{
			"base": {
				Meta: yakefile.TargetMeta{Doc: "Base", Type: yakefile.Callable},
			},
			"test": {
				Meta: yakefile.TargetMeta{
					Doc:     "Huhu",
					Type:    yakefile.Callable,
					Depends: []string{"base"},
				},
				Env: map[string]string{
					"WEBAPP_PORT":   "6543",
					"POSTGRES_PORT": "5432",
				},
			},
			"group": {
				Meta: yakefile.TargetMeta{Doc: "Grouptarget", Type: yakefile.Group},
				Targets: map[string]*yakefile.Target{
					"sub": {
						Meta: yakefile.TargetMeta{
							Doc:     "Subtarget",
							Type:    yakefile.Callable,
							Depends: []string{"base"},
						},
						Env: map[string]string{
							"BASE":          "OVERWRITE",
							"DOCKER_PORT":   "1234",
							"POSTGRES_PORT": "54322",
						},
					},
				},
			},
		},
	}
}
