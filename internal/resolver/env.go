package resolver

import (
	"sort"
	"strings"

	"github.com/zerotired/yake/internal/yakefile"
)

// ResolvedEnv computes the environment for the named target: the document
// root env, overridden by each ancestor prefix's env from shallowest to
// deepest, overridden last by the target's own env. Overlapping keys keep
// the most specific value; unrelated keys accumulate.
//
// Ancestor prefixes are looked up in the full node tree, so an intermediate
// Group contributes its env even though it is not an addressable target.
// The merged result must not contain any reserved variable name; offenders
// fail with a ReservedEnvError regardless of which layer introduced them.
func ResolvedEnv(yf *yakefile.Yakefile, name string) (map[string]string, error) {
	if _, ok := Flatten(yf)[name]; !ok {
		return nil, &UnknownTargetError{Name: name, Known: TargetNames(yf)}
	}

	env := make(map[string]string, len(yf.Env))
	for k, v := range yf.Env {
		env[k] = v
	}

	idx := nodeIndex(yf)
	segments := strings.Split(name, ".")
	for i := range segments {
		prefix := strings.Join(segments[:i+1], ".")
		node, ok := idx[prefix]
		if !ok {
			return nil, &UnknownTargetError{Name: prefix, Known: TargetNames(yf)}
		}
		for k, v := range node.Env {
			env[k] = v
		}
	}

	// The target itself merges last and wins over every ancestor. The loop
	// above already visited it; this keeps its final priority explicit even
	// if the prefix walk changes.
	if target, ok := idx[name]; ok {
		for k, v := range target.Env {
			env[k] = v
		}
	}

	var reserved []string
	for _, key := range reservedEnv {
		if _, ok := env[key]; ok {
			reserved = append(reserved, key)
			delete(env, key)
		}
	}
	if len(reserved) > 0 {
		sort.Strings(reserved)
		return nil, &ReservedEnvError{Target: name, Keys: reserved}
	}

	return env, nil
}
