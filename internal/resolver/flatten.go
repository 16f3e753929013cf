package resolver

import (
	"sort"

	"github.com/zerotired/yake/internal/yakefile"
)

// Flatten reduces the nested target tree to a single-level lookup keyed by
// dot-qualified name. Top-level entries are addressable regardless of type
// and their children are always descended into; below the top level only
// Callable nodes receive an entry, Groups serve purely as name prefixes and
// never appear themselves, and a Callable child's own children are not
// descended into.
//
// Qualified names are assumed globally unique; a collision between two
// paths is not detected.
func Flatten(yf *yakefile.Yakefile) map[string]*yakefile.Target {
	flat := make(map[string]*yakefile.Target, len(yf.Targets))
	for name, target := range yf.Targets {
		flat[name] = target
		flattenInto(flat, name, target)
	}
	return flat
}

func flattenInto(flat map[string]*yakefile.Target, prefix string, target *yakefile.Target) {
	for name, child := range target.Targets {
		qname := prefix + "." + name
		if child.Meta.Type == yakefile.Callable {
			flat[qname] = child
		} else {
			flattenInto(flat, qname, child)
		}
	}
}

// Lookup returns the target addressed by the qualified name, if any.
func Lookup(yf *yakefile.Yakefile, name string) (*yakefile.Target, bool) {
	target, ok := Flatten(yf)[name]
	return target, ok
}

// TargetNames returns the sorted qualified names of every Callable entry in
// the flattened map. This is the list shown to the user on an unknown
// target.
func TargetNames(yf *yakefile.Yakefile) []string {
	flat := Flatten(yf)
	names := make([]string, 0, len(flat))
	for name, target := range flat {
		if target.Meta.Type == yakefile.Callable {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// nodeIndex maps every qualified name to its node, including intermediate
// Groups at any depth. Environment resolution uses it for ancestor-prefix
// lookups, where Group prefixes must resolve even though they are absent
// from the Callable-filtered flattened map.
func nodeIndex(yf *yakefile.Yakefile) map[string]*yakefile.Target {
	idx := make(map[string]*yakefile.Target, len(yf.Targets))
	for name, target := range yf.Targets {
		idx[name] = target
		nodeIndexInto(idx, name, target)
	}
	return idx
}

func nodeIndexInto(idx map[string]*yakefile.Target, prefix string, target *yakefile.Target) {
	for name, child := range target.Targets {
		qname := prefix + "." + name
		idx[qname] = child
		nodeIndexInto(idx, qname, child)
	}
}
