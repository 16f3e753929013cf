package resolver

import (
	"github.com/zerotired/yake/internal/yakefile"
)

// Merge folds a subordinate document's flattened targets into the root
// document's top-level target map. The inserted keys are already qualified
// (they may contain literal dots), so a later Flatten of the root treats
// them as addressable leaf entries. An existing entry under the same
// qualified name is overwritten; with multiple subordinate documents the
// last merge wins.
//
// Only the subordinate's targets survive composition; its meta and root env
// are discarded.
func Merge(root, sub *yakefile.Yakefile) {
	flat := Flatten(sub)
	if root.Targets == nil {
		root.Targets = make(map[string]*yakefile.Target, len(flat))
	}
	for name, target := range flat {
		root.Targets[name] = target
	}
}
