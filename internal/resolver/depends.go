package resolver

import (
	"github.com/zerotired/yake/internal/yakefile"
)

// AllDependencies resolves the declared dependencies of every Callable entry
// in the flattened map. Every Callable receives an entry, empty when it
// declares none; list order follows the depends declaration.
//
// Only direct dependencies are resolved. A dependency's own depends list is
// deliberately not followed; an author wanting transitive execution must
// list every required target explicitly.
func AllDependencies(yf *yakefile.Yakefile) (map[string][]*yakefile.Target, error) {
	flat := Flatten(yf)
	deps := make(map[string][]*yakefile.Target, len(flat))
	for name, target := range flat {
		if target.Meta.Type != yakefile.Callable {
			continue
		}
		list := make([]*yakefile.Target, 0, len(target.Meta.Depends))
		for _, depName := range target.Meta.Depends {
			dep, ok := flat[depName]
			if !ok {
				return nil, &UnknownTargetError{
					Name:        depName,
					DependentOf: name,
					Known:       TargetNames(yf),
				}
			}
			list = append(list, dep)
		}
		deps[name] = list
	}
	return deps, nil
}

// DependenciesOf returns the direct dependency list of one target. Targets
// without a dependency entry, such as an addressable top-level Group,
// resolve to an empty list.
func DependenciesOf(yf *yakefile.Yakefile, name string) ([]*yakefile.Target, error) {
	deps, err := AllDependencies(yf)
	if err != nil {
		return nil, err
	}
	return deps[name], nil
}
