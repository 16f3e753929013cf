package cli

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/zerotired/yake/internal/resolver"
)

// Render formats err for the terminal. Unknown-target failures are enriched
// with the full list of known callable names and, when one ranks, a
// close-match suggestion.
func Render(w io.Writer, err error) {
	var unknown *resolver.UnknownTargetError
	if errors.As(err, &unknown) {
		fmt.Fprintln(w, unknown.Error())
		if match := closestMatch(unknown.Name, unknown.Known); match != "" {
			fmt.Fprintf(w, "Did you mean %q?\n", match)
		}
		if len(unknown.Known) > 0 {
			fmt.Fprintf(w, "Available targets: %s\n", strings.Join(unknown.Known, ", "))
		}
		return
	}
	fmt.Fprintln(w, err)
}

// closestMatch proposes the best fuzzy match for name among candidates.
func closestMatch(name string, candidates []string) string {
	ranks := fuzzy.RankFindFold(name, candidates)
	if len(ranks) == 0 {
		return ""
	}
	sort.Sort(ranks)
	return ranks[0].Target
}
