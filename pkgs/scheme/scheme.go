// Package scheme names the version orderings the dewey tool can compare
// under and resolves a name to its comparator.
package scheme

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/mod/semver"

	"github.com/Gottox/dewey"
	"github.com/Gottox/dewey/pkgs/gnu"
)

// Default is the scheme used when none is named.
const Default = "dewey"

var schemes = map[string]dewey.Comparator{
	"dewey":  dewey.Compare,
	"gnu":    fromTotal(gnu.Compare),
	"semver": fromTotal(semverCompare),
}

// Lookup resolves a scheme name to its comparator. The dewey scheme is
// the only partial one; gnu and semver never return Incomparable.
func Lookup(name string) (dewey.Comparator, error) {
	cmp, ok := schemes[name]
	if !ok {
		return nil, fmt.Errorf("unknown scheme %q (known: %s)", name, strings.Join(Names(), ", "))
	}
	return cmp, nil
}

// Names returns the known scheme names, sorted.
func Names() []string {
	names := make([]string, 0, len(schemes))
	for name := range schemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// fromTotal adapts a conventional three-way comparison to a Comparator.
func fromTotal(cmp func(v1, v2 string) int) dewey.Comparator {
	return func(v1, v2 string) dewey.Order {
		switch c := cmp(v1, v2); {
		case c < 0:
			return dewey.Less
		case c > 0:
			return dewey.Greater
		}
		return dewey.Equal
	}
}

// semverCompare compares under semantic versioning via
// golang.org/x/mod/semver, tolerating versions without the leading "v"
// that package requires.
func semverCompare(v1, v2 string) int {
	if !strings.HasPrefix(v1, "v") {
		v1 = "v" + v1
	}
	if !strings.HasPrefix(v2, "v") {
		v2 = "v" + v2
	}
	return semver.Compare(v1, v2)
}
