// Package demo holds the built-in casting instances.
//
// Each demo is stored in the casting text format with the " - " separator
// between a group's count and its ids. With the lead filter applied "no"
// has no solution, "yes" has exactly one and "smallest" has none.
package demo

import (
	"slices"

	"github.com/matzehuels/castcolor/pkg/casting"
	cerrors "github.com/matzehuels/castcolor/pkg/errors"
	cio "github.com/matzehuels/castcolor/pkg/io"
)

// Demo names.
const (
	No       = "no"
	Yes      = "yes"
	Smallest = "smallest"
)

var texts = map[string]string{
	No: `5
5
3

3 - 1 2 3
2 - 2 3
2 - 1 3
1 - 2
3 - 1 2 3

2 - 1 2
2 - 1 2
3 - 1 3 4
2 - 3 5
3 - 2 3 5
`,
	Yes: `6
5
4

3 - 1 3 4
2 - 2 3
2 - 1 3
1 - 2
4 - 1 2 3 4
2 - 1 4

3 - 1 2 6
3 - 2 3 5
3 - 2 4 6
3 - 2 3 6
2 - 1 6
`,
	Smallest: `2
1
2

1 - 1
1 - 2

2 - 1 2
`,
}

var descriptions = map[string]string{
	No:       "five roles; every solution casts both leads into one scene",
	Yes:      "six roles; exactly one solution keeps the leads apart",
	Smallest: "two roles sharing a single scene",
}

// Names returns the demo names in display order.
func Names() []string {
	return []string{No, Yes, Smallest}
}

// Text returns the instance text of the named demo.
func Text(name string) (string, error) {
	t, ok := texts[name]
	if !ok {
		return "", cerrors.New(cerrors.ErrCodeNotFound, "unknown demo %q (available: %v)", name, Names())
	}
	return t, nil
}

// Describe returns a one-line description of the named demo, or an empty
// string for unknown names.
func Describe(name string) string {
	return descriptions[name]
}

// Instance parses the named demo.
func Instance(name string) (*casting.Instance, error) {
	t, err := Text(name)
	if err != nil {
		return nil, err
	}
	return cio.ParseCasting(t)
}

// IsDemo reports whether name is a demo.
func IsDemo(name string) bool {
	return slices.Contains(Names(), name)
}
