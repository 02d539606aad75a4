package versions

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cppforlife/go-semi-semantic/version"
)

// Key is a dot-separated sequence of non-negative integers, ordered
// numerically component by component. Missing trailing components count
// as zero, so "120.0" and "120.0.0" are equal.
type Key struct {
	raw        string
	components []string
}

func ParseKey(s string) (Key, error) {
	components := strings.Split(s, ".")
	for _, component := range components {
		if _, err := strconv.ParseUint(component, 10, 63); err != nil {
			return Key{}, fmt.Errorf("version key %q: component %q is not a non-negative integer", s, component)
		}
	}

	return Key{raw: s, components: components}, nil
}

func MustParseKey(s string) Key {
	key, err := ParseKey(s)
	if err != nil {
		panic(err.Error())
	}
	return key
}

func (k Key) String() string {
	return k.raw
}

// Truncate returns the key made of the first n components of k.
func (k Key) Truncate(n int) Key {
	if n >= len(k.components) {
		return k
	}

	components := k.components[:n]
	return Key{raw: strings.Join(components, "."), components: components}
}

func (k Key) Compare(other Key) int {
	n := len(k.components)
	if len(other.components) > n {
		n = len(other.components)
	}

	return k.padded(n).Compare(other.padded(n))
}

func (k Key) padded(n int) version.Version {
	components := make([]string, n)
	for i := range components {
		if i < len(k.components) {
			components[i] = k.components[i]
		} else {
			components[i] = "0"
		}
	}

	ver, err := version.NewVersionFromString(strings.Join(components, "."))
	if err != nil {
		panic("version key was not valid: " + err.Error())
	}

	return ver
}
