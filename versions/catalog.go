package versions

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/frodenas/driverfetch"
)

type Entry struct {
	Key Key
	URL string
}

// Catalog maps build keys to download URLs, kept sorted by Key.Compare.
type Catalog struct {
	entries []Entry
}

// NewCatalog keeps the builds of metadata that list artifact for platform.
// Builds are visited in ascending raw key order, so when two keys compare
// equal the result does not depend on the document's member order.
func NewCatalog(metadata driverfetch.Metadata, artifact string, platform string) *Catalog {
	catalog := &Catalog{}

	buildKeys := maps.Keys(metadata.Builds)
	slices.Sort(buildKeys)

	for _, buildKey := range buildKeys {
		build := metadata.Builds[buildKey]
		if build.Downloads == nil {
			continue
		}

		downloads, ok := build.Downloads[artifact]
		if !ok {
			continue
		}

		key, err := ParseKey(buildKey)
		if err != nil {
			continue
		}

		for _, download := range downloads {
			if download.Platform == platform {
				catalog.Put(key, download.URL)
				break
			}
		}
	}

	return catalog
}

// Put records key -> url. It returns false, leaving the catalog untouched,
// when an equal key is already present.
func (c *Catalog) Put(key Key, url string) bool {
	i, found := c.search(key)
	if found {
		return false
	}

	c.entries = slices.Insert(c.entries, i, Entry{Key: key, URL: url})
	return true
}

func (c *Catalog) Get(key Key) (Entry, bool) {
	i, found := c.search(key)
	if !found {
		return Entry{}, false
	}
	return c.entries[i], true
}

// Floor returns the entry with the greatest key less than or equal to target.
func (c *Catalog) Floor(target Key) (Entry, bool) {
	i, found := c.search(target)
	if found {
		return c.entries[i], true
	}

	if i == 0 {
		return Entry{}, false
	}

	return c.entries[i-1], true
}

// FloorPrefix returns the greatest entry whose key, cut to the length of
// target, is less than or equal to target. "120.0" matches any 120.0.x key.
func (c *Catalog) FloorPrefix(target Key) (Entry, bool) {
	n := len(target.components)
	i, _ := slices.BinarySearchFunc(c.entries, Entry{Key: target}, func(entry Entry, lookup Entry) int {
		if entry.Key.Truncate(n).Compare(lookup.Key) <= 0 {
			return -1
		}
		return 1
	})

	if i == 0 {
		return Entry{}, false
	}

	return c.entries[i-1], true
}

func (c *Catalog) Len() int {
	return len(c.entries)
}

// Entries returns the entries in ascending key order.
func (c *Catalog) Entries() []Entry {
	return slices.Clone(c.entries)
}

func (c *Catalog) search(target Key) (int, bool) {
	return slices.BinarySearchFunc(c.entries, Entry{Key: target}, compareEntries)
}

func compareEntries(a Entry, b Entry) int {
	return a.Key.Compare(b.Key)
}
