package dictionary

import (
	"fmt"
	"slices"
	"strings"

	"github.com/mcoot/hangman-go/internal/dependencies/random"
	"github.com/mcoot/hangman-go/internal/model"
)

// Catalog holds named dictionaries, looked up case-insensitively
type Catalog struct {
	dictionaries map[string]*Dictionary
}

// NewCatalog creates an empty catalog
func NewCatalog() *Catalog {
	return &Catalog{
		dictionaries: make(map[string]*Dictionary),
	}
}

// NewBuiltinCatalog creates a catalog with every built-in word list
func NewBuiltinCatalog(rnd random.Random) (*Catalog, error) {
	catalog := NewCatalog()
	for _, list := range builtinLists {
		d, err := New(list.name, list.category, list.words, rnd)
		if err != nil {
			return nil, err
		}
		catalog.Register(d)
	}
	return catalog, nil
}

// Register adds a dictionary, replacing any existing one with the same name
func (c *Catalog) Register(d *Dictionary) {
	c.dictionaries[strings.ToLower(d.Name())] = d
}

// Get returns the dictionary with the given name
func (c *Catalog) Get(name string) (*Dictionary, error) {
	d, ok := c.dictionaries[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", model.ErrDictionaryNotFound, name)
	}
	return d, nil
}

// Names returns the registered dictionary names in sorted order
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.dictionaries))
	for _, d := range c.dictionaries {
		names = append(names, d.Name())
	}
	slices.Sort(names)
	return names
}

// All returns every registered dictionary sorted by name
func (c *Catalog) All() []*Dictionary {
	result := make([]*Dictionary, 0, len(c.dictionaries))
	for _, name := range c.Names() {
		result = append(result, c.dictionaries[strings.ToLower(name)])
	}
	return result
}
