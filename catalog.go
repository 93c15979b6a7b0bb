package wandbox

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Compiler is one entry from the instance's compiler listing.
type Compiler struct {
	Name     string `json:"name"`
	Version  string `json:"version"`
	Language string `json:"language"`

	// DisplayCompileCommand is the command line wandbox shows to users, not
	// necessarily the exact invocation it runs.
	DisplayCompileCommand string `json:"display-compile-command"`

	// CompilerOptionRaw and RuntimeOptionRaw report whether the compiler
	// accepts free-form option strings at compile and run time.
	CompilerOptionRaw bool `json:"compiler-option-raw"`
	RuntimeOptionRaw  bool `json:"runtime-option-raw"`
}

func (c Compiler) String() string {
	return fmt.Sprintf("[%s %s] : %s", c.Name, c.Version, c.Language)
}

// Language groups the compilers wandbox offers for one language. The name is
// always lowercased, regardless of how the listing spells it.
type Language struct {
	Name      string
	Compilers []Compiler
}

// Catalog is an in-memory index of the instance's compiler listing, organized
// by language. It resolves compilation targets and answers membership
// queries. Safe for concurrent use.
type Catalog struct {
	mu        sync.RWMutex
	languages map[string]*Language
}

// CatalogOption filters the listing while a catalog is being built.
type CatalogOption func(*catalogFilter)

type catalogFilter struct {
	compilers map[string]struct{}
	languages map[string]struct{}
}

// ExcludeCompilers drops the named compilers from the catalog. Useful when
// the instance advertises a compiler that is known to be broken.
func ExcludeCompilers(names ...string) CatalogOption {
	return func(f *catalogFilter) {
		for _, name := range names {
			f.compilers[name] = struct{}{}
		}
	}
}

// ExcludeLanguages drops every compiler of the named languages. Names are
// matched case-insensitively.
func ExcludeLanguages(names ...string) CatalogOption {
	return func(f *catalogFilter) {
		for _, name := range names {
			f.languages[strings.ToLower(name)] = struct{}{}
		}
	}
}

// NewCatalog indexes a compiler listing by lowercased language name,
// preserving the listing order within each language. The first compiler
// listed for a language is treated as its default.
func NewCatalog(compilers []Compiler, opts ...CatalogOption) *Catalog {
	filter := &catalogFilter{
		compilers: map[string]struct{}{},
		languages: map[string]struct{}{},
	}

	for _, opt := range opts {
		opt(filter)
	}

	catalog := &Catalog{languages: map[string]*Language{}}

	for _, compiler := range compilers {
		languageName := strings.ToLower(compiler.Language)

		if _, blocked := filter.languages[languageName]; blocked {
			continue
		}

		if _, blocked := filter.compilers[compiler.Name]; blocked {
			continue
		}

		compiler.Language = languageName

		language, ok := catalog.languages[languageName]

		if !ok {
			language = &Language{Name: languageName}
			catalog.languages[languageName] = language
		}

		language.Compilers = append(language.Compilers, compiler)
	}

	return catalog
}

// Compilers returns the compilers available for a language, nil when the
// language is unknown.
func (c *Catalog) Compilers(language string) []Compiler {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.languages[strings.ToLower(language)]

	if !ok {
		return nil
	}

	compilers := make([]Compiler, len(entry.Compilers))
	copy(compilers, entry.Compilers)

	return compilers
}

// Languages returns every language in the catalog, sorted by name.
func (c *Catalog) Languages() []Language {
	c.mu.RLock()
	defer c.mu.RUnlock()

	languages := make([]Language, 0, len(c.languages))

	for _, entry := range c.languages {
		compilers := make([]Compiler, len(entry.Compilers))
		copy(compilers, entry.Compilers)

		languages = append(languages, Language{Name: entry.Name, Compilers: compilers})
	}

	sort.Slice(languages, func(i, j int) bool {
		return languages[i].Name < languages[j].Name
	})

	return languages
}

// IsLanguage reports whether the catalog knows the given language.
func (c *Catalog) IsLanguage(name string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	_, ok := c.languages[strings.ToLower(name)]
	return ok
}

// IsCompiler reports whether any language offers a compiler with this name.
func (c *Catalog) IsCompiler(name string) bool {
	_, ok := c.findCompiler(name)
	return ok
}

// LanguageOf returns the language a compiler belongs to.
func (c *Catalog) LanguageOf(compiler string) (string, bool) {
	entry, ok := c.findCompiler(compiler)

	if !ok {
		return "", false
	}

	return entry.Language, true
}

// DefaultCompiler returns the first compiler the listing names for a
// language, which wandbox treats as its default.
func (c *Catalog) DefaultCompiler(language string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.languages[strings.ToLower(language)]

	if !ok || len(entry.Compilers) == 0 {
		return "", false
	}

	return entry.Compilers[0].Name, true
}

func (c *Catalog) findCompiler(name string) (Compiler, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, entry := range c.languages {
		for _, compiler := range entry.Compilers {
			if compiler.Name == name {
				return compiler, true
			}
		}
	}

	return Compiler{}, false
}
