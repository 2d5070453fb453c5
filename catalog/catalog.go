package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kbukum/faultkit/code"
)

// Catalog is the immutable (code, locale) -> template store. Build one with
// a Builder before serving; reads are lock-free.
type Catalog struct {
	defaultLocale string
	templates     map[string]map[code.Code]string
}

// Missing identifies a (code, locale) pair with no resolvable template.
type Missing struct {
	Code   code.Code
	Locale string
}

func (m Missing) String() string {
	return fmt.Sprintf("%s/%s", m.Code, m.Locale)
}

// Builder assembles a Catalog during startup.
type Builder struct {
	defaultLocale string
	templates     map[string]map[code.Code]string
}

// NewBuilder creates a builder with the given default (fallback) locale.
func NewBuilder(defaultLocale string) *Builder {
	return &Builder{
		defaultLocale: normalizeLocale(defaultLocale),
		templates:     make(map[string]map[code.Code]string),
	}
}

// Add registers a template for (c, locale) and returns the builder.
func (b *Builder) Add(locale string, c code.Code, template string) *Builder {
	loc := normalizeLocale(locale)
	if b.templates[loc] == nil {
		b.templates[loc] = make(map[code.Code]string)
	}
	b.templates[loc][c] = template
	return b
}

// AddAll registers all templates of one locale.
func (b *Builder) AddAll(locale string, templates map[code.Code]string) *Builder {
	for c, tpl := range templates {
		b.Add(locale, c, tpl)
	}
	return b
}

// Build seals the builder into an immutable Catalog. It fails when the
// default locale is empty or carries no templates at all.
func (b *Builder) Build() (*Catalog, error) {
	if b.defaultLocale == "" {
		return nil, fmt.Errorf("catalog: default locale is required")
	}
	if len(b.templates[b.defaultLocale]) == 0 {
		return nil, fmt.Errorf("catalog: no templates for default locale %q", b.defaultLocale)
	}
	templates := make(map[string]map[code.Code]string, len(b.templates))
	for loc, m := range b.templates {
		inner := make(map[code.Code]string, len(m))
		for c, tpl := range m {
			inner[c] = tpl
		}
		templates[loc] = inner
	}
	return &Catalog{defaultLocale: b.defaultLocale, templates: templates}, nil
}

// DefaultLocale returns the fallback locale.
func (c *Catalog) DefaultLocale() string { return c.defaultLocale }

// Locales returns the locales with at least one template, sorted.
func (c *Catalog) Locales() []string {
	out := make([]string, 0, len(c.templates))
	for loc := range c.templates {
		out = append(out, loc)
	}
	sort.Strings(out)
	return out
}

// Resolve returns the template for (cd, locale). Resolution order: exact
// locale, base language, default locale. The boolean is false when no
// template exists anywhere on that path — startup validation guarantees
// this never happens for registered codes at runtime.
func (c *Catalog) Resolve(cd code.Code, locale string) (string, bool) {
	loc := normalizeLocale(locale)
	for _, candidate := range c.fallbackChain(loc) {
		if tpl, ok := c.templates[candidate][cd]; ok {
			return tpl, true
		}
	}
	return "", false
}

// Validate checks that every code in reg resolves in every given locale
// (the default locale is always checked). The returned slice is empty when
// the catalog is complete; anything else is a fatal startup condition.
func (c *Catalog) Validate(reg *code.Registry, locales ...string) []Missing {
	checked := []string{c.defaultLocale}
	seen := map[string]bool{c.defaultLocale: true}
	for _, loc := range locales {
		if loc = normalizeLocale(loc); !seen[loc] {
			seen[loc] = true
			checked = append(checked, loc)
		}
	}

	var missing []Missing
	for _, cd := range reg.All() {
		for _, loc := range checked {
			if _, ok := c.Resolve(cd, loc); !ok {
				missing = append(missing, Missing{Code: cd, Locale: loc})
			}
		}
	}
	return missing
}

// MustValidate panics when Validate reports missing templates. Call it
// before the process starts accepting traffic.
func (c *Catalog) MustValidate(reg *code.Registry, locales ...string) {
	if missing := c.Validate(reg, locales...); len(missing) > 0 {
		panic(fmt.Sprintf("catalog: missing templates: %v", missing))
	}
}

// fallbackChain lists the locales to consult for loc, most specific first.
func (c *Catalog) fallbackChain(loc string) []string {
	chain := make([]string, 0, 3)
	if loc != "" {
		chain = append(chain, loc)
		if base, _, found := strings.Cut(loc, "-"); found && base != loc {
			chain = append(chain, base)
		}
	}
	return append(chain, c.defaultLocale)
}

// normalizeLocale canonicalizes BCP 47-ish tags: lower-case language,
// upper-case region, "_" treated as "-".
func normalizeLocale(locale string) string {
	locale = strings.TrimSpace(strings.ReplaceAll(locale, "_", "-"))
	if locale == "" {
		return ""
	}
	lang, region, found := strings.Cut(locale, "-")
	if !found {
		return strings.ToLower(lang)
	}
	return strings.ToLower(lang) + "-" + strings.ToUpper(region)
}
