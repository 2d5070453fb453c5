package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/kbukum/faultkit/catalog"
	"github.com/kbukum/faultkit/code"
)

// LoadCatalog builds a message catalog from the per-locale YAML files in
// dir. Files must be named messages.<locale>.yaml (or .yml) and contain a
// flat code -> template mapping. The returned catalog is sealed; callers
// validate it against their code registry before serving.
func LoadCatalog(dir, defaultLocale string) (*catalog.Catalog, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("config: reading catalog dir %s: %w", dir, err)
	}

	b := catalog.NewBuilder(defaultLocale)
	loaded := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		locale, ok := localeFromFilename(entry.Name())
		if !ok {
			continue
		}
		templates, err := readTemplates(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		b.AddAll(locale, templates)
		loaded++
	}
	if loaded == 0 {
		return nil, fmt.Errorf("config: no messages.<locale>.yaml files in %s", dir)
	}
	return b.Build()
}

// localeFromFilename extracts the locale from messages.<locale>.yaml.
func localeFromFilename(name string) (string, bool) {
	ext := filepath.Ext(name)
	if ext != ".yaml" && ext != ".yml" {
		return "", false
	}
	base := strings.TrimSuffix(name, ext)
	locale, ok := strings.CutPrefix(base, "messages.")
	if !ok || locale == "" {
		return "", false
	}
	return locale, true
}

// readTemplates reads one locale file. Viper lower-cases keys, so codes are
// restored to their canonical upper-case form.
func readTemplates(path string) (map[code.Code]string, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: reading catalog file %s: %w", path, err)
	}

	templates := make(map[code.Code]string)
	for _, key := range v.AllKeys() {
		templates[code.Code(strings.ToUpper(key))] = v.GetString(key)
	}
	return templates, nil
}
