package catalog

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog"
)

//go:embed data/*.json
var embedded embed.FS

// ParseJSON decodes and validates a single catalog document.
func ParseJSON(raw []byte) (*Catalog, error) {
	if err := validateSchema(raw); err != nil {
		return nil, err
	}
	var c Catalog
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if err := Validate(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

// LoadEmbedded returns the sample catalogs bundled with the binary.
func LoadEmbedded() (*Library, error) {
	entries, err := fs.ReadDir(embedded, "data")
	if err != nil {
		return nil, fmt.Errorf("read embedded catalogs: %w", err)
	}

	var catalogs []*Catalog
	for _, e := range entries {
		raw, err := fs.ReadFile(embedded, "data/"+e.Name())
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", e.Name(), err)
		}
		c, err := ParseJSON(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", e.Name(), err)
		}
		catalogs = append(catalogs, c)
	}
	return NewLibrary(catalogs...)
}

// LoadDir loads every *.json and *.xlsx catalog in dir. Files that fail to
// parse are skipped and logged; an error is returned only when dir cannot be
// read or no catalog could be loaded.
func LoadDir(dir string, log zerolog.Logger) (*Library, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read catalog dir: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	var catalogs []*Catalog
	for _, name := range names {
		path := filepath.Join(dir, name)

		c, ok, err := loadFile(path)
		if !ok {
			continue
		}
		if err != nil {
			log.Warn().Err(err).Str("file", name).Msg("skipping catalog")
			continue
		}

		log.Debug().
			Str("file", name).
			Str("course", c.Info.ID).
			Int("questions", len(c.Questions)).
			Int("descriptive", len(c.Descriptive)).
			Msg("catalog loaded")
		catalogs = append(catalogs, c)
	}

	if len(catalogs) == 0 {
		return nil, fmt.Errorf("no catalogs found in %s", dir)
	}
	return NewLibrary(catalogs...)
}

// loadFile loads one catalog file. ok is false for unsupported extensions.
func loadFile(path string) (c *Catalog, ok bool, err error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, true, fmt.Errorf("read catalog: %w", err)
		}
		c, err = ParseJSON(raw)
		return c, true, err
	case ".xlsx":
		c, err = LoadWorkbook(path)
		return c, true, err
	}
	return nil, false, nil
}
