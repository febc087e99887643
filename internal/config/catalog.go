package config

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/BurntSushi/toml"

	"launchbox/internal/catalog"
)

// header is the [launchbox] table. Settings keys are read by Load.
type header struct {
	Category []string            `toml:"category"`
	Info     map[string][]string `toml:"info"`
}

// LoadCatalog reads the categories and commands from a .launchbox file.
func LoadCatalog(path string) (catalog.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return catalog.Catalog{}, fmt.Errorf("read %s: %w", path, err)
	}
	cat, err := ParseCatalog(data)
	if err != nil {
		return catalog.Catalog{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return cat, nil
}

// ParseCatalog decodes .launchbox TOML. Labels keep their case. A category
// listed in [launchbox] without a table of its own is kept empty.
func ParseCatalog(data []byte) (catalog.Catalog, error) {
	var raw map[string]toml.Primitive
	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		return catalog.Catalog{}, err
	}

	prim, ok := raw["launchbox"]
	if !ok {
		return catalog.Catalog{}, errors.New("missing [launchbox] table")
	}
	var hdr header
	if err := md.PrimitiveDecode(prim, &hdr); err != nil {
		return catalog.Catalog{}, fmt.Errorf("[launchbox]: %w", err)
	}

	sources := make([]catalog.Source, 0, len(hdr.Category))
	for _, name := range hdr.Category {
		src := catalog.Source{Name: name}
		if p, ok := raw[name]; ok && name != "launchbox" {
			if err := md.PrimitiveDecode(p, &src.Commands); err != nil {
				return catalog.Catalog{}, fmt.Errorf("[%s]: %w", name, err)
			}
		} else {
			log.Printf("category %q has no [%s] table", name, name)
		}
		sources = append(sources, src)
	}

	return catalog.Build(sources, hdr.Info)
}
