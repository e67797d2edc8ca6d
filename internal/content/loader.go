package content

import (
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed pack/*.yaml pack/schema.json
var embedded embed.FS

// LoadEmbedded builds a registry from the content pack compiled into the binary.
func LoadEmbedded() (*Registry, error) {
	sub, err := fs.Sub(embedded, "pack")
	if err != nil {
		return nil, fmt.Errorf("open embedded pack: %w", err)
	}
	return Load(sub)
}

// LoadDir builds a registry from the YAML files in dir.
func LoadDir(dir string) (*Registry, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("content dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("content dir %q is not a directory", dir)
	}
	return Load(os.DirFS(dir))
}

// Load reads every *.yaml file at the root of fsys in name order, validates
// each against the pack schema, merges them, and builds a registry.
func Load(fsys fs.FS) (*Registry, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("list content: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if ext := path.Ext(e.Name()); ext == ".yaml" || ext == ".yml" {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	if len(names) == 0 {
		return nil, fmt.Errorf("no content files found")
	}

	var pack Pack
	for _, name := range names {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		if err := validateDocument(data); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		var part Pack
		if err := yaml.Unmarshal(data, &part); err != nil {
			return nil, fmt.Errorf("decode %s: %w", name, err)
		}
		mergePack(&pack, part)
	}

	reg, err := NewRegistry(&pack)
	if err != nil {
		return nil, err
	}

	slog.Info("content loaded",
		"files", strings.Join(names, ","),
		"topics", len(pack.Topics),
		"scenarios", len(pack.Scenarios),
		"questions", len(pack.Quiz))
	return reg, nil
}

// mergePack appends list sections and takes singular sections from the first
// file that sets them.
func mergePack(dst *Pack, src Pack) {
	dst.Topics = append(dst.Topics, src.Topics...)
	dst.Animations = append(dst.Animations, src.Animations...)
	dst.Scenarios = append(dst.Scenarios, src.Scenarios...)
	dst.Matching = append(dst.Matching, src.Matching...)
	dst.Quiz = append(dst.Quiz, src.Quiz...)
	dst.Tour = append(dst.Tour, src.Tour...)
	dst.Simulator = append(dst.Simulator, src.Simulator...)

	if len(dst.Hierarchy.Slots) == 0 && len(dst.Hierarchy.Items) == 0 {
		dst.Hierarchy = src.Hierarchy
	}
	if dst.Messages.TourComplete == "" {
		dst.Messages.TourComplete = src.Messages.TourComplete
	}
}
