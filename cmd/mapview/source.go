package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/milk9111/graveyardshift/levels"
)

// levelSource reads either the embedded levels or a directory of YAML files.
type levelSource struct {
	dir string
}

func newLevelSource(dir string) levelSource {
	return levelSource{dir: dir}
}

func (s levelSource) names() ([]string, error) {
	if s.dir == "" {
		return levels.Names(), nil
	}
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.dir, err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if name, ok := strings.CutSuffix(e.Name(), ".yaml"); ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

func (s levelSource) load(name string) (*levels.Level, error) {
	if s.dir == "" {
		return levels.Load(name)
	}
	data, err := os.ReadFile(filepath.Join(s.dir, name+".yaml"))
	if err != nil {
		return nil, err
	}
	lvl, err := levels.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if lvl.Name == "" {
		lvl.Name = name
	}
	return lvl, nil
}
