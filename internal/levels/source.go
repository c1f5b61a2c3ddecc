// Package levels supplies level descriptors to the simulation: authored
// levels embedded as YAML, optional overrides from a directory, and the
// seeded generator for every other level number.
package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vovakirdan/quantum-jumper/internal/levels/formats"
	"github.com/vovakirdan/quantum-jumper/internal/sim"
)

//go:embed data/*.yaml
var embedded embed.FS

// Source implements sim.LevelSource.
type Source struct {
	authored map[int]sim.Level
	files    map[int]string
	gen      GenParams
}

var _ sim.LevelSource = (*Source)(nil)

// NewSource creates a source holding the embedded authored levels.
func NewSource(gen GenParams) (*Source, error) {
	s := &Source{
		authored: make(map[int]sim.Level),
		files:    make(map[int]string),
		gen:      gen,
	}
	err := fs.WalkDir(embedded, "data", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || !isSupportedExtension(filepath.Ext(path)) {
			return err
		}
		data, err := embedded.ReadFile(path)
		if err != nil {
			return err
		}
		return s.add(path, data)
	})
	if err != nil {
		return nil, fmt.Errorf("levels: loading embedded levels: %w", err)
	}
	return s, nil
}

// LoadDir reads every level file under dir and overrides authored levels
// with the same number. It returns how many files were loaded.
func (s *Source) LoadDir(dir string) (int, error) {
	loaded := 0
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(filepath.Ext(path)) {
			return nil
		}
		if err := s.LoadFile(path); err != nil {
			return err
		}
		loaded++
		return nil
	})
	if err != nil {
		return loaded, fmt.Errorf("levels: walking directory %s: %w", dir, err)
	}
	return loaded, nil
}

// LoadFile reads a single level file.
func (s *Source) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading file %s: %w", path, err)
	}
	return s.add(path, data)
}

func (s *Source) add(path string, data []byte) error {
	lvl, err := formats.ParseYAML(data)
	if err != nil {
		return fmt.Errorf("parsing file %s: %w", path, err)
	}
	s.authored[lvl.Number] = lvl
	s.files[lvl.Number] = path
	return nil
}

// Level returns a fresh copy of the level. Numbers without authored data
// are generated.
func (s *Source) Level(number int) sim.Level {
	if lvl, ok := s.authored[number]; ok {
		return lvl.Clone()
	}
	return Generate(number, s.gen)
}

// Authored returns the numbers that have authored data, ascending.
func (s *Source) Authored() []int {
	nums := make([]int, 0, len(s.authored))
	for n := range s.authored {
		nums = append(nums, n)
	}
	sort.Ints(nums)
	return nums
}

// Summary describes a level for listings.
type Summary struct {
	Number     int
	Name       string
	Platforms  int
	Shards     int
	Hazards    int
	Dimensions []int // dimensions that have platforms
	Generated  bool
	File       string
}

// Summaries describes levels first..last inclusive.
func (s *Source) Summaries(first, last int) []Summary {
	var out []Summary
	for n := first; n <= last; n++ {
		lvl := s.Level(n)
		seen := map[int]bool{}
		var dims []int
		for _, p := range lvl.Platforms {
			if p.Dimension == nil || seen[*p.Dimension] {
				continue
			}
			seen[*p.Dimension] = true
			dims = append(dims, *p.Dimension)
		}
		sort.Ints(dims)
		out = append(out, Summary{
			Number:     n,
			Name:       lvl.Name,
			Platforms:  len(lvl.Platforms),
			Shards:     len(lvl.Collectibles),
			Hazards:    len(lvl.Hazards),
			Dimensions: dims,
			Generated:  lvl.Generated,
			File:       s.files[n],
		})
	}
	return out
}

func isSupportedExtension(ext string) bool {
	ext = strings.ToLower(ext)
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}
