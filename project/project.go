// Package project reads and writes the module file that names a package and
// lists its sources.
package project

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"sort"

	"github.com/ztrue/tracerr"
	"gopkg.in/yaml.v2"
)

const FileName = "tawacheck.yaml"

var DefaultSources = []string{"*.rs"}

type Module struct {
	Package  string   `yaml:"Package"`
	Sources  []string `yaml:"Sources,omitempty"`
	LogLevel string   `yaml:"LogLevel,omitempty"`
}

func Default(name string) Module {
	return Module{Package: name, Sources: DefaultSources}
}

// Load reads the module file in dir. The second result is false when there
// is no module file.
func Load(dir string) (Module, bool, error) {
	data, err := ioutil.ReadFile(filepath.Join(dir, FileName))
	if os.IsNotExist(err) {
		return Module{}, false, nil
	}
	if err != nil {
		return Module{}, false, tracerr.Wrap(err)
	}

	var m Module
	if err := yaml.UnmarshalStrict(data, &m); err != nil {
		return Module{}, false, tracerr.Errorf("error reading %s: %v", FileName, err)
	}
	if len(m.Sources) == 0 {
		m.Sources = DefaultSources
	}
	return m, true, nil
}

func (m Module) Save(dir string) error {
	out, err := yaml.Marshal(m)
	if err != nil {
		return tracerr.Wrap(err)
	}
	if err := ioutil.WriteFile(filepath.Join(dir, FileName), out, 0644); err != nil {
		return tracerr.Wrap(err)
	}
	return nil
}

// SourceFiles expands the source globs relative to dir. Files are sorted
// within each glob and listed once, in glob order.
func (m Module) SourceFiles(dir string) ([]string, error) {
	patterns := m.Sources
	if len(patterns) == 0 {
		patterns = DefaultSources
	}

	seen := map[string]bool{}
	var out []string
	for _, pattern := range patterns {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, tracerr.Wrap(err)
		}
		sort.Strings(matches)
		for _, match := range matches {
			if !seen[match] {
				seen[match] = true
				out = append(out, match)
			}
		}
	}
	return out, nil
}
