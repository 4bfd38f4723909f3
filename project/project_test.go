package project

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/nalgeon/be"
)

func TestSaveLoad(t *testing.T) {
	dir := t.TempDir()
	m := Module{Package: "geometry", Sources: []string{"src/*.rs"}, LogLevel: "DEBUG"}
	be.Err(t, m.Save(dir), nil)

	got, ok, err := Load(dir)
	be.Err(t, err, nil)
	be.True(t, ok)
	be.Equal(t, got, m)
}

func TestLoadMissing(t *testing.T) {
	_, ok, err := Load(t.TempDir())
	be.Err(t, err, nil)
	be.True(t, !ok)
}

func TestLoadDefaultsSources(t *testing.T) {
	dir := t.TempDir()
	be.Err(t, ioutil.WriteFile(filepath.Join(dir, FileName), []byte("Package: geometry\n"), 0644), nil)

	got, ok, err := Load(dir)
	be.Err(t, err, nil)
	be.True(t, ok)
	be.Equal(t, got, Default("geometry"))
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	dir := t.TempDir()
	be.Err(t, ioutil.WriteFile(filepath.Join(dir, FileName), []byte("Package: geometry\nSource: x\n"), 0644), nil)

	_, _, err := Load(dir)
	be.Err(t, err, "error reading tawacheck.yaml")
}

func TestSourceFiles(t *testing.T) {
	dir := t.TempDir()
	be.Err(t, os.Mkdir(filepath.Join(dir, "lib"), 0755), nil)
	for _, name := range []string{"b.rs", "a.rs", "notes.txt", "lib/c.rs"} {
		be.Err(t, ioutil.WriteFile(filepath.Join(dir, name), nil, 0644), nil)
	}

	m := Module{Package: "p", Sources: []string{"lib/*.rs", "*.rs", "a.rs"}}
	files, err := m.SourceFiles(dir)
	be.Err(t, err, nil)
	be.Equal(t, files, []string{
		filepath.Join(dir, "lib", "c.rs"),
		filepath.Join(dir, "a.rs"),
		filepath.Join(dir, "b.rs"),
	})
}
