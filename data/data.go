// Package data ships the built-in datasets. The CSV files, their companion
// description texts, and the catalog manifest are embedded in the binary and
// registered as resource modules at init, so the loading API can address them
// by name exactly like user-registered modules:
//
//	h, err := resource.Resolve(data.ModuleName, "iris.csv")
package data

import (
	"embed"
	"fmt"
	"io/fs"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/cwlabs/datakit/resource"
	"github.com/cwlabs/datakit/types"
)

// Module names under which the built-in containers register themselves in
// resource.DefaultRegistry.
const (
	// ModuleName holds the CSV dataset files.
	ModuleName = "datakit/data"
	// DescrModuleName holds the plain-text dataset descriptions.
	DescrModuleName = "datakit/descr"
)

//go:embed datasets/*.csv
var datasetFiles embed.FS

//go:embed descr/*.rst
var descrFiles embed.FS

//go:embed catalog.yaml
var catalogYAML []byte

func init() {
	resource.Register(ModuleName, resource.NewFS(mustSub(datasetFiles, "datasets"), ModuleName))
	resource.Register(DescrModuleName, resource.NewFS(mustSub(descrFiles, "descr"), DescrModuleName))
}

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(fmt.Sprintf("data: embedded directory %q missing: %v", dir, err))
	}
	return sub
}

// CatalogEntry describes one built-in dataset.
type CatalogEntry struct {
	// Name is the short dataset name, e.g. "iris".
	Name string `yaml:"name"`
	// File is the CSV file name inside ModuleName.
	File string `yaml:"file"`
	// Descr is the description file name inside DescrModuleName.
	Descr string `yaml:"descr"`
	// Target is the default label column of the dataset.
	Target string `yaml:"target"`
}

type catalogFile struct {
	Datasets []CatalogEntry `yaml:"datasets"`
}

var parseCatalog = sync.OnceValues(func() ([]CatalogEntry, error) {
	var cf catalogFile
	if err := yaml.Unmarshal(catalogYAML, &cf); err != nil {
		return nil, fmt.Errorf("data: parsing embedded catalog: %w", err)
	}
	return cf.Datasets, nil
})

// Catalog returns the manifest of built-in datasets.
func Catalog() ([]CatalogEntry, error) {
	return parseCatalog()
}

// Lookup returns the catalog entry for the named dataset.
func Lookup(name string) (CatalogEntry, error) {
	entries, err := Catalog()
	if err != nil {
		return CatalogEntry{}, err
	}
	for _, e := range entries {
		if e.Name == name {
			return e, nil
		}
	}
	return CatalogEntry{}, types.Errorf(types.ErrResourceNotFound, "dataset %q is not in the built-in catalog", name)
}
