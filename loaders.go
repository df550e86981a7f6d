package datakit

import (
	"github.com/cwlabs/datakit/data"
)

// LoadIris loads the built-in iris dataset: four flower measurements as
// features and the species column as target, with the description attached.
func LoadIris() (*Dataset, error) {
	return LoadNamed("iris")
}

// LoadAdvertising loads the built-in advertising dataset: tv, radio, and
// newspaper budgets as features and sales as target.
func LoadAdvertising() (*Dataset, error) {
	return LoadNamed("advertising")
}

// LoadWine loads the built-in wine quality dataset (semicolon-delimited at
// rest): physicochemical measurements as features and quality as target.
func LoadWine() (*Dataset, error) {
	return LoadNamed("wine")
}

// LoadNamed loads a dataset from the built-in catalog by short name, split
// into features and target per its catalog entry, description included.
func LoadNamed(name string) (*Dataset, error) {
	entry, err := data.Lookup(name)
	if err != nil {
		return nil, err
	}
	return LoadCSVData(entry.File, Options{
		Target:         ByName(entry.Target),
		SeparateTarget: true,
		DescrFileName:  entry.Descr,
	})
}
