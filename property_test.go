package datakit

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cwlabs/datakit/resource"
)

// genCSV draws a random rectangular comma-separated dataset: unique
// alphabetic header names, alphabetic cell values, at least two columns so
// the sniffer always has a delimiter to find.
func genCSV(rt *rapid.T) (content string, header []string, rows [][]string) {
	word := rapid.StringMatching(`[a-z]{1,8}`)

	nCols := rapid.IntRange(2, 5).Draw(rt, "nCols")
	seen := map[string]bool{}
	for i := 0; i < nCols; i++ {
		name := word.Draw(rt, fmt.Sprintf("col_%d", i))
		for seen[name] {
			name += "x"
		}
		seen[name] = true
		header = append(header, name)
	}

	nRows := rapid.IntRange(0, 20).Draw(rt, "nRows")
	for r := 0; r < nRows; r++ {
		row := make([]string, nCols)
		for c := 0; c < nCols; c++ {
			row[c] = word.Draw(rt, fmt.Sprintf("cell_%d_%d", r, c))
		}
		rows = append(rows, row)
	}

	var b strings.Builder
	b.WriteString(strings.Join(header, ","))
	b.WriteByte('\n')
	for _, row := range rows {
		b.WriteString(strings.Join(row, ","))
		b.WriteByte('\n')
	}
	return b.String(), header, rows
}

func datasetContainer(t *testing.T, content string) resource.Container {
	t.Helper()
	dir, err := os.MkdirTemp(t.TempDir(), "prop")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "gen.csv"), []byte(content), 0o644))
	return resource.NewDir(dir)
}

// Loading the same arguments twice yields structurally equal outputs.
func TestProperty_LoadCSVData_Idempotent(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		content, _, _ := genCSV(rt)
		c := datasetContainer(t, content)

		first, err := LoadCSVData("gen.csv", Options{DataModule: c})
		require.NoError(t, err)
		second, err := LoadCSVData("gen.csv", Options{DataModule: c})
		require.NoError(t, err)

		assert.True(t, first.Frame.Equal(second.Frame),
			"two loads of identical arguments must be structurally equal")
	})
}

// Splitting any column out of a table preserves all data: the feature
// columns are the original columns minus the target, in order, and the
// target series equals the original column element-for-element.
func TestProperty_SeparateTarget_PreservesData(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		content, header, _ := genCSV(rt)
		c := datasetContainer(t, content)

		targetIdx := rapid.IntRange(0, len(header)-1).Draw(rt, "targetIdx")

		whole, err := LoadCSVData("gen.csv", Options{DataModule: c})
		require.NoError(t, err)

		split, err := LoadCSVData("gen.csv", Options{
			DataModule:     c,
			Target:         ByIndex(targetIdx),
			SeparateTarget: true,
		})
		require.NoError(t, err)

		wantFeatures := make([]string, 0, len(header)-1)
		for i, name := range whole.Frame.Columns() {
			if i != targetIdx {
				wantFeatures = append(wantFeatures, name)
			}
		}
		assert.Equal(t, wantFeatures, split.Frame.Columns())

		original, ok := whole.Frame.ColumnAt(targetIdx)
		require.True(t, ok)
		assert.True(t, original.Equal(split.Target),
			"target series must equal the original column")

		assert.Equal(t, whole.Frame.NumRows(), split.Frame.NumRows())
	})
}

// Index selection and name selection of the same column are interchangeable.
func TestProperty_TargetByIndexMatchesByName(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		content, header, _ := genCSV(rt)
		c := datasetContainer(t, content)

		idx := rapid.IntRange(0, len(header)-1).Draw(rt, "idx")

		whole, err := LoadCSVData("gen.csv", Options{DataModule: c})
		require.NoError(t, err)
		name := whole.Frame.Columns()[idx]

		byIndex, err := LoadCSVData("gen.csv", Options{
			DataModule: c, Target: ByIndex(idx), SeparateTarget: true,
		})
		require.NoError(t, err)
		byName, err := LoadCSVData("gen.csv", Options{
			DataModule: c, Target: ByName(name), SeparateTarget: true,
		})
		require.NoError(t, err)

		assert.True(t, byIndex.Frame.Equal(byName.Frame))
		assert.True(t, byIndex.Target.Equal(byName.Target))
	})
}
