package sorter

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/IvanShishkin/burrow/pkg/models"
	"github.com/stretchr/testify/assert"
)

var base = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func entry(rel string, kind models.Kind, size int64, age time.Duration) models.Entry {
	path := filepath.Join("/root", rel)
	return models.Entry{
		Name:    filepath.Base(rel),
		Path:    path,
		RelPath: rel,
		Kind:    kind,
		Size:    size,
		ModTime: base.Add(-age),
		Depth:   strings.Count(rel, string(filepath.Separator)) + 1,
	}
}

func relPaths(entries []models.Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.RelPath)
	}
	return out
}

// flat is the non-recursive listing a.txt(100) b.log(50) sub/
func flat() []models.Entry {
	return []models.Entry{
		entry("a.txt", models.KindFile, 100, time.Minute),
		entry("b.log", models.KindFile, 50, time.Hour),
		entry("sub", models.KindDir, 4096, 0),
	}
}

// nested is a recursive pre-order listing with two levels
func nested() []models.Entry {
	return []models.Entry{
		entry("zeta", models.KindDir, 4096, 0),
		entry(filepath.Join("zeta", "y.txt"), models.KindFile, 30, 0),
		entry(filepath.Join("zeta", "x.txt"), models.KindFile, 20, 0),
		entry("m.txt", models.KindFile, 500, 0),
		entry("alpha", models.KindDir, 4096, 0),
		entry(filepath.Join("alpha", "inner"), models.KindDir, 4096, 0),
		entry(filepath.Join("alpha", "inner", "q.bin"), models.KindFile, 9, 0),
		entry(filepath.Join("alpha", "b.txt"), models.KindFile, 2, 0),
		entry("c.txt", models.KindFile, 1, 0),
	}
}

func TestSort_NoKeyPreservesOrder(t *testing.T) {
	in := nested()
	assert.Equal(t, in, Sort(in, Options{}))
}

func TestSort_SizeKeepsDirectorySlots(t *testing.T) {
	out := Sort(flat(), Options{Key: models.SortSize})
	assert.Equal(t, []string{"b.log", "a.txt", "sub"}, relPaths(out))
}

func TestSort_Name(t *testing.T) {
	in := []models.Entry{
		entry("b", models.KindFile, 1, 0),
		entry("B", models.KindFile, 1, 0),
		entry("a", models.KindFile, 1, 0),
	}
	// Case sensitive: uppercase sorts before lowercase
	out := Sort(in, Options{Key: models.SortName})
	assert.Equal(t, []string{"B", "a", "b"}, relPaths(out))
}

func TestSort_Modified(t *testing.T) {
	out := Sort(flat(), Options{Key: models.SortModified})
	assert.Equal(t, []string{"b.log", "a.txt", "sub"}, relPaths(out))
}

func TestSort_TiesBrokenByName(t *testing.T) {
	tests := []struct {
		name string
		key  models.SortKey
	}{
		{"Size", models.SortSize},
		{"Modified", models.SortModified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := []models.Entry{
				entry("c", models.KindFile, 10, 0),
				entry("a", models.KindFile, 10, 0),
				entry("b", models.KindFile, 10, 0),
			}
			first := Sort(in, Options{Key: tt.key})
			assert.Equal(t, []string{"a", "b", "c"}, relPaths(first))

			reversed := []models.Entry{in[2], in[1], in[0]}
			assert.Equal(t, relPaths(first), relPaths(Sort(reversed, Options{Key: tt.key})))
		})
	}
}

func TestSort_HierarchyPreserved(t *testing.T) {
	out := Sort(nested(), Options{Key: models.SortSize})

	expected := []string{
		"zeta",
		filepath.Join("zeta", "x.txt"),
		filepath.Join("zeta", "y.txt"),
		"c.txt",
		"alpha",
		filepath.Join("alpha", "inner"),
		filepath.Join("alpha", "inner", "q.bin"),
		filepath.Join("alpha", "b.txt"),
		"m.txt",
	}
	assert.Equal(t, expected, relPaths(out))
}

func TestSort_SortDirs(t *testing.T) {
	out := Sort(nested(), Options{Key: models.SortName, SortDirs: true})

	expected := []string{
		"alpha",
		filepath.Join("alpha", "b.txt"),
		filepath.Join("alpha", "inner"),
		filepath.Join("alpha", "inner", "q.bin"),
		"c.txt",
		"m.txt",
		"zeta",
		filepath.Join("zeta", "x.txt"),
		filepath.Join("zeta", "y.txt"),
	}
	assert.Equal(t, expected, relPaths(out))
}

func TestSort_DoesNotMutateInput(t *testing.T) {
	in := nested()
	orig := append([]models.Entry(nil), in...)

	Sort(in, Options{Key: models.SortName, SortDirs: true})
	assert.Equal(t, orig, in)
}

func TestSort_Deterministic(t *testing.T) {
	first := Sort(nested(), Options{Key: models.SortModified})
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Sort(nested(), Options{Key: models.SortModified}))
	}
}
