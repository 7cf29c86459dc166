package diag

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBagGrouping(t *testing.T) {
	items := []Diagnostic{
		{File: "b.ts", Line: 4, Import: "B"},
		{File: "a.ts", Line: 1, Import: ImportAll},
		{File: "b.ts", Line: 9, Import: "C"},
	}
	bag := NewBag(items)

	assert.Equal(t, 3, bag.Len())
	assert.Equal(t, []string{"a.ts", "b.ts"}, bag.Files())

	byFile := bag.ByFile()
	assert.Len(t, byFile["b.ts"], 2)
	assert.Equal(t, "B", byFile["b.ts"][0].Import, "input order kept within a file")
	assert.Equal(t, "C", byFile["b.ts"][1].Import)
}

func TestBagEmpty(t *testing.T) {
	bag := NewBag(nil)
	assert.Equal(t, 0, bag.Len())
	assert.Empty(t, bag.Files())
	assert.Empty(t, bag.ByFile())
}
