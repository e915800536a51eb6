package coltab

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

type person struct {
	Name string
	Age  int
	Role string
}

var testPersons = []person{
	{Name: "John", Age: 20, Role: "admin"},
	{Name: "Jane", Age: 21, Role: "user"},
	{Name: "Jim", Age: 22, Role: "admin"},
}

func TestColumnDef_ProduceColumn(t *testing.T) {
	def := NewColumnDef("age",
		func(p person) int { return p.Age },
		strconv.Itoa,
	)

	col := def.ProduceColumn(testPersons)
	require.NotNil(t, col)
	require.Equal(t, "age", col.Name())
	require.Equal(t, []string{"20", "21", "22"}, col.Values())
}

func TestColumnDef_ProduceColumn_emptyRows(t *testing.T) {
	def := NewFieldColumn("name", func(p person) string { return p.Name })

	require.Nil(t, def.ProduceColumn(nil))
	require.Nil(t, def.ProduceColumn([]person{}))
}

func TestNewFieldColumn(t *testing.T) {
	def := NewFieldColumn("name", func(p person) string { return p.Name })

	col := def.ProduceColumn(testPersons)
	require.NotNil(t, col)
	require.Equal(t, []string{"John", "Jane", "Jim"}, col.Values())
}

func TestColumnDef_evaluatesOncePerRow(t *testing.T) {
	var selectorCalls, transformCalls, predicateCalls int
	def := NewConditionalColumnDef("role",
		func(p person) string { selectorCalls++; return p.Role },
		func(p person) bool { predicateCalls++; return p.Age > 20 },
		func(role string) any { transformCalls++; return role },
		func(string) any { transformCalls++; return nil },
	)

	def.ProduceColumn(testPersons)

	if selectorCalls != len(testPersons) {
		t.Errorf("selector called %d times, want %d", selectorCalls, len(testPersons))
	}
	if predicateCalls != len(testPersons) {
		t.Errorf("branch predicate called %d times, want %d", predicateCalls, len(testPersons))
	}
	if transformCalls != len(testPersons) {
		t.Errorf("transforms called %d times, want %d", transformCalls, len(testPersons))
	}
}

func TestConditionalColumnDef_branchPerRow(t *testing.T) {
	// then-branch for persons over 20, else nil
	def := NewConditionalColumnDef("role",
		func(p person) string { return p.Role },
		func(p person) bool { return p.Age > 20 },
		func(role string) any { return role },
		func(string) any { return nil },
	)

	col := def.ProduceColumn(testPersons)
	require.NotNil(t, col)
	require.Equal(t, []any{nil, "user", "admin"}, col.Values())
}

func TestConditionalColumnDef_independentOfRowOrder(t *testing.T) {
	def := NewConditionalColumnDef("age",
		func(p person) int { return p.Age },
		func(p person) bool { return p.Role == "admin" },
		strconv.Itoa,
		func(int) string { return "" },
	)

	reversed := []person{testPersons[2], testPersons[1], testPersons[0]}
	col := def.ProduceColumn(reversed)
	require.NotNil(t, col)
	require.Equal(t, []string{"22", "", "20"}, col.Values())
}

func TestColumnDef_inclusionFirstRowOnly(t *testing.T) {
	var checkedRows []person
	def := NewFieldColumn("role", func(p person) string { return p.Role }).
		WithInclusion(func(p person) bool {
			checkedRows = append(checkedRows, p)
			return p.Role == "admin"
		})

	// First row is admin, so the column is produced
	// and covers the non-admin rows too.
	col := def.ProduceColumn(testPersons)
	require.NotNil(t, col)
	require.Equal(t, []string{"admin", "user", "admin"}, col.Values())
	require.Equal(t, []person{testPersons[0]}, checkedRows,
		"inclusion predicate must only examine the first row")

	// First row is not admin, so the column is absent
	// even though later rows are admins.
	userFirst := []person{testPersons[1], testPersons[0], testPersons[2]}
	require.Nil(t, def.ProduceColumn(userFirst))
}

func TestColumnDef_WithInclusion_immutable(t *testing.T) {
	def := NewFieldColumn("name", func(p person) string { return p.Name })
	gated := def.WithInclusion(func(person) bool { return false })

	require.Nil(t, gated.ProduceColumn(testPersons))
	require.NotNil(t, def.ProduceColumn(testPersons),
		"WithInclusion must not modify the original definition")

	ungated := gated.WithInclusion(nil)
	require.NotNil(t, ungated.ProduceColumn(testPersons))
	require.Nil(t, gated.ProduceColumn(testPersons))
}

func TestColumnDef_WithInclusionNegated(t *testing.T) {
	isAdmin := func(p person) bool { return p.Role == "admin" }
	def := NewFieldColumn("name", func(p person) string { return p.Name })

	negated := def.WithInclusionNegated(isAdmin)
	inverted := def.WithInclusion(func(p person) bool { return !isAdmin(p) })

	rowSets := [][]person{
		testPersons,                      // admin first
		{testPersons[1]},                 // user only
		{testPersons[1], testPersons[0]}, // user first
		nil,
	}
	for _, rows := range rowSets {
		negatedCol := negated.ProduceColumn(rows)
		invertedCol := inverted.ProduceColumn(rows)
		if (negatedCol == nil) != (invertedCol == nil) {
			t.Fatalf("negated and hand-inverted predicates disagree for rows %v", rows)
		}
		if negatedCol != nil {
			require.Equal(t, invertedCol.Values(), negatedCol.Values())
		}
	}
}

func TestColumnDef_Include(t *testing.T) {
	def := NewFieldColumn("name", func(p person) string { return p.Name })
	require.True(t, def.Include(testPersons[0]), "no predicate means always include")

	gated := def.WithInclusion(func(p person) bool { return p.Age > 20 })
	require.False(t, gated.Include(testPersons[0]))
	require.True(t, gated.Include(testPersons[1]))
}
