package coltab

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func testPersonColumns() ColumnList[person] {
	list := NewColumnList[person]()
	list = AddDef(list, NewFieldColumn("name", func(p person) string { return p.Name }))
	list = AddDef(list, NewColumnDef("age", func(p person) int { return p.Age }, strconv.Itoa))
	list = AddDef(list, NewFieldColumn("role", func(p person) string { return p.Role }))
	return list
}

func TestAssemble(t *testing.T) {
	table := Assemble(testPersons, testPersonColumns())

	require.Equal(t, []string{"name", "age", "role"}, table.Columns())
	require.Equal(t, 3, table.NumCols())
	require.Equal(t, 3, table.NumRows())
	require.Equal(t, "20", table.Cell(0, 1))
	require.Equal(t, "John", table.Cell(0, 0))
	require.Equal(t, "admin", table.Cell(2, 2))
}

func TestAssemble_emptyRows(t *testing.T) {
	table := Assemble(nil, testPersonColumns())

	require.Equal(t, 0, table.NumCols(), "empty input must yield zero columns")
	require.Equal(t, 0, table.NumRows())
}

func TestAssemble_orderPreserved(t *testing.T) {
	list := NewColumnList[person](
		nil, // statically skipped
	)
	list = AddDef(list, NewFieldColumn("role", func(p person) string { return p.Role }))
	list = list.Add(nil)
	list = AddDef(list, NewFieldColumn("age", func(p person) int { return p.Age }))
	list = AddDef(list, NewFieldColumn("name", func(p person) string { return p.Name }).
		WithInclusion(func(person) bool { return false }))
	list = AddDef(list, NewFieldColumn("name", func(p person) string { return p.Name }))

	table := Assemble(testPersons, list)
	require.Equal(t, []string{"role", "age", "name"}, table.Columns(),
		"surviving columns must keep their relative list order")
}

func TestAssemble_rowAlignment(t *testing.T) {
	table := Assemble(testPersons, testPersonColumns())

	for i, p := range testPersons {
		require.Equal(t, p.Name, table.Cell(i, 0))
		require.Equal(t, strconv.Itoa(p.Age), table.Cell(i, 1))
		require.Equal(t, p.Role, table.Cell(i, 2))
	}
}

func TestAssemble_conditionalColumn(t *testing.T) {
	list := AddDef(nil, NewConditionalColumnDef("role",
		func(p person) string { return p.Role },
		func(p person) bool { return p.Age > 20 },
		func(role string) any { return role },
		func(string) any { return nil },
	))

	table := Assemble(testPersons, list)
	require.Equal(t, 1, table.NumCols())
	require.Nil(t, table.Cell(0, 0))
	require.Equal(t, "user", table.Cell(1, 0))
	require.Equal(t, "admin", table.Cell(2, 0))
}

func TestAssemble_groupedSubsets(t *testing.T) {
	// The same declarative list applied to pre-grouped subsets
	// yields different column sets per subset.
	list := testPersonColumns()
	list = AddDef(list, NewFieldColumn("admin flag", func(p person) string { return p.Role }).
		WithInclusion(func(p person) bool { return p.Role == "admin" }))

	var admins, users []person
	for _, p := range testPersons {
		if p.Role == "admin" {
			admins = append(admins, p)
		} else {
			users = append(users, p)
		}
	}

	adminTable := Assemble(admins, list)
	require.Equal(t, []string{"name", "age", "role", "admin flag"}, adminTable.Columns())
	require.Equal(t, 2, adminTable.NumRows())

	userTable := Assemble(users, list)
	require.Equal(t, []string{"name", "age", "role"}, userTable.Columns())
	require.Equal(t, 1, userTable.NumRows())
}

func TestAssemble_zeroSurvivingColumns(t *testing.T) {
	list := AddDef(nil, NewFieldColumn("name", func(p person) string { return p.Name }).
		WithInclusion(func(person) bool { return false }))

	table := Assemble(testPersons, list)
	require.NotNil(t, table)
	require.Equal(t, 0, table.NumCols())
	require.Equal(t, 0, table.NumRows())
}

func TestAssembleWith(t *testing.T) {
	var buildCalls int
	build := func() ColumnList[person] {
		buildCalls++
		return testPersonColumns()
	}

	direct := Assemble(testPersons, testPersonColumns())
	built := AssembleWith(testPersons, build)

	require.Equal(t, 1, buildCalls)
	require.Equal(t, direct.Columns(), built.Columns())
	require.Equal(t, direct.NumRows(), built.NumRows())
	for row := 0; row < direct.NumRows(); row++ {
		require.Equal(t, direct.Row(row), built.Row(row))
	}
}

func TestAssemble_doesNotMutateRows(t *testing.T) {
	rows := make([]person, len(testPersons))
	copy(rows, testPersons)

	Assemble(rows, testPersonColumns())
	require.Equal(t, testPersons, rows)
}
