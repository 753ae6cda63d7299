package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dbbuilder/internal/models"
	"dbbuilder/internal/sqlgen"
)

// fakeExecutor records executed statements in place of a live engine.
type fakeExecutor struct {
	execs   []string
	selects []string
	execErr error
	rows    []map[string]any
}

func (f *fakeExecutor) Exec(_ context.Context, sql string) error {
	f.execs = append(f.execs, sql)
	return f.execErr
}

func (f *fakeExecutor) Select(_ context.Context, sql string) ([]map[string]any, error) {
	f.selects = append(f.selects, sql)
	return f.rows, f.execErr
}

type fakeInspector struct {
	tables  []string
	columns []models.ColumnInfo
	pks     []string
	rows    []map[string]any
	exists  bool
}

func (f *fakeInspector) ListTables(context.Context) ([]string, error) { return f.tables, nil }
func (f *fakeInspector) TableExists(context.Context, string) (bool, error) {
	return f.exists, nil
}
func (f *fakeInspector) ListColumns(context.Context, string) ([]models.ColumnInfo, error) {
	return f.columns, nil
}
func (f *fakeInspector) PrimaryKeyColumns(context.Context, string) ([]string, error) {
	return f.pks, nil
}
func (f *fakeInspector) TableRows(context.Context, string, int) ([]map[string]any, error) {
	return f.rows, nil
}

func TestTableServiceCreate(t *testing.T) {
	exec := &fakeExecutor{}
	svc := NewTableService(&fakeInspector{}, exec)

	err := svc.Create(context.Background(), &models.CreateTableRequest{
		TableName: "users",
		Columns:   []models.ColumnDef{{Name: "id", Type: "INT", IsPrimary: true}},
	})
	require.NoError(t, err)
	require.Len(t, exec.execs, 1)
	assert.Equal(t, "CREATE TABLE users (id SERIAL PRIMARY KEY);", exec.execs[0])
}

func TestTableServiceCreateInvalidName(t *testing.T) {
	exec := &fakeExecutor{}
	svc := NewTableService(&fakeInspector{}, exec)

	err := svc.Create(context.Background(), &models.CreateTableRequest{
		TableName: "users; DROP TABLE users",
	})
	require.Error(t, err)
	assert.Empty(t, exec.execs, "engine must not see invalid identifiers")
}

func TestTableServiceDescribe(t *testing.T) {
	inspector := &fakeInspector{
		exists: true,
		columns: []models.ColumnInfo{
			{Name: "id", Type: "integer"},
			{Name: "name", Type: "text"},
		},
		pks:  []string{"id"},
		rows: []map[string]any{{"id": int32(1), "name": "a"}},
	}
	svc := NewTableService(inspector, &fakeExecutor{})

	snapshot, err := svc.Describe(context.Background(), "users")
	require.NoError(t, err)

	assert.Equal(t, "users", snapshot.ID)
	assert.Equal(t, "users", snapshot.Name)
	require.Len(t, snapshot.Columns, 2)
	assert.True(t, snapshot.Columns[0].IsPrimary)
	assert.False(t, snapshot.Columns[1].IsPrimary)
	assert.Len(t, snapshot.Rows, 1)
}

func TestTableServiceDescribeMissingTable(t *testing.T) {
	svc := NewTableService(&fakeInspector{exists: false}, &fakeExecutor{})

	_, err := svc.Describe(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrTableNotFound)
}

func TestTableServiceDrop(t *testing.T) {
	exec := &fakeExecutor{}
	svc := NewTableService(&fakeInspector{}, exec)

	require.NoError(t, svc.Drop(context.Background(), "users"))
	require.Len(t, exec.execs, 1)
	assert.Equal(t, "DROP TABLE IF EXISTS users CASCADE;", exec.execs[0])
}

func TestRowServiceInsertFiltersEmptyValues(t *testing.T) {
	exec := &fakeExecutor{}
	svc := NewRowService(exec)

	err := svc.Insert(context.Background(), &models.RowOperationRequest{
		TableName: "items",
		Data:      map[string]any{"a": "", "b": nil, "c": float64(5)},
	})
	require.NoError(t, err)
	require.Len(t, exec.execs, 1)
	assert.Equal(t, "INSERT INTO items (c) VALUES ('5');", exec.execs[0])
}

func TestRowServiceInsertEmptyPayload(t *testing.T) {
	exec := &fakeExecutor{}
	svc := NewRowService(exec)

	err := svc.Insert(context.Background(), &models.RowOperationRequest{
		TableName: "items",
		Data:      map[string]any{"a": "", "b": nil},
	})
	assert.ErrorIs(t, err, sqlgen.ErrNoData)
	assert.Empty(t, exec.execs, "engine must not be contacted for an empty payload")
}

func TestRowServiceUpdate(t *testing.T) {
	exec := &fakeExecutor{}
	svc := NewRowService(exec)
	id := int64(7)

	updated, err := svc.Update(context.Background(), &models.RowOperationRequest{
		TableName: "items",
		Data:      map[string]any{"name": "widget"},
		ID:        &id,
	})
	require.NoError(t, err)
	assert.True(t, updated)
	require.Len(t, exec.execs, 1)
	assert.Equal(t, "UPDATE items SET name = 'widget' WHERE id = 7;", exec.execs[0])
}

func TestRowServiceUpdateNothingToDo(t *testing.T) {
	exec := &fakeExecutor{}
	svc := NewRowService(exec)
	id := int64(7)

	updated, err := svc.Update(context.Background(), &models.RowOperationRequest{
		TableName: "items",
		Data:      map[string]any{"id": float64(7)},
		ID:        &id,
	})
	require.NoError(t, err)
	assert.False(t, updated)
	assert.Empty(t, exec.execs, "no-op update must not emit SQL")
}

func TestQueryServiceJoin(t *testing.T) {
	exec := &fakeExecutor{rows: []map[string]any{{"id": int32(1)}}}
	svc := NewQueryService(exec)

	rows, err := svc.Join(context.Background(), &models.JoinRequest{
		LeftTable:  "users",
		RightTable: "orders",
		LeftKey:    "id",
		RightKey:   "user_id",
	})
	require.NoError(t, err)
	require.Len(t, exec.selects, 1)
	assert.Equal(t, "SELECT * FROM users INNER JOIN orders ON users.id = orders.user_id LIMIT 100;", exec.selects[0])
	assert.Len(t, rows, 1)
}

func TestQueryServiceJoinEmptyResultIsNotNil(t *testing.T) {
	svc := NewQueryService(&fakeExecutor{})

	rows, err := svc.Join(context.Background(), &models.JoinRequest{
		LeftTable:  "users",
		RightTable: "orders",
		LeftKey:    "id",
		RightKey:   "user_id",
	})
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestEngineErrorsPassThrough(t *testing.T) {
	engineErr := errors.New(`relation "items" does not exist`)
	exec := &fakeExecutor{execErr: engineErr}
	svc := NewRowService(exec)

	err := svc.Insert(context.Background(), &models.RowOperationRequest{
		TableName: "items",
		Data:      map[string]any{"c": float64(5)},
	})
	assert.ErrorIs(t, err, engineErr)
}
