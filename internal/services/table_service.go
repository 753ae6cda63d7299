package services

import (
	"context"
	"errors"

	"dbbuilder/internal/models"
	"dbbuilder/internal/sqlgen"
)

// snapshotRowLimit caps the rows materialized in a table read.
const snapshotRowLimit = 100

// ErrTableNotFound marks a describe of a table absent from the catalog.
var ErrTableNotFound = errors.New("table not found")

// StatementExecutor runs finished statement text against the engine.
type StatementExecutor interface {
	Exec(ctx context.Context, sql string) error
	Select(ctx context.Context, sql string) ([]map[string]any, error)
}

// SchemaInspector answers catalog questions about the administered schema.
type SchemaInspector interface {
	ListTables(ctx context.Context) ([]string, error)
	TableExists(ctx context.Context, table string) (bool, error)
	ListColumns(ctx context.Context, table string) ([]models.ColumnInfo, error)
	PrimaryKeyColumns(ctx context.Context, table string) ([]string, error)
	TableRows(ctx context.Context, table string, limit int) ([]map[string]any, error)
}

type TableService struct {
	schema     SchemaInspector
	statements StatementExecutor
}

func NewTableService(schema SchemaInspector, statements StatementExecutor) *TableService {
	return &TableService{
		schema:     schema,
		statements: statements,
	}
}

func (s *TableService) Create(ctx context.Context, req *models.CreateTableRequest) error {
	query, err := sqlgen.CreateTable(req.TableName, req.Columns)
	if err != nil {
		return err
	}
	return s.statements.Exec(ctx, query)
}

func (s *TableService) AddColumn(ctx context.Context, req *models.AddColumnRequest) error {
	query, err := sqlgen.AddColumn(req.TableName, req.Column)
	if err != nil {
		return err
	}
	return s.statements.Exec(ctx, query)
}

// Drop removes a table. Dropping a table that does not exist succeeds.
func (s *TableService) Drop(ctx context.Context, table string) error {
	query, err := sqlgen.DropTable(table)
	if err != nil {
		return err
	}
	return s.statements.Exec(ctx, query)
}

func (s *TableService) List(ctx context.Context) ([]string, error) {
	return s.schema.ListTables(ctx)
}

// Describe assembles a table snapshot: ordered column metadata with
// primary-key membership taken from the engine's PRIMARY KEY constraint, plus
// up to 100 rows.
func (s *TableService) Describe(ctx context.Context, table string) (*models.TableSnapshot, error) {
	exists, err := s.schema.TableExists(ctx, table)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrTableNotFound
	}

	columns, err := s.schema.ListColumns(ctx, table)
	if err != nil {
		return nil, err
	}

	pks, err := s.schema.PrimaryKeyColumns(ctx, table)
	if err != nil {
		return nil, err
	}
	pkSet := make(map[string]bool, len(pks))
	for _, pk := range pks {
		pkSet[pk] = true
	}
	for i := range columns {
		columns[i].IsPrimary = pkSet[columns[i].Name]
	}

	rows, err := s.schema.TableRows(ctx, table, snapshotRowLimit)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []map[string]any{}
	}
	if columns == nil {
		columns = []models.ColumnInfo{}
	}

	return &models.TableSnapshot{
		ID:      table,
		Name:    table,
		Columns: columns,
		Rows:    rows,
	}, nil
}
