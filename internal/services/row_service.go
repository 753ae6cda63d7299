package services

import (
	"context"

	"dbbuilder/internal/models"
	"dbbuilder/internal/sqlgen"
)

type RowService struct {
	statements StatementExecutor
}

func NewRowService(statements StatementExecutor) *RowService {
	return &RowService{statements: statements}
}

// Insert writes one row. Entries with nil or empty-string values are dropped
// before any SQL is built; sqlgen.ErrNoData comes back without the engine ever
// being contacted when nothing remains.
func (s *RowService) Insert(ctx context.Context, req *models.RowOperationRequest) error {
	query, err := sqlgen.InsertRow(req.TableName, req.Data)
	if err != nil {
		return err
	}
	return s.statements.Exec(ctx, query)
}

// Update rewrites the row identified by id. An empty SET clause set is an
// idempotent no-op: updated reports false and no statement is executed.
func (s *RowService) Update(ctx context.Context, req *models.RowOperationRequest) (updated bool, err error) {
	query, err := sqlgen.UpdateRow(req.TableName, req.Data, *req.ID)
	if err != nil {
		return false, err
	}
	if query == "" {
		return false, nil
	}

	if err := s.statements.Exec(ctx, query); err != nil {
		return false, err
	}
	return true, nil
}
