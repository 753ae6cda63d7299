package services

import (
	"context"

	"dbbuilder/internal/models"
	"dbbuilder/internal/sqlgen"
)

type QueryService struct {
	statements StatementExecutor
}

func NewQueryService(statements StatementExecutor) *QueryService {
	return &QueryService{statements: statements}
}

// Join runs the fixed-shape two-table inner join and returns at most 100
// combined rows. Column name collisions between the tables resolve however
// the engine defaults.
func (s *QueryService) Join(ctx context.Context, req *models.JoinRequest) ([]map[string]any, error) {
	query, err := sqlgen.Join(*req)
	if err != nil {
		return nil, err
	}

	rows, err := s.statements.Select(ctx, query)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []map[string]any{}
	}
	return rows, nil
}
