package models

// ForeignKeyDef points a column at the table/column it references.
type ForeignKeyDef struct {
	Table  string `json:"table" binding:"required"`
	Column string `json:"column" binding:"required"`
}

// ColumnDef describes a column as the client declares it. If IsForeignKey is
// set, ForeignKey must be present as well.
type ColumnDef struct {
	Name         string         `json:"name" binding:"required"`
	Type         string         `json:"type" binding:"required"`
	IsPrimary    bool           `json:"isPrimary"`
	IsForeignKey bool           `json:"isForeignKey"`
	ForeignKey   *ForeignKeyDef `json:"foreignKey"`
}

type CreateTableRequest struct {
	TableName string      `json:"table_name" binding:"required"`
	Columns   []ColumnDef `json:"columns"`
}

type AddColumnRequest struct {
	TableName string    `json:"table_name" binding:"required"`
	Column    ColumnDef `json:"column" binding:"required"`
}

// RowOperationRequest carries row data for inserts and updates. ID is only
// meaningful for updates.
type RowOperationRequest struct {
	TableName string         `json:"table_name" binding:"required"`
	Data      map[string]any `json:"data"`
	ID        *int64         `json:"id"`
}

type JoinRequest struct {
	LeftTable  string `json:"leftTable" binding:"required"`
	RightTable string `json:"rightTable" binding:"required"`
	LeftKey    string `json:"leftKey" binding:"required"`
	RightKey   string `json:"rightKey" binding:"required"`
}

// ColumnInfo is column metadata as reported by the engine's catalog.
type ColumnInfo struct {
	Name      string `json:"name"`
	Type      string `json:"type"`
	IsPrimary bool   `json:"isPrimary"`
}

// TableSnapshot is the read response for a single table: its identity, the
// ordered column metadata, and up to 100 materialized rows.
type TableSnapshot struct {
	ID      string           `json:"id"`
	Name    string           `json:"name"`
	Columns []ColumnInfo     `json:"columns"`
	Rows    []map[string]any `json:"rows"`
}
