package sqlgen

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"dbbuilder/internal/models"
)

// ErrNoData is returned when an insert payload is empty after dropping
// nil and empty-string values.
var ErrNoData = errors.New("No data provided")

// identifierPattern matches PostgreSQL unquoted identifiers: a letter or
// underscore followed by letters, digits, underscores, or dollar signs.
var identifierPattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_$]*$`)

// IsValidIdentifier reports whether name can be safely interpolated into
// statement text as a table or column name.
func IsValidIdentifier(name string) bool {
	if name == "" || len(name) > 63 {
		return false
	}
	return identifierPattern.MatchString(name)
}

func checkIdentifiers(names ...string) error {
	for _, name := range names {
		if !IsValidIdentifier(name) {
			return fmt.Errorf("invalid identifier: %q", name)
		}
	}
	return nil
}

// columnTypePattern is the accepted grammar for column type declarations:
// PostgreSQL type names and synonyms, optional precision/scale like
// VARCHAR(50) or NUMERIC(10,2), optional time zone qualifiers on TIME and
// TIMESTAMP, and an optional one-dimensional array suffix. The whole
// declaration must match; nothing may trail the type, so a payload that
// merely starts with a legal name is rejected.
var columnTypePattern = regexp.MustCompile(`^(` +
	`INT|INTEGER|BIGINT|SMALLINT|SERIAL|BIGSERIAL|REAL|DOUBLE PRECISION|` +
	`BOOLEAN|BOOL|TEXT|DATE|INTERVAL|UUID|JSON|JSONB|BYTEA|` +
	`(DECIMAL|NUMERIC)(\(\d+(, ?\d+)?\))?|` +
	`(CHAR|CHARACTER|VARCHAR|CHARACTER VARYING)(\(\d+\))?|` +
	`(TIME|TIMESTAMP)(\(\d+\))?( WITH(OUT)? TIME ZONE)?|TIMESTAMPTZ|TIMETZ` +
	`)(\[\])?$`)

func checkColumnType(colType string) error {
	if !columnTypePattern.MatchString(strings.ToUpper(strings.TrimSpace(colType))) {
		return fmt.Errorf("invalid column type: %q", colType)
	}
	return nil
}

// CreateTable builds a CREATE TABLE statement. An empty column list
// synthesizes an auto-incrementing integer primary key named id. A primary
// column whose declared type contains an integer marker becomes SERIAL
// PRIMARY KEY; other primary columns get a PRIMARY KEY suffix.
func CreateTable(table string, columns []models.ColumnDef) (string, error) {
	if err := checkIdentifiers(table); err != nil {
		return "", err
	}

	var defs []string
	if len(columns) == 0 {
		defs = append(defs, "id SERIAL PRIMARY KEY")
	} else {
		for _, col := range columns {
			if err := checkIdentifiers(col.Name); err != nil {
				return "", err
			}
			if err := checkColumnType(col.Type); err != nil {
				return "", err
			}

			def := col.Name + " " + col.Type
			if col.IsPrimary {
				if strings.Contains(strings.ToUpper(col.Type), "INT") {
					def = col.Name + " SERIAL PRIMARY KEY"
				} else {
					def += " PRIMARY KEY"
				}
			}
			defs = append(defs, def)
		}
	}

	return fmt.Sprintf("CREATE TABLE %s (%s);", table, strings.Join(defs, ", ")), nil
}

// AddColumn builds an ALTER TABLE ... ADD COLUMN statement, optionally with a
// primary key constraint and a REFERENCES clause when a foreign key is
// declared.
func AddColumn(table string, col models.ColumnDef) (string, error) {
	if err := checkIdentifiers(table, col.Name); err != nil {
		return "", err
	}
	if err := checkColumnType(col.Type); err != nil {
		return "", err
	}
	if col.IsForeignKey && col.ForeignKey == nil {
		return "", errors.New("foreignKey reference is required when isForeignKey is set")
	}

	parts := []string{fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s", table, col.Name, col.Type)}

	if col.IsPrimary {
		parts = append(parts, "PRIMARY KEY")
	}

	if col.IsForeignKey && col.ForeignKey != nil {
		if err := checkIdentifiers(col.ForeignKey.Table, col.ForeignKey.Column); err != nil {
			return "", err
		}
		parts = append(parts, fmt.Sprintf("REFERENCES %s(%s)", col.ForeignKey.Table, col.ForeignKey.Column))
	}

	return strings.Join(parts, " ") + ";", nil
}

// InsertRow builds an INSERT statement from row data. Entries whose value is
// nil or the empty string are dropped first; if nothing remains, ErrNoData is
// returned. Columns are emitted in sorted order so output is deterministic.
func InsertRow(table string, data map[string]any) (string, error) {
	if err := checkIdentifiers(table); err != nil {
		return "", err
	}

	var cols []string
	for k, v := range data {
		if v == nil || v == "" {
			continue
		}
		cols = append(cols, k)
	}
	if len(cols) == 0 {
		return "", ErrNoData
	}
	sort.Strings(cols)

	if err := checkIdentifiers(cols...); err != nil {
		return "", err
	}

	vals := make([]string, len(cols))
	for i, col := range cols {
		vals[i] = Literal(data[col])
	}

	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s);",
		table, strings.Join(cols, ", "), strings.Join(vals, ", ")), nil
}

// UpdateRow builds an UPDATE statement for the row identified by id. Every
// data entry except the id field becomes a SET clause; an empty clause set
// yields an empty statement, which callers treat as a no-op rather than SQL.
func UpdateRow(table string, data map[string]any, id int64) (string, error) {
	if err := checkIdentifiers(table); err != nil {
		return "", err
	}

	var cols []string
	for k := range data {
		if k == "id" {
			continue
		}
		cols = append(cols, k)
	}
	if len(cols) == 0 {
		return "", nil
	}
	sort.Strings(cols)

	if err := checkIdentifiers(cols...); err != nil {
		return "", err
	}

	clauses := make([]string, len(cols))
	for i, col := range cols {
		clauses[i] = fmt.Sprintf("%s = %s", col, Literal(data[col]))
	}

	return fmt.Sprintf("UPDATE %s SET %s WHERE id = %d;",
		table, strings.Join(clauses, ", "), id), nil
}

// Join builds the fixed-shape two-table inner join, capped at 100 rows.
// Duplicate column names between the two tables are left to the engine's
// default resolution.
func Join(req models.JoinRequest) (string, error) {
	if err := checkIdentifiers(req.LeftTable, req.RightTable, req.LeftKey, req.RightKey); err != nil {
		return "", err
	}

	return fmt.Sprintf("SELECT * FROM %s INNER JOIN %s ON %s.%s = %s.%s LIMIT 100;",
		req.LeftTable, req.RightTable,
		req.LeftTable, req.LeftKey,
		req.RightTable, req.RightKey), nil
}

// DropTable builds an idempotent DROP statement; dropping an absent table is
// not an error.
func DropTable(table string) (string, error) {
	if err := checkIdentifiers(table); err != nil {
		return "", err
	}
	return fmt.Sprintf("DROP TABLE IF EXISTS %s CASCADE;", table), nil
}
