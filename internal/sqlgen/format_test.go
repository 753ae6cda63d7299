package sqlgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLiteralNullHandling(t *testing.T) {
	assert.Equal(t, "NULL", Literal(nil))
	assert.Equal(t, "NULL", Literal(""))
}

func TestLiteralStrings(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"plain string", "hello", "'hello'"},
		{"single quote doubled", "O'Brien", "'O''Brien'"},
		{"multiple quotes", "it's o'clock", "'it''s o''clock'"},
		{"only quotes", "''", "''''''"},
		{"whitespace trimmed", "  padded  ", "'padded'"},
		{"whitespace only", "   ", "''"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Literal(tt.value))
		})
	}
}

func TestLiteralDateHeuristic(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"day month year converts", "21/12/1999", "'1999-12-21'"},
		{"first of month", "01/02/2020", "'2020-02-01'"},
		{"iso date falls through", "2023-01-05", "'2023-01-05'"},
		{"year first order falls through", "1999/12/21", "'1999/12/21'"},
		{"impossible month falls through", "21/13/1999", "'21/13/1999'"},
		{"slash but wrong length", "1/2/2020", "'1/2/2020'"},
		{"ten chars no slash", "ab-cd-efgh", "'ab-cd-efgh'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Literal(tt.value))
		})
	}
}

func TestLiteralStructuredValues(t *testing.T) {
	assert.Equal(t, `'{"key":"value"}'`, Literal(map[string]any{"key": "value"}))
	assert.Equal(t, `'[1,2,3]'`, Literal([]any{float64(1), float64(2), float64(3)}))

	// Nested quotes inside JSON text still get escaped for SQL.
	assert.Equal(t, `'{"name":"O''Brien"}'`, Literal(map[string]any{"name": "O'Brien"}))
}

func TestLiteralScalars(t *testing.T) {
	assert.Equal(t, "'5'", Literal(float64(5)))
	assert.Equal(t, "'5.5'", Literal(5.5))
	assert.Equal(t, "'-12'", Literal(float64(-12)))
	assert.Equal(t, "'true'", Literal(true))
	assert.Equal(t, "'false'", Literal(false))
	assert.Equal(t, "'42'", Literal(42))
}
