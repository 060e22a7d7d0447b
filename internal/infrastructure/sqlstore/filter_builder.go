package sqlstore

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/martijn/bizdesk/internal/api/util"
)

// datetimeFields defines fields that contain datetime values and need normalization
var datetimeFields = map[string]bool{
	"created_at":   true,
	"last_contact": true,
}

// numericFields maps fields to the expression compared and sorted on.
// amount is TEXT in SQLite, so it is cast to compare by value, not lexically.
var numericFields = map[string]string{
	"amount": "CAST(amount AS DECIMAL(12,2))",
	"items":  "items",
}

func columnExpr(field string) string {
	if expr, ok := numericFields[field]; ok {
		return expr
	}
	return field
}

// normalizeDateTime parses user input such as "2025-11-24T00:00" into a UTC
// time.Time. Each driver binds it in the form it writes created_at with, so
// equality and range filters line up with stored rows. Input without a zone
// is taken as UTC.
func normalizeDateTime(value string) interface{} {
	formats := []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02T15:04:05.999999999",
		"2006-01-02T15:04",
		"2006-01-02 15:04:05.999999999",
		"2006-01-02 15:04",
		"2006-01-02",
	}

	for _, format := range formats {
		if t, err := time.Parse(format, value); err == nil {
			return truncate(t)
		}
	}

	// If parsing fails, return original value
	return value
}

func normalizeNumber(value string) interface{} {
	if n, err := strconv.ParseInt(value, 10, 64); err == nil {
		return n
	}
	return value
}

func normalizeValue(field string, value interface{}) interface{} {
	s, ok := value.(string)
	if !ok {
		return value
	}
	switch {
	case datetimeFields[field]:
		return normalizeDateTime(s)
	case field == "items":
		return normalizeNumber(s)
	}
	return s
}

func placeholders(field string, values []string) (string, []interface{}) {
	marks := make([]string, len(values))
	args := make([]interface{}, len(values))
	for i, v := range values {
		marks[i] = "?"
		args[i] = normalizeValue(field, v)
	}
	return strings.Join(marks, ", "), args
}

// BuildFilterClause builds a SQL WHERE clause from a QueryFilter
func BuildFilterClause(f util.QueryFilter) (string, []interface{}) {
	column := columnExpr(f.Field)
	value := normalizeValue(f.Field, f.Value)

	switch f.Operator {
	case util.OpEq:
		return fmt.Sprintf("%s = ?", column), []interface{}{value}
	case util.OpNe:
		return fmt.Sprintf("%s != ?", column), []interface{}{value}
	case util.OpGt:
		return fmt.Sprintf("%s > ?", column), []interface{}{value}
	case util.OpGte:
		return fmt.Sprintf("%s >= ?", column), []interface{}{value}
	case util.OpLt:
		return fmt.Sprintf("%s < ?", column), []interface{}{value}
	case util.OpLte:
		return fmt.Sprintf("%s <= ?", column), []interface{}{value}
	case util.OpLike:
		return fmt.Sprintf("LOWER(%s) LIKE LOWER(?)", f.Field), []interface{}{fmt.Sprintf("%%%v%%", f.Value)}
	case util.OpIsNull:
		return fmt.Sprintf("%s IS NULL", f.Field), nil
	case util.OpIsNotNull:
		return fmt.Sprintf("%s IS NOT NULL", f.Field), nil
	case util.OpIn:
		if values, ok := f.Value.([]string); ok && len(values) > 0 {
			marks, args := placeholders(f.Field, values)
			return fmt.Sprintf("%s IN (%s)", column, marks), args
		}
		return "", nil
	case util.OpNin:
		if values, ok := f.Value.([]string); ok && len(values) > 0 {
			marks, args := placeholders(f.Field, values)
			return fmt.Sprintf("%s NOT IN (%s)", column, marks), args
		}
		return "", nil
	default:
		return "", nil
	}
}

// ApplyFilters applies QueryFilters to a query and returns the modified query and args
func ApplyFilters(query string, args []interface{}, filters []util.QueryFilter) (string, []interface{}) {
	for _, f := range filters {
		clause, filterArgs := BuildFilterClause(f)
		if clause != "" {
			query += " AND " + clause
			args = append(args, filterArgs...)
		}
	}
	return query, args
}

// ApplyOrdering applies OrderClauses to a query. id is always appended as
// the last key so rows sharing a timestamp come back in a stable order.
func ApplyOrdering(query string, orders []util.OrderClause, defaultOrder string) string {
	if len(orders) == 0 {
		return query + " ORDER BY " + defaultOrder
	}

	orderClauses := make([]string, 0, len(orders)+1)
	hasID := false
	for _, o := range orders {
		direction := "ASC"
		if o.Direction == util.OrderDesc {
			direction = "DESC"
		}
		if o.Field == "id" {
			hasID = true
		}
		orderClauses = append(orderClauses, fmt.Sprintf("%s %s", columnExpr(o.Field), direction))
	}
	if !hasID {
		orderClauses = append(orderClauses, "id ASC")
	}
	return query + " ORDER BY " + strings.Join(orderClauses, ", ")
}

// ApplyPagination applies page/perPage to a query
func ApplyPagination(query string, args []interface{}, page, perPage int) (string, []interface{}) {
	if perPage > 0 {
		query += " LIMIT ?"
		args = append(args, perPage)

		if page > 1 {
			offset := (page - 1) * perPage
			query += " OFFSET ?"
			args = append(args, offset)
		}
	}
	return query, args
}
