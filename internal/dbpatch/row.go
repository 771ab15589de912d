package dbpatch

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// NotPresent is printed instead of a field the row does not have.
const NotPresent = "not present"

// DefaultFields are printed for every verified row.
var DefaultFields = []string{"Patient", "Name", "Addr1", "TxnNo"}

// Row is one record returned by the driver, keyed by column name.
type Row map[string]any

// Field looks the column up by exact name, then case-insensitively
// (postgres folds unquoted identifiers to lower case).
func (r Row) Field(name string) (any, bool) {
	if v, ok := r[name]; ok {
		return v, true
	}
	for k, v := range r {
		if strings.EqualFold(k, name) {
			return v, true
		}
	}
	return nil, false
}

// String renders the whole row with columns in name order.
func (r Row) String() string {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+formatValue(r[k]))
	}
	return "Row{" + strings.Join(parts, ", ") + "}"
}

func formatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return "NULL"
	case []byte:
		return string(x)
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}

// PrintRow prints the row followed by each of fields on its own line.
// A missing field prints NotPresent. If printing the fields fails the raw
// row is printed instead.
func PrintRow(w io.Writer, row Row, fields []string) {
	if err := printFields(w, row, fields); err != nil {
		_, _ = fmt.Fprintln(w, rawString(row))
	}
}

func printFields(w io.Writer, row Row, fields []string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("print row: %v", r)
		}
	}()
	if _, err := fmt.Fprintln(w, row.String()); err != nil {
		return err
	}
	for _, f := range fields {
		s := NotPresent
		if v, ok := row.Field(f); ok {
			s = formatValue(v)
		}
		if _, err := fmt.Fprintln(w, s); err != nil {
			return err
		}
	}
	return nil
}

// rawString falls back to fmt's map rendering, which survives panicking values.
func rawString(row Row) (s string) {
	defer func() {
		if r := recover(); r != nil {
			s = fmt.Sprint(map[string]any(row))
		}
	}()
	return row.String()
}
