package dbpatch

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRow_FieldLookup(t *testing.T) {
	r := Row{"Name": "Bob", "addr1": "x"}

	v, ok := r.Field("Name")
	assert.True(t, ok)
	assert.Equal(t, "Bob", v)

	v, ok = r.Field("Addr1")
	assert.True(t, ok, "case-insensitive match")
	assert.Equal(t, "x", v)

	_, ok = r.Field("Patient")
	assert.False(t, ok)
}

func TestRow_String(t *testing.T) {
	r := Row{"b": []byte("raw"), "a": int64(3), "c": nil}
	assert.Equal(t, "Row{a: 3, b: raw, c: NULL}", r.String())
	assert.Equal(t, "Row{}", Row{}.String())
}

func TestPrintRow_MissingPatient(t *testing.T) {
	var buf bytes.Buffer
	PrintRow(&buf, Row{"Name": "Ann", "Addr1": "Test", "TxnNo": int64(127285)}, DefaultFields)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, []string{
		"Row{Addr1: Test, Name: Ann, TxnNo: 127285}",
		NotPresent,
		"Ann",
		"Test",
		"127285",
	}, lines)
}

// failAfter ломается после n успешных записей.
type failAfter struct {
	n   int
	buf bytes.Buffer
}

func (w *failAfter) Write(p []byte) (int, error) {
	if w.n == 0 {
		w.n = -1
		return 0, errors.New("broken pipe")
	}
	if w.n > 0 {
		w.n--
	}
	return w.buf.Write(p)
}

func TestPrintRow_FallsBackToRawRow(t *testing.T) {
	w := &failAfter{n: 2}
	PrintRow(w, Row{"Name": "Ann"}, DefaultFields)

	// raw row, первое поле, сбой, затем raw row ещё раз
	assert.Equal(t, "Row{Name: Ann}\nnot present\nRow{Name: Ann}\n", w.buf.String())
}

type panicky struct{}

func (panicky) String() string { panic("boom") }

func TestPrintRow_RecoversFromPanic(t *testing.T) {
	var buf bytes.Buffer
	assert.NotPanics(t, func() { PrintRow(&buf, Row{"Name": panicky{}}, []string{"Name"}) })
	assert.Contains(t, buf.String(), "PANIC=String method: boom")
}
