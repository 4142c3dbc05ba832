package supportpoint

import "strings"

// Table is an ordered property to value mapping read from a report body.
type Table struct {
	keys   []string
	values map[string]string

	duplicates []string
	malformed  []string
}

func newTable() *Table {
	return &Table{values: make(map[string]string)}
}

// Keys returns the property names in order of their first appearance.
func (t *Table) Keys() []string {
	return append([]string(nil), t.keys...)
}

func (t *Table) Get(key string) (string, bool) {
	v, ok := t.values[key]
	return v, ok
}

// Lookup returns a pointer to the value of key, or nil when key is absent.
func (t *Table) Lookup(key string) *string {
	v, ok := t.values[key]
	if !ok {
		return nil
	}
	return &v
}

func (t *Table) Len() int {
	return len(t.keys)
}

// set overwrites earlier values of the same key. The key keeps the position
// of its first occurrence.
func (t *Table) set(key, value string) {
	if _, ok := t.values[key]; ok {
		t.duplicates = append(t.duplicates, key)
	} else {
		t.keys = append(t.keys, key)
	}
	t.values[key] = value
}

// ParseTable collects the data rows of the pipe-delimited table in body.
// The first two pipe rows are the header and the separator and are skipped.
func ParseTable(body string) *Table {
	t := newTable()

	row := 0
	for _, line := range splitLines(body) {
		cells, ok := tableCells(line)
		if !ok {
			continue
		}

		row++
		if row <= 2 {
			continue
		}

		if len(cells) < 2 || cells[0] == "" {
			t.malformed = append(t.malformed, strings.TrimSpace(line))
			continue
		}

		t.set(cells[0], cells[1])
	}

	return t
}

func tableCells(line string) ([]string, bool) {
	line = strings.TrimSpace(line)
	if len(line) < 2 || !strings.HasPrefix(line, "|") || !strings.HasSuffix(line, "|") {
		return nil, false
	}

	cells := strings.Split(line[1:len(line)-1], "|")
	for i := range cells {
		cells[i] = strings.TrimSpace(cells[i])
	}

	return cells, true
}

// splitLines accepts both \n and \r\n line endings.
func splitLines(body string) []string {
	lines := strings.Split(body, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
