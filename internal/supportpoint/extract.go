package supportpoint

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"time"

	"github.com/kurochkinivan/support_reporter/internal/domain"
)

const dateLayout = "2006-01-02"

const (
	keyTitle          = "title"
	keyAT             = "at"
	keyBrowser        = "browser"
	keyATVersion      = "at_version"
	keyBrowserVersion = "browser_version"
	keyOSVersion      = "os_version"
	keySupport        = "support"
)

var outputKeyRe = regexp.MustCompile(`^output_([1-9][0-9]*)_(command|command_name|output|result)$`)

var outputFields = []string{"command", "command_name", "output", "result"}

// Diagnostics lists what Extract could not resolve. It is informational only.
type Diagnostics struct {
	// Unresolved holds property names (or "output", "notes") that produced
	// no value.
	Unresolved []string `json:"unresolved,omitempty"`
	// Duplicates holds property names that appeared more than once. The last
	// value wins.
	Duplicates []string `json:"duplicates,omitempty"`
	// Malformed holds table rows without a property or value cell.
	Malformed []string `json:"malformed,omitempty"`
}

func (d Diagnostics) Empty() bool {
	return len(d.Unresolved) == 0 && len(d.Duplicates) == 0 && len(d.Malformed) == 0
}

// Extract builds a record from a report body. now is used only for the date
// stamp, formatted in its own location.
func Extract(body string, now time.Time) (*domain.ParsedRecord, Diagnostics) {
	table := ParseTable(body)

	var diag Diagnostics
	diag.Duplicates = table.duplicates
	diag.Malformed = table.malformed

	lookup := func(key string) *string {
		v := table.Lookup(key)
		if v == nil {
			diag.Unresolved = append(diag.Unresolved, key)
		}
		return v
	}

	record := &domain.ParsedRecord{
		TestID:  lookup(keyTitle),
		AT:      lookup(keyAT),
		Browser: lookup(keyBrowser),
		SupportPoint: domain.SupportPoint{
			ATVersion:      lookup(keyATVersion),
			BrowserVersion: lookup(keyBrowserVersion),
			OSVersion:      lookup(keyOSVersion),
			Date:           FormatDate(now),
			Support:        lookup(keySupport),
		},
	}

	output, unresolved := outputEntries(table)
	record.SupportPoint.Output = output
	diag.Unresolved = append(diag.Unresolved, unresolved...)

	notes, state := ExtractNotes(body)
	if state == NotesFound {
		record.SupportPoint.Notes = &notes
	} else {
		diag.Unresolved = append(diag.Unresolved, "notes")
	}

	return record, diag
}

// outputEntries groups output_<N>_<field> properties by N in ascending order,
// whatever order the rows were written in.
func outputEntries(table *Table) ([]*domain.OutputEntry, []string) {
	groups := make(map[int]*domain.OutputEntry)
	var indices []int

	for _, key := range table.keys {
		m := outputKeyRe.FindStringSubmatch(key)
		if m == nil {
			continue
		}

		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}

		entry, ok := groups[n]
		if !ok {
			entry = &domain.OutputEntry{}
			groups[n] = entry
			indices = append(indices, n)
		}

		value := table.values[key]
		switch m[2] {
		case "command":
			entry.Command = &value
		case "command_name":
			entry.CommandName = &value
		case "output":
			entry.Output = &value
		case "result":
			entry.Result = &value
		}
	}

	slices.Sort(indices)

	output := make([]*domain.OutputEntry, 0, len(indices))
	var unresolved []string

	for _, n := range indices {
		output = append(output, groups[n])

		for _, field := range outputFields {
			key := fmt.Sprintf("output_%d_%s", n, field)
			if _, ok := table.values[key]; !ok {
				unresolved = append(unresolved, key)
			}
		}
	}

	if len(indices) == 0 {
		unresolved = append(unresolved, "output")
	}

	return output, unresolved
}

// FormatDate renders t as YYYY-MM-DD in t's location.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}
