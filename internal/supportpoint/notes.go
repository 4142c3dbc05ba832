package supportpoint

import "strings"

const (
	notesBegin = "== begin notes =="
	notesEnd   = "== end notes =="
)

type NotesState int

const (
	NotesMissing NotesState = iota
	NotesFound
	// NotesUnterminated means the begin marker has no matching end marker.
	// Such notes are discarded.
	NotesUnterminated
)

func (s NotesState) String() string {
	switch s {
	case NotesFound:
		return "found"
	case NotesUnterminated:
		return "unterminated"
	default:
		return "missing"
	}
}

// ExtractNotes returns the lines between the first begin marker and the
// following end marker, joined with \n.
func ExtractNotes(body string) (string, NotesState) {
	var (
		notes []string
		open  bool
	)

	for _, line := range splitLines(body) {
		marker := strings.TrimSpace(line)

		if !open {
			open = marker == notesBegin
			continue
		}

		if marker == notesEnd {
			return strings.Join(notes, "\n"), NotesFound
		}

		notes = append(notes, line)
	}

	if open {
		return "", NotesUnterminated
	}

	return "", NotesMissing
}
