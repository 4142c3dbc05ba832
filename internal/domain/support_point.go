package domain

import (
	"errors"
	"fmt"
)

// A nil field means the value was absent from the report body.
type OutputEntry struct {
	Command     *string `json:"command,omitempty"      csv:"command"`
	CommandName *string `json:"command_name,omitempty" csv:"command_name"`
	Output      *string `json:"output,omitempty"       csv:"output"`
	Result      *string `json:"result,omitempty"       csv:"result"`
}

type SupportPoint struct {
	ATVersion      *string        `json:"at_version,omitempty"`
	BrowserVersion *string        `json:"browser_version,omitempty"`
	OSVersion      *string        `json:"os_version,omitempty"`
	Date           string         `json:"date"`
	Output         []*OutputEntry `json:"output"`
	Support        *string        `json:"support,omitempty"`
	Notes          *string        `json:"notes,omitempty"`
}

type ParsedRecord struct {
	TestID       *string      `json:"testId,omitempty"`
	AT           *string      `json:"at,omitempty"`
	Browser      *string      `json:"browser,omitempty"`
	SupportPoint SupportPoint `json:"supportPoint"`
}

// Validate checks the fields a record needs to be stored and reported on.
// Everything else is left to schema validation.
func (r *ParsedRecord) Validate() error {
	var errs []error

	for _, req := range []struct {
		name  string
		value *string
	}{
		{"title", r.TestID},
		{"at", r.AT},
		{"browser", r.Browser},
	} {
		if req.value == nil || *req.value == "" {
			errs = append(errs, fmt.Errorf("%s is required", req.name))
		}
	}

	if r.SupportPoint.Date == "" {
		errs = append(errs, errors.New("date is required"))
	}

	return errors.Join(errs...)
}

// Value dereferences an optional field, returning "" for absent values.
func Value(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
