package avrodec

import (
	"fmt"
)

// Field names of the report event payload.
const (
	FieldColumnHeaders = "ColumnHeaders"
	FieldRecords       = "Records"
)

// ReportEvent is the part of a decoded report event the pipeline uses.
type ReportEvent struct {
	// ColumnHeaders is a bracketed, comma separated list, e.g. "[Name, Account, Title]".
	ColumnHeaders string
	// Records is a JSON document of the form {"rows":[{"datacells":[...]}]}.
	Records string
}

// EventFromNative extracts a ReportEvent from a decoded record. Absent or null
// fields become empty strings.
func EventFromNative(record map[string]any) (ReportEvent, error) {
	headers, err := stringField(record, FieldColumnHeaders)
	if err != nil {
		return ReportEvent{}, err
	}
	records, err := stringField(record, FieldRecords)
	if err != nil {
		return ReportEvent{}, err
	}
	return ReportEvent{ColumnHeaders: headers, Records: records}, nil
}

// stringField reads a string, unwrapping the {"string": v} form goavro uses
// for union values.
func stringField(record map[string]any, name string) (string, error) {
	v, ok := record[name]
	if !ok || v == nil {
		return "", nil
	}
	switch t := v.(type) {
	case string:
		return t, nil
	case map[string]any:
		if s, ok := t["string"].(string); ok {
			return s, nil
		}
		if len(t) == 0 {
			return "", nil
		}
	}
	return "", fmt.Errorf("field %s has type %T, want string", name, v)
}
