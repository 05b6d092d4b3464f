// Package graph turns a report event's row table into a composite graph
// request: one graph per row, one GET sub-request per recognized record id.
package graph

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/nochum/df23-data-loss-prevention/internal/avrodec"
)

// DefaultMaxRows keeps a batch under the composite API's per-call graph limit.
const DefaultMaxRows = 75

// DefaultAPIVersion is the REST API version used in resource paths.
const DefaultAPIVersion = "v57.0"

// CompositeRequest is the body of a composite graph call.
type CompositeRequest struct {
	Graphs []Graph `json:"graphs"`
}

// Graph is one independent group of sub-requests.
type Graph struct {
	GraphID          string       `json:"graphId"`
	CompositeRequest []SubRequest `json:"compositeRequest"`
}

// SubRequest addresses a single record.
type SubRequest struct {
	URL         string `json:"url"`
	Method      string `json:"method"`
	ReferenceID string `json:"referenceId"`
}

// Records is the row table embedded in a report event.
type Records struct {
	Rows []Row `json:"rows"`
}

// Row is one report row of record id cells.
type Row struct {
	DataCells []string `json:"datacells"`
}

// Builder builds composite requests from report events.
type Builder struct {
	APIVersion string
	MaxRows    int
}

// NewBuilder creates a builder, substituting defaults for zero values.
func NewBuilder(apiVersion string, maxRows int) *Builder {
	if apiVersion == "" {
		apiVersion = DefaultAPIVersion
	}
	if maxRows <= 0 {
		maxRows = DefaultMaxRows
	}
	return &Builder{APIVersion: apiVersion, MaxRows: maxRows}
}

// ParseRecords decodes the Records JSON document.
func ParseRecords(doc string) (*Records, error) {
	var records Records
	if err := json.Unmarshal([]byte(doc), &records); err != nil {
		return nil, errors.Wrap(err, "failed to parse Records JSON")
	}
	return &records, nil
}

// Build returns one graph per row, numbered from 1, up to MaxRows rows.
// Cells with unrecognized prefixes are skipped; a row without any recognized
// cell still produces a graph with no sub-requests.
func (b *Builder) Build(event avrodec.ReportEvent) (*CompositeRequest, error) {
	records, err := ParseRecords(event.Records)
	if err != nil {
		return nil, err
	}

	rows := records.Rows
	if len(rows) > b.MaxRows {
		rows = rows[:b.MaxRows]
	}

	req := &CompositeRequest{Graphs: make([]Graph, 0, len(rows))}
	for i, row := range rows {
		num := i + 1
		g := Graph{
			GraphID:          strconv.Itoa(num),
			CompositeRequest: []SubRequest{},
		}
		for _, cell := range row.DataCells {
			t := Classify(cell)
			if t == Unrecognized {
				continue
			}
			g.CompositeRequest = append(g.CompositeRequest, b.subRequest(t, num, cell))
		}
		req.Graphs = append(req.Graphs, g)
	}
	return req, nil
}

func (b *Builder) subRequest(t RecordType, row int, id string) SubRequest {
	return SubRequest{
		URL:         "/services/data/" + b.APIVersion + "/sobjects/" + t.Name() + "/" + id,
		Method:      "GET",
		ReferenceID: ReferenceID(t, row),
	}
}

// ReferenceID tags a sub-request with its record type and row number.
func ReferenceID(t RecordType, row int) string {
	return "reference_id_" + t.tag() + "_" + strconv.Itoa(row)
}

// HeaderLine turns "[Name, Account, Title]" into a tab separated header line.
func HeaderLine(columnHeaders string) string {
	h := strings.TrimPrefix(columnHeaders, "[")
	h = strings.TrimSuffix(h, "]")
	return strings.ReplaceAll(h, ", ", "\t")
}
