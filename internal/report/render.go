// Package report renders composite graph responses as contact report lines
// and delivers them to one or more sinks.
package report

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/nochum/df23-data-loss-prevention/internal/composite"
	"github.com/nochum/df23-data-loss-prevention/internal/graph"
)

// NumFields is the number of columns in a report line.
const NumFields = 15

// FieldNames are the report columns in output order.
var FieldNames = [NumFields]string{
	"Salutation", "FirstName", "LastName", "Title", "Account.Name",
	"MailingStreet", "MailingCity", "MailingState", "MailingPostalCode", "MailingCountry",
	"Phone", "Fax", "MobilePhone", "Email", "User.Name",
}

// columnWidths pads the leading columns; the rest are written as is.
var columnWidths = []int{10, 10, 9, 30, 30}

// Line is one rendered report row.
type Line struct {
	GraphID string
	Fields  [NumFields]string
}

// String formats the line tab separated, with the leading columns padded or
// truncated to their fixed widths.
func (l Line) String() string {
	cols := make([]string, NumFields)
	for i, v := range l.Fields {
		if i < len(columnWidths) {
			v = fit(v, columnWidths[i])
		}
		cols[i] = v
	}
	return strings.Join(cols, "\t")
}

func fit(s string, width int) string {
	r := []rune(s)
	if len(r) >= width {
		return string(r[:width])
	}
	return s + strings.Repeat(" ", width-len(r))
}

type record map[string]any

func (r record) get(key string) string {
	v, ok := r[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// Render produces one line per graph in response order. Records missing from
// a graph render as empty columns.
func Render(resp *composite.Response) []Line {
	if resp == nil {
		return nil
	}
	lines := make([]Line, 0, len(resp.Graphs))
	for _, g := range resp.Graphs {
		lines = append(lines, renderGraph(g))
	}
	return lines
}

func renderGraph(g composite.GraphResult) Line {
	var account, contact, user record
	for _, sub := range g.GraphResponse.CompositeResponse {
		body := decodeBody(sub.Body)
		switch graph.ParseReferenceID(sub.ReferenceID) {
		case graph.Account:
			account = body
		case graph.Contact:
			contact = body
		case graph.User:
			user = body
		}
	}

	line := Line{GraphID: g.GraphID}
	f := &line.Fields
	f[0] = contact.get("Salutation")
	f[1] = contact.get("FirstName")
	f[2] = contact.get("LastName")
	f[3] = contact.get("Title")
	f[4] = account.get("Name")
	f[5] = contact.get("MailingStreet")
	f[6] = contact.get("MailingCity")
	f[7] = contact.get("MailingState")
	f[8] = contact.get("MailingPostalCode")
	f[9] = contact.get("MailingCountry")
	f[10] = contact.get("Phone")
	f[11] = contact.get("Fax")
	f[12] = contact.get("MobilePhone")
	f[13] = contact.get("Email")
	f[14] = user.get("Name")
	return line
}

// decodeBody returns the record fields of a sub-response. Error bodies are
// JSON arrays and decode to an empty record.
func decodeBody(raw json.RawMessage) record {
	var body record
	if len(raw) == 0 {
		return body
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil
	}
	return body
}
