package graph

import "strings"

// RecordType is the kind of record an 18-character id points at. The type is
// encoded in the id's three character key prefix.
type RecordType int

const (
	Unrecognized RecordType = iota
	Account
	Contact
	User
)

// prefixLen is the length of the key prefix at the start of every record id.
const prefixLen = 3

var typesByPrefix = map[string]RecordType{
	"001": Account,
	"003": Contact,
	"005": User,
}

// Classify returns the record type for id. Ids that are too short or carry an
// unknown prefix are Unrecognized.
func Classify(id string) RecordType {
	if len(id) < prefixLen {
		return Unrecognized
	}
	if t, ok := typesByPrefix[id[:prefixLen]]; ok {
		return t
	}
	return Unrecognized
}

// Name is the object name used in REST resource paths.
func (t RecordType) Name() string {
	switch t {
	case Account:
		return "Account"
	case Contact:
		return "Contact"
	case User:
		return "User"
	default:
		return ""
	}
}

func (t RecordType) String() string {
	if t == Unrecognized {
		return "Unrecognized"
	}
	return t.Name()
}

// tag is the lowercase marker embedded in reference ids.
func (t RecordType) tag() string {
	return strings.ToLower(t.Name())
}

// ParseReferenceID recovers the record type from a reference id produced by
// ReferenceID. Account is checked first, then Contact, then User.
func ParseReferenceID(ref string) RecordType {
	ref = strings.ToLower(ref)
	for _, t := range []RecordType{Account, Contact, User} {
		if strings.Contains(ref, t.tag()) {
			return t
		}
	}
	return Unrecognized
}
