package domain

import "strconv"

// MaxDocumentID is the largest identifier a document may carry. It is the
// largest integer a JSON client can represent exactly.
const MaxDocumentID = 1<<53 - 1

// CandidateID is the optional, client-supplied identifier of an import item.
// It is either NoID or ExplicitID(n). The zero value is NoID.
type CandidateID struct {
	value    int
	explicit bool
}

// NoID returns a CandidateID carrying no identifier.
func NoID() CandidateID {
	return CandidateID{}
}

// ExplicitID returns a CandidateID carrying n, whatever its sign.
func ExplicitID(n int) CandidateID {
	return CandidateID{value: n, explicit: true}
}

// IsExplicit reports whether the client sent an identifier at all.
func (c CandidateID) IsExplicit() bool {
	return c.explicit
}

// Usable returns the identifier when it may be honoured.
// Absent, non-positive and out-of-range identifiers are treated alike: all
// are unusable and cause a fresh ID to be allocated.
func (c CandidateID) Usable() (int, bool) {
	if !c.explicit || c.value <= 0 || c.value > MaxDocumentID {
		return 0, false
	}
	return c.value, true
}

// String returns "none" or the decimal identifier.
func (c CandidateID) String() string {
	if !c.explicit {
		return "none"
	}
	return strconv.Itoa(c.value)
}

// Candidate is a single document proposed by an import batch or seed source.
type Candidate struct {
	ID    CandidateID
	Input DocumentInput
}

// CandidateFromDocument wraps an existing document, keeping its ID explicit.
func CandidateFromDocument(d Document) Candidate {
	return Candidate{ID: ExplicitID(d.ID), Input: d.Input()}
}
