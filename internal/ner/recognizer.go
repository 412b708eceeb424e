// Package ner provides a pluggable named-entity recognition capability. The
// shipped implementation is deterministic pattern matching; callers depend on
// the Recognizer interface so a model-backed recognizer can be swapped in.
package ner

// Label classifies a recognized entity.
type Label string

// Entity labels consumed by the extraction layer.
const (
	LabelPerson Label = "PERSON"
	LabelOrg    Label = "ORG"
	LabelDate   Label = "DATE"
)

// Entity is a labeled span of text.
type Entity struct {
	Label Label
	Text  string
	Start int
}

// Recognizer finds labeled entities in free text.
type Recognizer interface {
	FindEntities(text string) []Entity
}

// Noop is a Recognizer that finds nothing. Used when entity recognition is
// disabled; extraction degrades to regex-only fields.
type Noop struct{}

// FindEntities always returns nil.
func (Noop) FindEntities(string) []Entity {
	return nil
}
