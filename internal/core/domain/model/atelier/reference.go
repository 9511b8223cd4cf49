package atelier

import (
	"strings"

	"atelier/internal/pkg/errs"
)

var ErrReferenceIDIsRequired = errs.NewValueIsRequiredError("id")

// Reference is a client or model record. The core only needs its id and
// name; every other field travels in document and is written back as is.
type Reference struct {
	id       string
	name     string
	document []byte
}

// NewReference builds a reference. document is the raw persisted record and may be nil.
func NewReference(id, name string, document []byte) (Reference, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Reference{}, ErrReferenceIDIsRequired
	}
	r := Reference{id: id, name: strings.TrimSpace(name)}
	if document != nil {
		r.document = append([]byte(nil), document...)
	}
	return r, nil
}

func (r Reference) ID() string {
	return r.id
}

func (r Reference) Name() string {
	return r.name
}

// Document returns a copy of the raw persisted record.
func (r Reference) Document() []byte {
	if r.document == nil {
		return nil
	}
	return append([]byte(nil), r.document...)
}
