// Package composer builds profile-conformant FHIR resources for upload
// through the gateway: MHD document bundles, CH AllergyIntolerance resources
// and Organization resources.
package composer

import (
	"github.com/i4mi/epd-gateway/lib/oid"
)

// Composer creates FHIR resources bound to a gateway environment. The base
// URL and OID registry determine how references and identifiers are rendered.
type Composer struct {
	baseURL string
	oids    oid.Registry
}

// New creates a composer for the gateway at baseURL (including a trailing
// slash) and the given identifier domains.
func New(baseURL string, oids oid.Registry) *Composer {
	return &Composer{
		baseURL: baseURL,
		oids:    oids,
	}
}

// PreconditionError is returned when input is too incomplete to compose a
// valid resource. Composition fails fast, nothing is sent to the gateway.
type PreconditionError struct {
	Message string
}

func (e *PreconditionError) Error() string {
	return e.Message
}
