// Package oid defines the registry of identifier system OIDs used when
// talking to an EPD community. The registry is set once at construction and
// shared by reference between the gateway client and the resource composer.
package oid

// Registry maps semantic identifier kinds to their OID URNs
// (e.g. "urn:oid:1.1.1.99.1").
type Registry struct {
	// MpiID is the master patient index identifier system of the community.
	MpiID string
	// EprSpid is the national EPR-SPID identifier system.
	EprSpid string
	// Local is the identifier system of the local clinic or hospital.
	Local string
	// Ahv is the identifier system of the national social insurance number.
	Ahv string
	// App is the identifier system of the application itself.
	App string
}
