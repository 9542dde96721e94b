package composer

import (
	"strings"

	"github.com/google/uuid"
	"github.com/i4mi/epd-gateway/lib/to"
	"github.com/zorgbijjou/golang-fhir-models/fhir-models/fhir"
)

// Contact is the contact person of an organization.
type Contact struct {
	Given  string
	Family string
	Phone  string
	Mail   string
}

// CreateOrganization composes an Organization resource with a random id. The
// identifier must carry an OID as system; a missing identifier value defaults
// to the organization name.
func (c *Composer) CreateOrganization(name string, identifier fhir.Identifier, contact Contact, address *fhir.Address) (*fhir.Organization, error) {
	system := to.EmptyString(identifier.System)
	if !strings.Contains(system, "urn:oid:") {
		if system == "" {
			system = "<no system>"
		}
		return nil, &PreconditionError{Message: "identifier needs a system OID (provided was: " + system + ")"}
	}
	if identifier.Value == nil || *identifier.Value == "" {
		identifier.Value = to.Ptr(name)
	}
	organizationContact := fhir.OrganizationContact{
		Name: &fhir.HumanName{
			Family: to.Ptr(contact.Family),
			Given:  []string{contact.Given},
		},
	}
	if contact.Phone != "" {
		organizationContact.Telecom = append(organizationContact.Telecom, fhir.ContactPoint{
			System: to.Ptr(fhir.ContactPointSystemPhone),
			Value:  to.Ptr(contact.Phone),
		})
	}
	if contact.Mail != "" {
		organizationContact.Telecom = append(organizationContact.Telecom, fhir.ContactPoint{
			System: to.Ptr(fhir.ContactPointSystemEmail),
			Value:  to.Ptr(contact.Mail),
		})
	}
	organization := &fhir.Organization{
		Id:         to.Ptr(uuid.NewString()),
		Identifier: []fhir.Identifier{identifier},
		Name:       to.Ptr(name),
		Contact:    []fhir.OrganizationContact{organizationContact},
	}
	if address != nil {
		organization.Address = []fhir.Address{*address}
	}
	return organization, nil
}
