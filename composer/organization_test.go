package composer

import (
	"testing"

	"github.com/i4mi/epd-gateway/lib/to"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zorgbijjou/golang-fhir-models/fhir-models/fhir"
)

func TestCreateOrganization(t *testing.T) {
	composer := testComposer()

	t.Run("complete organization", func(t *testing.T) {
		organization, err := composer.CreateOrganization(
			"Klinik Höheweg",
			fhir.Identifier{System: to.Ptr("urn:oid:2.16.756.5.30.1.178.1.1"), Value: to.Ptr("hoeheweg")},
			Contact{Given: "Ursula", Family: "Allzeit", Phone: "+41 31 123 45 67", Mail: "u.allzeit@example.ch"},
			&fhir.Address{City: to.Ptr("Bern")},
		)
		require.NoError(t, err)
		assert.NotEmpty(t, *organization.Id)
		assert.Equal(t, "Klinik Höheweg", *organization.Name)
		assert.Equal(t, "hoeheweg", *organization.Identifier[0].Value)
		require.Len(t, organization.Contact, 1)
		contact := organization.Contact[0]
		assert.Equal(t, "Allzeit", *contact.Name.Family)
		assert.Equal(t, []string{"Ursula"}, contact.Name.Given)
		require.Len(t, contact.Telecom, 2)
		assert.Equal(t, fhir.ContactPointSystemPhone, *contact.Telecom[0].System)
		assert.Equal(t, "+41 31 123 45 67", *contact.Telecom[0].Value)
		assert.Equal(t, fhir.ContactPointSystemEmail, *contact.Telecom[1].System)
		require.Len(t, organization.Address, 1)
		assert.Equal(t, "Bern", *organization.Address[0].City)
	})
	t.Run("identifier value defaults to name", func(t *testing.T) {
		organization, err := composer.CreateOrganization(
			"Klinik Höheweg",
			fhir.Identifier{System: to.Ptr("urn:oid:2.16.756.5.30.1.178.1.1")},
			Contact{Given: "Ursula", Family: "Allzeit"},
			nil,
		)
		require.NoError(t, err)
		assert.Equal(t, "Klinik Höheweg", *organization.Identifier[0].Value)
		assert.Empty(t, organization.Contact[0].Telecom)
		assert.Empty(t, organization.Address)
	})
	t.Run("identifier without OID system", func(t *testing.T) {
		_, err := composer.CreateOrganization(
			"Klinik Höheweg",
			fhir.Identifier{System: to.Ptr("http://example.com/ids")},
			Contact{},
			nil,
		)
		var preconditionErr *PreconditionError
		require.ErrorAs(t, err, &preconditionErr)
		assert.Contains(t, err.Error(), "system OID")
	})
	t.Run("identifier without system", func(t *testing.T) {
		_, err := composer.CreateOrganization("Klinik Höheweg", fhir.Identifier{}, Contact{}, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "<no system>")
	})
}
