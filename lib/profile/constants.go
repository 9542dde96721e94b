package profile

// MHD profiles for the ITI-65 Provide Document Bundle transaction.
const MHDProvideBundle = "http://profiles.ihe.net/ITI/MHD/StructureDefinition/IHE.MHD.Comprehensive.ProvideBundle"
const MHDSubmissionSet = "http://profiles.ihe.net/ITI/MHD/StructureDefinition/IHE.MHD.Comprehensive.SubmissionSet"
const MHDDesignationTypeExtension = "http://profiles.ihe.net/ITI/MHD/StructureDefinition/ihe-designationType"
const MHDSourceIDExtension = "http://profiles.ihe.net/ITI/MHD/StructureDefinition/ihe-sourceId"
const MHDListTypeSystem = "http://profiles.ihe.net/ITI/MHD/CodeSystem/MHDlistTypes"

// CH EPR profiles and extensions.
const CHDocumentReferenceEPR = "http://fhir.ch/ig/ch-core/StructureDefinition/ch-core-documentreference-epr"
const CHAuthorRoleExtension = "http://fhir.ch/ig/ch-epr-mhealth/StructureDefinition/ch-ext-author-authorrole"
const CHAuthorRoleSystem = "urn:oid:2.16.756.5.30.1.127.3.10.6"
const CHAllergyIntolerance = "http://fhir.ch/ig/ch-allergyintolerance/StructureDefinition/ch-allergyintolerance"

// AllergyIntolerance extension URLs, per the CH AllergyIntolerance profile.
const AbatementDateTimeExtension = "http://hl7.org/fhir/uv/ips/StructureDefinition/abatement-dateTime-uv-ips"
const AllergyCertaintyExtension = "http://hl7.org/fhir/StructureDefinition/allergyintolerance-certainty"
const AllergyDurationExtension = "http://hl7.org/fhir/StructureDefinition/allergyintolerance-duration"
const OpenEHRExposureDateExtension = "http://hl7.org/fhir/StructureDefinition/openEHR-exposureDate"
const OpenEHRExposureDurationExtension = "http://hl7.org/fhir/StructureDefinition/openEHR-exposureDuration"
const OpenEHRExposureDescriptionExtension = "http://hl7.org/fhir/StructureDefinition/openEHR-exposureDescription"
const OpenEHRLocationExtension = "http://hl7.org/fhir/StructureDefinition/openEHR-location"
const OpenEHRManagementExtension = "http://hl7.org/fhir/StructureDefinition/openEHR-management"

const AllergyVerificationSystem = "http://terminology.hl7.org/CodeSystem/allergyintolerance-verification"

// PMIR patient identity feed event.
const PMIRPatientFeedEvent = "urn:ihe:iti:pmir:2019:patient-feed"
