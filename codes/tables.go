package codes

// ClassCodes is the DocumentEntry.classCode value set, mapped to
// DocumentReference.category.
// https://fhir.ch/ig/ch-epr-term/ValueSet-DocumentEntry.classCode.html
var ClassCodes = []Code{
	newCode("371531000", "Report of clinical encounter", "Bericht aufgrund einer Konsultation", "Rapport suite à une consultation", "Rapporto di visita medica", "Rapport sin basa d'ina consultaziun"),
	newCode("721927009", "Referral note", "Zuweisungsschreiben", "Lettre de référence", "Lettera d'invio", "Brev d'assegnaziun"),
	newCode("721963009", "Order", "Untersuchungsauftrag", "Mandat d'analyse", "Prescrizione di analisi", "Incumbensa da consultaziun"),
	newCode("422735006", "Summary clinical document", "Zusammenfassender Bericht", "Rapport de synthèse", "Rapporto riassuntivo", "Rapport medicinal resumà"),
	newCode("371525003", "Clinical procedure report", "Interventionsbericht / Untersuchungsresultat", "Rapport d'intervention / résultat de l’analyse", "Rapporto operatorio / Referto di analisi", "Rapport d'intervenziun / resultat da la consultaziun"),
	newCode("734163000", "Care Plan", "Behandlungsplan", "Plan de traitement", "Piano di trattamento", "Plan da tractament"),
	newCode("440545006", "Prescription record", "Verschreibung / Rezept", "Prescription / ordonnance", "Prescrizione medica", "Prescripziun / recept"),
	newCode("184216000", "Patient record type", "Langzeitdokumentation", "Documentation à long terme", "Documentazione a lungo termine", "Documentaziun da lunga durada"),
	newCode("371537001", "Consent report", "Einwilligung zur Behandlung", "Consentement au traitement", "Consenso al trattamento", "Consentiment al tractament"),
	newCode("371538006", "Advance directive report", "Patientenverfügung", "Directives anticipées", "Direttive del paziente", "Disposiziun dal pazient"),
	newCode("722160009", "Audit trail report", "Rückverfolgung der EPD Zugriffe", "Traçabilité des accès aux DEP", "Cronologia degli accessi alla CIP", "Repersequitabladad da l'access al DEP"),
	newCode("722216001", "Emergency medical identification record", "Notfall-ID / Ausweis", "ID d'urgence / carte d’urgence", "Identificativo d'emergenza / scheda d'emergenza", "Carta d'identitad per cas d'urgenza / document d'identitad"),
	newCode("772790007", "Organ donor card", "Organspendeausweis", "Carte de donneur d'organes", "Tessera di donatore di organi", "Attest da donatur d'organs"),
	newCode("405624007", "Administrative documentation", "Administratives Dokument", "Document administratif", "Documento amministrativo", "Document administrativ"),
	newCode("417319006", "Record of health event", "Dokument zu gesundheitsrelevantem Ereignis", "Document sur l'événement sanitaire", "Documento concernente un evento rilevante per la salute", "Document concernent  in eveniment relevant per la sanadad"),
	newCode("419891008", "Record artifact", "Nicht näher bezeichnetes Dokument", "Document non précisé", "Documento non meglio specificato", "Document betg designà pli precis"),
	newCode("2171000195109", "Obstetrical Record", "Schwangerschafts-/ Geburtsbericht", "Rapport de grossesse / de naissance", "Referto della gravidanza / del parto", "Rapport da gravidanza / da naschientscha"),
}

// TypeCodes is the DocumentEntry.typeCode value set, mapped to
// DocumentReference.type.
// http://build.fhir.org/ig/hl7ch/ch-epr-term/ValueSet-DocumentEntry.typeCode.html
var TypeCodes = []Code{
	newCode("371529009", "History and physical report", "Anamnese / Untersuchungsbericht", "Anamnèse / rapport d'analyse", "Anamnesi / Rapporto di visita medica", "Anamnesa / rapport da consultaziun"),
	newCode("419891008", "Record artifact", "Nicht näher bezeichnetes Dokument", "Document non précisé", "Documento non meglio specificato", "Document betg specifitgà pli precis"),
	newCode("721965002", "Laboratory Order", "Laborauftrag", "Mandat d'analyse en laboratoire", "Richiesta di analisi di laboratorio", "Incumbensa da labor"),
	newCode("721966001", "Pathology order", "Pathologieauftrag", "Mandat de rapport d'examen pathologique", "Richiesta di esame istologico", "Incumbensa da patologia"),
	newCode("4201000179104", "Imaging report", "Befundbericht zur Bildgebung", "Rapport de résultat relatif à l'imagerie", "Referto di immaginografia", "Rapport dal resultat dals maletgs"),
	newCode("737427001", "Clinical Management plan", "Behandlungsplan", "Plan de traitement", "Piano di trattamento", "Plan da tractament"),
	newCode("765492005", "Non-drug prescription", "Nicht-Arzneimittel-Verschreibung / Rezept", "Prescription sans médicaments / ordonnance", "Prescrizione non di medicamenti", "Prescripziun senza medischinas / recept"),
	newCode("773130005", "Nursing care plan", "Pflegeplan", "Plan de soins", "Piano di cura", "Plan da tgira"),
	newCode("736055001", "Rehabilitation care plan", "Rehabilitationsplan", "Plan de réhabilitation", "Piano di riabilitazione", "Plan da reabilitaziun"),
	newCode("761938008", "Medical Prescription record", "Arzneimittel-Verschreibung / Rezept", "Prescription de médicaments / ordonnance", "Prescrizione di medicamenti", "Prescripziun da medischinas / recept"),
	newCode("722446000", "Allergy record", "Allergieausweis", "Carnet des allergies", "Passaporto delle allergie", "Attest d'allergia"),
	newCode("772786005", "Medical certificate", "Ärztliches Attest", "Certificat médical", "Certificato medico", "Attest medical"),
	newCode("373942005", "Discharge summary", "Austrittsbericht", "Rapport de sortie", "Rapporto di dimissione", "Rapport d'extrada"),
	newCode("371535009", "Transfer summary report", "Überweisungsbericht", "Rapport de transfert", "Rapporto di trasferimento", "Rapport d'assegnaziun"),
	newCode("445300006", "Emergency department record", "Notfallbericht", "Rapport d'urgence", "Referto di pronto soccorso", "Rapport davart in cas d'urgenza"),
	newCode("445418005", "Professional allied to medicine clinical report", "Dokument ausserhalb des Behandlungskontextes", "Document hors contexte de traitement", "Documento al di fuori del contesto trattato", "Document ordaifer il context dal tractament"),
	newCode("371530004", "Consultation report", "Beurteilung durch Fachspezialisten", "Évaluation par des spécialistes", "Valutazione dello specialista", "Rapport da la consultaziun clinica"),
	newCode("4241000179101", "Laboratory report", "Laborbericht", "Rapport de laboratoire", "Referto di laboratorio", "Rapport da labor"),
	newCode("371526002", "Operative report", "Operationsbericht", "Rapport d'opération", "Rapporto operatorio", "Rapport d'operaziun"),
	newCode("371532007", "Progress note", "Verlaufsbericht", "Rapport d'historique", "Rapporto sul decorso", "Rapport da l'andament"),
	newCode("900000000000471006", "Image", "Bild", "Image", "Immagine", "Maletg"),
	newCode("41000179103", "Immunization record", "Impfausweis", "Carnet de vaccination", "Certificato di vaccinazione", "Attest da vaccinaziun"),
	newCode("371528001", "Pathology report", "Pathologiebericht", "Rapport d'examen pathologique", "Referto istologico", "Rapport da la patologia"),
	newCode("721912009", "Medication summary document", "Medikationsliste", "Liste de médication", "Elenco dei medicamenti", "Glista da medicaziun"),
	newCode("2161000195103", "Imaging Order", "Bildgebungsauftrag", "Mandat d'imagerie", "Richiesta di immaginografia", "Incumbensa da far in maletg"),
}

// ClassTypeCombinations maps a category (class) code to the document type
// codes it may be combined with.
// http://ehealthsuisse.art-decor.org/ch-epr-html-20200226T180620/voc-2.16.756.5.30.1.127.3.10.1.30-2020-02-26T174502.html
var ClassTypeCombinations = map[string][]string{
	"405624007":     {"772786005", "419891008"},
	"371538006":     {"419891008"},
	"722160009":     {"419891008"},
	"734163000":     {"737427001", "773130005", "736055001", "419891008"},
	"371525003":     {"371526002", "4241000179101", "371528001", "4201000179104", "900000000000471006", "419891008"},
	"371537001":     {"419891008"},
	"722216001":     {"419891008"},
	"2171000195109": {"419891008"},
	"721963009":     {"721965002", "721966001", "2161000195103", "419891008"},
	"772790007":     {"419891008"},
	"184216000":     {"722446000", "41000179103", "419891008"},
	"440545006":     {"761938008", "765492005", "419891008"},
	"417319006":     {"445300006", "445418005", "419891008"},
	"721927009":     {"419891008"},
	"371531000":     {"371530004", "371529009", "371532007", "419891008"},
	"422735006":     {"373942005", "371535009", "721912009", "419891008"},
	"419891008":     {"419891008"},
}

// FacilityClassCodes is the DocumentEntry.healthcareFacilityTypeCode value
// set, mapped to DocumentReference.context.facilityType.
// https://fhir.ch/ig/ch-epr-term/ValueSet-DocumentEntry.healthcareFacilityTypeCode.html
var FacilityClassCodes = []Code{
	newCode("722171005", "Diagnostic institution", "Institution für medizinische Diagnostik", "Institut d'aide au diagnostic", "Istituto di diagnostica medica", "Instituziun per diagnostica medicinala"),
	newCode("225728007", "Accident and Emergency department", "Notfall-/Rettungsdienste", "Service d'urgence et de sauvetage", "Servizio di pronto soccorso e di salvataggio", "Servetsch d'urgenza e da salvament"),
	newCode("394747008", "Health Authority", "Gesundheitsbehörde", "Autorité sanitaire", "Autorità sanitaria", "Autoritad da sanadad"),
	newCode("66280005", "Private home-based care", "Organisation für Pflege zu Hause", "Soins à domicile", "Servizio di assistenza e cura a domicilio", "Organisaziun per la tgira a chasa"),
	newCode("22232009", "Hospital", "Stationäre Einrichtung/Spital", "Hôpital", "Ospedale", "Ospital"),
	newCode("722172003", "Military health institution", "Armeeärztliche Dienste", "Service sanitaire de l'armée", "Servizio di medicina militare", "Servetsch da medischina militara"),
	newCode("722173008", "Prison based care site", "Gesundheitseinrichtung in der Haftanstalt", "Service de santé en milieu carcéral", "Struttura sanitaria in uno stabilimento carcerario", "Structura da sanadad en in stabiliment giudizial"),
	newCode("42665001", "Nursing home", "Pflegeheim", "Etablissement médico-social", "Casa di cura", "Chasa da tgira"),
	newCode("264372000", "Pharmacy", "Apotheke", "Pharmacie", "Farmacia", "Apoteca"),
	newCode("35971002", "Ambulatory care site", "Ambulante Einrichtung/Ambulatorium", "Etablissement ambulatoire", "Struttura ambulatoriale, incl. gli studi medici", "Instituziun ambulanta/ambulatori"),
	newCode("80522000", "Rehabilitation hospital", "Organisation für stationäre Rehabilitation", "Réadaptation stationnaire", "Istituto di riabilitazione stazionaria", "Institut da reabilitaziun staziunara"),
	newCode("394778007", "Client's or patient's home", "Domizil des Patienten", "Domicile du patient", "Domicilio del paziente", "Domicil dal pazient"),
	newCode("288565001", "Telemedicine institution", "Telemedizinische Einrichtung", "Institut de télémédecine", "Centro di telemedicina", "Instituziun da telemedischina"),
	newCode("264358009", "General practice premises", "Arztpraxis", "Cabinet médical", "Studio medico", "Pratica da medi"),
	newCode("43741000", "Other Site of Care", "Andere Gesundheitsorganisation", "Autres prestataires de soins", "Altre organizzazioni sanitarie", "Autras organisaziuns dals fatgs da tgira"),
}

// PracticeSettingCodes is the DocumentEntry.practiceSettingCode value set,
// mapped to DocumentReference.context.practiceSetting.
// https://fhir.ch/ig/ch-epr-term/ValueSet-DocumentEntry.practiceSettingCode.html
var PracticeSettingCodes = []Code{
	newCode("394805004", "Clinical immunology/allergy", "Immunologie/Allergologie", "Immunologie/Allergologie", "Allergologia e immunologia clinica", "Immunologia/allergologia"),
	newCode("394802001", "General medicine", "Allgemeinmedizin", "Médecine générale", "Medicina generale", "Medischina generala"),
	newCode("394577000", "Anaesthesiology", "Anästhesiologie", "Anesthésiologie", "Anestesiologia", "Anestesiologia"),
	newCode("722414000", "Vascular medicine", "Angiologie", "Angiologie", "Angiologia", "Angiologia"),
	newCode("722170006", "Chiropractic service", "Chiropraktik", "Chiropractie", "Chiropratica", "Chiropratica"),
	newCode("394609007", "General surgery", "Chirurgie", "Chirurgie", "Chirurgia", "Chirurgia"),
	newCode("394582007", "Dermatology", "Dermatologie und Venerologie", "Dermatologie et vénérologie", "Dermatologia e venereologia", "Dermatologia e venerologia"),
	newCode("394583002", "Endocrinology", "Endokrinologie/Diabetologie", "Endocrinologie/diabétologie", "Endocrinologia/diabetologia", "Endocrinologia/diabetologia"),
	newCode("310093001", "Occupational therapy service", "Ergotherapie", "Ergothérapie", "Ergoterapia", "Ergoterapia"),
	newCode("722164000", "Dietetics and nutrition", "Ernährungsberatung", "Conseil en nutrition et diététique", "Dietetica", "Cussegliaziun da nutriment"),
	newCode("394584008", "Gastroenterology", "Gastroenterologie", "Gastroentérologie", "Gastroenterologia", "Gastroenterologia"),
	newCode("394811001", "Geriatric medicine", "Geriatrie", "Gériatrie", "Geriatria", "Geriatria"),
	newCode("394586005", "Gynecology and Obstretrics", "Gynäkologie und Geburtshilfe", "Gynécologie et obstétrique", "Ginecologia e ostetricia", "Ginecologia ed assistenza al part"),
	newCode("394803006", "Clinical haematology", "Hämatologie", "Hématologie", "Ematologia", "Hematologia"),
	newCode("408466002", "Cardiac surgery", "Herzchirurgie", "Chirurgie cardiovasculaire", "Chirurgia cardiovascolare", "Chirurgia dal cor"),
	newCode("408480009", "Clinical immunology", "Immunologie", "Immunologie", "Immunologia", "Immunologia"),
	newCode("394807007", "Infectious diseases", "Infektionskrankheiten", "Maladies infectieuses", "Malattia infettiva", "Malsognas infectusas"),
	newCode("419192003", "Internal medicine", "Innere Medizin", "Médecine interne", "Medicina interna", "Medischina interna"),
	newCode("408478003", "Critical care medicine", "Intensivmedizin", "Médecine intensive", "Medicina intensiva", "Medischina intensiva"),
	newCode("394579002", "Cardiology", "Kardiologie", "Cardiologie", "Cardiologia", "Cardiologia"),
	newCode("310025004", "Complementary therapy", "Komplementärmedizin", "Médecine alternative et complémentaire", "Medicina complementare", "Medischina alternativa e cumplementara"),
	newCode("708184003", "Laboratory service", "Labormedizin", "Médecin de laboratoire", "Medicina di laboratorio", "Medischina da labor"),
	newCode("310101009", "Speech and language therapy service", "Logopädie", "Logopédie", "Logopedia", "Logopedia"),
	newCode("394580004", "Clinical genetics", "Medizinische Genetik", "Génétique médicale", "Genetica medica", "Genetica medicinala"),
	newCode("408465003", "Oral and maxillofacial surgery", "Mund-, Kiefer- und Gesichtschirurgie", "Chirurgie dento-maxillo-faciale", "Chirurgia oro-maxillo-facciale", "Chirurgia da la bucca, da la missella e da la fatscha"),
	newCode("394589003", "Nephrology", "Nephrologie", "Néphrologie", "Nefrologia", "Nefrologia"),
	newCode("394610002", "Neurosurgery", "Neurochirurgie", "Neurochirurgie", "Neurochirurgia", "Neurochirurgia"),
	newCode("394591006", "Neurology", "Neurologie", "Neurologie", "Neurologia", "Neurologia"),
	newCode("394576009", "Accident & emergency", "Notfall- und Rettungsmedizin", "Médecine d'urgence et de sauvetage", "Medicina d'urgenza e di salvataggio", "Medischina d'urgenza e da salvament"),
	newCode("394649004", "Nuclear medicine", "Nuklearmedizin", "Médecine nucléaire", "Medicina nucleare", "Medischina nucleara"),
	newCode("394594003", "Ophthalmology", "Ophthalmologie", "Ophtalmologie", "Oftalmologia", "Oftalmologia"),
	newCode("394801008", "Trauma and orthopedics", "Orthopädie und Traumatologie", "Chirurgie orthopédique et traumatologie de l'appareil locomoteur", "Chirurgia ortopedica e traumatologia dell'apparato locomotore", "Ortopedia e traumatologia"),
	newCode("416304004", "Osteopathic manipulative medicine", "Osteopathie", "Ostéopathie", "Osteopatia", "Osteopatia"),
	newCode("418960008", "Otolaryngology", "Oto-Rhino-Laryngologie", "Oto-rhino-laryngologie", "Otorinolaringoiatria", "Oto-rino-laringologia"),
	newCode("394537008", "Pediatrics", "Pädiatrie", "Pédiatrie", "Pediatria", "Pediatria"),
	newCode("394806003", "Palliative medicine", "Palliativmedizin", "Médecine palliative", "Medicina palliativa", "Medischina palliativa"),
	newCode("394595002", "Pathology", "Pathologie", "Pathologie", "Patologia", "Patologia"),
	newCode("722165004", "Nursing", "Pflege", "Soins", "Cure infermieristiche", "Tgira"),
	newCode("394600006", "Clinical pharmacology", "Klinische Pharmakologie", "Pharmacologie clinique", "Farmacologia clinica", "Farmacologia clinica"),
	newCode("310080006", "Pharmacy service", "Pharmazie-Dienstleistung", "Service pharmaceutique", "Farmacia", "Servetsch farmaceutic"),
	newCode("722138006", "Physiotherapy", "Physiotherapie", "Physiothérapie", "Fisioterapia", "Fisioterapia"),
	newCode("394611003", "Plastic surgery", "Plastische, Rekonstruktive und Ästhetische Chirurgie", "Chirurgie plastique, reconstructrice et esthétique", "Chirurgia plastica, ricostruttiva ed estetica", "Chirurgia plastica, reconstructiva ed estetica"),
	newCode("418112009", "Pulmonary medicine", "Pneumologie", "Pneumologie", "Pneumologia", "Pneumologia"),
	newCode("310087009", "Podiatry service", "Podologie", "Podologie", "Podologia", "Podologia"),
	newCode("409968004", "Preventive medicine", "Präventionsmedizin", "Médecine préventive", "Prevenzione", "Medischina preventiva"),
	newCode("394587001", "Psychiatry", "Psychiatrie und Psychotherapie", "Psychiatrie et psychothérapie", "Psichiatria e psicoterapia", "Psicoterapia"),
	newCode("722162001", "Psychology", "Psychologie", "Psychologie", "Psicologia", "Psicologia"),
	newCode("721961006", "Psycho-Somatic medicine", "Psychosomatik", "Psychosomatique", "Medicina psicosomatica", "Medischina psicosomatica"),
	newCode("394914008", "Radiology", "Radiologie", "Radiologie", "Radiologia", "Radiologia"),
	newCode("419815003", "Radiation oncology", "Radio-Onkologie/Strahlentherapie", "Radio-oncologie / radiothérapie", "Radio-oncologia / radioterapia", "Radio-oncologia/radioterapia"),
	newCode("722204007", "Legal medicine", "Rechtsmedizin", "Médecine légale", "Medicina legale", "Medischina legala"),
	newCode("394602003", "Rehabilitation", "Rehabilitation", "Réadaptation", "Riabilitazione", "Reabilitaziun"),
	newCode("394810000", "Rheumatology", "Rheumatologie", "Rhumatologie", "Reumatologia", "Reumatologia"),
	newCode("408456005", "Thoracic surgery", "Thoraxchirurgie", "Chirurgie thoracique", "Chirurgia toracica", "Chirurgia toraxala"),
	newCode("394819004", "Transfusion medicine", "Transfusionsmedizin", "Médecine transfusionnelle", "Medicina trasfusionale", "Transfusiun da sang"),
	newCode("408448007", "Tropical medicine", "Tropen- und Reisemedizin", "Médecine tropicale et des voyages", "Medicina tropicale e di viaggio", "Medischina da las tropas e da viadis"),
	newCode("394612005", "Urology", "Urologie", "Urologie", "Urologia", "Urologia"),
	newCode("394812008", "Dental medicine", "Zahnheilkunde", "Odontologie", "Odontoiatria", "Medischina dentala"),
	newCode("394592004", "Clinical oncology", "Onkologie", "Oncologie", "Oncologia medica", "Oncologia"),
	newCode("408477008", "Transplant surgery", "Transplantationsmedizin", "Médecine de la transplantation", "Medicina dei trapianti", "Medischina da transplantaziun"),
	newCode("394658006", "Other clinical specialty", "Andere nicht näher spezifizierte medizinische Fachrichtung", "Autres spécialisations non spécifiées", "Altre specialità mediche non meglio precisate", "Auters secturs medicinals betg precisads"),
}
