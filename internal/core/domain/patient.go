package domain

// Alergia is a single recorded allergy.
type Alergia struct {
	Nombre      string `json:"nombre" bson:"nombre"`
	Descripcion string `json:"descripcion,omitempty" bson:"descripcion,omitempty"`
}

// Antecedente is a relevant entry in the patient's personal medical history.
type Antecedente struct {
	Nombre      string `json:"nombre" bson:"nombre"`
	Descripcion string `json:"descripcion,omitempty" bson:"descripcion,omitempty"`
}

// Medicacion is a drug the patient currently takes.
type Medicacion struct {
	Nombre string `json:"nombre" bson:"nombre"`
	Dosis  string `json:"dosis,omitempty" bson:"dosis,omitempty"`
}

// Historial is one clinical-history record taken during an admission or
// dialysis session.
type Historial struct {
	Fecha                       string `json:"fecha" bson:"fecha"`
	Profesional                 string `json:"profesional" bson:"profesional"`
	GrupoSanguineo              string `json:"grupoSanguineo,omitempty" bson:"grupo_sanguineo,omitempty"`
	Peso                        string `json:"peso,omitempty" bson:"peso,omitempty"`
	PesoSeco                    string `json:"pesoSeco,omitempty" bson:"peso_seco,omitempty"`
	Altura                      string `json:"altura,omitempty" bson:"altura,omitempty"`
	FechaPrimeraDialisisVida    string `json:"fechaPrimeraDialisisVida,omitempty" bson:"fecha_primera_dialisis_vida,omitempty"`
	FechaPrimeraDialisisClinica string `json:"fechaPrimeraDialisisClinica,omitempty" bson:"fecha_primera_dialisis_clinica,omitempty"`
	Heparina                    string `json:"heparina,omitempty" bson:"heparina,omitempty"`
	AntecedentesEnfermedad      string `json:"antecedentesEnfermedad,omitempty" bson:"antecedentes_enfermedad,omitempty"`
	MedicacionPrescritaDialisis string `json:"medicacionPrescritaDialisis,omitempty" bson:"medicacion_prescrita_dialisis,omitempty"`
	MedicacionDomiciliaria      string `json:"medicacionDomiciliaria,omitempty" bson:"medicacion_domiciliaria,omitempty"`
	Detalle                     string `json:"detalle,omitempty" bson:"detalle,omitempty"`
}

// Evolucion is one monthly evolution report.
type Evolucion struct {
	Fecha          string `json:"fecha" bson:"fecha"`
	Profesional    string `json:"profesional" bson:"profesional"`
	InformeGeneral string `json:"informeGeneral,omitempty" bson:"informe_general,omitempty"`
}

// Patient is the clinical record stored in MongoDB. QRCodeData holds the URL
// encoded into the patient's QR code and is managed by the service layer,
// never by API callers.
type Patient struct {
	ID         string `json:"id" bson:"_id,omitempty"`
	QRCodeData string `json:"qrCodeData,omitempty" bson:"qr_code_data,omitempty"`

	Nombre               string   `json:"nombre" bson:"nombre"`
	Apellido             string   `json:"apellido" bson:"apellido"`
	FechaNacimiento      string   `json:"fechaNacimiento,omitempty" bson:"fecha_nacimiento,omitempty"`
	Documento            string   `json:"documento,omitempty" bson:"documento,omitempty"`
	Genero               string   `json:"genero,omitempty" bson:"genero,omitempty"`
	EstadoCivil          string   `json:"estadoCivil,omitempty" bson:"estado_civil,omitempty"`
	FechaPrimeraDialisis string   `json:"fechaPrimeraDialisis,omitempty" bson:"fecha_primera_dialisis,omitempty"`
	Telefonos            []string `json:"telefonos,omitempty" bson:"telefonos,omitempty"`
	Emails               []string `json:"emails,omitempty" bson:"emails,omitempty"`
	Domicilio            string   `json:"domicilio,omitempty" bson:"domicilio,omitempty"`
	ObraSocial           string   `json:"obraSocial,omitempty" bson:"obra_social,omitempty"`
	Institucion          string   `json:"institucion,omitempty" bson:"institucion,omitempty"`

	Alergias      []Alergia `json:"alergias,omitempty" bson:"alergias,omitempty"`
	TestigoJehova bool      `json:"testigoJehova" bson:"testigo_jehova"`
	SeTransfunde  bool      `json:"seTransfunde" bson:"se_transfunde"`

	AntecedentesPersonales []Antecedente     `json:"antecedentesPersonales,omitempty" bson:"antecedentes_personales,omitempty"`
	MedicacionActual       []Medicacion      `json:"medicacionActual,omitempty" bson:"medicacion_actual,omitempty"`
	HistoriaClinica        []Historial       `json:"historiaClinica,omitempty" bson:"historia_clinica,omitempty"`
	ParametrosDialisis     map[string]string `json:"parametrosDialisis,omitempty" bson:"parametros_dialisis,omitempty"`
	EvolucionMensual       []Evolucion       `json:"evolucionMensual,omitempty" bson:"evolucion_mensual,omitempty"`
}

// MergePatient applies a partial update onto an existing patient, one field
// at a time: an incoming value that is present overwrites, an absent one
// keeps the stored value. Strings count as present when non-empty; slices and
// maps when non-nil. The two boolean flags are always copied, since false is
// a meaningful value for both. ID and QRCodeData are immutable here.
func MergePatient(existing, incoming *Patient) {
	if incoming.Nombre != "" {
		existing.Nombre = incoming.Nombre
	}
	if incoming.Apellido != "" {
		existing.Apellido = incoming.Apellido
	}
	if incoming.FechaNacimiento != "" {
		existing.FechaNacimiento = incoming.FechaNacimiento
	}
	if incoming.Documento != "" {
		existing.Documento = incoming.Documento
	}
	if incoming.Genero != "" {
		existing.Genero = incoming.Genero
	}
	if incoming.EstadoCivil != "" {
		existing.EstadoCivil = incoming.EstadoCivil
	}
	if incoming.FechaPrimeraDialisis != "" {
		existing.FechaPrimeraDialisis = incoming.FechaPrimeraDialisis
	}
	if incoming.Telefonos != nil {
		existing.Telefonos = incoming.Telefonos
	}
	if incoming.Emails != nil {
		existing.Emails = incoming.Emails
	}
	if incoming.Domicilio != "" {
		existing.Domicilio = incoming.Domicilio
	}
	if incoming.ObraSocial != "" {
		existing.ObraSocial = incoming.ObraSocial
	}
	if incoming.Institucion != "" {
		existing.Institucion = incoming.Institucion
	}
	if incoming.Alergias != nil {
		existing.Alergias = incoming.Alergias
	}
	existing.TestigoJehova = incoming.TestigoJehova
	existing.SeTransfunde = incoming.SeTransfunde
	if incoming.AntecedentesPersonales != nil {
		existing.AntecedentesPersonales = incoming.AntecedentesPersonales
	}
	if incoming.MedicacionActual != nil {
		existing.MedicacionActual = incoming.MedicacionActual
	}
	if incoming.HistoriaClinica != nil {
		existing.HistoriaClinica = incoming.HistoriaClinica
	}
	if incoming.ParametrosDialisis != nil {
		existing.ParametrosDialisis = incoming.ParametrosDialisis
	}
	if incoming.EvolucionMensual != nil {
		existing.EvolucionMensual = incoming.EvolucionMensual
	}
}

// EmailsEqual reports whether two email lists hold the same addresses in the
// same order. Used to decide whether an update must resend the QR code.
func EmailsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
