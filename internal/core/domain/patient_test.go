package domain

import "testing"

func TestMergePatient_PresentFieldsOverwrite(t *testing.T) {
	existing := &Patient{
		ID:        "pac-1",
		Nombre:    "Juan",
		Apellido:  "Pérez",
		Documento: "12345678",
		Domicilio: "Calle 1",
	}
	MergePatient(existing, &Patient{
		Nombre:    "Juan Carlos",
		Domicilio: "Calle 2",
	})

	if existing.Nombre != "Juan Carlos" {
		t.Fatalf("present field not applied: %q", existing.Nombre)
	}
	if existing.Apellido != "Pérez" || existing.Documento != "12345678" {
		t.Fatalf("absent fields must keep stored values: %+v", existing)
	}
	if existing.Domicilio != "Calle 2" {
		t.Fatalf("present field not applied: %q", existing.Domicilio)
	}
}

func TestMergePatient_SlicesAndMaps(t *testing.T) {
	existing := &Patient{
		Emails:             []string{"a@example.com"},
		Telefonos:          []string{"111"},
		Alergias:           []Alergia{{Nombre: "penicilina"}},
		ParametrosDialisis: map[string]string{"flujo": "300"},
	}

	// nil means absent: stored collections survive.
	MergePatient(existing, &Patient{})
	if len(existing.Emails) != 1 || len(existing.Telefonos) != 1 || len(existing.Alergias) != 1 {
		t.Fatalf("nil collections must not clear stored ones: %+v", existing)
	}

	// A non-nil empty slice is an explicit clear.
	MergePatient(existing, &Patient{Emails: []string{}})
	if len(existing.Emails) != 0 {
		t.Fatalf("empty non-nil slice should clear the list, got %v", existing.Emails)
	}

	MergePatient(existing, &Patient{ParametrosDialisis: map[string]string{"flujo": "350"}})
	if existing.ParametrosDialisis["flujo"] != "350" {
		t.Fatalf("map not replaced: %v", existing.ParametrosDialisis)
	}
}

func TestMergePatient_BooleansAlwaysCopied(t *testing.T) {
	existing := &Patient{TestigoJehova: true, SeTransfunde: true}
	MergePatient(existing, &Patient{})

	// false is meaningful for both flags, so the incoming value always wins.
	if existing.TestigoJehova || existing.SeTransfunde {
		t.Fatalf("boolean flags must follow the incoming record: %+v", existing)
	}
}

func TestMergePatient_IdentityImmutable(t *testing.T) {
	existing := &Patient{ID: "pac-1", QRCodeData: "http://app/pacientes/pac-1/observar"}
	MergePatient(existing, &Patient{ID: "pac-2", QRCodeData: "http://evil/otro"})

	if existing.ID != "pac-1" {
		t.Fatalf("id must not change: %q", existing.ID)
	}
	if existing.QRCodeData != "http://app/pacientes/pac-1/observar" {
		t.Fatalf("qr payload must not change: %q", existing.QRCodeData)
	}
}

func TestEmailsEqual(t *testing.T) {
	cases := []struct {
		a, b []string
		want bool
	}{
		{nil, nil, true},
		{[]string{}, nil, true},
		{[]string{"a@x.com"}, []string{"a@x.com"}, true},
		{[]string{"a@x.com"}, []string{"b@x.com"}, false},
		{[]string{"a@x.com", "b@x.com"}, []string{"b@x.com", "a@x.com"}, false},
		{[]string{"a@x.com"}, []string{"a@x.com", "b@x.com"}, false},
	}
	for _, tc := range cases {
		if got := EmailsEqual(tc.a, tc.b); got != tc.want {
			t.Fatalf("EmailsEqual(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}
