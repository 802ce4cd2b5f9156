package model

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestDefaultStation(t *testing.T) {
	st := DefaultStation()

	if st.Callsign != "EA7HQL" {
		t.Errorf("Callsign = %q, want %q", st.Callsign, "EA7HQL")
	}

	if st.OperatorName != "Andrés Ortiz" {
		t.Errorf("OperatorName = %q, want %q", st.OperatorName, "Andrés Ortiz")
	}

	if st.QTHCity != "Torremolinos" {
		t.Errorf("QTHCity = %q, want %q", st.QTHCity, "Torremolinos")
	}

	if st.Country != "SPAIN" {
		t.Errorf("Country = %q, want %q", st.Country, "SPAIN")
	}

	if st.Grid != "IM76SP" {
		t.Errorf("Grid = %q, want %q", st.Grid, "IM76SP")
	}

	// Equipment fields start empty
	if st.Transceiver != "" || st.Power != "" || st.Antenna != "" || st.Satellite != "" {
		t.Errorf("equipment fields not empty: %q %q %q %q",
			st.Transceiver, st.Power, st.Antenna, st.Satellite)
	}
}

func TestDefaultStation_LogoScales(t *testing.T) {
	st := DefaultStation()

	if st.Logo1Scale != "0.07" {
		t.Errorf("Logo1Scale = %q, want %q", st.Logo1Scale, "0.07")
	}

	if st.Logo2Scale != "0.2" {
		t.Errorf("Logo2Scale = %q, want %q", st.Logo2Scale, "0.2")
	}

	if st.Logo3Scale != "0.1" {
		t.Errorf("Logo3Scale = %q, want %q", st.Logo3Scale, "0.1")
	}
}

func TestDefaultStation_Consistency(t *testing.T) {
	// Multiple calls should return same values
	st1 := DefaultStation()
	st2 := DefaultStation()

	if st1 != st2 {
		t.Error("DefaultStation() returns inconsistent values")
	}
}

func TestStation_JSONMarshaling(t *testing.T) {
	original := Station{
		Callsign:        "DL1ABC",
		OperatorName:    "Max Mustermann",
		QTHCity:         "Berlin",
		Country:         "GERMANY",
		Grid:            "JO62QM",
		Transceiver:     "IC-7300",
		Power:           "100",
		BackgroundImage: "antenna.jpg",
		Logo1:           "club.png",
		Logo1Scale:      "0.08",
	}

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}

	var decoded Station

	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}

	if decoded != original {
		t.Errorf("round-trip mismatch: got %+v, want %+v", decoded, original)
	}
}

func TestStation_JSONFields(t *testing.T) {
	st := Station{
		Callsign:     "EA7HQL",
		OperatorName: "Test Op",
		QTHCity:      "Sevilla",
		QTHState:     "Andalucía",
		CQZone:       "14",
		ITUZone:      "37",
		QRZURL:       "https://qrz.example",
		Logo1Scale:   "0.07",
	}

	data, err := json.Marshal(st)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}

	jsonStr := string(data)

	// Verify JSON field names match the settings file format
	expectedFields := []string{
		`"callsign":"EA7HQL"`,
		`"operator_name":"Test Op"`,
		`"qth_city":"Sevilla"`,
		`"qth_state":"Andalucía"`,
		`"cq_zone":"14"`,
		`"itu_zone":"37"`,
		`"qrz_url":"https://qrz.example"`,
		`"logo1_scale":"0.07"`,
	}

	for _, field := range expectedFields {
		if !strings.Contains(jsonStr, field) {
			t.Errorf("JSON missing field %q in %s", field, jsonStr)
		}
	}
}

func TestStation_Images(t *testing.T) {
	st := DefaultStation()

	images := st.Images()
	if len(images) != 4 {
		t.Fatalf("Images() returned %d entries, want 4", len(images))
	}

	if images[0] != "foto_antenas.jpg" {
		t.Errorf("Images()[0] = %q, want background first", images[0])
	}

	if images[1] != "logo_ure_negro.png" || images[2] != "qrz_com.png" || images[3] != "lotw.png" {
		t.Errorf("Images() logos = %v", images[1:])
	}
}

func TestStation_ImagesFallBackToDefaults(t *testing.T) {
	st := Station{
		BackgroundImage: "my station.jpg",
		Logo2:           "  ",
	}

	images := st.Images()

	if images[0] != "my station.jpg" {
		t.Errorf("Images()[0] = %q, want the configured background", images[0])
	}

	// Empty and blank fields use the same defaults the card renders with
	if images[1] != "logo_ure_negro.png" || images[2] != "qrz_com.png" || images[3] != "lotw.png" {
		t.Errorf("Images() logos = %v, want defaults", images[1:])
	}
}
