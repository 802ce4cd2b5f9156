package cli

import (
	"path/filepath"
	"reflect"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andortizg/QSL-Generator/internal/model"
	"github.com/andortizg/QSL-Generator/internal/settings"
)

func TestContactModel_Defaults(t *testing.T) {
	m := NewContactModel()

	// An untouched form produces the default contact
	if got := m.Contact(); got != model.DefaultContact() {
		t.Errorf("Contact() = %+v, want defaults", got)
	}
}

func TestContactModel_Contact(t *testing.T) {
	m := NewContactModel()
	m.inputs[fieldTheirCall].SetValue("DL1ABC")
	m.inputs[fieldDate].SetValue("28/11/2024")
	m.inputs[fieldPortableLocation].SetValue("EA7/MA-001")
	m.inputs[fieldQTHType].SetValue(" Portable ")
	m.inputs[fieldQSLType].SetValue("SWL")
	m.inputs[fieldQSLRequest].SetValue("pse")

	c := m.Contact()

	if c.TheirCall != "DL1ABC" {
		t.Errorf("TheirCall = %q", c.TheirCall)
	}

	if c.Date != "28/11/2024" {
		t.Errorf("Date = %q", c.Date)
	}

	if c.QTH != model.QTHPortable {
		t.Errorf("QTH = %v, want portable", c.QTH)
	}

	if c.QSL != model.QSLSWL {
		t.Errorf("QSL = %v, want swl", c.QSL)
	}

	if c.Request != model.QSLPse {
		t.Errorf("Request = %v, want pse", c.Request)
	}
}

func TestContactModel_ChoiceFallback(t *testing.T) {
	m := NewContactModel()
	m.inputs[fieldQTHType].SetValue("mobile")
	m.inputs[fieldQSLType].SetValue("")
	m.inputs[fieldQSLRequest].SetValue("thanks")

	c := m.Contact()
	want := model.DefaultContact()

	if c.QTH != want.QTH || c.QSL != want.QSL || c.Request != want.Request {
		t.Errorf("choices = %v/%v/%v, want defaults", c.QTH, c.QSL, c.Request)
	}
}

func TestContactModel_Clear(t *testing.T) {
	m := NewContactModel()
	m.inputs[fieldTheirCall].SetValue("DL1ABC")
	m.inputs[fieldReport].SetValue("599")
	m.inputs[fieldQTHType].SetValue("portable")
	m.inputs[fieldQSLRequest].SetValue("pse")

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})

	if got := m.Contact(); got != model.DefaultContact() {
		t.Errorf("Contact() after clear = %+v, want defaults", got)
	}
}

func TestStationModel_Station(t *testing.T) {
	store := settings.NewStore(filepath.Join(t.TempDir(), "settings.json"))

	m, err := NewStationModel(store)
	if err != nil {
		t.Fatalf("NewStationModel() error = %v", err)
	}

	// A fresh store loads the defaults into the form
	if got := m.Station(); got != model.DefaultStation() {
		t.Errorf("Station() = %+v, want defaults", got)
	}

	m.inputs[0].SetValue("M0TRT")

	if got := m.Station(); got.Callsign != "M0TRT" {
		t.Errorf("Callsign = %q, want M0TRT", got.Callsign)
	}
}

func TestStationFields_CoverStruct(t *testing.T) {
	want := reflect.TypeOf(model.Station{}).NumField()

	if got := len(stationFields); got != want {
		t.Errorf("stationFields has %d entries, Station has %d fields", got, want)
	}
}
