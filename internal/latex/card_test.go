package latex

import (
	"strings"
	"testing"

	"github.com/andortizg/QSL-Generator/internal/model"
	"github.com/stretchr/testify/require"
)

func testCard() model.Card {
	card := model.NewCard(model.DefaultStation())
	card.Contact.TheirCall = "DL1ABC"
	card.Contact.Date = "2024-11-28"
	card.Contact.Time = "18:30"
	card.Contact.Band = "20m"
	card.Contact.Mode = "SSB"
	card.Contact.Report = "59"

	return card
}

func TestRender_PlacesEveryContactValueOnce(t *testing.T) {
	out, err := Render(testCard())
	require.NoError(t, err)

	// Each per-QSO field has a single placeholder in the QSO table.
	for _, value := range []string{"DL1ABC", "2024-11-28", "18:30", "20m", "SSB", "59"} {
		require.Equal(t, 1, strings.Count(out, value), "value %q", value)
	}

	// The callsign is designed into two positions: the card front and
	// the info block on the back.
	require.Equal(t, 2, strings.Count(out, "EA7HQL"))
}

func TestRender_DocumentStructure(t *testing.T) {
	out, err := Render(testCard())
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(out, "% QSL Card design"))
	require.Contains(t, out, `\documentclass[10pt]{article}`)
	require.Contains(t, out, `\usepackage[papersize={14cm,9cm}, margin=0.5cm, marginratio=1:1]{geometry}`)
	require.Contains(t, out, `\begin{document}`)
	require.Contains(t, out, `\newpage`)
	require.True(t, strings.HasSuffix(strings.TrimSpace(out), `\end{document}`))

	// No template delimiters may survive substitution
	require.NotContains(t, out, "<<")
	require.NotContains(t, out, ">>")
}

func TestRender_ScaleDefaults(t *testing.T) {
	card := testCard()
	card.Station.Logo1Scale = ""
	card.Station.Logo2Scale = ""
	card.Station.Logo3Scale = ""

	out, err := Render(card)
	require.NoError(t, err)

	require.Contains(t, out, `\includegraphics[width=0.07\textwidth,valign=m]{logo_ure_negro.png}`)
	require.Contains(t, out, `\includegraphics[width=0.2\textwidth,valign=m]{qrz_com.png}`)
	require.Contains(t, out, `\includegraphics[width=0.1\textwidth,valign=m]{lotw.png}`)
}

func TestRender_ScaleHandling(t *testing.T) {
	tests := []struct {
		name  string
		scale string
		want  string
	}{
		{"valid decimal used", "0.15", "width=0.15\\textwidth"},
		{"unparsable falls back", "wide", "width=0.07\\textwidth"},
		{"negative falls back", "-0.5", "width=0.07\\textwidth"},
		{"zero falls back", "0", "width=0.07\\textwidth"},
		{"whitespace only falls back", "   ", "width=0.07\\textwidth"},
		{"comma decimal falls back", "0,2", "width=0.07\\textwidth"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card := testCard()
			card.Station.Logo1Scale = tt.scale

			out, err := Render(card)
			require.NoError(t, err)
			require.Contains(t, out, tt.want+",valign=m]{logo_ure_negro.png}")
		})
	}
}

func TestRender_Checkboxes(t *testing.T) {
	out, err := Render(testCard())
	require.NoError(t, err)

	// Defaults: home, qso, tnx
	require.Contains(t, out, `$\boxtimes$ Home`)
	require.Contains(t, out, `$\square$ Portable:`)
	require.Contains(t, out, `$\boxtimes$ our QSO`)
	require.Contains(t, out, `$\square$ your SWL report`)
	require.Contains(t, out, `$\square$ PSE`)
	require.Contains(t, out, `$\boxtimes$ TNX`)

	card := testCard()
	card.Contact.QTH = model.QTHPortable
	card.Contact.PortableLocation = "EA7/MA-001"
	card.Contact.QSL = model.QSLSWL
	card.Contact.Request = model.QSLPse

	out, err = Render(card)
	require.NoError(t, err)

	require.Contains(t, out, `$\square$ Home`)
	require.Contains(t, out, `$\boxtimes$ Portable: EA7/MA-001`)
	require.Contains(t, out, `$\square$ our QSO`)
	require.Contains(t, out, `$\boxtimes$ your SWL report`)
	require.Contains(t, out, `$\boxtimes$ PSE`)
	require.Contains(t, out, `$\square$ TNX`)
}

func TestRender_EscapesTextFields(t *testing.T) {
	card := testCard()
	card.Station.OperatorName = "Smith & Jones"
	card.Station.Antenna = "80% doublet"
	card.Contact.Via = "M0ABC_mgr"
	card.Contact.PortableLocation = "camp #4"

	out, err := Render(card)
	require.NoError(t, err)

	require.Contains(t, out, `Smith \& Jones`)
	require.NotContains(t, out, "Smith & Jones")
	require.Contains(t, out, `80\% doublet`)
	require.Contains(t, out, `M0ABC\_mgr`)
	require.Contains(t, out, `camp \#4`)
}

func TestRender_ImageDefaults(t *testing.T) {
	card := testCard()
	card.Station.BackgroundImage = ""
	card.Station.Logo1 = ""
	card.Station.Logo2 = ""
	card.Station.Logo3 = ""

	out, err := Render(card)
	require.NoError(t, err)

	require.Contains(t, out, "{foto_antenas.jpg}")
	require.Contains(t, out, "{logo_ure_negro.png}")
	require.Contains(t, out, "{qrz_com.png}")
	require.Contains(t, out, "{lotw.png}")
}

func TestRender_RejectsUnsafeImageName(t *testing.T) {
	card := testCard()
	card.Station.Logo1 = "logo%graph.png"

	_, err := Render(card)
	require.Error(t, err)
	require.Contains(t, err.Error(), "logo%graph.png")
}

func TestCheckImageName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"plain", "logo.png", false},
		{"underscore fine", "logo_ure_negro.png", false},
		{"hyphen and digits fine", "photo-2024.jpg", false},
		{"space fine", "my photo.jpg", false},
		{"empty", "", true},
		{"whitespace only", "  ", true},
		{"percent", "a%b.png", true},
		{"backslash", `a\b.png`, true},
		{"brace", "a{b.png", true},
		{"hash", "a#b.png", true},
		{"ampersand", "a&b.png", true},
		{"dollar", "a$b.png", true},
		{"tilde", "a~b.png", true},
		{"caret", "a^b.png", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckImageName(tt.input)
			if tt.wantErr {
				require.Error(t, err)

				return
			}

			require.NoError(t, err)
		})
	}
}
