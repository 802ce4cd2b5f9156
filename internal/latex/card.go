package latex

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/andortizg/QSL-Generator/internal/model"
	"github.com/shopspring/decimal"
)

// The card is full of literal LaTeX brace runs, so the template uses
// << >> delimiters instead of the default {{ }}.
//
//go:embed templates/qsl_card.tex.tmpl
var cardTemplate string

var cardTmpl = template.Must(template.New("qsl_card").Delims("<<", ">>").Parse(cardTemplate))

// Logo width defaults, as fractions of the text width.
var (
	defaultLogo1Scale = decimal.RequireFromString("0.07")
	defaultLogo2Scale = decimal.RequireFromString("0.2")
	defaultLogo3Scale = decimal.RequireFromString("0.1")
)

// Checkbox glyphs for the home/portable, QSO/SWL and PSE/TNX pairs.
const (
	boxChecked = `$\boxtimes$`
	boxEmpty   = `$\square$`
)

// cardData carries the fully prepared placeholder values: text fields
// escaped, image names validated, scales resolved, checkboxes chosen.
type cardData struct {
	Callsign     string
	OperatorName string
	QTHCity      string
	QTHState     string
	Country      string
	Grid         string
	CQZone       string
	ITUZone      string
	Email        string
	QRZURL       string

	Via              string
	ToStation        string
	TheirCall        string
	Date             string
	Time             string
	Band             string
	Mode             string
	Report           string
	PortableLocation string

	Transceiver string
	Power       string
	Antenna     string
	Satellite   string

	HomeCheck     string
	PortableCheck string
	QSOCheck      string
	SWLCheck      string
	PSECheck      string
	TNXCheck      string

	BackgroundImage string
	Logo1           string
	Logo2           string
	Logo3           string
	Logo1Scale      string
	Logo2Scale      string
	Logo3Scale      string
}

// Render substitutes the card's field values into the fixed LaTeX
// template and returns the complete document source. Every text field
// is escaped; image filenames are validated instead (see
// CheckImageName) because escaping would break file resolution.
func Render(card model.Card) (string, error) {
	data, err := newCardData(card)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := cardTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render card template: %w", err)
	}

	return buf.String(), nil
}

func newCardData(card model.Card) (*cardData, error) {
	st := card.Station
	ct := card.Contact
	stock := model.DefaultStation()

	background := orDefault(st.BackgroundImage, stock.BackgroundImage)
	logo1 := orDefault(st.Logo1, stock.Logo1)
	logo2 := orDefault(st.Logo2, stock.Logo2)
	logo3 := orDefault(st.Logo3, stock.Logo3)

	for _, name := range []string{background, logo1, logo2, logo3} {
		if err := CheckImageName(name); err != nil {
			return nil, err
		}
	}

	return &cardData{
		Callsign:     Escape(st.Callsign),
		OperatorName: Escape(st.OperatorName),
		QTHCity:      Escape(st.QTHCity),
		QTHState:     Escape(st.QTHState),
		Country:      Escape(st.Country),
		Grid:         Escape(st.Grid),
		CQZone:       Escape(st.CQZone),
		ITUZone:      Escape(st.ITUZone),
		Email:        Escape(st.Email),
		QRZURL:       Escape(st.QRZURL),

		Via:              Escape(ct.Via),
		ToStation:        Escape(ct.ToStation),
		TheirCall:        Escape(ct.TheirCall),
		Date:             Escape(ct.Date),
		Time:             Escape(ct.Time),
		Band:             Escape(ct.Band),
		Mode:             Escape(ct.Mode),
		Report:           Escape(ct.Report),
		PortableLocation: Escape(ct.PortableLocation),

		Transceiver: Escape(st.Transceiver),
		Power:       Escape(st.Power),
		Antenna:     Escape(st.Antenna),
		Satellite:   Escape(st.Satellite),

		HomeCheck:     checkbox(ct.QTH == model.QTHHome),
		PortableCheck: checkbox(ct.QTH == model.QTHPortable),
		QSOCheck:      checkbox(ct.QSL == model.QSLQSO),
		SWLCheck:      checkbox(ct.QSL == model.QSLSWL),
		PSECheck:      checkbox(ct.Request == model.QSLPse),
		TNXCheck:      checkbox(ct.Request == model.QSLTnx),

		BackgroundImage: background,
		Logo1:           logo1,
		Logo2:           logo2,
		Logo3:           logo3,
		Logo1Scale:      resolveScale(st.Logo1Scale, defaultLogo1Scale),
		Logo2Scale:      resolveScale(st.Logo2Scale, defaultLogo2Scale),
		Logo3Scale:      resolveScale(st.Logo3Scale, defaultLogo3Scale),
	}, nil
}

// CheckImageName rejects filenames that contain LaTeX-special
// characters. Image names are substituted verbatim rather than escaped
// (an escaped name would no longer match the file on disk), so the
// dangerous runes must simply not appear. Underscores are fine here:
// \includegraphics takes the name as-is, and the stock artwork uses
// them.
func CheckImageName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("image filename is empty")
	}

	if idx := strings.IndexAny(name, "\\{}%#&$~^"); idx >= 0 {
		return fmt.Errorf("image filename %q contains the LaTeX-special character %q", name, name[idx])
	}

	return nil
}

// resolveScale returns the value when it parses as a positive decimal,
// otherwise the default. Empty means "use default".
func resolveScale(value string, def decimal.Decimal) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return def.String()
	}

	d, err := decimal.NewFromString(trimmed)
	if err != nil || !d.IsPositive() {
		return def.String()
	}

	return d.String()
}

func checkbox(checked bool) string {
	if checked {
		return boxChecked
	}

	return boxEmpty
}

func orDefault(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}

	return value
}
