package model

import "fmt"

// QTHType says whether the QSO was made from the home station or a
// portable location.
type QTHType int

const (
	QTHHome QTHType = iota
	QTHPortable
)

func (t QTHType) String() string {
	switch t {
	case QTHPortable:
		return "portable"
	default:
		return "home"
	}
}

// ParseQTHType converts a string to a QTHType.
func ParseQTHType(s string) (QTHType, error) {
	switch s {
	case "home":
		return QTHHome, nil
	case "portable":
		return QTHPortable, nil
	default:
		return QTHHome, fmt.Errorf("invalid QTH type %q (want home or portable)", s)
	}
}

// Set implements pflag.Value.
func (t *QTHType) Set(s string) error {
	v, err := ParseQTHType(s)
	if err != nil {
		return err
	}

	*t = v

	return nil
}

// Type implements pflag.Value.
func (t *QTHType) Type() string { return "qth" }

// QSLType says whether the card confirms a two-way QSO or an SWL report.
type QSLType int

const (
	QSLQSO QSLType = iota
	QSLSWL
)

func (t QSLType) String() string {
	switch t {
	case QSLSWL:
		return "swl"
	default:
		return "qso"
	}
}

// ParseQSLType converts a string to a QSLType.
func ParseQSLType(s string) (QSLType, error) {
	switch s {
	case "qso":
		return QSLQSO, nil
	case "swl":
		return QSLSWL, nil
	default:
		return QSLQSO, fmt.Errorf("invalid QSL type %q (want qso or swl)", s)
	}
}

// Set implements pflag.Value.
func (t *QSLType) Set(s string) error {
	v, err := ParseQSLType(s)
	if err != nil {
		return err
	}

	*t = v

	return nil
}

// Type implements pflag.Value.
func (t *QSLType) Type() string { return "qsl" }

// QSLRequest says whether a return card is requested (PSE) or this card
// thanks for one already received (TNX).
type QSLRequest int

const (
	QSLTnx QSLRequest = iota
	QSLPse
)

func (r QSLRequest) String() string {
	switch r {
	case QSLPse:
		return "pse"
	default:
		return "tnx"
	}
}

// ParseQSLRequest converts a string to a QSLRequest.
func ParseQSLRequest(s string) (QSLRequest, error) {
	switch s {
	case "tnx":
		return QSLTnx, nil
	case "pse":
		return QSLPse, nil
	default:
		return QSLTnx, fmt.Errorf("invalid QSL request %q (want pse or tnx)", s)
	}
}

// Set implements pflag.Value.
func (r *QSLRequest) Set(s string) error {
	v, err := ParseQSLRequest(s)
	if err != nil {
		return err
	}

	*r = v

	return nil
}

// Type implements pflag.Value.
func (r *QSLRequest) Type() string { return "request" }

// Contact holds the per-QSO fields. They are never persisted; a new
// card starts from DefaultContact.
type Contact struct {
	// Via is the QSL route (manager callsign or bureau note)
	Via string

	// ToStation is the station the card is addressed to
	ToStation string

	// TheirCall is the counterpart callsign
	TheirCall string

	// Date is the QSO date as written on the card (D/M/Y)
	Date string

	// Time is the QSO time in UTC
	Time string

	// Band is the band, e.g. "20m"
	Band string

	// Mode is the mode, e.g. "SSB"
	Mode string

	// Report is the signal report, e.g. "59"
	Report string

	// QTH marks the home/portable checkbox pair
	QTH QTHType

	// PortableLocation is the location used when QTH is portable
	PortableLocation string

	// QSL marks the QSO/SWL checkbox pair
	QSL QSLType

	// Request marks the PSE/TNX checkbox pair
	Request QSLRequest
}

// DefaultContact returns an empty contact with the checkbox fields at
// their home/qso/tnx defaults.
func DefaultContact() Contact {
	return Contact{
		QTH:     QTHHome,
		QSL:     QSLQSO,
		Request: QSLTnx,
	}
}
