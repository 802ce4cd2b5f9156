package model

import "strings"

// Station holds the operator, equipment and image fields that persist
// across sessions. JSON keys match the settings file written by earlier
// releases of the generator, so existing files keep loading.
type Station struct {
	// Callsign is the station callsign printed on the card front
	Callsign string `json:"callsign"`

	// OperatorName is the operator's full name
	OperatorName string `json:"operator_name"`

	// QTHCity is the station location city
	QTHCity string `json:"qth_city"`

	// QTHState is the station location state or province
	QTHState string `json:"qth_state"`

	// Country is the station country
	Country string `json:"country"`

	// Grid is the Maidenhead grid locator
	Grid string `json:"grid"`

	// CQZone is the CQ zone number
	CQZone string `json:"cq_zone"`

	// ITUZone is the ITU zone number
	ITUZone string `json:"itu_zone"`

	// Email is the operator contact address
	Email string `json:"email"`

	// QRZURL is the operator's QRZ page
	QRZURL string `json:"qrz_url"`

	// Transceiver is the rig description
	Transceiver string `json:"transceiver"`

	// Power is the output power in watts
	Power string `json:"power"`

	// Antenna is the antenna description
	Antenna string `json:"antenna"`

	// Satellite names the satellite when working via one
	Satellite string `json:"satellite"`

	// BackgroundImage is the card front photo filename
	BackgroundImage string `json:"background_image"`

	// Logo1 is the first back-side logo filename
	Logo1 string `json:"logo1"`

	// Logo1Scale is the first logo width as a fraction of the text width
	Logo1Scale string `json:"logo1_scale"`

	// Logo2 is the second back-side logo filename
	Logo2 string `json:"logo2"`

	// Logo2Scale is the second logo width as a fraction of the text width
	Logo2Scale string `json:"logo2_scale"`

	// Logo3 is the third back-side logo filename
	Logo3 string `json:"logo3"`

	// Logo3Scale is the third logo width as a fraction of the text width
	Logo3Scale string `json:"logo3_scale"`
}

// DefaultStation returns a Station with the built-in defaults used on
// first run, before any settings file exists.
func DefaultStation() Station {
	return Station{
		Callsign:        "EA7HQL",
		OperatorName:    "Andrés Ortiz",
		QTHCity:         "Torremolinos",
		QTHState:        "Málaga",
		Country:         "SPAIN",
		Grid:            "IM76SP",
		CQZone:          "14",
		ITUZone:         "37",
		Email:           "ea7hql@gmail.com",
		QRZURL:          "https://www.qrz.com",
		Transceiver:     "",
		Power:           "",
		Antenna:         "",
		Satellite:       "",
		BackgroundImage: "foto_antenas.jpg",
		Logo1:           "logo_ure_negro.png",
		Logo1Scale:      "0.07",
		Logo2:           "qrz_com.png",
		Logo2Scale:      "0.2",
		Logo3:           "lotw.png",
		Logo3Scale:      "0.1",
	}
}

// Images returns the image filenames the rendered card references,
// background first. Empty fields fall back to the same defaults the
// card itself uses, so staging and rendering always agree.
func (s Station) Images() []string {
	d := DefaultStation()

	pick := func(v, def string) string {
		if strings.TrimSpace(v) == "" {
			return def
		}

		return v
	}

	return []string{
		pick(s.BackgroundImage, d.BackgroundImage),
		pick(s.Logo1, d.Logo1),
		pick(s.Logo2, d.Logo2),
		pick(s.Logo3, d.Logo3),
	}
}
