package model

// Card is the full record a QSL card is generated from: the persisted
// station half plus the ephemeral contact half.
type Card struct {
	Station Station
	Contact Contact
}

// NewCard pairs a station with an empty contact.
func NewCard(station Station) Card {
	return Card{
		Station: station,
		Contact: DefaultContact(),
	}
}

// ClearContact resets the per-QSO fields to their defaults and leaves
// every station and equipment field untouched.
func (c *Card) ClearContact() {
	c.Contact = DefaultContact()
}
