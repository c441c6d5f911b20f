package models

// Field is one named text part of an outbound payload
type Field struct {
	Name  string
	Value string
}

// OutboundPayload is the submission body for one collection point.
// Coordinates and items are already string-coerced; Image is nil when no
// photo is staged.
type OutboundPayload struct {
	Name      string
	Email     string
	WhatsApp  string
	Latitude  string
	Longitude string
	City      string
	State     string
	Items     string // comma-joined category ids
	Image     *ImageFile
}

// Fields returns the text parts in wire order
func (p *OutboundPayload) Fields() []Field {
	return []Field{
		{"name", p.Name},
		{"email", p.Email},
		{"whatsapp", p.WhatsApp},
		{"latitude", p.Latitude},
		{"longitude", p.Longitude},
		{"city", p.City},
		{"state", p.State},
		{"items", p.Items},
	}
}
