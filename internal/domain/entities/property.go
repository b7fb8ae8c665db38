package entities

// DefaultTimezone is assigned to properties created without one
const DefaultTimezone = "UTC"

// Property represents a lodging property
type Property struct {
	ID           string `json:"id,omitempty"`
	Name         string `json:"name" validate:"required"`
	Address      string `json:"address" validate:"required"`
	City         string `json:"city" validate:"required"`
	Country      string `json:"country" validate:"required"`
	Timezone     string `json:"timezone"`
	ContactEmail string `json:"contact_email,omitempty" validate:"omitempty,email"`
}

// ApplyDefaults fills optional fields left empty by the caller
func (p *Property) ApplyDefaults() {
	if p.Timezone == "" {
		p.Timezone = DefaultTimezone
	}
}

// RoomType represents a bookable room category of a property
type RoomType struct {
	ID          string  `json:"id,omitempty"`
	PropertyID  string  `json:"property_id" validate:"required"`
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description,omitempty"`
	MaxGuests   int     `json:"max_guests" validate:"min=1"`
	BasePrice   float64 `json:"base_price" validate:"gte=0"`
}
