package entities

// AvailabilitySearch is an availability query for a property
type AvailabilitySearch struct {
	PropertyID string `json:"property_id" validate:"required"`
	CheckIn    Date   `json:"check_in"`
	CheckOut   Date   `json:"check_out"`
	Guests     int    `json:"guests" validate:"min=1"`
}

// StayDates returns the requested check-in and check-out
func (s *AvailabilitySearch) StayDates() (Date, Date) {
	return s.CheckIn, s.CheckOut
}

// AvailabilityResultItem describes one room type in a search result
type AvailabilityResultItem struct {
	RoomTypeID   string  `json:"room_type_id"`
	Name         string  `json:"name"`
	Description  string  `json:"description,omitempty"`
	MaxGuests    int     `json:"max_guests"`
	NightlyPrice float64 `json:"nightly_price"`
	Available    bool    `json:"available"`
}

// AvailabilityResult is the response to an availability search
type AvailabilityResult struct {
	Items []AvailabilityResultItem `json:"items"`
}
