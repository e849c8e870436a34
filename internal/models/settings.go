package models

import "time"

// Settings is the singleton configuration record stored at the settings
// path. It is seeded with defaults the first time it is read while absent.
type Settings struct {
	WhatsAppNumber string    `json:"whatsappNumber"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type UpdateSettingsRequest struct {
	WhatsAppNumber *string `json:"whatsappNumber,omitempty" validate:"omitempty,numeric,min=10,max=15"`
}

func (r *UpdateSettingsRequest) ApplyTo(s *Settings) {
	if r.WhatsAppNumber != nil {
		s.WhatsAppNumber = *r.WhatsAppNumber
	}
}
