package models

import "time"

// Setting is a key/value row for back-office configuration. Today the
// only key in use is whatsapp_number.
type Setting struct {
	Key       string    `gorm:"column:key;primaryKey"`
	Value     string    `gorm:"column:value;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// SettingWhatsAppNumber is the digits-only destination for checkout links.
const SettingWhatsAppNumber = "whatsapp_number"
