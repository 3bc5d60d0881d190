package model

import (
	"time"

	"backoffice/internal/domain/entity"
)

// SettingsSingletonID is the primary key of the only settings row.
const SettingsSingletonID = 1

// SettingsModel is the GORM-specific struct for the 'store_settings' table.
// Each tab is stored as a JSON document.
type SettingsModel struct {
	ID            int                         `gorm:"primary_key"`
	General       entity.GeneralSettings      `gorm:"type:jsonb;serializer:json;not null"`
	Company       entity.CompanySettings      `gorm:"type:jsonb;serializer:json;not null"`
	Notifications entity.NotificationSettings `gorm:"type:jsonb;serializer:json;not null"`
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (SettingsModel) TableName() string {
	return "store_settings"
}
