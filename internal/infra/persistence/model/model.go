// Package model contains the GORM table mappings.
package model

// All lists every table mapping, in migration order.
func All() []any {
	return []any{
		&SessionModel{},
		&SettingsModel{},
	}
}
