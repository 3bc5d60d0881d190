package model

import "time"

// SessionModel is the GORM-specific struct for the 'console_sessions' table.
// One row per browser session holding the API token pair and the login flag.
type SessionModel struct {
	ID           string `gorm:"type:varchar(64);primary_key"`
	AccessToken  string `gorm:"type:text;not null;default:''"`
	RefreshToken string `gorm:"type:text;not null;default:''"`
	LoggedIn     bool   `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (SessionModel) TableName() string {
	return "console_sessions"
}
