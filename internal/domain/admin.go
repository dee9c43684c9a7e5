package domain

import "time"

type AdminLevel int32

const (
	AdminLevelCommon    AdminLevel = 1
	AdminLevelModerator AdminLevel = 2
	AdminLevelManager   AdminLevel = 3
)

type Admin struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Level        AdminLevel `json:"level"`
	CreatedOn    time.Time  `json:"created_on"`
	UpdatedOn    time.Time  `json:"updated_on"`
}
