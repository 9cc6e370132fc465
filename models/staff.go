package models

import "time"

type StaffJob string

const (
	JobJuniorEditor  StaffJob = "junior_editor"
	JobChiefEditor   StaffJob = "chief_editor"
	JobAdministrator StaffJob = "administrator"
	JobRetired       StaffJob = "retired"
)

func ValidStaffJob(j StaffJob) bool {
	switch j {
	case JobJuniorEditor, JobChiefEditor, JobAdministrator, JobRetired:
		return true
	}
	return false
}

// Staff is the local authorization record for an external directory user.
type Staff struct {
	ID             string    `json:"id" bson:"_id"`
	ExternalUserID string    `json:"external_user_id" bson:"external_user_id"`
	Job            StaffJob  `json:"job" bson:"job"`
	IsActive       bool      `json:"is_active" bson:"is_active"`
	CreatedAt      time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" bson:"updated_at"`
}
