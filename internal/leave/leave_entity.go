package leave

import (
	"time"
)

// Leave is one employee leave application. ID and CreatedAt are assigned by
// the store on insert and never change; every other field may be overwritten
// any number of times over the record's life.
type Leave struct {
	ID           uint      `gorm:"primaryKey"`
	EmployeeName string    `gorm:"type:varchar(100);not null"`
	Email        string    `gorm:"type:varchar(100);not null"`
	LeaveType    string    `gorm:"type:varchar(50);not null"`
	StartDate    time.Time `gorm:"type:date;not null"`
	EndDate      time.Time `gorm:"type:date;not null"`
	Reason       string    `gorm:"type:text;not null"`
	Status       string    `gorm:"type:varchar(20);not null;default:'Pending'"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}
