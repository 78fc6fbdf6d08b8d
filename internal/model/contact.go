// Package model contains the gorm models persisted by the application
package model

// Contact is a single phonebook entry. The collection is global: there is
// no owner column, every authenticated or anonymous caller sees the same
// records.
type Contact struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"not null" json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Favorite bool   `gorm:"default:false" json:"favorite"`
}
