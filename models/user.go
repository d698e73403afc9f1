package models

type User struct {
	Base
	Name     string `json:"name"`
	Email    string `gorm:"size:191;uniqueIndex" json:"email"`
	Password []byte `json:"-"`
}

func (User) TableName() string {
	return "users"
}
