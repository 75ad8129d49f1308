package models

import "time"

// TimestampLayout is the rendering format for every timestamp in API responses.
const TimestampLayout = "2006-01-02 15:04:05"

type User struct {
	UserID           uint      `gorm:"column:user_id;primaryKey;autoIncrement" json:"user_id"`
	FName            string    `gorm:"column:fname;size:50;not null" json:"fname"`
	LName            string    `gorm:"column:lname;size:50" json:"lname"`
	Email            string    `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Password         string    `gorm:"size:255;not null" json:"-"` // bcrypt hash, never serialized
	RegistrationDate time.Time `gorm:"autoCreateTime" json:"registration_date"`

	CartItems []Cart  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Orders    []Order `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// UserResponse is the wire shape of a user. The password hash never appears.
type UserResponse struct {
	UserID           uint   `json:"user_id"`
	FName            string `json:"fname"`
	LName            string `json:"lname"`
	Email            string `json:"email"`
	RegistrationDate string `json:"registration_date"`
}

func (u User) Response() UserResponse {
	return UserResponse{
		UserID:           u.UserID,
		FName:            u.FName,
		LName:            u.LName,
		Email:            u.Email,
		RegistrationDate: u.RegistrationDate.Format(TimestampLayout),
	}
}
