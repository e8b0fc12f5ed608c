package repository

// User is a signup record. Password holds the value exactly as submitted.
type User struct {
	Username string `gorm:"column:username;type:varchar(255);uniqueIndex;not null"`
	Email    string `gorm:"column:email;type:varchar(255);uniqueIndex;not null"`
	Password string `gorm:"column:password;type:varchar(255);not null"`
}

func (User) TableName() string {
	return "users"
}
