package users

import "time"

// User es la cuenta de un dueño de mascotas.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
