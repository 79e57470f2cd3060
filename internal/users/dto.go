package users

import "github.com/pearstand/pear-backend/pkg/db/models"

// UserDTO is the wire representation of a staff account.
type UserDTO struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// FromModel converts a persisted user to its wire shape.
func FromModel(user *models.User) UserDTO {
	if user == nil {
		return UserDTO{}
	}
	return UserDTO{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}
}

// CreateUserDTO carries the fields needed to insert a staff account. The
// password arrives already hashed.
type CreateUserDTO struct {
	Name         string
	Email        string
	PasswordHash string
}

// ToModel maps the DTO onto a fresh user model.
func (d CreateUserDTO) ToModel() *models.User {
	return &models.User{
		Name:         d.Name,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
	}
}
