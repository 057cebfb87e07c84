package repo

import "github.com/rogerio-castellano/ims-backend/internal/models"

type UserRepository interface {
	CreateUser(user models.User) (models.User, error)
	GetUserByUsername(username string) (models.User, error)
}
