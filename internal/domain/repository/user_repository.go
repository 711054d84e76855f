package repository

import "github.com/jcastell/tienda-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	// GetByUsername devuelve (nil, nil) si el usuario no existe.
	GetByUsername(username string) (*entity.User, error)
	// Create persiste el usuario y asigna user.ID.
	// Devuelve domain.ErrUsernameTaken si el constraint único dispara.
	Create(user *entity.User) error
}
