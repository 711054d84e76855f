package auth

import (
	"context"

	"github.com/jcastell/tienda-api/internal/application/dto"
	"github.com/jcastell/tienda-api/internal/domain"
	"github.com/jcastell/tienda-api/internal/domain/entity"
	"github.com/jcastell/tienda-api/internal/domain/repository"
	"github.com/jcastell/tienda-api/pkg/password"
)

// TxRunner ejecuta fn dentro de una transacción, con repositorios atados a ella.
// Commit solo si fn devuelve nil; rollback en cualquier otro caso.
type TxRunner interface {
	Run(ctx context.Context, fn func(users repository.UserRepository, products repository.ProductRepository) error) error
}

// AuthUseCase casos de uso de autenticación: registro y login.
type AuthUseCase struct {
	users repository.UserRepository // lecturas fuera de transacción (login)
	tx    TxRunner
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(users repository.UserRepository, tx TxRunner) *AuthUseCase {
	return &AuthUseCase{users: users, tx: tx}
}

// Register crea un usuario: verifica que el username esté libre, hashea el
// password con bcrypt y persiste con is_admin=false, todo en una transacción.
// El pre-chequeo no es atómico frente a registros concurrentes; el constraint
// único de la tabla es el respaldo y también termina en ErrUsernameTaken.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.AuthRequest) (*dto.UserResponse, error) {
	var out *dto.UserResponse
	err := uc.tx.Run(ctx, func(users repository.UserRepository, _ repository.ProductRepository) error {
		existing, err := users.GetByUsername(in.Username)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrUsernameTaken
		}
		hash, err := password.Hash(in.Password)
		if err != nil {
			return err
		}
		user := &entity.User{
			Username:     in.Username,
			PasswordHash: hash,
			Email:        in.Email,
			IsAdmin:      false,
		}
		if err := users.Create(user); err != nil {
			return err
		}
		out = toUserResponse(user)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Login verifica username/password. Usuario inexistente y password incorrecto
// devuelven el mismo ErrInvalidCredentials para no revelar cuál de los dos fue.
func (uc *AuthUseCase) Login(in dto.AuthRequest) (*dto.UserResponse, error) {
	user, err := uc.users.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if !password.Verify(in.Password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}
	return toUserResponse(user), nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:       u.ID,
		Username: u.Username,
		IsAdmin:  u.IsAdmin,
	}
}
