package entity

// User representa un usuario de la tienda.
// El primer registro no otorga privilegios: IsAdmin siempre inicia en false
// y solo se cambia por administración externa de la base de datos.
type User struct {
	ID           int64
	Username     string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Email        string
	IsAdmin      bool
}
