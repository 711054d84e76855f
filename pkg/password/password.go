// Package password encapsula el hash y la verificación de contraseñas con bcrypt.
package password

import "golang.org/x/crypto/bcrypt"

// Hash genera el digest bcrypt (con salt, no determinista) de una contraseña.
func Hash(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify compara una contraseña contra un digest bcrypt.
// Cualquier error (mismatch o digest malformado) cuenta como verificación
// fallida, nunca como error fatal.
func Verify(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
