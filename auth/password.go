package auth

import "golang.org/x/crypto/bcrypt"

var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("not-a-credential"), bcrypt.DefaultCost)

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// DummyHash returns a bcrypt hash of no real credential. Login compares
// against it when the username lookup misses, so a failed login costs the
// same whether or not the user exists.
func DummyHash() string {
	return string(dummyHash)
}
