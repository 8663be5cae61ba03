package auth

import "golang.org/x/crypto/bcrypt"

type PasswordHelper struct {
	cost int
}

func NewPasswordHelper() *PasswordHelper {
	return &PasswordHelper{cost: bcrypt.DefaultCost}
}

func (p *PasswordHelper) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), p.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (p *PasswordHelper) Verify(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
