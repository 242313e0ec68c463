package resource

import (
	"errors"
	"fmt"

	"github.com/bizdesk/backend/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// HashPassword bcrypt-hashes a plaintext password field
func HashPassword(v any) (any, error) {
	plain, ok := v.(string)
	if !ok || plain == "" {
		return nil, shared.ErrInvalidInput.Wrap(fmt.Errorf("password must be a non-empty string"))
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return nil, shared.ErrInvalidInput.Wrap(err)
	}
	if err != nil {
		return nil, err
	}
	return string(hash), nil
}
