package repoargs

import "github.com/fsdevblog/jalsa-khata/internal/domain"

type CreateUser struct {
	Email             string
	EncryptedPassword string
	Role              domain.UserRole
}
