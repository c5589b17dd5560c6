// Package accountrepo persists client and courier accounts.
package accountrepo

import (
	"time"

	"entrega/internal/core/domain/model/kernel"
	"entrega/internal/core/ports"

	"github.com/google/uuid"
)

// AccountDTO represents the database structure for accounts. Email is the
// login identifier and is unique across both roles.
type AccountDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"type:varchar(128)"`
	Email        string    `gorm:"type:varchar(256);uniqueIndex"`
	PasswordHash string    `gorm:"type:varchar(128)"`
	Role         string    `gorm:"type:varchar(16)"`
	CreatedAt    time.Time
}

// TableName overrides GORM's default naming to use "accounts".
func (AccountDTO) TableName() string {
	return "accounts"
}

func fromDomain(account ports.Account) AccountDTO {
	return AccountDTO{
		ID:           account.ID.Bytes(),
		Name:         account.Name,
		Email:        account.Email,
		PasswordHash: account.PasswordHash,
		Role:         string(account.Role),
		CreatedAt:    account.CreatedAt,
	}
}

func toDomain(dto AccountDTO) (ports.Account, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return ports.Account{}, err
	}

	role, err := kernel.RoleFromString(dto.Role)
	if err != nil {
		return ports.Account{}, err
	}

	return ports.Account{
		ID:           id,
		Name:         dto.Name,
		Email:        dto.Email,
		PasswordHash: dto.PasswordHash,
		Role:         role,
		CreatedAt:    dto.CreatedAt,
	}, nil
}
