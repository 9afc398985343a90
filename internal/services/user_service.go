package services

import (
	"fmt"
	"time"

	"github.com/contractflow/contractflow/internal/apperr"
	"github.com/contractflow/contractflow/internal/dto"
	"github.com/contractflow/contractflow/internal/models"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db, now: time.Now}
}

func (s *UserService) Update(actorID, id uuid.UUID, req *dto.UpdateUserRequest) (*models.User, error) {
	var user models.User
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := loadLive(tx, &user, id, "User not found"); err != nil {
			return err
		}
		if req.Email != nil {
			user.Email = *req.Email
		}
		if req.FullName != nil {
			user.FullName = *req.FullName
		}
		if req.Role != nil {
			user.Role = *req.Role
		}
		if req.Password != nil {
			if len(*req.Password) < 8 {
				return apperr.NewField(apperr.KindInvalidValue, "password", "password must be at least 8 characters")
			}
			hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
			if err != nil {
				return fmt.Errorf("failed to hash password: %w", err)
			}
			user.PasswordHash = string(hash)
		}
		if err := models.Validate(&user); err != nil {
			return apperr.New(apperr.KindInvalidValue, err.Error())
		}
		user.UpdatedBy = &actorID
		user.UpdatedAt = s.now().UTC()
		return tx.Save(&user).Error
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserService) Archive(actorID, id uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := loadLive(tx, &user, id, "User not found"); err != nil {
			return err
		}
		return tx.Model(&user).Updates(map[string]interface{}{
			"is_archived": true,
			"updated_by":  actorID,
			"updated_at":  s.now().UTC(),
		}).Error
	})
}

func (s *UserService) GetByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := loadLive(s.db, &user, id, "User not found"); err != nil {
		return nil, err
	}
	return &user, nil
}

// ListContracts returns the live contracts a user created.
func (s *UserService) ListContracts(id uuid.UUID) ([]models.Contract, error) {
	var user models.User
	if err := loadLive(s.db, &user, id, "User not found"); err != nil {
		return nil, err
	}
	var contracts []models.Contract
	err := s.db.Scopes(models.NotArchived).
		Where("created_by = ?", user.ID).
		Order("start_date").
		Find(&contracts).Error
	return contracts, err
}

func (s *UserService) List() ([]models.User, error) {
	var users []models.User
	err := s.db.Scopes(models.NotArchived).Order("full_name").Find(&users).Error
	return users, err
}
