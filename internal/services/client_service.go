package services

import (
	"time"

	"github.com/contractflow/contractflow/internal/apperr"
	"github.com/contractflow/contractflow/internal/dto"
	"github.com/contractflow/contractflow/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClientService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewClientService(db *gorm.DB) *ClientService {
	return &ClientService{db: db, now: time.Now}
}

func (s *ClientService) Create(actorID uuid.UUID, req *dto.CreateClientRequest) (*models.Client, error) {
	now := s.now().UTC()
	client := models.Client{
		ID:          uuid.New(),
		CompanyName: req.CompanyName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
		Audit:       models.Audit{CreatedAt: now, UpdatedAt: now},
		Operator:    models.Operator{CreatedBy: &actorID, UpdatedBy: &actorID},
	}
	if err := models.Validate(&client); err != nil {
		return nil, apperr.New(apperr.KindInvalidValue, err.Error())
	}
	if err := s.db.Create(&client).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

func (s *ClientService) Update(actorID, id uuid.UUID, req *dto.UpdateClientRequest) (*models.Client, error) {
	var client models.Client
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := loadLive(tx, &client, id, "Client not found"); err != nil {
			return err
		}
		if req.CompanyName != nil {
			client.CompanyName = *req.CompanyName
		}
		if req.Email != nil {
			client.Email = *req.Email
		}
		if req.PhoneNumber != nil {
			client.PhoneNumber = *req.PhoneNumber
		}
		if req.Address != nil {
			client.Address = *req.Address
		}
		if err := models.Validate(&client); err != nil {
			return apperr.New(apperr.KindInvalidValue, err.Error())
		}
		client.UpdatedBy = &actorID
		client.UpdatedAt = s.now().UTC()
		return tx.Save(&client).Error
	})
	if err != nil {
		return nil, err
	}
	return &client, nil
}

func (s *ClientService) Archive(actorID, id uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var client models.Client
		if err := loadLive(tx, &client, id, "Client not found"); err != nil {
			return err
		}
		return tx.Model(&client).Updates(map[string]interface{}{
			"is_archived": true,
			"updated_by":  actorID,
			"updated_at":  s.now().UTC(),
		}).Error
	})
}

func (s *ClientService) GetByID(id uuid.UUID) (*models.Client, error) {
	var client models.Client
	if err := loadLive(s.db, &client, id, "Client not found"); err != nil {
		return nil, err
	}
	return &client, nil
}

func (s *ClientService) List() ([]models.Client, error) {
	var clients []models.Client
	err := s.db.Scopes(models.NotArchived).Order("company_name").Find(&clients).Error
	return clients, err
}
