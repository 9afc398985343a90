package services

import (
	"time"

	"github.com/contractflow/contractflow/internal/apperr"
	"github.com/contractflow/contractflow/internal/dto"
	"github.com/contractflow/contractflow/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{db: db, now: time.Now}
}

func (s *ProductService) Create(actorID uuid.UUID, req *dto.CreateProductRequest) (*models.Product, error) {
	now := s.now().UTC()
	product := models.Product{
		ID:          uuid.New(),
		APIName:     req.APIName,
		Description: req.Description,
		Audit:       models.Audit{CreatedAt: now, UpdatedAt: now},
		Operator:    models.Operator{CreatedBy: &actorID, UpdatedBy: &actorID},
	}
	if err := models.Validate(&product); err != nil {
		return nil, apperr.New(apperr.KindInvalidValue, err.Error())
	}
	if err := s.db.Create(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *ProductService) Update(actorID, id uuid.UUID, req *dto.UpdateProductRequest) (*models.Product, error) {
	var product models.Product
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := loadLive(tx, &product, id, "Product not found"); err != nil {
			return err
		}
		if req.APIName != nil {
			product.APIName = *req.APIName
		}
		if req.Description != nil {
			product.Description = *req.Description
		}
		if err := models.Validate(&product); err != nil {
			return apperr.New(apperr.KindInvalidValue, err.Error())
		}
		product.UpdatedBy = &actorID
		product.UpdatedAt = s.now().UTC()
		return tx.Save(&product).Error
	})
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *ProductService) Archive(actorID, id uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := loadLive(tx, &product, id, "Product not found"); err != nil {
			return err
		}
		return tx.Model(&product).Updates(map[string]interface{}{
			"is_archived": true,
			"updated_by":  actorID,
			"updated_at":  s.now().UTC(),
		}).Error
	})
}

func (s *ProductService) GetByID(id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := loadLive(s.db, &product, id, "Product not found"); err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *ProductService) List() ([]models.Product, error) {
	var products []models.Product
	err := s.db.Scopes(models.NotArchived).Order("api_name").Find(&products).Error
	return products, err
}
