package services

import (
	"errors"

	"github.com/contractflow/contractflow/internal/apperr"
	"github.com/contractflow/contractflow/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// loadLive fetches a non-archived row by id into dest. Missing and archived
// rows are indistinguishable to callers: both are a NotFound.
func loadLive(db *gorm.DB, dest interface{}, id uuid.UUID, notFoundMsg string) error {
	if err := db.Scopes(models.NotArchived).First(dest, "id = ?", id).Error; err != nil {
		return liveErr(err, notFoundMsg)
	}
	return nil
}

func liveErr(err error, notFoundMsg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.New(apperr.KindNotFound, notFoundMsg)
	}
	return err
}
