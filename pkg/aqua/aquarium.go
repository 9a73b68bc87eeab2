package aqua

import (
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"liyu1981.xyz/aquarium-service/pkg/common"
	"liyu1981.xyz/aquarium-service/pkg/models"
)

func aquariumLogger() *zap.Logger {
	return common.GetLoggerWith(
		common.LoggerNameAquaCore,
		zap.String(common.LoggerFieldAquaCategory, common.LoggerCategoryAquarium),
	)
}

func orderByID(tx *gorm.DB) *gorm.DB {
	return tx.Order("id asc")
}

func (a *Aqua) listAquariums() ([]models.Aquarium, error) {
	var aquariums []models.Aquarium
	err := a.Db.Conn.
		Preload("Parametri", orderByID).
		Order("id asc").
		Find(&aquariums).Error
	if err != nil {
		return nil, err
	}

	return common.Mapper(common.NonNil(aquariums), func(aquarium models.Aquarium) models.Aquarium {
		aquarium.Parametri = common.NonNil(aquarium.Parametri)
		return aquarium
	}), nil
}

func (a *Aqua) createAquarium(input *models.Aquarium) (*models.Aquarium, error) {
	if input == nil || strings.TrimSpace(input.Name) == "" {
		return nil, validationError("name is required")
	}
	if input.Volume <= 0 {
		return nil, validationError("volume must be positive")
	}

	logger := aquariumLogger()

	aquarium := models.Aquarium{
		Name:   input.Name,
		Volume: input.Volume,
	}

	logger.Info("Received aquarium", zap.Reflect("aquarium", aquarium))

	if err := a.Db.Conn.Omit("Parametri").Create(&aquarium).Error; err != nil {
		return nil, err
	}
	aquarium.Parametri = []models.Measurement{}

	logger.Info("Created aquarium", zap.Uint("id", aquarium.ID))

	return &aquarium, nil
}

func findAquarium(tx *gorm.DB, id uint) (*models.Aquarium, error) {
	var aquarium models.Aquarium
	err := tx.Select("id").First(&aquarium, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFoundError("aquarium %d", id)
	}
	if err != nil {
		return nil, err
	}
	return &aquarium, nil
}

func (a *Aqua) deleteAquarium(id uint) error {
	logger := aquariumLogger()

	var orphaned, removedFish int64

	err := a.Db.Conn.Transaction(func(tx *gorm.DB) error {
		if _, err := findAquarium(tx, id); err != nil {
			return err
		}

		if err := tx.Where("aquarium_id = ?", id).Delete(&models.Measurement{}).Error; err != nil {
			return err
		}

		switch a.OrphanPolicy {
		case OrphanPolicyCascade:
			res := tx.Where("aquarium_id = ?", id).Delete(&models.Fish{})
			if res.Error != nil {
				return res.Error
			}
			removedFish = res.RowsAffected
		default:
			if err := tx.Model(&models.Fish{}).Where("aquarium_id = ?", id).Count(&orphaned).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&models.Aquarium{}, id).Error
	})
	if err != nil {
		return err
	}

	logger.Info("Deleted aquarium",
		zap.Uint("id", id),
		zap.Int64("fish_removed", removedFish),
		zap.Int64("fish_orphaned", orphaned))

	if orphaned > 0 {
		logger.Warn("Fish left referencing a deleted aquarium", zap.Uint("id", id), zap.Int64("count", orphaned))
	}

	return nil
}

type IAquariumImpl struct {
	aqua *Aqua
}

func (ia *IAquariumImpl) ListAquariums() ([]models.Aquarium, error) {
	return ia.aqua.listAquariums()
}

func (ia *IAquariumImpl) CreateAquarium(input *models.Aquarium) (*models.Aquarium, error) {
	return ia.aqua.createAquarium(input)
}

func (ia *IAquariumImpl) DeleteAquarium(id uint) error {
	return ia.aqua.deleteAquarium(id)
}

func (a *Aqua) GetIAquarium() IAquarium {
	return &IAquariumImpl{aqua: a}
}
