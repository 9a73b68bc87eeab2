package aqua

import (
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"liyu1981.xyz/aquarium-service/pkg/common"
	"liyu1981.xyz/aquarium-service/pkg/models"
)

func fishLogger() *zap.Logger {
	return common.GetLoggerWith(
		common.LoggerNameAquaCore,
		zap.String(common.LoggerFieldAquaCategory, common.LoggerCategoryFish),
	)
}

func (a *Aqua) listFish() ([]models.Fish, error) {
	var fish []models.Fish
	err := a.Db.Conn.Order("id asc").Find(&fish).Error
	return common.NonNil(fish), err
}

func (a *Aqua) createFish(input *models.Fish) (*models.Fish, error) {
	if input == nil || strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Species) == "" {
		return nil, validationError("name and species are required")
	}
	if input.AquariumID == 0 {
		return nil, validationError("aquariumId is required")
	}

	logger := fishLogger()

	fish := models.Fish{
		Name:       input.Name,
		Species:    input.Species,
		AquariumID: input.AquariumID,
	}

	logger.Info("Received fish", zap.Reflect("fish", fish))

	err := a.Db.Conn.Transaction(func(tx *gorm.DB) error {
		if _, err := findAquarium(tx, input.AquariumID); err != nil {
			return err
		}
		return tx.Create(&fish).Error
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Created fish", zap.Reflect("fish", fish))

	return &fish, nil
}

func (a *Aqua) deleteFish(id uint) error {
	res := a.Db.Conn.Delete(&models.Fish{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return notFoundError("fish %d", id)
	}

	fishLogger().Info("Deleted fish", zap.Uint("id", id))
	return nil
}

type IFishImpl struct {
	aqua *Aqua
}

func (f *IFishImpl) ListFish() ([]models.Fish, error) {
	return f.aqua.listFish()
}

func (f *IFishImpl) CreateFish(input *models.Fish) (*models.Fish, error) {
	return f.aqua.createFish(input)
}

func (f *IFishImpl) DeleteFish(id uint) error {
	return f.aqua.deleteFish(id)
}

func (a *Aqua) GetIFish() IFish {
	return &IFishImpl{aqua: a}
}
