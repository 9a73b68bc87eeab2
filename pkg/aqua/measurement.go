package aqua

import (
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"liyu1981.xyz/aquarium-service/pkg/common"
	"liyu1981.xyz/aquarium-service/pkg/models"
)

func listMeasurements(tx *gorm.DB, aquariumID uint) ([]models.Measurement, error) {
	var measurements []models.Measurement
	err := tx.
		Where("aquarium_id = ?", aquariumID).
		Order("id asc").
		Find(&measurements).Error
	return common.NonNil(measurements), err
}

func (a *Aqua) addMeasurement(aquariumID uint, input *models.Measurement) ([]models.Measurement, error) {
	if input == nil || strings.TrimSpace(string(input.Tipo)) == "" {
		return nil, validationError("tipo is required")
	}
	if !input.Tipo.Valid() {
		return nil, validationError("unknown tipo %q", input.Tipo)
	}
	if input.Data.IsZero() {
		return nil, validationError("data is required")
	}

	logger := common.GetLoggerWith(
		common.LoggerNameAquaCore,
		zap.String(common.LoggerFieldAquaCategory, common.LoggerCategoryMeasure),
	)

	measurement := models.Measurement{
		AquariumID: aquariumID,
		Tipo:       input.Tipo,
		Valore:     input.Valore,
		Data:       input.Data,
	}

	logger.Info("Received measurement for aquarium", zap.Reflect("measurement", measurement))

	var measurements []models.Measurement
	err := a.Db.Conn.Transaction(func(tx *gorm.DB) error {
		if _, err := findAquarium(tx, aquariumID); err != nil {
			return err
		}
		if err := tx.Create(&measurement).Error; err != nil {
			return err
		}

		var err error
		measurements, err = listMeasurements(tx, aquariumID)
		return err
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Stored measurement for aquarium",
		zap.Uint("aquarium_id", aquariumID),
		zap.Int("count", len(measurements)))

	return measurements, nil
}

func (a *Aqua) listAquariumMeasurements(aquariumID uint) ([]models.Measurement, error) {
	var measurements []models.Measurement
	err := a.Db.Conn.Transaction(func(tx *gorm.DB) error {
		if _, err := findAquarium(tx, aquariumID); err != nil {
			return err
		}

		var err error
		measurements, err = listMeasurements(tx, aquariumID)
		return err
	})
	return measurements, err
}

type IMeasurementImpl struct {
	aqua *Aqua
}

func (im *IMeasurementImpl) AddMeasurement(aquariumID uint, input *models.Measurement) ([]models.Measurement, error) {
	return im.aqua.addMeasurement(aquariumID, input)
}

func (im *IMeasurementImpl) ListMeasurements(aquariumID uint) ([]models.Measurement, error) {
	return im.aqua.listAquariumMeasurements(aquariumID)
}

func (a *Aqua) GetIMeasurement() IMeasurement {
	return &IMeasurementImpl{aqua: a}
}
