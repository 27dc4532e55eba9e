package iot

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"liyu1981.xyz/edms-report-service/pkg/common"
	"liyu1981.xyz/edms-report-service/pkg/models"
)

func (i *IOT) resolveOrCreateDevice(tx *gorm.DB, identifier string) (*models.Device, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameIOTCore,
		zap.String(common.LoggerFieldIOTCategory, common.LoggerCategoryIOTDevice),
	)

	now := time.Now().UTC()
	candidate := models.Device{
		Ident:       identifier,
		DateCreated: now,
		DateUpdated: now,
	}

	// a concurrent first report for the same identifier makes this a no-op
	result := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "ident"}},
		DoNothing: true,
	}).Create(&candidate)
	if result.Error != nil {
		return nil, fmt.Errorf("create device %s: %w", identifier, result.Error)
	}

	var device models.Device
	if err := tx.First(&device, "ident = ?", identifier).Error; err != nil {
		return nil, fmt.Errorf("load device %s: %w", identifier, err)
	}

	if result.RowsAffected > 0 {
		logger.Info("Created device", zap.String("ident", identifier), zap.Uint("id", device.ID))
	}

	return &device, nil
}

// advanceDeviceDate moves column forward to timestamp, never backwards.
func advanceDeviceDate(tx *gorm.DB, deviceID uint, column string, timestamp time.Time) (bool, error) {
	timestamp = timestamp.UTC()
	result := tx.Model(&models.Device{}).
		Where(fmt.Sprintf("id = ? AND (%[1]s IS NULL OR %[1]s < ?)", column), deviceID, timestamp).
		Update(column, timestamp)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (i *IOT) touchSeen(tx *gorm.DB, device *models.Device, timestamp time.Time) error {
	advanced, err := advanceDeviceDate(tx, device.ID, "date_seen", timestamp)
	if err != nil {
		return fmt.Errorf("advance date_seen of %s: %w", device.Ident, err)
	}
	if advanced {
		seen := timestamp.UTC()
		device.DateSeen = &seen
	}
	return nil
}

func (i *IOT) touchUpdated(tx *gorm.DB, device *models.Device, timestamp time.Time) error {
	advanced, err := advanceDeviceDate(tx, device.ID, "date_updated", timestamp)
	if err != nil {
		return fmt.Errorf("advance date_updated of %s: %w", device.Ident, err)
	}
	if advanced {
		device.DateUpdated = timestamp.UTC()
	}
	return nil
}

func (i *IOT) getDevice(identifier string) (*models.Device, error) {
	var device models.Device
	err := i.Db.Conn.Preload("Group").First(&device, "ident = ?", identifier).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrDeviceNotFound
	}
	if err != nil {
		return nil, err
	}
	return &device, nil
}

type IDeviceImpl struct {
	iot *IOT
}

func (id *IDeviceImpl) ResolveOrCreate(tx *gorm.DB, identifier string) (*models.Device, error) {
	return id.iot.resolveOrCreateDevice(tx, identifier)
}

func (id *IDeviceImpl) TouchSeen(tx *gorm.DB, device *models.Device, timestamp time.Time) error {
	return id.iot.touchSeen(tx, device, timestamp)
}

func (id *IDeviceImpl) TouchUpdated(tx *gorm.DB, device *models.Device, timestamp time.Time) error {
	return id.iot.touchUpdated(tx, device, timestamp)
}

func (id *IDeviceImpl) GetDevice(identifier string) (*models.Device, error) {
	return id.iot.getDevice(identifier)
}

func (i *IOT) GetIDevice() IDevice {
	return &IDeviceImpl{iot: i}
}
