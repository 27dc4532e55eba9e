package iot

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"liyu1981.xyz/edms-report-service/pkg/common"
	"liyu1981.xyz/edms-report-service/pkg/models"
	"liyu1981.xyz/edms-report-service/pkg/report"
)

// recordProperties appends every property not yet known at timestamp to the
// history and re-materializes the current value of every property it was
// given. It reports whether any history row was appended.
//
// History is keyed by timestamp, not by value: re-sending an unchanged value
// with a new timestamp is a change.
func (i *IOT) recordProperties(tx *gorm.DB, device *models.Device, timestamp time.Time, properties map[string]report.Value) (bool, error) {
	if len(properties) == 0 {
		return false, nil
	}

	logger := common.GetLoggerWith(
		common.LoggerNameIOTCore,
		zap.String(common.LoggerFieldIOTCategory, common.LoggerCategoryIOTProperty),
	)

	timestamp = timestamp.UTC()

	names := make([]string, 0, len(properties))
	for name := range properties {
		names = append(names, name)
	}
	sort.Strings(names)

	changed := false
	appended := make([]string, 0, len(names))
	for _, name := range names {
		ok, err := appendHistory(tx, device.ID, name, timestamp, properties[name].Encode())
		if err != nil {
			return false, fmt.Errorf("append %s history of %s: %w", name, device.Ident, err)
		}
		if ok {
			changed = true
			appended = append(appended, name)
		}

		// runs for known facts too: an older report must not win, and a
		// drifted current row is repaired
		if err := materializeCurrent(tx, device.ID, name); err != nil {
			return false, fmt.Errorf("materialize %s of %s: %w", name, device.Ident, err)
		}
	}

	logger.Info("Recorded properties",
		zap.String("device", device.Ident),
		zap.String("timestamp", report.FormatDate(timestamp)),
		zap.Int("received", len(names)),
		zap.Strings("appended", appended),
	)

	return changed, nil
}

// appendHistory inserts (deviceID, name, timestamp) unless it exists. A row
// inserted concurrently by another report is absorbed by ON CONFLICT DO
// NOTHING and counts as already known.
func appendHistory(tx *gorm.DB, deviceID uint, name string, timestamp time.Time, value string) (bool, error) {
	var count int64
	err := tx.Model(&models.PropertyHistory{}).
		Where("device_id = ? AND name = ? AND timestamp = ?", deviceID, name, timestamp).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	row := models.PropertyHistory{
		DeviceID:  deviceID,
		Name:      name,
		Timestamp: timestamp,
		Value:     value,
	}
	result := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&row)
	if result.Error != nil {
		return false, result.Error
	}
	if result.RowsAffected == 0 {
		common.GetLoggerWith(
			common.LoggerNameIOTCore,
			zap.String(common.LoggerFieldIOTCategory, common.LoggerCategoryIOTProperty),
		).Debug("Absorbed concurrent history insert",
			zap.Uint("device_id", deviceID), zap.String("name", name))
		return false, nil
	}
	return true, nil
}

// materializeCurrent copies the newest history row of (deviceID, name) into
// current_properties. The upsert only replaces a row that is not newer, so
// two transactions finishing in either order leave the newest value.
func materializeCurrent(tx *gorm.DB, deviceID uint, name string) error {
	var latest models.PropertyHistory
	err := tx.Where("device_id = ? AND name = ?", deviceID, name).
		Order("timestamp desc").
		First(&latest).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	current := models.CurrentProperty{
		DeviceID:  deviceID,
		Name:      name,
		Timestamp: latest.Timestamp,
		Value:     latest.Value,
	}
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "device_id"}, {Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"timestamp", "value"}),
		Where: clause.Where{Exprs: []clause.Expression{
			clause.Expr{SQL: "current_properties.timestamp <= excluded.timestamp"},
		}},
	}).Create(&current).Error
}

func (i *IOT) getCurrentProperties(deviceID uint) ([]models.CurrentProperty, error) {
	var current []models.CurrentProperty
	err := i.Db.Conn.
		Where("device_id = ?", deviceID).
		Order("name asc").
		Find(&current).Error
	return current, err
}

func (i *IOT) getPropertyHistory(deviceID uint, name string, limit int) ([]models.PropertyHistory, error) {
	var history []models.PropertyHistory
	query := i.Db.Conn.
		Where("device_id = ? AND name = ?", deviceID, name).
		Order("timestamp desc")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&history).Error
	return history, err
}

type IPropertyImpl struct {
	iot *IOT
}

func (ip *IPropertyImpl) RecordProperties(tx *gorm.DB, device *models.Device, timestamp time.Time, properties map[string]report.Value) (bool, error) {
	return ip.iot.recordProperties(tx, device, timestamp, properties)
}

func (ip *IPropertyImpl) GetCurrentProperties(deviceID uint) ([]models.CurrentProperty, error) {
	return ip.iot.getCurrentProperties(deviceID)
}

func (ip *IPropertyImpl) GetPropertyHistory(deviceID uint, name string, limit int) ([]models.PropertyHistory, error) {
	return ip.iot.getPropertyHistory(deviceID, name, limit)
}

func (i *IOT) GetIProperty() IProperty {
	return &IPropertyImpl{iot: i}
}
