package iot

import (
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"liyu1981.xyz/edms-report-service/pkg/common"
	"liyu1981.xyz/edms-report-service/pkg/models"
	"liyu1981.xyz/edms-report-service/pkg/report"
)

// recordEvent stores one (device, type, timestamp) event and reports whether
// it was new. A repeated delivery writes nothing and returns false.
func (i *IOT) recordEvent(tx *gorm.DB, device *models.Device, eventType string, timestamp time.Time, source string, payload map[string]report.Value) (bool, error) {
	if eventType == "" {
		return false, ErrMissingEventType
	}
	if timestamp.IsZero() {
		return false, ErrMissingEventDate
	}

	logger := common.GetLoggerWith(
		common.LoggerNameIOTCore,
		zap.String(common.LoggerFieldIOTCategory, common.LoggerCategoryIOTEvent),
	)

	timestamp = timestamp.UTC()

	var count int64
	err := tx.Model(&models.EventLog{}).
		Where("device_id = ? AND type = ? AND timestamp = ?", device.ID, eventType, timestamp).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("look up %s event of %s: %w", eventType, device.Ident, err)
	}
	if count > 0 {
		logger.Info("Event already logged",
			zap.String("device", device.Ident), zap.String("type", eventType))
		return false, nil
	}

	if payload == nil {
		payload = map[string]report.Value{}
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return false, fmt.Errorf("encode %s event payload: %w", eventType, err)
	}

	event := models.EventLog{
		DeviceID:  device.ID,
		Type:      eventType,
		Timestamp: timestamp,
		Source:    source,
		Payload:   datatypes.JSON(data),
	}
	result := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&event)
	if result.Error != nil {
		return false, fmt.Errorf("insert %s event of %s: %w", eventType, device.Ident, result.Error)
	}
	if result.RowsAffected == 0 {
		logger.Debug("Absorbed concurrent event insert",
			zap.String("device", device.Ident), zap.String("type", eventType))
		return false, nil
	}

	logger.Info("Logged event",
		zap.String("device", device.Ident),
		zap.String("type", eventType),
		zap.String("timestamp", report.FormatDate(timestamp)),
		zap.String("source", source),
	)

	return true, nil
}

// getDeviceEvents lists events newest first; an empty eventType lists all.
func (i *IOT) getDeviceEvents(deviceID uint, eventType string) ([]models.EventLog, error) {
	var events []models.EventLog
	query := i.Db.Conn.Where("device_id = ?", deviceID)
	if eventType != "" {
		query = query.Where("type = ?", eventType)
	}
	err := query.Order("timestamp desc").Find(&events).Error
	return events, err
}

type IEventLogImpl struct {
	iot *IOT
}

func (ie *IEventLogImpl) RecordEvent(tx *gorm.DB, device *models.Device, eventType string, timestamp time.Time, source string, payload map[string]report.Value) (bool, error) {
	return ie.iot.recordEvent(tx, device, eventType, timestamp, source, payload)
}

func (ie *IEventLogImpl) GetDeviceEvents(deviceID uint, eventType string) ([]models.EventLog, error) {
	return ie.iot.getDeviceEvents(deviceID, eventType)
}

func (i *IOT) GetIEventLog() IEventLog {
	return &IEventLogImpl{iot: i}
}
