package iot

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"liyu1981.xyz/edms-report-service/pkg/common"
	"liyu1981.xyz/edms-report-service/pkg/models"
)

// createGroup inserts a group below parent, or at the root when parent is
// nil. Depth is fixed here; moving a group later does not recompute it.
func (i *IOT) createGroup(tx *gorm.DB, identifier string, name string, parent *models.Group) (*models.Group, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameIOTCore,
		zap.String(common.LoggerFieldIOTCategory, common.LoggerCategoryIOTGroup),
	)

	candidate := models.Group{Ident: identifier, Name: name}
	if parent != nil {
		candidate.ParentID = &parent.ID
		candidate.Depth = parent.Depth + 1
	}

	result := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "ident"}},
		DoNothing: true,
	}).Create(&candidate)
	if result.Error != nil {
		return nil, fmt.Errorf("create group %s: %w", identifier, result.Error)
	}

	var group models.Group
	if err := tx.First(&group, "ident = ?", identifier).Error; err != nil {
		return nil, fmt.Errorf("load group %s: %w", identifier, err)
	}

	if result.RowsAffected > 0 {
		logger.Info("Created group", zap.Reflect("group", group))
	}

	return &group, nil
}

// assignGroup attaches device to the group named by groupIdent. An unknown
// group that may not be created is ignored.
func (i *IOT) assignGroup(tx *gorm.DB, device *models.Device, groupIdent string, autocreate bool) error {
	if groupIdent == "" {
		return nil
	}

	logger := common.GetLoggerWith(
		common.LoggerNameIOTCore,
		zap.String(common.LoggerFieldIOTCategory, common.LoggerCategoryIOTGroup),
	)

	var group *models.Group
	var found models.Group
	err := tx.First(&found, "ident = ?", groupIdent).Error
	switch {
	case err == nil:
		group = &found
	case errors.Is(err, gorm.ErrRecordNotFound):
		if !autocreate {
			logger.Info("Ignored unknown group",
				zap.String("device", device.Ident), zap.String("group", groupIdent))
			return nil
		}
		if group, err = i.createGroup(tx, groupIdent, groupIdent, nil); err != nil {
			return err
		}
	default:
		return fmt.Errorf("load group %s: %w", groupIdent, err)
	}

	if device.GroupID != nil && *device.GroupID == group.ID {
		return nil
	}

	if err := tx.Model(&models.Device{}).Where("id = ?", device.ID).Update("group_id", group.ID).Error; err != nil {
		return fmt.Errorf("assign group %s to %s: %w", groupIdent, device.Ident, err)
	}
	device.GroupID = &group.ID

	logger.Info("Assigned device to group",
		zap.String("device", device.Ident), zap.String("group", group.Ident))

	return nil
}

type IGroupImpl struct {
	iot *IOT
}

func (ig *IGroupImpl) AssignGroup(tx *gorm.DB, device *models.Device, groupIdent string, autocreate bool) error {
	return ig.iot.assignGroup(tx, device, groupIdent, autocreate)
}

func (ig *IGroupImpl) CreateGroup(tx *gorm.DB, identifier string, name string, parent *models.Group) (*models.Group, error) {
	return ig.iot.createGroup(tx, identifier, name, parent)
}

func (i *IOT) GetIGroup() IGroup {
	return &IGroupImpl{iot: i}
}
