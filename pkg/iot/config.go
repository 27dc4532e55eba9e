package iot

import (
	"strconv"
	"strings"
	"sync"

	"go.uber.org/zap"
	"gorm.io/gorm/clause"
	"liyu1981.xyz/edms-report-service/pkg/common"
	"liyu1981.xyz/edms-report-service/pkg/models"
	"liyu1981.xyz/edms-report-service/pkg/report"
)

// getSetting returns the stored value of name. A missing name is stored with
// defaultValue first, so the settings table documents every knob that was
// ever read.
func (i *IOT) getSetting(name string, defaultValue string) (string, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameIOTCore,
		zap.String(common.LoggerFieldIOTCategory, common.LoggerCategoryIOTSettings),
	)

	setting := models.Setting{Name: name, Value: defaultValue}
	result := i.Db.Conn.Clauses(clause.OnConflict{DoNothing: true}).Create(&setting)
	if result.Error != nil {
		return "", result.Error
	}
	if result.RowsAffected > 0 {
		logger.Info("Stored default setting", zap.String("name", name), zap.String("value", defaultValue))
	}

	var stored models.Setting
	if err := i.Db.Conn.First(&stored, "name = ?", name).Error; err != nil {
		return "", err
	}
	return stored.Value, nil
}

func (i *IOT) upsertSetting(name string, value string) error {
	logger := common.GetLoggerWith(
		common.LoggerNameIOTCore,
		zap.String(common.LoggerFieldIOTCategory, common.LoggerCategoryIOTSettings),
	)

	setting := models.Setting{Name: name, Value: value}

	err := i.Db.Conn.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		UpdateAll: true,
	}).Create(&setting).Error

	if err == nil {
		logger.Info("Upserted setting", zap.Reflect("setting", setting))
	}

	return err
}

// ISettingsImpl caches every value after its first read.
type ISettingsImpl struct {
	iot   *IOT
	mu    sync.RWMutex
	cache map[string]string
}

func (is *ISettingsImpl) Get(name string, defaultValue string) (string, error) {
	is.mu.RLock()
	value, ok := is.cache[name]
	is.mu.RUnlock()
	if ok {
		return value, nil
	}

	value, err := is.iot.getSetting(name, defaultValue)
	if err != nil {
		return "", err
	}

	is.mu.Lock()
	is.cache[name] = value
	is.mu.Unlock()
	return value, nil
}

func (is *ISettingsImpl) Set(name string, value string) error {
	if err := is.iot.upsertSetting(name, value); err != nil {
		return err
	}

	is.mu.Lock()
	is.cache[name] = value
	is.mu.Unlock()
	return nil
}

func (i *IOT) GetISettings() ISettings {
	return &ISettingsImpl{iot: i, cache: map[string]string{}}
}

func GetBool(s ISettings, name string, defaultValue string) (bool, error) {
	value, err := s.Get(name, defaultValue)
	if err != nil {
		return false, err
	}
	b, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		// an unreadable value falls back to the default
		return strconv.ParseBool(defaultValue)
	}
	return b, nil
}

// GetList splits a comma separated setting, dropping blank items.
func GetList(s ISettings, name string, defaultValue string) ([]string, error) {
	value, err := s.Get(name, defaultValue)
	if err != nil {
		return nil, err
	}
	return common.SplitList(value), nil
}

// reportSettings reads everything a report needs before its transaction
// starts.
type reportSettings struct {
	parse           report.Options
	groupAutocreate bool
}

func (i *IOT) loadReportSettings() (*reportSettings, error) {
	if i.Settings == nil {
		return nil, ErrServiceMissing
	}

	identifiers, err := GetList(i.Settings, common.SettingReportIdentifiers, common.DefaultReportIdentifiers)
	if err != nil {
		return nil, err
	}
	flatten, err := GetBool(i.Settings, common.SettingReportFlatten, common.DefaultReportFlatten)
	if err != nil {
		return nil, err
	}
	groupField, err := i.Settings.Get(common.SettingReportGroupField, common.DefaultReportGroupField)
	if err != nil {
		return nil, err
	}
	autocreate, err := GetBool(i.Settings, common.SettingReportGroupAutocreate, common.DefaultReportGroupAutocreate)
	if err != nil {
		return nil, err
	}

	return &reportSettings{
		parse: report.Options{
			IdentifierFields: identifiers,
			GroupField:       strings.TrimSpace(groupField),
			Flatten:          flatten,
		},
		groupAutocreate: autocreate,
	}, nil
}
