package iot

//go:generate mockgen -source=iot.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"gorm.io/gorm"
	"liyu1981.xyz/edms-report-service/pkg/db"
	"liyu1981.xyz/edms-report-service/pkg/models"
	"liyu1981.xyz/edms-report-service/pkg/report"
)

// Methods taking a tx run inside the caller's report transaction and must not
// touch IOT.Db directly.

type ISettings interface {
	Get(name string, defaultValue string) (string, error)
	Set(name string, value string) error
}

type IDevice interface {
	ResolveOrCreate(tx *gorm.DB, identifier string) (*models.Device, error)
	TouchSeen(tx *gorm.DB, device *models.Device, timestamp time.Time) error
	TouchUpdated(tx *gorm.DB, device *models.Device, timestamp time.Time) error
	GetDevice(identifier string) (*models.Device, error)
}

type IGroup interface {
	AssignGroup(tx *gorm.DB, device *models.Device, groupIdent string, autocreate bool) error
	CreateGroup(tx *gorm.DB, identifier string, name string, parent *models.Group) (*models.Group, error)
}

type IProperty interface {
	RecordProperties(tx *gorm.DB, device *models.Device, timestamp time.Time, properties map[string]report.Value) (bool, error)
	GetCurrentProperties(deviceID uint) ([]models.CurrentProperty, error)
	GetPropertyHistory(deviceID uint, name string, limit int) ([]models.PropertyHistory, error)
}

type IEventLog interface {
	RecordEvent(tx *gorm.DB, device *models.Device, eventType string, timestamp time.Time, source string, payload map[string]report.Value) (bool, error)
	GetDeviceEvents(deviceID uint, eventType string) ([]models.EventLog, error)
}

type IReport interface {
	SubmitReport(ctx context.Context, source string, body []byte) (*report.Result, error)
}

type IOT struct {
	Db       db.DB
	Settings ISettings
	Device   IDevice
	Group    IGroup
	Property IProperty
	EventLog IEventLog
	Report   IReport

	// RateLimiterStore is optional; nil admits every report.
	RateLimiterStore *RateLimiterStore
}

type ServiceOpts struct {
	Settings ISettings
	Device   IDevice
	Group    IGroup
	Property IProperty
	EventLog IEventLog
	Report   IReport
}

func (i *IOT) WithServices(opts ServiceOpts) *IOT {
	if opts.Settings != nil {
		i.Settings = opts.Settings
	}
	if opts.Device != nil {
		i.Device = opts.Device
	}
	if opts.Group != nil {
		i.Group = opts.Group
	}
	if opts.Property != nil {
		i.Property = opts.Property
	}
	if opts.EventLog != nil {
		i.EventLog = opts.EventLog
	}
	if opts.Report != nil {
		i.Report = opts.Report
	}
	return i
}

// WithDefaultServices wires every service to its database backed
// implementation.
func (i *IOT) WithDefaultServices() *IOT {
	return i.WithServices(ServiceOpts{
		Settings: i.GetISettings(),
		Device:   i.GetIDevice(),
		Group:    i.GetIGroup(),
		Property: i.GetIProperty(),
		EventLog: i.GetIEventLog(),
		Report:   i.GetIReport(),
	})
}
