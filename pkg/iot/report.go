package iot

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"liyu1981.xyz/edms-report-service/pkg/common"
	"liyu1981.xyz/edms-report-service/pkg/report"
)

// Report sources, stored on event log rows.
const (
	SourceHTTP = "http"
	SourceGRPC = "grpc"
	SourceMQTT = "mqtt"
)

// submitReport runs one report end to end. Input errors (see
// report.IsInputError) and ErrRateLimited are returned before anything is
// written; every write of the report happens in a single transaction.
func (i *IOT) submitReport(ctx context.Context, source string, body []byte) (*report.Result, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameIOTCore,
		zap.String(common.LoggerFieldIOTCategory, common.LoggerCategoryIOTReport),
	)

	if i.Device == nil || i.Group == nil || i.Property == nil || i.EventLog == nil {
		return nil, ErrServiceMissing
	}

	settings, err := i.loadReportSettings()
	if err != nil {
		return nil, fmt.Errorf("load report settings: %w", err)
	}

	r, err := report.Parse(body, settings.parse)
	if err != nil {
		logger.Info("Rejected report", zap.String("source", source), zap.Error(err))
		return nil, err
	}

	if !i.RateLimiterStore.Allow(r.Identifier) {
		logger.Info("Rate limited report", zap.String("device", r.Identifier), zap.String("source", source))
		return nil, ErrRateLimited
	}

	result := &report.Result{Identifier: r.Identifier}

	err = i.Db.Conn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		device, err := i.Device.ResolveOrCreate(tx, r.Identifier)
		if err != nil {
			return err
		}
		result.DeviceID = device.ID

		if err := i.Device.TouchSeen(tx, device, r.Timestamp); err != nil {
			return err
		}

		if err := i.Group.AssignGroup(tx, device, r.Group, settings.groupAutocreate); err != nil {
			return err
		}

		changed, err := i.Property.RecordProperties(tx, device, r.Timestamp, r.Properties)
		if err != nil {
			return err
		}
		result.Changed = changed

		if changed && r.Timestamp.After(device.DateUpdated) {
			if err := i.Device.TouchUpdated(tx, device, r.Timestamp); err != nil {
				return err
			}
		}

		if r.Type != "" {
			logged, err := i.EventLog.RecordEvent(tx, device, r.Type, r.Timestamp, source, r.Properties)
			if err != nil {
				return err
			}
			result.EventLogged = logged
		}

		return nil
	})
	if err != nil {
		logger.Error("Failed to store report",
			zap.String("device", r.Identifier), zap.String("source", source), zap.Error(err))
		return nil, err
	}

	logger.Info("Stored report",
		zap.String("device", r.Identifier),
		zap.String("source", source),
		zap.String("timestamp", report.FormatDate(r.Timestamp)),
		zap.Bool("changed", result.Changed),
		zap.Bool("event_logged", result.EventLogged),
		zap.Bool("already_sent", result.AlreadySent()),
	)

	return result, nil
}

type IReportImpl struct {
	iot *IOT
}

func (ir *IReportImpl) SubmitReport(ctx context.Context, source string, body []byte) (*report.Result, error) {
	return ir.iot.submitReport(ctx, source, body)
}

func (i *IOT) GetIReport() IReport {
	return &IReportImpl{iot: i}
}
