package iot

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"liyu1981.xyz/edms-report-service/pkg/db"
	"liyu1981.xyz/edms-report-service/pkg/iot/mocks"
	"liyu1981.xyz/edms-report-service/pkg/models"
	"liyu1981.xyz/edms-report-service/pkg/report"
	_ "liyu1981.xyz/edms-report-service/pkg/testing"
)

// GetMockIOTWithMemorySqliteDialector builds an IOT on its own in-memory
// database. The flags swap the matching service for its mock.
func GetMockIOTWithMemorySqliteDialector(t *testing.T, useMockIGroup, useMockIProperty, useMockIEventLog bool) (
	*gomock.Controller,
	*IOT,
	*mocks.MockIGroup,
	*mocks.MockIProperty,
	*mocks.MockIEventLog,
) {
	ctrl := gomock.NewController(t)

	mockIGroup := mocks.NewMockIGroup(ctrl)
	mockIProperty := mocks.NewMockIProperty(ctrl)
	mockIEventLog := mocks.NewMockIEventLog(ctrl)

	dbInstance, err := db.Open(db.UseIsolatedMemorySqliteDialector(uuid.NewString()))
	require.NoError(t, err)
	iotInstance := (&IOT{Db: *dbInstance}).WithDefaultServices()

	opts := ServiceOpts{}
	if useMockIGroup {
		opts.Group = mockIGroup
	}
	if useMockIProperty {
		opts.Property = mockIProperty
	}
	if useMockIEventLog {
		opts.EventLog = mockIEventLog
	}
	iotInstance.WithServices(opts)

	return ctrl, iotInstance, mockIGroup, mockIProperty, mockIEventLog
}

func ParseLogs(r io.Reader) []any {
	scanner := bufio.NewScanner(r)
	var logs []any

	for scanner.Scan() {
		line := scanner.Text()
		var j any
		if err := json.Unmarshal([]byte(line), &j); err == nil {
			logs = append(logs, j)
		}
	}
	return logs
}

func submit(t *testing.T, iotObj *IOT, body string) *report.Result {
	t.Helper()
	result, err := iotObj.Report.SubmitReport(context.Background(), SourceHTTP, []byte(body))
	require.NoError(t, err)
	return result
}

func countRows(t *testing.T, iotObj *IOT, model any) int64 {
	t.Helper()
	var count int64
	require.NoError(t, iotObj.Db.Conn.Model(model).Count(&count).Error)
	return count
}

func mustDevice(t *testing.T, iotObj *IOT, identifier string) *models.Device {
	t.Helper()
	device, err := iotObj.Device.GetDevice(identifier)
	require.NoError(t, err)
	return device
}

func currentValue(t *testing.T, iotObj *IOT, deviceID uint, name string) string {
	t.Helper()
	var current models.CurrentProperty
	require.NoError(t, iotObj.Db.Conn.First(&current, "device_id = ? AND name = ?", deviceID, name).Error)
	return current.Value
}
