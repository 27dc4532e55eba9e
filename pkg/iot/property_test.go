package iot

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"liyu1981.xyz/edms-report-service/pkg/common"
	"liyu1981.xyz/edms-report-service/pkg/models"
	"liyu1981.xyz/edms-report-service/pkg/report"
)

func newTestDevice(t *testing.T, iotObj *IOT, identifier string) *models.Device {
	t.Helper()
	device, err := iotObj.Device.ResolveOrCreate(iotObj.Db.Conn, identifier)
	require.NoError(t, err)
	return device
}

func TestRecordProperties(t *testing.T) {
	common.SetTestLoggerNop()
	_, iotObj, _, _, _ := GetMockIOTWithMemorySqliteDialector(t, false, false, false)
	device := newTestDevice(t, iotObj, "ident:dev1")

	t1 := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	props := map[string]report.Value{
		"cpu":  report.Number(json.Number("4")),
		"name": report.String("box"),
		"up":   report.Bool(true),
		"tags": report.Null(),
	}

	changed, err := iotObj.Property.RecordProperties(iotObj.Db.Conn, device, t1, props)
	require.NoError(t, err)
	assert.True(t, changed)

	assert.Equal(t, "4", currentValue(t, iotObj, device.ID, "cpu"))
	assert.Equal(t, `"box"`, currentValue(t, iotObj, device.ID, "name"))
	assert.Equal(t, "true", currentValue(t, iotObj, device.ID, "up"))
	assert.Equal(t, "null", currentValue(t, iotObj, device.ID, "tags"))

	// the same facts again
	changed, err = iotObj.Property.RecordProperties(iotObj.Db.Conn, device, t1, props)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.EqualValues(t, 4, countRows(t, iotObj, &models.PropertyHistory{}))
	assert.EqualValues(t, 4, countRows(t, iotObj, &models.CurrentProperty{}))
}

func TestRecordProperties_Empty(t *testing.T) {
	common.SetTestLoggerNop()
	_, iotObj, _, _, _ := GetMockIOTWithMemorySqliteDialector(t, false, false, false)
	device := newTestDevice(t, iotObj, "ident:dev1")

	changed, err := iotObj.Property.RecordProperties(iotObj.Db.Conn, device, time.Now(), nil)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.EqualValues(t, 0, countRows(t, iotObj, &models.PropertyHistory{}))
}

func TestRecordProperties_SameValueNewTimestamp(t *testing.T) {
	common.SetTestLoggerNop()
	_, iotObj, _, _, _ := GetMockIOTWithMemorySqliteDialector(t, false, false, false)
	device := newTestDevice(t, iotObj, "ident:dev1")

	t1 := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	props := map[string]report.Value{"cpu": report.Number(json.Number("4"))}

	_, err := iotObj.Property.RecordProperties(iotObj.Db.Conn, device, t1, props)
	require.NoError(t, err)
	changed, err := iotObj.Property.RecordProperties(iotObj.Db.Conn, device, t1.Add(time.Second), props)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.EqualValues(t, 2, countRows(t, iotObj, &models.PropertyHistory{}))
}

func TestRecordProperties_OlderDoesNotWin(t *testing.T) {
	common.SetTestLoggerNop()
	_, iotObj, _, _, _ := GetMockIOTWithMemorySqliteDialector(t, false, false, false)
	device := newTestDevice(t, iotObj, "ident:dev1")

	t1 := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Minute)

	_, err := iotObj.Property.RecordProperties(iotObj.Db.Conn, device, t2,
		map[string]report.Value{"cpu": report.Number(json.Number("8"))})
	require.NoError(t, err)
	changed, err := iotObj.Property.RecordProperties(iotObj.Db.Conn, device, t1,
		map[string]report.Value{"cpu": report.Number(json.Number("4"))})
	require.NoError(t, err)
	assert.True(t, changed)

	assert.Equal(t, "8", currentValue(t, iotObj, device.ID, "cpu"))

	history, err := iotObj.Property.GetPropertyHistory(device.ID, "cpu", 0)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.True(t, history[0].Timestamp.Equal(t2))
	assert.True(t, history[1].Timestamp.Equal(t1))

	limited, err := iotObj.Property.GetPropertyHistory(device.ID, "cpu", 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, "8", limited[0].Value)
}

func TestRecordProperties_RepairsCurrent(t *testing.T) {
	common.SetTestLoggerNop()
	_, iotObj, _, _, _ := GetMockIOTWithMemorySqliteDialector(t, false, false, false)
	device := newTestDevice(t, iotObj, "ident:dev1")

	t1 := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	props := map[string]report.Value{"cpu": report.Number(json.Number("4"))}

	_, err := iotObj.Property.RecordProperties(iotObj.Db.Conn, device, t1, props)
	require.NoError(t, err)

	require.NoError(t, iotObj.Db.Conn.Model(&models.CurrentProperty{}).
		Where("device_id = ? AND name = ?", device.ID, "cpu").
		Update("value", "999").Error)

	changed, err := iotObj.Property.RecordProperties(iotObj.Db.Conn, device, t1, props)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, "4", currentValue(t, iotObj, device.ID, "cpu"))
}

func TestGetCurrentProperties_Ordered(t *testing.T) {
	common.SetTestLoggerNop()
	_, iotObj, _, _, _ := GetMockIOTWithMemorySqliteDialector(t, false, false, false)
	device := newTestDevice(t, iotObj, "ident:dev1")

	_, err := iotObj.Property.RecordProperties(iotObj.Db.Conn, device, time.Now(), map[string]report.Value{
		"zeta":  report.Bool(false),
		"alpha": report.String("a"),
		"mid":   report.Number(json.Number("1.50")),
	})
	require.NoError(t, err)

	current, err := iotObj.Property.GetCurrentProperties(device.ID)
	require.NoError(t, err)
	names := common.Mapper(current, func(c models.CurrentProperty) string { return c.Name })
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, names)
	assert.Equal(t, "1.50", current[1].Value)
}
