package mqtt

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"liyu1981.xyz/edms-report-service/pkg/common"
	"liyu1981.xyz/edms-report-service/pkg/db"
	"liyu1981.xyz/edms-report-service/pkg/iot"
	_ "liyu1981.xyz/edms-report-service/pkg/testing"
)

type fakeMessage struct {
	topic   string
	id      uint16
	payload []byte
}

func (m *fakeMessage) Duplicate() bool   { return false }
func (m *fakeMessage) Qos() byte         { return subscribeQos }
func (m *fakeMessage) Retained() bool    { return false }
func (m *fakeMessage) Topic() string     { return m.topic }
func (m *fakeMessage) MessageID() uint16 { return m.id }
func (m *fakeMessage) Payload() []byte   { return m.payload }
func (m *fakeMessage) Ack()              {}

func setupSubscriber(t *testing.T) *Subscriber {
	dbInstance, err := db.Open(db.UseIsolatedMemorySqliteDialector(uuid.NewString()))
	require.NoError(t, err)
	iotCore := (&iot.IOT{Db: *dbInstance}).WithDefaultServices()

	s := newSubscriber(iotCore, DefaultTopic)
	t.Cleanup(s.Stop)
	return s
}

func messageLogs(t *testing.T, buf *bytes.Buffer) []map[string]any {
	var logs []map[string]any
	for _, line := range bytes.Split(buf.Bytes(), []byte("\n")) {
		var m map[string]any
		if err := json.Unmarshal(line, &m); err == nil && m["logger"] == common.LoggerNameMqttSubscriber {
			logs = append(logs, m)
		}
	}
	return logs
}

func TestHandleMessage(t *testing.T) {
	var buf bytes.Buffer
	common.SetTestCaptureLogger(&buf, zapcore.InfoLevel)
	s := setupSubscriber(t)

	body := []byte(`{"hostname":"box","date":"2024-01-01 00:00:00.000000","type":"boot","cpu":"arm"}`)
	s.HandleMessage(nil, &fakeMessage{topic: DefaultTopic, id: 1, payload: body})
	s.HandleMessage(nil, &fakeMessage{topic: DefaultTopic, id: 2, payload: body})

	logs := messageLogs(t, &buf)
	require.Len(t, logs, 2)
	assert.Equal(t, "Processed report", logs[0]["msg"])
	assert.Equal(t, "hostname:box", logs[0]["device"])
	assert.Equal(t, false, logs[0]["already_sent"])
	assert.Equal(t, true, logs[1]["already_sent"])

	device, err := s.iot.Device.GetDevice("hostname:box")
	require.NoError(t, err)
	events, err := s.iot.EventLog.GetDeviceEvents(device.ID, "")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, iot.SourceMQTT, events[0].Source)
}

func TestHandleMessage_Rejected(t *testing.T) {
	var buf bytes.Buffer
	common.SetTestCaptureLogger(&buf, zapcore.InfoLevel)
	s := setupSubscriber(t)

	s.HandleMessage(nil, &fakeMessage{topic: DefaultTopic, id: 3, payload: []byte(`{"hostname":"box"}`)})

	logs := messageLogs(t, &buf)
	require.Len(t, logs, 1)
	assert.Equal(t, "Rejected report", logs[0]["msg"])
	assert.Equal(t, "warn", logs[0]["level"])
	assert.Equal(t, map[string]any{"status": "error", "message": "No date specified"}, logs[0]["response"])
}

func TestHandleMessage_RateLimited(t *testing.T) {
	var buf bytes.Buffer
	common.SetTestCaptureLogger(&buf, zapcore.InfoLevel)
	s := setupSubscriber(t)
	s.iot.RateLimiterStore = iot.NewRateLimiterStore(0, 0)

	s.HandleMessage(nil, &fakeMessage{topic: DefaultTopic, id: 4,
		payload: []byte(`{"hostname":"box","date":"2024-01-01 00:00:00.000000"}`)})

	logs := messageLogs(t, &buf)
	require.Len(t, logs, 1)
	assert.Equal(t, "Rate limited report", logs[0]["msg"])
}
