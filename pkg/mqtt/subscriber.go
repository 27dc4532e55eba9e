// Package mqtt feeds reports published on a broker topic into the IOT core.
// Results are logged; nothing is published back.
package mqtt

import (
	"context"
	"errors"
	"fmt"
	"time"

	pahomqtt "github.com/eclipse/paho.mqtt.golang"
	"go.uber.org/zap"
	"liyu1981.xyz/edms-report-service/pkg/common"
	"liyu1981.xyz/edms-report-service/pkg/iot"
	"liyu1981.xyz/edms-report-service/pkg/report"
)

const (
	DefaultTopic    = "edms/report"
	DefaultClientID = "edms-report-service"

	subscribeQos byte = 1
)

type Config struct {
	Broker   string
	Topic    string
	ClientID string
	Username string
	Password string
}

type Subscriber struct {
	client pahomqtt.Client
	iot    *iot.IOT
	topic  string
	ctx    context.Context
	cancel context.CancelFunc
}

func newSubscriber(iotCore *iot.IOT, topic string) *Subscriber {
	ctx, cancel := context.WithCancel(context.Background())
	return &Subscriber{
		iot:    iotCore,
		topic:  topic,
		ctx:    ctx,
		cancel: cancel,
	}
}

// NewSubscriber connects to cfg.Broker and subscribes to cfg.Topic on every
// (re)connect.
func NewSubscriber(iotCore *iot.IOT, cfg Config) (*Subscriber, error) {
	if cfg.Topic == "" {
		cfg.Topic = DefaultTopic
	}
	if cfg.ClientID == "" {
		cfg.ClientID = DefaultClientID
	}

	logger := common.GetLoggerWith(common.LoggerNameMqttSubscriber)
	s := newSubscriber(iotCore, cfg.Topic)

	opts := pahomqtt.NewClientOptions().
		AddBroker(cfg.Broker).
		SetClientID(cfg.ClientID).
		SetAutoReconnect(true).
		SetConnectRetry(true).
		SetConnectRetryInterval(5 * time.Second).
		SetOnConnectHandler(func(client pahomqtt.Client) {
			logger.Info("MQTT connected", zap.String("broker", cfg.Broker))
			token := client.Subscribe(s.topic, subscribeQos, s.HandleMessage)
			if token.WaitTimeout(10*time.Second) && token.Error() != nil {
				logger.Error("MQTT subscribe failed", zap.String("topic", s.topic), zap.Error(token.Error()))
			}
		}).
		SetConnectionLostHandler(func(_ pahomqtt.Client, err error) {
			logger.Warn("MQTT connection lost", zap.Error(err))
		})

	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
		opts.SetPassword(cfg.Password)
	}

	client := pahomqtt.NewClient(opts)
	token := client.Connect()
	if !token.WaitTimeout(10 * time.Second) {
		s.cancel()
		return nil, fmt.Errorf("mqtt connect timeout")
	}
	if err := token.Error(); err != nil {
		s.cancel()
		return nil, fmt.Errorf("mqtt connect: %w", err)
	}

	s.client = client
	return s, nil
}

// HandleMessage processes one message body as a report.
func (s *Subscriber) HandleMessage(_ pahomqtt.Client, msg pahomqtt.Message) {
	logger := common.GetLoggerWith(common.LoggerNameMqttSubscriber,
		zap.String("topic", msg.Topic()),
		zap.Uint16("message_id", msg.MessageID()),
	)

	result, err := s.iot.Report.SubmitReport(s.ctx, iot.SourceMQTT, msg.Payload())
	if err != nil {
		if body, ok := report.InputErrorBody(err); ok {
			logger.Warn("Rejected report", zap.Any("response", body))
			return
		}
		if errors.Is(err, iot.ErrRateLimited) {
			logger.Warn("Rate limited report")
			return
		}
		logger.Error("Failed to process report", zap.Error(err))
		return
	}

	logger.Info("Processed report",
		zap.String("device", result.Identifier),
		zap.Bool("already_sent", result.AlreadySent()),
	)
}

func (s *Subscriber) Stop() {
	s.cancel()
	if s.client != nil {
		s.client.Unsubscribe(s.topic).WaitTimeout(time.Second)
		s.client.Disconnect(1000)
	}
	common.GetLoggerWith(common.LoggerNameMqttSubscriber).Info("MQTT subscriber stopped")
}
