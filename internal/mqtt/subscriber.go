// Package mqtt feeds sensor telemetry from an MQTT broker into the reading buffer.
package mqtt

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"food_monitor/internal/logger"
	"food_monitor/internal/models"
	"food_monitor/internal/service"

	paho "github.com/eclipse/paho.mqtt.golang"
)

const (
	DefaultTopic = "sensors/+/telemetry"

	connectTimeout = 10 * time.Second
	ingestTimeout  = 2 * time.Second
	disconnectWait = 250 // ms
)

// Config holds the broker connection settings.
type Config struct {
	Broker   string
	ClientID string
	Username string
	Password string
	Topic    string // e.g. "sensors/+/telemetry"; the second segment is the device id
	QoS      byte
}

// Subscriber ingests every telemetry message as one reading.
type Subscriber struct {
	client   paho.Client
	topic    string
	qos      byte
	readings service.Readings
	log      *logger.Logger
}

// NewSubscriber builds an unconnected subscriber.
func NewSubscriber(cfg Config, readings service.Readings, log *logger.Logger) *Subscriber {
	s := &Subscriber{topic: cfg.Topic, qos: cfg.QoS, readings: readings, log: log}
	if s.topic == "" {
		s.topic = DefaultTopic
	}

	opts := paho.NewClientOptions()
	opts.AddBroker(cfg.Broker)
	opts.SetClientID(cfg.ClientID)
	opts.SetUsername(cfg.Username)
	opts.SetPassword(cfg.Password)
	opts.SetAutoReconnect(true)
	opts.SetKeepAlive(60 * time.Second)
	opts.SetPingTimeout(10 * time.Second)
	// Subscriptions are lost on reconnect with a clean session.
	opts.SetOnConnectHandler(func(c paho.Client) {
		if err := s.subscribe(); err != nil && s.log != nil {
			s.log.Errorw("mqtt_subscribe_failed", "topic", s.topic, "err", err)
		}
	})
	opts.SetConnectionLostHandler(func(c paho.Client, err error) {
		if s.log != nil {
			s.log.Warnw("mqtt_connection_lost", "err", err)
		}
	})
	s.client = paho.NewClient(opts)
	return s
}

// Start connects and subscribes. Call Stop on shutdown.
func (s *Subscriber) Start() error {
	token := s.client.Connect()
	if !token.WaitTimeout(connectTimeout) {
		return fmt.Errorf("connect to mqtt broker: timeout after %s", connectTimeout)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("connect to mqtt broker: %w", err)
	}
	if s.log != nil {
		s.log.Infow("mqtt_connected", "topic", s.topic)
	}
	return nil
}

func (s *Subscriber) Stop() {
	s.client.Disconnect(disconnectWait)
}

func (s *Subscriber) subscribe() error {
	token := s.client.Subscribe(s.topic, s.qos, s.handleMessage)
	if token.Wait() && token.Error() != nil {
		return token.Error()
	}
	return nil
}

func (s *Subscriber) handleMessage(_ paho.Client, msg paho.Message) {
	var payload models.SensorPayload
	if err := json.Unmarshal(msg.Payload(), &payload); err != nil {
		if s.log != nil {
			s.log.Warnw("mqtt_payload_invalid", "topic", msg.Topic(), "err", err)
		}
		return
	}

	deviceID := extractDeviceID(msg.Topic())
	if deviceID == "" {
		deviceID = strings.TrimSpace(payload.DeviceID)
	}

	ctx, cancel := context.WithTimeout(context.Background(), ingestTimeout)
	defer cancel()
	_, err := s.readings.Ingest(ctx, service.ReadingInput{
		DeviceID:    deviceID,
		Source:      "mqtt",
		Temperature: payload.TemperatureValue(),
		Humidity:    payload.HumidityValue(),
		LightLevel:  payload.LightValue(),
		Voltage:     payload.VoltageValue(),
	})
	if err != nil && s.log != nil {
		s.log.Warnw("mqtt_reading_rejected", "topic", msg.Topic(), "device_id", deviceID, "err", err)
	}
}

// extractDeviceID returns the second topic segment (sensors/{device_id}/telemetry).
func extractDeviceID(topic string) string {
	parts := strings.Split(topic, "/")
	if len(parts) < 3 {
		return ""
	}
	return parts[1]
}
