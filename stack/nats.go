package stack

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	natsPackage "github.com/nats-io/nats.go"
	"go.uber.org/zap"
)

// Request body as NestJS microservices expect it
type NatsNestJSReq struct {
	ID   string      `json:"id"`
	Data interface{} `json:"data,omitempty"`
}

type NatsClient struct {
	conn   *natsPackage.Conn
	logger *zap.Logger
}

func NewNats(host string, logger *zap.Logger) (*NatsClient, error) {
	conn, err := natsPackage.Connect(
		fmt.Sprintf("nats://%s:4222", host),
		natsPackage.RetryOnFailedConnect(true),
		natsPackage.MaxReconnects(-1),
		natsPackage.ReconnectWait(time.Second*2),
		natsPackage.DisconnectErrHandler(func(_ *natsPackage.Conn, err error) {
			if err != nil {
				logger.Warn("nats disconnected", zap.Error(err))
			}
		}),
		natsPackage.ReconnectHandler(func(c *natsPackage.Conn) {
			logger.Info("nats reconnected", zap.String("url", c.ConnectedUrl()))
		}),
	)
	if err != nil {
		return nil, err
	}
	return &NatsClient{
		conn:   conn,
		logger: logger,
	}, nil
}

func (nats *NatsClient) Publish(channel string, message []byte) error {
	return nats.conn.Publish(channel, message)
}

// PublishEncode publishes data inside a NestJS request envelope
func (nats *NatsClient) PublishEncode(channel string, data interface{}) error {
	message, err := FormatRequestNest(data)
	if err != nil {
		return err
	}
	return nats.Publish(channel, message)
}

func (nats *NatsClient) Subscribe(channel string, toDo natsPackage.MsgHandler) (*natsPackage.Subscription, error) {
	return nats.conn.Subscribe(channel, toDo)
}

func (nats *NatsClient) Close() {
	if err := nats.conn.Drain(); err != nil {
		nats.logger.Warn("nats drain", zap.Error(err))
	}
}

func FormatRequestNest(data interface{}) ([]byte, error) {
	id, err := uuid.NewUUID()
	if err != nil {
		return nil, err
	}
	return json.Marshal(NatsNestJSReq{
		ID:   id.String(),
		Data: data,
	})
}

// DecodeDataNest returns the data field of a NestJS request
func DecodeDataNest(data []byte) (map[string]interface{}, error) {
	var request NatsNestJSReq
	if err := json.Unmarshal(data, &request); err != nil {
		return nil, err
	}
	payload, ok := request.Data.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("nats request without data object")
	}
	return payload, nil
}
