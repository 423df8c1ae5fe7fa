package config

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/wagslane/go-rabbitmq"
)

func mqURL(mq MQConfig) string {
	return fmt.Sprintf("amqps://%s:%s@%s:%d/%s", mq.User, mq.Password, mq.Host, mq.Port, mq.VHost)
}

func tlsConfig() *tls.Config {
	rootCAs, _ := x509.SystemCertPool()
	return &tls.Config{
		RootCAs:    rootCAs,
		MinVersion: tls.VersionTLS12,
	}
}

// Conexión administrada (reconexión automática)
func RabbitConn(mq MQConfig) (*rabbitmq.Conn, error) {
	return rabbitmq.NewConn(
		mqURL(mq),
		rabbitmq.WithConnectionOptionsConfig(rabbitmq.Config{
			TLSClientConfig: tlsConfig(),
			Heartbeat:       2 * time.Second,
			Locale:          "en_US",
			Dial:            amqp.DefaultDial(30 * time.Second),
		}),
		rabbitmq.WithConnectionOptionsLogging,
		rabbitmq.WithConnectionOptionsReconnectInterval(5*time.Second),
	)
}

// Publisher sobre esa conexión, declarando el exchange de eventos
func RabbitPublisher(mq MQConfig, exchange string) (*rabbitmq.Conn, *rabbitmq.Publisher, error) {
	conn, err := RabbitConn(mq)
	if err != nil {
		return nil, nil, err
	}
	pub, err := rabbitmq.NewPublisher(
		conn,
		rabbitmq.WithPublisherOptionsLogging,
		rabbitmq.WithPublisherOptionsExchangeName(exchange),
		rabbitmq.WithPublisherOptionsExchangeKind("topic"),
		rabbitmq.WithPublisherOptionsExchangeDurable,
		rabbitmq.WithPublisherOptionsExchangeDeclare,
		rabbitmq.WithPublisherOptionsConfirm, // publisher confirms
	)
	if err != nil {
		conn.Close()
		return nil, nil, err
	}
	return conn, pub, nil
}
