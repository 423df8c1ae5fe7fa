package eventservice

// el mismo exchange de eventos que usa el resto de la plataforma; el
// publisher lo declara durable al conectar
const (
	ExchangeKindTopic = "topic"
	ExchangeName      = "events.topic"
)
