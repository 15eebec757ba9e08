package broker

import (
	"encoding/json"

	"github.com/nats-io/nats.go"
	log "github.com/sirupsen/logrus"

	"github.com/lovedeck/lovedeck-services/internal/comm"
)

// TopicDeckEvents carries play events from deck service to socket service.
const TopicDeckEvents = "deck.events"

type Broker struct {
	Conn *nats.Conn
}

func NewBroker(nc *nats.Conn) *Broker {
	return &Broker{
		Conn: nc,
	}
}

// PublishPlayEvent pushes a confirmed play to the socket service so both
// partners' devices refresh their feed and stories live.
func (b *Broker) PublishPlayEvent(ev comm.PlayEvent) {
	data, err := json.Marshal(ev)
	if err != nil {
		log.Errorf("unable to marshal play event for couple %s: %s", ev.CoupleCode, err)
		return
	}

	msg := &comm.WSMessage{
		Type: "play-event",
		Data: data,
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		log.Errorf("Error %s", err)
		return
	}

	b.Publish(TopicDeckEvents, payload)
}

// publish message for socket service to consume
func (b *Broker) Publish(topic string, payload []byte) error {
	err := b.Conn.Publish(topic, payload)
	if err != nil {
		log.Errorf("Error publishing to topic %s: %s", topic, err)
		return err
	}

	return nil
}
