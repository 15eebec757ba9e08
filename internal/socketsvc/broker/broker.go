package broker

import (
	"encoding/json"

	"github.com/gorilla/websocket"
	"github.com/nats-io/nats.go"
	log "github.com/sirupsen/logrus"

	"github.com/lovedeck/lovedeck-services/internal/comm"
)

type Broker struct {
	Conn             *nats.Conn
	GetConnection    func(string) (*websocket.Conn, bool)
	GetCoupleSockets func(string) ([]string, bool)
}

func NewBroker(conn *nats.Conn, fncGetConnection func(string) (*websocket.Conn, bool),
	fncGetCoupleSockets func(string) ([]string, bool)) *Broker {
	return &Broker{
		Conn:             conn,
		GetConnection:    fncGetConnection,
		GetCoupleSockets: fncGetCoupleSockets,
	}
}

// consume messages from deck service
func (b *Broker) Subscribe(topic string) (*nats.Subscription, error) {
	sub, err := b.Conn.Subscribe(topic, b.handleMessages)
	if err != nil {
		return nil, err
	}

	return sub, nil
}

func (b *Broker) Publish(topic string, payload []byte) error {
	err := b.Conn.Publish(topic, payload)
	if err != nil {
		log.Errorf("Error publishing to topic %s: %s", topic, err)
		return err
	}

	return nil
}

// handleMessages receives play events from deck service
func (b *Broker) handleMessages(msgNats *nats.Msg) {
	message := &comm.WSMessage{}
	err := json.Unmarshal(msgNats.Data, &message)
	if err != nil {
		log.Errorf("Error %s", err)
		return
	}

	switch message.Type {
	case "play-event":
		b.fanOutToCouple(message)
	default:
		log.Error("Unknown message")
		return
	}
}

// fanOutToCouple pushes the play event to every socket of the couple,
// the player's own devices included.
func (b *Broker) fanOutToCouple(m *comm.WSMessage) {
	ev := comm.PlayEvent{}
	if err := json.Unmarshal(m.Data, &ev); err != nil {
		log.Errorf("Error decoding play event: %s", err)
		return
	}

	sockets, ok := b.GetCoupleSockets(ev.CoupleCode)
	if !ok {
		log.Infof("no live sockets for couple %s", ev.CoupleCode)
		return
	}

	for _, socketId := range sockets {
		if conn, ok := b.GetConnection(socketId); ok {
			if err := conn.WriteJSON(m); err != nil {
				log.Println(err)
			}
		}
	}
}
