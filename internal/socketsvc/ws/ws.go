package ws

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"github.com/lovedeck/lovedeck-services/internal/comm"
)

type Ws struct {
	connMap   sync.Map // socketId -> *websocket.Conn
	coupleMap sync.Map // socketId -> couple code
	userMap   sync.Map // socketId -> user id
}

func NewWs() *Ws {
	return &Ws{}
}

// handle socket message from web clients
func (s *Ws) SocketMessage(socketId string, message *comm.WSMessage) {
	switch message.Type {
	case "init":
		s.handleInit(socketId, message)
	default:
		log.Warnf("unknown event received: %s", message.Type)
	}
}

// handleInit registers the socket under the couple code so play events
// reach both partners' devices.
func (s *Ws) handleInit(socketId string, msg *comm.WSMessage) {
	reg := comm.CoupleRegistration{}
	if err := json.Unmarshal(msg.Data, &reg); err != nil {
		log.Errorf("Error: invalid_init_data Malformed init payload %s", err)
		return
	}

	if reg.UserId == "" || reg.CoupleCode == "" {
		log.Error("Invalid init payload: missing user id or couple code")
		return
	}

	s.userMap.Store(socketId, reg.UserId)
	s.coupleMap.Store(socketId, reg.CoupleCode)

	log.Infof("socket %s registered for user %s couple %s", socketId, reg.UserId, reg.CoupleCode)
}

func (s *Ws) StoreConnection(socketId string, conn *websocket.Conn) {
	s.connMap.Store(socketId, conn)
}

func (s *Ws) GetConnection(socketId string) (*websocket.Conn, bool) {
	conn, ok := s.connMap.Load(socketId)
	if !ok {
		return nil, false
	}
	return conn.(*websocket.Conn), true
}

// GetCoupleSockets lists every socket registered under a couple code.
func (s *Ws) GetCoupleSockets(coupleCode string) ([]string, bool) {
	var sockets []string
	found := false

	s.coupleMap.Range(func(key, value interface{}) bool {
		if value.(string) == coupleCode {
			sockets = append(sockets, key.(string))
			found = true
		}
		return true // continue iterating
	})

	return sockets, found
}

func (s *Ws) HandleDisconnect(socketId string) {
	s.connMap.Delete(socketId)
	s.coupleMap.Delete(socketId)
	s.userMap.Delete(socketId)
}
