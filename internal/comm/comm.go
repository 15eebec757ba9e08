package comm

import (
	"encoding/json"

	"github.com/lovedeck/lovedeck-services/internal/decksvc/models"
)

// WSMessage is the envelope for every websocket and NATS message.
type WSMessage struct {
	Type     string          `json:"type"` // e.g. "init", "play-event"
	Data     json.RawMessage `json:"data"`
	SocketId string          `json:"socketid"`
}

// CoupleRegistration is the init payload a web client sends right after
// opening its socket, so play events can be routed to the couple.
type CoupleRegistration struct {
	UserId     string `json:"user_id"`
	Name       string `json:"name"`
	CoupleCode string `json:"couple_code"`
}

// PlayEvent fans a confirmed card play out to both members of the couple.
type PlayEvent struct {
	CoupleCode string          `json:"couple_code"`
	FeedItem   models.FeedItem `json:"feed_item"`
	Story      models.Story    `json:"story"`
}

// Res is a minimal status payload for acknowledgements.
type Res struct {
	Status string `json:"status"`
	Text   string `json:"text"`
}
