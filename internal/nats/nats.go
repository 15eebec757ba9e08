package nats

import (
	"os"

	"github.com/nats-io/nats.go"
)

const defaultURL = "nats://localhost:4222"

// Nats wraps the connection that carries play events from the deck
// service to the socket gateway.
type Nats struct {
	Url   string
	Token string
	Conn  *nats.Conn
}

// Connect dials the server configured by NATS_URL and NATS_TOKEN.
func Connect() (*Nats, error) {
	n := fromEnv()

	opts := []nats.Option{
		nats.Name("lovedeck"),
	}

	// if token provided
	if n.Token != "" {
		opts = append(opts, nats.Token(n.Token))
	}

	conn, err := nats.Connect(n.Url, opts...)
	if err != nil {
		return nil, err
	}

	n.Conn = conn

	return n, nil
}

func fromEnv() *Nats {
	n := &Nats{
		Url:   os.Getenv("NATS_URL"),
		Token: os.Getenv("NATS_TOKEN"),
	}

	if n.Url == "" {
		n.Url = defaultURL
	}

	return n
}
