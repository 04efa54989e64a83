package room

import (
	"fmt"

	"github.com/gorilla/websocket"
	"github.com/rs/xid"
	"github.com/sirupsen/logrus"

	"modernblackjack-server/pkg/playable"
)

// Client is a display client connected to the server via websockets
type Client struct {
	// Conn is the underlying websocket connection
	Conn *websocket.Conn

	// send is a channel for sending messages to the client
	send chan interface{}

	// Close is a channel for closing the client
	Close chan string

	// CloseError contains the reason why the connection was closed
	CloseError error

	id      string
	session *Session
}

// NewClient returns a new client object
func NewClient(conn *websocket.Conn) *Client {
	return &Client{
		send:  make(chan interface{}, 256),
		Close: make(chan string),
		Conn:  conn,
		id:    xid.New().String(),
	}
}

// Send sends a message to the web client without blocking
func (c *Client) Send(msg interface{}) bool {
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

// SendChan returns a read-only channel
func (c *Client) SendChan() <-chan interface{} {
	return c.send
}

// String returns a traceable identifier for the client and session
func (c *Client) String() string {
	if c.session == nil {
		return c.id
	}

	return fmt.Sprintf("%s:%s", c.id, c.session.ID)
}

// ReceivedMessage is called when the server receives a message from a connected client
func (c *Client) ReceivedMessage(msg *playable.PayloadIn) {
	if c.session == nil {
		logrus.WithField("msg", msg).Warn("received message, but client has no session")
		return
	}

	c.session.ReceivedMessage(c, msg)
}
