package trace

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// DefaultKeepAlive is the ping timeout of a connection
const DefaultKeepAlive = 10 * time.Second

// Reply is sent back for every record a client streams
type Reply struct {
	Outputs  []Output `json:"outputs"`
	Position int      `json:"position"`
	Error    string   `json:"error,omitempty"`
}

// Server streams records from websocket clients through a Player per
// connection and answers each with a Reply
type Server struct {
	upgrader  websocket.Upgrader
	newPlayer func() *Player
	keepAlive time.Duration
}

// NewServer creates a server. newPlayer is called once per connection.
func NewServer(newPlayer func() *Player, keepAlive time.Duration) *Server {
	if keepAlive <= 0 {
		keepAlive = DefaultKeepAlive
	}
	return &Server{
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		newPlayer: newPlayer,
		keepAlive: keepAlive,
	}
}

// ServeHTTP upgrades the request and replays the records it receives
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[WS] upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	var writeMu sync.Mutex
	stop := keepAlive(conn, &writeMu, s.keepAlive)
	defer stop()
	log.Printf("[WS] %v CONNECTED", conn.RemoteAddr())

	player := s.newPlayer()
	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[WS] %v closed: %v", conn.RemoteAddr(), err)
			}
			return
		}

		var reply Reply
		if rec, err := ParseRecord(msg); err != nil {
			reply.Error = err.Error()
		} else if reply.Outputs, err = player.Feed(rec); err != nil {
			reply.Error = err.Error()
		}
		reply.Position = player.Position()

		writeMu.Lock()
		err = conn.WriteJSON(reply)
		writeMu.Unlock()
		if err != nil {
			log.Printf("[WS] write to %v failed: %v", conn.RemoteAddr(), err)
			return
		}
	}
}

// keepAlive pings the peer and closes the connection when pongs stop
// arriving within timeout
func keepAlive(c *websocket.Conn, writeMu *sync.Mutex, timeout time.Duration) func() {
	var mu sync.Mutex
	lastResponse := time.Now()
	c.SetPongHandler(func(string) error {
		mu.Lock()
		lastResponse = time.Now()
		mu.Unlock()
		return nil
	})

	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(timeout / 2)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
			}
			writeMu.Lock()
			err := c.WriteControl(websocket.PingMessage, []byte("keepalive"), time.Now().Add(timeout/2))
			writeMu.Unlock()
			if err != nil {
				return
			}
			mu.Lock()
			silent := time.Since(lastResponse) > timeout
			mu.Unlock()
			if silent {
				c.Close()
				return
			}
		}
	}()

	var once sync.Once
	return func() { once.Do(func() { close(done) }) }
}
