package storage

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/aetheric-oss/svc-assets/internal/common/jsonrpc"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const dialTimeout = 5 * time.Second

// Conn is a lazily-dialed JSON-RPC connection to one storage backend
// service. The zero state is unconnected; the first Call dials and caches
// the websocket, later calls reuse it, and a transport failure drops the
// cached handle so the next call redials. The mutex serializes round trips,
// which also collapses concurrent first-time connectors into a single dial.
type Conn struct {
	name string
	url  string

	mu     sync.Mutex
	ws     *websocket.Conn
	nextID uint64
}

// NewConn returns an unconnected Conn for the named backend service at
// url (ws://host:port/rpc). No network activity happens until the first Call.
func NewConn(name, url string) *Conn {
	return &Conn{name: name, url: url}
}

// Invalidate drops the cached connection. The next Call redials.
func (c *Conn) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.drop()
}

// drop closes and forgets the cached websocket. Callers hold c.mu.
func (c *Conn) drop() {
	if c.ws != nil {
		c.ws.Close()
		c.ws = nil
	}
}

// connect dials the backend if no connection is cached. Callers hold c.mu.
func (c *Conn) connect(ctx context.Context) error {
	if c.ws != nil {
		return nil
	}
	log.Ctx(ctx).Info().Str("backend", c.name).Str("url", c.url).Msg("connecting to storage backend")
	dialer := websocket.Dialer{HandshakeTimeout: dialTimeout}
	ws, _, err := dialer.DialContext(ctx, c.url, nil)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("backend", c.name).Str("url", c.url).
			Msg("could not connect to storage backend")
		return ErrBackendUnavailable.New("storage backend unavailable").Err(errors.Wrap(err, "dial "+c.url))
	}
	c.ws = ws
	return nil
}

// Call performs one JSON-RPC round trip. result may be nil when the caller
// has no use for the response payload. A backend not-found error surfaces as
// ErrNotFound; transport failures invalidate the cached connection and
// surface as ErrBackendUnavailable.
func (c *Conn) Call(ctx context.Context, method string, params any, result any) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.connect(ctx); err != nil {
		return err
	}

	c.nextID++
	id := strconv.FormatUint(c.nextID, 10)
	req, err := jsonrpc.ConstructRequest(id, jsonrpc.MethodType(method), params)
	if err != nil {
		return ErrRPC.New("unable to encode storage request").Err(err)
	}

	if deadline, ok := ctx.Deadline(); ok {
		c.ws.SetWriteDeadline(deadline)
		c.ws.SetReadDeadline(deadline)
	} else {
		c.ws.SetWriteDeadline(time.Time{})
		c.ws.SetReadDeadline(time.Time{})
	}

	if err := c.ws.WriteMessage(websocket.TextMessage, req); err != nil {
		c.drop()
		return ErrBackendUnavailable.New("storage backend unavailable").Err(errors.Wrap(err, method))
	}
	_, frame, err := c.ws.ReadMessage()
	if err != nil {
		c.drop()
		return ErrBackendUnavailable.New("storage backend unavailable").Err(errors.Wrap(err, method))
	}

	rsp, err := jsonrpc.ParseResponse(frame)
	if err != nil {
		c.drop()
		return ErrRPC.New("malformed storage response").Err(err)
	}
	if rsp.ID != id {
		// Round trips are serialized, so an id mismatch means the stream is
		// out of sync with the backend.
		c.drop()
		return ErrRPC.New("storage response id mismatch")
	}
	if rsp.Error != nil {
		if rsp.Error.Code == jsonrpc.ErrCodeNotFound {
			return ErrNotFound
		}
		return ErrRPC.New("storage backend error: " + rsp.Error.Message)
	}
	if result == nil {
		return nil
	}
	if err := json.Unmarshal(rsp.Result, result); err != nil {
		return ErrRPC.New("unable to decode storage response").Err(err)
	}
	return nil
}
