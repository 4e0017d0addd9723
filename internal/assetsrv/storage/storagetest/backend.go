// Package storagetest runs an in-memory storage backend speaking the
// JSON-RPC over websocket protocol, for use in tests.
package storagetest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/tidwall/sjson"

	"github.com/aetheric-oss/svc-assets/internal/common/jsonrpc"
)

// Backend is a fake storage service. Records live in memory per family
// (vehicle, vertiport, vertipad, group). Every JSON-RPC call and every
// websocket dial is counted so tests can assert on backend traffic.
type Backend struct {
	srv      *httptest.Server
	upgrader websocket.Upgrader

	mu       sync.Mutex
	records  map[string]map[string]json.RawMessage
	calls    map[string]int
	dials    int
	notReady map[string]bool
}

func New() *Backend {
	b := &Backend{
		records:  make(map[string]map[string]json.RawMessage),
		calls:    make(map[string]int),
		notReady: make(map[string]bool),
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/rpc", b.serveRPC)
	b.srv = httptest.NewServer(mux)
	return b
}

// URL returns the websocket endpoint of the backend.
func (b *Backend) URL() string {
	return strings.Replace(b.srv.URL, "http://", "ws://", 1) + "/rpc"
}

func (b *Backend) Close() {
	b.srv.Close()
}

// Dials returns how many websocket connections were accepted.
func (b *Backend) Dials() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.dials
}

// Calls returns how many times the given method was invoked.
func (b *Backend) Calls(method string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.calls[method]
}

// TotalCalls returns the number of JSON-RPC calls across all methods.
func (b *Backend) TotalCalls() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := 0
	for _, c := range b.calls {
		n += c
	}
	return n
}

// SetReady flips the readiness of one family's is_ready probe.
func (b *Backend) SetReady(family string, ready bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.notReady[family] = !ready
}

// Put seeds a record. data is stored as-is, so tests can seed records the
// gateway considers malformed.
func (b *Backend) Put(family, id string, data any) {
	raw, err := json.Marshal(data)
	if err != nil {
		panic(err)
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.records[family] == nil {
		b.records[family] = make(map[string]json.RawMessage)
	}
	b.records[family][id] = raw
}

// Get decodes a stored record into out, reporting whether it exists.
func (b *Backend) Get(family, id string, out any) bool {
	b.mu.Lock()
	raw, ok := b.records[family][id]
	b.mu.Unlock()
	if !ok {
		return false
	}
	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			panic(err)
		}
	}
	return true
}

func (b *Backend) serveRPC(w http.ResponseWriter, r *http.Request) {
	ws, err := b.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	b.mu.Lock()
	b.dials++
	b.mu.Unlock()
	defer ws.Close()

	for {
		_, frame, err := ws.ReadMessage()
		if err != nil {
			return
		}
		req, err := jsonrpc.ParseRequest(frame)
		if err != nil {
			rsp, _ := jsonrpc.ConstructErrorResponse("", jsonrpc.ErrCodeParseError, "parse error", nil)
			ws.WriteMessage(websocket.TextMessage, rsp)
			continue
		}
		rsp := b.dispatch(req)
		if err := ws.WriteMessage(websocket.TextMessage, rsp); err != nil {
			return
		}
	}
}

func (b *Backend) dispatch(req *jsonrpc.Request) []byte {
	method := string(req.Method)
	b.mu.Lock()
	b.calls[method]++
	b.mu.Unlock()

	family, op, ok := strings.Cut(method, ".")
	if !ok {
		rsp, _ := jsonrpc.ConstructErrorResponse(req.ID, jsonrpc.ErrCodeMethodNotFound, "unknown method "+method, nil)
		return rsp
	}

	switch op {
	case "insert":
		return b.insert(req, family)
	case "get_by_id":
		return b.getByID(req, family)
	case "update":
		return b.update(req, family)
	case "delete":
		return b.delete(req, family)
	case "search":
		return b.search(req, family)
	case "is_ready":
		return b.isReady(req, family)
	default:
		rsp, _ := jsonrpc.ConstructErrorResponse(req.ID, jsonrpc.ErrCodeMethodNotFound, "unknown method "+method, nil)
		return rsp
	}
}

type idParam struct {
	ID string `json:"id"`
}

type updateParam struct {
	ID   string          `json:"id"`
	Data json.RawMessage `json:"data"`
}

type objectRsp struct {
	ID   string          `json:"id"`
	Data json.RawMessage `json:"data"`
}

func (b *Backend) insert(req *jsonrpc.Request, family string) []byte {
	data := []byte(req.Params)
	now := time.Now().UTC().Format(time.RFC3339)
	data, _ = sjson.SetBytes(data, "created_at", now)
	data, _ = sjson.SetBytes(data, "updated_at", now)

	id := uuid.New().String()
	b.mu.Lock()
	if b.records[family] == nil {
		b.records[family] = make(map[string]json.RawMessage)
	}
	b.records[family][id] = data
	b.mu.Unlock()

	rsp, _ := jsonrpc.ConstructSuccessResponse(req.ID, objectRsp{ID: id, Data: data})
	return rsp
}

func (b *Backend) getByID(req *jsonrpc.Request, family string) []byte {
	var p idParam
	if err := json.Unmarshal(req.Params, &p); err != nil {
		rsp, _ := jsonrpc.ConstructErrorResponse(req.ID, jsonrpc.ErrCodeInvalidParams, "bad params", nil)
		return rsp
	}
	b.mu.Lock()
	data, ok := b.records[family][p.ID]
	b.mu.Unlock()
	if !ok {
		rsp, _ := jsonrpc.ConstructErrorResponse(req.ID, jsonrpc.ErrCodeNotFound, "no "+family+" with id "+p.ID, nil)
		return rsp
	}
	rsp, _ := jsonrpc.ConstructSuccessResponse(req.ID, objectRsp{ID: p.ID, Data: data})
	return rsp
}

func (b *Backend) update(req *jsonrpc.Request, family string) []byte {
	var p updateParam
	if err := json.Unmarshal(req.Params, &p); err != nil {
		rsp, _ := jsonrpc.ConstructErrorResponse(req.ID, jsonrpc.ErrCodeInvalidParams, "bad params", nil)
		return rsp
	}
	b.mu.Lock()
	_, ok := b.records[family][p.ID]
	b.mu.Unlock()
	if !ok {
		rsp, _ := jsonrpc.ConstructErrorResponse(req.ID, jsonrpc.ErrCodeNotFound, "no "+family+" with id "+p.ID, nil)
		return rsp
	}
	data, _ := sjson.SetBytes([]byte(p.Data), "updated_at", time.Now().UTC().Format(time.RFC3339))
	b.mu.Lock()
	b.records[family][p.ID] = data
	b.mu.Unlock()
	rsp, _ := jsonrpc.ConstructSuccessResponse(req.ID, objectRsp{ID: p.ID, Data: data})
	return rsp
}

func (b *Backend) delete(req *jsonrpc.Request, family string) []byte {
	var p idParam
	if err := json.Unmarshal(req.Params, &p); err != nil {
		rsp, _ := jsonrpc.ConstructErrorResponse(req.ID, jsonrpc.ErrCodeInvalidParams, "bad params", nil)
		return rsp
	}
	b.mu.Lock()
	_, ok := b.records[family][p.ID]
	delete(b.records[family], p.ID)
	b.mu.Unlock()
	if !ok {
		rsp, _ := jsonrpc.ConstructErrorResponse(req.ID, jsonrpc.ErrCodeNotFound, "no "+family+" with id "+p.ID, nil)
		return rsp
	}
	rsp, _ := jsonrpc.ConstructSuccessResponse(req.ID, map[string]bool{"deleted": true})
	return rsp
}

func (b *Backend) search(req *jsonrpc.Request, family string) []byte {
	b.mu.Lock()
	list := make([]objectRsp, 0, len(b.records[family]))
	for id, data := range b.records[family] {
		list = append(list, objectRsp{ID: id, Data: data})
	}
	b.mu.Unlock()
	rsp, _ := jsonrpc.ConstructSuccessResponse(req.ID, map[string]any{"list": list})
	return rsp
}

func (b *Backend) isReady(req *jsonrpc.Request, family string) []byte {
	b.mu.Lock()
	ready := !b.notReady[family]
	b.mu.Unlock()
	rsp, _ := jsonrpc.ConstructSuccessResponse(req.ID, map[string]bool{"ready": ready})
	return rsp
}
