package storage

import (
	"context"
	"errors"
)

// Service issues the per-family storage operations over a cached connection.
// The type parameter fixes the data payload; name fixes the method prefix
// (vehicle, vertiport, vertipad, group).
type Service[T any] struct {
	conn *Conn
	name string
}

func NewService[T any](conn *Conn, name string) *Service[T] {
	return &Service[T]{conn: conn, name: name}
}

// Name returns the backend family name.
func (s *Service[T]) Name() string {
	return s.name
}

// Conn exposes the underlying connection, mainly so callers can invalidate it.
func (s *Service[T]) Conn() *Conn {
	return s.conn
}

// Insert stores a new record and returns the envelope with the
// backend-assigned id.
func (s *Service[T]) Insert(ctx context.Context, data *T) (*Object[T], error) {
	var obj Object[T]
	if err := s.conn.Call(ctx, s.name+".insert", data, &obj); err != nil {
		return nil, err
	}
	return &obj, nil
}

// GetByID fetches one record. ErrNotFound when the backend has no record
// for the id.
func (s *Service[T]) GetByID(ctx context.Context, id string) (*Object[T], error) {
	var obj Object[T]
	if err := s.conn.Call(ctx, s.name+".get_by_id", Id{ID: id}, &obj); err != nil {
		return nil, err
	}
	return &obj, nil
}

// Update overwrites the masked fields of an existing record.
func (s *Service[T]) Update(ctx context.Context, upd UpdateObject[T]) error {
	return s.conn.Call(ctx, s.name+".update", upd, nil)
}

// Delete removes a record. Deleting an absent id is not an error.
func (s *Service[T]) Delete(ctx context.Context, id string) error {
	err := s.conn.Call(ctx, s.name+".delete", Id{ID: id}, nil)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	return err
}

// Search lists the records matching filter.
func (s *Service[T]) Search(ctx context.Context, filter SearchFilter) ([]Object[T], error) {
	var list ObjectList[T]
	if err := s.conn.Call(ctx, s.name+".search", filter, &list); err != nil {
		return nil, err
	}
	return list.List, nil
}

// IsReady probes the backend readiness endpoint.
func (s *Service[T]) IsReady(ctx context.Context) error {
	var rsp ReadyResponse
	if err := s.conn.Call(ctx, s.name+".is_ready", ReadyRequest{}, &rsp); err != nil {
		return err
	}
	if !rsp.Ready {
		return ErrBackendUnavailable.New("storage backend not ready")
	}
	return nil
}

// Clients bundles one service per backend family. Each family keeps its own
// lazily-dialed connection to the storage endpoint.
type Clients struct {
	Vehicle   *Service[VehicleData]
	Vertiport *Service[VertiportData]
	Vertipad  *Service[VertipadData]
	Group     *Service[GroupData]
}

// NewClients returns unconnected clients for the storage endpoint at url.
func NewClients(url string) *Clients {
	return &Clients{
		Vehicle:   NewService[VehicleData](NewConn("vehicle", url), "vehicle"),
		Vertiport: NewService[VertiportData](NewConn("vertiport", url), "vertiport"),
		Vertipad:  NewService[VertipadData](NewConn("vertipad", url), "vertipad"),
		Group:     NewService[GroupData](NewConn("group", url), "group"),
	}
}
