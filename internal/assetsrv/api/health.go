package api

import (
	"net/http"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/aetheric-oss/svc-assets/internal/common/httpx"
)

// health probes every backend family. All probes always run; a failure never
// short-circuits the rest, so the log shows the full picture of what is down.
func (h *Handler) health(r *http.Request) (*httpx.Response, error) {
	ctx := r.Context()

	type probe struct {
		name string
		fn   func() error
	}
	probes := []probe{
		{"vehicle", func() error { return h.Clients.Vehicle.IsReady(ctx) }},
		{"vertiport", func() error { return h.Clients.Vertiport.IsReady(ctx) }},
		{"vertipad", func() error { return h.Clients.Vertipad.IsReady(ctx) }},
		{"group", func() error { return h.Clients.Group.IsReady(ctx) }},
	}

	var g errgroup.Group
	for _, p := range probes {
		p := p
		g.Go(func() error {
			if err := p.fn(); err != nil {
				log.Ctx(ctx).Error().Err(err).Str("family", p.name).Msg("storage backend probe failed")
				return err
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, httpx.ErrServiceUnavailable("one or more storage backends are unavailable")
	}
	return &httpx.Response{
		StatusCode: http.StatusOK,
		Response:   map[string]string{"status": "ready"},
	}, nil
}
