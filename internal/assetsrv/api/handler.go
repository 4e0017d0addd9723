// Package api implements the REST surface of the assets gateway: thin
// adapters that validate identifiers and payloads, call the storage
// backend, and translate storage records into REST resources.
package api

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog/log"

	"github.com/aetheric-oss/svc-assets/internal/assetsrv/assets"
	"github.com/aetheric-oss/svc-assets/internal/assetsrv/fieldmask"
	"github.com/aetheric-oss/svc-assets/internal/assetsrv/storage"
	"github.com/aetheric-oss/svc-assets/internal/common/httpx"
	"github.com/aetheric-oss/svc-assets/internal/common/uuid"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Handler carries the storage clients and the payload validator. It is
// constructed once at server startup and injected into the router.
type Handler struct {
	Clients  *storage.Clients
	Validate *validator.Validate
}

func New(clients *storage.Clients) *Handler {
	return &Handler{
		Clients:  clients,
		Validate: validator.New(),
	}
}

// idResponse is the envelope for operations that return just an id.
type idResponse struct {
	ID string `json:"id"`
}

// listResponse is the collection envelope. Dropped counts the records that
// could not be translated and were left out of the list.
type listResponse[R any] struct {
	List    []R `json:"list"`
	Dropped int `json:"dropped"`
}

// registerPayload is implemented by the per-resource POST payloads.
type registerPayload[T any] interface {
	ToData() *T
}

func registerResource[T any, P registerPayload[T]](h *Handler, r *http.Request, svc *storage.Service[T], payload P) (*httpx.Response, error) {
	if err := httpx.GetRequestData(r, payload); err != nil {
		return nil, err
	}
	if err := h.Validate.Struct(payload); err != nil {
		return nil, httpx.ErrInvalidRequest(err.Error())
	}
	obj, err := svc.Insert(r.Context(), payload.ToData())
	if err != nil {
		return nil, err
	}
	log.Ctx(r.Context()).Info().Str("id", obj.ID).Str("family", svc.Name()).Msg("registered asset")
	return &httpx.Response{
		StatusCode: http.StatusOK,
		Response:   idResponse{ID: obj.ID},
	}, nil
}

func getResource[T any, R any](r *http.Request, svc *storage.Service[T], kind string, translate func(*storage.Object[T]) (R, error)) (*httpx.Response, error) {
	id := chi.URLParam(r, "id")
	if _, err := uuid.ParseID(id); err != nil {
		return nil, httpx.ErrInvalidAssetID(kind)
	}
	obj, err := svc.GetByID(r.Context(), id)
	if err != nil {
		return nil, err
	}
	res, err := translate(obj)
	if err != nil {
		log.Ctx(r.Context()).Error().Err(err).Str("id", id).Str("family", svc.Name()).
			Msg("stored record failed translation")
		return nil, err
	}
	return &httpx.Response{StatusCode: http.StatusOK, Response: res}, nil
}

// listResource lists a family. Records that fail translation are dropped
// from the list, logged, and counted in the response envelope; one bad
// record never fails the whole listing.
func listResource[T any, R any](r *http.Request, svc *storage.Service[T], translate func(*storage.Object[T]) (R, error)) (*httpx.Response, error) {
	objs, err := svc.Search(r.Context(), storage.ActiveFilter())
	if err != nil {
		return nil, err
	}
	rsp := listResponse[R]{List: make([]R, 0, len(objs))}
	for i := range objs {
		res, err := translate(&objs[i])
		if err != nil {
			log.Ctx(r.Context()).Warn().Err(err).Str("id", objs[i].ID).Str("family", svc.Name()).
				Msg("dropping record that failed translation")
			rsp.Dropped++
			continue
		}
		rsp.List = append(rsp.List, res)
	}
	return &httpx.Response{StatusCode: http.StatusOK, Response: rsp}, nil
}

// updatePayload is the part of every PUT body the gateway decodes itself.
// Field values stay in the raw body and travel through the mask merge.
type updatePayload struct {
	ID   string   `json:"id"`
	Mask []string `json:"mask"`
}

// updateResource implements read-merge-write: fetch the current record,
// merge the masked payload fields into it, and write the result back under
// the same mask.
func updateResource[T any](h *Handler, r *http.Request, svc *storage.Service[T], kind string, rules fieldmask.Rules, check func(*T) error) (*httpx.Response, error) {
	if r.Method != http.MethodPut {
		return nil, httpx.ErrReqMethodNotSupported()
	}
	raw, err := io.ReadAll(r.Body)
	if err != nil || len(raw) == 0 {
		return nil, httpx.ErrUnableToParseReqData()
	}
	var p updatePayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, httpx.ErrUnableToParseReqData()
	}
	// groups take the id from the path; the other resources carry it in the body
	if pathID := chi.URLParam(r, "id"); pathID != "" {
		if p.ID != "" && p.ID != pathID {
			return nil, httpx.ErrInvalidRequest("body id does not match path id")
		}
		p.ID = pathID
	}
	if _, err := uuid.ParseID(p.ID); err != nil {
		return nil, httpx.ErrInvalidAssetID(kind)
	}
	if len(p.Mask) == 0 {
		return nil, httpx.ErrInvalidRequest("update mask must name at least one field")
	}

	cur, err := svc.GetByID(r.Context(), p.ID)
	if err != nil {
		return nil, err
	}
	if cur.Data == nil {
		return nil, assets.ErrTranslation.New(kind + " record has no data")
	}
	curJSON, err := json.Marshal(cur.Data)
	if err != nil {
		return nil, assets.ErrTranslation.New("unable to encode stored record").Err(err)
	}

	merged, err := fieldmask.Apply(curJSON, raw, p.Mask, rules)
	if err != nil {
		return nil, err
	}
	var data T
	if err := json.Unmarshal(merged, &data); err != nil {
		return nil, httpx.ErrInvalidRequest("update value has wrong type: " + err.Error())
	}
	if check != nil {
		if err := check(&data); err != nil {
			return nil, httpx.ErrInvalidRequest(err.Error())
		}
	}

	err = svc.Update(r.Context(), storage.UpdateObject[T]{
		ID:   p.ID,
		Data: &data,
		Mask: storage.FieldMask{Paths: p.Mask},
	})
	if err != nil {
		return nil, err
	}
	log.Ctx(r.Context()).Info().Str("id", p.ID).Str("family", svc.Name()).Strs("mask", p.Mask).Msg("updated asset")
	return &httpx.Response{StatusCode: http.StatusOK, Response: idResponse{ID: p.ID}}, nil
}

func deleteResource[T any](r *http.Request, svc *storage.Service[T], kind string) (*httpx.Response, error) {
	id := chi.URLParam(r, "id")
	if _, err := uuid.ParseID(id); err != nil {
		return nil, httpx.ErrInvalidAssetID(kind)
	}
	if err := svc.Delete(r.Context(), id); err != nil {
		return nil, err
	}
	log.Ctx(r.Context()).Info().Str("id", id).Str("family", svc.Name()).Msg("deleted asset")
	return &httpx.Response{StatusCode: http.StatusOK, Response: idResponse{ID: id}}, nil
}
