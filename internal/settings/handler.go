package settings

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/costaverde/backend/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// reserved keys carry the legacy admin credentials and never leave the
// server through the public endpoint
var reservedKeys = map[string]bool{
	"admin_email":    true,
	"admin_password": true,
}

type upsertSettingRequest struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type settingsRepo interface {
	Upsert(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	All(ctx context.Context) ([]Setting, error)
}

type Handler struct {
	repo settingsRepo
}

func NewHandler(repo settingsRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/api/settings", handler.handlePublicList).Methods("GET", "OPTIONS").Name("public-settings")
	router.HandleFunc("/api/admin/settings", handler.handleList).Methods("GET").Name("admin-settings")
	router.HandleFunc("/api/admin/settings", handler.handleUpsert).Methods("PUT", "OPTIONS").Name("upsert-setting")
	router.HandleFunc("/api/admin/settings/{key}", handler.handleDelete).Methods("DELETE", "OPTIONS").Name("delete-setting")
}

func (handler *Handler) handlePublicList(w http.ResponseWriter, r *http.Request) {
	all, err := handler.repo.All(r.Context())
	if err != nil {
		log.Errorf("list settings failed: %s", err)
		http.Error(w, "list settings failed", http.StatusInternalServerError)
		return
	}

	public := map[string]string{}
	for _, setting := range all {
		if reservedKeys[setting.Key] {
			continue
		}
		public[setting.Key] = setting.Value
	}

	settingsJson, err := json.Marshal(public)
	if err != nil {
		log.Errorf("marshal settings error: %s", err)
		http.Error(w, "", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, settingsJson)
}

func (handler *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	all, err := handler.repo.All(r.Context())
	if err != nil {
		log.Errorf("list settings failed: %s", err)
		http.Error(w, "list settings failed", http.StatusInternalServerError)
		return
	}

	settingsJson, err := json.Marshal(all)
	if err != nil {
		log.Errorf("marshal settings error: %s", err)
		http.Error(w, "", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, settingsJson)
}

func (handler *Handler) handleUpsert(w http.ResponseWriter, r *http.Request) {
	var upsertReq upsertSettingRequest
	if err := json.NewDecoder(r.Body).Decode(&upsertReq); err != nil {
		log.Errorf("upsert setting, unmarshal json params: %s", err)
		http.Error(w, "upsert setting failed", http.StatusBadRequest)
		return
	}

	if upsertReq.Key == "" {
		http.Error(w, "error, key empty", http.StatusBadRequest)
		return
	}

	if err := handler.repo.Upsert(r.Context(), upsertReq.Key, upsertReq.Value); err != nil {
		log.Errorf("upsert setting [%s] failed: %s", upsertReq.Key, err)
		http.Error(w, "upsert setting failed", http.StatusInternalServerError)
		return
	}

	log.Tracef("setting [%s] updated", upsertReq.Key)
	pkg.WriteJSONResponseOK(w, `{"ok":true}`)
}

func (handler *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	key := vars["key"]
	if key == "" {
		http.Error(w, "error, key empty", http.StatusBadRequest)
		return
	}

	if err := handler.repo.Delete(r.Context(), key); err != nil {
		if errors.Is(err, ErrSettingNotFound) {
			http.Error(w, "setting not found", http.StatusNotFound)
			return
		}
		log.Errorf("delete setting [%s] failed: %s", key, err)
		http.Error(w, "delete setting failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, `{"ok":true}`)
}
