package contact

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/costaverde/backend/internal/middleware"
	"github.com/costaverde/backend/internal/telemetry/metrics"
	"github.com/costaverde/backend/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type leadsRepo interface {
	AddLead(ctx context.Context, lead *Lead) (*Lead, error)
	LeadsPage(ctx context.Context, page, size int) ([]Lead, error)
	CountAll(ctx context.Context) (int, error)
	DeleteLead(ctx context.Context, id int) error
}

type Handler struct {
	repo    leadsRepo
	metrics *metrics.Manager
}

func NewHandler(repo leadsRepo, metrics *metrics.Manager) *Handler {
	return &Handler{
		repo:    repo,
		metrics: metrics,
	}
}

func (handler *Handler) SetupRoutes(
	router *mux.Router,
	rateLimiter middleware.RequestRateLimiter,
	allowedPerMin int,
) {
	contactSubrouter := router.PathPrefix("/api/contact").Subrouter()
	contactSubrouter.HandleFunc("", handler.handleNewLead).Methods("POST", "OPTIONS").Name("new-contact-lead")

	// the contact form is open to the whole internet, keep spammers in check
	contactSubrouter.Use(middleware.RateLimit(rateLimiter, "contact-form", allowedPerMin, handler.metrics))

	router.HandleFunc("/api/admin/contacts/page/{page}/size/{size}", handler.handleLeadsPage).Methods("GET", "OPTIONS").Name("contact-leads-page")
	router.HandleFunc("/api/admin/contacts/{id}", handler.handleDeleteLead).Methods("DELETE", "OPTIONS").Name("delete-contact-lead")
}

func (handler *Handler) handleNewLead(w http.ResponseWriter, r *http.Request) {
	var lead Lead
	if err := json.NewDecoder(r.Body).Decode(&lead); err != nil {
		log.Errorf("new contact lead, unmarshal json params: %s", err)
		http.Error(w, "add lead failed", http.StatusBadRequest)
		return
	}

	if lead.Email == "" {
		http.Error(w, "error, email empty", http.StatusBadRequest)
		return
	}
	if lead.Message == "" {
		http.Error(w, "error, message empty", http.StatusBadRequest)
		return
	}

	userIP, err := pkg.ReadUserIP(r)
	if err != nil {
		// best effort, a lead without the sender IP is still a lead
		log.Warnf("new contact lead, read user ip: %s", err)
	}
	lead.UserIP = userIP

	added, err := handler.repo.AddLead(r.Context(), &lead)
	if err != nil {
		log.Errorf("add contact lead failed: %s", err)
		http.Error(w, "add lead failed", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterContactLeads.Inc()
	log.Tracef("new contact lead %d from %s", added.ID, added.UserIP)
	pkg.WriteResponse(w, pkg.ContentType.Text, fmt.Sprintf("added:%d", added.ID), http.StatusCreated)
}

func (handler *Handler) handleLeadsPage(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	page, err := strconv.Atoi(vars["page"])
	if err != nil {
		http.Error(w, "parse form error, parameter <page>", http.StatusBadRequest)
		return
	}
	size, err := strconv.Atoi(vars["size"])
	if err != nil {
		http.Error(w, "parse form error, parameter <size>", http.StatusBadRequest)
		return
	}
	if page < 1 || size < 1 {
		http.Error(w, "invalid page or size (has to be non-zero value)", http.StatusBadRequest)
		return
	}

	leads, err := handler.repo.LeadsPage(r.Context(), page, size)
	if err != nil {
		log.Errorf("get contact leads page failed: %s", err)
		http.Error(w, "get leads failed", http.StatusInternalServerError)
		return
	}

	total, err := handler.repo.CountAll(r.Context())
	if err != nil {
		log.Errorf("get contact leads count failed: %s", err)
		http.Error(w, "get leads failed", http.StatusInternalServerError)
		return
	}

	leadsJson, err := json.Marshal(leads)
	if err != nil {
		log.Errorf("marshal contact leads error: %s", err)
		http.Error(w, "", http.StatusInternalServerError)
		return
	}

	resJson := fmt.Sprintf(`{"leads": %s, "total": %d}`, leadsJson, total)
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, []byte(resJson))
}

func (handler *Handler) handleDeleteLead(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, "error, invalid id", http.StatusBadRequest)
		return
	}

	if err := handler.repo.DeleteLead(r.Context(), id); err != nil {
		if errors.Is(err, ErrLeadNotFound) {
			http.Error(w, "lead not found", http.StatusNotFound)
			return
		}
		log.Errorf("delete contact lead %d failed: %s", id, err)
		http.Error(w, "delete lead failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteTextResponseOK(w, fmt.Sprintf("deleted:%d", id))
}
