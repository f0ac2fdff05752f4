package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/costaverde/backend/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type contentRepo interface {
	AddBanner(ctx context.Context, banner *Banner) (*Banner, error)
	UpdateBanner(ctx context.Context, banner *Banner) error
	DeleteBanner(ctx context.Context, id int) error
	Banners(ctx context.Context, activeOnly bool) ([]Banner, error)

	AddVideo(ctx context.Context, video *Video) (*Video, error)
	UpdateVideo(ctx context.Context, video *Video) error
	DeleteVideo(ctx context.Context, id int) error
	Videos(ctx context.Context, activeOnly bool) ([]Video, error)

	AddGalleryImage(ctx context.Context, image *GalleryImage) (*GalleryImage, error)
	UpdateGalleryImage(ctx context.Context, image *GalleryImage) error
	DeleteGalleryImage(ctx context.Context, id int) error
	GalleryImages(ctx context.Context) ([]GalleryImage, error)
}

type Handler struct {
	repo contentRepo
}

func NewHandler(repo contentRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	// public site content
	router.HandleFunc("/api/banners", handler.handlePublicBanners).Methods("GET", "OPTIONS").Name("public-banners")
	router.HandleFunc("/api/videos", handler.handlePublicVideos).Methods("GET", "OPTIONS").Name("public-videos")
	router.HandleFunc("/api/gallery", handler.handleGallery).Methods("GET", "OPTIONS").Name("public-gallery")

	// admin content management
	router.HandleFunc("/api/admin/banners", handler.handleAllBanners).Methods("GET").Name("admin-banners")
	router.HandleFunc("/api/admin/banners", handler.handleAddBanner).Methods("POST", "OPTIONS").Name("new-banner")
	router.HandleFunc("/api/admin/banners", handler.handleUpdateBanner).Methods("PUT", "OPTIONS").Name("update-banner")
	router.HandleFunc("/api/admin/banners/{id}", handler.handleDeleteBanner).Methods("DELETE", "OPTIONS").Name("delete-banner")

	router.HandleFunc("/api/admin/videos", handler.handleAllVideos).Methods("GET").Name("admin-videos")
	router.HandleFunc("/api/admin/videos", handler.handleAddVideo).Methods("POST", "OPTIONS").Name("new-video")
	router.HandleFunc("/api/admin/videos", handler.handleUpdateVideo).Methods("PUT", "OPTIONS").Name("update-video")
	router.HandleFunc("/api/admin/videos/{id}", handler.handleDeleteVideo).Methods("DELETE", "OPTIONS").Name("delete-video")

	router.HandleFunc("/api/admin/gallery", handler.handleAddGalleryImage).Methods("POST", "OPTIONS").Name("new-gallery-image")
	router.HandleFunc("/api/admin/gallery", handler.handleUpdateGalleryImage).Methods("PUT", "OPTIONS").Name("update-gallery-image")
	router.HandleFunc("/api/admin/gallery/{id}", handler.handleDeleteGalleryImage).Methods("DELETE", "OPTIONS").Name("delete-gallery-image")
}

func writeListJSON(w http.ResponseWriter, what string, list any) {
	listJson, err := json.Marshal(list)
	if err != nil {
		log.Errorf("marshal %s error: %s", what, err)
		http.Error(w, "", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, listJson)
}

func idFromRequest(r *http.Request) (int, error) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		return 0, fmt.Errorf("invalid id: %w", err)
	}
	return id, nil
}

func (handler *Handler) handlePublicBanners(w http.ResponseWriter, r *http.Request) {
	banners, err := handler.repo.Banners(r.Context(), true)
	if err != nil {
		log.Errorf("get banners failed: %s", err)
		http.Error(w, "get banners failed", http.StatusInternalServerError)
		return
	}
	writeListJSON(w, "banners", banners)
}

func (handler *Handler) handleAllBanners(w http.ResponseWriter, r *http.Request) {
	banners, err := handler.repo.Banners(r.Context(), false)
	if err != nil {
		log.Errorf("get all banners failed: %s", err)
		http.Error(w, "get banners failed", http.StatusInternalServerError)
		return
	}
	writeListJSON(w, "banners", banners)
}

func (handler *Handler) handleAddBanner(w http.ResponseWriter, r *http.Request) {
	var banner Banner
	if err := json.NewDecoder(r.Body).Decode(&banner); err != nil {
		log.Errorf("new banner, unmarshal json params: %s", err)
		http.Error(w, "add banner failed", http.StatusBadRequest)
		return
	}

	if banner.Title == "" {
		http.Error(w, "error, title empty", http.StatusBadRequest)
		return
	}
	if banner.ImageURL == "" {
		http.Error(w, "error, image url empty", http.StatusBadRequest)
		return
	}

	added, err := handler.repo.AddBanner(r.Context(), &banner)
	if err != nil {
		log.Errorf("add banner failed: %s", err)
		http.Error(w, "add banner failed", http.StatusInternalServerError)
		return
	}

	log.Tracef("new banner %d: [%s] added", added.ID, added.Title)
	pkg.WriteResponse(w, pkg.ContentType.Text, fmt.Sprintf("added:%d", added.ID), http.StatusCreated)
}

func (handler *Handler) handleUpdateBanner(w http.ResponseWriter, r *http.Request) {
	var banner Banner
	if err := json.NewDecoder(r.Body).Decode(&banner); err != nil {
		log.Errorf("update banner, unmarshal json params: %s", err)
		http.Error(w, "update banner failed", http.StatusBadRequest)
		return
	}

	if err := handler.repo.UpdateBanner(r.Context(), &banner); err != nil {
		if errors.Is(err, ErrBannerNotFound) {
			http.Error(w, "banner not found", http.StatusNotFound)
			return
		}
		log.Errorf("update banner %d failed: %s", banner.ID, err)
		http.Error(w, "update banner failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteTextResponseOK(w, fmt.Sprintf("updated:%d", banner.ID))
}

func (handler *Handler) handleDeleteBanner(w http.ResponseWriter, r *http.Request) {
	id, err := idFromRequest(r)
	if err != nil {
		http.Error(w, "error, invalid id", http.StatusBadRequest)
		return
	}

	if err := handler.repo.DeleteBanner(r.Context(), id); err != nil {
		if errors.Is(err, ErrBannerNotFound) {
			http.Error(w, "banner not found", http.StatusNotFound)
			return
		}
		log.Errorf("delete banner %d failed: %s", id, err)
		http.Error(w, "delete banner failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteTextResponseOK(w, fmt.Sprintf("deleted:%d", id))
}

func (handler *Handler) handlePublicVideos(w http.ResponseWriter, r *http.Request) {
	videos, err := handler.repo.Videos(r.Context(), true)
	if err != nil {
		log.Errorf("get videos failed: %s", err)
		http.Error(w, "get videos failed", http.StatusInternalServerError)
		return
	}
	writeListJSON(w, "videos", videos)
}

func (handler *Handler) handleAllVideos(w http.ResponseWriter, r *http.Request) {
	videos, err := handler.repo.Videos(r.Context(), false)
	if err != nil {
		log.Errorf("get all videos failed: %s", err)
		http.Error(w, "get videos failed", http.StatusInternalServerError)
		return
	}
	writeListJSON(w, "videos", videos)
}

func (handler *Handler) handleAddVideo(w http.ResponseWriter, r *http.Request) {
	var video Video
	if err := json.NewDecoder(r.Body).Decode(&video); err != nil {
		log.Errorf("new video, unmarshal json params: %s", err)
		http.Error(w, "add video failed", http.StatusBadRequest)
		return
	}

	if video.URL == "" {
		http.Error(w, "error, url empty", http.StatusBadRequest)
		return
	}

	added, err := handler.repo.AddVideo(r.Context(), &video)
	if err != nil {
		log.Errorf("add video failed: %s", err)
		http.Error(w, "add video failed", http.StatusInternalServerError)
		return
	}

	log.Tracef("new video %d: [%s] added", added.ID, added.Title)
	pkg.WriteResponse(w, pkg.ContentType.Text, fmt.Sprintf("added:%d", added.ID), http.StatusCreated)
}

func (handler *Handler) handleUpdateVideo(w http.ResponseWriter, r *http.Request) {
	var video Video
	if err := json.NewDecoder(r.Body).Decode(&video); err != nil {
		log.Errorf("update video, unmarshal json params: %s", err)
		http.Error(w, "update video failed", http.StatusBadRequest)
		return
	}

	if err := handler.repo.UpdateVideo(r.Context(), &video); err != nil {
		if errors.Is(err, ErrVideoNotFound) {
			http.Error(w, "video not found", http.StatusNotFound)
			return
		}
		log.Errorf("update video %d failed: %s", video.ID, err)
		http.Error(w, "update video failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteTextResponseOK(w, fmt.Sprintf("updated:%d", video.ID))
}

func (handler *Handler) handleDeleteVideo(w http.ResponseWriter, r *http.Request) {
	id, err := idFromRequest(r)
	if err != nil {
		http.Error(w, "error, invalid id", http.StatusBadRequest)
		return
	}

	if err := handler.repo.DeleteVideo(r.Context(), id); err != nil {
		if errors.Is(err, ErrVideoNotFound) {
			http.Error(w, "video not found", http.StatusNotFound)
			return
		}
		log.Errorf("delete video %d failed: %s", id, err)
		http.Error(w, "delete video failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteTextResponseOK(w, fmt.Sprintf("deleted:%d", id))
}

func (handler *Handler) handleGallery(w http.ResponseWriter, r *http.Request) {
	images, err := handler.repo.GalleryImages(r.Context())
	if err != nil {
		log.Errorf("get gallery failed: %s", err)
		http.Error(w, "get gallery failed", http.StatusInternalServerError)
		return
	}
	writeListJSON(w, "gallery", images)
}

func (handler *Handler) handleAddGalleryImage(w http.ResponseWriter, r *http.Request) {
	var image GalleryImage
	if err := json.NewDecoder(r.Body).Decode(&image); err != nil {
		log.Errorf("new gallery image, unmarshal json params: %s", err)
		http.Error(w, "add gallery image failed", http.StatusBadRequest)
		return
	}

	if image.ImageURL == "" {
		http.Error(w, "error, image url empty", http.StatusBadRequest)
		return
	}

	added, err := handler.repo.AddGalleryImage(r.Context(), &image)
	if err != nil {
		log.Errorf("add gallery image failed: %s", err)
		http.Error(w, "add gallery image failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponse(w, pkg.ContentType.Text, fmt.Sprintf("added:%d", added.ID), http.StatusCreated)
}

func (handler *Handler) handleUpdateGalleryImage(w http.ResponseWriter, r *http.Request) {
	var image GalleryImage
	if err := json.NewDecoder(r.Body).Decode(&image); err != nil {
		log.Errorf("update gallery image, unmarshal json params: %s", err)
		http.Error(w, "update gallery image failed", http.StatusBadRequest)
		return
	}

	if err := handler.repo.UpdateGalleryImage(r.Context(), &image); err != nil {
		if errors.Is(err, ErrGalleryImageNotFound) {
			http.Error(w, "gallery image not found", http.StatusNotFound)
			return
		}
		log.Errorf("update gallery image %d failed: %s", image.ID, err)
		http.Error(w, "update gallery image failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteTextResponseOK(w, fmt.Sprintf("updated:%d", image.ID))
}

func (handler *Handler) handleDeleteGalleryImage(w http.ResponseWriter, r *http.Request) {
	id, err := idFromRequest(r)
	if err != nil {
		http.Error(w, "error, invalid id", http.StatusBadRequest)
		return
	}

	if err := handler.repo.DeleteGalleryImage(r.Context(), id); err != nil {
		if errors.Is(err, ErrGalleryImageNotFound) {
			http.Error(w, "gallery image not found", http.StatusNotFound)
			return
		}
		log.Errorf("delete gallery image %d failed: %s", id, err)
		http.Error(w, "delete gallery image failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteTextResponseOK(w, fmt.Sprintf("deleted:%d", id))
}
