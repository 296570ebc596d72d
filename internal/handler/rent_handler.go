package handlers

import (
	"encoding/json"
	"fmt"
	"github.com/gorilla/mux"
	"mime/multipart"
	"net/http"
	"rentservice/internal/models"
	"rentservice/internal/repository"
	"rentservice/internal/service"
)

// MaxFilesPerRequest - не более 10 файлов за один запрос
const MaxFilesPerRequest = 10

type CreateRentBody struct {
	Street        string             `json:"street" validate:"required"`
	StreetNumber  int                `json:"streetNumber" validate:"required"`
	Coordinates   models.Coordinates `json:"coordinates"`
	Name          string             `json:"name" validate:"required"`
	Description   string             `json:"description" validate:"required"`
	Price         float64            `json:"price" validate:"required,gt=0"`
	BedroomCount  int                `json:"bedroomCount" validate:"gte=0"`
	BathroomCount int                `json:"bathroomCount" validate:"gte=0"`
	Parking       *bool              `json:"parking" validate:"required"`
}

func (h *Handlers) CreateRent(w http.ResponseWriter, r *http.Request) {
	var req CreateRentBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Неверные данные: "+err.Error(), http.StatusBadRequest)
		return
	}

	serviceReq := repository.CreateRentRequest{
		Street:        req.Street,
		StreetNumber:  req.StreetNumber,
		Coordinates:   req.Coordinates,
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		BedroomCount:  req.BedroomCount,
		BathroomCount: req.BathroomCount,
		Parking:       *req.Parking,
	}

	rent, err := h.RentService.Create(r.Context(), serviceReq)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, rent, http.StatusCreated)
}

func (h *Handlers) GetRents(w http.ResponseWriter, r *http.Request) {
	rents, err := h.RentService.GetAll(r.Context())
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, rents, http.StatusOK)
}

func (h *Handlers) GetRent(w http.ResponseWriter, r *http.Request) {
	rentID := mux.Vars(r)["id"]

	rent, err := h.RentService.GetByID(r.Context(), rentID)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, rent, http.StatusOK)
}

func (h *Handlers) UpdateRent(w http.ResponseWriter, r *http.Request) {
	rentID := mux.Vars(r)["id"]

	var req repository.UpdateRentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	rent, err := h.RentService.Update(r.Context(), rentID, req)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, rent, http.StatusOK)
}

// readMultipartFiles разбирает multipart-форму и собирает файлы из поля field
func (h *Handlers) readMultipartFiles(r *http.Request, field string) ([]service.FileUpload, []multipart.File, error) {
	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		return nil, nil, fmt.Errorf("ошибка при обработке файлов: %w", err)
	}

	headers := r.MultipartForm.File[field]
	if len(headers) == 0 {
		return nil, nil, fmt.Errorf("файлы не переданы")
	}

	if len(headers) > MaxFilesPerRequest {
		return nil, nil, fmt.Errorf("не более %d файлов за запрос", MaxFilesPerRequest)
	}

	uploads := make([]service.FileUpload, 0, len(headers))
	opened := make([]multipart.File, 0, len(headers))

	for _, header := range headers {
		file, err := header.Open()
		if err != nil {
			return nil, opened, fmt.Errorf("не удалось открыть файл %s: %w", header.Filename, err)
		}

		opened = append(opened, file)
		uploads = append(uploads, service.FileUpload{
			FileName:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Size:        header.Size,
			Content:     file,
		})
	}

	return uploads, opened, nil
}

func closeFiles(files []multipart.File) {
	for _, f := range files {
		f.Close()
	}
}

func (h *Handlers) AddRentImages(w http.ResponseWriter, r *http.Request) {
	rentID := mux.Vars(r)["id"]

	uploads, opened, err := h.readMultipartFiles(r, "images")
	defer closeFiles(opened)
	if err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	rent, err := h.RentService.AddImages(r.Context(), rentID, uploads)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, rent, http.StatusOK)
}

func (h *Handlers) RemoveRentImage(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	rentID := vars["rentId"]
	assetID := vars["assetId"]

	rent, err := h.RentService.RemoveImage(r.Context(), rentID, assetID)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, rent, http.StatusOK)
}

func (h *Handlers) RemoveRent(w http.ResponseWriter, r *http.Request) {
	rentID := mux.Vars(r)["id"]

	if err := h.RentService.Remove(r.Context(), rentID); err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, MessageResponse{Message: "Объявление снято с публикации"}, http.StatusOK)
}
