package handlers

import (
	"github.com/gorilla/mux"
	"net/http"
)

func (h *Handlers) UploadAssets(w http.ResponseWriter, r *http.Request) {
	rentID := r.URL.Query().Get("rentId")
	if rentID == "" {
		WriteError(w, "Отсутствует параметр rentId", http.StatusBadRequest)
		return
	}

	uploads, opened, err := h.readMultipartFiles(r, "files")
	defer closeFiles(opened)
	if err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	assets, err := h.AssetService.UploadMultiple(r.Context(), rentID, uploads)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, assets, http.StatusCreated)
}

func (h *Handlers) GetRentAssets(w http.ResponseWriter, r *http.Request) {
	rentID := mux.Vars(r)["rentId"]

	assets, err := h.AssetService.GetByRentID(r.Context(), rentID)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, assets, http.StatusOK)
}

// DeleteAsset - строгое мягкое удаление: без подтверждения от внешнего
// хранилища локальный флаг не меняется
func (h *Handlers) DeleteAsset(w http.ResponseWriter, r *http.Request) {
	assetID := mux.Vars(r)["assetId"]

	if err := h.AssetService.SoftDelete(r.Context(), assetID); err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, MessageResponse{Message: "Ассет удален"}, http.StatusOK)
}
