package api

import (
	"net/http"

	"studio-booking/internal/handler/httperr"
	"studio-booking/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

type FileHandler struct {
	proofs shared.ProofStore
}

func NewFileHandler(proofs shared.ProofStore) *FileHandler {
	return &FileHandler{proofs: proofs}
}

// @Summary View payment proof
// @Tags files
// @Produce octet-stream
// @Param ref path string true "Proof reference"
// @Success 200 {file} binary
// @Failure 404 {object} httperr.Response
// @Router /files/view/{ref} [get]
func (h *FileHandler) View(c *gin.Context) {
	rc, contentType, err := h.proofs.Open(c.Request.Context(), c.Param("ref"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	defer rc.Close()

	c.DataFromReader(http.StatusOK, -1, contentType, rc, map[string]string{
		"Cache-Control":          "private, max-age=3600",
		"X-Content-Type-Options": "nosniff",
	})
}
