package handlers

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/wardrobecapital/wardrobe/pkg/httpx"
	pkgvalidator "github.com/wardrobecapital/wardrobe/pkg/validator"
	appsvcs "github.com/wardrobecapital/wardrobe/services/wardrobe/application/services"
	"github.com/wardrobecapital/wardrobe/services/wardrobe/domain/models"
)

// maxImageBytes bounds a decoded photo.
const maxImageBytes = 10 << 20

// maxImageBody bounds the request body of POST /items/analyze: a photo of
// maxImageBytes in base64 plus room for the JSON envelope and data URL prefix.
var maxImageBody = int64(base64.StdEncoding.EncodedLen(maxImageBytes)) + 64<<10

const defaultImageMIME = "image/jpeg"

// AnalyzeImageRequest carries a base64 photo, optionally as a data URL.
type AnalyzeImageRequest struct {
	Image    string `json:"image"    validate:"required"                 example:"/9j/4AAQSkZJRgABAQ..."`
	MimeType string `json:"mimeType" validate:"omitempty,startswith=image/" example:"image/jpeg"`
} // @name AnalyzeImageRequest

// DraftResponse is a pre-filled add-item form.
type DraftResponse struct {
	Name     string      `json:"name"     example:"Classic Flap"`
	Brand    string      `json:"brand"    example:"Chanel"`
	Category string      `json:"category" example:"Bags"`
	Price    json.Number `json:"price"    swaggertype:"number" example:"8800"`
	Material string      `json:"material" example:"Lambskin"`
	Color    string      `json:"color"    example:"Black"`
} // @name ItemDraft

// AnalyzeImageResponse wraps the draft, null when the photo could not be read.
type AnalyzeImageResponse struct {
	Draft *DraftResponse `json:"draft"`
} // @name AnalyzeImageResponse

// AnalyzeImageHandler handles POST /items/analyze requests.
type AnalyzeImageHandler struct {
	svc *appsvcs.Services
}

// NewAnalyzeImageHandler returns an AnalyzeImageHandler backed by the given services.
func NewAnalyzeImageHandler(svc *appsvcs.Services) *AnalyzeImageHandler {
	return &AnalyzeImageHandler{svc: svc}
}

// Execute derives an item draft from a photo.
//
//	@Summary		Analyze item photo
//	@Description	Suggests name, brand, category, price, material and color for a photo. The draft is null when analysis fails.
//	@Tags			items
//	@Accept			json
//	@Produce		json
//	@Param			request	body		AnalyzeImageRequest	true	"Photo"
//	@Success		200		{object}	AnalyzeImageResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		413		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/items/analyze [post]
func (h *AnalyzeImageHandler) Execute(w http.ResponseWriter, r *http.Request) {
	if _, ok := ownerID(w, r); !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxImageBody)
	req, ok := pkgvalidator.ValidateRequest[AnalyzeImageRequest](w, r)
	if !ok {
		return
	}

	mimeType, payload := splitDataURL(req.Image)
	if req.MimeType != "" {
		mimeType = req.MimeType
	}
	image, err := base64.StdEncoding.DecodeString(payload)
	if err != nil || len(image) == 0 {
		fieldError(w, "image", "Must be base64 encoded image data")
		return
	}
	if len(image) > maxImageBytes {
		httpx.JSONError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("Image exceeds %d bytes", maxImageBytes))
		return
	}

	draft := h.svc.Portfolio.AnalyzeImage(r.Context(), image, mimeType)
	httpx.JSON(w, http.StatusOK, AnalyzeImageResponse{Draft: toDraftResponse(draft)})
}

// splitDataURL separates "data:image/png;base64,<payload>" into its MIME type
// and payload. Plain base64 is returned with the default MIME type.
func splitDataURL(s string) (string, string) {
	s = strings.TrimSpace(s)
	rest, ok := strings.CutPrefix(s, "data:")
	if !ok {
		return defaultImageMIME, s
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return defaultImageMIME, s
	}
	mimeType, _, _ := strings.Cut(meta, ";")
	if mimeType == "" {
		mimeType = defaultImageMIME
	}
	return mimeType, payload
}

func toDraftResponse(d *models.ItemDraft) *DraftResponse {
	if d == nil {
		return nil
	}
	return &DraftResponse{
		Name:     d.Name,
		Brand:    d.Brand,
		Category: d.Category.String(),
		Price:    number(d.Price),
		Material: d.Material,
		Color:    d.Color,
	}
}
