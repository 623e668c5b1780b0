package handler

import (
	"fmt"
	"io"
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/bizmetrics-api/internal/domain"
	"github.com/vfg2006/bizmetrics-api/internal/usecases/metricsing"
	"github.com/vfg2006/bizmetrics-api/pkg/apiErrors"
	"github.com/vfg2006/bizmetrics-api/pkg/log"
)

const (
	uploadFormField = "file"

	// Espaço para boundaries e cabeçalhos das partes além do próprio arquivo
	multipartOverhead = 64 << 10

	msgUploadSuccess    = "File processed and metrics stored successfully"
	msgUploadFailed     = "File upload failed"
	msgNoFileUploaded   = "No file uploaded"
	msgProcessingFailed = "Failed to process uploaded file"
)

type UploadResponse struct {
	Success  bool            `json:"success"`
	Message  string          `json:"message"`
	Metrics  *domain.Metrics `json:"metrics"`
	UploadID string          `json:"upload_id"`
}

func UploadMetrics(service metricsing.Uploader, maxBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		r.Body = http.MaxBytesReader(w, r.Body, maxBytes+multipartOverhead)

		if err := r.ParseMultipartForm(maxBytes); err != nil {
			// Requisição sem multipart é tratada como envio sem arquivo
			if errors.Is(err, http.ErrNotMultipart) {
				apiErrors.WriteError(w, apiErrors.ErrNoFileUploaded, msgNoFileUploaded, nil)
				return
			}

			var maxBytesErr *http.MaxBytesError
			if errors.As(err, &maxBytesErr) {
				err = fmt.Errorf("file too large: limit is %d bytes", maxBytes)
			}

			logger.WithError(err).Warn("upload: corpo multipart inválido")
			apiErrors.WriteError(w, apiErrors.ErrUploadFailed, msgUploadFailed, err.Error())
			return
		}
		defer r.MultipartForm.RemoveAll()

		file, header, err := r.FormFile(uploadFormField)
		if err != nil {
			if errors.Is(err, http.ErrMissingFile) {
				apiErrors.WriteError(w, apiErrors.ErrNoFileUploaded, msgNoFileUploaded, nil)
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrUploadFailed, msgUploadFailed, err.Error())
			return
		}
		defer file.Close()

		if header.Size > maxBytes {
			apiErrors.WriteError(w, apiErrors.ErrUploadFailed, msgUploadFailed, fmt.Sprintf("file too large: limit is %d bytes", maxBytes))
			return
		}

		content, err := io.ReadAll(file)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrUploadFailed, msgUploadFailed, err.Error())
			return
		}

		result, err := service.Upload(r.Context(), domain.UploadedFile{
			Name:    header.Filename,
			Size:    header.Size,
			Content: content,
		})
		if err != nil {
			code := apiErrors.ErrProcessingFailed
			var uploadErr *metricsing.UploadError
			if errors.As(err, &uploadErr) {
				code = uploadErr.Code
			}

			apiErrors.WriteError(w, code, msgProcessingFailed, err.Error())
			return
		}

		writeJSON(w, r, http.StatusOK, UploadResponse{
			Success:  true,
			Message:  msgUploadSuccess,
			Metrics:  result.Metrics,
			UploadID: result.UploadID,
		})
	}
}
