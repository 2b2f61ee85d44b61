package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shouni/go-asset-kit/pkg/analyzer"
	"github.com/shouni/go-asset-kit/pkg/gallery"
	"github.com/shouni/go-asset-kit/pkg/generator"
	"github.com/shouni/go-asset-kit/pkg/orchestrator"
	"github.com/shouni/go-asset-kit/pkg/store"
)

var errBatchNotFound = errors.New("batch not found")

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func handleError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, orchestrator.ErrEmptySelection),
		errors.Is(err, orchestrator.ErrEmptyPrompt),
		errors.Is(err, analyzer.ErrConceptTooShort):
		status = http.StatusBadRequest
	case errors.Is(err, orchestrator.ErrUnknownRecord),
		errors.Is(err, store.ErrNotFound),
		errors.Is(err, gallery.ErrNotFound),
		errors.Is(err, errBatchNotFound):
		status = http.StatusNotFound
	case errors.Is(err, orchestrator.ErrRecordBusy):
		status = http.StatusConflict
	case errors.Is(err, generator.ErrService),
		errors.Is(err, generator.ErrEmptyResult),
		errors.Is(err, analyzer.ErrInvalidResponse):
		status = http.StatusBadGateway
	}

	_ = c.Error(err)
	c.AbortWithStatusJSON(status, errorResponse{Error: err.Error()})
}
