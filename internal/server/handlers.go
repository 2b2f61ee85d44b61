package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shouni/go-asset-kit/pkg/domain"
)

func (s *Server) listStyles(c *gin.Context) {
	styles := s.manager.Styles()
	if category := c.Query("category"); category != "" {
		c.JSON(http.StatusOK, styles.ByCategory(category))
		return
	}
	c.JSON(http.StatusOK, styles.All())
}

func (s *Server) listCategories(c *gin.Context) {
	c.JSON(http.StatusOK, s.manager.Styles().Categories())
}

type analyzeRequest struct {
	Concept string `json:"concept"`
}

func (s *Server) analyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	analysis, err := s.manager.Analyze(c.Request.Context(), req.Concept)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "analysis": analysis})
}

func (s *Server) listAssets(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"assets": s.manager.Store().List(),
		"counts": s.manager.Store().Counts(),
	})
}

func (s *Server) addAssets(c *gin.Context) {
	var records []domain.AssetRecord
	if err := c.ShouldBindJSON(&records); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, s.manager.Store().Add(records...))
}

type editRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

func (s *Server) editAsset(c *gin.Context) {
	var req editRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	rec, err := s.manager.Store().EditPrompt(c.Param("id"), req.Prompt)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (s *Server) removeAsset(c *gin.Context) {
	if err := s.manager.Store().Remove(c.Param("id")); err != nil {
		handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) regenerate(c *gin.Context) {
	// 切断されても生成中のレコードは最後まで決着させるのだ
	rec, err := s.manager.Orchestrator().RegenerateOne(context.WithoutCancel(c.Request.Context()), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	if err := s.manager.SaveGallery(); err != nil {
		_ = c.Error(err)
	}
	c.JSON(http.StatusOK, rec)
}

type batchRequest struct {
	IDs []string `json:"ids"`
}

func (s *Server) startBatch(c *gin.Context) {
	var req batchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	// バッチはリクエストより長く生きるのだ
	task, err := s.manager.Orchestrator().RunBatch(context.WithoutCancel(c.Request.Context()), req.IDs)
	if err != nil {
		handleError(c, err)
		return
	}
	id := s.track(task)
	c.JSON(http.StatusAccepted, s.viewOf(c.Request.Context(), id, task))
}

func (s *Server) retryFailed(c *gin.Context) {
	task, err := s.manager.Orchestrator().RetryFailed(context.WithoutCancel(c.Request.Context()))
	if err != nil {
		handleError(c, err)
		return
	}
	id := s.track(task)
	c.JSON(http.StatusAccepted, s.viewOf(c.Request.Context(), id, task))
}

func (s *Server) batchStatus(c *gin.Context) {
	id := c.Param("id")
	task, err := s.task(id)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, s.viewOf(c.Request.Context(), id, task))
}

func (s *Server) cancelBatch(c *gin.Context) {
	id := c.Param("id")
	task, err := s.task(id)
	if err != nil {
		handleError(c, err)
		return
	}
	task.Cancel()
	c.JSON(http.StatusAccepted, s.viewOf(c.Request.Context(), id, task))
}

type generateRequest struct {
	Prompt      string `json:"prompt"`
	Style       string `json:"style"`
	AspectRatio string `json:"aspectRatio"`
}

func (s *Server) generate(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	entry, err := s.manager.Orchestrator().Generate(
		c.Request.Context(),
		req.Prompt,
		domain.CoerceStyle(req.Style),
		domain.AspectRatio(req.AspectRatio),
	)
	if err != nil {
		handleError(c, err)
		return
	}
	if err := s.manager.SaveGallery(); err != nil {
		_ = c.Error(err)
	}
	c.JSON(http.StatusOK, entry)
}

func (s *Server) listGallery(c *gin.Context) {
	c.JSON(http.StatusOK, s.manager.Gallery().List())
}

func (s *Server) removeGalleryEntry(c *gin.Context) {
	if err := s.manager.Gallery().Remove(c.Param("id")); err != nil {
		handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) clearGallery(c *gin.Context) {
	s.manager.Gallery().Clear()
	c.Status(http.StatusNoContent)
}
