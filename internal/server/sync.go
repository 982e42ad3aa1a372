package server

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"strconv"
	"strings"

	syncdomain "github.com/campusmart/campusmart/internal/sync/domain"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// adminAuth guards the sync endpoints with the static operator token. The
// storefront's full auth stack lives in the main application, not here.
func (s *Server) adminAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		if s.cfg.AdminAPIToken == "" ||
			subtle.ConstantTimeCompare([]byte(token), []byte(s.cfg.AdminAPIToken)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Next()
	}
}

func (s *Server) handleSyncAll(c *gin.Context) {
	report, err := s.syncSvc.SyncAll(c.Request.Context(), syncdomain.TriggerManual)
	if err != nil {
		s.renderSyncError(c, err, report)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (s *Server) handleSyncPayments(c *gin.Context) {
	report, err := s.syncSvc.SyncPayments(c.Request.Context())
	if err != nil {
		s.renderSyncError(c, err, report)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (s *Server) handleSyncPayouts(c *gin.Context) {
	report, err := s.syncSvc.SyncPayouts(c.Request.Context())
	if err != nil {
		s.renderSyncError(c, err, report)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (s *Server) handleListRuns(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	runs, err := s.runs.ListRecent(c.Request.Context(), s.db, limit)
	if err != nil {
		s.log.Error("list sync runs", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list sync runs"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"runs": runs})
}

func (s *Server) renderSyncError(c *gin.Context, err error, report any) {
	if errors.Is(err, syncdomain.ErrSyncAlreadyRunning) {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	s.log.Error("sync failed", zap.Error(err))
	c.JSON(http.StatusBadGateway, gin.H{"error": err.Error(), "report": report})
}
