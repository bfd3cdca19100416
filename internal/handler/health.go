package handler

import (
	"net/http"

	"lavkapos/internal/repository"

	"github.com/gin-gonic/gin"
)

// Health returns a JSON health check response. Reports whether the profile
// store had to recover from a backup on the last load, so the client can
// show a "recovered from backup" notice instead of silently serving stale
// data.
func Health(repo repository.ProfileRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"ok":                    true,
			"recovered_from_backup": repo.Recovered(),
		})
	}
}
