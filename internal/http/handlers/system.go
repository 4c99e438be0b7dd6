package handlers

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
)

// GET /api/health
func (g Gateway) Health(c *gin.Context) {
	stored := false
	if g.Plans != nil {
		_, stored = g.Plans.Latest()
	}
	c.JSON(http.StatusOK, gin.H{
		"status":         "ok",
		"plan_available": stored,
	})
}

type routeInfo struct {
	Method string `json:"method"`
	Path   string `json:"path"`
}

// RouteList serves the routes registered on r at request time, ordered by path.
func RouteList(r *gin.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		routes := r.Routes()
		out := make([]routeInfo, 0, len(routes))
		for _, rt := range routes {
			out = append(out, routeInfo{Method: rt.Method, Path: rt.Path})
		}
		sort.Slice(out, func(i, j int) bool {
			if out[i].Path != out[j].Path {
				return out[i].Path < out[j].Path
			}
			return out[i].Method < out[j].Method
		})
		c.JSON(http.StatusOK, gin.H{"routes": out})
	}
}
