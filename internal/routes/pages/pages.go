// Package pages serves the two embedded HTML pages: the route index at /
// and the dashboard at /dashboard.
package pages

import (
	_ "embed"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed index.html
var indexPage []byte

//go:embed dashboard.html
var dashboardPage []byte

const contentTypeHTML = "text/html; charset=utf-8"

func RegisterRoutes(r *gin.Engine) {
	r.GET("/", serveIndex)
	r.GET("/dashboard", serveDashboard)
}

func serveIndex(c *gin.Context) {
	c.Data(http.StatusOK, contentTypeHTML, indexPage)
}

func serveDashboard(c *gin.Context) {
	c.Data(http.StatusOK, contentTypeHTML, dashboardPage)
}
