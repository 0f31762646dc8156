package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Zolbayar-hub/holisticweb/internal/handler/httperr"
	"github.com/Zolbayar-hub/holisticweb/internal/handler/middleware"
	"github.com/Zolbayar-hub/holisticweb/internal/pkg/errs"
)

var errInvalidID = errs.New("invalid id")

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		httperr.Abort(c, http.StatusBadRequest, errInvalidID, "Invalid id")
		return 0, false
	}
	return id, true
}

func queryInt(c *gin.Context, key string, fallback int) int {
	if n, err := strconv.Atoi(c.Query(key)); err == nil {
		return n
	}
	return fallback
}

// actorName identifies the admin in moderation fields.
func actorName(c *gin.Context) string {
	if id, ok := middleware.GetUserID(c); ok {
		return id.String()
	}
	return ""
}
