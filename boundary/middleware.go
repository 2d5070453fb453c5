package boundary

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
)

// Middleware returns a Gin middleware that routes every unhandled failure
// of a request through h: panics are recovered and handler errors attached
// via c.Error are converted after the chain runs. The request locale is
// taken from the Accept-Language header.
func Middleware(h *Handler) gin.HandlerFunc {
	return func(c *gin.Context) {
		locale := RequestLocale(c)

		defer func() {
			if r := recover(); r != nil {
				resp := h.Handle(c.Request.Context(), fmt.Errorf("panic: %v", r), locale)
				c.AbortWithStatusJSON(StatusOf(resp.Code), resp)
			}
		}()

		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		resp := h.Handle(c.Request.Context(), c.Errors.Last().Err, locale)
		c.JSON(StatusOf(resp.Code), resp)
	}
}

// RequestLocale extracts the preferred locale from the Accept-Language
// header, ignoring quality weights. Empty when the client sent none.
func RequestLocale(c *gin.Context) string {
	header := c.GetHeader("Accept-Language")
	if header == "" {
		return ""
	}
	first, _, _ := strings.Cut(header, ",")
	tag, _, _ := strings.Cut(first, ";")
	return strings.TrimSpace(tag)
}
