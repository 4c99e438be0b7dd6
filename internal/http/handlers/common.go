package handlers

import (
	"bytes"
	"encoding/json"
	"strings"

	"travelgateway/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

var errNotJSON = domain.ValidationError{Msg: domain.MsgRequestMustBeJSON}

// BindJSONObject requires a JSON content type and a body that is a JSON object.
func BindJSONObject[T any](c *gin.Context, dst *T) error {
	if !isJSONContentType(c.ContentType()) {
		return errNotJSON
	}
	raw, err := c.GetRawData()
	if err != nil {
		return errNotJSON
	}
	raw = bytes.TrimSpace(raw)
	// json.Valid rejects trailing data the binding decoder would skip
	if len(raw) == 0 || raw[0] != '{' || !json.Valid(raw) {
		return errNotJSON
	}
	if err := binding.JSON.BindBody(raw, dst); err != nil {
		return domain.ValidationError{Msg: domain.MsgRequestMustBeJSON, Err: err}
	}
	return nil
}

func isJSONContentType(ct string) bool {
	ct = strings.ToLower(strings.TrimSpace(ct))
	if ct == "application/json" {
		return true
	}
	return strings.HasPrefix(ct, "application/") && strings.HasSuffix(ct, "+json")
}
