package httpadapter

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/cloudwego/hertz/pkg/app"
)

// decodeInput fills out from a JSON body or, for url-encoded and multipart
// bodies, from form fields matched by out's form tags.
func decodeInput(ctx *app.RequestContext, out any) error {
	contentType := strings.ToLower(string(ctx.Request.Header.ContentType()))
	switch {
	case strings.HasPrefix(contentType, "application/x-www-form-urlencoded"),
		strings.HasPrefix(contentType, "multipart/form-data"):
		return ctx.BindForm(out)
	default:
		return decodeJSON(ctx, out)
	}
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := bytes.TrimSpace(ctx.Request.Body())
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}
