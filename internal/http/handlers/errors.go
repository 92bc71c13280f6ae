package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/learnpath-backend/internal/http/response"
	"github.com/yungbote/learnpath-backend/internal/platform/apierr"
	"github.com/yungbote/learnpath-backend/internal/platform/ctxutil"
	"github.com/yungbote/learnpath-backend/internal/platform/logger"
)

// respondServiceError logs err in full and answers with a client-safe message. Server
// errors always get failMsg so store errors and query text stay in the logs.
func respondServiceError(c *gin.Context, log *logger.Logger, op string, err error, failMsg string) {
	status := apierr.StatusOf(err)
	code := "internal_error"
	msg := failMsg
	if ae, ok := apierr.As(err); ok {
		if ae.Code != "" {
			code = ae.Code
		}
		if status < http.StatusInternalServerError && ae.Err != nil {
			msg = ae.Err.Error()
		}
	}

	fields := []interface{}{"op", op, "status", status, "code", code, "error", err}
	if td := ctxutil.GetTraceData(c.Request.Context()); td != nil {
		fields = append(fields, "trace_id", td.TraceID, "request_id", td.RequestID)
	}
	if status >= http.StatusInternalServerError {
		log.Error("request failed", fields...)
	} else {
		log.Warn("request rejected", fields...)
	}
	_ = c.Error(err)
	response.RespondError(c, status, code, msg)
}
