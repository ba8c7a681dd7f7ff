package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/wikiseek/wikiseek/domain/wikierr"
	"github.com/wikiseek/wikiseek/internal/log"
	"github.com/wikiseek/wikiseek/internal/markdown"
)

// errorResponse is the JSON body written for failed requests. Markdown
// carries the ready-to-send MarkdownV2 rendering of the message.
type errorResponse struct {
	Error    string `json:"error"`
	Message  string `json:"message"`
	Markdown string `json:"markdown"`
}

// WriteJSON writes v as a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError maps a pipeline error to an HTTP status and writes the
// error body. Unclassified errors become 500s.
func WriteError(w http.ResponseWriter, r *http.Request, err error, logger *log.Logger) {
	WriteErrorMessage(w, r, err, logger, "")
}

// WriteErrorMessage is WriteError with a caller-supplied markdown body.
// An empty body falls back to the standard error rendering.
func WriteErrorMessage(w http.ResponseWriter, r *http.Request, err error, logger *log.Logger, md string) {
	if logger == nil {
		logger = log.Default()
	}

	kind := wikierr.KindOf(err)
	status := statusFor(kind)

	if status >= http.StatusInternalServerError {
		logger.ErrorContext(r.Context(), "request failed",
			"path", r.URL.Path, "kind", string(kind), "error", err)
	} else {
		logger.DebugContext(r.Context(), "request rejected",
			"path", r.URL.Path, "kind", string(kind), "error", err)
	}

	message := "Internal error."
	if werr, ok := wikierr.As(err); ok {
		message = werr.UserMessage()
	}
	if md == "" {
		md = markdown.FormatError(message)
	}

	WriteJSON(w, status, errorResponse{Error: string(kind), Message: message, Markdown: md})
}

func statusFor(kind wikierr.Kind) int {
	switch kind {
	case wikierr.KindNoResults:
		return http.StatusNotFound
	case wikierr.KindInvalidLanguage:
		return http.StatusBadRequest
	case wikierr.KindTimeout:
		return http.StatusGatewayTimeout
	case wikierr.KindNetwork, wikierr.KindParse, wikierr.KindUnexpectedResponse:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
