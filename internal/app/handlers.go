package app

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"commit-assistant/internal/ai"
	"commit-assistant/internal/message"
	"commit-assistant/internal/observability"
	"commit-assistant/internal/status"
)

const maxBody = 1 << 20

type messageRequest struct {
	Status     string `json:"status"`
	Strict     *bool  `json:"strict,omitempty"`
	Structured bool   `json:"structured"`
	Lang       string `json:"lang"`
}

type messageResponse struct {
	Message string       `json:"message"`
	Shape   string       `json:"shape"`
	Tally   status.Tally `json:"tally"`
}

type chatRequest struct {
	Prompt string `json:"prompt"`
}

type chatResponse struct {
	Reply string `json:"reply"`
	Model string `json:"model"`
}

func (s *Server) message(w http.ResponseWriter, r *http.Request) {

	var req messageRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBody)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	lang := req.Lang
	if lang == "" {
		lang = s.cfg.MessageLang
	}
	locale, err := message.ParseLocale(lang)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	opts := []message.Option{message.WithLocale(locale)}

	strict := s.cfg.MessageStrict
	if req.Strict != nil {
		strict = *req.Strict
	}
	if strict {
		opts = append(opts, message.WithStrict())
	}
	if req.Structured {
		opts = append(opts, message.WithStructuredParser())
	}

	res, err := message.New(opts...).Classify(req.Status)
	if err != nil {
		var xe *message.ExtractionError
		if errors.As(err, &xe) {
			observability.ExtractionErrors.WithLabelValues(string(xe.Kind)).Inc()
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		s.logger.Error("classify failed", "err", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	observability.Messages.WithLabelValues(res.Shape.String()).Inc()

	writeJSON(w, http.StatusOK, messageResponse{
		Message: res.Message,
		Shape:   res.Shape.String(),
		Tally:   res.Tally,
	})
}

func (s *Server) chat(w http.ResponseWriter, r *http.Request) {

	var req chatRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBody)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	prompt := strings.TrimSpace(req.Prompt)
	if prompt == "" {
		prompt = ai.DefaultPrompt
	}

	resp, err := s.provider.Chat(r.Context(), ai.UserPrompt(prompt))
	if err != nil {
		s.logger.Error("chat failed", "err", err)
		writeError(w, http.StatusBadGateway, "chat failed")
		return
	}

	writeJSON(w, http.StatusOK, chatResponse{
		Reply: resp.Content,
		Model: resp.Model,
	})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}
