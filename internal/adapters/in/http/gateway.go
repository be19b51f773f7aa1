package http

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"freightgate/internal/pkg/errs"
)

const jsonContentType = "application/json; charset=utf-8"

// handleAction is the single entry point of the action API. The pipeline
// mirrors the policy order clients already depend on: CORS preflight, body
// cap, verb rules, staff auth, API key, rate limit, idempotency replay, then
// dispatch.
func (s *Server) handleAction(c echo.Context) (err error) {
	s.writeCORS(c)
	if c.Request().Method == http.MethodOptions {
		return c.NoContent(http.StatusNoContent)
	}

	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("action panicked", slog.Any("panic", r))
			err = s.writeError(c, errs.NewServerError(fmt.Errorf("panic: %v", r)))
		}
	}()

	req, err := s.decodeRequest(c)
	if err != nil {
		return s.writeError(c, err)
	}

	spec, known := s.actions[req.action]

	if req.action != "" && known && spec.post && c.Request().Method != http.MethodPost {
		return s.writeError(c, errs.NewMethodNotAllowedError())
	}

	if known && spec.staff && req.staffID == 0 {
		return s.writeError(c, errs.NewLoginRequiredError())
	}

	if s.cfg.APIKey != "" {
		got := c.Request().Header.Get("X-API-Key")
		if subtle.ConstantTimeCompare([]byte(s.cfg.APIKey), []byte(got)) != 1 {
			return s.writeError(c, errs.NewUnauthorizedError())
		}
	}

	if err = s.enforceRateLimit(c, req); err != nil {
		return s.writeError(c, err)
	}

	if req.action == "" {
		return s.writeError(c, errs.NewMissingActionError())
	}
	if !known {
		return s.writeError(c, errs.NewUnknownActionError(req.action))
	}

	replayKey := s.replayKey(c, req, spec)
	if replayKey != "" {
		if body, ok := s.replayLookup(c, replayKey); ok {
			return c.Blob(http.StatusOK, jsonContentType, []byte(body))
		}
	}

	payload, err := spec.handle(c, req)
	if err != nil {
		return s.writeError(c, err)
	}

	return s.writeSuccess(c, payload, replayKey)
}

// decodeRequest enforces the body cap, parses JSON, and resolves the action
// name from the query string or the body.
func (s *Server) decodeRequest(c echo.Context) (*actionRequest, error) {
	raw, err := io.ReadAll(io.LimitReader(c.Request().Body, s.cfg.BodyLimit+1))
	if err != nil {
		return nil, errs.NewBadRequestError("unreadable request body")
	}
	if int64(len(raw)) > s.cfg.BodyLimit {
		return nil, errs.NewPayloadTooLargeError()
	}

	data := map[string]any{}
	if len(raw) > 0 {
		if err = json.Unmarshal(raw, &data); err != nil {
			return nil, errs.NewUnsupportedMediaError()
		}
	}

	action := c.QueryParam("action")
	if action == "" {
		if a, ok := data["action"].(string); ok {
			action = a
		}
	}

	return &actionRequest{
		action:  action,
		data:    data,
		staffID: s.auth.StaffID(c),
		ip:      c.RealIP(),
	}, nil
}

// enforceRateLimit counts the request against the caller's fixed window and
// sets the X-RateLimit headers. A broken counter backend fails open: limiting
// is protection, not a correctness guarantee.
func (s *Server) enforceRateLimit(c echo.Context, req *actionRequest) error {
	key := "rate:pack_ship:" + req.ip + ":" + strconv.FormatInt(req.staffID, 10)

	count, err := s.rate.Incr(c.Request().Context(), key, s.cfg.RateWindow)
	if err != nil {
		s.logger.Warn("rate counter unavailable", slog.Any("error", err))
		return nil
	}

	c.Response().Header().Set("X-RateLimit-Limit", strconv.FormatInt(s.cfg.RateLimit, 10))
	c.Response().Header().Set("X-RateLimit-Remaining",
		strconv.FormatInt(max(0, s.cfg.RateLimit-count), 10))

	if count > s.cfg.RateLimit {
		return errs.NewRateLimitedError()
	}

	return nil
}

// replayKey derives the idempotency cache key, empty when the action does not
// participate or the caller sent no key.
func (s *Server) replayKey(c echo.Context, req *actionRequest, spec actionSpec) string {
	if !spec.idempotent {
		return ""
	}

	key := c.Request().Header.Get("X-Idempotency-Key")
	if key == "" {
		key = req.str("idempotency_key")
	}
	if key == "" {
		return ""
	}

	sum := sha256.Sum256([]byte(key))
	return "idem:pack_ship:" + req.action + ":" + hex.EncodeToString(sum[:])
}

func (s *Server) replayLookup(c echo.Context, key string) (string, bool) {
	body, ok, err := s.replay.Get(c.Request().Context(), key)
	if err != nil {
		s.logger.Warn("replay cache unavailable", slog.Any("error", err))
		return "", false
	}
	return body, ok
}

// writeSuccess wraps the payload in the {"ok":true} envelope and, for
// idempotent actions, stores the exact bytes for byte-identical replay.
func (s *Server) writeSuccess(c echo.Context, payload map[string]any, replayKey string) error {
	envelope := map[string]any{"ok": true}
	for k, v := range payload {
		envelope[k] = v
	}

	body, err := json.Marshal(envelope)
	if err != nil {
		return s.writeError(c, errs.NewServerError(err))
	}

	if replayKey != "" {
		if err = s.replay.Set(c.Request().Context(), replayKey, string(body), s.cfg.IdempotencyTTL); err != nil {
			s.logger.Warn("replay cache store failed", slog.Any("error", err))
		}
	}

	return c.Blob(http.StatusOK, jsonContentType, body)
}

// writeError renders the {"ok":false} envelope. Domain validation errors
// surface as bad_request; anything unrecognized is a logged server_error so
// internals never leak to clients.
func (s *Server) writeError(c echo.Context, err error) error {
	apiErr, ok := errs.AsAPIError(err)
	if !ok {
		switch {
		case isValidationError(err):
			apiErr = errs.NewBadRequestError(err.Error())
		default:
			s.logger.Error("action failed", slog.Any("error", err))
			apiErr = errs.NewServerError(err)
		}
	}

	if apiErr.Status >= http.StatusInternalServerError {
		s.logger.Error("action failed", slog.String("code", apiErr.Code), slog.Any("error", err))
	}

	return c.JSON(apiErr.Status, map[string]any{
		"ok": false,
		"error": map[string]any{
			"code": apiErr.Code,
			"msg":  apiErr.Msg,
		},
	})
}

// isValidationError recognizes constructor and setter failures from commands,
// queries and domain models. They all stem from bad client input.
func isValidationError(err error) bool {
	for _, sentinel := range []error{
		errs.ErrValueIsRequired,
		errs.ErrValueIsInvalid,
		errs.ErrValueIsOutOfRange,
		errs.ErrObjectNotFound,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}

	msg := err.Error()
	return strings.Contains(msg, "is required") || strings.Contains(msg, "must be created via")
}

// writeCORS answers with the caller's origin when allowlisted, the literal
// "null" otherwise. The Vary header keeps shared caches from leaking one
// origin's grant to another.
func (s *Server) writeCORS(c echo.Context) {
	reqOrigin := c.Request().Header.Get("Origin")
	allowlist := strings.TrimSpace(s.cfg.CORSOrigins)

	originToSend := "null"
	switch {
	case allowlist == "*":
		if reqOrigin != "" {
			originToSend = reqOrigin
		} else {
			originToSend = "*"
		}
	case allowlist != "":
		for _, allowed := range strings.Split(allowlist, ",") {
			if reqOrigin != "" && reqOrigin == strings.TrimSpace(allowed) {
				originToSend = reqOrigin
				break
			}
		}
	}

	h := c.Response().Header()
	h.Set("Vary", "Origin")
	h.Set("Access-Control-Allow-Origin", originToSend)
	h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	h.Set("Access-Control-Allow-Headers", "Content-Type, X-API-Key, X-Request-Id, X-Idempotency-Key")
	h.Set("Access-Control-Max-Age", "600")
	h.Set("X-Robots-Tag", "noindex, nofollow")
}
