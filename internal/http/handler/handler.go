package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sqlapp/internal/core"
	"sqlapp/internal/http/handler/middleware"
	"sqlapp/internal/http/payload"
	"strconv"

	"go.uber.org/zap"
)

var (
	HealthCheck    = "GET /health-check"
	CreateUser     = "POST /users/{$}"
	ListUsers      = "GET /users/{$}"
	GetUser        = "GET /users/{id}"
	CreateItem     = "POST /users/{id}/items/{$}"
	ListItems      = "GET /items/{$}"
	ListMyItems    = "GET /me/items/{$}"
	DeactivateUser = "POST /delete_user/{id}"
)

// APITokenHeader carries the plaintext api token of the caller.
const APITokenHeader = "x-api-token"

type UserHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	users            UserService
}

func NewUserHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, userService UserService) *UserHandler {
	return &UserHandler{
		logs:             logger,
		requestValidator: requestValidator,
		users:            userService,
	}
}

// Register binds every endpoint to mux.
func (h *UserHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc(HealthCheck, h.HandleHealthCheck)
	mux.HandleFunc(CreateUser, h.HandleCreateUser)
	mux.HandleFunc(ListUsers, h.HandleListUsers)
	mux.HandleFunc(GetUser, h.HandleGetUser)
	mux.HandleFunc(CreateItem, h.HandleCreateItem)
	mux.HandleFunc(ListItems, h.HandleListItems)
	mux.HandleFunc(ListMyItems, h.HandleListMyItems)
	mux.HandleFunc(DeactivateUser, h.HandleDeactivateUser)
}

func (h *UserHandler) HandleHealthCheck(w http.ResponseWriter, r *http.Request) {
	h.respond(w, HealthResponse{Status: "ok"}, http.StatusOK, requestID(r))
}

func (h *UserHandler) HandleCreateUser(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var req payload.CreateUserRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.invalidRequest(w, fmt.Errorf("invalid request payload: %w", err), CreateUser, requestId)
		return
	}

	user, err := h.users.CreateUser(r.Context(), req.ToMessage())
	if err != nil {
		h.fail(w, err, CreateUser, requestId)
		return
	}

	h.logs.Infow("user registered",
		"user_id", user.ID,
		"handler", CreateUser,
		"request_id", requestId)

	h.respond(w, payload.NewUserCreateResponse(user), http.StatusOK, requestId)
}

func (h *UserHandler) HandleListUsers(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	if !h.requireToken(w, r, ListUsers, requestId) {
		return
	}

	page, err := payload.ParsePage(r.URL.Query())
	if err != nil {
		h.invalidRequest(w, err, ListUsers, requestId)
		return
	}

	users, err := h.users.ListUsers(r.Context(), page.ToCorePage())
	if err != nil {
		h.fail(w, err, ListUsers, requestId)
		return
	}

	h.respond(w, payload.NewUserResponses(users), http.StatusOK, requestId)
}

func (h *UserHandler) HandleGetUser(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	if !h.requireToken(w, r, GetUser, requestId) {
		return
	}

	id, err := pathID(r)
	if err != nil {
		h.invalidRequest(w, err, GetUser, requestId)
		return
	}

	user, err := h.users.GetUser(r.Context(), id)
	if err != nil {
		h.fail(w, err, GetUser, requestId)
		return
	}

	h.respond(w, payload.NewUserResponse(user), http.StatusOK, requestId)
}

func (h *UserHandler) HandleCreateItem(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	if !h.requireToken(w, r, CreateItem, requestId) {
		return
	}

	ownerID, err := pathID(r)
	if err != nil {
		h.invalidRequest(w, err, CreateItem, requestId)
		return
	}

	var req payload.CreateItemRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.invalidRequest(w, fmt.Errorf("invalid request payload: %w", err), CreateItem, requestId)
		return
	}

	item, err := h.users.CreateItem(r.Context(), ownerID, req.ToMessage())
	if err != nil {
		h.fail(w, err, CreateItem, requestId)
		return
	}

	h.logs.Infow("item created",
		"item_id", item.ID,
		"owner", item.Owner.String(),
		"handler", CreateItem,
		"request_id", requestId)

	h.respond(w, payload.NewItemResponse(item), http.StatusOK, requestId)
}

func (h *UserHandler) HandleListItems(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	if !h.requireToken(w, r, ListItems, requestId) {
		return
	}

	page, err := payload.ParsePage(r.URL.Query())
	if err != nil {
		h.invalidRequest(w, err, ListItems, requestId)
		return
	}

	items, err := h.users.ListItems(r.Context(), page.ToCorePage())
	if err != nil {
		h.fail(w, err, ListItems, requestId)
		return
	}

	h.respond(w, payload.NewItemResponses(items), http.StatusOK, requestId)
}

func (h *UserHandler) HandleListMyItems(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	userID, ok, err := h.users.ResolveToken(r.Context(), r.Header.Get(APITokenHeader))
	if err != nil {
		h.fail(w, err, ListMyItems, requestId)
		return
	}
	if !ok {
		h.fail(w, core.ErrInvalidCredential, ListMyItems, requestId)
		return
	}

	page, err := payload.ParsePage(r.URL.Query())
	if err != nil {
		h.invalidRequest(w, err, ListMyItems, requestId)
		return
	}

	items, err := h.users.ListOwnerItems(r.Context(), userID, page.ToCorePage())
	if err != nil {
		h.fail(w, err, ListMyItems, requestId)
		return
	}

	h.respond(w, payload.NewItemResponses(items), http.StatusOK, requestId)
}

func (h *UserHandler) HandleDeactivateUser(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	if !h.requireToken(w, r, DeactivateUser, requestId) {
		return
	}

	id, err := pathID(r)
	if err != nil {
		h.invalidRequest(w, err, DeactivateUser, requestId)
		return
	}

	user, err := h.users.DeactivateUser(r.Context(), id)
	if err != nil {
		h.fail(w, err, DeactivateUser, requestId)
		return
	}

	h.logs.Infow("user deactivated",
		"user_id", user.ID,
		"handler", DeactivateUser,
		"request_id", requestId)

	h.respond(w, payload.NewUserResponse(user), http.StatusOK, requestId)
}

// requireToken writes the error response and returns false unless the
// request carries the token of an active user.
func (h *UserHandler) requireToken(w http.ResponseWriter, r *http.Request, handler, requestId string) bool {
	exists, err := h.users.TokenExists(r.Context(), r.Header.Get(APITokenHeader))
	if err != nil {
		h.fail(w, err, handler, requestId)
		return false
	}
	if !exists {
		h.fail(w, core.ErrInvalidCredential, handler, requestId)
		return false
	}
	return true
}

func (h *UserHandler) fail(w http.ResponseWriter, err error, handler, requestId string) {
	code := http.StatusInternalServerError
	detail := detailInternalServer

	switch {
	case errors.Is(err, core.ErrInvalidCredential):
		code, detail = http.StatusNotFound, detailInvalidToken
	case errors.Is(err, core.ErrNotFound):
		code, detail = http.StatusNotFound, detailUserNotFound
	case errors.Is(err, core.ErrDuplicateEmail):
		code, detail = http.StatusBadRequest, detailEmailTaken
	case errors.Is(err, core.ErrUserInactive):
		code, detail = http.StatusBadRequest, detailUserInactive
	}

	if code == http.StatusInternalServerError {
		h.logs.Errorw("request failed",
			"error", err,
			"handler", handler,
			"request_id", requestId)
	} else {
		h.logs.Infow("request rejected",
			"reason", err.Error(),
			"status", code,
			"handler", handler,
			"request_id", requestId)
	}

	h.respond(w, ErrorResponse{Detail: detail}, code, requestId)
}

func (h *UserHandler) invalidRequest(w http.ResponseWriter, err error, handler, requestId string) {
	h.logs.Infow("invalid request",
		"error", err,
		"handler", handler,
		"request_id", requestId)
	h.respond(w, ErrorResponse{Detail: err.Error()}, http.StatusUnprocessableEntity, requestId)
}

func (h *UserHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}

func requestID(r *http.Request) string {
	if id, ok := r.Context().Value(middleware.RequestIDKey).(string); ok {
		return id
	}
	return ""
}

func pathID(r *http.Request) (uint, error) {
	raw := r.PathValue("id")
	id, err := strconv.ParseUint(raw, 10, 0)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: %w", raw, err)
	}
	return uint(id), nil
}
