package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"techhive-users/internal/domain/user"
	"techhive-users/internal/services"
	"techhive-users/internal/transport/httpdto"
	apperrors "techhive-users/pkg/errors"

	"github.com/gin-gonic/gin"
)

const (
	msgEmailExists       = "Email already exists."
	detailInsertConflict = "Failed to add user due to a concurrency issue."
)

type UserHandler struct {
	service *services.UserService
}

func NewUserHandler(service *services.UserService) *UserHandler {
	return &UserHandler{service: service}
}

func (h *UserHandler) List(c *gin.Context) {
	page := queryInt32(c, "page")
	pageSize := queryInt32(c, "pageSize")

	c.JSON(http.StatusOK, h.service.List(c.Request.Context(), page, pageSize))
}

func (h *UserHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	u, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.fail(c, id, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (h *UserHandler) Create(c *gin.Context) {
	payload, err := readUser(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	created, err := h.service.Create(c.Request.Context(), payload)
	if err != nil {
		h.fail(c, 0, err)
		return
	}

	c.Header("Location", fmt.Sprintf("/users/%d", created.ID))
	c.JSON(http.StatusCreated, created)
}

func (h *UserHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	payload, err := readUser(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, payload)
	if err != nil {
		h.fail(c, id, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, id, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// fail maps expected service outcomes to responses. Anything else is handed to
// the error boundary through c.Error.
func (h *UserHandler) fail(c *gin.Context, id int, err error) {
	var vErr *user.ValidationError
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, httpdto.NewMessageResponse(vErr.Message))
	case errors.Is(err, apperrors.ErrAlreadyExists):
		c.JSON(http.StatusBadRequest, httpdto.NewMessageResponse(msgEmailExists))
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, httpdto.NewMessageResponse(notFoundMessage(id)))
	case errors.Is(err, apperrors.ErrConflict):
		_ = c.Error(err)
		c.Render(http.StatusInternalServerError, problemJSON{httpdto.NewServerProblem(detailInsertConflict)})
	default:
		_ = c.Error(err)
	}
}

func notFoundMessage(id int) string {
	return fmt.Sprintf("User with ID %d not found.", id)
}

// queryInt32 reads an optional 32-bit query value. Anything that does not
// parse, including values out of int32 range, counts as absent (0).
func queryInt32(c *gin.Context, key string) int {
	v, err := strconv.ParseInt(c.Query(key), 10, 32)
	if err != nil {
		return 0
	}
	return int(v)
}

// pathID parses {id}. A non-integer segment does not name a user route at all,
// so it gets a bare 404.
func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.AbortWithStatus(http.StatusNotFound)
		return 0, false
	}
	return id, true
}

// readUser decodes the body into a *user.User. A missing, null or malformed
// body yields nil so validation answers with "User data is required.".
// gin's binders are not used here: they run the struct validator on the
// decoded value, which cannot be a nil pointer.
func readUser(c *gin.Context) (*user.User, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, fmt.Errorf("read request body: %w", err)
	}
	var payload *user.User
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, nil
	}
	return payload, nil
}
