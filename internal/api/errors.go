package api

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"content_studio/internal/domain"
)

type errorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

var validationOnce sync.Once

// registerValidation makes validator report fields by their JSON names.
func registerValidation() {
	validationOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
	})
}

func (h *Handler) badRequest(c *gin.Context, message string, err error) {
	c.JSON(http.StatusBadRequest, errorResponse{Error: message, Details: details(err)})
}

// fail answers 404 for missing records and a generic 500 for anything else.
// The cause is logged, never returned.
func (h *Handler) fail(c *gin.Context, err error, notFound, message string) {
	if notFound != "" && errors.Is(err, domain.ErrNotFound) {
		c.JSON(http.StatusNotFound, errorResponse{Error: notFound})
		return
	}
	h.logger.ErrorContext(c.Request.Context(), message,
		"error", err,
		"request_id", c.GetString(requestIDKey),
	)
	c.JSON(http.StatusInternalServerError, errorResponse{Error: message})
}

func details(err error) []string {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}

	out := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, fieldMessage(fe))
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
	}
}

func parseID(c *gin.Context, param string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "Invalid ID"})
		return 0, false
	}
	return id, true
}

// statusFilter splits ?status=a,b into its non-blank values.
func statusFilter(c *gin.Context) []string {
	var statuses []string
	for _, s := range strings.Split(c.Query("status"), ",") {
		if s = strings.TrimSpace(s); s != "" {
			statuses = append(statuses, s)
		}
	}
	return statuses
}
