package handler

import (
	"errors"
	"net/http"
	"reflect"
	"strconv"

	"apitf/internal/apierror"
	"apitf/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON inválido: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// respondServiceError maps the business error taxonomy to HTTP responses:
// NotFound → 404, InsufficientStock / InvalidOperation → 400,
// InvalidEntity → 422 with field messages. Anything else is an internal
// failure: logged in full, returned as an opaque 500.
func respondServiceError(c *gin.Context, err error) {
	var (
		notFound     *service.NotFoundError
		insufficient *service.InsufficientStockError
		invalidOp    *service.InvalidOperationError
		invalidEnt   *service.InvalidEntityError
	)
	switch {
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, apierror.New(notFound.Msg))
	case errors.As(err, &insufficient):
		c.JSON(http.StatusBadRequest, apierror.New(insufficient.Msg))
	case errors.As(err, &invalidOp):
		c.JSON(http.StatusBadRequest, apierror.New(invalidOp.Msg))
	case errors.As(err, &invalidEnt):
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(invalidEnt.Fields))
	default:
		log.Error().
			Str("path", c.FullPath()).
			Str("method", c.Request.Method).
			Err(err).
			Msg("internal error")
		c.JSON(http.StatusInternalServerError, apierror.New("Erro interno no servidor"))
	}
}

// parseUintParam parses a numeric path parameter, writing a 400 when it is
// not a positive integer.
func parseUintParam(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || v == 0 {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return 0, false
	}
	return uint(v), true
}
