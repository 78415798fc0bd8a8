package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode"

	"github.com/RigelNana/acervo/apperror"
	"github.com/RigelNana/acervo/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	unexpectedProblem = "An unexpected problem occurred."
	conversionProblem = "An unexpected problem occurred while converting data."
	saveProblem       = "Erro ao salvar dados."
)

type failure struct {
	status  int
	title   string
	message string
}

// ErrorHandler renders the last error attached to the context as the
// response envelope. Handlers only call c.Error and return.
func ErrorHandler(log logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err
		f := classify(err)
		if f.status >= http.StatusInternalServerError {
			entry := log.WithError(err).WithField("request_id", RequestID(c))
			if appErr, ok := apperror.As(err); ok {
				entry = entry.WithField("kind", appErr.Kind.String())
			}
			entry.Error(f.title)
		}
		c.AbortWithStatusJSON(f.status, envelope(c, f))
	}
}

// Recovery turns a panic into the 500 envelope.
func Recovery(log logrus.FieldLogger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		log.WithField("request_id", RequestID(c)).WithField("panic", fmt.Sprint(recovered)).Error(unexpectedProblem)
		c.AbortWithStatusJSON(http.StatusInternalServerError, envelope(c, failure{
			status:  http.StatusInternalServerError,
			title:   unexpectedProblem,
			message: unexpectedProblem,
		}))
	})
}

func envelope(c *gin.Context, f failure) dto.APIResponse {
	return dto.Failure(f.message, &dto.ErrorDTO{
		Timestamp: time.Now(),
		Status:    f.status,
		Error:     f.title,
		Message:   f.message,
		Path:      c.Request.URL.Path,
	})
}

func classify(err error) failure {
	if appErr, ok := apperror.As(err); ok {
		return classifyApp(appErr)
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return failure{http.StatusBadRequest, saveProblem, violations(verrs)}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505", "23502":
			detail := pgErr.Detail
			if detail == "" {
				detail = pgErr.Message
			}
			return failure{http.StatusBadRequest, saveProblem, detail}
		}
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return failure{http.StatusNotFound, "Resource not found", "Resource not found"}
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) || errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return failure{http.StatusBadRequest, "Malformed request body", "Malformed request body: " + err.Error()}
	}

	return failure{http.StatusInternalServerError, unexpectedProblem, unexpectedProblem}
}

func classifyApp(e *apperror.Error) failure {
	switch e.Kind {
	case apperror.KindNotFound:
		return failure{e.Status, "Resource not found", e.Message}
	case apperror.KindBusiness:
		return failure{e.Status, "Business error", e.Message}
	case apperror.KindInvalidCredentials:
		return failure{e.Status, "Invalid credentials", e.Message}
	case apperror.KindUnauthorized:
		return failure{e.Status, "Unauthorized", e.Message}
	case apperror.KindConversion:
		return failure{e.Status, conversionProblem, e.Message}
	default:
		return failure{http.StatusInternalServerError, unexpectedProblem, unexpectedProblem}
	}
}

// violations formats constraint failures as "[field: message, ...]".
func violations(verrs validator.ValidationErrors) string {
	out := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, fieldName(fe.Field())+": "+constraintMessage(fe))
	}
	return "[" + strings.Join(out, ", ") + "]"
}

func constraintMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "must not be empty"
	case "email":
		return "must be a well-formed email address"
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	default:
		return "failed on '" + fe.Tag() + "'"
	}
}

func fieldName(name string) string {
	if strings.ToUpper(name) == name {
		return strings.ToLower(name)
	}
	runes := []rune(name)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}
