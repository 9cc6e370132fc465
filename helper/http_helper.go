package helper

import (
	"errors"
	"math"
	"net/http"
	"reflect"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
)

const (
	textError             = `error`
	textOk                = `ok`
	codeSuccess           = 200
	codeBadRequestError   = 400
	codeUnauthorizedError = 401
	codeValidationError   = 403
	codeNotFound          = 404
	codeConflict          = 409
	codeInternalError     = 500
)

// ResponseHelper ...
type ResponseHelper struct {
	C        *gin.Context
	Status   string
	Message  string
	Data     interface{}
	Code     int // not the http code
	CodeType string
}

// HTTPHelper ...
type HTTPHelper struct {
	Validate   *validator.Validate
	Translator ut.Translator
}

// NewHTTPHelper hooks into gin's binding validator and registers the
// english translations, so binding failures can be sent per-field.
func NewHTTPHelper() *HTTPHelper {
	h := &HTTPHelper{}
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		locale := en.New()
		trans, found := ut.New(locale, locale).GetTranslator("en")
		if found && entranslations.RegisterDefaultTranslations(v, trans) == nil {
			h.Validate = v
			h.Translator = trans
		}
	}
	return h
}

func (u *HTTPHelper) getTypeData(i interface{}) string {
	v := reflect.ValueOf(i)
	v = reflect.Indirect(v)

	return v.Type().String()
}

// GetStatusCode maps a service-layer error to the HTTP status by its
// concrete type.
func (u *HTTPHelper) GetStatusCode(err error) int {
	statusCode := http.StatusOK
	if err != nil {
		switch u.getTypeData(err) {
		case "models.ErrorUnauthorized":
			statusCode = http.StatusUnauthorized
		case "models.ErrorNotFound":
			statusCode = http.StatusNotFound
		case "models.ErrorInvalidOperation":
			statusCode = http.StatusBadRequest
		case "models.ErrorConflict":
			statusCode = http.StatusConflict
		case "models.ErrorInternalServer":
			statusCode = http.StatusInternalServerError
		default:
			statusCode = http.StatusInternalServerError
		}
	}

	return statusCode
}

// SetResponse ...
// Set response data.
func (u *HTTPHelper) SetResponse(c *gin.Context, status string, message string, data interface{}, code int, codeType string) ResponseHelper {
	return ResponseHelper{c, status, message, data, code, codeType}
}

// SendError ...
// Send error response to consumers.
func (u *HTTPHelper) SendError(c *gin.Context, message string, data interface{}, code int, codeType string) error {
	res := u.SetResponse(c, textError, message, data, code, codeType)

	return u.SendResponse(res)
}

// SendBadRequest ...
// Send bad request response to consumers.
func (u *HTTPHelper) SendBadRequest(c *gin.Context, message string, data interface{}) error {
	res := u.SetResponse(c, textError, message, data, codeBadRequestError, `badRequest`)

	return u.SendResponse(res)
}

// SendValidationError ...
// Send validation error response to consumers.
func (u *HTTPHelper) SendValidationError(c *gin.Context, validationErrors validator.ValidationErrors) error {
	errorResponse := map[string][]string{}
	errorTranslation := validationErrors.Translate(u.Translator)
	for _, err := range validationErrors {
		errKey := Underscore(err.StructField())
		errorResponse[errKey] = append(errorResponse[errKey], errorTranslation[err.Namespace()])
	}

	c.JSON(400, map[string]interface{}{
		"code":         codeValidationError,
		"code_type":    "validationError",
		"code_message": errorResponse,
		"data":         u.EmptyJsonMap(),
	})
	return nil
}

// SendBindingError ...
// Send a request binding failure; field validation errors go out
// translated, anything else (malformed JSON) as a plain bad request.
func (u *HTTPHelper) SendBindingError(c *gin.Context, err error) error {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && u.Translator != nil {
		return u.SendValidationError(c, validationErrors)
	}
	return u.SendBadRequest(c, err.Error(), u.EmptyJsonMap())
}

// SendUnauthorizedError ...
// Send unauthorized response to consumers.
func (u *HTTPHelper) SendUnauthorizedError(c *gin.Context, message string, data interface{}) error {
	return u.SendError(c, message, data, codeUnauthorizedError, `unAuthorized`)
}

// SendNotFoundError ...
// Send not found response to consumers.
func (u *HTTPHelper) SendNotFoundError(c *gin.Context, message string, data interface{}) error {
	return u.SendError(c, message, data, codeNotFound, `notFound`)
}

// SendServiceError ...
// Send a service-layer error with the status implied by its type.
func (u *HTTPHelper) SendServiceError(c *gin.Context, err error) error {
	code := u.GetStatusCode(err)
	codeType := `internalServerError`
	switch code {
	case http.StatusUnauthorized:
		codeType = `unAuthorized`
	case http.StatusNotFound:
		codeType = `notFound`
	case http.StatusBadRequest:
		codeType = `badRequest`
	case http.StatusConflict:
		codeType = `conflict`
	}

	c.JSON(code, map[string]interface{}{
		"code":         code,
		"code_type":    codeType,
		"code_message": err.Error(),
		"data":         u.EmptyJsonMap(),
	})
	return nil
}

// SendSuccess ...
// Send success response to consumers.
func (u *HTTPHelper) SendSuccess(c *gin.Context, message string, data interface{}) error {
	res := u.SetResponse(c, textOk, message, data, codeSuccess, `success`)

	return u.SendResponse(res)
}

// SendCreated ...
// Send success response with a 201 status.
func (u *HTTPHelper) SendCreated(c *gin.Context, message string, data interface{}) error {
	if len(message) == 0 {
		message = `success`
	}

	c.JSON(http.StatusCreated, map[string]interface{}{
		"code":         codeSuccess,
		"code_type":    `success`,
		"code_message": message,
		"data":         data,
	})
	return nil
}

// SendResponse ...
// Send response
func (u *HTTPHelper) SendResponse(res ResponseHelper) error {
	if len(res.Message) == 0 {
		res.Message = `success`
	}

	var resCode int
	switch res.Code {
	case codeSuccess:
		resCode = http.StatusOK
	case codeNotFound:
		resCode = http.StatusNotFound
	case codeUnauthorizedError:
		resCode = http.StatusUnauthorized
	case codeConflict:
		resCode = http.StatusConflict
	case codeInternalError:
		resCode = http.StatusInternalServerError
	default:
		resCode = http.StatusBadRequest
	}

	res.C.JSON(resCode, map[string]interface{}{
		"code":         res.Code,
		"code_type":    res.CodeType,
		"code_message": res.Message,
		"data":         res.Data,
	})
	return nil
}

func (u *HTTPHelper) EmptyJsonMap() map[string]interface{} {
	return make(map[string]interface{})
}

// GeneratePaging builds the paging block for the zero-based
// page/pageSize convention.
func (u *HTTPHelper) GeneratePaging(page, pageSize int, totalRecord int64) map[string]interface{} {
	totalPages := 0
	if pageSize > 0 {
		totalPages = int(math.Ceil(float64(totalRecord) / float64(pageSize)))
	}

	return map[string]interface{}{
		"total_records": totalRecord,
		"page_size":     pageSize,
		"current_page":  page,
		"total_pages":   totalPages,
	}
}

// Underscore converts a StructField name to its snake_case json key.
func Underscore(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
