// internal/utils/validation.go
package utils

import (
	"encoding/json"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/safespace-labs/SafeSpace_Backend/internal/constants"
)

var (
	// validate is a singleton validator instance
	validate *validator.Validate
)

// InitValidator initializes the validator singleton.
func InitValidator() {
	validate = validator.New()

	// Register function to get json tag names instead of struct field names
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	log.Info().Msg("Validator initialized")
}

// GetValidator returns the singleton validator instance
func GetValidator() *validator.Validate {
	if validate == nil {
		InitValidator()
	}
	return validate
}

// ValidateStruct validates a struct using the validator. Used for
// configuration validation at startup; request bodies are deliberately not
// validated (see DecodeJSONLenient).
func ValidateStruct(v interface{}) error {
	if validate == nil {
		InitValidator()
	}

	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if ok := errorsAs(err, &validationErrors); ok && len(validationErrors) > 0 {
		first := validationErrors[0]
		return NewBadRequestError("invalid value for field " + first.Field())
	}

	return NewBadRequestError(err.Error())
}

// errorsAs is a tiny indirection so ValidateStruct reads linearly.
func errorsAs(err error, target *validator.ValidationErrors) bool {
	v, ok := err.(validator.ValidationErrors)
	if !ok {
		return false
	}
	*target = v
	return true
}

// DecodeJSONLenient decodes a JSON request body into the provided struct.
//
// Parameters:
//   - r: the request whose body to decode
//   - v: destination struct pointer
//
// The moderation API treats a missing, empty, or malformed body as an empty
// object rather than a client error: the endpoint contracts favor
// availability over strict validation. Decode failures are logged at debug
// level and otherwise ignored. The body size is still capped to guard
// against oversized payloads.
func DecodeJSONLenient(r *http.Request, v interface{}) {
	if r.Body == nil {
		return
	}
	r.Body = http.MaxBytesReader(nil, r.Body, constants.MaxRequestBodySize)

	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		log.Debug().Err(err).Str("path", r.URL.Path).Msg("Request body ignored, treating as empty")
	}
}
