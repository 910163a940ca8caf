package shared

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// MaxRequestBodyBytes bounds JSON request bodies.
const MaxRequestBodyBytes = 1 << 20

// validate is a singleton validator instance for request validation.
var validate = validator.New()

// DecodeJSON decodes the request body into v. Bodies larger than
// MaxRequestBodyBytes are rejected.
func DecodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) error {
	body := http.MaxBytesReader(w, r.Body, MaxRequestBodyBytes)
	return json.NewDecoder(body).Decode(v)
}

// ValidateRequest validates a request struct. If the struct implements
// Validate() error that method is used, otherwise the validator tags apply.
func ValidateRequest(v interface{}) error {
	if validator, ok := v.(interface{ Validate() error }); ok {
		return validator.Validate()
	}
	return validate.Struct(v)
}
