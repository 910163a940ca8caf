package shared

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Name string `json:"name" validate:"required"`
	Age  int    `json:"age"  validate:"gte=18"`
}

type selfValidating struct {
	Name string
}

func (s *selfValidating) Validate() error {
	if s.Name == "" {
		return assert.AnError
	}
	return nil
}

func TestDecodeJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{name: "valid json", body: `{"name": "test", "age": 30}`},
		{name: "trailing comma", body: `{"name": "test", "age": 30,}`, wantErr: true},
		{name: "empty body", body: "", wantErr: true},
		{name: "too large", body: `{"name": "` + strings.Repeat("a", MaxRequestBodyBytes) + `"}`, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(tc.body))
			w := httptest.NewRecorder()

			var target sampleRequest
			err := DecodeJSON(w, req, &target)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "test", target.Name)
			assert.Equal(t, 30, target.Age)
		})
	}
}

func TestValidateRequest(t *testing.T) {
	assert.NoError(t, ValidateRequest(&sampleRequest{Name: "a", Age: 18}))
	assert.Error(t, ValidateRequest(&sampleRequest{Age: 18}))
	assert.Error(t, ValidateRequest(&sampleRequest{Name: "a", Age: 17}))

	assert.NoError(t, ValidateRequest(&selfValidating{Name: "x"}))
	assert.ErrorIs(t, ValidateRequest(&selfValidating{}), assert.AnError)
}
