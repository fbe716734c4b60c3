package shared

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSON(t *testing.T) {
	type target struct {
		Name string `json:"name"`
	}

	tests := []struct {
		name        string
		requestBody string
		wantErr     error
		errContains string
		want        string
	}{
		{name: "valid json", requestBody: `{"name": "Biology"}`, want: "Biology"},
		{name: "invalid json", requestBody: `{"name": "x",}`, errContains: "invalid character"},
		{name: "empty body", requestBody: "", wantErr: ErrEmptyBody},
		{name: "unknown field", requestBody: `{"name": "x", "admin": true}`, errContains: "unknown field"},
		{name: "trailing data", requestBody: `{"name": "x"} {"name": "y"}`, errContains: "unexpected data"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(tc.requestBody))
			var got target
			err := DecodeJSON(req, &got)

			switch {
			case tc.wantErr != nil:
				assert.ErrorIs(t, err, tc.wantErr)
			case tc.errContains != "":
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.errContains)
			default:
				require.NoError(t, err)
				assert.Equal(t, tc.want, got.Name)
			}
		})
	}
}

type selfValidating struct{ ok bool }

func (s selfValidating) Validate() error {
	if !s.ok {
		return errors.New("custom invalid")
	}
	return nil
}

func TestValidateRequest(t *testing.T) {
	type request struct {
		Kind string `validate:"required,oneof=html java cpp"`
	}

	assert.NoError(t, ValidateRequest(request{Kind: "java"}))

	err := ValidateRequest(request{Kind: "cobol"})
	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, "oneof", verrs[0].Tag())

	assert.NoError(t, ValidateRequest(selfValidating{ok: true}))
	assert.EqualError(t, ValidateRequest(selfValidating{}), "custom invalid")
}
