package utils

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPagination(t *testing.T) {
	assert.Equal(t, 0, CalculateTotalPages(0, 10))
	assert.Equal(t, 1, CalculateTotalPages(6, 10))
	assert.Equal(t, 3, CalculateTotalPages(21, 10))
	assert.Equal(t, 0, CalculateOffset(0, 10))
	assert.Equal(t, 20, CalculateOffset(3, 10))

	items := []int{1, 2, 3, 4, 5}
	assert.Equal(t, []int{3, 4}, Paginate(items, 2, 2))
	assert.Equal(t, []int{5}, Paginate(items, 4, 10))
	assert.Equal(t, []int{}, Paginate(items, 5, 2))
}

func TestParseInt(t *testing.T) {
	assert.Equal(t, 7, ParseInt("", 7))
	assert.Equal(t, 7, ParseInt("abc", 7))
	assert.Equal(t, 7, ParseInt("-2", 7))
	assert.Equal(t, 3, ParseInt("3", 7))
}

func TestValidateStruct(t *testing.T) {
	type input struct {
		Name   string   `json:"name" validate:"required"`
		Rating int      `json:"rating" validate:"min=1,max=5"`
		Seats  []string `json:"seats" validate:"unique"`
	}

	assert.Nil(t, ValidateStruct(input{Name: "Ann", Rating: 5, Seats: []string{"A1"}}))

	errs := ValidateStruct(input{Rating: 9, Seats: []string{"A1", "A1"}})
	assert.Equal(t, "This field is required", errs["name"])
	assert.Equal(t, "Maximum is 5", errs["rating"])
	assert.Equal(t, "Values must be unique", errs["seats"])
}

func TestRandomPortrait(t *testing.T) {
	for i := 0; i < 20; i++ {
		url := RandomPortrait()
		assert.True(t, strings.HasPrefix(url, "https://randomuser.me/api/portraits/"), url)
		assert.True(t, strings.HasSuffix(url, ".jpg"), url)
	}
}

func TestRequestIDContext(t *testing.T) {
	_, ok := GetRequestIDFromContext(context.Background())
	assert.False(t, ok)

	ctx := SetRequestIDContext(context.Background(), "abc")
	id, ok := GetRequestIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "abc", id)
}

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{name: "valid", body: `{"name":"Ann"}`},
		{name: "empty", body: ``, wantErr: "body must not be empty"},
		{name: "unknown field", body: `{"age":3}`, wantErr: `json: unknown field "age"`},
		{name: "wrong type", body: `{"name":3}`, wantErr: `body contains incorrect JSON type for field "name"`},
		{name: "two values", body: `{"name":"a"}{"name":"b"}`, wantErr: "body must only contain a single JSON value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			var dst payload
			err := DecodeJSON(httptest.NewRecorder(), r, &dst)
			if tt.wantErr == "" {
				require.NoError(t, err)
				assert.Equal(t, "Ann", dst.Name)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}

func TestResponses(t *testing.T) {
	w := httptest.NewRecorder()
	ResponseBadRequest(w, "Validation failed", map[string]string{"name": "This field is required"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var body Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Status)
	assert.Equal(t, "Validation failed", body.Message)
	assert.Nil(t, body.Data)

	w = httptest.NewRecorder()
	ResponsePaginated(w, "ok", []int{1}, map[string]int{"page": 1})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":true,"message":"ok","data":[1],"pagination":{"page":1}}`, w.Body.String())
}
