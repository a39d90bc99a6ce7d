package errors

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassifiedError_Builder_CarriesCategoryAndContext(t *testing.T) {
	err := ConfigError("invalid configuration").
		WithContext("file", "seostudio.yaml").
		Build()

	require.Equal(t, CategoryConfig, err.Category())
	require.Equal(t, SeverityFatal, err.Severity())
	require.Equal(t, "invalid configuration", err.Message())
	file, ok := err.Context().GetString("file")
	require.True(t, ok)
	require.Equal(t, "seostudio.yaml", file)
	require.True(t, err.IsFatal())
}

func TestClassifiedError_WrapError_UnwrapsCause(t *testing.T) {
	cause := errors.New("disk full")
	err := WrapError(cause, CategoryFileSystem, "write article").Build()

	require.ErrorIs(t, err, cause)
	require.Contains(t, err.Error(), "[filesystem:error] write article: disk full")
}

func TestAsClassified_WrappedWithFmt_FindsClassified(t *testing.T) {
	inner := ValidationError("keyword is blank").Build()
	wrapped := fmt.Errorf("generate: %w", inner)

	c, ok := AsClassified(wrapped)
	require.True(t, ok)
	require.Equal(t, CategoryValidation, c.Category())
	require.True(t, HasCategory(wrapped, CategoryValidation))
	require.Equal(t, CategoryInternal, GetCategory(errors.New("plain")))
}

func TestClassifiedError_WithContext_DoesNotMutateOriginal(t *testing.T) {
	base := NotFoundError("record missing").Build()
	derived := base.WithContext("index", 3)

	_, ok := base.Context().Get("index")
	require.False(t, ok)
	v, ok := derived.Context().Get("index")
	require.True(t, ok)
	require.Equal(t, 3, v)
	require.ErrorIs(t, derived, base)
}

func TestCLIErrorAdapter_ExitCodes(t *testing.T) {
	a := NewCLIErrorAdapter(false, nil)

	cases := map[error]int{
		nil:                                         0,
		errors.New("boom"):                          1,
		ValidationError("bad").Build():              2,
		ConfigError("bad").Build():                  7,
		NewError(CategoryFileSystem, "bad").Build(): 11,
		AlreadyExistsError("bad").Build():           11,
		RuntimeError("bad").Build():                 12,
		InternalError("bad").Build():                10,
		CanceledError("stopped").Build():            130,
	}
	for err, want := range cases {
		require.Equal(t, want, a.ExitCodeFor(err), "error %v", err)
	}
}

func TestCLIErrorAdapter_HandleError_PrintsAndExits(t *testing.T) {
	var out, logs bytes.Buffer
	a := NewCLIErrorAdapter(false, slog.New(slog.NewTextHandler(&logs, nil)))
	a.out = &out
	code := -1
	a.exit = func(c int) { code = c }

	a.HandleError(ConfigError("missing brand").Build())

	require.Equal(t, 7, code)
	require.Equal(t, "missing brand\n", out.String())
	require.Contains(t, logs.String(), "category=config")
}

func TestHTTPErrorAdapter_WriteErrorResponse_MapsStatusAndPayload(t *testing.T) {
	a := NewHTTPErrorAdapter(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/download", nil)

	a.WriteErrorResponse(rec, req, NotFoundError("no article generated yet").WithContext("step", 1).Build())

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	var payload HTTPErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	require.Equal(t, "no article generated yet", payload.Error)
	require.Equal(t, "not_found", payload.Code)
	require.EqualValues(t, 1, payload.Details["step"])
}
