package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorTaxonomy(t *testing.T) {
	cases := []struct {
		err    *Error
		status int
		code   string
	}{
		{NotFound("x"), http.StatusNotFound, CodeNotFound},
		{AlreadyExists("x"), http.StatusConflict, CodeAlreadyExists},
		{DuplicateItem("x"), http.StatusConflict, CodeDuplicateItem},
		{AuthFailed("x"), http.StatusUnauthorized, CodeAuthFailed},
		{TokenNotFound("x"), http.StatusUnauthorized, CodeTokenNotFound},
		{TokenExpired("x"), http.StatusUnauthorized, CodeTokenExpired},
		{NoToken("x"), http.StatusUnauthorized, CodeNoToken},
		{BadRequest("x"), http.StatusBadRequest, CodeBadRequest},
		{InvalidUsage("x"), http.StatusBadRequest, CodeInvalidUsage},
		{Internal(), http.StatusInternalServerError, CodeInternal},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.status, tc.err.Status, tc.code)
		assert.Equal(t, tc.code, tc.err.Code)
	}
}

func TestTranslate_DomainError(t *testing.T) {
	err := NotFound("set not found")
	translated := Translate(fmt.Errorf("loading set: %w", err))
	assert.Equal(t, CodeNotFound, translated.Code)
	assert.Equal(t, "set not found", translated.Message)
}

func TestTranslate_UnknownErrorDoesNotLeak(t *testing.T) {
	translated := Translate(errors.New("pq: connection refused at 10.0.0.3"))
	assert.Equal(t, CodeInternal, translated.Code)
	assert.Equal(t, http.StatusInternalServerError, translated.Status)
	assert.NotContains(t, translated.Message, "10.0.0.3")
}
