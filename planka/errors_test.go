package planka

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyResponseKinds(t *testing.T) {
	cases := []struct {
		status int
		kind   ErrorKind
	}{
		{401, KindAuthentication},
		{403, KindPermission},
		{404, KindNotFound},
		{409, KindConflict},
		{422, KindValidation},
		{429, KindRateLimit},
		{500, KindGeneric},
		{418, KindGeneric},
	}

	for _, tc := range cases {
		apiErr := classifyResponse(tc.status, nil)
		assert.Equal(t, tc.kind, apiErr.Kind, "status %d", tc.status)
		assert.Equal(t, tc.status, apiErr.Status)
		assert.NotEmpty(t, apiErr.Message, "status %d should have a default message", tc.status)
	}
}

func TestClassifyResponseValidationMessage(t *testing.T) {
	body := []byte(`{"message":"bad name"}`)
	apiErr := classifyResponse(422, body)

	assert.Equal(t, KindValidation, apiErr.Kind)
	assert.Equal(t, "bad name", apiErr.Message)
	assert.Equal(t, body, apiErr.Body)
}

func TestClassifyResponseMessageFallbacks(t *testing.T) {
	apiErr := classifyResponse(422, []byte(`{"error":"nope"}`))
	assert.Equal(t, "nope", apiErr.Message)

	apiErr = classifyResponse(422, []byte(`{"problems":["a","b"]}`))
	assert.Equal(t, "a; b", apiErr.Message)

	apiErr = classifyResponse(422, []byte(`not json at all`))
	assert.Equal(t, defaultMessages[KindValidation], apiErr.Message)
}

func TestClassifyResponseRateLimitReset(t *testing.T) {
	before := time.Now()
	apiErr := classifyResponse(429, []byte(`{"retryAfter":120}`))
	assert.WithinDuration(t, before.Add(120*time.Second), apiErr.ResetAt, 2*time.Second)

	apiErr = classifyResponse(429, nil)
	assert.WithinDuration(t, before.Add(60*time.Second), apiErr.ResetAt, 2*time.Second)
}

func TestErrorPredicates(t *testing.T) {
	wrapped := fmt.Errorf("get card: %w", classifyResponse(404, nil))

	require.True(t, IsAPIError(wrapped))
	assert.True(t, IsNotFound(wrapped))
	assert.False(t, IsValidation(wrapped))

	apiErr, ok := AsAPIError(wrapped)
	require.True(t, ok)
	assert.Equal(t, KindNotFound, apiErr.Kind)

	credErr := newCredentialError(fmt.Errorf("boom"))
	assert.True(t, IsCredentialError(credErr))
	assert.False(t, IsAPIError(credErr))

	schemaErr := newSchemaError("bad shape")
	assert.True(t, IsSchemaError(schemaErr))
	assert.False(t, IsAPIError(schemaErr))
}
