package envelope_test

import (
	"encoding/json"
	"errors"
	"testing"

	"daily/shared/envelope"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultCodeValues(t *testing.T) {
	assert.Equal(t, 1, int(envelope.Success))
	assert.Equal(t, -99, int(envelope.Error))
	assert.Equal(t, 2, int(envelope.Exist))
	assert.Equal(t, -2, int(envelope.NotFound))
	assert.Equal(t, -3, int(envelope.DtoError))
	assert.Equal(t, -4, int(envelope.DataBaseError))
	assert.Equal(t, -5, int(envelope.DtoNotComplete))
}

func TestEnvelope_JSON(t *testing.T) {
	body, err := json.Marshal(envelope.New(envelope.Success, "login successful", "Administrator"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"resultCode":1,"msg":"login successful","resultData":"Administrator"}`, string(body))

	body, err = json.Marshal(envelope.ServerBusy())
	require.NoError(t, err)
	assert.JSONEq(t, `{"resultCode":-99,"msg":"server busy, try again later","resultData":null}`, string(body))
}

func TestRequestFailed(t *testing.T) {
	env := envelope.RequestFailed(errors.New("connection refused"))

	assert.Equal(t, envelope.Error, env.ResultCode)
	assert.Equal(t, "request failed: connection refused", env.Msg)
	assert.Nil(t, env.ResultData)
	assert.False(t, env.IsSuccess())
}

func TestResultCode_String(t *testing.T) {
	assert.Equal(t, "not_found", envelope.NotFound.String())
	assert.Equal(t, "unknown", envelope.ResultCode(42).String())
}
