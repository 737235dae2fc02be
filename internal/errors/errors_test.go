package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap_KeepsInnerCode(t *testing.T) {
	inner := DatasetInvalid("row 3: bad class")
	err := Wrap(inner, "failed to load launch file")

	assert.Equal(t, CodeDatasetInvalid, GetCode(err))
	assert.Equal(t, "failed to load launch file: row 3: bad class", err.Error())
	assert.True(t, stderrors.Is(err, inner))
}

func TestWrap_PlainErrorIsInternal(t *testing.T) {
	err := Wrapf(fmt.Errorf("boom"), "step %d", 2)
	assert.Equal(t, CodeInternalError, GetCode(err))
	assert.Equal(t, "step 2: boom", err.Error())
}

func TestWrap_Nil(t *testing.T) {
	assert.Nil(t, Wrap(nil, "ignored"))
	assert.Nil(t, Wrapf(nil, "ignored %s", "x"))
	assert.Nil(t, WithCode(CodeNotFound, nil))
}

func TestWithCode(t *testing.T) {
	err := WithCode(CodeInvalidInput, fmt.Errorf("bad json"))
	assert.True(t, HasCode(err, CodeInvalidInput))
	assert.Equal(t, "bad json", err.Error())

	cause := fmt.Errorf("row 1: invalid outcome")
	assert.Equal(t, "row 1: invalid outcome", WithCode(CodeDatasetInvalid, cause).Error())
	assert.ErrorIs(t, WithCode(CodeDatasetInvalid, cause), cause)

	recoded := WithCode(CodeNotFound, InvalidInput("missing"))
	assert.Equal(t, CodeNotFound, GetCode(recoded))
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code string
	}{
		{"app error", NotFound("callback x"), CodeNotFound},
		{"wrapped by fmt", fmt.Errorf("outer: %w", ConfigInvalid("PORT")), CodeConfigInvalid},
		{"plain", fmt.Errorf("plain"), "UNKNOWN"},
		{"database", DatabaseError("query failed", fmt.Errorf("conn reset")), CodeDatabaseError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, GetCode(tt.err))
		})
	}

	assert.True(t, HasCode(fmt.Errorf("x: %w", InvalidInput("y")), CodeInvalidInput))
	assert.False(t, HasCode(fmt.Errorf("plain"), CodeInvalidInput))
	assert.Equal(t, "callback x not found", NotFound("callback x").Error())
}
