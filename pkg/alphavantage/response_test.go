package alphavantage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseSuccess(t *testing.T) {
	quote := &GlobalQuote{Symbol: "IBM"}
	resp := newResponse(quote, document(t, `{}`), "fallback")

	assert.True(t, resp.IsSuccess())
	assert.Empty(t, resp.ErrorMessage)
	require.NotNil(t, resp.Result)
	assert.Equal(t, "IBM", resp.Result.Symbol)
}

func TestResponseErrorMessagePriority(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"information wins over error message", `{"Information":"demo notice","Error Message":"hard error"}`, "demo notice"},
		{"blank information falls through", `{"Information":"   ","Error Message":"hard error"}`, "hard error"},
		{"null information falls through", `{"Information":null,"Error Message":"hard error"}`, "hard error"},
		{"error message alone", `{"Error Message":"hard error"}`, "hard error"},
		{"nothing usable", `{"Information":"","Error Message":"  "}`, "fallback"},
		{"empty document", `{}`, "fallback"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := newResponse[GlobalQuote](nil, document(t, tt.doc), "fallback")
			assert.False(t, resp.IsSuccess())
			assert.Nil(t, resp.Result)
			assert.Equal(t, tt.want, resp.ErrorMessage)
		})
	}
}
