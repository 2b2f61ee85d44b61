package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJoinPrompt(t *testing.T) {
	tests := []struct {
		name string
		req  TextRequest
		want string
	}{
		{name: "system and user", req: TextRequest{SystemInstruction: "JSON で答えて", UserText: "森のゲーム"}, want: "JSON で答えて\n\n森のゲーム"},
		{name: "blank system", req: TextRequest{SystemInstruction: "  ", UserText: "森のゲーム"}, want: "森のゲーム"},
		{name: "no system", req: TextRequest{UserText: "森のゲーム"}, want: "森のゲーム"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, JoinPrompt(tt.req))
		})
	}
}

func TestNewGeminiClient_MissingAPIKey(t *testing.T) {
	client, err := NewGeminiClient(context.Background(), "", 0.8)
	require.Error(t, err)
	assert.Nil(t, client)
}
