package auth

import (
	"encoding/hex"
	"fmt"

	"github.com/gofrs/uuid"
)

const TokenTypeBearer = "bearer"

// Token is the result of a successful credential exchange.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// NewOpaqueToken returns a random version 4 UUID as 32 lowercase hex characters.
func NewOpaqueToken() (string, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return hex.EncodeToString(id.Bytes()), nil
}
