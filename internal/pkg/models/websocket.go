package models

import "github.com/golang-jwt/jwt/v4"

// WebSocketClient represents one authenticated dashboard connection
type WebSocketClient struct {
	AccountID string
	Role      string
}

// WebSocketClaims are the JWT claims carried on websocket connections
type WebSocketClaims struct {
	AccountID string `json:"account_id"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}
