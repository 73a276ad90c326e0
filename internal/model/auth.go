package model

import "github.com/golang-jwt/jwt/v5"

// SessionClaims are JWT claims for session-scoped tokens
type SessionClaims struct {
	SessionID string `json:"sessionId"`
	jwt.RegisteredClaims
}

// StartSessionResponse is returned when a session is started or resumed
type StartSessionResponse struct {
	SessionID string `json:"sessionId"`
	Token     string `json:"token"`
	Resumed   bool   `json:"resumed"`
}
