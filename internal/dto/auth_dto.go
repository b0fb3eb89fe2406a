package dto

import "encoding/json"

// UpsertUserRequest is the body of PUT /api/users/:email. Profile is
// opaque to the server and stored as-is.
type UpsertUserRequest struct {
	Name    string          `json:"name"`
	Profile json.RawMessage `json:"profile,omitempty"`
}

type UserResponse struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	Name  string `json:"name,omitempty"`
}

// TokenResponse answers an identity request with the signed token and
// the stored account.
type TokenResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type AdminCheckResponse struct {
	Admin bool `json:"admin"`
}
