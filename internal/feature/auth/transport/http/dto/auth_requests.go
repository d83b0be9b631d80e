// Package dto defines data transfer objects for the auth feature's HTTP
// transport layer.
package dto

// RegisterReq represents the request body for the /api/auth/register endpoint.
// A role field sent by the client is deliberately not bound: new accounts
// always start with the "user" role.
type RegisterReq struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginReq represents the request body for the /api/auth/login endpoint.
type LoginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
