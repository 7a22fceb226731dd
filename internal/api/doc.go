// Package api exposes the sweetshop HTTP surface.
//
// Routes:
//
//	POST   /api/login                     public, returns the raw token string
//	POST   /api/users/create              public registration
//	POST   /api/sweets/create             ADMIN
//	GET    /api/sweets/getall             USER or ADMIN
//	GET    /api/sweets/getbyid/{id}       USER or ADMIN
//	PUT    /api/sweets/updateByid/{id}    ADMIN
//	DELETE /api/sweets/deletebyid/{id}    ADMIN
//
// Every request passes through the auth middleware before dispatch. Each
// protected handler calls the role guard before touching storage, so a
// denied request performs no side effects. Missing records map to 404,
// anonymous requests to 401, and insufficient roles to 403.
package api
