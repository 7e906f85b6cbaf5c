// Package http implements the HTTP transport layer of the application.
//
// It exposes two route groups: the form-encoded account API (/users,
// /sessions, /profile, /reset_password) and the JSON /api/v1 group guarded
// by the authorization gate. Request tracing, access logging, panic
// recovery and request timeouts are handled here before requests reach the
// service layer.
package http
