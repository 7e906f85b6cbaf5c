// Package gate decides whether a request must be authenticated and, if so,
// who is making it.
//
// The decision is split into pure helpers ([RequiresAuth],
// [ExtractBasicCredentials], [ExtractSessionCookie]) and an [Authenticator]
// chosen once at startup from the configured auth type. The HTTP middleware
// in internal/handler/http composes them.
package gate
