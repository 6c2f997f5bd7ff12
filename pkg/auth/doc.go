// Package auth implements request authentication and the login/registration
// flow: the jwtauth-based token verifier, the ClaimSet extracted once per
// request, the Admin authorization policy, and the /Auth HTTP handlers.
package auth
