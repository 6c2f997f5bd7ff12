// Package profile serves the authenticated self-service operations under
// /User/Me: read, update (with token re-issue), password change and deletion.
package profile
