package handlers

import (
	"postboard/auth"
	"postboard/cache"
)

// Shared collaborators injected once at startup (and per-test in tests).

var tokenService *auth.TokenService
var postCache *cache.PostCache

// SetTokenService sets the token service used by the auth handlers.
func SetTokenService(ts *auth.TokenService) {
	tokenService = ts
}

// SetPostCache sets the response cache used by the post handlers.
func SetPostCache(pc *cache.PostCache) {
	postCache = pc
}
