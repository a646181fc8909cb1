// Package auth implements credential issuance and request authentication.
//
// A browser login form posts email/password together with a CSRF
// double-submit pair. On success a signed JWT access token is minted and
// delivered as a cookie; API clients may present the same token as an
// Authorization: Bearer header. Every protected request is authenticated
// by the dual-channel validator, which tries the cookie first and falls
// back to the bearer header.
//
// # Configuration
//
//	AUTH_SIGNING_KEY=<secret>       # Required; startup fails without it
//	AUTH_ACCESS_TOKEN_TTL=2h        # Plain login lifetime
//	AUTH_REMEMBER_ME_TTL=720h       # Remember-me lifetime (30 days)
//	AUTH_BCRYPT_COST=12             # bcrypt cost factor
//	AUTH_SECURE_COOKIES=true        # HTTPS-only cookies
//
// # Usage
//
// Initialize in entrypoint:
//
//	signer, err := auth.NewSigner(cfg.Auth.SigningKey)
//	verifier := auth.NewCredentialVerifier(userRepo)
//	validator := auth.NewDualChannelValidator(signer)
//	router.Use(auth.NewMiddleware(validator).Handler())
//
// Extract the caller in handlers:
//
//	identity, ok := auth.GetIdentity(c)
package auth
