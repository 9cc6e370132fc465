package config

import "os"

// JWTSecret must match the key the user-profile service signs with.
// Token issuing lives in the external directory; this API only verifies.
var JWTSecret []byte

func init() {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "shared-secret-change-this-in-production"
	}
	JWTSecret = []byte(secret)
}
