package identity_fx

import (
	"go.uber.org/fx"
	"lessonhub/internal/identity"
)

var Module = fx.Provide(
	provideVerifier)

func provideVerifier() identity.TokenVerifier {
	return identity.NewVerifierFromEnv()
}
