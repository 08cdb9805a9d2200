// Package constants holds configuration values shared across packages.
package constants

// Environments.
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Event publisher providers.
const (
	PubSubProviderNoop   = "noop"
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
	PubSubProviderKafka  = "kafka"
)

// Payment gateways.
const (
	GatewayMyFatoorah = "myfatoorah"
)

// AuthCookieName is the cookie carrying the session JWT.
const AuthCookieName = "token"

// PaymentSignatureHeader carries the gateway's webhook signature.
const PaymentSignatureHeader = "MyFatoorah-Signature"
