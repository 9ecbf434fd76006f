package models

// Credentials starts a credential exchange with the authentication service.
type Credentials struct {
	Username          string `json:"username"`
	Password          string `json:"password"`
	PersistentSession bool   `json:"persistent_session"`
}

// AuthResult is returned once the authentication service accepted the
// credentials.
type AuthResult struct {
	AccountName  string `json:"account_name"`
	RefreshToken string `json:"refresh_token"`
	AccessToken  string `json:"access_token"`
}

// GuardKind identifies which second factor the authentication service asks
// for.
type GuardKind string

const (
	GuardNone        GuardKind = ""
	GuardDeviceCode  GuardKind = "device_code"
	GuardEmailCode   GuardKind = "email_code"
	GuardDeviceTouch GuardKind = "device_confirmation"
)
