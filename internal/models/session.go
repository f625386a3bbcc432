package models

// Session is a verified credential granting access to a user's deployments.
// It is owned by the configuration store and read-only everywhere else.
type Session struct {
	Token string `yaml:"token"`
	Email string `yaml:"email"`
}
