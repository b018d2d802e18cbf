package config

import (
	"github.com/QTCSOLUTIONS/controlproccp/pkg/domain/access"
	"github.com/urfave/cli/v3"
)

// Auth holds CLI flags for authentication configuration. The session secret
// is marked as secret so it never appears in logs.
type Auth struct {
	sessionSecret string `masq:"secret"`
	masterEmail   string
}

// Flags returns CLI flags for auth configuration
func (a *Auth) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "session-secret",
			Usage:       "HS256 signing key for session tokens (random per process when empty)",
			Sources:     cli.EnvVars("CONTROLPRO_SESSION_SECRET"),
			Destination: &a.sessionSecret,
		},
		&cli.StringFlag{
			Name:        "master-email",
			Usage:       "Email address granted the MASTER role unconditionally",
			Value:       access.DefaultMasterEmail,
			Sources:     cli.EnvVars("CONTROLPRO_MASTER_EMAIL"),
			Destination: &a.masterEmail,
		},
	}
}

// SessionSecret returns the configured signing key
func (a *Auth) SessionSecret() []byte {
	if a.sessionSecret == "" {
		return nil
	}
	return []byte(a.sessionSecret)
}

// MasterEmail returns the configured super-admin address
func (a *Auth) MasterEmail() string {
	return a.masterEmail
}
