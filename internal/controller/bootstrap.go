package controller

import (
	"errors"

	"giteadm/internal/config"
	"giteadm/internal/ui"
)

// ErrNoCredentials is returned when the user abandons the credential form.
var ErrNoCredentials = errors.New("no credentials provided")

// Bootstrap prompts for the instance URL and token when none are configured,
// and persists them. Returns the completed configuration.
func Bootstrap(screen Screen, cfg config.Config) (config.Config, error) {
	if cfg.HasCredentials() {
		return cfg, nil
	}

	screen.Warn("Configuration missing. Please provide details.")
	screen.SetStatus("Configuration required")

	for {
		res := screen.Form("Configuration", []ui.Field{
			{Name: "url", Label: "Gitea URL", Kind: ui.FieldText, Initial: cfg.URL},
			{Name: "token", Label: "Token", Kind: ui.FieldPassword},
		})
		if res.Cancelled {
			return cfg, ErrNoCredentials
		}
		if res.Values["url"] == "" || res.Values["token"] == "" {
			screen.Warn("Both URL and token are required.")
			continue
		}

		cfg.URL = config.NormalizeURL(res.Values["url"])
		cfg.Token = res.Values["token"]
		if err := config.Save(cfg); err != nil {
			screen.Warn("Credentials active but not saved: " + err.Error())
		}
		return cfg, nil
	}
}
