// Package config manages maestro's own settings, as opposed to the user
// configuration of workspaces handled by the store package.
//
// Settings are read with Viper from settings.yaml in the current directory
// or in the XDG config directory (~/.config/maestro on Linux), and from
// MAESTRO_* environment variables:
//
//	pointer_file: /home/me/.local/state/maestro/maestro.json
//	log_format: json
//
// # Loading Settings
//
//	config.Init()
//	s, err := config.Load("")
//	if err != nil {
//	    return err
//	}
//	st := store.New(s.PointerFile)
//
// A missing settings file is not an error; defaults apply.
package config
