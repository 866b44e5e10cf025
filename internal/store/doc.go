// Package store resolves, loads and persists the Maestro user configuration.
//
// Maestro keeps two files. The pointer file ("maestro.json" in the working
// directory by default) records only where the user configuration lives:
//
//	{
//	  "config_file_path": "/home/me/maestro/workspaces.json"
//	}
//
// The user configuration itself may live anywhere on disk. [Store.Save]
// canonicalizes a path and records it; [Store.Load] follows the pointer,
// decodes the user file and validates every workspace.
//
// # Errors
//
// Every failure is marked with exactly one sentinel so callers can branch
// on the kind while the original cause stays in the chain:
//
//	cfg, err := s.Load()
//	switch {
//	case errors.Is(err, store.ErrConfigNotFound):
//	    // run maestro configure
//	case errors.Is(err, store.ErrValidation):
//	    var verr *workspace.ValidationError
//	    errors.As(err, &verr)
//	}
package store
