package commands

import (
	"fmt"

	"github.com/thoreinstein/maestro/internal/errors"
	"github.com/thoreinstein/maestro/internal/store"
	"github.com/thoreinstein/maestro/internal/workspace"
	"github.com/thoreinstein/maestro/pkg/fileutil"
)

// storeError attaches an exit code and suggestion to a store failure based
// on its kind. Other errors are returned unchanged.
func storeError(err error) error {
	if err == nil {
		return nil
	}

	switch store.KindOf(err) {
	case store.ErrConfigNotFound:
		return errors.NewUserError(err, "Ensure Maestro is configured: run 'maestro configure <path>'")
	case store.ErrMalformedPointer:
		return errors.NewUserError(err, "The maestro pointer file is damaged; run 'maestro configure <path>' to rewrite it")
	case store.ErrUserConfigNotFound:
		return errors.NewUserError(err, "The configured file was moved or deleted; restore it or run 'maestro configure <path>'")
	case store.ErrMalformedUserConfig:
		if errors.Is(err, fileutil.ErrFileTooLarge) {
			return errors.NewUserError(err, fmt.Sprintf("Keep your user configuration file under %d bytes", fileutil.MaxFileSize))
		}
		return errors.NewUserError(err, "Fix the syntax of your user configuration file")
	case store.ErrValidation:
		var verr *workspace.ValidationError
		if errors.As(err, &verr) {
			return errors.NewUserError(err, fmt.Sprintf("Fix workspace %q: %s", verr.Workspace, verr.Reason))
		}
		return errors.NewUserError(err, "Fix the invalid workspace entry")
	case store.ErrPathResolution:
		return errors.NewUserError(err, "Ensure the file exists and the path is spelled correctly")
	case store.ErrWrite:
		return errors.NewSystemError(err, "Ensure Maestro has write permissions and reconfigure")
	default:
		return err
	}
}
