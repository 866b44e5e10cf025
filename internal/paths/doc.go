// Package paths resolves the filesystem locations maestro works with.
//
// # XDG Base Directory Compliance
//
// The package wraps github.com/adrg/xdg so the tool's own settings file lives
// in the platform's config directory:
//
//	paths.SettingsDir() // ~/.config/maestro on Linux
//
// # Canonicalization
//
// [Canonicalize] turns a user-supplied path into the absolute,
// symlink-resolved form stored in the pointer file. It fails for paths that
// do not exist:
//
//	abs, err := paths.Canonicalize("configs/../workspaces.json")
//	if errors.Is(err, fs.ErrNotExist) {
//	    // nothing to point at
//	}
package paths
