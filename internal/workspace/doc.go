// Package workspace defines the workspace entries of a Maestro user
// configuration and the rules that make them usable.
//
// A user configuration is a single file holding an ordered list of
// workspaces:
//
//	{
//	  "workspaces": [
//	    {
//	      "name": "api",
//	      "description": "Backend services",
//	      "workspace_path": "/home/me/src/api",
//	      "container_working_dir": "/workspace"
//	    }
//	  ]
//	}
//
// Values are plain data. Decoding never rejects a workspace for its content;
// call [Config.Validate] (or [Workspace.Validate]) before trusting one. Use
// [Parse] or [ParseFile] to decode and validate in one step.
//
// # Formats
//
// JSON is the canonical format and may contain comments and trailing commas.
// Files ending in .yaml, .yml or .toml are translated to JSON before decoding,
// so the same required keys apply to every format.
package workspace
