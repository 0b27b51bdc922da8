// Package file provides file-based implementations of driven port interfaces.
// These adapters persist data to the local filesystem.
//
// Adapters:
//   - ConfigStore: TOML-based configuration storage
//   - PromptStore: Prompt templates with embedded defaults and user overrides
//   - WatchPrompts: Reloads the PromptStore when prompt files change
package file
