// Package config provides configuration loading, merging, and validation
// facilities for the session keeper.
//
// Configuration is assembled from multiple sources. Earlier sources win for
// every non-zero field:
//  1. Command-line flags
//  2. Environment variables
//  3. JSON or TOML config file
//  4. Built-in defaults
//
// Account lists are the exception: accounts from all sources are
// concatenated, so a single ACCOUNT_* account can be run next to the ones
// listed in the file.
//
// The main entry point is [GetStructuredConfig].
package config
