// Package config provides configuration loading, merging, and validation
// facilities for the securetext chat relay server.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry point is [GetStructuredConfig], which chains all three
// sources and validates the result.
package config
