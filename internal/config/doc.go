// Package config defines the format-agnostic model of a plugin's
// configuration and the interface a format-specific loader must satisfy.
// The concrete HCL implementation lives in the `hcl` package.
package config
