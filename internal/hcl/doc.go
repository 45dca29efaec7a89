// Package hcl provides the concrete HCL implementation of the configuration
// loading interface defined in the `config` package. It is responsible for
// file parsing, expression evaluation, and HCL-to-model translation.
package hcl
