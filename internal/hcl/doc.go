// Package hcl provides the concrete HCL implementation of the
// config.Loader interface. It is responsible for file discovery, parsing,
// and HCL-to-model translation of taxonomy definition files.
package hcl
