// Package config defines the format-agnostic model for loaded taxonomy
// definitions and the Loader interface a format-specific implementation
// (currently HCL) must satisfy. Keeping the model free of parser types
// lets the registry and app stay ignorant of the definition file format.
package config
