// Package registry holds the explicit taxonomy registry for a single
// application instance. It replaces per-type singletons and hidden
// self-registration: modules and definition files add taxonomies here,
// and the bootstrap decides when they are registered against the host.
package registry
