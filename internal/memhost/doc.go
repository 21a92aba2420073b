// Package memhost provides a thread-safe, in-memory implementation of the
// taxonomy.Host interface. It is suitable for development, testing, or any
// scenario where no real CMS core is wired in: it records what a host
// would have been asked to register and makes it queryable.
package memhost
