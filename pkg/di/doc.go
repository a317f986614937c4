// Package di wires command dependencies through a samber/do injector.
//
// Each command invocation gets a fresh injector: the runtime registers its base
// modules, then any extra modules, then runs the handler.
package di
