// Package config defines the format-agnostic configuration model: session
// settings and declarative mod manifests. Concrete loaders, such as the HCL
// one, live in separate packages and translate into this model.
package config
