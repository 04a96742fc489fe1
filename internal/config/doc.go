// Package config defines the format-agnostic manifest model for the
// application, along with the Loader interface for reading it from a
// concrete format. The model is plain data; interpreting it into component
// instances is the registry's job.
package config
