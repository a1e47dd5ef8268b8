// Package config centralizes the fixed file locations used by the
// elective ranking run. Every input and output path is derived from the
// executable directory through the Paths struct; no other package builds
// paths on its own.
package config
