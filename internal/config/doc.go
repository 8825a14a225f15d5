// Package config manages user-level settings stored at ~/.skeleton/config.yaml.
// Settings select the staging directory, template and catalog overrides, the
// language used for validation messages, and the defaults offered by the
// input dialog. Every key can also be set through a SKELETON_* env var.
package config
