// Package config loads the optional YAML file carrying the two temperature
// thresholds and the sensor command override. Command-line flags take
// precedence over file values; built-in defaults apply when neither is set.
package config
