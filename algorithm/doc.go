// Package algorithm defines the Algorithm contract every reduction
// strategy (ddmin, zipmin, probdd, hdd) implements, plus Test, the shared
// cache-consulting oracle wrapper every algorithm calls instead of
// invoking the oracle directly.
package algorithm
