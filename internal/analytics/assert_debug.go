//go:build debug

package analytics

const debugAssertions = true
