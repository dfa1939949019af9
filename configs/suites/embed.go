// Package suites bundles the formula suites shipped with the binary.
package suites

import _ "embed"

//go:embed classic.yaml
var Classic []byte
