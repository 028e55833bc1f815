//go:build !mcaunchecked

package record

const Unchecked = false

var extract = extractChecked
