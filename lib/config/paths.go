package config

import "path/filepath"

type CfgPath string

// Resolve anchors a relative path at base. Empty paths stay empty.
func (c CfgPath) Resolve(base string) CfgPath {
	if c == "" || filepath.IsAbs(string(c)) {
		return c
	}
	return CfgPath(filepath.Join(base, string(c)))
}

func (c CfgPath) OrEmbedded() string {
	if c == "" {
		return "(embedded)"
	}
	return string(c)
}
