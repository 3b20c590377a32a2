// Package config loads hepmatch settings from TOML or YAML files and maps
// them onto pipeline.Config.
//
// Defaults reproduce the default matching stage: views "Generated",
// "Reconstructed" and "Matched", the deltaR cost, copy mode, and b-tagging
// kept on both sides. A missing file is not an error; the defaults apply.
package config
