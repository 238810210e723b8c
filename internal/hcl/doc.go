// Package hcl provides the concrete HCL implementation of the config.Loader
// interface. It is responsible for file parsing, translating `puzzle` blocks
// into the format-agnostic model, and binding HCL values to Go types via cty.
//
// A manifest file contains any number of puzzle blocks:
//
//	puzzle "2020/07" {
//	  title  = "Handy Haversacks"
//	  input  = "inputs/2020-07.txt"
//	  params = { bag = "shiny gold" }
//
//	  expect {
//	    part1 = 4
//	    part2 = 32
//	  }
//	}
//
// Relative input paths are resolved against the directory of the manifest
// file that declares them. Inline inputs use the `text` attribute, usually
// with a heredoc.
package hcl
