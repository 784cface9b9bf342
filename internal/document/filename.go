package document

import (
	"fmt"
	"strings"
	"unicode"
)

// Filename builds the suggested download name
// <Name_With_Underscores>_<fileLabel>_<template>_CV_<year>.<ext>.
func Filename(name, fileLabel, template string, year int, ext string) string {
	return fmt.Sprintf("%s_%s_%s_CV_%d.%s", safeName(name), safeName(fileLabel), template, year, ext)
}

// safeName joins the words of s with underscores and drops characters that
// are unsafe in file names.
func safeName(s string) string {
	var parts []string
	for _, field := range strings.Fields(s) {
		clean := strings.Map(func(r rune) rune {
			if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' || r == '.' {
				return r
			}
			return -1
		}, field)
		if clean != "" {
			parts = append(parts, clean)
		}
	}
	if len(parts) == 0 {
		return "CV"
	}
	return strings.Join(parts, "_")
}
