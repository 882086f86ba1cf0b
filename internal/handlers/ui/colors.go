package ui

import "github.com/fatih/color"

// General Purpose Colors
var (
	InfoColor    = color.New(color.FgCyan).SprintFunc()
	SuccessColor = color.New(color.FgGreen).SprintFunc()
	ErrorColor   = color.New(color.FgRed).SprintFunc()
	DetailColor  = color.New(color.FgHiBlack).SprintFunc() // hints and secondary text
)

// Bookmark Specific Colors
var (
	ShortcutColor = color.New(color.FgYellow, color.Bold).SprintFunc()
	PathColor     = color.New(color.FgWhite).SprintFunc()
	DialectColor  = color.New(color.FgBlue).SprintFunc()
)

// Header Colors
var (
	HeaderColor = color.New(color.FgGreen, color.Bold).SprintFunc()
)
