package pdb

var GuessElement = guessElement

// Col exposes the column slicer.
func Col(line string, from, to int) string { return col([]byte(line), from, to) }

var SiteURL = siteURL
