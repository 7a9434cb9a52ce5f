package ssa

var Score = score
var Window = window
var Links = links
