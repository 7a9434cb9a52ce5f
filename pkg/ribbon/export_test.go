package ribbon

var (
	SSColor    = ssColor
	ChainColor = chainColor
	HSV        = hsv
)
