package ribbon

type Error string

func (e Error) Error() string { return string(e) }

const (
	ErrSettings = Error("bad settings")
	ErrRings    = Error("rings and frames do not match")
)
