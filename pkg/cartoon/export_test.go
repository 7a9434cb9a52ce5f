package cartoon

var (
	LogWhere = logWhere
	OutName  = outName
)

func (flags *CmdFlag) Settings() error {
	_, _, err := flags.settings()
	return err
}
