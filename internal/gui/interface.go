package gui

// Interface defines the contract for GUI front ends
type Interface interface {
	Run()
	Submit(line string)
	ShowError(title string, err error)
}
