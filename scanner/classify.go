package scanner

// GuessOS maps the open-port set to a coarse operating system family.
// The signature table is deliberately small: SMB/RPC ports indicate Windows,
// SSH together with portmapper indicates a Unix-like host. The guess is
// heuristic and non-authoritative.
func GuessOS(openPorts []int) string {
	open := make(map[int]bool, len(openPorts))
	for _, p := range openPorts {
		open[p] = true
	}

	switch {
	case open[135] || open[445]:
		return "Windows (likely)"
	case open[22] && open[111]:
		return "Linux/Unix (likely)"
	default:
		return "Unknown OS"
	}
}
