package maquina

// Version and BuildDate identify a build; BuildDate is injected with
// -ldflags at release time.
var (
	Version   = "0.2.0"
	BuildDate = "unknown"
)
