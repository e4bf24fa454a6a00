package cmd

import (
	"os/exec"
)

// d2Binary is the renderer invoked by lookup --render.
const d2Binary = "d2"

// findExecutable and execCommand are variables so tests can stub out d2.
var (
	findExecutable = exec.LookPath
	execCommand    = exec.Command
)
