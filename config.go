package main

import "flag"

var (
	windowWidth  = flag.Int("width", 320, "Window width in pixels")
	windowHeight = flag.Int("height", 240, "Window height in pixels")
	windowTitle  = flag.String("title", "CleanGUI", "Window title")
	logLevel     = flag.String("loglevel", "", "Log level: debug, info, warn or error (default info)")
)
