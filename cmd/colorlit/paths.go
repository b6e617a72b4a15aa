package main

import "tools.zach/dev/colorlit/internal/paths"

// DataPaths aliases [paths.DataDir] into the main package so command code
// can reference path helpers without qualifying the internal package name.
type DataPaths = paths.DataDir
