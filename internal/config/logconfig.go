//
// Gopherfish - a UCI chess engine in Go
//
// MIT License
//
// Copyright (c) 2020-2026 Gopherfish contributors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package config

// logConfiguration holds the log levels for the three named loggers
// internal/logging hands out (engine, search, test).
type logConfiguration struct {
	LogLvl       int
	SearchLogLvl int
	TestLogLvl   int
	// LogPath is the folder the UCI handler writes its raw input/output
	// transcript to (resolved via util.ResolveFolder). Empty disables the
	// transcript and logs to the regular engine logger instead.
	LogPath string
}

// LogLevels maps the go-logging level names a -loglvl flag accepts to the
// int level internal/logging.withBackend expects.
var LogLevels = map[string]int{
	"critical": 0,
	"error":    1,
	"warning":  2,
	"notice":   3,
	"info":     4,
	"debug":    5,
}

func init() {
	Settings.Log.LogLvl = LogLevel
	Settings.Log.SearchLogLvl = SearchLogLevel
	Settings.Log.TestLogLvl = TestLogLevel
	Settings.Log.LogPath = "./logs"
}

// setupLogLvl applies the decoded TOML values (if the config file set
// them) to the package-level LogLevel/SearchLogLevel/TestLogLevel vars
// that internal/logging actually reads.
func setupLogLvl() {
	if Settings.Log.LogLvl != 0 {
		LogLevel = Settings.Log.LogLvl
	}
	if Settings.Log.SearchLogLvl != 0 {
		SearchLogLevel = Settings.Log.SearchLogLvl
	}
	if Settings.Log.TestLogLvl != 0 {
		TestLogLevel = Settings.Log.TestLogLvl
	}
}
