/*
Copyright © 2025 Matt Krueger <mkrueger@rstms.net>
All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

 1. Redistributions of source code must retain the above copyright notice,
    this list of conditions and the following disclaimer.

 2. Redistributions in binary form must reproduce the above copyright notice,
    this list of conditions and the following disclaimer in the documentation
    and/or other materials provided with the distribution.

 3. Neither the name of the copyright holder nor the names of its contributors
    may be used to endorse or promote products derived from this software
    without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE
ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE
LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR
CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF
SUBSTITUTE GOODS OR SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS
INTERRUPTION) HOWEVER CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN
CONTRACT, STRICT LIABILITY, OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE)
ARISING IN ANY WAY OUT OF THE USE OF THIS SOFTWARE, EVEN IF ADVISED OF THE
POSSIBILITY OF SUCH DAMAGE.
*/
package cmd

import (
	"os"

	"github.com/rstms/hexpad/config"
	"github.com/spf13/cobra"
)

var cfgFile string
var ExitCode *int

var OutputJSON bool
var OutputText bool

var rootCmd = &cobra.Command{
	Version: "0.1.0",
	Use:     "hexpad",
	Short:   "inspect text as hex bytes",
	Long: `
Inspect text as hexadecimal bytes.

Convert text to and from hex in UTF-8, ASCII, CP1252, ISO-8859-1 or EBCDIC
(CP037), print hexdumps with a display gutter, and lay out text under column
rulers with the hex value of every character.
`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		OutputJSON = true
		OutputText = false
		if ViperGetBool("text") {
			OutputText = true
			OutputJSON = false
		}
		InitColor(cmd)
	},
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
	if ExitCode != nil {
		os.Exit(*ExitCode)
	}
}

func init() {
	cobra.OnInitialize(InitConfig)
	OptionString(rootCmd, "config", "c", "", "config file")
	OptionString(rootCmd, "logfile", "", "", "log filename")
	OptionSwitch(rootCmd, "debug", "d", "produce debug output")
	OptionSwitch(rootCmd, "verbose", "v", "produce diagnostic output")
	OptionSwitch(rootCmd, "json", "", "format listings as JSON (default)")
	OptionSwitch(rootCmd, "text", "", "format listings as text")

	OptionString(rootCmd, "encoding", "e", config.DefaultEncoding, "text encoding: UTF-8, ASCII, CP1252, ISO-8859-1, CP037 (EBCDIC)")
	OptionInt(rootCmd, "line-length", "L", config.DefaultLineLength, "analysis line length (40-500)")
	OptionInt(rootCmd, "bytes-per-line", "n", config.DefaultBytesPerLine, "hexdump bytes per line (8, 16 or 32)")
	OptionString(rootCmd, "color", "", "auto", "colorize output: auto, always or never")
	OptionString(rootCmd, "string", "s", "", "use STRING as input instead of a file or stdin")
	OptionString(rootCmd, "output", "o", "", "write output to file")
}
