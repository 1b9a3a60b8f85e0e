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
	"github.com/rstms/hexpad/config"
	"github.com/rstms/hexpad/report"
	"github.com/rstms/hexpad/ruler"
	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [FILE]",
	Short: "lay out text under column rulers with hex values",
	Long: `
Print the text analysis report: each input line is shown under a column
number ruler and a marker ruler, with invisible characters made visible and
the high and low hex digit of every character below it.

At most 9999 lines are analysed.  With --save the report is written to the
--output file or to text_analysis_<encoding>.txt.
`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		options := LoadOptions(cmd)
		analysis := analyze(cmd, options, readInput(cmd, args))
		if ViperGetBool("save") {
			filename := ViperGetString("output")
			if filename == "" {
				filename = report.Filename(analysis.Encoding)
			}
			saveFile(filename, analysis.Document())
			cmd.Printf("saved %s\n", filename)
			return
		}
		if colorEnabled && ViperGetString("output") == "" {
			writeOutput(cmd, analysis.Render(ruler.RenderANSI))
			return
		}
		writeOutput(cmd, analysis.Document())
	},
}

// analyze builds the report for data and warns about anything the report
// could not show exactly.
func analyze(cmd *cobra.Command, options *config.Options, data []byte) *report.Analysis {
	analysis := report.Analyze(string(data), report.Options{
		LineLength: options.LineLength,
		Encoding:   options.Requested,
	})
	if analysis.Truncated {
		warn(cmd, "input has %d lines, analysis limited to the first %d", analysis.TotalLines, report.MaxLines)
	}
	if analysis.Replaced > 0 {
		warn(cmd, "%d characters not representable in %s", analysis.Replaced, analysis.Encoding)
	}
	return analysis
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	OptionSwitch(analyzeCmd, "save", "", "save the report to a file")
}
