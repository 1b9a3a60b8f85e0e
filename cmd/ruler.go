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
	"fmt"

	"github.com/rstms/hexpad/ruler"
	"github.com/spf13/cobra"
)

var rulerCmd = &cobra.Command{
	Use:   "ruler",
	Short: "print a column ruler",
	Long: `
Print the column number row and marker row for the configured line length.
Every 10th column is marked '|', every 5th '+' and the rest '·'.

With --html the rows are written as span markup with one CSS class per
marker kind.
`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		options := LoadOptions(cmd)
		numbers, markers := ruler.GenerateStyled(options.LineLength)
		render := ruler.Text
		switch {
		case ViperGetBool("html"):
			render = ruler.RenderHTML
		case colorEnabled:
			render = ruler.RenderANSI
		}
		writeOutput(cmd, fmt.Sprintf("%s\n%s\n", render(numbers), render(markers)))
	},
}

func init() {
	rootCmd.AddCommand(rulerCmd)
	OptionSwitch(rulerCmd, "html", "", "output HTML span markup")
}
