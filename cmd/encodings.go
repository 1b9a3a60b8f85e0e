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

	"github.com/rstms/hexpad/codec"
	"github.com/spf13/cobra"
)

type EncodingInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	SingleByte  bool   `json:"single_byte"`
}

var encodingsCmd = &cobra.Command{
	Use:   "encodings",
	Short: "list supported encodings",
	Long: `
List the supported text encodings.  Output is JSON unless --text is given,
in which case only the names are printed.
`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if OutputText {
			for _, enc := range codec.Encodings {
				fmt.Fprintln(cmd.OutOrStdout(), enc)
			}
			return
		}
		infos := make([]EncodingInfo, len(codec.Encodings))
		for i, enc := range codec.Encodings {
			infos[i] = EncodingInfo{
				Name:        enc.String(),
				Description: enc.Description(),
				SingleByte:  enc.SingleByte(),
			}
		}
		fmt.Fprintln(cmd.OutOrStdout(), FormatJSON(infos))
	},
}

func init() {
	rootCmd.AddCommand(encodingsCmd)
}
