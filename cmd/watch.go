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
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/rstms/hexpad/ruler"
	"github.com/rstms/hexpad/watcher"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch FILE",
	Short: "re-analyze a file each time it is saved",
	Long: `
Print the analysis report of FILE, then print it again every time the file
is written.  Bursts of writes are collapsed into one update after --delay.
Stop with Ctrl-C.
`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		options := LoadOptions(cmd)
		delay, err := time.ParseDuration(ViperGetString("delay"))
		cobra.CheckErr(err)

		var mu sync.Mutex
		render := func(filename string) {
			mu.Lock()
			defer mu.Unlock()
			data, err := os.ReadFile(filename)
			if err != nil {
				warn(cmd, "%v", err)
				return
			}
			analysis := analyze(cmd, options, data)
			fmt.Fprintf(cmd.OutOrStdout(), "### %s %s ###\n", filename, time.Now().Format(time.TimeOnly))
			if colorEnabled {
				fmt.Fprint(cmd.OutOrStdout(), analysis.Render(ruler.RenderANSI))
			} else {
				fmt.Fprint(cmd.OutOrStdout(), analysis.Document())
			}
		}

		w, err := watcher.New(args[0], delay, render)
		cobra.CheckErr(err)
		defer w.Close()
		w.SetVerbose(ViperGetBool("verbose"))

		render(args[0])
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		log.Printf("watching %s\n", args[0])
		err = w.Run(ctx)
		cobra.CheckErr(err)
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
	OptionString(watchCmd, "delay", "", watcher.DefaultDelay.String(), "quiet period before re-rendering")
}
