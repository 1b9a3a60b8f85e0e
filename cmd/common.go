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
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/muesli/termenv"
	"github.com/rstms/hexpad/codec"
	"github.com/rstms/hexpad/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

var colorEnabled bool

func flagSet(cmd *cobra.Command) *pflag.FlagSet {
	if cmd == rootCmd {
		return cmd.PersistentFlags()
	}
	return cmd.Flags()
}

func bindFlag(cmd *cobra.Command, name string) {
	err := viper.BindPFlag(config.ViperKey(name), flagSet(cmd).Lookup(name))
	cobra.CheckErr(err)
}

func OptionString(cmd *cobra.Command, name, flag, defaultValue, description string) {
	flagSet(cmd).StringP(name, flag, defaultValue, description)
	bindFlag(cmd, name)
}

func OptionInt(cmd *cobra.Command, name, flag string, defaultValue int, description string) {
	flagSet(cmd).IntP(name, flag, defaultValue, description)
	bindFlag(cmd, name)
}

func OptionSwitch(cmd *cobra.Command, name, flag, description string) {
	flagSet(cmd).BoolP(name, flag, false, description)
	bindFlag(cmd, name)
}

func ViperGetString(key string) string {
	return config.ViperGetString(key)
}

func ViperGetBool(key string) bool {
	return config.ViperGetBool(key)
}

func ViperGetInt(key string) int {
	return config.ViperGetInt(key)
}

// InitConfig reads the config file and environment, then routes the log.
func InitConfig() {
	cfgFile = ViperGetString("config")
	if cfgFile == "" {
		home, err := os.UserHomeDir()
		if err == nil {
			defaultFile := filepath.Join(home, ".config", config.Prefix, "config.yaml")
			if IsFile(defaultFile) {
				cfgFile = defaultFile
			}
		}
	}
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		err := viper.ReadInConfig()
		var notFound viper.ConfigFileNotFoundError
		if err != nil && !errors.As(err, &notFound) {
			cobra.CheckErr(fmt.Errorf("failed reading config %s: %w", cfgFile, err))
		}
	}

	logFile := ViperGetString("logfile")
	switch {
	case logFile != "":
		fp, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
		cobra.CheckErr(err)
		log.SetOutput(fp)
	case ViperGetBool("verbose") || ViperGetBool("debug"):
		log.SetOutput(os.Stderr)
	default:
		log.SetOutput(io.Discard)
	}
	config.Init()
}

// InitColor decides whether output is styled and configures both the
// lipgloss renderer and fatih/color to match.
func InitColor(cmd *cobra.Command) {
	switch mode := ViperGetString("color"); mode {
	case "always":
		colorEnabled = true
	case "never":
		colorEnabled = false
	case "auto", "":
		colorEnabled = false
		if fp, ok := cmd.OutOrStdout().(*os.File); ok {
			colorEnabled = term.IsTerminal(int(fp.Fd())) && os.Getenv("NO_COLOR") == ""
		}
	default:
		cobra.CheckErr(fmt.Errorf("unknown color mode: %s", mode))
	}
	if colorEnabled {
		lipgloss.SetColorProfile(termenv.TrueColor)
	} else {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	color.NoColor = !colorEnabled
}

func FormatJSON(v any) string {
	data, err := json.MarshalIndent(v, "", "  ")
	cobra.CheckErr(err)
	return string(data)
}

func IsFile(pathname string) bool {
	info, err := os.Stat(pathname)
	return err == nil && info.Mode().IsRegular()
}

func IsDir(pathname string) bool {
	info, err := os.Stat(pathname)
	return err == nil && info.IsDir()
}

// readInput returns the --string value, the named file ("-" is stdin) or
// stdin, in that order.
func readInput(cmd *cobra.Command, args []string) []byte {
	if hasString(cmd) {
		return []byte(ViperGetString("string"))
	}
	var data []byte
	var err error
	if len(args) > 0 && args[0] != "-" {
		data, err = os.ReadFile(args[0])
	} else {
		data, err = io.ReadAll(cmd.InOrStdin())
	}
	cobra.CheckErr(err)
	if ViperGetBool("verbose") {
		log.Printf("input: %d bytes\n", len(data))
	}
	return data
}

// writeOutput writes text to the --output file or stdout.
func writeOutput(cmd *cobra.Command, text string) {
	outputFile := ViperGetString("output")
	if outputFile == "" {
		fmt.Fprint(cmd.OutOrStdout(), text)
		return
	}
	saveFile(outputFile, text)
}

func saveFile(filename, text string) {
	err := os.WriteFile(filename, []byte(text), 0644)
	cobra.CheckErr(err)
	log.Printf("wrote %s: %d bytes\n", filename, len(text))
}

func hasString(cmd *cobra.Command) bool {
	return cmd.Flags().Changed("string") || ViperGetString("string") != ""
}

func warn(cmd *cobra.Command, format string, args ...any) {
	prefix := color.New(color.FgYellow, color.Bold).Sprint("WARNING:")
	fmt.Fprintf(cmd.ErrOrStderr(), "%s %s\n", prefix, fmt.Sprintf(format, args...))
}

func LoadOptions(cmd *cobra.Command) *config.Options {
	options, err := config.Load()
	cobra.CheckErr(err)
	if options.Warning != nil {
		warn(cmd, "%v", options.Warning)
	}
	return options
}

func warnResult(cmd *cobra.Command, result *codec.Result) {
	if result.Replaced > 0 {
		warn(cmd, "%d characters not representable in %s were replaced", result.Replaced, result.Encoding)
	}
}
