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
	"bytes"
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/rstms/hexpad/hexdump"
	"github.com/spf13/cobra"
)

const MAX_BACKUP_FILES = 10

var editCmd = &cobra.Command{
	Use:   "edit FILE",
	Short: "edit the bytes of a file as a hexdump",
	Long: `
Write a hexdump of FILE to a temporary file and open it in the system
editor.  When the editor exits the hex columns are parsed and the resulting
bytes replace the content of FILE.  The offset and gutter columns are
ignored, so only the hex digits need to be changed.

The original content of the file is saved in a numbered backup file in
--backup-dir, by default a 'backup' directory beside FILE.
`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		options := LoadOptions(cmd)
		filename := args[0]
		info, err := os.Stat(filename)
		cobra.CheckErr(err)
		if !info.Mode().IsRegular() {
			cobra.CheckErr(fmt.Errorf("not a regular file: %s", filename))
		}

		backupDir := ViperGetString("backup_dir")
		if backupDir == "" {
			backupDir = filepath.Join(filepath.Dir(filename), "backup")
		}
		log.Printf("backupDir=%s\n", backupDir)

		// read original data
		data, err := os.ReadFile(filename)
		cobra.CheckErr(err)
		log.Printf("read %s: %d bytes\n", filename, len(data))

		// write dump to edit file
		dump := hexdump.Dump(data, options.Encoding, options.BytesPerLine)
		editFile, err := os.CreateTemp("", filepath.Base(filename)+".*.hex")
		cobra.CheckErr(err)
		defer os.Remove(editFile.Name())
		_, err = editFile.WriteString(dump)
		cobra.CheckErr(err)
		err = editFile.Close()
		cobra.CheckErr(err)
		log.Printf("wrote editFile: %s\n", editFile.Name())

		// edit file
		editArgs := append(editorCommand(), editFile.Name())
		editor := exec.Command(editArgs[0], editArgs[1:]...)
		log.Printf("editor: %s\n", editor)
		editor.Stdin = os.Stdin
		editor.Stdout = os.Stdout
		editor.Stderr = os.Stderr
		err = editor.Run()
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintf(cmd.ErrOrStderr(), "editor exited: %d, not writing result\n", exitErr.ExitCode())
			return
		}
		cobra.CheckErr(err)
		log.Printf("editor exited %d\n", editor.ProcessState.ExitCode())

		// parse edited dump
		edited, err := os.ReadFile(editFile.Name())
		cobra.CheckErr(err)
		editedData, err := hexdump.ParseBytes(string(edited))
		cobra.CheckErr(err)
		log.Printf("parsed editedData: %d bytes\n", len(editedData))
		if bytes.Equal(editedData, data) {
			fmt.Fprintln(cmd.OutOrStdout(), "no changes")
			return
		}

		// write original data to backup file
		if !IsDir(backupDir) {
			err := os.MkdirAll(backupDir, 0700)
			cobra.CheckErr(err)
		}
		backupFile, err := backupFilename(filepath.Join(backupDir, filepath.Base(filename)))
		cobra.CheckErr(err)
		err = os.WriteFile(backupFile, data, 0600)
		cobra.CheckErr(err)
		log.Printf("wrote backupFile: %s\n", backupFile)

		err = os.WriteFile(filename, editedData, info.Mode().Perm())
		cobra.CheckErr(err)
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s: %d bytes, backup %s\n", filename, len(editedData), backupFile)
	},
}

// editorCommand returns the editor program and its leading arguments.
func editorCommand() []string {
	if runtime.GOOS == "windows" {
		return []string{"notepad"}
	}
	for _, name := range []string{"VISUAL", "EDITOR"} {
		if fields := strings.Fields(os.Getenv(name)); len(fields) > 0 {
			return fields
		}
	}
	return []string{"vi"}
}

func backupFilename(pathname string) (string, error) {
	dir, name := filepath.Split(pathname)
	backupName := name + ".bak"
	count := 0
	for {
		pathname = filepath.Join(dir, backupName)
		log.Printf("checking pathname: %s\n", pathname)
		if !IsFile(pathname) {
			return pathname, nil
		}
		backupName = fmt.Sprintf("%s.bak~%02d", name, count)
		count += 1
		if count > MAX_BACKUP_FILES {
			return "", fmt.Errorf("overflow generating unique backup filename in: %s", dir)
		}
	}
}

func init() {
	rootCmd.AddCommand(editCmd)
	OptionString(editCmd, "backup-dir", "", "", "directory for backup files")
}
